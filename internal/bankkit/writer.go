package bankkit

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"questgen/domain/bank"
	"questgen/domain/question"
)

// contextColumns is the header row of the Contexts sheet, in the order the
// bank reader documents them.
var contextColumns = []string{
	"id", "name", "category", "description",
	"unit_symbol", "unit_position", "unit_spaced",
	"value_min", "value_max", "decimals", "allow_negative",
	"item_label", "period_label", "data_label", "mean_label",
	"pair_labels", "subjects", "compatible", "phrases_json",
}

var phraseColumns = []string{"context_id", "minimal", "standard", "rich"}

var skillColumns = []string{"id", "name", "description", "difficulty", "variations"}

// WriteContextBank writes a context bank workbook: a Contexts sheet with one
// row per context and a Phrases sheet mirroring the narrative templates so
// maintainers can edit them in place.
func WriteContextBank(path string, contexts []bank.Context) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", "Contexts"); err != nil {
		return err
	}
	if _, err := f.NewSheet("Phrases"); err != nil {
		return err
	}

	rows := make([][]interface{}, 0, len(contexts))
	phraseRows := make([][]interface{}, 0, len(contexts))
	for i := range contexts {
		c := &contexts[i]
		pj, err := phrasesJSON(c.Phrases)
		if err != nil {
			return fmt.Errorf("context %s: %w", c.ID, err)
		}
		rows = append(rows, []interface{}{
			string(c.ID), c.Name, c.Category, c.Description,
			c.Unit.Symbol, string(c.Unit.Position), boolCell(c.Unit.Spaced),
			c.ValueMin, c.ValueMax, c.Decimals, boolCell(c.AllowNegative),
			c.ItemLabel, c.PeriodLabel, c.DataLabel, c.MeanLabel,
			joinList(c.PairLabels), joinList(c.Subjects),
			compatibleCell(c.Compatible), pj,
		})
		phraseRows = append(phraseRows, []interface{}{
			string(c.ID), c.Phrases.Minimal, c.Phrases.Standard, c.Phrases.Rich,
		})
	}

	if err := writeSheet(f, "Contexts", contextColumns, rows); err != nil {
		return err
	}
	if err := writeSheet(f, "Phrases", phraseColumns, phraseRows); err != nil {
		return err
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// WriteMasterSource writes the master source workbook holding the Skills and
// Names sheets.
func WriteMasterSource(path string, skills []bank.Skill, names []string) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", "Skills"); err != nil {
		return err
	}
	if _, err := f.NewSheet("Names"); err != nil {
		return err
	}

	skillRows := make([][]interface{}, 0, len(skills))
	for i := range skills {
		s := &skills[i]
		skillRows = append(skillRows, []interface{}{
			string(s.ID), s.Name, s.Description, s.Difficulty.Int(),
			variationCell(s.Variations),
		})
	}
	nameRows := make([][]interface{}, 0, len(names))
	for _, n := range names {
		nameRows = append(nameRows, []interface{}{n})
	}

	if err := writeSheet(f, "Skills", skillColumns, skillRows); err != nil {
		return err
	}
	if err := writeSheet(f, "Names", []string{"name"}, nameRows); err != nil {
		return err
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// Seed writes both workbooks with the built-in data. Used by the CLI to lay
// down editable copies under the data directory.
func Seed(bankPath, masterPath string) error {
	if err := WriteContextBank(bankPath, BuiltinContexts()); err != nil {
		return err
	}
	return WriteMasterSource(masterPath, BuiltinSkills(), BuiltinNames())
}

func writeSheet(f *excelize.File, sheet string, headers []string, rows [][]interface{}) error {
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return err
		}
	}
	for r, row := range rows {
		for c, v := range row {
			cell, _ := excelize.CoordinatesToCellName(c+1, r+2)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
		}
	}
	return nil
}

func phrasesJSON(p bank.Phrases) (string, error) {
	payload := struct {
		Minimal  string `json:"minimal,omitempty"`
		Standard string `json:"standard,omitempty"`
		Rich     string `json:"rich,omitempty"`
	}{p.Minimal, p.Standard, p.Rich}
	b, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func joinList(items []string) string {
	return strings.Join(items, " | ")
}

// compatibleCell leaves the cell blank when a context supports every
// variation, the shorthand the reader expands back to the full list
func compatibleCell(vs []question.Variation) string {
	if coversAll(vs) {
		return ""
	}
	return variationCell(vs)
}

func variationCell(vs []question.Variation) string {
	tokens := make([]string, 0, len(vs))
	for _, v := range vs {
		tokens = append(tokens, string(v))
	}
	return strings.Join(tokens, " | ")
}

func coversAll(vs []question.Variation) bool {
	all := question.AllVariations()
	if len(vs) != len(all) {
		return false
	}
	seen := make(map[question.Variation]bool, len(vs))
	for _, v := range vs {
		seen[v] = true
	}
	for _, v := range all {
		if !seen[v] {
			return false
		}
	}
	return true
}

func boolCell(b bool) string {
	if b {
		return "true"
	}
	return ""
}
