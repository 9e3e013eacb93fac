package excel

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/tidwall/gjson"

	"questgen/domain/bank"
	"questgen/domain/core"
	"questgen/domain/question"
	"questgen/internal"
	"questgen/ports"
)

// Sheet names inside the two workbooks
const (
	SheetContexts = "Contexts"
	SheetPhrases  = "Phrases"
	SheetSkills   = "Skills"
	SheetNames    = "Names"
)

// BankReader loads the full context bank: contexts and phrase templates
// from the bank workbook, skills and student names from the master source
// workbook. The master workbook is optional; without it the bank carries
// no skills and generation falls back to a default name.
type BankReader struct {
	bankFile   *DataReader
	masterFile *DataReader
	logger     *internal.Logger
}

// NewBankReader creates a reader over the two data files. masterPath may be
// empty when no master source workbook is configured.
func NewBankReader(bankPath, masterPath string) *BankReader {
	r := &BankReader{
		bankFile: NewDataReader(bankPath),
		logger:   internal.DefaultLogger.WithTag("BankReader"),
	}
	if masterPath != "" {
		r.masterFile = NewDataReader(masterPath)
	}
	return r
}

// Describe names the data files behind the bank
func (r *BankReader) Describe() string {
	if r.masterFile == nil {
		return filepath.Base(r.bankFile.Path())
	}
	return filepath.Base(r.bankFile.Path()) + " + " + filepath.Base(r.masterFile.Path())
}

// Load reads, validates and assembles the bank
func (r *BankReader) Load(ctx context.Context) (*bank.Bank, error) {
	contexts, err := r.loadContexts()
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var skills []bank.Skill
	var names []string
	if r.masterFile != nil {
		if !r.masterFile.Exists() {
			r.logger.Warn("master source file %s missing, loading bank without skills", r.masterFile.Path())
		} else {
			skills, err = r.loadSkills()
			if err != nil {
				return nil, err
			}
			names, err = r.loadNames()
			if err != nil {
				return nil, err
			}
		}
	}

	b, err := bank.New(r.Describe(), contexts, skills, names)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", core.ErrBankInvalid, err)
	}
	r.logger.Info("bank loaded: %d contexts, %d skills, %d names, fingerprint %s",
		b.Len(), len(b.Skills()), len(b.Names()), b.Fingerprint().Short())
	return b, nil
}

func (r *BankReader) loadContexts() ([]bank.Context, error) {
	sheet, err := r.bankFile.ReadSheet(SheetContexts)
	if err != nil {
		return nil, err
	}

	contexts := make([]bank.Context, 0, sheet.Len())
	for i := 0; i < sheet.Len(); i++ {
		c, err := r.parseContext(sheet, i)
		if err != nil {
			return nil, err
		}
		contexts = append(contexts, c)
	}

	if err := r.applyPhraseOverrides(contexts); err != nil {
		return nil, err
	}
	return contexts, nil
}

func (r *BankReader) parseContext(sheet *SheetData, i int) (bank.Context, error) {
	var c bank.Context

	id, err := sheet.Require(i, "id")
	if err != nil {
		return c, err
	}
	name, err := sheet.Require(i, "name")
	if err != nil {
		return c, err
	}
	category, err := sheet.Require(i, "category")
	if err != nil {
		return c, err
	}
	valueMin, err := sheet.Float(i, "value_min")
	if err != nil {
		return c, err
	}
	valueMax, err := sheet.Float(i, "value_max")
	if err != nil {
		return c, err
	}
	decimals, err := sheet.Int(i, "decimals", 0)
	if err != nil {
		return c, err
	}
	allowNegative, err := sheet.Bool(i, "allow_negative")
	if err != nil {
		return c, err
	}
	itemLabel, err := sheet.Require(i, "item_label")
	if err != nil {
		return c, err
	}
	unitSpaced, err := sheet.Bool(i, "unit_spaced")
	if err != nil {
		return c, err
	}

	compatible, err := r.parseCompatible(sheet, i)
	if err != nil {
		return c, err
	}
	phrases, err := r.parsePhrasesJSON(sheet, i)
	if err != nil {
		return c, err
	}

	c = bank.Context{
		ID:          core.ContextID(id),
		Name:        name,
		Category:    category,
		Description: sheet.Get(i, "description"),
		Unit: bank.Unit{
			Symbol:   sheet.Get(i, "unit_symbol"),
			Position: bank.UnitPosition(sheet.Get(i, "unit_position")),
			Spaced:   unitSpaced,
		},
		ValueMin:      valueMin,
		ValueMax:      valueMax,
		Decimals:      decimals,
		AllowNegative: allowNegative,
		ItemLabel:     itemLabel,
		PeriodLabel:   sheet.Get(i, "period_label"),
		DataLabel:     sheet.Get(i, "data_label"),
		MeanLabel:     sheet.Get(i, "mean_label"),
		PairLabels:    sheet.List(i, "pair_labels"),
		Subjects:      sheet.List(i, "subjects"),
		Compatible:    compatible,
		Phrases:       phrases,
	}

	if err := c.Validate(); err != nil {
		return c, core.NewBankRowError(sheet.Sheet, sheet.Line(i), "id", err.Error())
	}
	return c, nil
}

// parseCompatible reads the pipe-separated variation list. A blank cell
// advertises every variation.
func (r *BankReader) parseCompatible(sheet *SheetData, i int) ([]question.Variation, error) {
	tokens := sheet.List(i, "compatible")
	if len(tokens) == 0 {
		return question.AllVariations(), nil
	}
	out := make([]question.Variation, 0, len(tokens))
	for _, tok := range tokens {
		v, err := question.ParseVariation(tok)
		if err != nil {
			return nil, core.NewBankRowError(sheet.Sheet, sheet.Line(i), "compatible", "unknown variation "+tok)
		}
		out = append(out, v)
	}
	return out, nil
}

// parsePhrasesJSON reads the per-level narrative templates from one JSON
// cell: {"minimal": "...", "standard": "...", "rich": "..."}
func (r *BankReader) parsePhrasesJSON(sheet *SheetData, i int) (bank.Phrases, error) {
	raw := sheet.Get(i, "phrases_json")
	if raw == "" {
		return bank.Phrases{}, nil
	}
	if !gjson.Valid(raw) {
		return bank.Phrases{}, core.NewBankRowError(sheet.Sheet, sheet.Line(i), "phrases_json", "invalid JSON")
	}
	return bank.Phrases{
		Minimal:  gjson.Get(raw, "minimal").String(),
		Standard: gjson.Get(raw, "standard").String(),
		Rich:     gjson.Get(raw, "rich").String(),
	}, nil
}

// applyPhraseOverrides merges the optional Phrases sheet on top of the
// phrases_json cells. Only non-empty cells override.
func (r *BankReader) applyPhraseOverrides(contexts []bank.Context) error {
	if !r.bankFile.HasSheet(SheetPhrases) || r.bankFile.fileType == "csv" {
		return nil
	}
	sheet, err := r.bankFile.ReadSheet(SheetPhrases)
	if err != nil {
		return err
	}

	byID := make(map[core.ContextID]*bank.Context, len(contexts))
	for i := range contexts {
		byID[contexts[i].ID] = &contexts[i]
	}

	for i := 0; i < sheet.Len(); i++ {
		id, err := sheet.Require(i, "context_id")
		if err != nil {
			return err
		}
		c, ok := byID[core.ContextID(id)]
		if !ok {
			return core.NewBankRowError(sheet.Sheet, sheet.Line(i), "context_id", "unknown context "+id)
		}
		if v := sheet.Get(i, "minimal"); v != "" {
			c.Phrases.Minimal = v
		}
		if v := sheet.Get(i, "standard"); v != "" {
			c.Phrases.Standard = v
		}
		if v := sheet.Get(i, "rich"); v != "" {
			c.Phrases.Rich = v
		}
	}
	return nil
}

func (r *BankReader) loadSkills() ([]bank.Skill, error) {
	if !r.masterFile.HasSheet(SheetSkills) {
		r.logger.Warn("master source has no %s sheet", SheetSkills)
		return nil, nil
	}
	sheet, err := r.masterFile.ReadSheet(SheetSkills)
	if err != nil {
		return nil, err
	}

	skills := make([]bank.Skill, 0, sheet.Len())
	for i := 0; i < sheet.Len(); i++ {
		id, err := sheet.Require(i, "id")
		if err != nil {
			return nil, err
		}
		name, err := sheet.Require(i, "name")
		if err != nil {
			return nil, err
		}
		difficulty, err := sheet.Int(i, "difficulty", 2)
		if err != nil {
			return nil, err
		}

		var variations []question.Variation
		for _, tok := range sheet.List(i, "variations") {
			v, err := question.ParseVariation(tok)
			if err != nil {
				return nil, core.NewBankRowError(sheet.Sheet, sheet.Line(i), "variations", "unknown variation "+tok)
			}
			variations = append(variations, v)
		}
		if len(variations) == 0 {
			variations = question.AllVariations()
		}

		s := bank.Skill{
			ID:          core.SkillID(id),
			Name:        name,
			Description: sheet.Get(i, "description"),
			Variations:  variations,
			Difficulty:  question.Difficulty(difficulty),
		}
		if err := s.Validate(); err != nil {
			return nil, core.NewBankRowError(sheet.Sheet, sheet.Line(i), "id", err.Error())
		}
		skills = append(skills, s)
	}
	return skills, nil
}

// loadNames reads the student name pool. A CSV master file carries only
// the skills table, so names stay empty there.
func (r *BankReader) loadNames() ([]string, error) {
	if r.masterFile.fileType == "csv" || !r.masterFile.HasSheet(SheetNames) {
		return nil, nil
	}
	sheet, err := r.masterFile.ReadSheet(SheetNames)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, sheet.Len())
	for i := 0; i < sheet.Len(); i++ {
		if name := sheet.Get(i, "name"); name != "" {
			names = append(names, name)
		}
	}
	return names, nil
}

var _ ports.BankPort = (*BankReader)(nil)
