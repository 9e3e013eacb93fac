package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"questgen/adapters/excel"
	"questgen/adapters/rng"
	"questgen/domain/assessment"
	"questgen/domain/bank"
	"questgen/domain/core"
	"questgen/domain/question"
	"questgen/internal/assembly"
	"questgen/internal/bankkit"
	"questgen/internal/engine"
	"questgen/internal/engine/generators"
	"questgen/models"

	"github.com/spf13/cobra"
)

const (
	defaultBankFile   = "ContextBanks.xlsx"
	defaultMasterFile = "WorksheetMergeMasterSourceFile.xlsx"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "questgen-cli",
		Short: "Question generator CLI for inspecting the bank and producing questions offline",
	}

	rootCmd.AddCommand(
		newInspectCmd(),
		newGenerateCmd(),
		newWorksheetCmd(),
		newSeedWorkbooksCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newInspectCmd() *cobra.Command {
	var dataDir string

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Show the loaded context bank: categories, contexts, variation coverage",
		Long: `Load the context bank and print what generation has to work with.

Reads the workbook files from the data directory when they exist, otherwise
falls back to the built-in bank.

Example: questgen-cli inspect --data-dir data`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(cmd.Context(), dataDir)
		},
	}

	cmd.Flags().StringVar(&dataDir, "data-dir", "data", "Directory holding the workbook files")

	return cmd
}

func newGenerateCmd() *cobra.Command {
	var dataDir string
	var contextID string
	var level string
	var difficulty int
	var seed int64
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "generate [variation]",
		Short: "Generate one question and print it",
		Long: `Generate a single question for a variation and print it with the answer
and worked steps.

Variations: calculate, missing_value, compare, missing_count, find_total,
new_value, target_value, combine_groups.

Example: questgen-cli generate calculate --context server-tips --seed 42`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd.Context(), dataDir, args[0], contextID, level, difficulty, seed, asJSON)
		},
	}

	cmd.Flags().StringVar(&dataDir, "data-dir", "data", "Directory holding the workbook files")
	cmd.Flags().StringVar(&contextID, "context", "", "Context ID (random compatible context when empty)")
	cmd.Flags().StringVar(&level, "level", "standard", "Narrative level: minimal|standard|rich")
	cmd.Flags().IntVar(&difficulty, "difficulty", int(question.DefaultDifficulty), "Difficulty 1-5")
	cmd.Flags().Int64Var(&seed, "seed", 0, "Random seed for deterministic generation (0 = random)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the question as JSON")

	return cmd
}

func newWorksheetCmd() *cobra.Command {
	var dataDir string
	var kind string
	var title string
	var answerKey string
	var count int
	var difficulty int
	var level string
	var seed int64
	var out string
	var format string

	cmd := &cobra.Command{
		Use:   "worksheet [sections...]",
		Short: "Build a printable assessment and write it to a file",
		Long: `Build an assessment from one section per argument and export it.

Each argument is either a variation name or "skill:<id>" for a skill section
from the master source file. Every section gets --count questions.

Example: questgen-cli worksheet calculate compare --kind quiz --count 4 --out quiz.html`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWorksheet(cmd.Context(), worksheetArgs{
				dataDir:    dataDir,
				kind:       kind,
				title:      title,
				answerKey:  answerKey,
				sections:   args,
				count:      count,
				difficulty: difficulty,
				level:      level,
				seed:       seed,
				out:        out,
				format:     format,
			})
		},
	}

	cmd.Flags().StringVar(&dataDir, "data-dir", "data", "Directory holding the workbook files")
	cmd.Flags().StringVar(&kind, "kind", "worksheet", "Assessment kind: practice|worksheet|quiz|test")
	cmd.Flags().StringVar(&title, "title", "", "Document title (kind display name when empty)")
	cmd.Flags().StringVar(&answerKey, "answer-key", "none", "Answer key: none|answers_only|with_steps")
	cmd.Flags().IntVar(&count, "count", 4, "Questions per section")
	cmd.Flags().IntVar(&difficulty, "difficulty", int(question.DefaultDifficulty), "Difficulty 1-5")
	cmd.Flags().StringVar(&level, "level", "standard", "Narrative level: minimal|standard|rich")
	cmd.Flags().Int64Var(&seed, "seed", 0, "Random seed for deterministic assembly (0 = random)")
	cmd.Flags().StringVar(&out, "out", "worksheet.html", "Output file path")
	cmd.Flags().StringVar(&format, "format", "", "Output format: markdown|html (inferred from --out when empty)")

	return cmd
}

func newSeedWorkbooksCmd() *cobra.Command {
	var dataDir string

	cmd := &cobra.Command{
		Use:   "seed-workbooks",
		Short: "Write the built-in bank as editable workbook files",
		Long: `Write ContextBanks.xlsx and WorksheetMergeMasterSourceFile.xlsx under the
data directory, populated with the built-in contexts, skills and names.
Existing files are overwritten.

Example: questgen-cli seed-workbooks --data-dir data`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSeedWorkbooks(dataDir)
		},
	}

	cmd.Flags().StringVar(&dataDir, "data-dir", "data", "Directory to write the workbook files into")

	return cmd
}

// loadBank resolves the bank source the same way the server does: workbooks
// when present, built-in data otherwise.
func loadBank(ctx context.Context, dataDir string) (*bank.Bank, error) {
	bankPath := filepath.Join(dataDir, defaultBankFile)
	if _, err := os.Stat(bankPath); err != nil {
		b, err := bankkit.BuiltinBank()
		if err != nil {
			return nil, fmt.Errorf("failed to assemble built-in bank: %w", err)
		}
		return b, nil
	}

	masterPath := filepath.Join(dataDir, defaultMasterFile)
	if _, err := os.Stat(masterPath); err != nil {
		masterPath = ""
	}

	reader := excel.NewBankReader(bankPath, masterPath)
	b, err := reader.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", reader.Describe(), err)
	}
	return b, nil
}

func newProducer(b *bank.Bank) *engine.Producer {
	return engine.NewProducer(engine.New(b), generators.All(), rng.NewRNGAdapter())
}

func runInspect(ctx context.Context, dataDir string) error {
	b, err := loadBank(ctx, dataDir)
	if err != nil {
		return err
	}
	summary := b.Summarize()

	fmt.Printf("=== CONTEXT BANK ===\n")
	fmt.Printf("Source: %s\n", summary.Source)
	fmt.Printf("Fingerprint: %s\n", summary.Fingerprint)
	fmt.Printf("Contexts: %d in %d categories\n", summary.Contexts, summary.Categories)
	fmt.Printf("Skills: %d | Student names: %d\n", summary.Skills, summary.Names)

	fmt.Printf("\n=== VARIATION COVERAGE ===\n")
	for _, v := range question.AllVariations() {
		fmt.Printf("%-14s %3d contexts\n", v, summary.Variations[v])
	}

	fmt.Printf("\n=== CATEGORIES ===\n")
	for _, group := range b.Grouped() {
		names := make([]string, 0, len(group.Contexts))
		for _, c := range group.Contexts {
			names = append(names, c.Name)
		}
		fmt.Printf("%s (%d): %s\n", group.Name, len(group.Contexts), strings.Join(names, ", "))
	}

	if len(b.Skills()) > 0 {
		fmt.Printf("\n=== SKILLS ===\n")
		for _, s := range b.Skills() {
			fmt.Printf("%-20s %s (difficulty %d, %d variations)\n", s.ID, s.Name, s.Difficulty, len(s.Variations))
		}
	}

	return nil
}

func runGenerate(ctx context.Context, dataDir, variationStr, contextID, levelStr string, difficulty int, seed int64, asJSON bool) error {
	variation, err := question.ParseVariation(variationStr)
	if err != nil {
		return err
	}
	level, err := question.ParseLevel(levelStr)
	if err != nil {
		return err
	}

	b, err := loadBank(ctx, dataDir)
	if err != nil {
		return err
	}
	producer := newProducer(b)
	if seed == 0 {
		seed = producer.NextSeed()
	}

	q, err := producer.Produce(ctx, engine.Params{
		Variation:  variation,
		ContextID:  core.ContextID(contextID),
		Level:      level,
		Difficulty: question.Difficulty(difficulty),
		Seed:       seed,
	})
	if err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}

	if asJSON {
		data, err := json.MarshalIndent(models.NewQuestionResponse(q, true), "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	}

	fmt.Printf("=== QUESTION ===\n")
	fmt.Printf("Variation: %s | Context: %s (%s)\n", q.Variation.DisplayName(), q.ContextName, q.Category)
	fmt.Printf("Difficulty: %d (%s) | Level: %s | Seed: %d\n", q.Difficulty, q.Difficulty.Label(), q.Level, q.Seed)
	fmt.Printf("\n%s\n", q.Text)
	if q.GivenData != "" {
		fmt.Printf("\nData: %s\n", q.GivenData)
	}

	fmt.Printf("\n=== ANSWER ===\n")
	fmt.Printf("%s (%d marks)\n", q.Answer, q.Marks)
	for i, step := range q.Steps {
		fmt.Printf("%d. %s\n", i+1, step)
	}

	return nil
}

type worksheetArgs struct {
	dataDir    string
	kind       string
	title      string
	answerKey  string
	sections   []string
	count      int
	difficulty int
	level      string
	seed       int64
	out        string
	format     string
}

func runWorksheet(ctx context.Context, args worksheetArgs) error {
	kind, err := assessment.ParseKind(args.kind)
	if err != nil {
		return err
	}
	keyMode, err := assessment.ParseAnswerKeyMode(args.answerKey)
	if err != nil {
		return err
	}
	level, err := question.ParseLevel(args.level)
	if err != nil {
		return err
	}

	format := args.format
	if format == "" {
		if strings.HasSuffix(args.out, ".md") {
			format = "markdown"
		} else {
			format = "html"
		}
	}
	if format != "markdown" && format != "html" {
		return fmt.Errorf("invalid format: %s (expected markdown|html)", format)
	}

	sections := make([]assessment.SectionSpec, 0, len(args.sections))
	for _, token := range args.sections {
		section := assessment.SectionSpec{
			Count:      args.count,
			Difficulty: question.Difficulty(args.difficulty),
			Level:      level,
		}
		if id, ok := strings.CutPrefix(token, "skill:"); ok {
			section.SkillID = core.SkillID(id)
		} else {
			variation, err := question.ParseVariation(token)
			if err != nil {
				return fmt.Errorf("section %q: %w", token, err)
			}
			section.Variation = variation
		}
		sections = append(sections, section)
	}

	b, err := loadBank(ctx, args.dataDir)
	if err != nil {
		return err
	}
	builder := assembly.NewBuilder(newProducer(b), 4)

	result, err := builder.Build(ctx, assessment.Spec{
		Kind:      kind,
		Title:     args.title,
		AnswerKey: keyMode,
		Sections:  sections,
		Seed:      args.seed,
	})
	if err != nil {
		return fmt.Errorf("assessment build failed: %w", err)
	}

	var output []byte
	if format == "markdown" {
		output = []byte(assembly.RenderMarkdown(result))
	} else {
		output = assembly.RenderHTML(result)
	}
	if err := os.WriteFile(args.out, output, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", args.out, err)
	}

	fmt.Printf("=== ASSESSMENT ===\n")
	fmt.Printf("Kind: %s | Title: %s\n", result.Kind, result.Title)
	fmt.Printf("Questions: %d | Total marks: %d | Seed: %d\n", result.QuestionCount(), result.TotalMarks(), result.Seed)
	fmt.Printf("Wrote %s (%d bytes)\n", args.out, len(output))

	return nil
}

func runSeedWorkbooks(dataDir string) error {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return fmt.Errorf("failed to create %s: %w", dataDir, err)
	}

	bankPath := filepath.Join(dataDir, defaultBankFile)
	masterPath := filepath.Join(dataDir, defaultMasterFile)
	if err := bankkit.Seed(bankPath, masterPath); err != nil {
		return fmt.Errorf("failed to seed workbooks: %w", err)
	}

	fmt.Printf("Wrote %s\n", bankPath)
	fmt.Printf("Wrote %s\n", masterPath)
	fmt.Println("Edit the workbooks and restart the server to pick up changes.")

	return nil
}
