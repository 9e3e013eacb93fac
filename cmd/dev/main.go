package main

import (
	"context"
	"fmt"
	"os"

	"questgen/adapters/rng"
	"questgen/domain/assessment"
	"questgen/domain/question"
	"questgen/internal/assembly"
	"questgen/internal/bankkit"
	"questgen/internal/engine"
	"questgen/internal/engine/generators"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "questgen-dev",
		Short: "Question generator development tools",
	}

	rootCmd.AddCommand(
		newSmokeTestCmd(),
		newDeterminismTestCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newSmokeTestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "smoke",
		Short: "Run smoke tests over the built-in bank",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSmokeTests(cmd.Context())
		},
	}
	return cmd
}

func newDeterminismTestCmd() *cobra.Command {
	var seed int64

	cmd := &cobra.Command{
		Use:   "determinism",
		Short: "Verify that generation replays byte-identically for a seed",
		RunE: func(cmd *cobra.Command, args []string) error {
			return testDeterminism(cmd.Context(), seed)
		},
	}

	cmd.Flags().Int64Var(&seed, "seed", 42, "Seed to replay")

	return cmd
}

func newProducer() (*engine.Producer, error) {
	b, err := bankkit.BuiltinBank()
	if err != nil {
		return nil, fmt.Errorf("failed to assemble built-in bank: %w", err)
	}
	return engine.NewProducer(engine.New(b), generators.All(), rng.NewRNGAdapter()), nil
}

func runSmokeTests(ctx context.Context) error {
	fmt.Println("Running smoke tests...")

	producer, err := newProducer()
	if err != nil {
		return err
	}

	tests := []struct {
		name string
		fn   func(context.Context) error
	}{
		{"bank_load", func(ctx context.Context) error {
			summary := producer.Engine().Bank().Summarize()
			if summary.Contexts == 0 {
				return fmt.Errorf("bank has no contexts")
			}
			return nil
		}},
		{"all_variations_generate", func(ctx context.Context) error {
			for _, v := range question.AllVariations() {
				q, err := producer.Produce(ctx, engine.Params{
					Variation:  v,
					Level:      question.LevelStandard,
					Difficulty: question.DefaultDifficulty,
					Seed:       101,
				})
				if err != nil {
					return fmt.Errorf("%s: %w", v, err)
				}
				if q.Text == "" || q.Answer == "" || len(q.Steps) == 0 {
					return fmt.Errorf("%s: produced incomplete question", v)
				}
			}
			return nil
		}},
		{"difficulty_ladder", func(ctx context.Context) error {
			for d := question.MinDifficulty; d <= question.MaxDifficulty; d++ {
				if _, err := producer.Produce(ctx, engine.Params{
					Variation:  question.VariationCalculate,
					Level:      question.LevelStandard,
					Difficulty: d,
					Seed:       202,
				}); err != nil {
					return fmt.Errorf("difficulty %d: %w", d, err)
				}
			}
			return nil
		}},
		{"worksheet_build", func(ctx context.Context) error {
			builder := assembly.NewBuilder(producer, 4)
			built, err := builder.Build(ctx, assessment.Spec{
				Kind:      assessment.KindQuiz,
				AnswerKey: assessment.KeyWithSteps,
				Seed:      303,
				Sections: []assessment.SectionSpec{
					{Variation: question.VariationCalculate, Count: 3, Difficulty: 2, Level: question.LevelStandard},
					{Variation: question.VariationCompare, Count: 2, Difficulty: 3, Level: question.LevelStandard},
				},
			})
			if err != nil {
				return err
			}
			if built.QuestionCount() != 5 {
				return fmt.Errorf("expected 5 questions, got %d", built.QuestionCount())
			}
			return nil
		}},
		{"html_export", func(ctx context.Context) error {
			builder := assembly.NewBuilder(producer, 2)
			built, err := builder.Build(ctx, assessment.Spec{
				Kind: assessment.KindPractice,
				Seed: 404,
				Sections: []assessment.SectionSpec{
					{Variation: question.VariationFindTotal, Count: 2, Difficulty: 2, Level: question.LevelMinimal},
				},
			})
			if err != nil {
				return err
			}
			html := assembly.RenderHTML(built)
			if len(html) == 0 {
				return fmt.Errorf("empty HTML document")
			}
			return nil
		}},
	}

	passed := 0
	for _, test := range tests {
		fmt.Printf("  Running %s...", test.name)
		if err := test.fn(ctx); err != nil {
			fmt.Printf(" FAILED: %v\n", err)
		} else {
			fmt.Println(" PASSED")
			passed++
		}
	}

	fmt.Printf("\nSmoke tests: %d/%d passed\n", passed, len(tests))
	if passed < len(tests) {
		return fmt.Errorf("some smoke tests failed")
	}

	return nil
}

func testDeterminism(ctx context.Context, seed int64) error {
	fmt.Printf("Testing determinism for seed %d...\n", seed)

	producer, err := newProducer()
	if err != nil {
		return err
	}

	mismatches := 0
	for _, v := range question.AllVariations() {
		params := engine.Params{
			Variation:  v,
			Level:      question.LevelStandard,
			Difficulty: question.DefaultDifficulty,
			Seed:       seed,
		}

		first, err := producer.Produce(ctx, params)
		if err != nil {
			return fmt.Errorf("%s: %w", v, err)
		}
		second, err := producer.Produce(ctx, params)
		if err != nil {
			return fmt.Errorf("%s replay: %w", v, err)
		}

		if first.Text != second.Text || first.Answer != second.Answer || first.GivenData != second.GivenData {
			fmt.Printf("  %s: MISMATCH\n", v)
			mismatches++
			continue
		}
		fmt.Printf("  %s: deterministic\n", v)
	}

	if mismatches > 0 {
		return fmt.Errorf("%d variations replayed differently", mismatches)
	}

	fmt.Println("\nAll variations replay byte-identically.")
	return nil
}
