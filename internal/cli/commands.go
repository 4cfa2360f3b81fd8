package cli

import (
	"errors"
	"fmt"

	"github.com/okian/bizmatch/internal/domain/model"
	"github.com/okian/bizmatch/internal/domain/questions"
	"github.com/spf13/cobra"
)

// ErrUnknownCategory is returned for a --category outside the quiz rounds.
var ErrUnknownCategory = errors.New("unknown category")

func newQuestionsCmd(_ *rootOptions) *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "questions",
		Short: "Print the questionnaire in quiz order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if category == "" {
				return printJSON(cmd.OutOrStdout(), questions.All())
			}
			for _, c := range model.Categories() {
				if string(c) == category {
					return printJSON(cmd.OutOrStdout(), questions.ByCategory(c))
				}
			}
			return fmt.Errorf("%w: %q", ErrUnknownCategory, category)
		},
	}
	cmd.Flags().StringVar(&category, "category", "", "Only print questions in this category")
	return cmd
}

func newModelsCmd(opts *rootOptions) *cobra.Command {
	var category, difficulty string

	cmd := &cobra.Command{
		Use:   "models",
		Short: "Print the business model catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := opts.newService(cmd.Context(), cmd)
			if err != nil {
				return err
			}
			defer svc.Close()

			models, err := svc.Models(category, difficulty)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), models)
		},
	}
	cmd.Flags().StringVar(&category, "category", "", "Only list models in this category")
	cmd.Flags().StringVar(&difficulty, "difficulty", "", "Only list Beginner, Intermediate or Advanced models")
	return cmd
}

func newModelCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "model <model-id>",
		Short: "Print one business model with its description sections",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := opts.newService(cmd.Context(), cmd)
			if err != nil {
				return err
			}
			defer svc.Close()

			page, err := svc.Model(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), page)
		},
	}
}

type validateOutput struct {
	Valid  bool                        `json:"valid"`
	Errors []questions.ValidationError `json:"errors,omitempty"`
}

func newValidateCmd(_ *rootOptions) *cobra.Command {
	var answersPath string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check an answers file against the questionnaire",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			answers, err := readAnswersFile(answersPath, cmd.InOrStdin())
			if err != nil {
				return err
			}
			verr := questions.Validate(answers)
			out := validateOutput{Valid: verr == nil}
			var details questions.ValidationErrors
			if errors.As(verr, &details) {
				out.Errors = details
			}
			if err := printJSON(cmd.OutOrStdout(), out); err != nil {
				return err
			}
			return verr
		},
	}
	cmd.Flags().StringVarP(&answersPath, "answers", "a", "", `Answers JSON file, or "-" for stdin`)
	return cmd
}

func newRecommendCmd(opts *rootOptions) *cobra.Command {
	var (
		answersPath string
		limit       int
	)

	cmd := &cobra.Command{
		Use:   "recommend",
		Short: "Rank the catalog against an answers file",
		Long: `Ranks every business model against the answers and prints the top matches
with their narrative analysis.

Examples:
  bizmatch recommend --answers answers.json
  bizmatch recommend --answers - --limit 2 < answers.json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			answers, err := readAnswersFile(answersPath, cmd.InOrStdin())
			if err != nil {
				return err
			}
			svc, err := opts.newService(cmd.Context(), cmd)
			if err != nil {
				return err
			}
			defer svc.Close()

			report, err := svc.Recommend(cmd.Context(), answers, limit)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), report)
		},
	}
	cmd.Flags().StringVarP(&answersPath, "answers", "a", "", `Answers JSON file, or "-" for stdin`)
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "Number of recommendations (default 4)")
	return cmd
}

func newDetailCmd(opts *rootOptions) *cobra.Command {
	var answersPath string

	cmd := &cobra.Command{
		Use:   "detail <model-id>",
		Short: "Score one business model with its factor breakdown",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			answers, err := readAnswersFile(answersPath, cmd.InOrStdin())
			if err != nil {
				return err
			}
			svc, err := opts.newService(cmd.Context(), cmd)
			if err != nil {
				return err
			}
			defer svc.Close()

			detail, err := svc.DetailFor(cmd.Context(), answers, args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), detail)
		},
	}
	cmd.Flags().StringVarP(&answersPath, "answers", "a", "", `Answers JSON file, or "-" for stdin`)
	return cmd
}
