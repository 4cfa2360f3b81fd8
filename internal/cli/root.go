// Package cli implements the bizmatch command line tool, which scores a
// local answers file without running the HTTP server.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	service "github.com/okian/bizmatch/internal/app"
	"github.com/okian/bizmatch/internal/domain/catalog"
	"github.com/okian/bizmatch/pkg/logger"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	catalogPath string
	verbose     bool
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "bizmatch",
		Short: "Match questionnaire answers to online business models",
		Long: `bizmatch scores a set of questionnaire answers against the business model
catalog and prints ranked recommendations as JSON.

Answers files hold either {"answers":[...]} or a bare list of
{"questionId": ..., "answer": ...} objects. Use "-" to read from stdin.`,
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&opts.catalogPath, "catalog", "", "YAML catalog file (default is the built-in catalog)")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Verbose output")

	root.AddCommand(
		newQuestionsCmd(opts),
		newModelsCmd(opts),
		newModelCmd(opts),
		newValidateCmd(opts),
		newRecommendCmd(opts),
		newDetailCmd(opts),
	)
	return root
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// newService builds a memory-backed service over the selected catalog.
func (o *rootOptions) newService(ctx context.Context, cmd *cobra.Command) (*service.Service, error) {
	log := logger.NewNop()
	if o.verbose {
		if err := logger.Init("debug", "console"); err != nil {
			return nil, err
		}
		log = logger.Get()
	}

	cat := catalog.Default()
	if o.catalogPath != "" {
		loaded, err := catalog.Load(ctx, catalog.WithFile(o.catalogPath))
		if err != nil {
			return nil, fmt.Errorf("failed to load catalog: %w", err)
		}
		cat = loaded
	}
	log.Debug(ctx, "catalog loaded", logger.Int("models", cat.Len()), logger.String("command", cmd.Name()))
	return service.New(service.WithCatalog(cat), service.WithLogger(log)), nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
