package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/marcos-nsantos/relief-map-backend/internal/domain/valueobject"
)

type LocaleDetector interface {
	Detect(ctx context.Context, ip string) (*valueobject.Locale, error)
}

// Dependencies are the collaborators commands reach outside the process with.
type Dependencies struct {
	Locale  LocaleDetector
	Migrate func(ctx context.Context) error
	Version string
}

func NewRootCommand(deps Dependencies) *cobra.Command {
	root := &cobra.Command{
		Use:           "reliefctl",
		Short:         "Inspect the relief map location catalog and service region.",
		Version:       deps.Version,
		SilenceErrors: true,
		SilenceUsage:  true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}
	root.PersistentFlags().StringP("format", "f", string(FormatTable), "Output format: table, json or yaml.")

	root.AddCommand(newCatalogCommand())
	root.AddCommand(newGenerateCommand())
	root.AddCommand(newRegionCommand())
	root.AddCommand(newLocaleCommand(deps))
	root.AddCommand(newMigrateCommand(deps))

	return root
}

func outputFormat(cmd *cobra.Command) (Format, error) {
	raw, _ := cmd.Flags().GetString("format")
	return ParseFormat(raw)
}

// Execute runs the command tree and returns the process exit code.
func Execute(ctx context.Context, args []string, deps Dependencies, stdout, stderr io.Writer) int {
	root := NewRootCommand(deps)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.ExecuteContext(ctx); err != nil {
		_, _ = fmt.Fprintf(stderr, "error: %v\n", err)
		if errors.Is(err, errUsage) {
			return 2
		}
		return 1
	}
	return 0
}

var errUsage = errors.New("usage")
