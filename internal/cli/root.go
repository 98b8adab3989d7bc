// Package cli implements receivablesctl, the command-line front end to the reporting services.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	portssvc "github.com/SscSPs/plot_receivables/internal/core/ports/services"
	"github.com/spf13/cobra"
)

// ServicesFactory opens the services for one command invocation and returns a release func.
type ServicesFactory func(ctx context.Context) (*portssvc.ServiceContainer, func(), error)

const (
	formatJSON = "json"
	formatCSV  = "csv"
)

// commonFlags are the flags shared by every subcommand
type commonFlags struct {
	Format string
}

type runner struct {
	factory     ServicesFactory
	flags       commonFlags
	now         func() time.Time
	defaultDays int

	services *portssvc.ServiceContainer
	release  func()
}

// Option configures the command tree.
type Option func(*runner)

// WithClock overrides the clock used for default dates.
func WithClock(now func() time.Time) Option {
	return func(r *runner) { r.now = now }
}

// WithStatementDefaultDays sets the statement window used when neither --from nor --period is given.
func WithStatementDefaultDays(days int) Option {
	return func(r *runner) {
		if days > 0 {
			r.defaultDays = days
		}
	}
}

// NewRootCmd builds the receivablesctl command tree.
func NewRootCmd(factory ServicesFactory, opts ...Option) *cobra.Command {
	r := &runner{factory: factory, now: time.Now, defaultDays: 30}
	for _, opt := range opts {
		opt(r)
	}

	cmd := &cobra.Command{
		Use:   "receivablesctl",
		Short: "Inspect and load plot sale receivables.",
		Long: `receivablesctl imports transactions and prints party ledgers,
customer statements and the receivables aging report as JSON or CSV.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := r.checkFormat(); err != nil {
				return err
			}
			services, release, err := r.factory(cmd.Context())
			if err != nil {
				return err
			}
			r.services, r.release = services, release
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if r.release != nil {
				r.release()
			}
		},
	}
	cmd.PersistentFlags().StringVar(&r.flags.Format, "format", formatJSON, "output format: json or csv")

	cmd.AddCommand(
		r.newImportCmd(),
		r.newLedgerCmd(),
		r.newStatementCmd(),
		r.newAgingCmd(),
	)
	return cmd
}

func (r *runner) checkFormat() error {
	r.flags.Format = strings.ToLower(r.flags.Format)
	switch r.flags.Format {
	case formatJSON, formatCSV:
		return nil
	default:
		return fmt.Errorf("unsupported format %q, use json or csv", r.flags.Format)
	}
}

// emit writes v as indented JSON, or calls writeCSV in csv mode.
func (r *runner) emit(w io.Writer, v any, writeCSV func(io.Writer) error) error {
	if r.flags.Format == formatCSV {
		return writeCSV(w)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
