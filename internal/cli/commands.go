package cli

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/SscSPs/plot_receivables/internal/adapters/csvio"
	"github.com/SscSPs/plot_receivables/internal/core/domain"
	"github.com/SscSPs/plot_receivables/internal/dto"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/cobra"
)

// newValidator validates DTOs against the same binding tags the HTTP layer uses.
func newValidator() (*validator.Validate, error) {
	v := validator.New()
	v.SetTagName("binding")
	if err := dto.RegisterValidators(v); err != nil {
		return nil, err
	}
	return v, nil
}

func (r *runner) newImportCmd() *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Append transactions from a CSV file",
		Long: `Append transactions from a CSV file with the header
party_id,date,type,amount,description,sale_id,installment_id.
Rows are stored in file order; the import stops at the first rejected row.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			recs, err := csvio.ReadTransactionsFile(file)
			if err != nil {
				return err
			}
			ids, err := r.services.Transactions.RecordTransactions(cmd.Context(), recs)
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d of %d transactions\n", len(ids), len(recs))
			if err != nil {
				return fmt.Errorf("import stopped at row %d: %w", len(ids)+1, err)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "CSV file to import")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func (r *runner) newLedgerCmd() *cobra.Command {
	var partyID int64
	cmd := &cobra.Command{
		Use:   "ledger",
		Short: "Print a party's ledger with running balance",
		RunE: func(cmd *cobra.Command, args []string) error {
			if partyID <= 0 {
				return errors.New("--party must be a positive id")
			}
			ledger, err := r.services.Ledger.GetCustomerLedger(cmd.Context(), partyID)
			if err != nil {
				return err
			}
			return r.emit(cmd.OutOrStdout(), dto.ToCustomerLedgerResponse(ledger), func(w io.Writer) error {
				return csvio.WriteLedger(w, ledger)
			})
		},
	}
	cmd.Flags().Int64VarP(&partyID, "party", "p", 0, "party id")
	_ = cmd.MarkFlagRequired("party")
	return cmd
}

func (r *runner) newStatementCmd() *cobra.Command {
	var (
		partyID int64
		query   dto.StatementQuery
	)
	cmd := &cobra.Command{
		Use:   "statement",
		Short: "Print a party's statement for a date window",
		Long: `Print a party's statement. --to defaults to today and --from to 30 days
before --to. --period 30|60|90 counts back from --to and cannot be combined with --from.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if partyID <= 0 {
				return errors.New("--party must be a positive id")
			}
			v, err := newValidator()
			if err != nil {
				return err
			}
			if err := v.Struct(query); err != nil {
				return fmt.Errorf("invalid statement window: %w", err)
			}
			from, to, err := query.Window(r.now(), r.defaultDays)
			if err != nil {
				return err
			}
			stmt, err := r.services.Reporting.CustomerStatement(cmd.Context(), partyID, from, to)
			if err != nil {
				return err
			}
			return r.emit(cmd.OutOrStdout(), dto.ToStatementResponse(stmt), func(w io.Writer) error {
				return csvio.WriteStatement(w, stmt)
			})
		},
	}
	cmd.Flags().Int64VarP(&partyID, "party", "p", 0, "party id")
	cmd.Flags().StringVar(&query.FromDate, "from", "", "first day of the window (YYYY-MM-DD)")
	cmd.Flags().StringVar(&query.ToDate, "to", "", "last day of the window (YYYY-MM-DD)")
	cmd.Flags().StringVar(&query.Period, "period", "", "preset window: 30, 60 or 90 days")
	_ = cmd.MarkFlagRequired("party")
	return cmd
}

func (r *runner) newAgingCmd() *cobra.Command {
	var (
		asOfStr string
		partyID int64
	)
	cmd := &cobra.Command{
		Use:   "aging",
		Short: "Print the receivables aging report",
		RunE: func(cmd *cobra.Command, args []string) error {
			asOf := domain.DateOnly(r.now())
			if asOfStr != "" {
				parsed, err := time.Parse(dto.DateLayout, asOfStr)
				if err != nil {
					return fmt.Errorf("invalid --as-of %q, use YYYY-MM-DD", asOfStr)
				}
				asOf = parsed
			}

			var filter *int64
			if cmd.Flags().Changed("party") {
				if partyID <= 0 {
					return errors.New("--party must be a positive id")
				}
				filter = &partyID
			}

			report, err := r.services.Reporting.ReceivablesAging(cmd.Context(), asOf, filter)
			if err != nil {
				return err
			}
			return r.emit(cmd.OutOrStdout(), dto.ToAgingReportResponse(report), func(w io.Writer) error {
				return csvio.WriteAging(w, report)
			})
		},
	}
	cmd.Flags().StringVar(&asOfStr, "as-of", "", "report date (YYYY-MM-DD), default today")
	cmd.Flags().Int64VarP(&partyID, "party", "p", 0, "restrict the report to one party")
	return cmd
}
