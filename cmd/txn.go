package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"nynf/internal/app"
	"nynf/internal/di"
	"nynf/internal/errors"
	"nynf/internal/txn"
	"nynf/internal/ui"
)

// NewTxnCmd builds the transaction query command group
func NewTxnCmd(appCtx *app.Context, c *di.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "txn",
		Short: "List, export and regenerate documents for stored transactions",
	}

	cmd.AddCommand(newTxnListCmd(c))
	cmd.AddCommand(newTxnExportCmd(c))
	cmd.AddCommand(newTxnDocCmd(appCtx, c))

	return cmd
}

func newTxnListCmd(c *di.Container) *cobra.Command {
	var (
		search string
		status string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List stored transactions as a table",
		Long: `List stored transactions, newest last. The search term matches
transaction id, name, email, phone and purpose; the status flag narrows
to one of success, failed or cancelled.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validStatus(status); err != nil {
				return err
			}

			records := txn.Filter(c.Store().All(), search, status)
			if len(records) == 0 {
				fmt.Println(c.Catalog().T("no_transactions"))
				return nil
			}

			ui.WriteTransactionTable(os.Stdout, records)
			return nil
		},
	}

	addFilterFlags(cmd, &search, &status)
	return cmd
}

func newTxnExportCmd(c *di.Container) *cobra.Command {
	var (
		search string
		status string
		output string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export stored transactions to CSV",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validStatus(status); err != nil {
				return err
			}

			records := txn.Filter(c.Store().All(), search, status)
			if len(records) == 0 {
				fmt.Println(c.Catalog().T("no_transactions"))
				return nil
			}

			csv, err := txn.ToCSV(records)
			if err != nil {
				return err
			}
			if err := os.WriteFile(output, []byte(csv), 0o644); err != nil {
				return errors.Storage("failed to write "+output, err)
			}

			fmt.Printf("%s (%s, %d records)\n", c.Catalog().T("exported_csv"), output, len(records))
			return nil
		},
	}

	addFilterFlags(cmd, &search, &status)
	cmd.Flags().StringVarP(&output, "output", "o", txn.ExportFilename, "Output file path")
	return cmd
}

func newTxnDocCmd(appCtx *app.Context, c *di.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "doc [transaction-id]",
		Short: "Regenerate the documents for a stored transaction",
		Long: `Regenerate the PDF documents for a stored transaction: a receipt
for donations, a certificate and member ID card for memberships. With no
argument an interactive transaction picker is shown.

Example:
  nynf txn doc txn_7f3a21c09b8d4e5f`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			records := c.Store().All()

			var record txn.Record
			if len(args) == 1 {
				found, ok := txn.FindByID(records, args[0])
				if !ok {
					return errors.NotFound("transaction " + args[0])
				}
				record = found
			} else {
				if len(records) == 0 {
					fmt.Println(c.Catalog().T("no_transactions"))
					return nil
				}
				if !ui.IsInteractive() {
					return errors.Validation("a transaction id is required in non-interactive mode")
				}
				picked, err := ui.RunTransactionPicker(records)
				if err != nil {
					if ui.IsAborted(err) {
						return nil
					}
					return err
				}
				record = picked
			}

			paths, err := c.Renderer().RenderDocuments(record, tierPermanent(appCtx, record))
			if err != nil {
				fmt.Printf("%s document: %v\n", c.Catalog().T("receipt_failed"), err)
				return err
			}
			for _, path := range paths {
				fmt.Printf("%s %s\n", path, c.Catalog().T("receipt_generated"))
			}
			return nil
		},
	}

	return cmd
}

func addFilterFlags(cmd *cobra.Command, search, status *string) {
	cmd.Flags().StringVarP(search, "search", "s", "", "Filter by id, name, email, phone or purpose")
	cmd.Flags().StringVar(status, "status", txn.StatusAll, "Filter by status: success|failed|cancelled|all")
}

func validStatus(status string) error {
	switch status {
	case txn.StatusAll, string(txn.StatusSuccess), string(txn.StatusFailed), string(txn.StatusCancelled):
		return nil
	default:
		return errors.Validation("unknown status " + status + "; expected success, failed, cancelled or all")
	}
}

// tierPermanent reports whether the record's purpose names a permanent
// membership tier. Stored records carry the tier label, not the id.
func tierPermanent(appCtx *app.Context, record txn.Record) bool {
	for _, tier := range appCtx.Config.MembershipTiers {
		if tier.Label == record.Purpose {
			return tier.Permanent
		}
	}
	return false
}
