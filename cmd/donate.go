package cmd

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"nynf/internal/app"
	"nynf/internal/checkout"
	"nynf/internal/di"
	"nynf/internal/errors"
	"nynf/internal/store"
	"nynf/internal/ui"
)

// NewDonateCmd builds the donation checkout command
func NewDonateCmd(appCtx *app.Context, c *di.Container) *cobra.Command {
	var (
		amountFlag string
		purpose    string
		anonymous  bool
		identity   identityFlags
	)

	cmd := &cobra.Command{
		Use:   "donate",
		Short: "Open a donation checkout session",
		Long: `Open a hosted checkout session for a donation. On success the
transaction is stored and a donation receipt PDF is generated.

Missing fields are prompted interactively, with values from the last
unfinished donation form pre-filled. The draft is cleared once the
payment succeeds.

Example:
  nynf donate --amount 500 --name "Asha" --email asha@example.com --phone 9999999999`,
		RunE: func(cmd *cobra.Command, args []string) error {
			st := c.Store()
			draft, _ := st.LoadDraft(store.KeyDonationDraft)

			amount, err := resolveAmount(amountFlag, draft.Amount, c)
			if err != nil {
				if ui.IsAborted(err) {
					return nil
				}
				return reportSessionError(c, err)
			}

			donor, err := collectIdentity(identity, draft, anonymous)
			if err != nil {
				if ui.IsAborted(err) {
					return nil
				}
				return reportSessionError(c, err)
			}

			// Persist the filled form before the session opens so an
			// interrupted run can be resumed
			_ = st.SaveDraft(store.KeyDonationDraft, store.Draft{
				Amount: amount.String(),
				Name:   donor.Name,
				Email:  donor.Email,
				Phone:  donor.Phone,
			})

			if msg := appCtx.Config.ImpactMessageFor(amount); msg != "" {
				fmt.Println(msg)
			}

			_, err = c.Adapter().Open(cmd.Context(), checkout.SessionRequest{
				Amount:    amount,
				Purpose:   purpose,
				Identity:  donor,
				Anonymous: anonymous,
			}, renderOnSuccess(c, false))
			if err != nil {
				return reportSessionError(c, err)
			}

			st.ClearDraft(store.KeyDonationDraft)
			fmt.Println(c.Catalog().T("payment_successful"))
			return nil
		},
	}

	cmd.Flags().StringVar(&amountFlag, "amount", "", "Donation amount in "+appCtx.Config.Currency)
	cmd.Flags().StringVar(&purpose, "purpose", "Donation", "Donation purpose label")
	cmd.Flags().BoolVar(&anonymous, "anonymous", false, "Donate anonymously (identity replaced by placeholders)")
	identity.register(cmd)

	return cmd
}

// resolveAmount parses the amount flag, prompting when absent
func resolveAmount(flagValue, draftValue string, c *di.Container) (decimal.Decimal, error) {
	if flagValue != "" {
		amount, err := decimal.NewFromString(strings.TrimSpace(flagValue))
		if err != nil {
			return decimal.Decimal{}, errors.Validation(c.Catalog().T("invalid_amount"))
		}
		return amount, nil
	}

	if draftValue != "" && !ui.IsInteractive() {
		if amount, err := decimal.NewFromString(draftValue); err == nil {
			return amount, nil
		}
	}

	if !ui.IsInteractive() {
		return decimal.Decimal{}, errors.Validation(c.Catalog().T("invalid_amount"))
	}

	amount, err := ui.PromptAmount("Amount")
	if err != nil {
		if ui.IsAborted(err) {
			return decimal.Decimal{}, err
		}
		return decimal.Decimal{}, errors.Validation(c.Catalog().T("invalid_amount"))
	}
	return amount, nil
}
