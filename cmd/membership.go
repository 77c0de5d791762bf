package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"nynf/internal/app"
	"nynf/internal/checkout"
	"nynf/internal/config"
	"nynf/internal/di"
	"nynf/internal/errors"
	"nynf/internal/store"
	"nynf/internal/ui"
)

// NewMembershipCmd builds the membership checkout command
func NewMembershipCmd(appCtx *app.Context, c *di.Container) *cobra.Command {
	var (
		tierFlag string
		identity identityFlags
	)

	cmd := &cobra.Command{
		Use:   "membership",
		Short: "Open a membership checkout session",
		Long: `Open a hosted checkout session for a membership. On success the
transaction is stored and a membership certificate plus member ID card
are generated, both carrying a QR-encoded member summary.

Example:
  nynf membership --tier life --name "Meera" --email meera@example.com --phone 8888888888`,
		RunE: func(cmd *cobra.Command, args []string) error {
			st := c.Store()
			draft, _ := st.LoadDraft(store.KeyMembershipDraft)

			tier, err := resolveTier(appCtx.Config, tierFlag, draft.Type)
			if err != nil {
				if ui.IsAborted(err) {
					return nil
				}
				return reportSessionError(c, err)
			}

			member, err := collectIdentity(identity, draft, false)
			if err != nil {
				if ui.IsAborted(err) {
					return nil
				}
				return reportSessionError(c, err)
			}

			_ = st.SaveDraft(store.KeyMembershipDraft, store.Draft{
				Amount: tier.Amount.String(),
				Name:   member.Name,
				Email:  member.Email,
				Phone:  member.Phone,
				Type:   tier.ID,
			})

			_, err = c.Adapter().Open(cmd.Context(), checkout.SessionRequest{
				Amount:   tier.Amount,
				Purpose:  tier.Label,
				Identity: member,
				Notes:    map[string]string{"tier": tier.ID},
			}, renderOnSuccess(c, tier.Permanent))
			if err != nil {
				return reportSessionError(c, err)
			}

			st.ClearDraft(store.KeyMembershipDraft)
			fmt.Println(c.Catalog().T("payment_successful"))
			return nil
		},
	}

	cmd.Flags().StringVar(&tierFlag, "tier", "", "Membership tier: "+tierIDs(appCtx.Config))
	identity.register(cmd)

	return cmd
}

// resolveTier picks the membership tier from the flag, the saved draft,
// or an interactive picker
func resolveTier(cfg *config.Config, tierFlag, draftType string) (config.MembershipTier, error) {
	if tierFlag != "" {
		tier, ok := cfg.TierByID(tierFlag)
		if !ok {
			return config.MembershipTier{}, errors.Validation(
				"unknown membership tier " + tierFlag + "; expected one of " + tierIDs(cfg))
		}
		return tier, nil
	}

	if draftType != "" {
		if tier, ok := cfg.TierByID(draftType); ok && !ui.IsInteractive() {
			return tier, nil
		}
	}

	if !ui.IsInteractive() {
		return config.MembershipTier{}, errors.Validation("--tier is required; expected one of " + tierIDs(cfg))
	}

	return ui.RunTierPicker(cfg.MembershipTiers, cfg.CurrencySymbol)
}

func tierIDs(cfg *config.Config) string {
	ids := make([]string, len(cfg.MembershipTiers))
	for i, tier := range cfg.MembershipTiers {
		ids[i] = tier.ID
	}
	return strings.Join(ids, "|")
}
