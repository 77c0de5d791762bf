package cmd

import (
	stderrors "errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"nynf/internal/checkout"
	"nynf/internal/di"
	"nynf/internal/errors"
	"nynf/internal/store"
	"nynf/internal/txn"
	"nynf/internal/ui"
	"nynf/internal/validate"
)

// identityFlags holds the donor identity flag values shared by the
// donate and membership commands
type identityFlags struct {
	name    string
	email   string
	phone   string
	address string
	pan     string
}

func (f *identityFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.name, "name", "", "Donor name")
	cmd.Flags().StringVar(&f.email, "email", "", "Donor email")
	cmd.Flags().StringVar(&f.phone, "phone", "", "Donor phone number")
	cmd.Flags().StringVar(&f.address, "address", "", "Donor address (optional)")
	cmd.Flags().StringVar(&f.pan, "pan", "", "Donor PAN (optional, for tax receipts)")
}

// collectIdentity resolves the donor identity from flags, prompting for
// missing required fields with draft values as defaults. Anonymous
// sessions skip collection entirely; the adapter substitutes placeholders.
func collectIdentity(flags identityFlags, draft store.Draft, anonymous bool) (txn.Identity, error) {
	if anonymous {
		return txn.Identity{}, nil
	}

	identity := txn.Identity{
		Name:    flags.name,
		Email:   flags.email,
		Phone:   flags.phone,
		Address: flags.address,
		PAN:     flags.pan,
	}

	if ui.IsInteractive() {
		var err error
		if identity.Name == "" {
			if identity.Name, err = ui.PromptField("Name", draft.Name); err != nil {
				return txn.Identity{}, err
			}
		}
		if identity.Email == "" {
			if identity.Email, err = ui.PromptField("Email", draft.Email); err != nil {
				return txn.Identity{}, err
			}
		}
		if identity.Phone == "" {
			if identity.Phone, err = ui.PromptField("Phone", draft.Phone); err != nil {
				return txn.Identity{}, err
			}
		}
	}

	if err := validate.Collect(
		validate.Required("name", identity.Name),
		validate.Email("email", identity.Email),
		validate.Phone("phone", identity.Phone),
	); err != nil {
		return txn.Identity{}, err
	}

	return identity, nil
}

// renderOnSuccess returns the success callback that generates the
// documents for a freshly resolved session. Render failures are reported
// but never fail the session itself.
func renderOnSuccess(c *di.Container, permanent bool) func(txn.Record) {
	return func(record txn.Record) {
		paths, err := c.Renderer().RenderDocuments(record, permanent)
		if err != nil {
			fmt.Printf("%s document: %v\n", c.Catalog().T("receipt_failed"), err)
			return
		}
		for _, path := range paths {
			fmt.Printf("%s %s\n", filepath.Base(path), c.Catalog().T("receipt_generated"))
		}
	}
}

// reportSessionError maps session outcomes to user-facing notices.
// Cancel is a normal exit; validation and provider failures exit non-zero.
func reportSessionError(c *di.Container, err error) error {
	catalog := c.Catalog()

	switch {
	case stderrors.Is(err, checkout.ErrCancelled):
		fmt.Println(catalog.T("payment_cancelled"))
		return nil
	case errors.IsType(err, errors.ErrorTypeValidation):
		fmt.Println(catalog.T("please_correct_errors"))
		return err
	default:
		fmt.Printf("%s: %v\n", catalog.T("payment_failed"), err)
		return err
	}
}
