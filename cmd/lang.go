package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"nynf/internal/di"
	"nynf/internal/errors"
	"nynf/internal/store"
)

// NewLangCmd builds the language preference command
func NewLangCmd(c *di.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "lang <en|hi>",
		Short: "Set the persisted interface language",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lang := args[0]
			if lang != "en" && lang != "hi" {
				return errors.Validation("unsupported language " + lang + "; expected en or hi")
			}

			if err := c.Store().SetPreference(store.KeyLanguage, lang); err != nil {
				return err
			}

			fmt.Printf("Language set to %s\n", lang)
			return nil
		},
	}
}
