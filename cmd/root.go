package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"nynf/internal/app"
	"nynf/internal/di"
)

const version = "1.0.0"

// NewRootCommand builds the root command with every subcommand attached
func NewRootCommand(appCtx *app.Context, c *di.Container) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:               "nynf",
		Short:             "Donation and membership CLI for " + appCtx.Config.Organization.ShortName,
		Long:              `A CLI tool for ` + appCtx.Config.Organization.Name + ` operations: donation and membership checkout sessions, transaction listing and CSV export, and receipt, certificate and member ID card generation.`,
		DisableAutoGenTag: true,
		SilenceUsage:      true,
	}

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Display the version of nynf",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("nynf version %s\n", version)
		},
	})

	rootCmd.AddCommand(NewDonateCmd(appCtx, c))
	rootCmd.AddCommand(NewMembershipCmd(appCtx, c))
	rootCmd.AddCommand(NewTxnCmd(appCtx, c))
	rootCmd.AddCommand(NewLangCmd(c))

	return rootCmd
}
