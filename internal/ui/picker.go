package ui

import (
	"fmt"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/shopspring/decimal"

	"nynf/internal/config"
	"nynf/internal/txn"
)

var selectTemplates = &promptui.SelectTemplates{
	Label:    "{{ . }}?",
	Active:   `{{ "✔" | cyan }} {{ . | cyan }}`,
	Inactive: `  {{ . }}`,
	Selected: `{{ "✔" | green }} {{ . | green }}`,
}

// RunTierPicker shows an interactive membership tier selection
func RunTierPicker(tiers []config.MembershipTier, currencySymbol string) (config.MembershipTier, error) {
	items := make([]string, len(tiers))
	for i, tier := range tiers {
		validity := "per year"
		if tier.Permanent {
			validity = "one-time"
		}
		items[i] = fmt.Sprintf("%s - %s%s (%s)",
			tier.Label, currencySymbol, tier.Amount.StringFixed(0), validity)
	}

	prompt := promptui.Select{
		Label:     "Select a membership tier",
		Items:     items,
		Size:      len(items),
		Templates: selectTemplates,
	}

	index, _, err := prompt.Run()
	if err != nil {
		return config.MembershipTier{}, err
	}

	return tiers[index], nil
}

// RunTransactionPicker shows an interactive transaction selection and
// returns the chosen record
func RunTransactionPicker(records []txn.Record) (txn.Record, error) {
	items := make([]string, len(records))
	for i, r := range records {
		items[i] = fmt.Sprintf("[%d] %s - %s %s (%s)",
			i+1, r.ID, r.Amount.StringFixed(2), TruncateText(r.Purpose, 30), r.Status)
	}

	prompt := promptui.Select{
		Label:             "Select a transaction",
		Items:             items,
		Size:              min(12, len(records)),
		StartInSearchMode: true,
		Templates:         selectTemplates,
	}

	index, _, err := prompt.Run()
	if err != nil {
		return txn.Record{}, err
	}

	return records[index], nil
}

// PromptAmount prompts for a positive decimal amount
func PromptAmount(label string) (decimal.Decimal, error) {
	prompt := promptui.Prompt{
		Label: label,
		Validate: func(input string) error {
			amount, err := decimal.NewFromString(strings.TrimSpace(input))
			if err != nil {
				return fmt.Errorf("enter a numeric amount")
			}
			if !amount.IsPositive() {
				return fmt.Errorf("amount must be greater than zero")
			}
			return nil
		},
	}

	value, err := prompt.Run()
	if err != nil {
		return decimal.Decimal{}, err
	}

	return decimal.NewFromString(strings.TrimSpace(value))
}

// PromptField prompts for a free-text field with an optional default
func PromptField(label, defaultValue string) (string, error) {
	prompt := promptui.Prompt{
		Label:   label,
		Default: defaultValue,
	}

	value, err := prompt.Run()
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(value), nil
}

// IsAborted reports whether the prompt error is a user abort (Ctrl-C / EOF)
func IsAborted(err error) bool {
	return err == promptui.ErrEOF || err == promptui.ErrInterrupt
}

// min returns the minimum of two integers
func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
