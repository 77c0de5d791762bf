package ui

import (
	"fmt"
	"os"
	"strings"
)

// IsInteractive returns true if running in an interactive terminal
func IsInteractive() bool {
	// Check if stdout is a terminal
	fileInfo, _ := os.Stdout.Stat()
	return (fileInfo.Mode() & os.ModeCharDevice) != 0
}

// PromptForInput prompts the user for input and returns the response
func PromptForInput(prompt string) string {
	if !IsInteractive() {
		return ""
	}

	fmt.Print(prompt)
	var input string
	_, _ = fmt.Scanln(&input)
	return strings.TrimSpace(input)
}

// TruncateText truncates text to the specified length, adding "..." if truncated
func TruncateText(text string, maxLen int) string {
	if text == "" {
		return ""
	}

	// Clean up newlines and extra spaces
	text = strings.ReplaceAll(text, "\n", " ")
	text = strings.ReplaceAll(text, "\r", " ")
	text = strings.Join(strings.Fields(text), " ")

	if len(text) <= maxLen {
		return text
	}

	if maxLen <= 3 {
		return text[:maxLen]
	}

	return text[:maxLen-3] + "..."
}
