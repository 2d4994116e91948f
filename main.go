// Reminder-reviser rewrites Japanese reminder and follow-up messages in a chosen tone
// using a generative-language API, and explains the changes as Markdown bullets.
//
// Usage:
//
//	reminder-reviser serve [--addr :8080]
//	reminder-reviser tui
//
// Settings come from config.yaml (optional) and the GEMINI_API_KEY,
// GA_MEASUREMENT_ID and GA_API_SECRET environment variables.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
