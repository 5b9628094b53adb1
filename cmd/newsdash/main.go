package main

import (
	"os"

	"github.com/joho/godotenv"
)

// ============================================================================
// NEWSDASH CLI — Filter and chart a news article snapshot
// ============================================================================

var (
	version = "dev"
	commit  = "none"
)

func main() {
	// Load environment variables from .env if present (non-fatal if missing)
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
