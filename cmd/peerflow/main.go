package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/peerflow-dev/peerflow/internal/commands"
)

func main() {
	// Optional .env for local overrides; absence is fine.
	_ = godotenv.Load()

	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
