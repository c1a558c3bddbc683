package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/studymate-ai/studymate/internal/adapters/driving/cli"
)

func main() {
	// A missing .env file is fine; environment variables still apply.
	_ = godotenv.Load()

	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
