package main

import (
	"errors"
	"os"

	"github.com/joho/godotenv"
)

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	registry := newDefaultRegistry()
	if len(os.Args) < 2 {
		registry.PrintHelp(os.Stdout)
		os.Exit(1)
	}

	if err := registry.Dispatch(os.Args[1:]); err != nil {
		PrintError("%v", err)
		if errors.Is(err, ErrUnknownCommand) {
			registry.PrintHelp(os.Stderr)
		}
		os.Exit(1)
	}
}
