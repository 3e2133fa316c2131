package main

import (
	"calring/cmd"

	"github.com/joho/godotenv"
)

func main() {
	// Best-effort .env load so OPENAI_API_KEY can live next to the binary
	// during development. Missing file is not an error.
	_ = godotenv.Load()

	cmd.Execute()
}
