/*
Copyright © 2025 Prakash1256
*/
package main

import (
	"github.com/joho/godotenv"

	"github.com/Prakash1256/PDF-AI-CHAT/cmd"
)

func main() {
	cmd.Execute()
}

func init() {
	// .env is optional; API keys may also come from the real environment.
	godotenv.Load()
}
