package main

import (
	"github.com/joho/godotenv"

	"interntrack_backend/internal/app"
)

func main() {
	// Optional .env for local development; real deployments set the
	// environment directly.
	_ = godotenv.Load()

	app.Run()
}
