package main

import (
	"os"

	"github.com/metropolitan-website/metropolitan-backend/app"
)

func main() {
	err := app.Execute()
	if err != nil {
		os.Exit(1)
	}
}
