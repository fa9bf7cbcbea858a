package main

import (
	"os"

	"github.com/flaggen/flaggen/app"
)

func main() {
	err := app.Execute()
	if err != nil {
		os.Exit(1)
	}
}
