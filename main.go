package main

import (
	"os"

	"github.com/klemjul/oracle/cmd"
	"github.com/klemjul/oracle/internal/app"
)

func main() {
	app := app.NewDefaultApp()
	if err := cmd.RootCommand(app).Execute(); err != nil {
		os.Exit(1)
	}
}
