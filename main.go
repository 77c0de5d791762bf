package main

import (
	"fmt"
	"os"

	"nynf/cmd"
	"nynf/internal/app"
	"nynf/internal/di"
)

func main() {
	appCtx, err := app.NewContext()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	container := di.NewContainer()
	if err := container.Initialize(appCtx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := cmd.NewRootCommand(appCtx, container).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
