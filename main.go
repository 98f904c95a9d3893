// main.go
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/anmicius0/lexicon/internal/utils"
)

func main() {
	// Initialize logging first
	if err := utils.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logging: %v\n", err)
		os.Exit(1)
	}
	defer utils.Sync()

	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		utils.Sync()
		os.Exit(1)
	}
}
