// Package main is the sudogic CLI: it reads a grid, runs the analyzer, and
// reports what it finds.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sudogic/sudogic"
)

var rootCmd = &cobra.Command{
	Use:     "sudogic",
	Short:   "sudogic derives insights from Sudoku grids",
	Version: sudogic.Version.String(),
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println("error:", err)
		os.Exit(-1)
	}
}
