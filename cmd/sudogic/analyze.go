package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sudogic/sudogic/insight"
	"github.com/sudogic/sudogic/logger"
	"github.com/sudogic/sudogic/pattern"
	"github.com/sudogic/sudogic/sudoku"
)

// analyzeCmd represents the analyze command
var analyzeCmd = &cobra.Command{
	Use: "analyze [grid]",

	Short: "finds every insight the given grid yields",
	Long: `Reads an 81-character grid string ('.' for open locations, row major)
from the argument or from stdin, propagates the given clues, and
prints every conflict, barred location or numeral, forced assignment,
overlap and locked set the position implies.`,
	Run: cmdAnalyze,
}

var (
	fErrorsOnly bool
	fMax        uint
	fMarks      bool
	fPatterns   bool
)

func init() {
	rootCmd.AddCommand(analyzeCmd)
	analyzeCmd.PersistentFlags().BoolVar(&fErrorsOnly, "errors-only", false, "reports only conflicts and barred locations or numerals")
	analyzeCmd.PersistentFlags().UintVar(&fMax, "max", 0, "stops after this many insights; 0 means no limit")
	analyzeCmd.PersistentFlags().BoolVar(&fMarks, "marks", false, "prints the marks left after propagating the clues")
	analyzeCmd.PersistentFlags().BoolVar(&fPatterns, "patterns", false, "prints each insight's pattern string")
}

func cmdAnalyze(cmd *cobra.Command, args []string) {
	log := logger.Logger().With().Str("component", "cli").Logger()

	in, err := gridInput(args)
	if err != nil {
		fmt.Println("error:", err)
		os.Exit(-1)
	}
	grid, err := sudoku.GridFromString(in)
	if err != nil {
		fmt.Println("error:", err)
		os.Exit(-1)
	}
	log.Debug().Str("state", grid.State().String()).Int("clues", grid.Size()).Msg("grid parsed")

	marks := insight.MarksOf(grid)
	count := uint(0)
	callback := func(ins insight.Insight) error {
		if fErrorsOnly && !insight.IsError(ins) {
			return nil
		}
		count++
		fmt.Println(ins)
		if fPatterns {
			if p, perr := pattern.ForInsight(ins, sudoku.NumSet(0), marks); perr == nil {
				fmt.Println("  pattern:", p)
			} else {
				log.Warn().Err(perr).Stringer("insight", ins).Msg("no pattern for insight")
			}
		}
		if fMax > 0 && count >= fMax {
			return insight.ErrStop
		}
		return nil
	}

	if fErrorsOnly {
		if err := insight.FindErrors(marks, callback); err != nil && err != insight.ErrStop {
			fmt.Println("error:", err)
			os.Exit(-1)
		}
	} else {
		complete := insight.Analyze(cmd.Context(), marks, callback)
		log.Debug().Bool("complete", complete).Uint("insights", count).Msg("analysis done")
	}

	if count == 0 {
		fmt.Println("no insights found")
	}
	if fMarks {
		fmt.Println(marks)
	}
}

// gridInput takes the grid string from the argument list or from stdin,
// ignoring whitespace so boxed grids paste cleanly.
func gridInput(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	var sb strings.Builder
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		sb.WriteString(strings.Join(strings.Fields(scanner.Text()), ""))
	}
	if err := scanner.Err(); err != nil {
		return "", err
	}
	return sb.String(), nil
}
