// torsnake is a terminal snake game on a wrap-around board.
//
// Usage:
//
//	torsnake play            - Play in the current terminal
//	torsnake scores          - Show the high score table
//	torsnake serve           - Start SSH server for remote play
//
// Global flags:
//
//	--config <path>  - Path to a YAML config file
//	--seed <value>   - RNG seed for reproducible food placement
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig string
	flagSeed   int64
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "torsnake",
	Short: "Snake on a torus - the board wraps around",
	Long: `torsnake is a terminal snake game played on a 20x20 board with no
walls: leave one edge and you come back on the opposite one. Eat food to
grow, climb ten speed levels, and claim a spot in the top-5 leaderboard.

Available commands:
  play     - Play in the current terminal
  scores   - View the high score table
  serve    - Start SSH server for remote play

Examples:
  torsnake play
  torsnake play --config ./my-config.yaml
  torsnake serve --ssh :2222
  torsnake scores`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to YAML config file")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
