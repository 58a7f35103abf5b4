package main

import (
	"fmt"
	"math"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/bobby-glide/internal/games/bobby"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "Show the level table",
	Long:  `Lists each level's obstacle roster, survival target and blade spin rates.`,
	Args:  cobra.NoArgs,
	Run:   runLevels,
}

func runLevels(_ *cobra.Command, _ []string) {
	fmt.Println("Levels:")
	fmt.Println()

	fmt.Printf("  %-5s  %-10s  %-5s  %-7s  %-7s  %s\n", "Level", "Name", "Coins", "Zappers", "Survive", "Spin")
	fmt.Printf("  %-5s  %-10s  %-5s  %-7s  %-7s  %s\n", "-----", "----", "-----", "-------", "-------", "----")
	for _, l := range bobby.Levels() {
		fmt.Printf("  %-5d  %-10s  %-5d  %-7d  %-7s  %s\n",
			l.Number, l.Name, l.Coins, l.Zappers, fmt.Sprintf(">%.0fs", l.Target), spinRates(l.Zappers))
	}

	fmt.Println()
	fmt.Println("Coins carry over between levels. A zapper hit ends the run.")
	fmt.Println("Each zapper slot spins faster than the one before it.")
}

// spinRates lists the blade spin of each zapper slot in degrees per tick.
func spinRates(zappers int) string {
	rates := make([]string, zappers)
	for i := range rates {
		rates[i] = fmt.Sprintf("%.1f", float64(i+1)*bobby.SpinStep*180/math.Pi)
	}
	return strings.Join(rates, "/") + "°/tick"
}
