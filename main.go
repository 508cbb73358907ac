package main

import (
	"fmt"
	"log/slog"
	"os"

	"loadshedding-stats/command/bootstrap"
	cmdmenu "loadshedding-stats/command/menu"
	cmdstats "loadshedding-stats/command/stats"
	"loadshedding-stats/connectors/display/window"
)

// Console explorer for the Cape Town loadshedding history (2020-2023).
// Usage:
//   loadshedding [menu] [-data loadsheddingData.csv] [-display window|file|none]
//   loadshedding stats -kind average|stages|ampm -area N [-year Y]
// Notes:
// - Reads records from data_path (config) or ./loadsheddingData.csv.
// - Charts open in a window by default; -display file writes PNGs to a scratch dir.

func newWindow(width, height int) bootstrap.GUI { return window.New(width, height) }

func main() {
	args := os.Args
	// Replaced once the config has been read.
	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo})
	slog.SetDefault(slog.New(h))

	sub := "menu"
	rest := []string{}
	if len(args) > 1 {
		sub = args[1]
		rest = append(rest, args[2:]...)
		if len(sub) > 0 && sub[0] == '-' {
			// flags only: interactive menu
			sub = "menu"
			rest = append([]string{}, args[1:]...)
		}
	}
	switch sub {
	case "menu":
		if err := cmdmenu.Run(rest, newWindow); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	case "stats":
		if err := cmdstats.Run(rest, newWindow); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}
	fmt.Fprintln(os.Stderr, "usage: loadshedding [menu] [-data <csv>] [-display window|file|none] | stats -kind average|stages|ampm -area <n> [-year <y>]\nENV: set CONFIG_PATH to point to a YAML config file (default ./config.yml)")
	os.Exit(2)
}
