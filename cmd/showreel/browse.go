package main

import (
	"github.com/spf13/cobra"

	"dconn.dev/showreel/internal/portfolio"
	"dconn.dev/showreel/internal/tui"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse the portfolio in the terminal",
	RunE: func(cmd *cobra.Command, args []string) error {
		return tui.Run(cfg.Entries, portfolio.NewPlayer(cfg.PlayerHost))
	},
}
