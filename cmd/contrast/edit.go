// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/thatcatcamp/contrastkitty/internal/config"
	"github.com/thatcatcamp/contrastkitty/internal/picker"
	"github.com/thatcatcamp/contrastkitty/internal/tui"
)

var (
	editInput paletteInput
	editBase  string
)

var editCmd = &cobra.Command{
	Use:   "edit [link]",
	Short: "Edit a palette in the terminal",
	Long: `Open a terminal editor for a palette. Add, remove and rename colors,
regenerate the matrix and copy the share link. The final link is printed
on exit.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := initConfig(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		p, err := editInput.resolve(args)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		model := tui.New(p, tui.Options{
			Codec:        codec(),
			BaseURL:      shareBase(editBase),
			RequireTitle: config.GetBool("palette.require_title"),
			Picker:       picker.ForMode(editInput.mode),
		})

		final, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		if m, ok := final.(tui.Model); ok && m.ShareURL() != "" {
			fmt.Println(m.ShareURL())
		}
	},
}

func init() {
	editInput.register(editCmd)
	editCmd.Flags().StringVar(&editBase, "base", "", "Base URL for share links (default server.public_url)")
	rootCmd.AddCommand(editCmd)
}
