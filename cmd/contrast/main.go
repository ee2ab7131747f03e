// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "contrast",
	Short: "ContrastKitty - WCAG contrast matrix for color palettes",
	Long: `ContrastKitty checks every pairing of a color palette against the WCAG
contrast thresholds and shows the result as a matrix.

A palette travels in its share link, so the same link opens the same matrix
in the browser, in the terminal, or as a PNG.`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
