// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"os"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
	"github.com/thatcatcamp/contrastkitty/internal/termview"
)

var (
	linkInput paletteInput
	linkBase  string
	linkCopy  bool
)

var linkCmd = &cobra.Command{
	Use:   "link",
	Short: "Build and read palette share links",
}

var linkEncodeCmd = &cobra.Command{
	Use:   "encode",
	Short: "Print the share link for a palette",
	Example: `  contrast link encode --title Brand --color Paper=#FFFFFF --color Ink=#595959 --copy
  contrast link encode --preset rose --base https://contrast.example.com/`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if err := initConfig(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		p, err := linkInput.resolve(nil)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		shareURL := codec().ShareURL(shareBase(linkBase), p)
		fmt.Println(shareURL)

		if linkCopy {
			if err := clipboard.WriteAll(shareURL); err != nil {
				fmt.Fprintf(os.Stderr, "Copy failed: %v\n", err)
				os.Exit(1)
			}
			fmt.Fprintln(os.Stderr, "Copied to clipboard")
		}
	},
}

var linkDecodeCmd = &cobra.Command{
	Use:   "decode <link>",
	Short: "Show the palette stored in a share link",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := initConfig(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		d, err := codec().Decode(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		title := d.Palette.Title
		if title == "" {
			title = "(untitled)"
		}
		fmt.Printf("Title: %s\n", title)
		if d.ColorsOnly {
			fmt.Println("Colors only: names are missing or do not match the colors")
		}
		fmt.Println(termview.Swatches(d.Palette))
	},
}

func init() {
	linkInput.register(linkEncodeCmd)
	linkEncodeCmd.Flags().StringVar(&linkBase, "base", "", "Base URL for the link (default server.public_url)")
	linkEncodeCmd.Flags().BoolVar(&linkCopy, "copy", false, "Copy the link to the clipboard")

	linkCmd.AddCommand(linkEncodeCmd)
	linkCmd.AddCommand(linkDecodeCmd)
	rootCmd.AddCommand(linkCmd)
}
