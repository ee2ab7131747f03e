// SPDX-License-Identifier: MIT
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/thatcatcamp/contrastkitty/internal/config"
	"github.com/thatcatcamp/contrastkitty/internal/matrix"
	"github.com/thatcatcamp/contrastkitty/internal/palette"
	"github.com/thatcatcamp/contrastkitty/internal/termview"
)

var (
	matrixInput paletteInput
	matrixBase  string
)

var matrixCmd = &cobra.Command{
	Use:   "matrix [link]",
	Short: "Print the contrast matrix for a palette",
	Long: `Print the contrast matrix for a palette given as a share link, a preset,
or --color flags, followed by its share link.`,
	Example: `  contrast matrix "https://contrast.example.com/?n=White&v=FFFFFF&n=Plum&v=5A3B5D"
  contrast matrix --title Brand --color Paper=#FFFFFF --color Ink=#595959
  contrast matrix --preset indigo`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := initConfig(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		p, err := matrixInput.resolve(args)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		m, generated, err := generate(p)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		fmt.Println(termview.Render(m))
		if !m.Empty() {
			fmt.Println()
			fmt.Println(termview.RenderSummary(m))
		}
		fmt.Printf("\nShare: %s\n", codec().ShareURL(shareBase(matrixBase), generated))
	},
}

// generate applies the configured title rule and builds the matrix
func generate(p palette.Palette) (matrix.Matrix, palette.Palette, error) {
	generated, err := palette.Generate(palette.FromPalette(p), palette.Options{
		RequireTitle: config.GetBool("palette.require_title"),
	})
	if errors.Is(err, palette.ErrMissingTitle) {
		return matrix.Matrix{}, palette.Palette{}, fmt.Errorf("a title is required, pass --title")
	}
	if err != nil {
		return matrix.Matrix{}, palette.Palette{}, err
	}
	return matrix.Build(generated), generated, nil
}

func init() {
	matrixInput.register(matrixCmd)
	matrixCmd.Flags().StringVar(&matrixBase, "base", "", "Base URL for the share link (default server.public_url)")
	rootCmd.AddCommand(matrixCmd)
}
