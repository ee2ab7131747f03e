// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/thatcatcamp/contrastkitty/internal/config"
	"github.com/thatcatcamp/contrastkitty/internal/export"
)

var (
	exportInput paletteInput
	exportOut   string
)

var exportCmd = &cobra.Command{
	Use:     "export [link]",
	Short:   "Write the contrast matrix as a PNG",
	Example: `  contrast export "https://contrast.example.com/?title=Brand&n=Paper&v=FFFFFF&n=Ink&v=595959" --out brand.png`,
	Args:    cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := initConfig(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		p, err := exportInput.resolve(args)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		m, generated, err := generate(p)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		out := exportOut
		if out == "" {
			out = export.Filename(generated.Title, ".png")
		}

		f, err := os.Create(out)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating %s: %v\n", out, err)
			os.Exit(1)
		}

		rasterizer := export.NewPNGRasterizer(config.GetInt("export.cell_size"), config.GetInt("export.scale"))
		if err := rasterizer.Rasterize(m, f); err != nil {
			f.Close()
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if err := f.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", out, err)
			os.Exit(1)
		}

		fmt.Printf("Wrote %dx%d matrix to %s\n", m.Size(), m.Size(), out)
	},
}

func init() {
	exportInput.register(exportCmd)
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "Output file (default: derived from the title)")
	rootCmd.AddCommand(exportCmd)
}
