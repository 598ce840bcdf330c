package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ankek/dossier/internal/chart"
	"github.com/ankek/dossier/internal/report"
	"github.com/ankek/dossier/internal/theme"
	"github.com/ankek/dossier/internal/validation"
)

var version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:   "dossier",
		Short: "Statistical dossier generator",
		Long: `Dossier renders the embedded demographic and diplomatic voting dataset
into chart images and assembles them into a paginated PDF report.

All data is embedded at build time; the tool takes no input. An optional
HCL theme file can override the palette and output location.`,
		Version: version,
	}

	rootCmd.AddCommand(generateCmd())
	rootCmd.AddCommand(chartsCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func generateCmd() *cobra.Command {
	var (
		configPath string
		output     string
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Render the charts and write the assembled PDF",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			th, err := loadTheme(configPath, output)
			if err != nil {
				return err
			}

			if err := report.Generate(th); err != nil {
				return err
			}

			info, err := os.Stat(th.Output)
			if err != nil {
				return fmt.Errorf("output missing after generation: %w", err)
			}
			fmt.Printf("PDF created: %s\n", th.Output)
			fmt.Printf("Size: %.0f KB\n", float64(info.Size())/1024)
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "optional HCL theme file")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output PDF path (default "+theme.DefaultOutput+")")
	return cmd
}

func chartsCmd() *cobra.Command {
	var (
		configPath string
		dir        string
	)

	cmd := &cobra.Command{
		Use:   "charts",
		Short: "Write the six chart images as individual PNG files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			th, err := loadTheme(configPath, "")
			if err != nil {
				return err
			}

			if err := validation.ValidateInputPath(dir, true); err != nil {
				return err
			}

			paths, err := chart.New(th).WriteAll(dir)
			if err != nil {
				return err
			}
			for _, p := range paths {
				fmt.Printf("Chart written: %s\n", p)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "optional HCL theme file")
	cmd.Flags().StringVarP(&dir, "dir", "d", ".", "directory to write the PNG files into")
	return cmd
}

// loadTheme resolves the effective theme: defaults, overlaid with the config
// file when given, with the output flag taking final precedence.
func loadTheme(configPath, output string) (*theme.Theme, error) {
	th := theme.Default()

	if configPath != "" {
		if err := validation.ValidateInputPath(configPath, false); err != nil {
			return nil, err
		}
		var err error
		th, err = theme.LoadFile(configPath)
		if err != nil {
			return nil, err
		}
	}

	if output != "" {
		th.Output = output
	}
	return th, nil
}
