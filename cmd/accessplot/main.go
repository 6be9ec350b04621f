package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"accessplot/internal/app"
	"accessplot/internal/config"
	"accessplot/internal/logging"
)

var configPath string

func main() {
	rootCmd := &cobra.Command{
		Use:   "accessplot",
		Short: "Plot survey targets against the transiting-exoplanet catalog",
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to YAML config file")

	rootCmd.AddCommand(renderCmd())
	rootCmd.AddCommand(targetsCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func renderCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Fetch the catalog, classify targets, and write the figure",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if output != "" {
				cfg.Plot.Output = output
			}

			application, err := app.New(cfg, logging.New(cfg.Logging.Level))
			if err != nil {
				return err
			}
			return application.Run(cmd.Context())
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "figure path, format by extension (overrides config)")
	return cmd
}

func targetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "targets",
		Short: "Print the classified target table without rendering",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}

			application, err := app.New(cfg, logging.New(cfg.Logging.Level))
			if err != nil {
				return err
			}

			classified, err := application.Classified(cmd.Context())
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "PLANET\tFACILITY\tR (RJup)\tTeq (K)\tSTATUS")
			for _, row := range classified {
				fmt.Fprintf(w, "%s\t%s\t%.3f\t%.0f\t%s\n",
					row.PlanetName,
					row.DiscFacility,
					*row.RadiusJup,
					*row.EqTempK,
					row.Status)
			}
			return w.Flush()
		},
	}
}
