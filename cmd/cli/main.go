package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"os"
	"strings"

	"launchdash/adapters/tabular"
	"launchdash/domain/launch"
	"launchdash/internal"
	"launchdash/internal/api"
	"launchdash/internal/charts"
	"launchdash/internal/dataset"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

type globalOptions struct {
	dataFile string
	sheet    string
	format   string
}

func main() {
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:           "launchdash-cli",
		Short:         "Launch records dashboard charts from the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			switch opts.format {
			case "json", "yaml":
				return nil
			default:
				return fmt.Errorf("unsupported --format %q (use json or yaml)", opts.format)
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.dataFile, "data", envOr("DATA_FILE", "spacex_launch_dash.csv"), "CSV or XLSX launch records file")
	rootCmd.PersistentFlags().StringVar(&opts.sheet, "sheet", envOr("DATA_SHEET", "Sheet1"), "Worksheet to read from XLSX files")
	rootCmd.PersistentFlags().StringVar(&opts.format, "format", "json", "Output format: json or yaml")

	rootCmd.AddCommand(
		newSitesCmd(opts),
		newSummaryCmd(opts),
		newPieCmd(opts),
		newScatterCmd(opts),
	)
	return rootCmd
}

func newSitesCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "sites",
		Short: "List the site selector options",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := loadDataset(cmd.Context(), opts)
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), opts.format, api.SiteOptions(result.Dataset))
		},
	}
}

// summaryOutput is the dataset description printed by the summary command.
type summaryOutput struct {
	SnapshotID  string                `json:"snapshot_id" yaml:"snapshot_id"`
	Fingerprint string                `json:"fingerprint" yaml:"fingerprint"`
	Source      string                `json:"source" yaml:"source"`
	Records     int                   `json:"records" yaml:"records"`
	Sites       []string              `json:"sites" yaml:"sites"`
	Payload     launch.PayloadSummary `json:"payload" yaml:"payload"`
}

func newSummaryCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Describe the loaded dataset and its payload distribution",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := loadDataset(cmd.Context(), opts)
			if err != nil {
				return err
			}
			ds := result.Dataset
			return render(cmd.OutOrStdout(), opts.format, summaryOutput{
				SnapshotID:  ds.ID().String(),
				Fingerprint: ds.Fingerprint().String(),
				Source:      ds.Source(),
				Records:     ds.Len(),
				Sites:       ds.Sites(),
				Payload:     result.Summary,
			})
		},
	}
}

func newPieCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "pie [site]",
		Short: "Print the site success pie chart",
		Long: `Print the site success pie chart specification.

Without a site argument the chart covers all sites.

Example: launchdash-cli pie "KSC LC-39A" --format yaml`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := loadDataset(cmd.Context(), opts)
			if err != nil {
				return err
			}
			q := url.Values{}
			if len(args) == 1 {
				q.Set("site", args[0])
			}
			sel, err := api.ParseSelection(q, result.Dataset)
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), opts.format, charts.SiteSuccess(sel.Site, result.Dataset))
		},
	}
}

func newScatterCmd(opts *globalOptions) *cobra.Command {
	var site, low, high string

	cmd := &cobra.Command{
		Use:   "scatter",
		Short: "Print the payload versus outcome scatter chart",
		Long: `Print the payload versus outcome scatter chart specification.

Bounds default to the dataset extremes and are inclusive.

Example: launchdash-cli scatter --site "CCAFS LC-40" --low 2000 --high 6000`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := loadDataset(cmd.Context(), opts)
			if err != nil {
				return err
			}
			sel, err := api.ParseSelection(url.Values{
				"site": {site},
				"low":  {low},
				"high": {high},
			}, result.Dataset)
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), opts.format, charts.PayloadScatter(sel.Site, sel.Payload, result.Dataset))
		},
	}

	cmd.Flags().StringVar(&site, "site", "", "Launch site (default all sites)")
	cmd.Flags().StringVar(&low, "low", "", "Lowest payload mass in kg (default dataset minimum)")
	cmd.Flags().StringVar(&high, "high", "", "Highest payload mass in kg (default dataset maximum)")

	return cmd
}

func loadDataset(ctx context.Context, opts *globalOptions) (*dataset.Result, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	logger := internal.NewFormattedLogger(internal.ParseLogLevel(envOr("LOG_LEVEL", "WARN")), "console")
	source := tabular.NewFileSource(opts.dataFile, opts.sheet, logger)
	return dataset.NewLoader(source, logger).Load(ctx)
}

func render(w io.Writer, format string, v interface{}) error {
	if format == "yaml" {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
		return enc.Close()
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func envOr(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
