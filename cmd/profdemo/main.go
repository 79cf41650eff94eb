package main

import (
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/Lolitron-0/profiler"
)

var (
	okColor   = color.New(color.FgGreen, color.Bold)
	infoColor = color.New(color.FgCyan)
)

var rootCmd = &cobra.Command{
	Use:   "profdemo",
	Short: "Run an instrumented demo workload and write a Chrome trace",
	Long: `profdemo runs a configurable concurrent workload instrumented with the
profiler library and writes the resulting timeline as a Chrome Trace Event
JSON file. Open the output in chrome://tracing or Perfetto.`,
	RunE:          runDemo,
	SilenceUsage:  true,
	SilenceErrors: false,
}

func main() {
	rootCmd.Flags().String("config", "", "path to a profdemo.toml config file")
	rootCmd.Flags().String("out", "", "trace output path (overrides config)")
	rootCmd.Flags().String("session", "", "session name (overrides config)")
	rootCmd.Flags().Int("workers", 0, "concurrent workers (overrides config)")
	rootCmd.Flags().Int("tasks", 0, "tasks to run (overrides config)")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runDemo(cmd *cobra.Command, _ []string) error {
	configPath, _ := cmd.Flags().GetString("config")
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	if v, _ := cmd.Flags().GetString("out"); v != "" {
		cfg.Out = v
	}
	if v, _ := cmd.Flags().GetString("session"); v != "" {
		cfg.Session = v
	}
	if v, _ := cmd.Flags().GetInt("workers"); v > 0 {
		cfg.Workload.Workers = v
	}
	if v, _ := cmd.Flags().GetInt("tasks"); v > 0 {
		cfg.Workload.Tasks = v
	}
	if err := cfg.validate(); err != nil {
		return err
	}

	p := profiler.New()
	defer p.Close()

	if err := p.BeginSession(cfg.Session, cfg.Out); err != nil {
		return err
	}

	started := time.Now()
	if err := runWorkload(cmd.Context(), p, cfg.Workload); err != nil {
		return err
	}

	if err := p.EndSession(); err != nil {
		return err
	}

	out := cfg.Out
	if out == "" {
		out = profiler.DefaultPath
	}
	okColor.Fprintf(cmd.OutOrStdout(), "wrote %d trace events to %s\n", p.WrittenProfiles(), out)
	infoColor.Fprintf(cmd.OutOrStdout(), "%d workers, %d tasks, %v elapsed\n",
		cfg.Workload.Workers, cfg.Workload.Tasks, time.Since(started).Round(time.Millisecond))
	return nil
}
