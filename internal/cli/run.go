package cli

import (
	"log"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/KiaFarhang/guarded-counter/internal/atomic"
	"github.com/KiaFarhang/guarded-counter/internal/config"
	"github.com/KiaFarhang/guarded-counter/internal/report"
	"github.com/KiaFarhang/guarded-counter/internal/workers"
)

func newRunCmd() *cobra.Command {
	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Increment one counter from several workers and print the final value",
		Long: "Creates a counter, starts the configured number of workers that each " +
			"call IncrementAndGet in a loop, waits for all of them, then prints the final value.",
		Args: cobra.NoArgs,
		RunE: runCounter,
	}

	runCmd.Flags().String("config", "", "Path to a YAML file with run settings")
	defaults := config.Default()
	runCmd.Flags().Int("initial", defaults.Initial, "Initial counter value")
	runCmd.Flags().Int("workers", defaults.Workers, "Number of concurrent workers")
	runCmd.Flags().Int("iterations", defaults.Iterations, "Increments per worker")
	runCmd.Flags().Bool("verify", false, "Record every returned value and check none was lost or repeated")
	runCmd.Flags().Bool("progress", false, "Show a progress bar on stderr")
	runCmd.Flags().Bool("verbose", false, "Log worker activity to stderr")

	return runCmd
}

func runCounter(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	opts := workers.Options{
		Workers:    cfg.Workers,
		Iterations: cfg.Iterations,
		Record:     cfg.Verify,
	}

	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		opts.Logger = log.New(cmd.ErrOrStderr(), "counter: ", log.LstdFlags)
	}

	var bar *progressbar.ProgressBar
	if cfg.Progress {
		bar = progressbar.NewOptions(cfg.Workers*cfg.Iterations,
			progressbar.OptionSetWriter(cmd.ErrOrStderr()),
			progressbar.OptionSetDescription("incrementing"),
			progressbar.OptionThrottle(65*time.Millisecond),
			progressbar.OptionClearOnFinish(),
		)
		opts.OnIncrement = func() { _ = bar.Add(1) }
	}

	counter := atomic.New(cfg.Initial)
	result, err := workers.Run(cmd.Context(), counter, opts)
	if bar != nil {
		_ = bar.Finish()
	}
	if err != nil {
		return err
	}

	if err := report.Write(cmd.OutOrStdout(), result); err != nil {
		return err
	}

	if cfg.Verify {
		return result.Verify()
	}
	return nil
}

// loadConfig applies defaults, then the config file, then any flags the user
// set explicitly.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	flags := cmd.Flags()

	path, _ := flags.GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, err
	}

	if flags.Changed("initial") {
		cfg.Initial, _ = flags.GetInt("initial")
	}
	if flags.Changed("workers") {
		cfg.Workers, _ = flags.GetInt("workers")
	}
	if flags.Changed("iterations") {
		cfg.Iterations, _ = flags.GetInt("iterations")
	}
	if flags.Changed("verify") {
		cfg.Verify, _ = flags.GetBool("verify")
	}
	if flags.Changed("progress") {
		cfg.Progress, _ = flags.GetBool("progress")
	}

	return cfg, cfg.Validate()
}
