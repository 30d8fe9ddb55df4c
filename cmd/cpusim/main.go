package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/Rabbanij/CPU-Scheduling-Simulator/internal/api"
	"github.com/Rabbanij/CPU-Scheduling-Simulator/internal/config"
	"github.com/Rabbanij/CPU-Scheduling-Simulator/internal/loader"
	"github.com/Rabbanij/CPU-Scheduling-Simulator/internal/report"
	"github.com/Rabbanij/CPU-Scheduling-Simulator/internal/scheduler"
)

var ErrInvalidArgs = errors.New("invalid args")

type options struct {
	configPath string
	json       bool
	policy     string
	quantum    int64
	port       int

	cfg *config.SchedulerConfig
}

func main() {
	log.SetFlags(0)
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "cpusim",
		Short: "Simulate CPU scheduling policies and report their metrics",
		Long: `cpusim predicts waiting time, turnaround time, CPU utilization and throughput
for First-Come-First-Served, Shortest-Job-First, Round-Robin and Priority
scheduling over a set of processes.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(opts.configPath)
			if err != nil {
				return err
			}
			opts.cfg = cfg
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "Config file (default ./config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&opts.json, "json", false, "Machine-readable JSON output")

	rootCmd.AddCommand(simulateCmd(opts))
	rootCmd.AddCommand(compareCmd(opts))
	rootCmd.AddCommand(promptCmd(opts))
	rootCmd.AddCommand(serveCmd(opts))

	return rootCmd
}

func simulateCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "simulate <process-file>",
		Short: "Run one scheduling policy over a CSV or JSON process file",
		Args:  fileArg,
		RunE: func(cmd *cobra.Command, args []string) error {
			processes, err := loader.Load(args[0])
			if err != nil {
				return err
			}
			return opts.simulate(cmd, processes)
		},
	}
	addPolicyFlags(cmd, opts)
	return cmd
}

func compareCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare <process-file>",
		Short: "Run every scheduling policy over the same process file",
		Args:  fileArg,
		RunE: func(cmd *cobra.Command, args []string) error {
			processes, err := loader.Load(args[0])
			if err != nil {
				return err
			}

			results, err := scheduler.Compare(processes, opts.resolveQuantum(cmd))
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if opts.jsonOutput() {
				return report.JSON(w, api.CompareResponse{Results: results})
			}
			for _, r := range results {
				report.Render(w, processes, r)
			}
			report.Comparison(w, results)
			return nil
		},
	}
	cmd.Flags().Int64Var(&opts.quantum, "quantum", 0, "Round-robin time quantum (default from config)")
	return cmd
}

func promptCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prompt",
		Short: "Enter processes interactively and run one scheduling policy",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			processes, err := loader.Prompt(cmd.InOrStdin(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.ErrOrStderr())
			return opts.simulate(cmd, processes)
		},
	}
	addPolicyFlags(cmd, opts)
	return cmd
}

func serveCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the simulator over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("port") {
				opts.cfg.Port = opts.port
			}
			app := api.NewApp(opts.cfg, os.Stderr)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			errc := make(chan error, 1)
			go func() {
				log.Println("cpusim listening on", opts.cfg.Addr())
				errc <- app.Listen(opts.cfg.Addr())
			}()

			select {
			case err := <-errc:
				return err
			case <-ctx.Done():
				log.Println("shutting down")
				return app.ShutdownWithTimeout(5 * time.Second)
			}
		},
	}
	cmd.Flags().IntVar(&opts.port, "port", 0, "Listen port (default from config)")
	return cmd
}

func addPolicyFlags(cmd *cobra.Command, opts *options) {
	cmd.Flags().StringVarP(&opts.policy, "policy", "p", "", "fcfs, sjf, rr or priority (default from config)")
	cmd.Flags().Int64VarP(&opts.quantum, "quantum", "q", 0, "Round-robin time quantum (default from config)")
}

func fileArg(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: must give a scheduling file to process", ErrInvalidArgs)
	}
	return nil
}

func (o *options) simulate(cmd *cobra.Command, processes []scheduler.Process) error {
	policy := o.cfg.Policy
	if o.policy != "" {
		var err error
		if policy, err = scheduler.ParsePolicy(o.policy); err != nil {
			return err
		}
	}

	result, err := scheduler.Simulate(processes, policy, o.resolveQuantum(cmd))
	if err != nil {
		return err
	}
	return o.write(cmd.OutOrStdout(), processes, result)
}

// resolveQuantum prefers an explicit --quantum, even a bad one, over the config default.
func (o *options) resolveQuantum(cmd *cobra.Command) int64 {
	if cmd.Flags().Changed("quantum") {
		return o.quantum
	}
	return o.cfg.RoundRobinTimeQuantum
}

func (o *options) jsonOutput() bool {
	return o.json || o.cfg.OutputFormat == config.FormatJSON
}

func (o *options) write(w io.Writer, processes []scheduler.Process, r *scheduler.Result) error {
	if o.jsonOutput() {
		return report.JSON(w, r)
	}
	report.Render(w, processes, r)
	return nil
}
