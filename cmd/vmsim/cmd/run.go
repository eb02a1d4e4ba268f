package cmd

import (
	"fmt"
	"strconv"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/sarchlab/vmsim/config"
	"github.com/sarchlab/vmsim/simulation"
	"github.com/sarchlab/vmsim/vm/storage"
)

func newRunCommand() *cobra.Command {
	runCmd := &cobra.Command{
		Use:   "run [<npages> <nframes> <policy> <program>]",
		Short: "Run a simulation.",
		Long: `Run a simulation. The page count, frame count, policy and ` +
			`program may be given as arguments or through the configuration ` +
			`file, the .env file and VMSIM_ keys.`,
		Example: "  vmsim run 100 10 fifo alpha\n" +
			"  vmsim run --config vmsim.yaml --trace",
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) != 0 && len(args) != 4 {
				return fmt.Errorf(
					"expected 0 or 4 arguments, got %d", len(args))
			}

			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd.Flags(), args)
			if err != nil {
				return err
			}

			return run(cmd, cfg)
		},
	}

	addConfigFlags(runCmd.Flags())

	return runCmd
}

func addConfigFlags(flags *pflag.FlagSet) {
	flags.String("config", "", "YAML configuration file")
	flags.String("env-file", ".env", "file of VMSIM_ settings")
	flags.String("scan-mode", "", "usage-aware scan mode, frame or page")
	flags.Int64("seed", 0, "seed of every random choice")
	flags.Bool("check-invariants", false,
		"verify the frame table after every fault")
	flags.BoolP("verbose", "v", false, "log every fault")
	flags.String("store", "", "backing store kind, memory, file or sqlite")
	flags.String("store-path", "", "path of the backing store")
	flags.Bool("trace", false, "record every fault into a SQLite database")
	flags.String("trace-path", "", "trace database name without extension")
	flags.Bool("monitor", false, "serve live statistics over HTTP")
	flags.Int("monitor-port", 0, "port of the monitor, random if unset")
	flags.Bool("open-browser", false, "open the monitor in a browser")
}

// loadConfig layers defaults, the .env file, the YAML file, the arguments
// and the flags that the user set, in increasing priority.
func loadConfig(flags *pflag.FlagSet, args []string) (config.Config, error) {
	cfg := config.Default()

	envFile, _ := flags.GetString("env-file")
	if err := cfg.LoadEnvFile(envFile); err != nil {
		return cfg, err
	}

	if configFile, _ := flags.GetString("config"); configFile != "" {
		if err := cfg.LoadFile(configFile); err != nil {
			return cfg, err
		}
	}

	if err := applyArgs(&cfg, args); err != nil {
		return cfg, err
	}

	applyFlags(&cfg, flags)

	return cfg, nil
}

func applyArgs(cfg *config.Config, args []string) error {
	if len(args) == 0 {
		return nil
	}

	numPages, err := strconv.Atoi(args[0])
	if err != nil {
		return errors.Wrapf(err, "invalid page count %q", args[0])
	}

	numFrames, err := strconv.Atoi(args[1])
	if err != nil {
		return errors.Wrapf(err, "invalid frame count %q", args[1])
	}

	cfg.NumPages = numPages
	cfg.NumFrames = numFrames
	cfg.Policy = args[2]
	cfg.Program = args[3]

	return nil
}

func applyFlags(cfg *config.Config, flags *pflag.FlagSet) {
	flags.Visit(func(f *pflag.Flag) {
		switch f.Name {
		case "scan-mode":
			cfg.ScanMode, _ = flags.GetString(f.Name)
		case "seed":
			cfg.Seed, _ = flags.GetInt64(f.Name)
		case "check-invariants":
			cfg.CheckInvariants, _ = flags.GetBool(f.Name)
		case "verbose":
			cfg.Verbose, _ = flags.GetBool(f.Name)
		case "store":
			kind, _ := flags.GetString(f.Name)
			cfg.Store.Kind = storage.Kind(kind)
		case "store-path":
			cfg.Store.Path, _ = flags.GetString(f.Name)
		case "trace":
			cfg.Trace.Enabled, _ = flags.GetBool(f.Name)
		case "trace-path":
			cfg.Trace.Path, _ = flags.GetString(f.Name)
		case "monitor":
			cfg.Monitor.Enabled, _ = flags.GetBool(f.Name)
		case "monitor-port":
			cfg.Monitor.Port, _ = flags.GetInt(f.Name)
		case "open-browser":
			cfg.Monitor.OpenBrowser, _ = flags.GetBool(f.Name)
		}
	})
}

func run(cmd *cobra.Command, cfg config.Config) error {
	for _, w := range cfg.Warnings() {
		fmt.Fprintln(cmd.ErrOrStderr(), "Warning:", w)
	}

	s, err := simulation.MakeBuilder().
		WithConfig(cfg).
		WithLogOutput(cmd.ErrOrStderr()).
		Build()
	if err != nil {
		return err
	}

	report := s.Run()

	err = s.Terminate()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s result is %d\n", cfg.Program, report.Checksum)
	fmt.Fprintf(out, "page faults: %d\n", report.Statistics.Faults)
	fmt.Fprintf(out, "disk reads: %d\n", report.Statistics.StoreReads)
	fmt.Fprintf(out, "disk writes: %d\n", report.Statistics.StoreWrites)

	return nil
}
