package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"

	"github.com/sarchlab/vmsim/vm/replacement"
	"github.com/sarchlab/vmsim/workload"
)

func newPoliciesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "policies",
		Short: "List the replacement policies.",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			for _, name := range replacement.List() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
		},
	}
}

func newProgramsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "programs",
		Short: "List the workload programs.",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			for _, name := range workload.List() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
		},
	}
}

func newConfigCommand() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config [<npages> <nframes> <policy> <program>]",
		Short: "Print the effective configuration as YAML.",
		Args:  cobra.RangeArgs(0, 4),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) != 0 && len(args) != 4 {
				return fmt.Errorf(
					"expected 0 or 4 arguments, got %d", len(args))
			}

			cfg, err := loadConfig(cmd.Flags(), args)
			if err != nil {
				return err
			}

			out, err := yaml.Marshal(cfg)
			if err != nil {
				return err
			}

			_, err = cmd.OutOrStdout().Write(out)

			return err
		},
	}

	addConfigFlags(configCmd.Flags())

	return configCmd
}
