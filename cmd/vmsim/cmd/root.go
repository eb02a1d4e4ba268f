// Package cmd provides the command-line interface of vmsim.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"
)

// NewRootCommand creates the vmsim command with all its subcommands.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "vmsim",
		Short: "vmsim simulates demand-paged virtual memory.",
		Long: `vmsim runs a synthetic program against a virtual address ` +
			`space that is larger than physical memory and reports the page ` +
			`faults and backing-store traffic that a replacement policy causes.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(newRunCommand())
	rootCmd.AddCommand(newPoliciesCommand())
	rootCmd.AddCommand(newProgramsCommand())
	rootCmd.AddCommand(newConfigCommand())

	return rootCmd
}

// Execute runs the root command and exits with a non-zero code on error.
func Execute() {
	err := NewRootCommand().Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		atexit.Exit(1)
	}

	atexit.Exit(0)
}
