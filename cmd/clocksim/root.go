package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"crazyclock/core"
)

var verbose bool

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "clocksim",
	Short: "Simulate the lazy clock firmware on the host.",
	Long: `clocksim runs the clock core against a simulated timer, EEPROM and ` +
		`coil, so divider accuracy, backlog behavior and pulse cadence can be ` +
		`checked without hardware.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			logger := log.New(os.Stderr, "", log.Lmicroseconds)
			core.SetDebugWriter(func(s string) { logger.Println(s) })
			core.SetDebugEnabled(true)
		}
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print firmware debug output")
}
