package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"crazyclock/core"
)

var sequenceCount int

var sequenceCmd = &cobra.Command{
	Use:   "sequence <seed>",
	Short: "Print generator outputs starting from a seed",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var seed int32
		if _, err := fmt.Sscan(args[0], &seed); err != nil {
			return fmt.Errorf("invalid seed %q: %w", args[0], err)
		}

		s := core.NewSeedStore(nil)
		s.SetSeed(seed)
		out := cmd.OutOrStdout()
		for i := 0; i < sequenceCount; i++ {
			fmt.Fprintln(out, s.Next())
		}
		return nil
	},
}

func init() {
	sequenceCmd.Flags().IntVarP(&sequenceCount, "count", "n", 10, "number of outputs")
	rootCmd.AddCommand(sequenceCmd)
}
