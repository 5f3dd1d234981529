package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"crazyclock/core"
)

var dividerCmd = &cobra.Command{
	Use:   "divider [profile]",
	Short: "Print one divider window of compare values",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := core.Profile4MHz.Name
		if len(args) == 1 {
			name = args[0]
		}
		profile, ok := core.Profiles[name]
		if !ok {
			return fmt.Errorf("unknown profile %q", name)
		}
		if err := profile.Validate(); err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		d := core.NewDivider(profile)
		compare := d.First()
		var counts uint32
		for i := 1; i <= int(profile.Cycles); i++ {
			fmt.Fprintf(out, "%3d  compare=%d  counts=%d\n", i, compare, compare+1)
			counts += uint32(compare) + 1
			compare = d.Advance()
		}
		fmt.Fprintf(out, "total %d timer counts per %d ticks (%d system clocks per second)\n",
			counts, profile.Cycles, counts*profile.TimerPrescale*core.TickHz/uint32(profile.Cycles))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(dividerCmd)
}
