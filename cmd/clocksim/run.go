package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"crazyclock/core"
	"crazyclock/sim"
)

var runFlags struct {
	scenario string
	profile  string
	policy   string
	seconds  uint32
	seed     int32
	settle   uint32
	work     time.Duration
	lockup   bool
	dump     bool
	save     string
	trace    bool
	traceOut string
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a scenario and print a report",
	RunE: func(cmd *cobra.Command, args []string) error {
		s := sim.DefaultScenario()
		if runFlags.scenario != "" {
			loaded, err := sim.LoadScenario(runFlags.scenario)
			if err != nil {
				return err
			}
			s = loaded
		}

		flags := cmd.Flags()
		if flags.Changed("profile") {
			s.Profile = runFlags.profile
		}
		if flags.Changed("policy") {
			s.Policy = runFlags.policy
		}
		if flags.Changed("seconds") {
			s.Seconds = runFlags.seconds
		}
		if flags.Changed("seed") {
			s.Seed = &runFlags.seed
		}
		if flags.Changed("settle") {
			s.SettleTicks = runFlags.settle
		}
		if flags.Changed("work") {
			s.Work = runFlags.work
		}
		if flags.Changed("lockup") {
			s.Lockup = runFlags.lockup
		}

		if runFlags.save != "" {
			if err := s.Save(runFlags.save); err != nil {
				return err
			}
		}

		m, p, err := s.Build()
		if err != nil {
			return err
		}

		var trace *sim.CSVTraceWriter
		if runFlags.trace || runFlags.traceOut != "" {
			trace = sim.NewCSVTraceWriter(runFlags.traceOut, m)
			if err := trace.Init(); err != nil {
				return err
			}
			m.Coil.SetTracer(trace)
			fmt.Fprintf(cmd.OutOrStdout(), "Recording pulses in %s\n", trace.Path())
		}

		r := sim.Run(m, p, time.Duration(s.Seconds)*time.Second)
		if trace != nil {
			trace.Flush()
		}
		printReport(cmd, s, r)

		if runFlags.dump {
			out := cmd.OutOrStdout()
			core.SetDebugWriter(func(line string) { fmt.Fprintln(out, line) })
			core.DumpTimingRing()
		}

		if r.Fault != nil {
			return fmt.Errorf("firmware halted: %w", r.Fault)
		}
		return nil
	},
}

func printReport(cmd *cobra.Command, s *sim.Scenario, r sim.Report) {
	out := cmd.OutOrStdout()
	rate := r.PulseRateMilliHz()
	fmt.Fprintf(out, "profile       %s\n", s.Profile)
	fmt.Fprintf(out, "policy        %s\n", s.Policy)
	fmt.Fprintf(out, "elapsed       %s\n", r.Elapsed)
	fmt.Fprintf(out, "interrupts    %d\n", r.Interrupts)
	fmt.Fprintf(out, "iterations    %d\n", r.Iterations)
	fmt.Fprintf(out, "pulses        %d\n", r.Pulses)
	fmt.Fprintf(out, "ticks         %d (slept %d, caught up %d)\n", r.Consumed, r.Sleeps, r.CatchUps)
	fmt.Fprintf(out, "max backlog   %d\n", r.MaxBacklog)
	fmt.Fprintf(out, "pulse rate    %d.%03d Hz\n", rate/1000, rate%1000)
	fmt.Fprintf(out, "coil repeats  %d\n", r.Repeats)
	fmt.Fprintf(out, "eeprom writes %d\n", r.NVWrites)
	fmt.Fprintf(out, "seed          %#08x\n", uint32(r.Seed))
	if r.Fault != nil {
		fmt.Fprintf(out, "fault         %v\n", r.Fault)
	}
}

func init() {
	f := runCmd.Flags()
	f.StringVarP(&runFlags.scenario, "scenario", "s", "", "YAML scenario file")
	f.StringVar(&runFlags.profile, "profile", core.Profile4MHz.Name, "oscillator profile (4mhz, 32khz)")
	f.StringVar(&runFlags.policy, "policy", "lazy", "scheduling policy (lazy, steady)")
	f.Uint32Var(&runFlags.seconds, "seconds", 3600, "simulated seconds")
	f.Int32Var(&runFlags.seed, "seed", 0, "seed stored in EEPROM before power-on")
	f.Uint32Var(&runFlags.settle, "settle", 0, "extra idle ticks after each lazy pulse")
	f.DurationVar(&runFlags.work, "work", 0, "processor time spent per policy iteration")
	f.BoolVar(&runFlags.lockup, "lockup", false, "halt on the first backlog overrun")
	f.BoolVar(&runFlags.dump, "dump", false, "dump the timing ring after the run")
	f.BoolVar(&runFlags.trace, "trace", false, "record every pulse to a CSV file")
	f.StringVar(&runFlags.traceOut, "trace-file", "", "CSV trace file name (implies --trace)")
	f.StringVar(&runFlags.save, "save", "", "write the effective scenario to this file")

	rootCmd.AddCommand(runCmd)
}
