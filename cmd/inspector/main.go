// Command inspector renders a trace dump produced by the picort event tracer
// in tabular form.
//
// Timestamps in a dump carry whatever unit the producing device's clock
// ticks in; --source-time-scale names that unit and --target-time-scale the
// unit to display.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/picoml/picort/etrace"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var (
		tracePath   string
		sourceScale string
		targetScale string
	)

	cmd := &cobra.Command{
		Use:          "inspector",
		Short:        "Inspect a picort trace dump",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.OutOrStdout(), tracePath, sourceScale, targetScale)
		},
	}

	cmd.Flags().StringVar(&tracePath, "trace-path", "", "path to a JSON trace dump")
	cmd.Flags().StringVar(&sourceScale, "source-time-scale", string(etrace.ScaleNS),
		"time scale of the dump's timestamps (ns, us, ms, s, cycles)")
	cmd.Flags().StringVar(&targetScale, "target-time-scale", string(etrace.ScaleMS),
		"time scale to display durations in (ns, us, ms, s, cycles)")
	_ = cmd.MarkFlagRequired("trace-path")

	return cmd
}

func run(w io.Writer, tracePath, sourceScale, targetScale string) error {
	from, err := etrace.ParseTimeScale(sourceScale)
	if err != nil {
		return err
	}
	to, err := etrace.ParseTimeScale(targetScale)
	if err != nil {
		return err
	}

	f, err := os.Open(tracePath)
	if err != nil {
		return fmt.Errorf("opening trace dump: %w", err)
	}
	defer f.Close()

	dump, err := etrace.ReadDump(f)
	if err != nil {
		return fmt.Errorf("parsing trace dump %s: %w", tracePath, err)
	}

	return render(w, dump, from, to)
}

func render(w io.Writer, dump etrace.Dump, from, to etrace.TimeScale) error {
	fmt.Fprintf(w, "Run %s: %d events, %d logged outputs\n\n", dump.RunID, len(dump.Events), len(dump.Outputs))

	var data [][]string
	for _, e := range dump.Events {
		raw := float64(e.End.UnixNano() - e.Start.UnixNano())
		dur, err := etrace.ConvertTime(raw, from, to)
		if err != nil {
			return err
		}

		data = append(data, []string{
			eventName(e.Name),
			debugID(e.DebugID),
			fmt.Sprintf("%.3f", dur),
			fmt.Sprintf("%d", len(e.Metadata)),
		})
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"NAME", "DEBUG ID", fmt.Sprintf("DURATION (%s)", to), "METADATA BYTES"})
	table.SetAutoFormatHeaders(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetNoWhiteSpace(true)
	table.SetTablePadding("    ")
	table.AppendBulk(data)
	table.Render()

	if len(dump.Outputs) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Logged outputs:")
		for _, o := range dump.Outputs {
			fmt.Fprintf(w, "  %s (debug id %s, %s): %v\n",
				eventName(o.Name), debugID(o.DebugID), o.Tag, o.Value)
		}
	}

	return nil
}

func eventName(name string) string {
	if name == "" {
		return "-"
	}
	return name
}

func debugID(id etrace.DebugHandle) string {
	if id == etrace.UnsetDebugHandle {
		return "-"
	}
	return fmt.Sprintf("%d", id)
}
