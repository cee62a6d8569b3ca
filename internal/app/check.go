// SPDX-License-Identifier: MIT

package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	humanize "github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/katalvlaran/lvsort/complexity"
	"github.com/katalvlaran/lvsort/sorting"
)

// errCheckFailed is returned by the check command when an oracle fails,
// after the report has been printed.
var errCheckFailed = errors.New("complexity check failed")

// palette holds the colors used for verdict markers.
type palette struct {
	pass *color.Color
	fail *color.Color
}

// newPalette returns colors forced on or off, independent of color.NoColor.
func newPalette(enabled bool) palette {
	p := palette{
		pass: color.New(color.FgGreen, color.Bold),
		fail: color.New(color.FgRed, color.Bold),
	}
	for _, c := range []*color.Color{p.pass, p.fail} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

// colorEnabled decides whether w gets ANSI colors: never with --no-color or
// NO_COLOR set, otherwise only when w is a terminal.
func colorEnabled(w io.Writer, noColor bool) bool {
	if noColor || os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

func checkAction(ctx context.Context, cmd *cli.Command) error {
	sortOpts, err := sortOptions(cmd)
	if err != nil {
		return err
	}

	rep, err := complexity.Run(
		complexity.WithContext(ctx),
		complexity.WithSize(cmd.Int("size")),
		complexity.WithTrials(cmd.Int("trials")),
		complexity.WithSeed(cmd.Int64("seed")),
		complexity.WithSortOptions(sortOpts...),
	)
	if err != nil {
		return err
	}

	w := output(cmd)
	p := newPalette(colorEnabled(w, cmd.Bool("no-color")))
	writeReport(w, rep)

	failed := false
	failed = writeVerdict(w, p, "operations", rep.VerifyOperations()) || failed
	if cmd.Bool("timing") {
		failed = writeVerdict(w, p, "timing", rep.VerifyTiming(nil, nil)) || failed
	}
	if failed {
		return errCheckFailed
	}
	return nil
}

// writeReport prints one row per measurement.
func writeReport(w io.Writer, rep *complexity.Report) {
	fmt.Fprintf(w, "n=%s trials=%d seed=%d\n", humanize.Comma(int64(rep.Size)), rep.Trials, rep.Seed)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ALGORITHM\tCLASS\tMEDIAN\tCOMPARISONS\tSWAPS\tWRITES\tTOTAL")
	for _, m := range rep.Measurements {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			m.Algorithm,
			m.Class,
			m.Median.Round(time.Microsecond),
			comma(m.Ops.Comparisons),
			comma(m.Ops.Swaps),
			comma(m.Ops.Writes),
			comma(m.Ops.Total()),
		)
	}
	tw.Flush()
}

// writeVerdict prints "<name>: PASS" or "<name>: FAIL (<err>)" and reports failure.
func writeVerdict(w io.Writer, p palette, name string, err error) bool {
	if err != nil {
		fmt.Fprintf(w, "%s: %s (%v)\n", name, p.fail.Sprint("FAIL"), err)
		return true
	}
	fmt.Fprintf(w, "%s: %s\n", name, p.pass.Sprint("PASS"))
	return false
}

func comma(v uint64) string {
	return humanize.Comma(int64(v))
}

func formatCounter(c sorting.Counter) string {
	return fmt.Sprintf("%s comparisons, %s swaps, %s writes",
		comma(c.Comparisons), comma(c.Swaps), comma(c.Writes))
}
