// SPDX-License-Identifier: MIT

// Package app wires the lvsort command tree: sorting integers from the
// command line, listing algorithms and running the complexity check.
package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/katalvlaran/lvsort/sorting"
)

// NewCommand builds the root command. Output goes to the command's Writer
// (os.Stdout unless the caller sets one).
func NewCommand(version string) *cli.Command {
	return &cli.Command{
		Name:                   "lvsort",
		Usage:                  "Classic comparison sorts and an empirical complexity check",
		Version:                version,
		UseShortOptionHandling: true,
		Commands: []*cli.Command{
			{
				Name:      "sort",
				Usage:     "Sort integers given as arguments (use -- before negative numbers)",
				ArgsUsage: "<int> [int...]",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "algo",
						Aliases: []string{"a"},
						Usage:   "Algorithm: bubble, selection, insertion, merge, quick, heap",
						Value:   sorting.Quick.String(),
					},
					pivotFlag(),
					seedFlag(),
					&cli.BoolFlag{
						Name:    "stats",
						Aliases: []string{"s"},
						Usage:   "Print comparison, swap and write counts",
					},
				},
				Action: sortAction,
			},
			{
				Name:   "list",
				Usage:  "List algorithms and their complexity classes",
				Action: listAction,
			},
			{
				Name:  "check",
				Usage: "Time every sort on one random input and compare complexity classes",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:    "size",
						Aliases: []string{"n"},
						Usage:   "Input length",
						Value:   5000,
					},
					&cli.IntFlag{
						Name:    "trials",
						Aliases: []string{"t"},
						Usage:   "Timed runs per algorithm (median is reported)",
						Value:   5,
					},
					seedFlag(),
					pivotFlag(),
					&cli.BoolFlag{
						Name:  "timing",
						Usage: "Also enforce the wall-clock oracle (host dependent)",
					},
					&cli.BoolFlag{
						Name:    "no-color",
						Aliases: []string{"C"},
						Usage:   "Disable ANSI color output",
					},
				},
				Action: checkAction,
			},
		},
	}
}

// Execute runs the command tree against os.Args and exits non-zero on error.
func Execute(version string) {
	cmd := NewCommand(version)
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func pivotFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "pivot",
		Aliases: []string{"p"},
		Usage:   "Quick sort pivot policy: first, middle, median3, random",
		Value:   sorting.PivotMedianOfThree.String(),
	}
}

func seedFlag() cli.Flag {
	return &cli.Int64Flag{
		Name:  "seed",
		Usage: "Seed for random inputs and the random pivot (0 uses the default seed)",
	}
}

// output returns the writer shared by the whole command tree.
func output(cmd *cli.Command) io.Writer {
	if w := cmd.Root().Writer; w != nil {
		return w
	}
	return os.Stdout
}

// sortOptions maps --pivot and --seed onto sorting options.
func sortOptions(cmd *cli.Command) ([]sorting.Option, error) {
	pivot, err := sorting.ParsePivotPolicy(cmd.String("pivot"))
	if err != nil {
		return nil, err
	}
	return []sorting.Option{
		sorting.WithPivot(pivot),
		sorting.WithSeed(cmd.Int64("seed")),
	}, nil
}

// parseInts accepts whitespace- or comma-separated integers.
func parseInts(args []string) ([]int, error) {
	out := make([]int, 0, len(args))
	for _, arg := range args {
		for _, field := range strings.Split(arg, ",") {
			field = strings.TrimSpace(field)
			if field == "" {
				continue
			}
			v, err := strconv.Atoi(field)
			if err != nil {
				return nil, fmt.Errorf("invalid integer %q", field)
			}
			out = append(out, v)
		}
	}
	return out, nil
}

func sortAction(ctx context.Context, cmd *cli.Command) error {
	if cmd.NArg() < 1 {
		return fmt.Errorf("usage: lvsort sort [--algo name] <int> [int...]")
	}
	alg, err := sorting.ParseAlgorithm(cmd.String("algo"))
	if err != nil {
		return err
	}
	values, err := parseInts(cmd.Args().Slice())
	if err != nil {
		return err
	}
	opts, err := sortOptions(cmd)
	if err != nil {
		return err
	}

	var c sorting.Counter
	opts = append(opts, sorting.WithCounter(&c))
	sorted, err := sorting.Sort(alg, values, opts...)
	if err != nil {
		return err
	}

	w := output(cmd)
	fmt.Fprintln(w, joinInts(sorted))
	if cmd.Bool("stats") {
		fmt.Fprintf(w, "%s %s: %s\n", alg, alg.Class(), formatCounter(c))
	}
	return nil
}

func listAction(ctx context.Context, cmd *cli.Command) error {
	w := output(cmd)
	for _, alg := range sorting.Algorithms() {
		fmt.Fprintf(w, "%-10s %s\n", alg, alg.Class())
	}
	return nil
}

func joinInts(a []int) string {
	parts := make([]string, len(a))
	for i, v := range a {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, " ")
}
