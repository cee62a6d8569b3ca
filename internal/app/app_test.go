// SPDX-License-Identifier: MIT
package app

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsort/sorting"
)

// run executes the command tree with args and returns what it printed.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	cmd := NewCommand("test")
	cmd.Writer = &buf
	cmd.ErrWriter = &buf
	err := cmd.Run(context.Background(), append([]string{"lvsort"}, args...))
	return buf.String(), err
}

func TestSortCommand_DefaultAlgorithm(t *testing.T) {
	out, err := run(t, "sort", "10", "7", "8", "9", "1", "5")
	require.NoError(t, err)
	assert.Equal(t, "1 5 7 8 9 10\n", out)
}

func TestSortCommand_EachAlgorithm(t *testing.T) {
	for _, alg := range sorting.Algorithms() {
		t.Run(alg.String(), func(t *testing.T) {
			out, err := run(t, "sort", "--algo", alg.String(), "5,1,4", "2", "8")
			require.NoError(t, err)
			assert.Equal(t, "1 2 4 5 8\n", out)
		})
	}
}

func TestSortCommand_NegativesAndStats(t *testing.T) {
	out, err := run(t, "sort", "--algo", "bubble", "--stats", "--", "3", "-1", "2")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "-1 2 3", lines[0])
	assert.Equal(t, "bubble O(n²): 3 comparisons, 2 swaps, 0 writes", lines[1])
}

func TestSortCommand_Errors(t *testing.T) {
	_, err := run(t, "sort")
	assert.Error(t, err, "missing arguments")

	_, err = run(t, "sort", "1", "x")
	assert.ErrorContains(t, err, `invalid integer "x"`)

	_, err = run(t, "sort", "--algo", "bogo", "1")
	assert.ErrorIs(t, err, sorting.ErrUnknownAlgorithm)

	_, err = run(t, "sort", "--pivot", "last", "1")
	assert.ErrorIs(t, err, sorting.ErrOptionViolation)
}

func TestListCommand(t *testing.T) {
	out, err := run(t, "list")
	require.NoError(t, err)
	for _, alg := range sorting.Algorithms() {
		assert.Contains(t, out, alg.String())
	}
	assert.Contains(t, out, "O(n²)")
	assert.Contains(t, out, "O(n log n)")
}

func TestCheckCommand_Operations(t *testing.T) {
	out, err := run(t, "check", "--size", "1500", "--trials", "1", "--no-color")
	require.NoError(t, err)
	assert.Contains(t, out, "n=1,500 trials=1 seed=0")
	assert.Contains(t, out, "ALGORITHM")
	assert.Contains(t, out, "operations: PASS")
	assert.NotContains(t, out, "timing:")
	assert.NotContains(t, out, "\x1b[", "no ANSI codes when writing to a buffer")
}

func TestCheckCommand_BadOptions(t *testing.T) {
	_, err := run(t, "check", "--size", "0")
	assert.Error(t, err)

	_, err = run(t, "check", "--pivot", "nope")
	assert.ErrorIs(t, err, sorting.ErrOptionViolation)
}

func TestParseInts(t *testing.T) {
	got, err := parseInts([]string{"1,2", " 3 ", "", "-4,,5"})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, -4, 5}, got)

	_, err = parseInts([]string{"1.5"})
	assert.Error(t, err)
}

func TestWriteVerdict(t *testing.T) {
	var buf bytes.Buffer
	p := newPalette(false)

	assert.False(t, writeVerdict(&buf, p, "operations", nil))
	assert.True(t, writeVerdict(&buf, p, "timing", errCheckFailed))
	assert.Equal(t, "operations: PASS\ntiming: FAIL (complexity check failed)\n", buf.String())

	buf.Reset()
	writeVerdict(&buf, newPalette(true), "operations", nil)
	assert.Contains(t, buf.String(), "\x1b[", "forced colors emit ANSI codes")
}

func TestColorEnabled(t *testing.T) {
	assert.False(t, colorEnabled(&bytes.Buffer{}, false), "buffers are never terminals")
	assert.False(t, colorEnabled(nil, true))
}
