// SPDX-License-Identifier: MIT

// Command lvsort sorts integers with a chosen algorithm and runs the
// empirical complexity check.
//
//	lvsort sort --algo merge 38 27 43 3 9 82 10
//	lvsort sort --stats -- -4 2 -9
//	lvsort check --size 5000 --trials 5 --timing
//	lvsort list
package main

import "github.com/katalvlaran/lvsort/internal/app"

var version = "v0.1.0"

func main() {
	app.Execute(version)
}
