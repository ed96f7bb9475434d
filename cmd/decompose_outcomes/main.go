//go:build tools
// +build tools

package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github/dlcplaza/go-dlcsigner/internal/dlc/outcome"
)

func main() {
	var (
		start     = flag.Uint64("start", 0, "First outcome of the interval")
		end       = flag.Uint64("end", 0, "Last outcome of the interval (inclusive)")
		base      = flag.Int("base", outcome.DefaultBase, "Numeric base of the oracle digits")
		numDigits = flag.Int("digits", 0, "Number of digits the oracle attests")
		joined    = flag.Bool("join", false, "Print the patterns as one comma separated line")
	)
	flag.Parse()

	if *numDigits == 0 {
		fmt.Println("Error: number of digits is required")
		flag.Usage()
		os.Exit(1)
	}

	patterns, err := outcome.DecomposeInterval(*start, *end, *base, *numDigits)
	if err != nil {
		fmt.Printf("Error decomposing interval: %v\n", err)
		os.Exit(1)
	}

	out := make([]string, len(patterns))
	for i, p := range patterns {
		out[i] = p.String()
	}

	if *joined {
		fmt.Println(strings.Join(out, ","))
		return
	}

	fmt.Printf("Interval [%d, %d] in base %d with %d digits: %d patterns\n", *start, *end, *base, *numDigits, len(patterns))
	for _, p := range out {
		fmt.Println(p)
	}
}
