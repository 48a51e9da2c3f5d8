// Command potgrid runs a YAML planning scenario and prints the expanded
// map with the extracted path.
//
//	potgrid -scenario scenario.yaml [-field] [-nopath]
//
// Exit codes: 0 plan found, 1 invalid input, 2 no plan. A goal that was
// reached but whose path could not be extracted counts as no plan.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math"
	"os"

	"github.com/katalvlaran/potgrid/costmap"
	"github.com/katalvlaran/potgrid/expander"
	"github.com/katalvlaran/potgrid/gridpath"
	"github.com/katalvlaran/potgrid/potential"
	"github.com/katalvlaran/potgrid/scenario"
)

const (
	exitOK      = 0
	exitInvalid = 1
	exitNoPlan  = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	logger := log.New(stderr, "potgrid: ", 0)

	fs := flag.NewFlagSet("potgrid", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		flagScenario string
		flagField    bool
		flagNoPath   bool
	)
	fs.StringVar(&flagScenario, "scenario", "", "path to the YAML scenario (required)")
	fs.BoolVar(&flagField, "field", false, "also print the potential field")
	fs.BoolVar(&flagNoPath, "nopath", false, "skip path extraction")
	if err := fs.Parse(args); err != nil {
		return exitInvalid
	}
	if flagScenario == "" {
		logger.Print("missing -scenario")
		fs.Usage()
		return exitInvalid
	}

	s, err := scenario.Load(flagScenario)
	if err != nil {
		logger.Print(err)
		return exitInvalid
	}
	cm, res, err := s.Run()
	if err != nil {
		logger.Print(err)
		return exitInvalid
	}
	logger.Printf("%s: cycles=%d settled=%d pushed=%d", res.Reason, res.Cycles, res.Settled, res.Pushed)

	var (
		path    []int
		pathErr error
	)
	if res.Found && !flagNoPath {
		path, pathErr = gridpath.Backtrack(res.Potential, cm.Width, cm.Height, res.Start, res.Goal, 0)
		if pathErr != nil {
			// the field is still printed below
			logger.Printf("path extraction: %v", pathErr)
		}
	}

	fmt.Fprint(stdout, render(cm, res, path))
	if res.Found {
		fmt.Fprintf(stdout, "goal potential: %.4f\n", res.Potential[res.Goal])
		if path != nil {
			fmt.Fprintf(stdout, "path cells: %d\n", len(path))
		}
	}
	if flagField {
		fmt.Fprint(stdout, renderField(cm, res.Potential))
	}

	return exitCode(res, pathErr)
}

// exitCode maps a search outcome and path extraction error to an exit code.
func exitCode(res expander.Result, pathErr error) int {
	if !res.Found || pathErr != nil {
		return exitNoPlan
	}

	return exitOK
}

// render overlays start (S), goal (G) and path (*) on the ASCII map.
func render(cm *costmap.Costmap, res expander.Result, path []int) string {
	buf := []byte(cm.String() + "\n")
	// each row occupies Width bytes plus a newline
	at := func(i int) int {
		x, y := cm.Coordinate(i)
		return y*(cm.Width+1) + x
	}
	for _, c := range path {
		buf[at(c)] = '*'
	}
	buf[at(res.Start)] = 'S'
	buf[at(res.Goal)] = 'G'

	return string(buf)
}

// renderField prints settled potentials rounded to integers, "-" elsewhere.
func renderField(cm *costmap.Costmap, field []float64) string {
	var out []byte
	for y := 0; y < cm.Height; y++ {
		for x := 0; x < cm.Width; x++ {
			v := field[cm.Index(x, y)]
			if potential.IsSettled(v) {
				out = fmt.Appendf(out, "%5d", int(math.Round(v)))
			} else {
				out = append(out, "    -"...)
			}
		}
		out = append(out, '\n')
	}

	return string(out)
}
