package main

import (
	"context"
	"fmt"
	"os"

	"github.com/rpgo/taxforms/internal/calculation"
	"github.com/rpgo/taxforms/internal/config"
	"github.com/rpgo/taxforms/internal/output"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("usage: debug_returns <return-file>...")
		return
	}
	inputs, err := config.NewInputParser().LoadAll(os.Args[1:])
	if err != nil {
		panic(err)
	}
	reports, err := calculation.NewEngine().RunReturns(context.Background(), inputs)
	if err != nil {
		panic(err)
	}

	// Header
	header := "Form,Line"
	for i := range reports {
		header += fmt.Sprintf(",R%d", i+1)
	}
	fmt.Println(header)

	// Lines are laid out identically for every return of the same shape; walk the first
	// and look the rest up by form and line.
	base := output.Sections(reports[0])
	lookup := make([]map[string]string, len(reports))
	for i, r := range reports {
		lookup[i] = map[string]string{}
		for _, s := range output.Sections(r) {
			for _, l := range s.Lines {
				lookup[i][s.Form+"/"+l.Line] = l.Amount.StringFixed(0)
			}
		}
	}
	for _, s := range base {
		for _, l := range s.Lines {
			row := fmt.Sprintf("%s,%s", s.Form, l.Line)
			for i := range reports {
				v, ok := lookup[i][s.Form+"/"+l.Line]
				if !ok {
					v = "-"
				}
				row += "," + v
			}
			fmt.Println(row)
		}
	}

	for i, r := range reports {
		if err := calculation.CheckPostconditions(r.Form1040); err != nil {
			fmt.Printf("\nR%d postconditions: %v\n", i+1, err)
		}
	}
}
