package main

import (
	"fmt"

	"github.com/rpgo/taxforms/internal/calculation"
	"github.com/rpgo/taxforms/pkg/taxyear"
	"github.com/shopspring/decimal"
)

func main() {
	income := decimal.NewFromInt(100000)
	available := decimal.NewFromInt(250000)

	fmt.Printf("NOL deduction against %s of taxable income, %s available\n", income.StringFixed(2), available.StringFixed(2))
	for _, lossYear := range []int{2016, 2017, 2018, 2020} {
		fmt.Printf("loss year %d:", lossYear)
		for _, year := range taxyear.CarryoverYears(lossYear, 6) {
			d := calculation.NOLDeductionLimit(year, lossYear, income, available)
			fmt.Printf(" %d=%s", year, d.StringFixed(0))
		}
		fmt.Println()
	}
	fmt.Printf("filing deadline for %d: %s\n", 2024, taxyear.FilingDeadline(2024).Format("2006-01-02"))
}
