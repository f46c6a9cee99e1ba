package taxyear

import (
	"time"
)

// FirstPostTCJALossYear is the first loss year governed by the 80% NOL limitation
// and indefinite carryforward.
const FirstPostTCJALossYear = 2018

// FirstEightyPercentDeductionYear is the first deduction year in which the 80%
// limitation applies (CARES Act suspended it for 2018-2020).
const FirstEightyPercentDeductionYear = 2021

// Current returns the most recent tax year a return can be filed for at the given time.
// Before the April deadline the prior year is still the open filing year.
func Current(now time.Time) int {
	if now.Before(FilingDeadline(now.Year() - 1)) {
		return now.Year() - 2
	}
	return now.Year() - 1
}

// FilingDeadline returns the due date for individual returns for taxYear (April 15 of the
// following year, rolled to the next business day when it falls on a weekend).
func FilingDeadline(taxYear int) time.Time {
	d := time.Date(taxYear+1, time.April, 15, 0, 0, 0, 0, time.UTC)
	switch d.Weekday() {
	case time.Saturday:
		return d.AddDate(0, 0, 2)
	case time.Sunday:
		return d.AddDate(0, 0, 1)
	}
	return d
}

// IsPostTCJALoss reports whether an NOL arising in lossYear is subject to the 80% limitation
func IsPostTCJALoss(lossYear int) bool {
	return lossYear >= FirstPostTCJALossYear
}

// EightyPercentLimitApplies reports whether an NOL from lossYear deducted in taxYear is
// limited to 80% of taxable income.
func EightyPercentLimitApplies(taxYear, lossYear int) bool {
	return IsPostTCJALoss(lossYear) && taxYear >= FirstEightyPercentDeductionYear
}

// CarryoverYears lists the count tax years following lossYear in ascending order
func CarryoverYears(lossYear, count int) []int {
	if count <= 0 {
		return nil
	}
	years := make([]int, count)
	for i := range years {
		years[i] = lossYear + i + 1
	}
	return years
}

// Valid reports whether year can be used as a tax year
func Valid(year int) bool {
	return year > 0
}
