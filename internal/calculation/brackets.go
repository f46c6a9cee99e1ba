package calculation

import (
	"sort"
	"strings"

	"github.com/rpgo/taxforms/internal/domain"
	"github.com/shopspring/decimal"
)

// BRACKET TABLE ASSUMPTIONS:
//
// 1. Federal brackets are bundled for 2023-2025 for every filing status.
//    Qualifying surviving spouse uses the married-filing-jointly rows.
// 2. One state example is bundled: Pennsylvania, a flat 3.07% on all income.
// 3. No inflation projection is applied to brackets; a year with no rows yields zero tax.

// federalRates are the seven marginal rates in effect since 2018
var federalRates = []decimal.Decimal{
	decimal.NewFromFloat(0.10),
	decimal.NewFromFloat(0.12),
	decimal.NewFromFloat(0.22),
	decimal.NewFromFloat(0.24),
	decimal.NewFromFloat(0.32),
	decimal.NewFromFloat(0.35),
	decimal.NewFromFloat(0.37),
}

// federalBreakpoints lists the upper bound of each bracket except the top one
var federalBreakpoints = map[int]map[domain.FilingStatus][]int64{
	2023: {
		domain.FilingSingle:          {11000, 44725, 95375, 182100, 231250, 578125},
		domain.FilingJoint:           {22000, 89450, 190750, 364200, 462500, 693750},
		domain.FilingSeparate:        {11000, 44725, 95375, 182100, 231250, 346875},
		domain.FilingHeadOfHousehold: {15700, 59850, 95350, 182100, 231250, 578100},
	},
	2024: {
		domain.FilingSingle:          {11600, 47150, 100525, 191950, 243725, 609350},
		domain.FilingJoint:           {23200, 94300, 201050, 383900, 487450, 731200},
		domain.FilingSeparate:        {11600, 47150, 100525, 191950, 243725, 365600},
		domain.FilingHeadOfHousehold: {16550, 63100, 100500, 191950, 243700, 609350},
	},
	2025: {
		domain.FilingSingle:          {11925, 48475, 103350, 197300, 250525, 626350},
		domain.FilingJoint:           {23850, 96950, 206700, 394600, 501050, 751600},
		domain.FilingSeparate:        {11925, 48475, 103350, 197300, 250525, 375800},
		domain.FilingHeadOfHousehold: {17000, 64850, 103350, 197300, 250500, 626350},
	},
}

var pennsylvaniaRate = decimal.NewFromFloat(0.0307)

// BracketTable holds marginal-rate rows for any number of jurisdictions and years
type BracketTable struct {
	rows []domain.BracketRow
}

// NewBracketTable creates a table over the given rows. State codes are upper-cased.
func NewBracketTable(rows []domain.BracketRow) *BracketTable {
	normalized := make([]domain.BracketRow, len(rows))
	for i, r := range rows {
		r.State = normalizeState(r.State)
		normalized[i] = r
	}
	return &BracketTable{rows: normalized}
}

// DefaultBracketTable returns the bundled federal and Pennsylvania tables
func DefaultBracketTable() *BracketTable {
	var rows []domain.BracketRow
	statuses := []domain.FilingStatus{domain.FilingSingle, domain.FilingJoint, domain.FilingSeparate, domain.FilingHeadOfHousehold}

	years := make([]int, 0, len(federalBreakpoints))
	for y := range federalBreakpoints {
		years = append(years, y)
	}
	sort.Ints(years)

	for _, year := range years {
		for _, status := range statuses {
			lower := decimal.Zero
			for i, rate := range federalRates {
				row := domain.BracketRow{Year: year, FilingStatus: status, MinIncome: lower, Rate: rate}
				if i < len(federalBreakpoints[year][status]) {
					row.MaxIncome = decimal.NewFromInt(federalBreakpoints[year][status][i])
					lower = row.MaxIncome
				}
				rows = append(rows, row)
			}
			rows = append(rows, domain.BracketRow{State: "PA", Year: year, FilingStatus: status, MinIncome: decimal.Zero, Rate: pennsylvaniaRate})
		}
	}
	return NewBracketTable(rows)
}

// Merge returns a new table where rows for any (state, year, status) present in other
// replace the receiver's rows for that key.
func (t *BracketTable) Merge(other *BracketTable) *BracketTable {
	type key struct {
		state  string
		year   int
		status domain.FilingStatus
	}
	replaced := make(map[key]bool)
	for _, r := range other.rows {
		replaced[key{r.State, r.Year, r.FilingStatus}] = true
	}
	merged := make([]domain.BracketRow, 0, len(t.rows)+len(other.rows))
	for _, r := range t.rows {
		if !replaced[key{r.State, r.Year, r.FilingStatus}] {
			merged = append(merged, r)
		}
	}
	merged = append(merged, other.rows...)
	return &BracketTable{rows: merged}
}

// Rows returns the rows matching (state, year, status) sorted by MinIncome
func (t *BracketTable) Rows(state string, year int, status domain.FilingStatus) []domain.BracketRow {
	state = normalizeState(state)
	status = status.BracketStatus()

	var matched []domain.BracketRow
	for _, r := range t.rows {
		if r.State == state && r.Year == year && r.FilingStatus == status {
			matched = append(matched, r)
		}
	}
	sort.SliceStable(matched, func(i, j int) bool { return matched[i].MinIncome.LessThan(matched[j].MinIncome) })
	return matched
}

// Years lists the years with rows for a jurisdiction
func (t *BracketTable) Years(state string) []int {
	state = normalizeState(state)
	seen := make(map[int]bool)
	var years []int
	for _, r := range t.rows {
		if r.State == state && !seen[r.Year] {
			seen[r.Year] = true
			years = append(years, r.Year)
		}
	}
	sort.Ints(years)
	return years
}

// Len returns the number of rows in the table
func (t *BracketTable) Len() int { return len(t.rows) }

func normalizeState(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}
