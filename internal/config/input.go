package config

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/rpgo/taxforms/internal/calculation"
	"github.com/rpgo/taxforms/internal/domain"
	"github.com/rpgo/taxforms/pkg/taxyear"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// InputParser handles parsing of return and bracket files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads and validates a return from a YAML file
func (ip *InputParser) LoadFromFile(filename string) (*domain.ReturnInput, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var input domain.ReturnInput
	if err := yaml.Unmarshal(data, &input); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if input.Name == "" {
		input.Name = filename
	}

	if err := ip.ValidateReturn(&input); err != nil {
		return nil, fmt.Errorf("return validation failed: %w", err)
	}

	return &input, nil
}

// LoadAll loads every file, stopping at the first failure
func (ip *InputParser) LoadAll(filenames []string) ([]domain.ReturnInput, error) {
	inputs := make([]domain.ReturnInput, 0, len(filenames))
	for _, f := range filenames {
		in, err := ip.LoadFromFile(f)
		if err != nil {
			return nil, err
		}
		inputs = append(inputs, *in)
	}
	return inputs, nil
}

// ValidateReturn rejects input the form pipeline cannot accept
func (ip *InputParser) ValidateReturn(input *domain.ReturnInput) error {
	f := &input.Form1040

	if !taxyear.Valid(f.TaxYear) {
		return fmt.Errorf("%w: tax year must be positive, got %d", domain.ErrInvalidInput, f.TaxYear)
	}
	if !f.FilingStatus.Valid() {
		return fmt.Errorf("%w: filing status is required", domain.ErrInvalidInput)
	}

	nonNegative := map[string]decimal.Decimal{
		"standard_deduction":        f.StandardDeduction,
		"qbi_deduction":             f.QBIDeduction,
		"threshold_override":        f.ThresholdOverride,
		"cost_of_living_adjustment": f.CostOfLivingAdjustment,
		"applied_to_next_year":      f.AppliedToNextYear,
		"nol_deduction":             f.Schedule1.NOLDeduction,
	}
	for _, name := range sortedKeys(nonNegative) {
		if nonNegative[name].IsNegative() {
			return fmt.Errorf("%w: %s cannot be negative, got %s", domain.ErrInvalidInput, name, nonNegative[name])
		}
	}

	if input.EstimateStateTax && f.State == "" {
		return fmt.Errorf("%w: estimate_state_tax requires a state", domain.ErrInvalidInput)
	}

	if err := ip.validateForm172(f.TaxYear, &f.NOL); err != nil {
		return fmt.Errorf("form 172 validation failed: %w", err)
	}

	return nil
}

func (ip *InputParser) validateForm172(returnYear int, nol *domain.Form172Input) error {
	if p := nol.PartI; p != nil {
		if p.TaxYear == 0 {
			p.TaxYear = returnYear
		}
		if !taxyear.Valid(p.TaxYear) {
			return fmt.Errorf("%w: part 1 tax year must be positive, got %d", domain.ErrInvalidInput, p.TaxYear)
		}
	}

	seen := make(map[int]bool)
	for i, p := range nol.PartII {
		if !taxyear.Valid(p.TaxYear) {
			return fmt.Errorf("%w: part 2 entry %d needs a tax year", domain.ErrInvalidInput, i)
		}
		if seen[p.TaxYear] {
			return fmt.Errorf("%w: part 2 tax year %d listed twice", domain.ErrInvalidInput, p.TaxYear)
		}
		seen[p.TaxYear] = true
		if p.NOLDeduction.IsNegative() {
			return fmt.Errorf("%w: part 2 NOL deduction for %d cannot be negative", domain.ErrInvalidInput, p.TaxYear)
		}
	}
	return nil
}

type bracketFile struct {
	Brackets []domain.BracketRow `yaml:"brackets"`
}

// LoadBracketTable reads bracket rows from a YAML file and checks that each
// (state, year, status) group forms a contiguous ladder starting at zero.
func (ip *InputParser) LoadBracketTable(filename string) (*calculation.BracketTable, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var file bracketFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if len(file.Brackets) == 0 {
		return nil, fmt.Errorf("%w: %s has no brackets", domain.ErrInvalidInput, filename)
	}

	if err := ValidateBrackets(file.Brackets); err != nil {
		return nil, fmt.Errorf("bracket validation failed: %w", err)
	}
	return calculation.NewBracketTable(file.Brackets), nil
}

// ValidateBrackets checks rates and bracket ordering
func ValidateBrackets(rows []domain.BracketRow) error {
	type key struct {
		state  string
		year   int
		status domain.FilingStatus
	}
	groups := make(map[key][]domain.BracketRow)
	var order []key

	for i, r := range rows {
		if !taxyear.Valid(r.Year) {
			return fmt.Errorf("%w: bracket %d has no year", domain.ErrInvalidInput, i)
		}
		if !r.FilingStatus.Valid() {
			return fmt.Errorf("%w: bracket %d has no filing status", domain.ErrInvalidInput, i)
		}
		if r.Rate.IsNegative() || r.Rate.GreaterThan(decimal.NewFromInt(1)) {
			return fmt.Errorf("%w: bracket %d rate %s must be between 0 and 1", domain.ErrInvalidInput, i, r.Rate)
		}
		if r.MinIncome.IsNegative() {
			return fmt.Errorf("%w: bracket %d has negative min_income", domain.ErrInvalidInput, i)
		}
		if !r.Unbounded() && r.MaxIncome.LessThanOrEqual(r.MinIncome) {
			return fmt.Errorf("%w: bracket %d max_income %s must exceed min_income %s", domain.ErrInvalidInput, i, r.MaxIncome, r.MinIncome)
		}
		k := key{strings.ToUpper(strings.TrimSpace(r.State)), r.Year, r.FilingStatus}
		if _, ok := groups[k]; !ok {
			order = append(order, k)
		}
		groups[k] = append(groups[k], r)
	}

	for _, k := range order {
		g := groups[k]
		sort.SliceStable(g, func(i, j int) bool { return g[i].MinIncome.LessThan(g[j].MinIncome) })
		if !g[0].MinIncome.IsZero() {
			return fmt.Errorf("%w: %s %d %s brackets must start at zero", domain.ErrInvalidInput, stateLabel(k.state), k.year, k.status)
		}
		for i := 1; i < len(g); i++ {
			prev := g[i-1]
			if prev.Unbounded() {
				return fmt.Errorf("%w: %s %d %s has an open-ended bracket below %s", domain.ErrInvalidInput, stateLabel(k.state), k.year, k.status, g[i].MinIncome)
			}
			if !prev.MaxIncome.Equal(g[i].MinIncome) {
				return fmt.Errorf("%w: %s %d %s brackets leave a gap between %s and %s", domain.ErrInvalidInput, stateLabel(k.state), k.year, k.status, prev.MaxIncome, g[i].MinIncome)
			}
		}
	}
	return nil
}

func stateLabel(state string) string {
	if state == "" {
		return "federal"
	}
	return state
}

func sortedKeys(m map[string]decimal.Decimal) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// CreateExampleReturn creates an example return covering every pipeline stage
func (ip *InputParser) CreateExampleReturn() *domain.ReturnInput {
	return &domain.ReturnInput{
		Name: "Example 2024 return",
		Form1040: domain.Form1040Input{
			TaxYear:            2024,
			FilingStatus:       domain.FilingSingle,
			State:              "PA",
			Wages:              decimal.NewFromInt(120000),
			TaxableInterest:    decimal.NewFromInt(1200),
			OrdinaryDividends:  decimal.NewFromInt(3400),
			QualifiedDividends: decimal.NewFromInt(2800),
			ScheduleD: domain.ScheduleDLines{
				Line1a: decimal.NewFromInt(-4000),
				Line8a: decimal.NewFromInt(-6000),
				Line12: decimal.NewFromInt(-2000),
			},
			Schedule1: domain.Schedule1Lines{
				BusinessIncome: decimal.NewFromInt(-380000),
				RentalIncome:   decimal.NewFromInt(12000),
				HSADeduction:   decimal.NewFromInt(4150),
			},
			StandardDeduction: decimal.NewFromInt(14600),
			W2Withholding:     decimal.NewFromInt(18000),
			NOL: domain.Form172Input{
				PartII: []domain.Form172PartIIInput{
					{TaxYear: 2025, NOLDeduction: decimal.NewFromInt(62000), TaxableIncome: decimal.NewFromInt(40000)},
				},
			},
		},
		EstimateTax:      true,
		EstimateStateTax: true,
	}
}
