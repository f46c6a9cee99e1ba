package calculation

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/rpgo/taxforms/internal/domain"
	money "github.com/rpgo/taxforms/pkg/decimal"
	"github.com/rpgo/taxforms/pkg/taxyear"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// nowFunc stamps computed reports (override in tests for determinism).
var nowFunc = time.Now

// SetNowFunc overrides the time provider (use only in tests).
func SetNowFunc(f func() time.Time) { nowFunc = f }

// Engine runs complete returns through the form pipeline and the marginal tax evaluator
type Engine struct {
	Brackets *BracketTable
	// CostOfLivingAdjustment is used for returns that do not set their own.
	CostOfLivingAdjustment decimal.Decimal
	// Concurrency bounds RunReturns; zero or negative uses GOMAXPROCS.
	Concurrency int
	// OnReturnDone, when set, is called from the worker goroutine after each return of a
	// RunReturns batch is computed. It must be safe for concurrent use.
	OnReturnDone func(*domain.ReturnReport)
	Logger       Logger
}

// NewEngine creates an engine over the bundled bracket table
func NewEngine() *Engine {
	return &Engine{
		Brackets:               DefaultBracketTable(),
		CostOfLivingAdjustment: DefaultCostOfLivingAdjustment,
		Concurrency:            runtime.GOMAXPROCS(0),
		Logger:                 NopLogger{},
	}
}

// SetLogger sets the logger for the engine. If nil is provided, a no-op logger is used.
func (e *Engine) SetLogger(l Logger) {
	if l == nil {
		e.Logger = NopLogger{}
		return
	}
	e.Logger = l
}

func (e *Engine) logger() Logger {
	if e.Logger == nil {
		return NopLogger{}
	}
	return e.Logger
}

// ComputeReturn validates and computes one return
func (e *Engine) ComputeReturn(in domain.ReturnInput) (*domain.ReturnReport, error) {
	f := in.Form1040
	if !taxyear.Valid(f.TaxYear) {
		return nil, fmt.Errorf("%w: tax year must be positive, got %d", domain.ErrInvalidInput, f.TaxYear)
	}
	if !f.FilingStatus.Valid() {
		return nil, fmt.Errorf("%w: unknown filing status %q", domain.ErrInvalidInput, f.FilingStatus)
	}
	if f.CostOfLivingAdjustment.IsNegative() {
		return nil, fmt.Errorf("%w: cost of living adjustment must be positive, got %s", domain.ErrInvalidInput, f.CostOfLivingAdjustment)
	}
	if f.Schedule1.NOLDeduction.IsNegative() {
		return nil, fmt.Errorf("%w: nol deduction cannot be negative, got %s", domain.ErrInvalidInput, f.Schedule1.NOLDeduction)
	}
	if f.CostOfLivingAdjustment.IsZero() {
		f.CostOfLivingAdjustment = e.CostOfLivingAdjustment
	}

	e.logger().Debugf("computing return %q for %d (%s)", in.Name, f.TaxYear, f.FilingStatus)
	result := CalculateForm1040(f)

	report := &domain.ReturnReport{
		Name:       in.Name,
		Form1040:   result,
		ComputedAt: nowFunc(),
	}

	if in.EstimateTax || in.EstimateStateTax {
		brackets := e.Brackets
		if brackets == nil {
			brackets = DefaultBracketTable()
		}
		if in.EstimateTax {
			fed := brackets.MarginalTax(f.TaxYear, "", result.Line15, f.FilingStatus)
			report.FederalTax = &fed
			if len(fed.Taxes) == 0 && result.Line15.IsPositive() {
				e.logger().Warnf("no federal brackets for %d (%s)", f.TaxYear, f.FilingStatus)
			}
		}
		if in.EstimateStateTax && f.State != "" {
			st := brackets.MarginalTax(f.TaxYear, f.State, result.Line15, f.FilingStatus)
			report.StateTax = &st
		}
	}

	report.Observations = observe(result)

	if err := CheckPostconditions(result); err != nil {
		e.logger().Errorf("return %q failed postconditions: %v", in.Name, err)
		return nil, err
	}
	return report, nil
}

// RunReturns computes many returns concurrently. Results keep the input order; the first
// failure or a cancelled ctx stops the run.
func (e *Engine) RunReturns(ctx context.Context, inputs []domain.ReturnInput) ([]*domain.ReturnReport, error) {
	reports := make([]*domain.ReturnReport, len(inputs))

	limit := e.Concurrency
	if limit <= 0 {
		limit = runtime.GOMAXPROCS(0)
	}

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(limit)
	for i, in := range inputs {
		i, in := i, in // per-iteration copy; go directive is 1.21 (pre-loopvar semantics)
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			report, err := e.ComputeReturn(in)
			if err != nil {
				return fmt.Errorf("return %d (%s): %w", i, in.Name, err)
			}
			reports[i] = report
			if e.OnReturnDone != nil {
				e.OnReturnDone(report)
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	e.logger().Infof("computed %d returns", len(reports))
	return reports, nil
}

// CheckPostconditions verifies the sign and balance invariants of a computed return
func CheckPostconditions(r domain.Form1040Result) error {
	f461 := r.Schedule1.Form461
	if f461.Line16.IsNegative() {
		return fmt.Errorf("%w: form 461 line 16 is %s: %w", domain.ErrPostcondition, f461.Line16, domain.ErrNegativeDisallowedLoss)
	}

	schD := r.ScheduleD
	if split := schD.LimitedBusiness.Add(schD.LimitedPersonal); !split.Equal(schD.Line21) {
		return fmt.Errorf("%w: schedule D split %s does not equal line 21 %s", domain.ErrPostcondition, split, schD.Line21)
	}
	if r.Line15.IsNegative() {
		return fmt.Errorf("%w: taxable income is %s", domain.ErrPostcondition, r.Line15)
	}

	if p1 := r.Form172.Part1; p1 != nil && p1.NOL().IsNegative() {
		return fmt.Errorf("%w: form 172 NOL is %s: %w", domain.ErrPostcondition, p1.NOL(), domain.ErrNegativeDisallowedLoss)
	}
	for _, p2 := range r.Form172.Part2 {
		if p2.Line10.IsNegative() {
			return fmt.Errorf("%w: form 172 carryover for %d is %s: %w", domain.ErrPostcondition, p2.TaxYear, p2.Line10, domain.ErrNegativeDisallowedLoss)
		}
	}
	return nil
}

func observe(r domain.Form1040Result) []string {
	var notes []string

	if ebl := r.Schedule1.Form461.Line16; ebl.IsPositive() {
		notes = append(notes, fmt.Sprintf("Excess business loss of %s is disallowed and carries to %d as an NOL",
			money.NewMoneyFromDecimal(ebl).Format(), r.TaxYear+1))
	}
	if schD := r.ScheduleD; schD.LimitApplied {
		carry := schD.Line21.Sub(schD.Line16)
		notes = append(notes, fmt.Sprintf("Capital loss limited to %s; %s carries over",
			money.NewMoneyFromDecimal(schD.Line21.Abs()).Format(), money.NewMoneyFromDecimal(carry).Format()))
	}
	if p1 := r.Form172.Part1; p1 != nil && p1.HasNOL {
		notes = append(notes, fmt.Sprintf("Form 172 shows a %d net operating loss of %s", p1.TaxYear,
			money.NewMoneyFromDecimal(p1.NOL()).Format()))
	}
	if last := excessBusinessLossThresholds[len(excessBusinessLossThresholds)-1]; r.TaxYear > last.TaxYear {
		notes = append(notes, fmt.Sprintf("Excess business loss threshold projected from %d", last.TaxYear))
	}
	return notes
}
