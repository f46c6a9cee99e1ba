package integration

import (
	"context"
	"testing"

	"github.com/rpgo/taxforms/internal/calculation"
	"github.com/rpgo/taxforms/internal/config"
	"github.com/rpgo/taxforms/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

const testdata = "../testdata/"

func computeFixture(t *testing.T, name string) *domain.ReturnReport {
	t.Helper()
	input, err := config.NewInputParser().LoadFromFile(testdata + name)
	require.NoError(t, err)
	report, err := calculation.NewEngine().ComputeReturn(*input)
	require.NoError(t, err)
	return report
}

func requireDecimal(t *testing.T, want string, got decimal.Decimal, field string) {
	t.Helper()
	assert.True(t, decimal.RequireFromString(want).Equal(got), "%s: expected %s, got %s", field, want, got)
}

func TestEndToEnd_WagesOnly(t *testing.T) {
	r := computeFixture(t, "wages_return.yaml")
	f := r.Form1040

	requireDecimal(t, "100000", f.Line9, "line9")
	requireDecimal(t, "100000", f.Line11, "line11")
	requireDecimal(t, "85400", f.Line15, "line15")
	requireDecimal(t, "15000", f.Line33, "line33")

	require.NotNil(t, r.FederalTax)
	// 1160 + 4266 + 8415
	requireDecimal(t, "13841", r.FederalTax.TotalTax, "federal tax")
	assert.Nil(t, r.StateTax)
	assert.Empty(t, r.Observations)
}

func TestEndToEnd_ExcessBusinessLoss(t *testing.T) {
	r := computeFixture(t, "ebl_return.yaml")
	f := r.Form1040

	requireDecimal(t, "95000", f.Schedule1.Form461.Line16, "form 461 line16")
	requireDecimal(t, "95000", f.Schedule1.Line8p, "schedule 1 line8p")
	requireDecimal(t, "-305000", f.Schedule1.Line10, "schedule 1 line10")
	requireDecimal(t, "-305000", f.Line11, "agi")
	requireDecimal(t, "0", f.Line15, "taxable income")

	require.NotNil(t, f.Form172.Part1)
	assert.True(t, f.Form172.Part1.HasNOL)
	assert.True(t, f.Form172.Part1.NOL().IsPositive())
	assert.Equal(t, 2024, f.Form172.Part1.TaxYear)

	require.Len(t, f.Form172.Part2, 1)
	requireDecimal(t, "100000", f.Form172.Part2[0].Line9, "part II modified taxable income")
	requireDecimal(t, "0", f.Form172.Part2[0].Line10, "part II carryover")

	// Form 172 is reported but not fed back into line 8a
	assert.True(t, f.Schedule1.Line8a.IsZero())

	assert.Contains(t, r.Observations, "Excess business loss of $95,000.00 is disallowed and carries to 2025 as an NOL")
}

func TestEndToEnd_JointCapitalLoss(t *testing.T) {
	r := computeFixture(t, "joint_capital_loss.yaml")
	schD := r.Form1040.ScheduleD

	requireDecimal(t, "-16000", schD.Line16, "line16")
	// joint filers are not single: the cap is 1500
	requireDecimal(t, "-1500", schD.Line21, "line21")
	// -1500 * 9500/16000
	requireDecimal(t, "-890.63", schD.LimitedBusiness, "limited business")
	requireDecimal(t, "-609.37", schD.LimitedPersonal, "limited personal")
	assert.True(t, schD.LimitedBusiness.Add(schD.LimitedPersonal).Equal(schD.Line21))
	requireDecimal(t, "-1500", r.Form1040.Line7, "form 1040 line7")

	// joint filers use the joint threshold; the business is profitable so nothing is disallowed
	requireDecimal(t, "578000", r.Form1040.Schedule1.Form461.Line15, "threshold")
	assert.True(t, r.Form1040.Schedule1.Form461.Line16.IsZero())

	require.NotNil(t, r.StateTax)
	assert.Equal(t, "PA", r.StateTax.State)
	requireDecimal(t, r.Form1040.Line15.Mul(decimal.RequireFromString("0.0307")).String(), r.StateTax.TotalTax, "pa tax")
}

func TestRunReturns_Fixtures(t *testing.T) {
	defer goleak.VerifyNone(t)

	inputs, err := config.NewInputParser().LoadAll([]string{
		testdata + "wages_return.yaml",
		testdata + "ebl_return.yaml",
		testdata + "joint_capital_loss.yaml",
	})
	require.NoError(t, err)

	engine := calculation.NewEngine()
	engine.Concurrency = 2
	reports, err := engine.RunReturns(context.Background(), inputs)
	require.NoError(t, err)
	require.Len(t, reports, 3)

	assert.Equal(t, "Wages only", reports[0].Name)
	assert.Equal(t, "Excess business loss", reports[1].Name)
	assert.Equal(t, "Joint capital loss", reports[2].Name)
	for _, r := range reports {
		assert.NoError(t, calculation.CheckPostconditions(r.Form1040))
	}
}

func TestBracketFile_MergesOverBundled(t *testing.T) {
	nj, err := config.NewInputParser().LoadBracketTable(testdata + "brackets_nj.yaml")
	require.NoError(t, err)

	table := calculation.DefaultBracketTable().Merge(nj)
	result := table.MarginalTax(2024, "nj", decimal.NewFromInt(85400), domain.FilingSingle)
	require.Len(t, result.Taxes, 5)
	// 280 + 262.50 + 175 + 1933.75 + 662.48
	requireDecimal(t, "3313.73", result.TotalTax, "nj tax")

	federal := table.MarginalTax(2024, "", decimal.NewFromInt(50000), domain.FilingSingle)
	requireDecimal(t, "6053", federal.TotalTax, "federal tax")
}
