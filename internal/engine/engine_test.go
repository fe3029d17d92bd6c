package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"valvelet/internal/model"
)

func testInputs() model.Inputs {
	return model.Inputs{
		Balance: balance("500000", date(2026, 2, 19)),
		Incomes: []model.IncomeEntry{
			{Source: "Salary", Amount: dec("200000"), Frequency: model.FreqMonthly, From: date(2026, 1, 1)},
		},
		FixedCosts: []model.FixedCost{{Name: "Rent", Amount: dec("85000")}},
		Scenarios: []model.Scenario{
			{Name: "Minimal", Activities: []model.Activity{
				{Name: "Gym", Cost: dec("1000"), DaysPerWeek: dec("3")},
			}},
			{Name: "Lavish", Activities: []model.Activity{
				{Name: "Dining out", Cost: dec("8000"), DaysPerWeek: dec("5")},
				{Name: "Golf", Cost: dec("20000"), DaysPerWeek: dec("1")},
			}},
		},
	}
}

func TestRunProducesOneResultPerScenario(t *testing.T) {
	res, err := Run(testInputs(), 0) // 0 = default horizon
	require.NoError(t, err)

	require.Len(t, res.Projections, 2)
	require.Len(t, res.Metrics, 2)
	require.Len(t, res.Ranked, 2)

	assert.Equal(t, "Minimal", res.Projections[0].Scenario)
	assert.Equal(t, "Lavish", res.Projections[1].Scenario)
	require.Len(t, res.Projections[0].Points, DefaultHorizonDays)
}

func TestRunMetricsCarryProjectionDeathDay(t *testing.T) {
	res, err := Run(testInputs(), DefaultHorizonDays)
	require.NoError(t, err)

	for i, p := range res.Projections {
		assert.Equal(t, p.Death.DeathDay, res.Metrics[i].DeathDay,
			"metrics death day must come from the projection for %s", p.Scenario)
	}

	// Minimal has positive net daily and survives; Lavish burns
	// ~2833+5714+2857/day against 6667/day income and eventually dies.
	minimal, ok := res.ProjectionFor("Minimal")
	require.True(t, ok)
	assert.Nil(t, minimal.Death.DeathDay)

	lavish, ok := res.ProjectionFor("Lavish")
	require.True(t, ok)
	assert.NotNil(t, lavish.Death.DeathDay)
}

func TestRunRanking(t *testing.T) {
	res, err := Run(testInputs(), DefaultHorizonDays)
	require.NoError(t, err)

	assert.Equal(t, "Lavish", res.Ranked[0].Scenario, "dying scenario ranks first")
	assert.Equal(t, "Minimal", res.Ranked[1].Scenario, "survivor ranks last")
}

func TestRunChartLenCoversLatestDeath(t *testing.T) {
	res, err := Run(testInputs(), DefaultHorizonDays)
	require.NoError(t, err)

	lavish, _ := res.ProjectionFor("Lavish")
	deathIdx := daysBetween(lavish.Points[0].Date, *lavish.Death.DeathDay)
	assert.Equal(t, deathIdx+1, res.ChartLen)

	truncated := lavish.Truncated(res.ChartLen)
	assert.Equal(t, *lavish.Death.DeathDay, truncated.Points[len(truncated.Points)-1].Date)
}

func TestRunChartLenFallbackWhenAllSurvive(t *testing.T) {
	in := testInputs()
	in.Scenarios = in.Scenarios[:1] // Minimal only, survives
	res, err := Run(in, DefaultHorizonDays)
	require.NoError(t, err)

	assert.Equal(t, 3650, res.ChartLen)
}

func TestRunChartLenNeverExceedsHorizon(t *testing.T) {
	in := testInputs()
	in.Scenarios = in.Scenarios[:1]
	res, err := Run(in, 100)
	require.NoError(t, err)
	assert.Equal(t, 100, res.ChartLen)
}

func TestRunEmptyScenarioSet(t *testing.T) {
	in := testInputs()
	in.Scenarios = nil

	res, err := Run(in, 365)
	require.NoError(t, err, "zero scenarios is degenerate but valid")
	assert.Empty(t, res.Projections)
	assert.Empty(t, res.Metrics)
	assert.Empty(t, res.Ranked)
}

func TestRunRejectsMalformedInputs(t *testing.T) {
	in := testInputs()
	in.Incomes[0].Amount = dec("-1")

	_, err := Run(in, 365)
	assert.ErrorIs(t, err, model.ErrMalformedInput)
}

func TestRunIsDeterministic(t *testing.T) {
	a, err := Run(testInputs(), 2000)
	require.NoError(t, err)
	b, err := Run(testInputs(), 2000)
	require.NoError(t, err)

	require.Equal(t, len(a.Projections), len(b.Projections))
	for i := range a.Projections {
		pa, pb := a.Projections[i], b.Projections[i]
		require.Equal(t, len(pa.Points), len(pb.Points))
		assert.True(t, pa.Points[len(pa.Points)-1].Balance.Equal(pb.Points[len(pb.Points)-1].Balance))
	}
}

func TestMetricsForLookup(t *testing.T) {
	res, err := Run(testInputs(), 365)
	require.NoError(t, err)

	m, ok := res.MetricsFor("Lavish")
	require.True(t, ok)
	assert.Equal(t, "Lavish", m.Scenario)

	_, ok = res.MetricsFor("Nonexistent")
	assert.False(t, ok)
}
