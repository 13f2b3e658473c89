package finance

import "math"

// RateModel fixes the compounding assumptions shared by all projections:
// a flat daily rate applied over a fixed number of trading days per month.
type RateModel struct {
	DailyRate    float64
	DaysPerMonth int
}

// DefaultRateModel is the model the bot advertises to users:
// 1.28% per day over 22 trading days per month.
var DefaultRateModel = RateModel{DailyRate: 0.0128, DaysPerMonth: 22}

// MonthlyFactor is the balance multiplier for one simulated month.
func (m RateModel) MonthlyFactor() float64 {
	return math.Pow(1+m.DailyRate, float64(m.DaysPerMonth))
}

// Point is one month of a growth projection.
type Point struct {
	Month   int
	Balance float64
}

// WithdrawPoint is one month of the half-profit withdrawal projection.
type WithdrawPoint struct {
	Month     int
	Balance   float64
	Withdrawn float64
}

// Engine runs the balance projections for a fixed rate model. It holds no
// other state; every call computes a fresh series.
type Engine struct {
	model RateModel
}

func NewEngine(model RateModel) *Engine {
	return &Engine{model: model}
}

// Model returns the rate model the engine was built with.
func (e *Engine) Model() RateModel {
	return e.model
}

// Growth compounds the balance once per month with no cash flows.
// Zero (or negative) months yields an empty series and the initial balance.
func (e *Engine) Growth(initial float64, months int) (float64, []Point) {
	factor := e.model.MonthlyFactor()
	balance := initial
	series := make([]Point, 0, max(months, 0))

	for m := 1; m <= months; m++ {
		balance *= factor
		series = append(series, Point{Month: m, Balance: balance})
	}
	return balance, series
}

// GrowthWithContribution compounds the balance each month and then, for the
// first monthsContributing months, adds the contribution. The contribution
// lands after compounding, so the month's growth applies only to the
// pre-contribution balance.
func (e *Engine) GrowthWithContribution(initial float64, monthsTotal int, contribution float64, monthsContributing int) (float64, []Point) {
	factor := e.model.MonthlyFactor()
	balance := initial
	series := make([]Point, 0, max(monthsTotal, 0))

	for m := 1; m <= monthsTotal; m++ {
		balance *= factor
		if m <= monthsContributing {
			balance += contribution
		}
		series = append(series, Point{Month: m, Balance: balance})
	}
	return balance, series
}

// WithdrawHalfProfit compounds the balance each month, withdraws half of
// that month's profit and reinvests the rest. Returns the final balance,
// the cumulative amount withdrawn, and the full series.
func (e *Engine) WithdrawHalfProfit(initial float64, months int) (float64, float64, []WithdrawPoint) {
	factor := e.model.MonthlyFactor()
	balance := initial
	totalWithdrawn := 0.0
	series := make([]WithdrawPoint, 0, max(months, 0))

	for m := 1; m <= months; m++ {
		start := balance
		grown := start * factor
		profit := grown - start

		withdrawn := math.Max(0, profit*0.5)
		balance = grown - withdrawn
		totalWithdrawn += withdrawn

		series = append(series, WithdrawPoint{Month: m, Balance: balance, Withdrawn: withdrawn})
	}
	return balance, totalWithdrawn, series
}
