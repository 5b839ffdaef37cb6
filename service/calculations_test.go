package service

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"property-pilot/domain"
)

func TestCalculateMortgage_Example(t *testing.T) {
	result := CalculateMortgage(500000, 20, 6)

	assert.Equal(t, 100000.0, result.DownPayment)
	assert.Equal(t, 400000.0, result.LoanAmount)
	assert.Equal(t, 3000.0, result.MonthlyPayment)
}

// withinULPs reports whether a is at most n float64 steps away from b.
func withinULPs(a, b float64, n int) bool {
	ulp := math.Nextafter(math.Abs(b), math.Inf(1)) - math.Abs(b)
	return math.Abs(a-b) <= float64(n)*ulp
}

func TestCalculateMortgage_KeepsFormulaPrecision(t *testing.T) {
	assert.Equal(t, 875.00875, CalculateMortgage(100001, 0, 7).MonthlyPayment)

	result := CalculateMortgage(99.99, 0.5, 5)
	assert.Equal(t, 0.49995, result.DownPayment)
	assert.Equal(t, 99.49005, result.LoanAmount)
}

func TestCalculateMortgage_DownPaymentPlusLoanIsPrice(t *testing.T) {
	percents := []float64{0, 0.5, 5, 12.5, 20, 33.33, 99.9, 100}

	for i := 0; i < 2000; i++ {
		price := decimal.RequireFromString("100000.01").
			Add(decimal.RequireFromString("0.37").Mul(decimal.NewFromInt(int64(i)))).
			InexactFloat64()
		for _, percent := range percents {
			result := CalculateMortgage(price, percent, 4.5)

			// Both amounts are exact decimals; adding them as float64 may
			// round to a neighbour of the price.
			got := result.DownPayment + result.LoanAmount
			assert.True(t, withinULPs(got, price, 2),
				"price %v percent %v: %v + %v = %v",
				price, percent, result.DownPayment, result.LoanAmount, got)
			assert.GreaterOrEqual(t, result.LoanAmount, 0.0)
		}
	}
}

func TestCalculateMortgage_FloatSumMayMissPriceByOneStep(t *testing.T) {
	result := CalculateMortgage(100003.71, 5, 4.5)

	assert.Equal(t, 5000.1855, result.DownPayment)
	assert.Equal(t, 95003.5245, result.LoanAmount)
	assert.NotEqual(t, 100003.71, result.DownPayment+result.LoanAmount)
	assert.True(t, withinULPs(result.DownPayment+result.LoanAmount, 100003.71, 1))
}

func TestCalculateMortgage_Boundaries(t *testing.T) {
	noDown := CalculateMortgage(400000, 0, 5)
	assert.Equal(t, 0.0, noDown.DownPayment)
	assert.Equal(t, 400000.0, noDown.LoanAmount)
	assert.Equal(t, 2500.0, noDown.MonthlyPayment)

	allDown := CalculateMortgage(400000, 100, 5)
	assert.Equal(t, 400000.0, allDown.DownPayment)
	assert.Equal(t, 0.0, allDown.LoanAmount)
	assert.Equal(t, 0.0, allDown.MonthlyPayment)
}

func TestCalculateClosingCosts_Example(t *testing.T) {
	result := CalculateClosingCosts(600000, 20000, true, 8000, 5000, 2000, true)

	hst, ok := result.BasicClosingCosts.Amount(domain.LabelHST)
	assert.True(t, ok)
	assert.Equal(t, 0.0, hst)
	assert.Equal(t, 15000.0, result.TotalCosts)
	assert.Equal(t, 30000.0, result.AgentCommission)
	assert.Equal(t, 45000.0, result.TotalWithAgent)
}

func TestCalculateClosingCosts_LineOrder(t *testing.T) {
	result := CalculateClosingCosts(500000, 15000, false, 6475, 3000, 1500, false)

	labels := make([]string, 0, len(result.BasicClosingCosts))
	for _, item := range result.BasicClosingCosts {
		labels = append(labels, item.Label)
	}
	assert.Equal(t, []string{"HST", "Land Transfer Tax", "Dev. Charge", "Lawyer Fee"}, labels)

	hst, _ := result.BasicClosingCosts.Amount(domain.LabelHST)
	assert.Equal(t, 15000.0, hst)
	assert.Equal(t, 25975.0, result.TotalCosts)
}

func TestCalculateClosingCosts_Properties(t *testing.T) {
	tests := []struct {
		name       string
		price      float64
		hst        float64
		rebated    bool
		commission bool
	}{
		{"rebated with agent", 875000.5, 24000.25, true, true},
		{"rebated without agent", 412345.67, 9999.99, true, false},
		{"charged with agent", 1000001, 31000, false, true},
		{"charged without agent", 650000, 0.01, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CalculateClosingCosts(tt.price, tt.hst, tt.rebated, 7000.1, 4200.2, 1999.9, tt.commission)

			hst, _ := result.BasicClosingCosts.Amount(domain.LabelHST)
			if tt.rebated {
				assert.Equal(t, 0.0, hst)
			} else {
				assert.Equal(t, tt.hst, hst)
			}
			if !tt.commission {
				assert.Equal(t, 0.0, result.AgentCommission)
			}

			assert.InDelta(t, result.AgentCommission, result.TotalWithAgent-result.TotalCosts, 1e-6)

			lines := 0.0
			for _, item := range result.BasicClosingCosts {
				lines += item.Amount
			}
			assert.InDelta(t, result.TotalCosts, lines, 1e-6)
		})
	}
}

func TestCalculateClosingCosts_CommissionIsNotRounded(t *testing.T) {
	result := CalculateClosingCosts(875000.5, 0, false, 0, 0, 0, true)

	assert.Equal(t, 43750.025, result.AgentCommission)
	assert.Equal(t, 43750.025, result.TotalWithAgent)
}

func TestCalculateClosingCosts_FloatDifferenceOfTotals(t *testing.T) {
	result := CalculateClosingCosts(4, 0.1, false, 0, 0, 0, true)

	assert.Equal(t, 0.2, result.AgentCommission)
	assert.Equal(t, 0.1, result.TotalCosts)
	assert.Equal(t, 0.3, result.TotalWithAgent)
	// 0.3 - 0.1 is not 0.2 in float64; clients must not compare exactly
	assert.NotEqual(t, result.AgentCommission, result.TotalWithAgent-result.TotalCosts)
	assert.InDelta(t, result.AgentCommission, result.TotalWithAgent-result.TotalCosts, 1e-12)
}

func TestCalculateOccupancyCosts_Example(t *testing.T) {
	result := CalculateOccupancyCosts(1500, 800, 6)

	assert.Equal(t, domain.CostBreakdown{
		{Label: "Lawyer Fee", Amount: 1500},
		{Label: "Occupancy Fee", Amount: 4800},
	}, result.CostBreakdown)
	assert.Equal(t, 6300.0, result.TotalCosts)
}

func TestCalculateOccupancyCosts_Total(t *testing.T) {
	for months := 1; months <= 36; months++ {
		result := CalculateOccupancyCosts(1250.5, 733.33, months)

		assert.InDelta(t, 1250.5+733.33*float64(months), result.TotalCosts, 1e-6, "months %d", months)
	}
}

func TestCalculateRentalROI(t *testing.T) {
	result := CalculateRentalROI(300000, 2500, 60000, 6, 30, 500, 5)

	assert.InDelta(t, 436.0787396333833, result.MonthlyCashFlow, 1e-9)
	assert.InDelta(t, 5232.9448756005995, result.AnnualCashFlow, 1e-9)
	assert.InDelta(t, 8.721574792667667, result.CashOnCashROI, 1e-9)
	assert.InDelta(t, 10.0, result.CapRate, 1e-12)
	assert.InDelta(t, 11.721574792667667, result.TotalROI, 1e-9)
	assert.Equal(t, result.MonthlyCashFlow*12, result.AnnualCashFlow)
}

func TestCalculateRentalROI_FullVacancy(t *testing.T) {
	result := CalculateRentalROI(200000, 1500, 50000, 5, 25, 0, 100)

	assert.Less(t, result.MonthlyCashFlow, 0.0)
	// cap rate ignores vacancy and financing
	assert.InDelta(t, 9.0, result.CapRate, 1e-12)
}

func TestCalculateRentalROI_ZeroDownPaymentIsInfinite(t *testing.T) {
	result := CalculateRentalROI(300000, 2500, 0, 6, 30, 0, 0)

	assert.True(t, math.IsInf(result.CashOnCashROI, 0))
}

func TestAmortizedPayment_ZeroRate(t *testing.T) {
	assert.Equal(t, 100.0, amortizedPayment(1200, 0, 12))
}

func TestCalculators_AreDeterministic(t *testing.T) {
	assert.Equal(t, CalculateMortgage(523456.78, 17.5, 5.25), CalculateMortgage(523456.78, 17.5, 5.25))
	assert.Equal(t,
		CalculateClosingCosts(600000, 20000, false, 8000, 5000, 2000, true),
		CalculateClosingCosts(600000, 20000, false, 8000, 5000, 2000, true))
	assert.Equal(t, CalculateOccupancyCosts(1500, 800, 6), CalculateOccupancyCosts(1500, 800, 6))
	assert.Equal(t,
		CalculateRentalROI(300000, 2500, 60000, 6, 30, 500, 5),
		CalculateRentalROI(300000, 2500, 60000, 6, 30, 500, 5))
}
