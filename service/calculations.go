package service

import (
	"math"

	"github.com/shopspring/decimal"

	"property-pilot/domain"
)

// The functions in this file are pure: they do no validation and keep no
// state. Inputs must be finite; CalculatorService validates them first.

// CalculateMortgage estimates the monthly payment with a simplified factor
// (price × financed share × monthly rate × 1.5). It is intentionally not the
// amortization formula used by CalculateRentalROI.
func CalculateMortgage(
	propertyPrice float64,
	downPaymentPercent float64,
	interestRate float64,
) domain.MortgageResult {
	price := decimal.NewFromFloat(propertyPrice)
	percent := decimal.NewFromFloat(downPaymentPercent)

	downPayment := percentOf(price, percent)
	loanAmount := price.Sub(downPayment)

	financedShare := decimal.NewFromInt(1).Sub(percent.Div(hundred))
	monthlyPayment := price.
		Mul(financedShare).
		Mul(decimal.NewFromFloat(interestRate)).
		Mul(decimal.NewFromFloat(MortgagePaymentFactor)).
		Div(hundred.Mul(monthsPerYear))

	return domain.MortgageResult{
		MonthlyPayment: monthlyPayment.InexactFloat64(),
		DownPayment:    downPayment.InexactFloat64(),
		LoanAmount:     loanAmount.InexactFloat64(),
	}
}

// CalculateClosingCosts itemizes the one-time costs of closing. A rebated HST
// zeroes the HST line entirely. The agent commission is reported apart from
// the basic total.
func CalculateClosingCosts(
	propertyPrice float64,
	hstAmount float64,
	hstRebated bool,
	landTransferTax float64,
	devCharge float64,
	lawyerFee float64,
	includeAgentCommission bool,
) domain.ClosingCostsResult {
	hst := decimal.NewFromFloat(hstAmount)
	if hstRebated {
		hst = decimal.Zero
	}
	landTransfer := decimal.NewFromFloat(landTransferTax)
	dev := decimal.NewFromFloat(devCharge)
	lawyer := decimal.NewFromFloat(lawyerFee)

	commission := decimal.Zero
	if includeAgentCommission {
		commission = decimal.NewFromFloat(propertyPrice).
			Mul(decimal.NewFromFloat(AgentCommissionRate))
	}

	total := sum(hst, landTransfer, dev, lawyer)

	return domain.ClosingCostsResult{
		BasicClosingCosts: domain.CostBreakdown{
			{Label: domain.LabelHST, Amount: hst.InexactFloat64()},
			{Label: domain.LabelLandTransferTax, Amount: landTransfer.InexactFloat64()},
			{Label: domain.LabelDevCharge, Amount: dev.InexactFloat64()},
			{Label: domain.LabelLawyerFee, Amount: lawyer.InexactFloat64()},
		},
		AgentCommission: commission.InexactFloat64(),
		TotalCosts:      total.InexactFloat64(),
		TotalWithAgent:  total.Add(commission).InexactFloat64(),
	}
}

// CalculateOccupancyCosts collapses the monthly occupancy fee into a single
// line covering the whole period.
func CalculateOccupancyCosts(
	lawyerFee float64,
	occupancyFee float64,
	months int,
) domain.OccupancyCostsResult {
	lawyer := decimal.NewFromFloat(lawyerFee)
	occupancy := decimal.NewFromFloat(occupancyFee).Mul(decimal.NewFromInt(int64(months)))

	return domain.OccupancyCostsResult{
		CostBreakdown: domain.CostBreakdown{
			{Label: domain.LabelLawyerFee, Amount: lawyer.InexactFloat64()},
			{Label: domain.LabelOccupancyFee, Amount: occupancy.InexactFloat64()},
		},
		TotalCosts: lawyer.Add(occupancy).InexactFloat64(),
	}
}

// CalculateRentalROI projects the cash flow of a financed rental property.
// The loan payment uses the standard amortization formula. A zero down
// payment yields an infinite cash-on-cash ROI.
func CalculateRentalROI(
	propertyPrice float64,
	monthlyRent float64,
	downPayment float64,
	interestRate float64,
	loanTermYears int,
	monthlyExpenses float64,
	vacancyRatePercent float64,
) domain.RentalROIResult {
	loanAmount := propertyPrice - downPayment
	monthlyRate := interestRate / 100 / MonthsPerYear
	n := float64(loanTermYears * MonthsPerYear)

	payment := amortizedPayment(loanAmount, monthlyRate, n)

	adjustedRent := monthlyRent * (1 - vacancyRatePercent/100)
	monthlyCashFlow := adjustedRent - payment - monthlyExpenses
	annualCashFlow := monthlyCashFlow * MonthsPerYear

	cashOnCash := annualCashFlow / downPayment * 100
	capRate := monthlyRent * MonthsPerYear / propertyPrice * 100

	return domain.RentalROIResult{
		MonthlyCashFlow: monthlyCashFlow,
		AnnualCashFlow:  annualCashFlow,
		CashOnCashROI:   cashOnCash,
		CapRate:         capRate,
		TotalROI:        cashOnCash + AppreciationRate*100,
	}
}

func amortizedPayment(principal, monthlyRate, n float64) float64 {
	if monthlyRate == 0 {
		return principal / n
	}
	growth := math.Pow(1+monthlyRate, n)
	return principal * monthlyRate * growth / (growth - 1)
}
