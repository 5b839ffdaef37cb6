package domain

type RentalROIInput struct {
	PropertyPrice      float64 `json:"propertyPrice" validate:"finite,gt=0"`
	MonthlyRent        float64 `json:"monthlyRent" validate:"finite,gt=0"`
	DownPayment        float64 `json:"downPayment" validate:"finite,gt=0,ltfield=PropertyPrice"`
	InterestRate       float64 `json:"interestRate" validate:"finite,gt=0"`
	LoanTermYears      int     `json:"loanTermYears" validate:"gt=0"`
	MonthlyExpenses    float64 `json:"monthlyExpenses" validate:"finite,gte=0"`
	VacancyRatePercent float64 `json:"vacancyRatePercent" validate:"finite,gte=0,lte=100"`
}

// RentalROIResult holds cash flows in currency units and the ratios in percent.
type RentalROIResult struct {
	MonthlyCashFlow float64 `json:"monthlyCashFlow"`
	AnnualCashFlow  float64 `json:"annualCashFlow"`
	CashOnCashROI   float64 `json:"cashOnCashROI"`
	CapRate         float64 `json:"capRate"`
	TotalROI        float64 `json:"totalROI"`
}
