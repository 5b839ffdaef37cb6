package domain

type MortgageInput struct {
	PropertyPrice      float64 `json:"propertyPrice" validate:"finite,gt=0"`
	DownPaymentPercent float64 `json:"downPaymentPercent" validate:"finite,gte=0,lte=100"`
	InterestRate       float64 `json:"interestRate" validate:"finite,gt=0"`
}

type MortgageResult struct {
	MonthlyPayment float64 `json:"monthlyPayment"`
	DownPayment    float64 `json:"downPayment"`
	LoanAmount     float64 `json:"loanAmount"`
}
