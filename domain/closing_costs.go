package domain

// Closing cost line labels, in display order.
const (
	LabelHST             = "HST"
	LabelLandTransferTax = "Land Transfer Tax"
	LabelDevCharge       = "Dev. Charge"
	LabelLawyerFee       = "Lawyer Fee"
)

type ClosingCostsInput struct {
	PropertyPrice          float64 `json:"propertyPrice" validate:"finite,gt=0"`
	HSTAmount              float64 `json:"hstAmount" validate:"finite,gte=0"`
	HSTRebated             bool    `json:"hstRebated"`
	LandTransferTax        float64 `json:"landTransferTax" validate:"finite,gte=0"`
	DevCharge              float64 `json:"devCharge" validate:"finite,gte=0"`
	LawyerFee              float64 `json:"lawyerFee" validate:"finite,gte=0"`
	IncludeAgentCommission bool    `json:"includeAgentCommission"`
}

type ClosingCostsResult struct {
	BasicClosingCosts CostBreakdown `json:"basicClosingCosts"`
	AgentCommission   float64       `json:"agentCommission"`
	TotalCosts        float64       `json:"totalCosts"`
	TotalWithAgent    float64       `json:"totalWithAgent"`
}
