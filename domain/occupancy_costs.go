package domain

const LabelOccupancyFee = "Occupancy Fee"

type OccupancyCostsInput struct {
	LawyerFee    float64 `json:"lawyerFee" validate:"finite,gte=0"`
	OccupancyFee float64 `json:"occupancyFee" validate:"finite,gte=0"`
	Months       int     `json:"months" validate:"gte=1"`
}

type OccupancyCostsResult struct {
	CostBreakdown CostBreakdown `json:"costBreakdown"`
	TotalCosts    float64       `json:"totalCosts"`
}
