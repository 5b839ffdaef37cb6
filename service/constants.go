package service

const (
	AgentCommissionRate = 0.05 // 5% del precio de la propiedad
	AppreciationRate    = 0.03 // apreciación anual asumida

	// Cuota simplificada: no es una fórmula de amortización
	MortgagePaymentFactor = 1.5

	MonthsPerYear = 12
)
