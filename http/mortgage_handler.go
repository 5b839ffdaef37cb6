package http

import "net/http"

func (h *CalculatorHandler) CalculateMortgage(w http.ResponseWriter, r *http.Request) {
	handleCalculation(w, r, h.service.Mortgage, "calculating mortgage")
}
