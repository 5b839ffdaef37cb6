package http

import "net/http"

func (h *CalculatorHandler) CalculateClosingCosts(w http.ResponseWriter, r *http.Request) {
	handleCalculation(w, r, h.service.ClosingCosts, "calculating closing costs")
}
