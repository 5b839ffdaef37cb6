package http

import "net/http"

func (h *CalculatorHandler) CalculateRentalROI(w http.ResponseWriter, r *http.Request) {
	handleCalculation(w, r, h.service.RentalROI, "calculating rental ROI")
}
