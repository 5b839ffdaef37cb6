package http

import "net/http"

func (h *CalculatorHandler) CalculateOccupancyCosts(w http.ResponseWriter, r *http.Request) {
	handleCalculation(w, r, h.service.OccupancyCosts, "calculating occupancy costs")
}
