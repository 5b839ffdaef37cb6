package http

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"

	"property-pilot/domain"
	"property-pilot/service"
)

const maxBodyBytes = 1 << 20

type CalculatorHandler struct {
	service *service.CalculatorService
}

func NewCalculatorHandler(service *service.CalculatorService) *CalculatorHandler {
	return &CalculatorHandler{service: service}
}

// handleCalculation decodes a POSTed JSON input, runs calculate and writes
// the envelope. Validation errors become 400s; anything else is logged and
// reported as a generic 500 naming the failed operation.
func handleCalculation[In, Out any](
	w http.ResponseWriter,
	r *http.Request,
	calculate func(context.Context, In) (Out, error),
	operation string,
) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	dec := json.NewDecoder(r.Body)
	var input In
	if err := dec.Decode(&input); err != nil {
		log.Printf("Error decoding request body: %v", err)
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}
	// the body must hold exactly one JSON value
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		log.Printf("Error decoding request body: trailing data after input (%v)", err)
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	result, err := calculate(r.Context(), input)
	if err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			writeError(w, http.StatusBadRequest, verr.Message)
			return
		}
		log.Printf("Error %s: %v", operation, err)
		writeError(w, http.StatusInternalServerError,
			"Internal server error occurred while "+operation+".")
		return
	}

	writeJSON(w, http.StatusOK, Response{Success: true, Data: result})
}
