package http

import (
	"net/http"
	"slices"
	"strings"

	"github.com/rs/cors"
)

// NewRouter registers the API routes. Calculator endpoints are rate limited;
// the health check is not.
func NewRouter(
	calculatorHandler *CalculatorHandler,
	limiter *RateLimiter,
	allowedOrigins []string,
) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/api/health", Health)

	calculators := map[string]http.HandlerFunc{
		"/api/calculate-mortgage":        calculatorHandler.CalculateMortgage,
		"/api/calculate-closing-costs":   calculatorHandler.CalculateClosingCosts,
		"/api/calculate-occupancy-costs": calculatorHandler.CalculateOccupancyCosts,
		"/api/calculate-rental-roi":      calculatorHandler.CalculateRentalROI,
	}
	for path, handler := range calculators {
		mux.Handle(path, RateLimitMiddleware(limiter, handler))
	}

	c := cors.New(cors.Options{
		AllowOriginFunc: func(origin string) bool {
			return originAllowed(allowedOrigins, origin)
		},
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Origin", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Length"},
		AllowCredentials: true,
	})

	return RecoveryMiddleware(c.Handler(mux))
}

// originAllowed accepts the configured origins and any Vercel preview deployment.
func originAllowed(allowed []string, origin string) bool {
	if slices.Contains(allowed, origin) {
		return true
	}
	return strings.HasPrefix(origin, "https://") && strings.HasSuffix(origin, ".vercel.app")
}
