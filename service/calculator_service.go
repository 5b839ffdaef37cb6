package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strconv"

	"github.com/cespare/xxhash/v2"
	"github.com/go-playground/validator/v10"

	"property-pilot/domain"
	"property-pilot/repository"
)

// ErrNonFiniteResult is returned when a calculation overflows.
var ErrNonFiniteResult = errors.New("calculation produced a non-finite value")

type CalculatorService struct {
	cache    repository.CacheRepository
	validate *validator.Validate
}

// NewCalculatorService creates a CalculatorService that memoizes results in cache.
func NewCalculatorService(cache repository.CacheRepository) *CalculatorService {
	return &CalculatorService{
		cache:    cache,
		validate: newValidator(),
	}
}

// Mortgage validates the input and estimates the mortgage payment.
func (s *CalculatorService) Mortgage(
	ctx context.Context,
	input domain.MortgageInput,
) (domain.MortgageResult, error) {
	if err := validateInput(s.validate, input); err != nil {
		return domain.MortgageResult{}, err
	}

	return cached(ctx, s.cache, "mortgage", input, func() (domain.MortgageResult, error) {
		result := CalculateMortgage(input.PropertyPrice, input.DownPaymentPercent, input.InterestRate)
		if !isFinite(result.MonthlyPayment, result.DownPayment, result.LoanAmount) {
			return result, ErrNonFiniteResult
		}
		return result, nil
	})
}

// ClosingCosts validates the input and itemizes the closing costs.
func (s *CalculatorService) ClosingCosts(
	ctx context.Context,
	input domain.ClosingCostsInput,
) (domain.ClosingCostsResult, error) {
	if err := validateInput(s.validate, input); err != nil {
		return domain.ClosingCostsResult{}, err
	}

	return cached(ctx, s.cache, "closing-costs", input, func() (domain.ClosingCostsResult, error) {
		result := CalculateClosingCosts(
			input.PropertyPrice,
			input.HSTAmount,
			input.HSTRebated,
			input.LandTransferTax,
			input.DevCharge,
			input.LawyerFee,
			input.IncludeAgentCommission,
		)
		if !isFinite(result.AgentCommission, result.TotalCosts, result.TotalWithAgent) {
			return result, ErrNonFiniteResult
		}
		return result, nil
	})
}

// OccupancyCosts validates the input and totals the occupancy costs.
func (s *CalculatorService) OccupancyCosts(
	ctx context.Context,
	input domain.OccupancyCostsInput,
) (domain.OccupancyCostsResult, error) {
	if err := validateInput(s.validate, input); err != nil {
		return domain.OccupancyCostsResult{}, err
	}

	return cached(ctx, s.cache, "occupancy-costs", input, func() (domain.OccupancyCostsResult, error) {
		result := CalculateOccupancyCosts(input.LawyerFee, input.OccupancyFee, input.Months)
		if !isFinite(result.TotalCosts) {
			return result, ErrNonFiniteResult
		}
		return result, nil
	})
}

// RentalROI validates the input and projects the returns of a rental property.
func (s *CalculatorService) RentalROI(
	ctx context.Context,
	input domain.RentalROIInput,
) (domain.RentalROIResult, error) {
	if err := validateInput(s.validate, input); err != nil {
		return domain.RentalROIResult{}, err
	}

	return cached(ctx, s.cache, "rental-roi", input, func() (domain.RentalROIResult, error) {
		result := CalculateRentalROI(
			input.PropertyPrice,
			input.MonthlyRent,
			input.DownPayment,
			input.InterestRate,
			input.LoanTermYears,
			input.MonthlyExpenses,
			input.VacancyRatePercent,
		)
		if !isFinite(
			result.MonthlyCashFlow,
			result.AnnualCashFlow,
			result.CashOnCashROI,
			result.CapRate,
			result.TotalROI,
		) {
			return result, ErrNonFiniteResult
		}
		return result, nil
	})
}

func cacheKey(prefix string, input any) (string, error) {
	raw, err := json.Marshal(input)
	if err != nil {
		return "", err
	}
	return prefix + ":" + strconv.FormatUint(xxhash.Sum64(raw), 16), nil
}

// cached returns the memoized result for input, computing and storing it on
// a miss. Cache failures never fail the calculation.
func cached[T any](
	ctx context.Context,
	cache repository.CacheRepository,
	prefix string,
	input any,
	compute func() (T, error),
) (T, error) {
	key, err := cacheKey(prefix, input)
	if err != nil {
		log.Printf("Warning: failed to build cache key for %s: %v", prefix, err)
		return compute()
	}

	if raw, ok := cache.Get(ctx, key); ok {
		var hit T
		err := json.Unmarshal([]byte(raw), &hit)
		if err == nil {
			return hit, nil
		}
		log.Printf("Warning: discarding corrupt cache entry %s: %v", key, err)
	}

	result, err := compute()
	if err != nil {
		return result, fmt.Errorf("%s: %w", prefix, err)
	}

	raw, err := json.Marshal(result)
	if err != nil {
		log.Printf("Warning: failed to encode %s result: %v", prefix, err)
		return result, nil
	}
	if err := cache.Set(ctx, key, string(raw)); err != nil {
		log.Printf("Warning: failed to cache %s result: %v", prefix, err)
	}
	return result, nil
}
