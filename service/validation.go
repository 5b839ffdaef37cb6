package service

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"property-pilot/domain"
)

// Mensajes por campo, indexados por el namespace del struct.
var validationMessages = map[string]string{
	"MortgageInput.PropertyPrice":      "Please enter a valid property price.",
	"MortgageInput.DownPaymentPercent": "Down payment percentage must be between 0 and 100.",
	"MortgageInput.InterestRate":       "Please enter a valid interest rate.",

	"ClosingCostsInput.PropertyPrice":   "Please enter a valid property price.",
	"ClosingCostsInput.HSTAmount":       "Please enter a valid HST amount.",
	"ClosingCostsInput.LandTransferTax": "Please enter a valid Land Transfer Tax amount.",
	"ClosingCostsInput.DevCharge":       "Please enter a valid Development Charge amount.",
	"ClosingCostsInput.LawyerFee":       "Please enter a valid Lawyer Fee amount.",

	"OccupancyCostsInput.LawyerFee":    "Please enter a valid lawyer fee.",
	"OccupancyCostsInput.OccupancyFee": "Please enter a valid occupancy fee.",
	"OccupancyCostsInput.Months":       "Please enter a valid number of months (minimum 1).",

	"RentalROIInput.PropertyPrice":      "Please enter a valid property price.",
	"RentalROIInput.MonthlyRent":        "Please enter a valid monthly rent.",
	"RentalROIInput.DownPayment":        "Down payment must be greater than 0 and less than the property price.",
	"RentalROIInput.InterestRate":       "Please enter a valid interest rate.",
	"RentalROIInput.LoanTermYears":      "Please enter a valid loan term.",
	"RentalROIInput.MonthlyExpenses":    "Please enter a valid monthly expenses amount.",
	"RentalROIInput.VacancyRatePercent": "Vacancy rate must be between 0 and 100.",
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report fields by their JSON name.
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return field.Name
		}
		return name
	})

	if err := v.RegisterValidation("finite", validateFinite); err != nil {
		panic(err)
	}
	return v
}

func validateFinite(fl validator.FieldLevel) bool {
	field := fl.Field()
	switch field.Kind() {
	case reflect.Float32, reflect.Float64:
		f := field.Float()
		return !math.IsNaN(f) && !math.IsInf(f, 0)
	}
	return true
}

// validateInput checks input against its struct tags and returns a
// *domain.ValidationError for the first failing field, in declaration order.
func validateInput(v *validator.Validate, input any) error {
	err := v.Struct(input)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return fmt.Errorf("validate %T: %w", input, err)
	}

	first := fieldErrs[0]
	msg, ok := validationMessages[first.StructNamespace()]
	if !ok {
		msg = fmt.Sprintf("Please enter a valid %s.", first.Field())
	}
	return &domain.ValidationError{
		Field:   first.Field(),
		Message: msg,
	}
}
