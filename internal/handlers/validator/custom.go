package validator

import (
	"regexp"

	"github.com/go-playground/validator/v10"
	"github.com/renalecon/transplant-planner/internal/projection"
	"github.com/renalecon/transplant-planner/internal/service/report/types"
)

var sessionNameValidRegex = regexp.MustCompile("^[a-zA-Z0-9+-_.]+$")

func sessionNameValidator(fl validator.FieldLevel) bool {
	val, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}

	return sessionNameValidRegex.MatchString(val)
}

func parameterNameValidator(fl validator.FieldLevel) bool {
	val, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}

	return projection.IsKey(val)
}

func reportFormatValidator(fl validator.FieldLevel) bool {
	val, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}

	switch types.ReportFormat(val) {
	case types.ReportFormatCSV:
		return true
	default:
		return false
	}
}
