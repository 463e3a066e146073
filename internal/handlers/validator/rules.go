package validator

import "github.com/go-playground/validator/v10"

func registerFn(tag string, fn func(fl validator.FieldLevel) bool) func(v *validator.Validate) {
	return func(v *validator.Validate) {
		_ = v.RegisterValidation(tag, fn)
	}
}

func NewSessionValidationRules() []ValidationRule {
	return []ValidationRule{
		{
			Rule: registerFn("session_name", sessionNameValidator),
		},
		{
			Rule: registerFn("parameter_name", parameterNameValidator),
		},
		{
			Rule: registerFn("report_format", reportFormatValidator),
		},
	}
}
