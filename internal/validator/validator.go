// Package validator registers custom validation functions with Gin's
// binding engine.
package validator

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("expense_status", validateExpenseStatus)
		_ = v.RegisterValidation("due_day", validateDueDay)
		_ = v.RegisterValidation("month_index", validateMonthIndex)
	}
}

func validateExpenseStatus(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "pending", "paid":
		return true
	}
	return false
}

// due_day is a day-of-month definition; projection clamps it to the
// target month, so 1-31 is the valid range regardless of month.
func validateDueDay(fl validator.FieldLevel) bool {
	day := fl.Field().Int()
	return day >= 1 && day <= 31
}

// month_index is a zero-indexed month as sent by the dashboard (0 =
// January, 11 = December).
func validateMonthIndex(fl validator.FieldLevel) bool {
	month := fl.Field().Int()
	return month >= 0 && month <= 11
}
