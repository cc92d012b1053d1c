package http

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/cleitonmarx/symbiont-ai-adrecommender/internal/domain"
	"github.com/go-playground/validator/v10"
)

type recommendParams struct {
	CustomerID string `validate:"required,max=128,printascii,excludesall=/?#"`
}

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// validateParams validates request parameters and reports failures as a domain ValidationErr.
func validateParams(params any) error {
	err := getValidator().Struct(params)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return domain.NewValidationErr("invalid request: %v", err)
	}

	messages := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		messages = append(messages, fieldMessage(fe))
	}
	return domain.NewValidationErr("%s", strings.Join(messages, "; "))
}

func fieldMessage(fe validator.FieldError) string {
	field := fe.Field()
	if field == "CustomerID" {
		field = "customer_id"
	}
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	case "printascii", "excludesall":
		return fmt.Sprintf("%s contains invalid characters", field)
	}
	return fmt.Sprintf("%s failed %s validation", field, fe.Tag())
}
