package services

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

func validateInput(input any) error {
	if err := validate.Struct(input); err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	return nil
}
