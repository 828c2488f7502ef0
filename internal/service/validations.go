package service

import (
	"errors"
	"sync"

	"github.com/go-playground/validator/v10"
	errorvalues "github.com/munier-ie/stayonx/internal/error_values"
	"github.com/munier-ie/stayonx/pkg/entity"
)

// Package for custom validations
var (
	validate *validator.Validate
	once     sync.Once
)

func InitValidator() {
	once.Do(func() {
		validate = validator.New()
		// YYYY-MM-DD that is an actual date
		validate.RegisterValidation("calendar_day", func(fl validator.FieldLevel) bool {
			_, err := entity.ParseDay(fl.Field().String())
			return err == nil
		})
	})
}

func validateStruct(req any) error {
	InitValidator()
	err := validate.Struct(req)
	if err == nil {
		return nil
	}
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		errs := []error{errorvalues.ErrValidation}
		for _, fieldErr := range validationErrors {
			errs = append(errs, fieldErr)
		}
		return errors.Join(errs...)
	}
	return errors.New("validation unexpected error: " + err.Error())
}

// Validate checks a request the way the services do, for callers that want to fail early.
func Validate(req any) error {
	return validateStruct(req)
}
