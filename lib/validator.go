package lib

import (
	"github.com/go-playground/validator/v10"
)

// CustomValidator : wraps go-playground/validator so echo's c.Validate works
type CustomValidator struct {
	Validator *validator.Validate
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.Validator.Struct(i)
}
