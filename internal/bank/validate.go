package bank

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

// openAccountInput carries the raw open-account arguments through struct
// validation. The email rule is deliberately loose: anything with an "@"
// is accepted, the rest is a mail gateway's problem.
type openAccountInput struct {
	Name  string `validate:"notblank"`
	Email string `validate:"contains=@"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// notblank lives in the non-standard set and must be registered by hand.
	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(err)
	}
	return v
}

// validateOpenAccount maps struct validation failures onto typed service
// errors, field by field. Only the first failing field is reported.
func validateOpenAccount(in openAccountInput) error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	if verrs[0].Field() == "Name" {
		return Errorf(InvalidName, "name must not be blank")
	}
	return Errorf(InvalidEmail, "email %q must contain '@'", in.Email)
}
