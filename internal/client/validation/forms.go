// Package validation checks form input before it reaches the network layer.
// A rejected form never causes a request; failures are reported per field so
// the CLI can show them next to the offending prompt.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

// newValidator reports fields under their wire-facing names ("productId",
// not "ProductID") so messages line up with what the user typed.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		if n := fld.Tag.Get("name"); n != "" {
			return n
		}
		return fld.Name
	})
	return v
}

// FieldError is one rejected field with a human-readable reason.
type FieldError struct {
	Field   string
	Message string
}

// FieldErrors is the non-empty set of rejections for one form.
type FieldErrors []FieldError

func (e FieldErrors) Error() string {
	msgs := make([]string, len(e))
	for i, fe := range e {
		msgs[i] = fe.Message
	}
	return strings.Join(msgs, "; ")
}

// TicketForm is the create/edit ticket input.
type TicketForm struct {
	Machine  string `validate:"required" name:"machine"`
	Priority string `validate:"required,oneof=LOW MEDIUM HIGH" name:"priority"`
	Problem  string `validate:"required,min=5" name:"problem"`
	Detail   string `validate:"required,min=10" name:"detail"`
}

// MachineForm is the add/edit machine input.
type MachineForm struct {
	Name      string `validate:"required,min=3" name:"name"`
	ProductID string `validate:"required,min=3" name:"productId"`
}

// StatusForm is the telemetry entry input. The numeric bounds mirror the
// sensor ranges of the dataset the backend accepts.
type StatusForm struct {
	MachineID          string  `validate:"required" name:"machineId"`
	Type               string  `validate:"required,oneof=L M H" name:"type"`
	AirTemperature     float64 `validate:"gte=0,lte=500" name:"airTemperature"`
	ProcessTemperature float64 `validate:"gte=0,lte=500" name:"processTemperature"`
	RotationalSpeed    int     `validate:"gte=0,lte=10000" name:"rotationalSpeed"`
	Torque             float64 `validate:"gte=0,lte=100" name:"torque"`
	ToolWear           int     `validate:"gte=0,lte=300" name:"toolWear"`
	Target             int     `validate:"gte=0,lte=1" name:"target"`
	FailureType        string  `name:"failureType"`
}

// RegisterForm is the account-registration input.
type RegisterForm struct {
	Name     string `validate:"required,min=3" name:"name"`
	Username string `validate:"required,min=3,alphanum" name:"username"`
	Email    string `validate:"required,email" name:"email"`
	Password string `validate:"required,min=8" name:"password"`
}

// Check validates a form struct and converts validator output into
// FieldErrors. A nil return means the form may be sent.
func Check(form any) error {
	err := validate.Struct(form)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	out := make(FieldErrors, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{Field: fe.Field(), Message: message(fe)})
	}
	return out
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "min":
		if fe.Kind().String() == "string" {
			return fmt.Sprintf("%s must be at least %s characters", fe.Field(), fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", fe.Field(), fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "lte":
		return fmt.Sprintf("%s must be at most %s", fe.Field(), fe.Param())
	case "email":
		return fmt.Sprintf("%s must be a valid email address", fe.Field())
	case "alphanum":
		return fmt.Sprintf("%s may only contain letters and digits", fe.Field())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}
