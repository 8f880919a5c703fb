package validator

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/North-East-dev/gunash-bibha-bhaban/pkg/logger"
	"github.com/North-East-dev/gunash-bibha-bhaban/pkg/model"
)

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (v ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", v.Field, v.Message)
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	if len(v) == 0 {
		return ""
	}
	var messages []string
	for _, err := range v {
		messages = append(messages, err.Error())
	}
	return fmt.Sprintf("validation failed: %d error(s): [%s]", len(v), strings.Join(messages, "; "))
}

type BookingValidator struct {
	validate *validator.Validate
	log      *logger.Logger
}

func NewBookingValidator(log *logger.Logger) *BookingValidator {
	v := validator.New()

	if err := v.RegisterValidation("calendardate", validateCalendarDate); err != nil {
		log.Fatal("Failed to register 'calendardate' validator", "error", err)
	}

	return &BookingValidator{validate: v, log: log}
}

func validateCalendarDate(fl validator.FieldLevel) bool {
	s, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	_, err := model.ParseCivilDate(s)
	return err == nil
}

// Validate checks a booking range before it enters the document. The
// end >= start invariant is rejected here, never silently corrected.
func (v *BookingValidator) Validate(b *model.BookingRange) error {
	if err := v.validate.Struct(b); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			return v.translate(validationErrs)
		}
		return err
	}

	if b.End != "" {
		start, _ := model.ParseCivilDate(b.Start)
		end, _ := model.ParseCivilDate(b.End)
		if end.Before(start) {
			return ValidationErrors{
				ValidationError{
					Field:   "End",
					Message: "end date must not be before start date",
				},
			}
		}
	}

	return nil
}

func (v *BookingValidator) translate(errs validator.ValidationErrors) ValidationErrors {
	var validationErrors ValidationErrors

	for _, err := range errs {
		message := err.Error()

		switch err.Tag() {
		case "required":
			message = fmt.Sprintf("%s is required", err.Field())
		case "calendardate":
			message = fmt.Sprintf("%s must be a zero-padded YYYY-MM-DD calendar date", err.Field())
		case "oneof":
			message = fmt.Sprintf("%s must be one of: %s", err.Field(), err.Param())
		}

		validationErrors = append(validationErrors, ValidationError{
			Field:   err.Field(),
			Message: message,
		})
	}

	return validationErrors
}
