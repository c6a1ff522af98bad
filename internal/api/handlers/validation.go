package handlers

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/MaximeC37/BikerBox-sub000/internal/domain"
)

// ValidationError ошибка валидации одного поля
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (v ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", v.Field, v.Message)
}

// ValidationErrors набор ошибок валидации
type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	if len(v) == 0 {
		return ""
	}
	messages := make([]string, 0, len(v))
	for _, err := range v {
		messages = append(messages, err.Error())
	}
	return fmt.Sprintf("validation failed: %d error(s): [%s]", len(v), strings.Join(messages, "; "))
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// В ошибках используем имена полей из JSON
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})

	if err := v.RegisterValidation("locker_size", validateLockerSize); err != nil {
		panic(fmt.Sprintf("handlers: failed to register locker_size validator: %v", err))
	}

	return v
}

func validateLockerSize(fl validator.FieldLevel) bool {
	return domain.LockerSize(fl.Field().String()).IsValid()
}

// Validate проверяет структуру по тегам validate
func Validate(s interface{}) error {
	if err := validate.Struct(s); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			return translateValidationErrors(validationErrs)
		}
		return err
	}
	return nil
}

func translateValidationErrors(errs validator.ValidationErrors) ValidationErrors {
	result := make(ValidationErrors, 0, len(errs))
	for _, err := range errs {
		var message string
		switch err.Tag() {
		case "required":
			message = "обязательное поле"
		case "locker_size":
			message = "размер должен быть одним из SMALL, MEDIUM, LARGE"
		case "datetime":
			message = "ожидается дата в формате RFC3339"
		case "max":
			message = fmt.Sprintf("максимальная длина %s", err.Param())
		default:
			message = err.Error()
		}
		result = append(result, ValidationError{Field: err.Field(), Message: message})
	}
	return result
}

// ParseWindow разбирает границы окна в формате RFC3339
// Порядок границ не проверяется: невалидное окно обрабатывается бизнес-логикой
func ParseWindow(start, end string) (domain.TimeWindow, error) {
	s, err := time.Parse(time.RFC3339, start)
	if err != nil {
		return domain.TimeWindow{}, fmt.Errorf("start: %w", err)
	}
	e, err := time.Parse(time.RFC3339, end)
	if err != nil {
		return domain.TimeWindow{}, fmt.Errorf("end: %w", err)
	}
	return domain.NewTimeWindow(s, e), nil
}
