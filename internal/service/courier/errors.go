package courier

import (
	"errors"
	"fmt"
	"strings"
)

var ErrFieldsRequired = errors.New("all courier fields are required")

// ValidationError: запрос отклонён до любой записи в базу.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return ErrFieldsRequired.Error()
	}
	return fmt.Sprintf("%s: %s", ErrFieldsRequired.Error(), strings.Join(e.Fields, ", "))
}

func (e *ValidationError) Unwrap() error {
	return ErrFieldsRequired
}

// Message: текст для пользователя.
func (e *ValidationError) Message() string {
	return "All courier fields are required"
}

// CreationError: запись не создана, транзакция откачена.
type CreationError struct {
	SalesOrder string
	Err        error
}

func (e *CreationError) Error() string {
	return fmt.Sprintf("failed to create courier details for sales order %s: %v", e.SalesOrder, e.Err)
}

func (e *CreationError) Unwrap() error {
	return e.Err
}

func (e *CreationError) Message() string {
	return fmt.Sprintf("Failed to create Courier Details: %v", e.Err)
}
