package jobs

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
)

// ErrNotFound — задание неизвестно или уже вычищено по TTL.
var ErrNotFound = errors.New("job not found")

// Типы ошибок в терминальном конверте. По типу клиент решает, имеет ли
// смысл перепоставить задание.
const (
	ErrorTypeValidation = "validation"
	ErrorTypeTransient  = "transient"
	ErrorTypeDomain     = "domain"
	ErrorTypeTimeout    = "timeout"
)

type typedError struct {
	kind string
	err  error
}

func (e *typedError) Error() string { return e.err.Error() }
func (e *typedError) Unwrap() error { return e.err }

// AsValidation помечает ошибку как ошибку входных данных.
func AsValidation(err error) error { return &typedError{kind: ErrorTypeValidation, err: err} }

// AsDomain помечает ошибку как постоянную ошибку предметной области.
func AsDomain(err error) error { return &typedError{kind: ErrorTypeDomain, err: err} }

// Classify определяет тип ошибки для конверта. Порядок проверок: явная
// пометка, таймаут, транзиентность провайдера, ошибки валидатора; всё
// остальное — domain.
func Classify(err error) string {
	var te *typedError
	if errors.As(err, &te) {
		return te.kind
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return ErrorTypeTimeout
	}
	var tr interface{ Transient() bool }
	if errors.As(err, &tr) && tr.Transient() {
		return ErrorTypeTransient
	}
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		return ErrorTypeValidation
	}
	return ErrorTypeDomain
}
