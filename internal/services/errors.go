package services

import (
	"errors"

	"partsstore/internal/repositories"
)

// Failure stages of the order workflow. Callers match them with errors.Is.
var (
	ErrValidation  = errors.New("invalid order payload")
	ErrPersistence = errors.New("failed to persist order")
	ErrDispatch    = errors.New("failed to dispatch notification")
	ErrNotFound    = repositories.ErrNotFound
)
