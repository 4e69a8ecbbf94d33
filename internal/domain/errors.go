package domain

import (
	"errors"
	"fmt"
)

var (
	ErrFetch           = errors.New("error fetching orders from orderbook")
	ErrDeserialization = errors.New("error deserializing orders")
	ErrNotFound        = errors.New("not found")
)

// StoreError is a failed relational operation.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }

func NewStoreError(op string, err error) error {
	return &StoreError{Op: op, Err: err}
}
