package store

import (
	"errors"
	"fmt"
)

// ErrStorage matches every error produced when the backing file cannot be
// opened, read or written
var ErrStorage = errors.New("storage failure")

// StorageError records which store operation failed and why
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%s: %s: %v", ErrStorage, e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

func (e *StorageError) Is(target error) bool {
	return target == ErrStorage
}

var userMessages = map[string]string{
	opInitialize: "Could not prepare the database",
	opCreate:     "Could not add record",
	opFetch:      "Could not load records",
	opGet:        "Could not load record",
	opUpdate:     "Could not update record",
	opDelete:     "Could not delete record",
	opAggregate:  "Could not compute statistics",
}

// UserMessage is the text shown in an error dialog
func (e *StorageError) UserMessage() string {
	prefix, ok := userMessages[e.Op]
	if !ok {
		prefix = "Database error"
	}
	return fmt.Sprintf("%s: %v", prefix, e.Err)
}

const (
	opInitialize = "initialize"
	opCreate     = "create"
	opFetch      = "fetch"
	opGet        = "get"
	opUpdate     = "update"
	opDelete     = "delete"
	opAggregate  = "aggregate"
)
