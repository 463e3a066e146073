package service

import (
	"fmt"

	"github.com/google/uuid"
)

type ErrResourceNotFound struct {
	error
}

func NewErrResourceNotFound(id uuid.UUID, resourceType string) *ErrResourceNotFound {
	return &ErrResourceNotFound{fmt.Errorf("%s %s not found", resourceType, id)}
}

func NewErrSessionNotFound(id uuid.UUID) *ErrResourceNotFound {
	return NewErrResourceNotFound(id, "session")
}

type ErrInvalidParameter struct {
	error
}

func NewErrUnknownParameter(name string) *ErrInvalidParameter {
	return &ErrInvalidParameter{fmt.Errorf("unknown parameter %q", name)}
}

type ErrSessionAlreadyExists struct {
	error
}

func NewErrSessionAlreadyExists(name string) *ErrSessionAlreadyExists {
	return &ErrSessionAlreadyExists{fmt.Errorf("session %q already exists", name)}
}

type ErrUnsupportedFormat struct {
	error
}

func NewErrUnsupportedFormat(format string) *ErrUnsupportedFormat {
	return &ErrUnsupportedFormat{fmt.Errorf("unsupported report format %q", format)}
}
