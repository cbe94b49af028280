package model

import (
	"github.com/pkg/errors"
)

var (
	ErrMissingField         = errors.New("required field is missing")
	ErrUnsupportedContainer = errors.New("unsupported container")
	ErrResolverFailed       = errors.New("resolver failed")
	ErrUnexpectedStatus     = errors.New("unexpected HTTP status")
)
