package repository

import "errors"

var (
	ErrInvalidConfig    = errors.New("invalid configuration")
	ErrInvalidStoreType = errors.New("invalid context store type")
	ErrInvalidSinkType  = errors.New("invalid interaction sink type")
	ErrMissingColumns   = errors.New("faq corpus is missing question/answer columns")
)
