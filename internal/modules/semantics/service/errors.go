package service

import "errors"

var (
	ErrInvalidSchema = errors.New("invalid schema")

	ErrUnknownIndicator   = errors.New("unknown indicator")
	ErrUnknownOperator    = errors.New("unknown operator")
	ErrSubjectNotAllowed  = errors.New("subject not allowed")
	ErrTargetNotAllowed   = errors.New("target not allowed")
	ErrOperatorNotAllowed = errors.New("operator not allowed")
	ErrMissingThreshold   = errors.New("threshold required for value target")
	ErrMalformedCondition = errors.New("malformed condition")

	ErrBadNotation = errors.New("bad notation")
)
