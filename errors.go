package seqs

import "errors"

var (
	ErrIndexOutOfRange      = errors.New("index out of range")
	ErrInvalidArgument      = errors.New("invalid argument")
	ErrUnboundedSequence    = errors.New("operation not supported on a possibly unbounded sequence")
	ErrUnsupportedOperation = errors.New("operation not supported for this representation")
	ErrUnconvertibleType    = errors.New("value is not convertible to the requested representation")
)
