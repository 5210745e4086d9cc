package errors

import "fmt"

var (
	ErrWorkerPanic       = fmt.Errorf("worker panic")
	ErrInvalidRequest    = fmt.Errorf("invalid request")
	ErrUnknownConnection = fmt.Errorf("unknown connection")
	ErrUnknownEvent      = fmt.Errorf("unknown event")
	ErrHandlerPanic      = fmt.Errorf("handler panic")
	ErrRelayTimeout      = fmt.Errorf("relay timeout")
	ErrRelayFailure      = fmt.Errorf("relay failure")
	ErrRelaySaturated    = fmt.Errorf("relay saturated")
	ErrSinkFull          = fmt.Errorf("sink buffer full")
)
