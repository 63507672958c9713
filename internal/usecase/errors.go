package usecase

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrUpstream     = errors.New("upstream provider failure")
	ErrStore        = errors.New("store failure")
)

// UpstreamError describes a failed provider call. StatusCode is 0 when the
// request never produced a response.
type UpstreamError struct {
	StatusCode int
	Body       string
	Err        error
}

func (e *UpstreamError) Error() string {
	switch {
	case e.StatusCode > 0:
		return fmt.Sprintf("provider status=%d body=%s", e.StatusCode, e.Body)
	case e.Err != nil:
		return "provider request failed: " + e.Err.Error()
	default:
		return "provider request failed"
	}
}

func (e *UpstreamError) Unwrap() error { return e.Err }

func (e *UpstreamError) Is(target error) bool { return target == ErrUpstream }
