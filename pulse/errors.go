package pulse

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// ErrNoAdapter is returned by New if no adapter is able to present to the window surface.
var ErrNoAdapter = errors.New("no compatible adapter found")

// DeviceRequestError is returned by New if the adapter rejected the device request.
type DeviceRequestError struct {
	Cause error
}

func (e *DeviceRequestError) Error() string {
	return fmt.Sprintf("device request failed: %s", e.Cause)
}

func (e *DeviceRequestError) Unwrap() error {
	return e.Cause
}
