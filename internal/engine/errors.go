package engine

// unsupportedPrecisionError signals the runtime rejected the requested
// compute precision on this hardware; the caller may retry a lower rung.
type unsupportedPrecisionError struct {
	precision string
	device    string
}

func (e unsupportedPrecisionError) Error() string {
	return "compute precision " + e.precision + " not supported on " + e.device
}

// ErrUnsupportedPrecision constructs an unsupported-precision error.
func ErrUnsupportedPrecision(precision, device string) error {
	return unsupportedPrecisionError{precision: precision, device: device}
}

// IsUnsupportedPrecision reports whether err indicates a rejected compute
// precision (and only that; other load failures are not retried).
func IsUnsupportedPrecision(err error) bool {
	_, ok := err.(unsupportedPrecisionError)
	return ok
}

// engineError signals any other inference runtime failure (failed load,
// failed decode, runner crash).
type engineError struct{ msg string }

func (e engineError) Error() string { return "engine: " + e.msg }

// ErrEngine constructs a generic engine failure.
func ErrEngine(msg string) error { return engineError{msg: msg} }

// IsEngineFailure reports whether err came from the inference runtime.
func IsEngineFailure(err error) bool {
	if _, ok := err.(engineError); ok {
		return true
	}
	_, ok := err.(unsupportedPrecisionError)
	return ok
}
