package manager

import (
	"errors"
	"strconv"

	"nmtd/internal/convert"
	"nmtd/internal/engine"
	"nmtd/internal/fetch"
	"nmtd/internal/tokenize"
)

type notInitializedError struct{ cause string }

func (e *notInitializedError) Error() string {
	if e.cause == "" {
		return "translation service is not initialized"
	}
	return "translation service is not initialized: " + e.cause
}

// ErrNotInitialized reports that no model is serving and initialization
// could not complete; cause may be empty.
func ErrNotInitialized(cause string) error { return &notInitializedError{cause: cause} }

// IsNotInitialized reports whether err marks the service as uninitialized.
func IsNotInitialized(err error) bool {
	var e *notInitializedError
	return errors.As(err, &e)
}

type invalidLanguageError struct{ code string }

func (e *invalidLanguageError) Error() string {
	return "unsupported language code " + strconv.Quote(e.code)
}

// ErrInvalidLanguage reports a language code outside the supported set.
func ErrInvalidLanguage(code string) error { return &invalidLanguageError{code: code} }

// IsInvalidLanguage reports whether err is an unsupported-language error.
func IsInvalidLanguage(err error) bool {
	var e *invalidLanguageError
	return errors.As(err, &e)
}

type ambiguousSourceError struct{}

func (e *ambiguousSourceError) Error() string {
	return "source language not given and automatic detection is disabled"
}

// ErrAmbiguousSource reports that the source language could not be resolved.
func ErrAmbiguousSource() error { return &ambiguousSourceError{} }

// IsAmbiguousSource reports whether err is an unresolvable-source error.
func IsAmbiguousSource(err error) bool {
	var e *ambiguousSourceError
	return errors.As(err, &e)
}

// Error kinds surfaced in translate results and API status codes.
const (
	KindNotInitialized  = "not_initialized"
	KindInvalidLanguage = "invalid_language"
	KindAmbiguousSource = "ambiguous_source"
	KindToolFailure     = "tool_failure"
	KindEngineFailure   = "engine_failure"
	KindFetchFailure    = "fetch_failure"
	KindConvertFailure  = "convert_failure"
	KindInternal        = "internal"
)

// kindOf maps an error from any stage of the pipeline onto its kind.
func kindOf(err error) string {
	switch {
	case IsNotInitialized(err):
		return KindNotInitialized
	case IsInvalidLanguage(err):
		return KindInvalidLanguage
	case IsAmbiguousSource(err):
		return KindAmbiguousSource
	case tokenize.IsToolFailure(err):
		return KindToolFailure
	case engine.IsEngineFailure(err):
		return KindEngineFailure
	case fetch.IsFetchFailure(err):
		return KindFetchFailure
	case convert.IsConvertFailure(err):
		return KindConvertFailure
	default:
		return KindInternal
	}
}
