package errors

import (
	"fmt"
)

// ConfigNotFound creates a configuration not found error
func ConfigNotFound(path string) *NavbarError {
	return New(ErrCodeConfigNotFound, fmt.Sprintf("configuration file not found: %s", path)).
		WithDetail("path", path)
}

// ConfigInvalid creates an invalid configuration error
func ConfigInvalid(reason string) *NavbarError {
	return New(ErrCodeConfigInvalid, fmt.Sprintf("invalid configuration: %s", reason))
}

// AlreadyRendered is returned when Render is called a second time on a widget.
func AlreadyRendered(widget string) *NavbarError {
	return New(ErrCodeAlreadyRendered, fmt.Sprintf("widget '%s' has already been rendered", widget)).
		WithDetail("widget", widget)
}

// HandlerPanic wraps a value recovered from a panicking channel handler.
func HandlerPanic(channel string, index int, recovered interface{}) *NavbarError {
	cause, ok := recovered.(error)
	if !ok {
		cause = fmt.Errorf("%v", recovered)
	}
	return Wrap(cause, ErrCodeHandlerPanic,
		fmt.Sprintf("handler %d of channel '%s' panicked", index, channel)).
		WithDetail("channel", channel).
		WithDetail("index", index)
}

// ElementNotFound creates an error for a DOM lookup that matched nothing.
func ElementNotFound(selector string) *NavbarError {
	return New(ErrCodeElementNotFound, fmt.Sprintf("no element matches '%s'", selector)).
		WithDetail("selector", selector)
}

// InvalidModifier creates an error for an unknown modifier key name.
func InvalidModifier(name string) *NavbarError {
	return New(ErrCodeInvalidInput,
		fmt.Sprintf("unknown modifier '%s' (expected shift, ctrl, alt or meta)", name)).
		WithDetail("modifier", name)
}
