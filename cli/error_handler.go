package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/grovetools/navbar/errors"
)

// ErrorHandler provides user-friendly error messages
type ErrorHandler struct {
	Verbose bool
	Out     io.Writer
}

// NewErrorHandler creates a new error handler writing to stderr
func NewErrorHandler(verbose bool) *ErrorHandler {
	return &ErrorHandler{
		Verbose: verbose,
		Out:     os.Stderr,
	}
}

// Handle prints a message for err based on its code and returns err
func (h *ErrorHandler) Handle(err error) error {
	if err == nil {
		return nil
	}
	out := h.Out
	if out == nil {
		out = os.Stderr
	}

	var navErr *errors.NavbarError
	if e, ok := err.(*errors.NavbarError); ok {
		navErr = e
	}
	detail := func(key string) interface{} {
		if navErr == nil {
			return ""
		}
		return navErr.Details[key]
	}

	switch errors.GetCode(err) {
	case errors.ErrCodeConfigNotFound:
		fmt.Fprintf(out, "❌ Configuration file %v not found. Create navbar.yml or pass --config.\n", detail("path"))

	case errors.ErrCodeConfigInvalid, errors.ErrCodeConfigValidation:
		fmt.Fprintf(out, "❌ Invalid configuration: %v\n", err)
		fmt.Fprintf(out, "Run 'navbar schema' to see the accepted keys.\n")

	case errors.ErrCodeElementNotFound:
		fmt.Fprintf(out, "❌ No element matches %v\n", detail("selector"))

	case errors.ErrCodeInvalidInput:
		fmt.Fprintf(out, "❌ Invalid input: %v\n", err)

	case errors.ErrCodeAlreadyRendered, errors.ErrCodeHandlerPanic:
		fmt.Fprintf(out, "❌ Internal error: %v\n", err)

	default:
		fmt.Fprintf(out, "❌ Error: %v\n", err)
	}

	if h.Verbose && navErr != nil {
		fmt.Fprintf(out, "\nError details:\n%s\n", navErr.ToJSON())
	}
	return err
}
