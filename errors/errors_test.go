package errors

import (
	"fmt"
	"testing"
)

func TestNavbarError(t *testing.T) {
	// Test basic error creation
	err := New(ErrCodeElementNotFound, "element not found")
	if err.Code != ErrCodeElementNotFound {
		t.Errorf("expected code %s, got %s", ErrCodeElementNotFound, err.Code)
	}

	// Test error wrapping
	cause := fmt.Errorf("underlying error")
	wrapped := Wrap(cause, ErrCodeInternal, "render failed")

	if wrapped.Unwrap() != cause {
		t.Error("Unwrap should return the cause")
	}

	// Test Is function
	if !Is(wrapped, ErrCodeInternal) {
		t.Error("Is should return true for matching code")
	}

	if Is(wrapped, ErrCodeElementNotFound) {
		t.Error("Is should return false for non-matching code")
	}

	// Is must see through fmt wrapping
	outer := fmt.Errorf("outer: %w", wrapped)
	if !Is(outer, ErrCodeInternal) {
		t.Error("Is should unwrap standard wrapped errors")
	}
	if GetCode(outer) != ErrCodeInternal {
		t.Errorf("expected GetCode %s, got %s", ErrCodeInternal, GetCode(outer))
	}

	// Test WithDetail
	detailed := err.WithDetail("selector", "//button").WithDetail("count", 0)
	if detailed.Details["selector"] != "//button" {
		t.Error("WithDetail should add details")
	}
}

func TestErrorConstructors(t *testing.T) {
	err := AlreadyRendered("browser-bar")
	if err.Code != ErrCodeAlreadyRendered {
		t.Errorf("expected code %s, got %s", ErrCodeAlreadyRendered, err.Code)
	}
	if err.Details["widget"] != "browser-bar" {
		t.Error("AlreadyRendered should include widget detail")
	}

	err = HandlerPanic("back-pressed", 2, "boom")
	if err.Code != ErrCodeHandlerPanic {
		t.Errorf("expected code %s, got %s", ErrCodeHandlerPanic, err.Code)
	}
	if err.Details["index"] != 2 {
		t.Error("HandlerPanic should include index detail")
	}
	if err.Cause == nil || err.Cause.Error() != "boom" {
		t.Errorf("HandlerPanic should keep the recovered value as cause, got %v", err.Cause)
	}

	cause := fmt.Errorf("exploded")
	err = HandlerPanic("home-pressed", 0, cause)
	if err.Unwrap() != cause {
		t.Error("HandlerPanic should keep a recovered error as is")
	}

	err = InvalidModifier("hyper")
	if !Is(err, ErrCodeInvalidInput) {
		t.Error("InvalidModifier should use INVALID_INPUT")
	}
}

func TestGetCodeNil(t *testing.T) {
	if GetCode(nil) != "" {
		t.Error("GetCode(nil) should be empty")
	}
	if Is(nil, ErrCodeInternal) {
		t.Error("Is(nil) should be false")
	}
}
