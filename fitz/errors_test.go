package fitz

import (
	"errors"
	"strings"
	"testing"
)

func TestErrorKinds(t *testing.T) {
	if kind := newValidationError("missing handle", nil).Kind(); kind != ErrorKindValidation {
		t.Fatalf("unexpected kind: %s", kind)
	}
	if kind := newEngineError("render", "cannot find page").Kind(); kind != ErrorKindEngine {
		t.Fatalf("unexpected kind: %s", kind)
	}
	if kind := newInternalError("allocation", nil).Kind(); kind != ErrorKindInternal {
		t.Fatalf("unexpected kind: %s", kind)
	}
}

func TestErrorMessagePrefix(t *testing.T) {
	err := newValidationError("path cannot be empty", nil)
	if !strings.HasPrefix(err.Error(), "fitz: ") {
		t.Fatalf("missing package prefix: %s", err.Error())
	}
	if strings.Count(err.Error(), "fitz: ") != 1 {
		t.Fatalf("prefix applied more than once: %s", err.Error())
	}
}

func TestEngineErrorDiagnostic(t *testing.T) {
	err := newEngineError("open missing.pdf failed", "cannot open missing.pdf: no such file")
	if err.Diagnostic != "cannot open missing.pdf: no such file" {
		t.Fatalf("unexpected diagnostic: %s", err.Diagnostic)
	}
	if !strings.Contains(err.Error(), err.Diagnostic) {
		t.Fatalf("diagnostic not included in message: %s", err.Error())
	}
}

func TestEngineErrorEmptyDiagnostic(t *testing.T) {
	err := newEngineError("extract text", "")
	if err.Diagnostic != "" {
		t.Fatalf("expected empty diagnostic, got %q", err.Diagnostic)
	}
	if !strings.Contains(err.Error(), "extract text") {
		t.Fatalf("operation missing from message: %s", err.Error())
	}
}

func TestErrorUnwrap(t *testing.T) {
	cause := errors.New("boom")
	err := newInternalError("wrapper", cause)
	if !errors.Is(err, cause) {
		t.Fatalf("expected cause to be unwrappable")
	}
}

func TestErrorFromCode(t *testing.T) {
	var diag diagBuffer
	if err := errorFromCode(0, &diag, "op"); err != nil {
		t.Fatalf("expected nil error for code 0, got %v", err)
	}

	err := errorFromCode(-1, &diag, "op")
	var valErr *ValidationError
	if !errors.As(err, &valErr) {
		t.Fatalf("expected ValidationError for code -1, got %T", err)
	}

	err = errorFromCode(1, &diag, "op")
	var engErr *EngineError
	if !errors.As(err, &engErr) {
		t.Fatalf("expected EngineError for code 1, got %T", err)
	}
}
