package qerr

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestErrorString(t *testing.T) {
	e := UnknownColumn("b7")
	if !strings.Contains(e.Error(), "UNKNOWN_COLUMN") {
		t.Errorf("missing code in %q", e.Error())
	}
	if !strings.Contains(e.Error(), "b7") {
		t.Errorf("missing column name in %q", e.Error())
	}
}

func TestErrorStringWithCause(t *testing.T) {
	cause := errors.New("disk on fire")
	e := Worker(cause)
	if !strings.Contains(e.Error(), "disk on fire") {
		t.Errorf("missing cause in %q", e.Error())
	}
	if !errors.Is(e, cause) {
		t.Error("Worker error should unwrap to its cause")
	}
}

func TestCodeOf(t *testing.T) {
	if CodeOf(DuplicateColumn("x")) != ErrCodeDuplicateColumn {
		t.Error("wrong code for DuplicateColumn")
	}
	if CodeOf(ArityMismatch(2, 1)) != ErrCodeArityMismatch {
		t.Error("wrong code for ArityMismatch")
	}
	if CodeOf(errors.New("plain")) != "" {
		t.Error("plain errors have no code")
	}
	// Codes survive wrapping.
	wrapped := fmt.Errorf("run failed: %w", TypeMismatch("b1", "float64", "int64"))
	if CodeOf(wrapped) != ErrCodeTypeMismatch {
		t.Error("code lost through wrapping")
	}
}

func TestTypeMismatchDetails(t *testing.T) {
	e := TypeMismatch("", "float64", "bool")
	if _, ok := e.Details["column"]; ok {
		t.Error("empty column name should not be recorded")
	}
	e.WithDetail("column", "b2")
	if e.Details["column"] != "b2" {
		t.Error("WithDetail did not record the column")
	}
	if e.Details["want"] != "float64" || e.Details["got"] != "bool" {
		t.Errorf("unexpected details: %v", e.Details)
	}
}

func TestArityMismatchMessage(t *testing.T) {
	e := ArityMismatch(1, 3)
	if !strings.Contains(e.Message, "1 argument") || !strings.Contains(e.Message, "3 column") {
		t.Errorf("unexpected message %q", e.Message)
	}
}
