package errors

import (
	"strings"
	"testing"
)

func TestRecoverConvertsPanic(t *testing.T) {
	fn := func() (err error) {
		defer Recover(&err, "TestOperation")
		panic("something broke")
	}

	err := fn()
	if err == nil {
		t.Fatal("expected an error from the recovered panic")
	}

	var panicErr *PanicError
	if !As(err, &panicErr) {
		t.Fatalf("expected *PanicError, got %T", err)
	}
	if panicErr.Operation != "TestOperation" {
		t.Errorf("Operation = %q, want TestOperation", panicErr.Operation)
	}
	if panicErr.StackTrace == "" {
		t.Error("stack trace should be captured")
	}
}

func TestRecoverWrapsExistingError(t *testing.T) {
	base := New("original failure")
	fn := func() (err error) {
		defer Recover(&err, "TestOperation")
		err = base
		panic("late panic")
	}

	err := fn()
	if err == nil {
		t.Fatal("expected an error")
	}
	if !Is(err, base) {
		t.Error("original error should stay in the chain")
	}
	if !strings.Contains(err.Error(), "late panic") {
		t.Errorf("panic info missing: %q", err.Error())
	}
}

func TestRecoverNoPanic(t *testing.T) {
	fn := func() (err error) {
		defer Recover(&err, "TestOperation")
		return nil
	}
	if err := fn(); err != nil {
		t.Errorf("expected nil, got %v", err)
	}
}

func TestSafeExecute(t *testing.T) {
	err := SafeExecute("dangerous op", func() error {
		panic(42)
	})
	if err == nil {
		t.Fatal("expected an error")
	}

	var panicErr *PanicError
	if !As(err, &panicErr) {
		t.Fatalf("expected *PanicError, got %T", err)
	}
	if panicErr.PanicValue != 42 {
		t.Errorf("PanicValue = %v, want 42", panicErr.PanicValue)
	}
}

func TestSafeExecutePassesError(t *testing.T) {
	want := New("plain failure")
	err := SafeExecute("op", func() error { return want })
	if !Is(err, want) {
		t.Error("plain errors should pass through unchanged")
	}
}
