package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		contains []string
	}{
		{
			name: "full error",
			err: &Error{
				Phase:  PhaseConfig,
				Kind:   KindInvalidInput,
				Path:   []string{"stack", "capacity-bytes"},
				Detail: "not a multiple of the word width",
			},
			contains: []string{"[config]", "invalid_input", "stack.capacity-bytes", "not a multiple"},
		},
		{
			name: "minimal error",
			err: &Error{
				Phase: PhasePop,
				Kind:  KindUnderflow,
			},
			contains: []string{"[pop]", "underflow"},
		},
		{
			name: "error with cause",
			err: &Error{
				Phase:  PhaseLoad,
				Kind:   KindInvalidData,
				Detail: "compile module",
				Cause:  errors.New("underlying error"),
			},
			contains: []string{"[load]", "invalid_data", "compile module", "caused by", "underlying error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !strings.Contains(msg, s) {
					t.Errorf("error message %q does not contain %q", msg, s)
				}
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := &Error{
		Phase: PhaseRuntime,
		Kind:  KindInstantiation,
		Cause: cause,
	}

	if !errors.Is(err.Unwrap(), cause) {
		t.Error("Unwrap did not return cause")
	}

	if !errors.Is(errors.Unwrap(err), cause) {
		t.Error("errors.Unwrap did not return cause")
	}
}

func TestError_Is(t *testing.T) {
	err := Overflow(PhasePush, 64, 64)

	if !err.Is(&Error{Phase: PhasePush, Kind: KindOverflow}) {
		t.Error("Is should match same phase and kind")
	}

	if err.Is(&Error{Phase: PhaseBinding, Kind: KindOverflow}) {
		t.Error("Is should not match different phase")
	}

	if err.Is(&Error{Phase: PhasePush, Kind: KindUnderflow}) {
		t.Error("Is should not match different kind")
	}

	target := &Error{Phase: PhasePush, Kind: KindOverflow}
	if !errors.Is(err, target) {
		t.Error("errors.Is should match")
	}
}

func TestBuilder(t *testing.T) {
	cause := errors.New("root")
	err := New(PhaseConfig, KindInvalidInput).
		Path("stack", "word-bytes").
		Value(1).
		Cause(cause).
		Detail("word width %d below minimum %d", 1, 2).
		Build()

	if err.Phase != PhaseConfig {
		t.Errorf("Phase = %v, want %v", err.Phase, PhaseConfig)
	}
	if err.Kind != KindInvalidInput {
		t.Errorf("Kind = %v, want %v", err.Kind, KindInvalidInput)
	}
	if len(err.Path) != 2 || err.Path[0] != "stack" || err.Path[1] != "word-bytes" {
		t.Errorf("Path = %v, want [stack word-bytes]", err.Path)
	}
	if err.Value != 1 {
		t.Errorf("Value = %v, want 1", err.Value)
	}
	if !errors.Is(err.Cause, cause) {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}
	if err.Detail != "word width 1 below minimum 2" {
		t.Errorf("Detail = %q", err.Detail)
	}
}

func TestConvenienceConstructors(t *testing.T) {
	t.Run("Overflow", func(t *testing.T) {
		err := Overflow(PhasePush, 32768, 32768)
		if err.Kind != KindOverflow {
			t.Errorf("Kind = %v, want %v", err.Kind, KindOverflow)
		}
		if !strings.Contains(err.Detail, "32768") {
			t.Errorf("Detail = %v, should contain capacity", err.Detail)
		}
	})

	t.Run("Underflow", func(t *testing.T) {
		err := Underflow(PhasePop, 0)
		if err.Kind != KindUnderflow {
			t.Errorf("Kind = %v, want %v", err.Kind, KindUnderflow)
		}
		if err.Value != 0 {
			t.Errorf("Value = %v, want 0", err.Value)
		}
	})

	t.Run("OutOfBounds", func(t *testing.T) {
		err := OutOfBounds(PhasePeek, []string{"stack"}, 10, 5)
		if err.Kind != KindOutOfBounds {
			t.Errorf("Kind = %v, want %v", err.Kind, KindOutOfBounds)
		}
		if err.Value != 10 {
			t.Errorf("Value = %v, want 10", err.Value)
		}
	})

	t.Run("InvalidConfig", func(t *testing.T) {
		err := InvalidConfig([]string{"log", "level"}, "loud", "unknown level")
		if err.Phase != PhaseConfig || err.Kind != KindInvalidInput {
			t.Errorf("Phase=%v Kind=%v", err.Phase, err.Kind)
		}
		if err.Value != "loud" {
			t.Errorf("Value = %v, want loud", err.Value)
		}
	})

	t.Run("NotFound", func(t *testing.T) {
		err := NotFound(PhaseRuntime, "export", "run")
		if err.Kind != KindNotFound {
			t.Errorf("Kind = %v, want %v", err.Kind, KindNotFound)
		}
		if !strings.Contains(err.Error(), `"run"`) {
			t.Errorf("error %q should quote the name", err.Error())
		}
	})

	t.Run("Wrap", func(t *testing.T) {
		cause := errors.New("boom")
		err := Wrap(PhaseRuntime, KindInvalidData, cause, "call entry")
		if !errors.Is(err, cause) {
			t.Error("Wrap should keep the cause in the chain")
		}
	})
}

func TestMissingImportsError(t *testing.T) {
	t.Run("single import", func(t *testing.T) {
		err := NewMissingImportsError([]string{"wordvm#stack_rot"})
		if len(err.Imports) != 1 {
			t.Fatalf("expected 1 import, got %d", len(err.Imports))
		}
		if err.Imports[0].Module != "wordvm" {
			t.Errorf("module = %q, want wordvm", err.Imports[0].Module)
		}
		if err.Imports[0].Function != "stack_rot" {
			t.Errorf("function = %q, want stack_rot", err.Imports[0].Function)
		}
	})

	t.Run("grouped by module", func(t *testing.T) {
		err := NewMissingImportsError([]string{
			"wordvm#stack_rot",
			"env#abort",
			"wordvm#stack_dup",
		})
		msg := err.Error()
		if !strings.Contains(msg, "missing 3") {
			t.Errorf("error should contain count, got: %s", msg)
		}
		if !strings.Contains(msg, "wordvm:") || !strings.Contains(msg, "env:") {
			t.Errorf("error should group by module, got: %s", msg)
		}
		if strings.Count(msg, "wordvm:") != 1 {
			t.Errorf("module header should appear once, got: %s", msg)
		}
	})

	t.Run("empty imports", func(t *testing.T) {
		err := NewMissingImportsError([]string{})
		if !strings.Contains(err.Error(), "no imports specified") {
			t.Errorf("empty error should have specific message, got: %s", err.Error())
		}
	})

	t.Run("errors.Is", func(t *testing.T) {
		err := NewMissingImportsError([]string{"wordvm#fn"})
		if !errors.Is(err, &MissingImportsError{}) {
			t.Error("errors.Is should match MissingImportsError")
		}
	})
}
