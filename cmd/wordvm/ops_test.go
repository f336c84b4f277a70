package main

import (
	"bytes"
	stderrors "errors"
	"strings"
	"testing"

	"github.com/wippyai/wordvm/errors"
	"github.com/wippyai/wordvm/inspect"
	"github.com/wippyai/wordvm/machine"
)

func TestParseOps(t *testing.T) {
	tests := []struct {
		name    string
		script  string
		want    []string
		wantErr bool
	}{
		{"empty", "", []string{}, false},
		{"spaces", "push16:300 push8:-5 pop8", []string{"push16:300", "push8:-5", "pop8"}, false},
		{"mixed separators", "pop,pop16;\tdump\nwords", []string{"pop", "pop16", "dump", "words"}, false},
		{"upper case", "POP8 Swap:1", []string{"pop8", "swap:1"}, false},
		{"unknown op", "jump:4", nil, true},
		{"missing argument", "push16", nil, true},
		{"unexpected argument", "pop:1", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ops, err := parseOps(tt.script)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %v", ops)
				}
				if !stderrors.Is(err, &errors.Error{Phase: errors.PhaseRuntime, Kind: errors.KindInvalidInput}) {
					t.Errorf("error %v is not an invalid input error", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(ops) != len(tt.want) {
				t.Fatalf("got %d ops, want %d", len(ops), len(tt.want))
			}
			for i, op := range ops {
				if op.String() != tt.want[i] {
					t.Errorf("op %d = %q, want %q", i, op.String(), tt.want[i])
				}
			}
		})
	}
}

func runScript(t *testing.T, mctx *machine.Context, script string) (string, error) {
	t.Helper()
	ops, err := parseOps(script)
	if err != nil {
		t.Fatalf("parseOps(%q): %v", script, err)
	}
	var out bytes.Buffer
	err = applyOps(&out, mctx, inspect.NewDumper(nil), ops)
	return out.String(), err
}

func TestApplyOpsNarrowScenario(t *testing.T) {
	mctx := machine.New()

	out, err := runScript(t, mctx, "push16:300 push8:-5 pop8 pop16")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "pop8 -> -5\npop16 -> 300\n"
	if out != want {
		t.Errorf("output = %q, want %q", out, want)
	}
	if mctx.Stack().Cursor() != 0 {
		t.Errorf("cursor = %d, want 0", mctx.Stack().Cursor())
	}
}

func TestApplyOpsWords(t *testing.T) {
	mctx, err := machine.NewWithSize(2, 4)
	if err != nil {
		t.Fatal(err)
	}

	out, err := runScript(t, mctx, "push:0102 push:0x0304 peek:1 words swap:0 pop pop")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := strings.Join([]string{
		"peek 1 -> 0201",
		"   0: 0304",
		"   1: 0102",
		"pop -> 0201",
		"pop -> 0403",
		"",
	}, "\n")
	if out != want {
		t.Errorf("output = %q, want %q", out, want)
	}
}

func TestApplyOpsFailures(t *testing.T) {
	tests := []struct {
		name   string
		script string
		target *errors.Error
		prefix string
	}{
		{"underflow", "pop", &errors.Error{Phase: errors.PhasePop, Kind: errors.KindUnderflow}, "op 1 (pop): "},
		{"narrow underflow", "pop16", &errors.Error{Phase: errors.PhasePop, Kind: errors.KindUnderflow}, "op 1 (pop16): "},
		{"overflow", "push8:1 push8:2 push8:3", &errors.Error{Phase: errors.PhasePush, Kind: errors.KindOverflow}, "op 3 (push8:3): "},
		{"short word", "push:01", &errors.Error{Phase: errors.PhasePush, Kind: errors.KindInvalidInput}, "op 1 (push:01): "},
		{"bad hex", "push:zzzz", &errors.Error{Phase: errors.PhasePush, Kind: errors.KindInvalidInput}, "op 1 (push:zzzz): "},
		{"value too wide", "push8:300", &errors.Error{Phase: errors.PhasePush, Kind: errors.KindInvalidInput}, "op 1 (push8:300): "},
		{"peek empty", "peek:0", &errors.Error{Phase: errors.PhasePeek, Kind: errors.KindOutOfBounds}, "op 1 (peek:0): "},
		{"swap single", "push8:1 swap:0", &errors.Error{Phase: errors.PhaseSwap, Kind: errors.KindOutOfBounds}, "op 2 (swap:0): "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mctx, err := machine.NewWithSize(2, 4)
			if err != nil {
				t.Fatal(err)
			}
			_, err = runScript(t, mctx, tt.script)
			if err == nil {
				t.Fatal("expected error")
			}
			if !stderrors.Is(err, tt.target) {
				t.Errorf("error %v does not match %s/%s", err, tt.target.Phase, tt.target.Kind)
			}
			if !strings.HasPrefix(err.Error(), tt.prefix) {
				t.Errorf("error %q does not start with %q", err.Error(), tt.prefix)
			}
		})
	}
}

func TestApplyOpsStopsAtFirstFailure(t *testing.T) {
	mctx := machine.New()

	out, err := runScript(t, mctx, "push8:7 pop8 pop8 push8:9")
	if err == nil {
		t.Fatal("expected underflow on the second pop8")
	}
	if out != "pop8 -> 7\n" {
		t.Errorf("output = %q", out)
	}
	if mctx.Stack().Len() != 0 {
		t.Errorf("len = %d, ops after the failure must not run", mctx.Stack().Len())
	}
}

func TestApplyOpsDumpAndReset(t *testing.T) {
	mctx, err := machine.NewWithSize(2, 4)
	if err != nil {
		t.Fatal(err)
	}
	mctx.SetJumpPtr(9)

	out, err := runScript(t, mctx, "push16:0x1234 dump reset dump")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "Dump #1\nStack Pointer: 2\nJumpPtr: 9\nReturn Offset: 0\nReturn Length: 0\n12340000\n" +
		"Dump #2\nStack Pointer: 0\nJumpPtr: 0\nReturn Offset: 0\nReturn Length: 0\n"
	if !strings.HasPrefix(out, want) {
		t.Errorf("output = %q, want prefix %q", out, want)
	}
}
