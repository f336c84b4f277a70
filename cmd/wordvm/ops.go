package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/wippyai/wordvm/errors"
	"github.com/wippyai/wordvm/inspect"
	"github.com/wippyai/wordvm/machine"
)

// stackOp is one step of an ops script, e.g. "push16:300".
type stackOp struct {
	name string
	arg  string
}

func (o stackOp) String() string {
	if o.arg == "" {
		return o.name
	}
	return o.name + ":" + o.arg
}

// parseOps splits a script on whitespace, commas and semicolons.
func parseOps(script string) ([]stackOp, error) {
	fields := strings.FieldsFunc(script, func(r rune) bool {
		return r == ' ' || r == '\t' || r == '\n' || r == ',' || r == ';'
	})

	ops := make([]stackOp, 0, len(fields))
	for _, f := range fields {
		name, arg, _ := strings.Cut(f, ":")
		op := stackOp{name: strings.ToLower(name), arg: arg}
		if err := op.check(); err != nil {
			return nil, err
		}
		ops = append(ops, op)
	}
	return ops, nil
}

func (o stackOp) check() error {
	switch o.name {
	case "push", "push8", "push16", "peek", "swap":
		if o.arg == "" {
			return errors.InvalidInput(errors.PhaseRuntime, fmt.Sprintf("%s needs an argument", o.name))
		}
	case "pop", "pop8", "pop16", "dump", "words", "reset":
		if o.arg != "" {
			return errors.InvalidInput(errors.PhaseRuntime, fmt.Sprintf("%s takes no argument", o.name))
		}
	default:
		return errors.InvalidInput(errors.PhaseRuntime, fmt.Sprintf("unknown op %q", o.name))
	}
	return nil
}

// applyOps runs ops in order against mctx, writing results to w. It stops at
// the first failing op.
func applyOps(w io.Writer, mctx *machine.Context, d *inspect.Dumper, ops []stackOp) error {
	for i, op := range ops {
		if err := applyOp(w, mctx, d, op); err != nil {
			return fmt.Errorf("op %d (%s): %w", i+1, op, err)
		}
	}
	return nil
}

func applyOp(w io.Writer, mctx *machine.Context, d *inspect.Dumper, op stackOp) error {
	st := mctx.Stack()
	word := make([]byte, st.WordWidth())

	switch op.name {
	case "push":
		data, err := hex.DecodeString(strings.TrimPrefix(op.arg, "0x"))
		if err != nil {
			return errors.Wrap(errors.PhasePush, errors.KindInvalidInput, err, "decode word")
		}
		if len(data) != st.WordWidth() {
			return errors.New(errors.PhasePush, errors.KindInvalidInput).
				Value(len(data)).
				Detail("word must be %d bytes, got %d", st.WordWidth(), len(data)).
				Build()
		}
		if !st.Push(data) {
			return errors.Overflow(errors.PhasePush, st.Cursor(), st.Cap())
		}

	case "pop":
		if !st.Pop(word) {
			return errors.Underflow(errors.PhasePop, st.Cursor())
		}
		fmt.Fprintf(w, "pop -> %X\n", word)

	case "push8", "push16":
		n, err := strconv.ParseInt(op.arg, 0, 64)
		if err != nil {
			return errors.Wrap(errors.PhasePush, errors.KindInvalidInput, err, "parse value")
		}
		var ok bool
		if op.name == "push8" {
			if n < -128 || n > 255 {
				return errors.New(errors.PhasePush, errors.KindInvalidInput).Value(n).Detail("value %d does not fit 8 bits", n).Build()
			}
			ok = st.PushInt8(int8(n))
		} else {
			if n < -32768 || n > 65535 {
				return errors.New(errors.PhasePush, errors.KindInvalidInput).Value(n).Detail("value %d does not fit 16 bits", n).Build()
			}
			ok = st.PushInt16(int16(n))
		}
		if !ok {
			return errors.Overflow(errors.PhasePush, st.Cursor(), st.Cap())
		}

	case "pop8":
		v, ok := st.PopInt8()
		if !ok {
			return errors.Underflow(errors.PhasePop, st.Cursor())
		}
		fmt.Fprintf(w, "pop8 -> %d\n", v)

	case "pop16":
		v, ok := st.PopInt16()
		if !ok {
			return errors.Underflow(errors.PhasePop, st.Cursor())
		}
		fmt.Fprintf(w, "pop16 -> %d\n", v)

	case "peek":
		idx, err := strconv.Atoi(op.arg)
		if err != nil {
			return errors.Wrap(errors.PhasePeek, errors.KindInvalidInput, err, "parse index")
		}
		if !st.Peek(idx, word) {
			return errors.OutOfBounds(errors.PhasePeek, []string{"peek"}, idx, st.Len())
		}
		fmt.Fprintf(w, "peek %d -> %X\n", idx, word)

	case "swap":
		idx, err := strconv.Atoi(op.arg)
		if err != nil {
			return errors.Wrap(errors.PhaseSwap, errors.KindInvalidInput, err, "parse index")
		}
		if !st.Swap(idx) {
			return errors.OutOfBounds(errors.PhaseSwap, []string{"swap"}, idx, st.Len())
		}

	case "dump":
		return d.Dump(w, mctx)

	case "words":
		return inspect.Words(w, mctx)

	case "reset":
		mctx.Reset()
	}
	return nil
}
