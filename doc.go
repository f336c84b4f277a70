// Package wordvm provides the execution stack of a word-oriented virtual machine.
//
// A context owns one fixed-capacity stack of 32-byte words. Words are pushed and
// popped strictly last-in-first-out, and 8/16-bit values are packed into a word
// slot by convenience accessors. Capacity never changes after construction.
//
// # Architecture Overview
//
//	wordvm/        Root package with machine geometry constants
//	├── stack/     Fixed-capacity word stack and narrow accessors
//	├── machine/   Execution context owning one stack, return codes
//	├── inspect/   Read-only diagnostic dumps of a context
//	├── binding/   wazero host module exposing the stack to guests
//	├── engine/    wazero runtime that runs a guest against a context
//	├── config/    TOML configuration, validation, logger construction
//	├── errors/    Structured error types for debugging
//	└── cmd/       wordvm CLI and interactive stack console
//
// # Quick Start
//
// Drive a stack directly:
//
//	ctx := machine.New()
//	st := ctx.Stack()
//	st.PushInt16(300)
//	st.PushInt8(-5)
//	v8, _ := st.PopInt8()   // -5
//	v16, _ := st.PopInt16() // 300
//
// Run a guest that imports the "wordvm" host module:
//
//	eng, err := engine.NewWazeroEngine(ctx, nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer eng.Close(ctx)
//
//	run, err := eng.Run(ctx, wasmBytes, "run", machine.New())
//
// # Byte Order
//
// Pop returns a word's bytes in reverse of the order they were pushed. The
// narrow accessors account for this, so PushInt16 followed by PopInt16 always
// yields the original value.
//
// # Thread Safety
//
// A stack and its context must be used by a single goroutine. Nothing in the
// stack or machine packages takes a lock.
package wordvm
