// Package machine provides the execution context of a wordvm guest.
//
// A Context owns exactly one stack.Stack for its whole lifetime, together with
// a jump pointer and the offset/length of the call's return data. The latter
// three fields are bookkeeping for the interpreter and are never interpreted
// by the stack.
//
// A Context may hold one child context for a sub-call. InitSubCall replaces
// any previous child with a fresh one of the same geometry.
package machine
