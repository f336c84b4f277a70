// Package stack implements the fixed-capacity word stack of a wordvm context.
//
// A Stack is a pre-allocated byte buffer and a cursor. Push appends exactly one
// word at the cursor and Pop removes exactly one word below it, so the cursor is
// always a multiple of the word width and never leaves [0, Cap()].
//
// Overflow and underflow are reported as a false result. A failed call leaves
// the buffer and cursor byte-for-byte unchanged.
//
// # Word Byte Order
//
// Push stores a word's bytes in the order given. Pop returns them reversed: the
// byte at the highest buffer offset of the popped word comes first. Peek uses
// the same reversed order as Pop.
//
// The narrow accessors pack a value into the first bytes of an otherwise zeroed
// word (most significant byte first) and read it back from the reversed
// positions after a pop:
//
//	st.PushInt16(0x1234) // buffer: 12 34 00 .. 00
//	v, ok := st.PopInt16() // 0x1234, true
//
// # Allocation
//
// The buffer and a one-word scratch area are allocated by New. Push, Pop, Peek,
// Swap and the narrow accessors never allocate.
package stack
