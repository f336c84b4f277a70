// Package binding exposes a machine context's stack to WebAssembly guests.
//
// A Host is bound to exactly one machine.Context and instantiates a wazero host
// module named "wordvm". Guests import its functions:
//
//	(import "wordvm" "stack_push"     (func (param i32) (result i32)))     ;; word at ptr
//	(import "wordvm" "stack_pop"      (func (param i32) (result i32)))     ;; word to ptr
//	(import "wordvm" "stack_peek"     (func (param i32 i32) (result i32))) ;; idx, ptr
//	(import "wordvm" "stack_swap"     (func (param i32) (result i32)))     ;; idx
//	(import "wordvm" "stack_push_i8"  (func (param i32) (result i32)))
//	(import "wordvm" "stack_push_i16" (func (param i32) (result i32)))
//	(import "wordvm" "stack_pop_i8"   (func (param i32) (result i32)))     ;; 1 byte to ptr
//	(import "wordvm" "stack_pop_i16"  (func (param i32) (result i32)))     ;; 2 bytes LE to ptr
//	(import "wordvm" "stack_size"     (func (result i32)))                 ;; cursor in bytes
//	(import "wordvm" "set_jump"       (func (param i32)))
//	(import "wordvm" "set_return"     (func (param i32 i32)))              ;; offset, length
//
// Pointers address the calling module's memory 0. Functions returning i32
// return 1 on success and 0 on failure. A pointer range outside guest memory
// fails before the stack is touched, so a failed call never changes the stack.
//
// A Host is not safe for concurrent use; neither is its context.
package binding
