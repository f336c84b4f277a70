// Package engine runs WebAssembly guests against a machine context.
//
// This package wraps wazero. A guest is a core module that imports the
// "wordvm" host module (see package binding) and exports an entry function
// with signature () -> i32. The entry's result is the call's return code.
//
// # Run Flow
//
//  1. Compile the guest and check its imports against the host module
//  2. Instantiate the host module bound to the caller's context
//  3. Instantiate the guest without running start functions
//  4. Call the entry function and map its result to a machine.ReturnCode
//  5. Close guest and host modules; the context keeps the final stack
//
// Runs on one engine are serialised. A cancelled or expired context
// aborts a running guest.
package engine
