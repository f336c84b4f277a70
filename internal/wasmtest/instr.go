package wasmtest

import "bytes"

// Code concatenates instruction sequences.
func Code(instrs ...[]byte) []byte {
	return bytes.Join(instrs, nil)
}

// I32Const pushes v.
func I32Const(v int32) []byte {
	var w bytes.Buffer
	w.WriteByte(0x41)
	writeS32(&w, v)
	return w.Bytes()
}

// Call calls function idx.
func Call(idx uint32) []byte {
	var w bytes.Buffer
	w.WriteByte(0x10)
	writeU32(&w, idx)
	return w.Bytes()
}

// LocalGet reads local idx.
func LocalGet(idx uint32) []byte {
	var w bytes.Buffer
	w.WriteByte(0x20)
	writeU32(&w, idx)
	return w.Bytes()
}

// LocalSet writes local idx.
func LocalSet(idx uint32) []byte {
	var w bytes.Buffer
	w.WriteByte(0x21)
	writeU32(&w, idx)
	return w.Bytes()
}

// I32Add adds the two topmost i32 values.
func I32Add() []byte { return []byte{0x6a} }

// I32Load16S loads a sign-extended 16-bit value at the address on the stack.
func I32Load16S() []byte { return []byte{0x2e, 0x01, 0x00} }

// Drop discards the top value.
func Drop() []byte { return []byte{0x1a} }

// Spin loops forever.
func Spin() []byte { return []byte{0x03, 0x40, 0x0c, 0x00, 0x0b} }
