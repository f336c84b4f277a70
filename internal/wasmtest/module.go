// Package wasmtest encodes small core WebAssembly modules for tests.
//
// Only the sections guest fixtures need are supported: types, function
// imports, functions, one memory, exports and code.
package wasmtest

import (
	"bytes"
)

// Value types
const (
	I32 byte = 0x7f
	I64 byte = 0x7e
)

// Export kinds
const (
	KindFunc   byte = 0x00
	KindMemory byte = 0x02
)

const (
	sectionType     byte = 1
	sectionImport   byte = 2
	sectionFunction byte = 3
	sectionMemory   byte = 5
	sectionExport   byte = 7
	sectionCode     byte = 10
)

// FuncType is a function signature.
type FuncType struct {
	Params  []byte
	Results []byte
}

// Import is a function import.
type Import struct {
	Module  string
	Name    string
	TypeIdx uint32
}

// Func is a defined function. Body holds instructions without locals or the
// trailing end opcode.
type Func struct {
	Body    []byte
	Locals  []byte
	TypeIdx uint32
}

// Export names a function or memory.
type Export struct {
	Name  string
	Index uint32
	Kind  byte
}

// Module is a module under construction.
type Module struct {
	// MemoryPages declares memory 0 with this minimum size when non-zero.
	MemoryPages uint32
	Types       []FuncType
	Imports     []Import
	Funcs       []Func
	Exports     []Export
}

// Encode returns the binary encoding of m.
func (m *Module) Encode() []byte {
	var w bytes.Buffer
	w.Write([]byte{0x00, 0x61, 0x73, 0x6d, 0x01, 0x00, 0x00, 0x00})

	if len(m.Types) > 0 {
		var sec bytes.Buffer
		writeU32(&sec, uint32(len(m.Types)))
		for _, ft := range m.Types {
			sec.WriteByte(0x60)
			writeU32(&sec, uint32(len(ft.Params)))
			sec.Write(ft.Params)
			writeU32(&sec, uint32(len(ft.Results)))
			sec.Write(ft.Results)
		}
		writeSection(&w, sectionType, sec.Bytes())
	}

	if len(m.Imports) > 0 {
		var sec bytes.Buffer
		writeU32(&sec, uint32(len(m.Imports)))
		for _, imp := range m.Imports {
			writeName(&sec, imp.Module)
			writeName(&sec, imp.Name)
			sec.WriteByte(KindFunc)
			writeU32(&sec, imp.TypeIdx)
		}
		writeSection(&w, sectionImport, sec.Bytes())
	}

	if len(m.Funcs) > 0 {
		var sec bytes.Buffer
		writeU32(&sec, uint32(len(m.Funcs)))
		for _, f := range m.Funcs {
			writeU32(&sec, f.TypeIdx)
		}
		writeSection(&w, sectionFunction, sec.Bytes())
	}

	if m.MemoryPages > 0 {
		var sec bytes.Buffer
		writeU32(&sec, 1)
		sec.WriteByte(0x00) // limits: min only
		writeU32(&sec, m.MemoryPages)
		writeSection(&w, sectionMemory, sec.Bytes())
	}

	if len(m.Exports) > 0 {
		var sec bytes.Buffer
		writeU32(&sec, uint32(len(m.Exports)))
		for _, e := range m.Exports {
			writeName(&sec, e.Name)
			sec.WriteByte(e.Kind)
			writeU32(&sec, e.Index)
		}
		writeSection(&w, sectionExport, sec.Bytes())
	}

	if len(m.Funcs) > 0 {
		var sec bytes.Buffer
		writeU32(&sec, uint32(len(m.Funcs)))
		for _, f := range m.Funcs {
			var body bytes.Buffer
			// One local entry per declared local.
			writeU32(&body, uint32(len(f.Locals)))
			for _, t := range f.Locals {
				writeU32(&body, 1)
				body.WriteByte(t)
			}
			body.Write(f.Body)
			body.WriteByte(0x0b)
			writeU32(&sec, uint32(body.Len()))
			sec.Write(body.Bytes())
		}
		writeSection(&w, sectionCode, sec.Bytes())
	}

	return w.Bytes()
}

func writeSection(w *bytes.Buffer, id byte, data []byte) {
	w.WriteByte(id)
	writeU32(w, uint32(len(data)))
	w.Write(data)
}

func writeName(w *bytes.Buffer, s string) {
	writeU32(w, uint32(len(s)))
	w.WriteString(s)
}

func writeU32(w *bytes.Buffer, v uint32) {
	for {
		b := byte(v & 0x7f)
		v >>= 7
		if v != 0 {
			b |= 0x80
		}
		w.WriteByte(b)
		if v == 0 {
			break
		}
	}
}

func writeS32(w *bytes.Buffer, v int32) {
	more := true
	for more {
		b := byte(v & 0x7f)
		v >>= 7
		if (v == 0 && b&0x40 == 0) || (v == -1 && b&0x40 != 0) {
			more = false
		} else {
			b |= 0x80
		}
		w.WriteByte(b)
	}
}
