package stack

// Width is the bit width of a narrow value packed into a word.
type Width int

const (
	Width8  Width = 8
	Width16 Width = 16
)

// Valid reports whether w is a supported narrow width.
func (w Width) Valid() bool {
	return w == Width8 || w == Width16
}

// PushNarrow packs v into a zeroed word, most significant byte first, and
// pushes it. For Width8 only the low byte of v is kept.
func (s *Stack) PushNarrow(w Width, v int16) bool {
	clear(s.scratch)
	switch w {
	case Width8:
		s.scratch[0] = byte(v)
	case Width16:
		s.scratch[0] = byte(uint16(v) >> 8)
		s.scratch[1] = byte(v)
	default:
		return false
	}
	return s.Push(s.scratch)
}

// PopNarrow pops a word and unpacks a value of width w from it. Width8 values
// are sign-extended. An invalid width fails without popping.
func (s *Stack) PopNarrow(w Width) (int16, bool) {
	if !w.Valid() {
		return 0, false
	}
	if !s.Pop(s.scratch) {
		return 0, false
	}
	// Pop reversed the word: logical byte i is at scratch[width-1-i].
	b0 := s.scratch[s.width-1]
	if w == Width8 {
		return int16(int8(b0)), true
	}
	b1 := s.scratch[s.width-2]
	return int16(uint16(b0)<<8 | uint16(b1)), true
}

// PushInt8 pushes an 8-bit value.
func (s *Stack) PushInt8(v int8) bool {
	return s.PushNarrow(Width8, int16(v))
}

// PopInt8 pops an 8-bit value.
func (s *Stack) PopInt8() (int8, bool) {
	v, ok := s.PopNarrow(Width8)
	return int8(v), ok
}

// PushInt16 pushes a 16-bit value.
func (s *Stack) PushInt16(v int16) bool {
	return s.PushNarrow(Width16, v)
}

// PopInt16 pops a 16-bit value.
func (s *Stack) PopInt16() (int16, bool) {
	return s.PopNarrow(Width16)
}
