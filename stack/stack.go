package stack

import (
	"fmt"

	"github.com/wippyai/wordvm"
	"github.com/wippyai/wordvm/errors"
)

// MinWordWidth is the smallest word width a Stack accepts. Narrow packing
// addresses the first two bytes of a word.
const MinWordWidth = 2

// Stack is a fixed-capacity LIFO of fixed-width words. It is not safe for
// concurrent use.
type Stack struct {
	buf     []byte
	scratch []byte
	cursor  int
	width   int
}

// New creates an empty stack holding capacity bytes of wordWidth-byte words.
// capacity must be a positive multiple of wordWidth.
func New(wordWidth, capacity int) (*Stack, error) {
	if wordWidth < MinWordWidth {
		return nil, errors.InvalidConfig([]string{"word-bytes"}, wordWidth,
			fmt.Sprintf("word width must be at least %d bytes", MinWordWidth))
	}
	if capacity <= 0 || capacity%wordWidth != 0 {
		return nil, errors.InvalidConfig([]string{"capacity-bytes"}, capacity,
			fmt.Sprintf("capacity must be a positive multiple of %d", wordWidth))
	}
	return &Stack{
		buf:     make([]byte, capacity),
		scratch: make([]byte, wordWidth),
		width:   wordWidth,
	}, nil
}

// NewDefault creates an empty stack with the machine's default geometry:
// 32-byte words, 32 KiB capacity.
func NewDefault() *Stack {
	return &Stack{
		buf:     make([]byte, wordvm.StackSizeBytes),
		scratch: make([]byte, wordvm.WordSizeBytes),
		width:   wordvm.WordSizeBytes,
	}
}

// WordWidth returns the word width in bytes.
func (s *Stack) WordWidth() int { return s.width }

// Cap returns the capacity in bytes.
func (s *Stack) Cap() int { return len(s.buf) }

// Cursor returns the byte offset of the next free slot.
func (s *Stack) Cursor() int { return s.cursor }

// Len returns the number of words on the stack.
func (s *Stack) Len() int { return s.cursor / s.width }

// Free returns the number of words that can still be pushed.
func (s *Stack) Free() int { return (len(s.buf) - s.cursor) / s.width }

// Bytes returns the whole backing buffer, including bytes above the cursor
// left by earlier pops. Callers must not modify it.
func (s *Stack) Bytes() []byte { return s.buf }

// Reset empties the stack and zeroes the buffer.
func (s *Stack) Reset() {
	clear(s.buf)
	s.cursor = 0
}

// Push appends word to the stack. It returns false, leaving the stack
// unchanged, when the stack is full or len(word) is not exactly one word.
func (s *Stack) Push(word []byte) bool {
	if len(word) != s.width || s.cursor+s.width > len(s.buf) {
		return false
	}
	copy(s.buf[s.cursor:s.cursor+s.width], word)
	s.cursor += s.width
	return true
}

// Pop removes the top word and writes its bytes into dst in reverse of buffer
// order. It returns false, leaving the stack unchanged, when the stack holds
// less than one word or dst is shorter than one word.
func (s *Stack) Pop(dst []byte) bool {
	if s.cursor < s.width || len(dst) < s.width {
		return false
	}
	s.cursor -= s.width
	s.readReversed(dst, s.cursor)
	return true
}

// Peek writes the idx'th word from the top (0 is the top) into dst, in the
// same order Pop would return it. The stack is not modified.
func (s *Stack) Peek(idx int, dst []byte) bool {
	if idx < 0 || idx >= s.Len() || len(dst) < s.width {
		return false
	}
	s.readReversed(dst, s.cursor-(idx+1)*s.width)
	return true
}

// Swap exchanges the top word with the word idx+1 positions below it, so
// Swap(0) exchanges the two topmost words.
func (s *Stack) Swap(idx int) bool {
	if idx < 0 || idx+1 >= s.Len() {
		return false
	}
	top := s.buf[s.cursor-s.width : s.cursor]
	off := s.cursor - (idx+2)*s.width
	other := s.buf[off : off+s.width]
	for i := range top {
		top[i], other[i] = other[i], top[i]
	}
	return true
}

func (s *Stack) readReversed(dst []byte, off int) {
	word := s.buf[off : off+s.width]
	last := s.width - 1
	for i := range word {
		dst[i] = word[last-i]
	}
}
