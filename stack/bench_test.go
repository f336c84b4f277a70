package stack

import "testing"

func BenchmarkPushPopWord(b *testing.B) {
	s := NewDefault()
	w := make([]byte, s.WordWidth())
	dst := make([]byte, s.WordWidth())
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.Push(w)
		s.Pop(dst)
	}
}

func BenchmarkPushPopInt16(b *testing.B) {
	s := NewDefault()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.PushInt16(int16(i))
		s.PopInt16()
	}
}

func BenchmarkFillDrain(b *testing.B) {
	s := NewDefault()
	w := make([]byte, s.WordWidth())
	dst := make([]byte, s.WordWidth())
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for s.Push(w) {
		}
		for s.Pop(dst) {
		}
	}
}
