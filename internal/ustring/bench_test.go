package ustring

import (
	"strings"
	"testing"
)

var benchContent = strings.Repeat("áéíóú𝛏𝛏Tést𝛏𝛏", 64)

func BenchmarkAtSequential(b *testing.B) {
	s := FromString(benchContent)
	n := s.Size()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.At(i % n)
	}
}

func BenchmarkAtRandomish(b *testing.B) {
	s := FromString(benchContent)
	n := s.Size()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.At((i * 7919) % n)
	}
}

func BenchmarkFind(b *testing.B) {
	s := FromString(benchContent + "needle")
	needle := FromString("needle")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.Find(needle)
	}
}

func BenchmarkSubstr(b *testing.B) {
	s := FromString(benchContent)
	n := s.Size()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.Substr(n/4, n/2)
	}
}

func BenchmarkSplit(b *testing.B) {
	s := FromString(strings.Repeat("áé;𝛏𝛏;", 128))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.Split(';')
	}
}

func BenchmarkAppendChar(b *testing.B) {
	for i := 0; i < b.N; i++ {
		s := New()
		for j := 0; j < 64; j++ {
			s.AppendChar('á')
		}
	}
}
