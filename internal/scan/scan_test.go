package scan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumbers(t *testing.T) {
	s := New("10-5.5.5e1,  +3")
	var got []float64
	for !s.EOF() {
		f, ok := s.Number()
		require.True(t, ok, "at %d", s.Pos)
		got = append(got, f)
		s.SkipCommaSpace()
	}
	assert.Equal(t, []float64{10, -5.5, 5, 3}, got)
}

func TestCommaSpace(t *testing.T) {
	s := New(" , x")
	assert.True(t, s.SkipCommaSpace())
	assert.Equal(t, byte('x'), s.Peek())
	assert.False(t, s.SkipCommaSpace())

	_, ok := s.Number()
	assert.False(t, ok)
	assert.Equal(t, "x", s.Ident())
	assert.True(t, s.EOF())
	assert.Equal(t, byte(0), s.Peek())
}

func TestIdent(t *testing.T) {
	s := New("skewX(10)")
	assert.Equal(t, "skewX", s.Ident())
	assert.Equal(t, byte('('), s.Peek())
}
