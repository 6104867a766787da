package vfs

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateWriteRead(t *testing.T) {
	s := New()

	slot, err := s.Create("notas")
	require.NoError(t, err)
	assert.Equal(t, 0, slot)

	content, err := s.Read("notas")
	require.NoError(t, err)
	assert.Empty(t, content)

	require.NoError(t, s.Write("notas", "Hola mundo"))
	content, err = s.Read("notas")
	require.NoError(t, err)
	assert.Equal(t, "Hola mundo", content)

	require.NoError(t, s.Write("notas", "otro"))
	content, _ = s.Read("notas")
	assert.Equal(t, "otro", content, "write replaces content")
}

func TestCreate_Errors(t *testing.T) {
	s := New()
	_, err := s.Create("a")
	require.NoError(t, err)

	_, err = s.Create("a")
	require.ErrorIs(t, err, ErrExists)

	_, err = s.Create("   ")
	require.ErrorIs(t, err, ErrInvalidName)
}

func TestLongAndPaddedNamesRoundTrip(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		stored string
	}{
		{"longer than limit", strings.Repeat("a", 70), strings.Repeat("a", MaxName-1)},
		{"surrounding spaces", "  notas  ", "notas"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New()
			slot, err := s.Create(tt.input)
			require.NoError(t, err)

			got, ok := s.Find(tt.input)
			require.True(t, ok)
			assert.Equal(t, slot, got)
			assert.Equal(t, tt.stored, s.List()[0].Name)

			require.NoError(t, s.Write(tt.input, "x"))
			content, err := s.Read(tt.input)
			require.NoError(t, err)
			assert.Equal(t, "x", content)

			_, err = s.Create(tt.input)
			require.ErrorIs(t, err, ErrExists)

			require.NoError(t, s.Delete(tt.input))
			assert.Zero(t, s.Len())
		})
	}
}

func TestCreate_Full(t *testing.T) {
	s := New()
	for i := range MaxFiles {
		_, err := s.Create(fmt.Sprintf("f%02d", i))
		require.NoError(t, err)
	}
	_, err := s.Create("overflow")
	require.ErrorIs(t, err, ErrFull)
	assert.Equal(t, MaxFiles, s.Len())
}

func TestDelete_ReusesSlot(t *testing.T) {
	s := New()
	_, _ = s.Create("a")
	_, _ = s.Create("b")
	_, _ = s.Create("c")

	require.NoError(t, s.Delete("b"))
	require.ErrorIs(t, s.Delete("b"), ErrNotFound)

	slot, err := s.Create("d")
	require.NoError(t, err)
	assert.Equal(t, 1, slot, "first free slot is reused")

	var listed []string
	for _, f := range s.List() {
		listed = append(listed, f.Name)
	}
	assert.Equal(t, []string{"a", "d", "c"}, listed)
}

func TestMissingFile(t *testing.T) {
	s := New()
	_, err := s.Read("nope")
	require.ErrorIs(t, err, ErrNotFound)
	require.ErrorIs(t, s.Write("nope", "x"), ErrNotFound)
	_, ok := s.Find("nope")
	assert.False(t, ok)
}

func TestLimits_Truncate(t *testing.T) {
	s := New()
	long := strings.Repeat("n", 200)
	_, err := s.Create(long)
	require.NoError(t, err)

	files := s.List()
	require.Len(t, files, 1)
	assert.Len(t, files[0].Name, MaxName-1)

	require.NoError(t, s.Write(files[0].Name, strings.Repeat("c", 5000)))
	content, _ := s.Read(files[0].Name)
	assert.Len(t, content, MaxContent-1)
	assert.Equal(t, MaxContent-1, s.List()[0].Len)
}

func TestTruncate_RuneBoundary(t *testing.T) {
	assert.Equal(t, "ab", truncate("abñ", 3))
	assert.Equal(t, "abñ", truncate("abñ", 4))
}

func TestReset(t *testing.T) {
	s := New()
	_, _ = s.Create("a")
	s.Reset()
	assert.Zero(t, s.Len())
	assert.Empty(t, s.List())
}
