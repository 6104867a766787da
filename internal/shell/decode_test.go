package shell

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeReader(t *testing.T) {
	tests := []struct {
		enc  string
		in   []byte
		want string
	}{
		{"", []byte("CrearArchivo caf\xc3\xa9"), "CrearArchivo café"},
		{"utf-8", []byte("\xef\xbb\xbfAyuda"), "Ayuda"},
		{"latin1", []byte("CrearArchivo caf\xe9"), "CrearArchivo café"},
		{"Windows-1252", []byte("EscribirArchivo a \x80 5"), "EscribirArchivo a € 5"},
	}
	for _, tt := range tests {
		t.Run(tt.enc, func(t *testing.T) {
			r, err := DecodeReader(bytes.NewReader(tt.in), tt.enc)
			require.NoError(t, err)
			got, err := io.ReadAll(r)
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(got))
		})
	}
}

func TestDecodeReader_Unsupported(t *testing.T) {
	_, err := DecodeReader(bytes.NewReader(nil), "ebcdic")
	require.Error(t, err)
}
