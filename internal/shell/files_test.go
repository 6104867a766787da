package shell

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KnNgZmN/PrototipoCinnamStrawbOS/kernel"
)

func TestHandle_FileCommands(t *testing.T) {
	h := newHarness(t, kernel.Options{})

	assert.Equal(t, "[OK] Archivo creado: notas\n", h.exec(t.Context(), "CrearArchivo notas"))
	assert.Equal(t, "[WARNING] No se pudo crear (ya existe o espacio lleno)\n", h.exec(t.Context(), "CrearArchivo notas"))

	assert.Equal(t, "[OK] Contenido escrito en notas\n", h.exec(t.Context(), "EscribirArchivo notas Hola  mundo"))
	assert.Equal(t, "Contenido de notas:\nHola  mundo\n", h.exec(t.Context(), "MostrarContenido notas"), "inner spacing is kept")

	assert.Equal(t, "[OK] Contenido escrito en diario\n", h.exec(t.Context(), "EscribirArchivo diario a;b|c"), "missing files are created")
	assert.Equal(t, "Contenido de diario:\na;b|c\n", h.exec(t.Context(), "MostrarContenido diario"))

	assert.Equal(t, "Archivos en VFS (Sistema de Archivos Virtual):\n - notas (len=11)\n - diario (len=5)\n",
		h.exec(t.Context(), "ListarArchivos"))

	assert.Equal(t, "[OK] Archivo eliminado: notas\n", h.exec(t.Context(), "EliminarArchivo notas"))
	assert.Equal(t, "[WARNING] Archivo no encontrado\n", h.exec(t.Context(), "EliminarArchivo notas"))
	assert.Equal(t, "[WARNING] Archivo no encontrado\n", h.exec(t.Context(), "MostrarContenido notas"))
}

func TestHandle_EscribirArchivoLongName(t *testing.T) {
	h := newHarness(t, kernel.Options{})
	long := strings.Repeat("n", 70)

	assert.Equal(t, "[OK] Contenido escrito en "+long+"\n", h.exec(t.Context(), "EscribirArchivo "+long+" uno"))
	assert.Equal(t, "[OK] Contenido escrito en "+long+"\n", h.exec(t.Context(), "EscribirArchivo "+long+" dos"))
	assert.Equal(t, 1, h.sh.Files().Len())

	content, err := h.sh.Files().Read(long)
	require.NoError(t, err)
	assert.Equal(t, "dos", content)
}

func TestHandle_EscribirArchivoQuoted(t *testing.T) {
	h := newHarness(t, kernel.Options{})
	h.exec(t.Context(), `EscribirArchivo "mis notas" "uno dos" tres`)

	content, err := h.sh.Files().Read("mis notas")
	require.NoError(t, err)
	assert.Equal(t, "uno dos tres", content)
}

func TestHandle_EscribirArchivoWithoutContent(t *testing.T) {
	h := newHarness(t, kernel.Options{})
	out := h.exec(t.Context(), "EscribirArchivo vacio")
	assert.Equal(t, "[INFO] Provee contenido en la misma linea. Ej:\n       EscribirArchivo notas Hola mundo\n", out)

	_, ok := h.sh.Files().Find("vacio")
	assert.True(t, ok, "the file is still created")
}

func TestHandle_SaveAndLoad(t *testing.T) {
	h := newHarness(t, kernel.Options{})
	path := h.sh.VFSPath()

	assert.Equal(t, "[WARNING] Error cargando VFS (existe "+path+"?)\n", h.exec(t.Context(), "CargarFS"))

	h.exec(t.Context(), "EscribirArchivo notas Hola mundo")
	assert.Equal(t, "[OK] VFS guardado en "+path+"\n", h.exec(t.Context(), "GuardarFS"))

	h.exec(t.Context(), "EliminarArchivo notas", "CrearArchivo otro")
	assert.Equal(t, "[OK] VFS cargado desde "+path+"\n", h.exec(t.Context(), "cargarfs"))

	assert.Equal(t, "Contenido de notas:\nHola mundo\n", h.exec(t.Context(), "MostrarContenido notas"))
	_, ok := h.sh.Files().Find("otro")
	assert.False(t, ok, "load replaces the store")
}

func TestHandle_LoadCorrupt(t *testing.T) {
	h := newHarness(t, kernel.Options{})
	require.NoError(t, os.WriteFile(h.sh.VFSPath(), []byte{0xff, 0xff}, 0o644))

	out := h.exec(t.Context(), "CargarFS")
	assert.True(t, strings.HasPrefix(out, "[WARNING] Error cargando VFS:"), out)
}

func TestInput_Tail(t *testing.T) {
	tests := []struct {
		line string
		args []string
		n    int
		want string
	}{
		{"EscribirArchivo a hola", []string{"a", "hola"}, 2, "hola"},
		{"EscribirArchivo   a    hola   mundo ", []string{"a", "hola", "mundo"}, 2, "hola   mundo "},
		{"EscribirArchivo a", []string{"a"}, 2, ""},
		{`EscribirArchivo "a b" c`, []string{"a b", "c"}, 2, "c"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, input{line: tt.line, args: tt.args}.tail(tt.n), tt.line)
	}
}
