package main

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecCommand(t *testing.T) {
	tests := []struct {
		name           string
		args           []string
		wantContain    []string
		wantNotContain []string
	}{
		{
			name: "round robin",
			args: []string{"NuevoProceso A 5", "NuevoProceso B 2", "Ejecutar 3"},
			wantContain: []string{
				"[OK] Proceso creado: ID=0, name=A, burst=5",
				"[OK] Ejecutando PID=1 (B) por 2 unidad(es). Restante: 2",
				"[INFO] PID=0 (A) finalizado",
				"Scheduler finalizado",
			},
		},
		{
			name:        "memory map",
			args:        []string{"AsignarMemoria 1 100", "MostrarMapaMemoria"},
			wantContain: []string{"block idx=0", "Mapa de memoria (total 4096 bytes):", "3996"},
		},
		{
			name:           "stops at Salir",
			args:           []string{"Salir", "NuevoProceso nunca 1"},
			wantContain:    []string{"[INFO] Saliendo..."},
			wantNotContain: []string{"nunca"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			useTestConfig(t)
			var buf bytes.Buffer
			require.NoError(t, runExec(t.Context(), &buf, tt.args))
			assertContains(t, buf.String(), tt.wantContain)
			assertNotContains(t, buf.String(), tt.wantNotContain)
		})
	}
}

func TestExecCommand_PersistsVFS(t *testing.T) {
	useTestConfig(t)

	var buf bytes.Buffer
	require.NoError(t, runExec(t.Context(), &buf, []string{"EscribirArchivo notas Hola mundo", "GuardarFS"}))
	assert.Contains(t, buf.String(), "[OK] VFS guardado en "+cfg.VFS.Path)

	buf.Reset()
	require.NoError(t, runExec(t.Context(), &buf, []string{"MostrarContenido notas"}))
	assert.Equal(t, "Contenido de notas:\nHola mundo\n", buf.String(), "autoload restores the dump")

	cfg.VFS.Autoload = false
	buf.Reset()
	require.NoError(t, runExec(t.Context(), &buf, []string{"MostrarContenido notas"}))
	assert.Equal(t, "[WARNING] Archivo no encontrado\n", buf.String())
}

func TestRunScript(t *testing.T) {
	dir := useTestConfig(t)
	runEncoding, runEcho = "latin1", true
	t.Cleanup(func() { runEncoding, runEcho = "utf-8", false })

	path := writeScript(t, dir, []byte("CrearArchivo caf\xe9\nListarArchivos\n"))

	var buf bytes.Buffer
	require.NoError(t, runScript(t.Context(), &buf, []string{path}))
	assertContains(t, buf.String(), []string{
		"CinnamStrawbOS> CrearArchivo café",
		"[OK] Archivo creado: café",
		" - café (len=0)",
	})
}

func TestRunScript_Errors(t *testing.T) {
	dir := useTestConfig(t)

	var buf bytes.Buffer
	err := runScript(t.Context(), &buf, []string{dir + "/missing.txt"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open script")

	runEncoding = "ebcdic"
	t.Cleanup(func() { runEncoding = "utf-8" })
	err = runScript(t.Context(), &buf, []string{writeScript(t, dir, []byte("Ayuda\n"))})
	require.Error(t, err)
}

func TestShellCommand_Piped(t *testing.T) {
	useTestConfig(t)
	quiet = false

	in := strings.NewReader("NuevoProceso a 2\nEjecutar\nSalir\nNuevoProceso b 1\n")
	var buf bytes.Buffer
	require.NoError(t, runShell(t.Context(), in, &buf, false))

	out := buf.String()
	assertContains(t, out, []string{"Version 0.1 - 2025", "[INFO] PID=0 (a) finalizado", "[INFO] Saliendo..."})
	assertNotContains(t, out, []string{"CinnamStrawbOS> ", "name=b"})
}

func TestShellCommand_Interactive(t *testing.T) {
	useTestConfig(t)

	var buf bytes.Buffer
	require.NoError(t, runShell(t.Context(), strings.NewReader("Ayuda\n"), &buf, true))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "CinnamStrawbOS> "), out)
	assert.True(t, strings.HasSuffix(out, "CinnamStrawbOS> \n"), "prompt again at end of input")
}

func TestConfigCommand(t *testing.T) {
	useTestConfig(t)
	cfg.Kernel.Tick = 250 * time.Millisecond

	var buf bytes.Buffer
	require.NoError(t, runConfig(&buf))
	assertContains(t, buf.String(), []string{"max_processes: 32", "tick: 250ms", "autoload: true"})
}

func TestRootCommand_FlagsOverrideConfig(t *testing.T) {
	useTestConfig(t)
	dir := t.TempDir()
	t.Cleanup(func() { tick, vfsPath = 0, "" })

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetArgs([]string{"config", "--tick", "0s", "--vfs", dir + "/fs.dat"})
	t.Cleanup(func() { rootCmd.SetOut(nil); rootCmd.SetArgs(nil) })

	require.NoError(t, rootCmd.Execute())

	assert.Zero(t, cfg.Kernel.Tick)
	assert.Equal(t, dir+"/fs.dat", cfg.VFS.Path)
	assert.Contains(t, buf.String(), "path: "+dir+"/fs.dat")
}

func TestRootCommand_VersionFlag(t *testing.T) {
	useTestConfig(t)

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetArgs([]string{"--version"})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
		_ = rootCmd.Flags().Set("version", "false")
	})

	require.NoError(t, rootCmd.Execute())
	assert.Equal(t, "strawbctl dev\n  commit: none\n  built: unknown\n", buf.String())
}
