package shell

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"unicode"

	"github.com/KnNgZmN/PrototipoCinnamStrawbOS/internal/output"
)

type group int

const (
	groupProcesses group = iota
	groupMemory
	groupFiles
	groupSystem
)

// input is one parsed command line. args excludes the command name.
type input struct {
	line string
	args []string
}

// tail returns the raw text after the first n fields of the line, keeping
// its inner spacing. Quoted lines fall back to the parsed arguments.
func (in input) tail(n int) string {
	if strings.ContainsAny(in.line, `"'\`) {
		if len(in.args) < n {
			return ""
		}
		return strings.Join(in.args[n-1:], " ")
	}
	rest := in.line
	for range n {
		rest = strings.TrimLeftFunc(rest, unicode.IsSpace)
		i := strings.IndexFunc(rest, unicode.IsSpace)
		if i < 0 {
			return ""
		}
		rest = rest[i:]
	}
	return strings.TrimLeftFunc(rest, unicode.IsSpace)
}

type command struct {
	name  string
	usage string // argument synopsis
	help  string
	group group
	quit  bool
	run   func(ctx context.Context, in input)
}

func (sh *Shell) register() {
	for _, c := range []*command{
		{name: "NuevoProceso", usage: "<nombre> <rafaga>", help: "Crea un nuevo proceso", group: groupProcesses, run: sh.newProcess},
		{name: "ListarProcesos", help: "Muestra la tabla de procesos", group: groupProcesses, run: sh.listProcesses},
		{name: "Ejecutar", usage: "[quantum]", help: "Ejecuta el planificador Round-Robin", group: groupProcesses, run: sh.execute},
		{name: "TerminarProceso", usage: "<id>", help: "Termina un proceso por ID", group: groupProcesses, run: sh.killProcess},

		{name: "AsignarMemoria", usage: "<id> <bytes>", help: "Asigna memoria a un proceso", group: groupMemory, run: sh.allocMemory},
		{name: "LiberarMemoria", usage: "<id>", help: "Libera la memoria de un proceso", group: groupMemory, run: sh.freeMemory},
		{name: "MostrarMapaMemoria", help: "Muestra el mapa de memoria", group: groupMemory, run: sh.memoryMap},
		{name: "EstadoMemoria", help: "Resume la ocupacion de memoria", group: groupMemory, run: sh.memoryStats},

		{name: "CrearArchivo", usage: "<nombre>", help: "Crea un archivo en el VFS", group: groupFiles, run: sh.createFile},
		{name: "ListarArchivos", help: "Lista los archivos del VFS", group: groupFiles, run: sh.listFiles},
		{name: "MostrarContenido", usage: "<nombre>", help: "Muestra el contenido de un archivo", group: groupFiles, run: sh.showFile},
		{name: "EscribirArchivo", usage: "<nombre> [contenido]", help: "Escribe en un archivo", group: groupFiles, run: sh.writeFile},
		{name: "EliminarArchivo", usage: "<nombre>", help: "Elimina un archivo", group: groupFiles, run: sh.deleteFile},
		{name: "GuardarFS", help: "Guarda el VFS en disco", group: groupFiles, run: sh.saveFS},
		{name: "CargarFS", help: "Carga el VFS desde disco", group: groupFiles, run: sh.loadFS},

		{name: "Ayuda", help: "Muestra esta ayuda", group: groupSystem, run: sh.help},
		{name: "Reiniciar", help: "Reinicia procesos y memoria", group: groupSystem, run: sh.reset},
		{name: "Salir", help: "Cierra el sistema", group: groupSystem, quit: true, run: sh.quit},
	} {
		sh.commands[strings.ToLower(c.name)] = c
		sh.ordered = append(sh.ordered, c)
	}
}

// Commands returns the command names in help order.
func (sh *Shell) Commands() []string {
	names := make([]string, len(sh.ordered))
	for i, c := range sh.ordered {
		names[i] = c.name
	}
	return names
}

// usage prints the synopsis of a command.
func (sh *Shell) usage(name string) {
	c := sh.commands[strings.ToLower(name)]
	if c.usage == "" {
		sh.out.Printf("Uso: %s\n", c.name)
		return
	}
	sh.out.Printf("Uso: %s %s\n", c.name, c.usage)
}

// ints parses every argument as a base-10 integer.
func ints(args ...string) ([]int, bool) {
	out := make([]int, len(args))
	for i, a := range args {
		n, err := strconv.Atoi(a)
		if err != nil {
			return nil, false
		}
		out[i] = n
	}
	return out, true
}

var errUsage = errors.New("usage")

// argInts checks the argument count and parses the arguments as integers.
func (sh *Shell) argInts(name string, in input, n int) ([]int, error) {
	if len(in.args) < n {
		sh.usage(name)
		return nil, errUsage
	}
	v, ok := ints(in.args[:n]...)
	if !ok {
		sh.usage(name)
		return nil, errUsage
	}
	return v, nil
}

func (sh *Shell) quit(context.Context, input) {
	sh.out.Info("Saliendo...")
}

func (sh *Shell) reset(context.Context, input) {
	sh.k.Reset()
	sh.out.Info("Kernel reiniciado: tabla de procesos vacia y memoria libre")
}

func (sh *Shell) help(context.Context, input) {
	titles := map[group]string{
		groupProcesses: "🔶 PROCESOS:",
		groupMemory:    "💾 MEMORIA:",
		groupFiles:     "📂 ARCHIVOS:",
		groupSystem:    "⚙️ SISTEMA:",
	}
	sh.out.Printf("\n")
	sh.out.Heading("📚 COMANDOS DISPONIBLES - CinnamStrawbOS")
	sh.out.Printf("==========================================\n\n")
	for g := groupProcesses; g <= groupSystem; g++ {
		sh.out.Heading(titles[g])
		for _, c := range sh.ordered {
			if c.group != g {
				continue
			}
			synopsis := strings.TrimSpace(c.name + " " + c.usage)
			sh.out.Printf("   %-32s ->  %s\n", synopsis, c.help)
		}
		sh.out.Printf("\n")
	}
	if sh.out.Mode() == output.GUI {
		sh.out.Printf("💡 Tip: Usa las teclas F1-F7 para acceso rapido\n\n")
	}
}
