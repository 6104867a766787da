package shell

import (
	"context"
	"errors"
	"io/fs"

	"github.com/KnNgZmN/PrototipoCinnamStrawbOS/kernel/vfs"
)

func (sh *Shell) createFile(_ context.Context, in input) {
	if len(in.args) < 1 {
		sh.usage("CrearArchivo")
		return
	}
	name := in.args[0]
	if _, err := sh.fs.Create(name); err != nil {
		sh.log.Debug("create file failed", "name", name, "error", err)
		sh.out.Warn("No se pudo crear (ya existe o espacio lleno)")
		return
	}
	sh.out.OK("Archivo creado: %s", name)
}

func (sh *Shell) listFiles(context.Context, input) {
	sh.out.Printf("Archivos en VFS (Sistema de Archivos Virtual):\n")
	for _, f := range sh.fs.List() {
		sh.out.Printf(" - %s (len=%d)\n", f.Name, f.Len)
	}
}

func (sh *Shell) showFile(_ context.Context, in input) {
	if len(in.args) < 1 {
		sh.usage("MostrarContenido")
		return
	}
	name := in.args[0]
	content, err := sh.fs.Read(name)
	if err != nil {
		sh.out.Warn("Archivo no encontrado")
		return
	}
	sh.out.Printf("Contenido de %s:\n%s\n", name, content)
}

func (sh *Shell) writeFile(_ context.Context, in input) {
	if len(in.args) < 1 {
		sh.usage("EscribirArchivo")
		return
	}
	name := in.args[0]
	if _, ok := sh.fs.Find(name); !ok {
		if _, err := sh.fs.Create(name); err != nil {
			sh.log.Debug("create file failed", "name", name, "error", err)
			sh.out.Warn("No se pudo crear archivo")
			return
		}
	}

	content := in.tail(2)
	if content == "" {
		sh.out.Info("Provee contenido en la misma linea. Ej:")
		sh.out.Printf("       EscribirArchivo notas Hola mundo\n")
		return
	}
	if err := sh.fs.Write(name, content); err != nil {
		sh.out.Warn("Archivo no encontrado")
		return
	}
	sh.out.OK("Contenido escrito en %s", name)
}

func (sh *Shell) deleteFile(_ context.Context, in input) {
	if len(in.args) < 1 {
		sh.usage("EliminarArchivo")
		return
	}
	name := in.args[0]
	if err := sh.fs.Delete(name); err != nil {
		sh.out.Warn("Archivo no encontrado")
		return
	}
	sh.out.OK("Archivo eliminado: %s", name)
}

func (sh *Shell) saveFS(context.Context, input) {
	path := sh.opts.VFSPath
	if err := sh.fs.Save(path); err != nil {
		sh.log.Error("vfs save failed", "path", path, "error", err)
		sh.out.Error("Error guardando VFS")
		return
	}
	sh.log.Info("vfs saved", "path", path, "files", sh.fs.Len())
	sh.out.OK("VFS guardado en %s", path)
}

func (sh *Shell) loadFS(context.Context, input) {
	path := sh.opts.VFSPath
	err := sh.fs.Load(path)
	switch {
	case err == nil:
		sh.log.Info("vfs loaded", "path", path, "files", sh.fs.Len())
		sh.out.OK("VFS cargado desde %s", path)
	case errors.Is(err, fs.ErrNotExist):
		sh.out.Warn("Error cargando VFS (existe %s?)", path)
	case errors.Is(err, vfs.ErrCorrupt):
		sh.log.Warn("vfs load failed", "path", path, "error", err)
		sh.out.Warn("Error cargando VFS: %s esta corrupto", path)
	default:
		sh.log.Warn("vfs load failed", "path", path, "error", err)
		sh.out.Warn("Error cargando VFS (existe %s?)", path)
	}
}
