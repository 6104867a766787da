package shell

import (
	"context"
	"errors"
	"strconv"

	"github.com/KnNgZmN/PrototipoCinnamStrawbOS/internal/output"
	"github.com/KnNgZmN/PrototipoCinnamStrawbOS/kernel"
	"github.com/KnNgZmN/PrototipoCinnamStrawbOS/kernel/proc"
)

// noMemOwner fills the MemOwner column; processes do not track their blocks.
const noMemOwner = -1

func (sh *Shell) newProcess(_ context.Context, in input) {
	if len(in.args) < 2 {
		sh.usage("NuevoProceso")
		return
	}
	burst, err := strconv.Atoi(in.args[1])
	if err != nil {
		sh.usage("NuevoProceso")
		return
	}

	id, err := sh.k.CreateProcess(in.args[0], burst)
	switch {
	case errors.Is(err, kernel.ErrTableFull):
		sh.out.Warn("Limite de procesos alcanzado (%d)", sh.k.MaxProcesses())
	case errors.Is(err, proc.ErrInvalidBurst):
		sh.out.Warn("Rafaga invalida: %d (debe ser >= 0)", burst)
	case err != nil:
		sh.out.Error("%v", err)
	default:
		p, _ := sh.k.Lookup(id)
		sh.out.OK("Proceso creado: ID=%d, name=%s, burst=%d", id, p.Name, p.Burst)
	}
}

func (sh *Shell) listProcesses(context.Context, input) {
	procs := sh.k.Processes()
	rows := make([][]string, 0, len(procs))
	for _, p := range procs {
		rows = append(rows, []string{
			strconv.Itoa(int(p.ID)),
			p.Name,
			strconv.Itoa(p.Burst),
			strconv.Itoa(p.Remaining),
			boolInt(p.Alive),
			strconv.Itoa(noMemOwner),
		})
	}
	sh.out.Table([]string{"ID", "Name", "Burst", "Remaining", "Alive", "MemOwner"}, rows)
}

func (sh *Shell) killProcess(_ context.Context, in input) {
	v, err := sh.argInts("TerminarProceso", in, 1)
	if err != nil {
		return
	}
	id := proc.ID(v[0])
	if err := sh.k.KillProcess(id); err != nil {
		sh.out.Warn("Proceso ID=%d no encontrado", id)
		return
	}
	sh.out.Info("Proceso ID=%d terminado por peticion", id)
}

func (sh *Shell) execute(ctx context.Context, in input) {
	quantum := 1
	if len(in.args) > 0 {
		v, ok := ints(in.args[0])
		if !ok {
			sh.usage("Ejecutar")
			return
		}
		quantum = max(v[0], 1)
	}

	sh.out.Printf("\n")
	sh.out.Info("Iniciando scheduler Round-Robin (quantum=%d unidades)", quantum)
	rep, err := sh.k.Run(ctx, quantum, func(ev proc.Event) {
		switch ev.Kind {
		case proc.EventDispatch:
			sh.out.OK("Ejecutando PID=%d (%s) por %d unidad(es). Restante: %d", ev.PID, ev.Name, ev.Slice, ev.Remaining)
		case proc.EventUnit:
			sh.out.Detail(output.LevelOK, "PID=%d: ejecutado 1 unidad, resta %d", ev.PID, ev.Remaining)
		case proc.EventExit:
			sh.out.Info("PID=%d (%s) finalizado", ev.PID, ev.Name)
		}
	})
	if err != nil {
		sh.out.Warn("Scheduler interrumpido tras %d unidad(es): quedan %d proceso(s) listos", rep.Units, sh.k.Ready())
		sh.out.Printf("\n")
		return
	}
	sh.out.Info("Scheduler finalizado. No quedan procesos listos.")
	sh.out.Printf("\n")
}

func boolInt(b bool) string {
	if b {
		return "1"
	}
	return "0"
}
