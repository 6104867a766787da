package shell

import (
	"context"
	"strconv"

	"github.com/dustin/go-humanize"

	"github.com/KnNgZmN/PrototipoCinnamStrawbOS/kernel/mem"
)

func (sh *Shell) allocMemory(_ context.Context, in input) {
	v, err := sh.argInts("AsignarMemoria", in, 2)
	if err != nil {
		return
	}
	pid, size := v[0], v[1]
	idx, err := sh.k.Alloc(mem.Owner(pid), size)
	if err != nil {
		sh.out.Error("Fallo la asignacion de memoria (no hay fit o limite)")
		return
	}
	sh.out.OK("Memoria asignada (block idx=%d) para PID=%d", idx, pid)
}

func (sh *Shell) freeMemory(_ context.Context, in input) {
	v, err := sh.argInts("LiberarMemoria", in, 1)
	if err != nil {
		return
	}
	pid := v[0]
	n := sh.k.Free(mem.Owner(pid))
	if n == 0 {
		sh.out.Warn("No se encontraron bloques para PID=%d", pid)
		return
	}
	sh.out.Info("Liberados %d bloque(s) para PID=%d", n, pid)
}

func (sh *Shell) memoryMap(context.Context, input) {
	blocks, st := sh.k.MemoryState()

	sh.out.Printf("Mapa de memoria (total %d bytes):\n", st.Capacity)
	rows := make([][]string, 0, len(blocks))
	for i, b := range blocks {
		rows = append(rows, []string{
			strconv.Itoa(i),
			strconv.Itoa(b.Start),
			strconv.Itoa(b.Size),
			boolInt(b.Free),
			strconv.Itoa(int(b.Owner)),
		})
	}
	sh.out.Table([]string{"Idx", "Start", "Size", "Free", "Owner"}, rows)
	sh.out.Printf("Usado: %s | Libre: %s | Bloques: %d/%d\n",
		ibytes(st.UsedBytes), ibytes(st.FreeBytes), st.Blocks, st.MaxBlocks)
}

func (sh *Shell) memoryStats(context.Context, input) {
	st := sh.k.MemoryStats()
	sh.out.Printf("Estado de memoria:\n")
	sh.out.Printf("  Capacidad:      %s\n", ibytes(st.Capacity))
	sh.out.Printf("  Usado:          %s (%.1f%%)\n", ibytes(st.UsedBytes), st.Utilization()*100)
	sh.out.Printf("  Libre:          %s en %d bloque(s)\n", ibytes(st.FreeBytes), st.FreeBlocks)
	sh.out.Printf("  Mayor hueco:    %s\n", ibytes(st.LargestFree))
	sh.out.Printf("  Fragmentacion:  %.2f\n", st.Fragmentation)
	sh.out.Printf("  Bloques:        %d/%d\n", st.Blocks, st.MaxBlocks)
	sh.out.Printf("  Asignaciones:   %s (%s fallidas, %s divisiones)\n",
		humanize.Comma(int64(st.AllocCalls)), humanize.Comma(int64(st.AllocFailed)), humanize.Comma(int64(st.Splits)))
	sh.out.Printf("  Liberaciones:   %s (%s bloques, %s fusiones)\n",
		humanize.Comma(int64(st.FreeCalls)), humanize.Comma(int64(st.BlocksFreed)), humanize.Comma(int64(st.Merges)))
}

func ibytes(n int) string {
	return humanize.IBytes(uint64(n))
}
