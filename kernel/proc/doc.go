// Package proc implements the simulated process table and its round-robin
// scheduler.
//
// # Overview
//
// A Table holds a fixed number of process slots. Ids are handed out
// sequentially from 0 and are never reused; a terminated process keeps its
// slot so its final state stays visible to List.
//
//	t := proc.NewTable(32)
//	id, err := t.Create("editor", 5)
//	if err != nil {
//	    return err // proc.ErrTableFull
//	}
//
// # Scheduling
//
// RoundRobin runs cooperative sweeps over the table in ascending id order,
// granting each eligible process at most Quantum units per turn, until no
// process is left with work. Each unit is preceded by a Ticker call, which is
// where a production front end paces the simulation and where cancellation is
// observed:
//
//	rr := proc.RoundRobin{
//	    Quantum:  3,
//	    Ticker:   proc.Interval(time.Second),
//	    Observer: func(ev proc.Event) { fmt.Println(ev) },
//	}
//	report, err := rr.Run(ctx, t)
//
// # Thread Safety
//
// Table is not safe for concurrent use. The kernel package wraps it with a
// mutex and publishes snapshots for readers.
package proc
