package proc

import (
	"context"
	"fmt"
)

// EventKind classifies scheduler events.
type EventKind uint8

const (
	// EventDispatch is emitted when a process is granted a slice.
	// Slice is the number of units granted, Remaining the work left before it.
	EventDispatch EventKind = iota + 1

	// EventUnit is emitted after each consumed unit.
	EventUnit

	// EventExit is emitted when a process runs out of work.
	EventExit

	// EventSweep is emitted after each full pass over the table.
	EventSweep
)

func (k EventKind) String() string {
	switch k {
	case EventDispatch:
		return "dispatch"
	case EventUnit:
		return "unit"
	case EventExit:
		return "exit"
	case EventSweep:
		return "sweep"
	default:
		return fmt.Sprintf("EventKind(%d)", uint8(k))
	}
}

// Event describes one observable step of a scheduling pass.
type Event struct {
	Kind      EventKind
	Sweep     int // 1-based sweep number
	PID       ID
	Name      string
	Slice     int
	Remaining int
}

// Observer receives scheduler events synchronously, in order.
type Observer func(Event)

// Report summarises a scheduling pass.
type Report struct {
	Quantum  int  // effective quantum after coercion
	Sweeps   int  // completed or interrupted sweeps
	Units    int  // units consumed across all processes
	Finished []ID // processes that ran out of work, in completion order
}

// RoundRobin is a cooperative round-robin scheduler. It holds no state
// between passes; the zero value runs with quantum 1 and no delay.
type RoundRobin struct {
	Quantum  int
	Ticker   Ticker
	Observer Observer
}

// Run sweeps t in ascending id order until no process is runnable.
//
// If the ticker fails (typically because ctx is done) the pass stops before
// the next unit and Run returns the partial report with the ticker's error.
// Units consumed before that point stay consumed.
func (rr RoundRobin) Run(ctx context.Context, t *Table) (Report, error) {
	quantum := rr.Quantum
	if quantum <= 0 {
		quantum = 1
	}
	ticker := rr.Ticker
	if ticker == nil {
		ticker = NoDelay
	}
	emit := rr.Observer
	if emit == nil {
		emit = func(Event) {}
	}

	rep := Report{Quantum: quantum}
	for t.Count() > 0 {
		rep.Sweeps++
		for i := range t.procs {
			p := t.procs[i]
			if !p.Runnable() {
				continue
			}

			slice := min(p.Remaining, quantum)
			emit(Event{Kind: EventDispatch, Sweep: rep.Sweeps, PID: p.ID, Name: p.Name, Slice: slice, Remaining: p.Remaining})

			for range slice {
				if err := ticker.Tick(ctx); err != nil {
					return rep, err
				}
				remaining, finished := t.consume(p.ID)
				rep.Units++
				emit(Event{Kind: EventUnit, Sweep: rep.Sweeps, PID: p.ID, Name: p.Name, Slice: slice, Remaining: remaining})
				if finished {
					rep.Finished = append(rep.Finished, p.ID)
					emit(Event{Kind: EventExit, Sweep: rep.Sweeps, PID: p.ID, Name: p.Name, Slice: slice})
					break
				}
			}
		}
		emit(Event{Kind: EventSweep, Sweep: rep.Sweeps})
	}
	return rep, nil
}
