package proc

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorder collects scheduler events for assertions.
type recorder struct {
	events []Event
}

func (r *recorder) observe(ev Event) { r.events = append(r.events, ev) }

// slices returns "pid:units" for every dispatch, in order, counting the
// units actually consumed in that slice.
func (r *recorder) slices() [][2]int {
	var out [][2]int
	for _, ev := range r.events {
		switch ev.Kind {
		case EventDispatch:
			out = append(out, [2]int{int(ev.PID), 0})
		case EventUnit:
			out[len(out)-1][1]++
		}
	}
	return out
}

func (r *recorder) count(kind EventKind) int {
	n := 0
	for _, ev := range r.events {
		if ev.Kind == kind {
			n++
		}
	}
	return n
}

func TestRoundRobin_Trace(t *testing.T) {
	tbl := NewTable(4)
	_, _ = tbl.Create("P0", 5)
	_, _ = tbl.Create("P1", 2)

	rec := &recorder{}
	rep, err := RoundRobin{Quantum: 3, Observer: rec.observe}.Run(context.Background(), tbl)
	require.NoError(t, err)

	assert.Equal(t, [][2]int{{0, 3}, {1, 2}, {0, 2}}, rec.slices())
	assert.Equal(t, 2, rep.Sweeps)
	assert.Equal(t, 7, rep.Units)
	assert.Equal(t, []ID{1, 0}, rep.Finished)
	assert.Equal(t, 2, rec.count(EventExit))
	assert.Equal(t, 2, rec.count(EventSweep))
	assert.Zero(t, tbl.Count())

	for p := range tbl.All() {
		assert.False(t, p.Alive)
		assert.Zero(t, p.Remaining)
	}
}

func TestRoundRobin_UnitEventsAreSequential(t *testing.T) {
	tbl := NewTable(1)
	_, _ = tbl.Create("solo", 4)

	rec := &recorder{}
	_, err := RoundRobin{Quantum: 10, Observer: rec.observe}.Run(context.Background(), tbl)
	require.NoError(t, err)

	var remaining []int
	for _, ev := range rec.events {
		if ev.Kind == EventUnit {
			remaining = append(remaining, ev.Remaining)
		}
	}
	assert.Equal(t, []int{3, 2, 1, 0}, remaining)
	require.Equal(t, EventDispatch, rec.events[0].Kind)
	assert.Equal(t, 4, rec.events[0].Slice, "slice is capped by remaining work")
}

func TestRoundRobin_QuantumCoercion(t *testing.T) {
	for _, q := range []int{0, -5} {
		tbl := NewTable(2)
		_, _ = tbl.Create("a", 2)
		_, _ = tbl.Create("b", 1)

		rec := &recorder{}
		rep, err := RoundRobin{Quantum: q, Observer: rec.observe}.Run(context.Background(), tbl)
		require.NoError(t, err)
		assert.Equal(t, 1, rep.Quantum)
		assert.Equal(t, [][2]int{{0, 1}, {1, 1}, {0, 1}}, rec.slices())
	}
}

func TestRoundRobin_SkipsDeadAndIdle(t *testing.T) {
	tbl := NewTable(4)
	_, _ = tbl.Create("killed", 3)
	_, _ = tbl.Create("idle", 0)
	_, _ = tbl.Create("live", 2)
	require.NoError(t, tbl.Kill(0))

	rec := &recorder{}
	rep, err := RoundRobin{Quantum: 1, Observer: rec.observe}.Run(context.Background(), tbl)
	require.NoError(t, err)

	assert.Equal(t, [][2]int{{2, 1}, {2, 1}}, rec.slices())
	assert.Equal(t, []ID{2}, rep.Finished)

	idle, _ := tbl.Lookup(1)
	assert.True(t, idle.Alive, "a zero-burst process is never scheduled")
}

func TestRoundRobin_NothingToRun(t *testing.T) {
	tbl := NewTable(2)
	ticks := 0
	ticker := TickerFunc(func(context.Context) error { ticks++; return nil })

	rep, err := RoundRobin{Quantum: 2, Ticker: ticker}.Run(context.Background(), tbl)
	require.NoError(t, err)
	assert.Zero(t, rep.Sweeps)
	assert.Zero(t, rep.Units)
	assert.Zero(t, ticks)
}

func TestRoundRobin_TicksOncePerUnit(t *testing.T) {
	tbl := NewTable(2)
	_, _ = tbl.Create("a", 3)
	_, _ = tbl.Create("b", 4)

	ticks := 0
	ticker := TickerFunc(func(context.Context) error { ticks++; return nil })
	rep, err := RoundRobin{Quantum: 2, Ticker: ticker}.Run(context.Background(), tbl)
	require.NoError(t, err)
	assert.Equal(t, 7, ticks)
	assert.Equal(t, rep.Units, ticks)
}

func TestRoundRobin_CancelStopsBeforeNextUnit(t *testing.T) {
	tbl := NewTable(2)
	_, _ = tbl.Create("long", 10)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	rr := RoundRobin{
		Quantum: 4,
		Ticker:  NoDelay,
		Observer: func(ev Event) {
			if ev.Kind == EventUnit && ev.Remaining == 7 {
				cancel()
			}
		},
	}
	rep, err := rr.Run(ctx, tbl)
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 3, rep.Units)

	p, _ := tbl.Lookup(0)
	assert.Equal(t, 7, p.Remaining)
	assert.True(t, p.Alive)
	assert.Equal(t, 1, tbl.Count())
}

func TestRoundRobin_TickerErrorPropagates(t *testing.T) {
	tbl := NewTable(1)
	_, _ = tbl.Create("a", 2)

	boom := errors.New("boom")
	rep, err := RoundRobin{Ticker: TickerFunc(func(context.Context) error { return boom })}.Run(context.Background(), tbl)
	require.ErrorIs(t, err, boom)
	assert.Zero(t, rep.Units)
}

func TestInterval_HonoursDeadline(t *testing.T) {
	tbl := NewTable(1)
	_, _ = tbl.Create("slow", 100)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()

	start := time.Now()
	rep, err := RoundRobin{Quantum: 100, Ticker: Interval(time.Hour)}.Run(ctx, tbl)
	require.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Zero(t, rep.Units)
	assert.Less(t, time.Since(start), 5*time.Second)
}

func TestInterval_NonPositiveIsNoDelay(t *testing.T) {
	assert.NotNil(t, Interval(0))
	require.NoError(t, Interval(-time.Second).Tick(context.Background()))
}

func TestEventKind_String(t *testing.T) {
	assert.Equal(t, "dispatch", EventDispatch.String())
	assert.Equal(t, "sweep", EventSweep.String())
	assert.Equal(t, "EventKind(42)", EventKind(42).String())
}
