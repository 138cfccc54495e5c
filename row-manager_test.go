package chat

import (
	"image"
	"testing"
	"time"

	"gioui.org/io/system"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/unit"
)

type testRow struct {
	id string
}

func (r testRow) ID() RowID {
	return RowID(r.id)
}

type testRows []testRow

func (r testRows) Len() int {
	return len(r)
}

func (r testRows) At(index int) Row {
	return r[index]
}

type counter struct {
	laidOut int
}

func TestRowManagerKeysStateByID(t *testing.T) {
	var ops op.Ops
	gtx := layout.NewContext(&ops, system.FrameEvent{
		Now: time.Now(),
		Metric: unit.Metric{
			PxPerDp: 1,
			PxPerSp: 1,
		},
		Size: image.Pt(100, 100),
	})
	allocations := 0
	rows := testRows{{id: "a"}, {id: ""}, {id: "b"}}
	m := NewManager(rows,
		func(Row) interface{} {
			allocations++
			return &counter{}
		},
		func(r Row, state interface{}) layout.Widget {
			if c, ok := state.(*counter); ok {
				c.laidOut++
			}
			return func(gtx layout.Context) layout.Dimensions {
				return layout.Dimensions{Size: image.Pt(10, 10)}
			}
		},
	)
	if m.Len() != 3 {
		t.Fatalf("expected 3 rows, got %d", m.Len())
	}
	for frame := 0; frame < 2; frame++ {
		for i := 0; i < m.Len(); i++ {
			m.Layout(gtx, i)
		}
	}
	if allocations != 2 {
		t.Errorf("expected state for the two identified rows only, got %d allocations", allocations)
	}
	// Reorder the source: state must follow the ID, not the index.
	m.Rows = testRows{{id: "b"}, {id: "a"}}
	m.Layout(gtx, 0)
	if allocations != 2 {
		t.Errorf("reordering must not reallocate state, got %d allocations", allocations)
	}
	state, ok := m.State("b")
	if !ok {
		t.Fatalf("expected state for row b")
	}
	if c := state.(*counter); c.laidOut != 3 {
		t.Errorf("expected row b to have been presented 3 times, got %d", c.laidOut)
	}
	if _, ok := m.State(NoID); ok {
		t.Errorf("stateless rows must not be allocated state")
	}
}

func TestRowManagerEmpty(t *testing.T) {
	var m RowManager
	if m.Len() != 0 {
		t.Errorf("expected zero length for a manager without rows")
	}
}
