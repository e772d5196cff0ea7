package timeline

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func itemByID(t *testing.T, layout Layout, id string) TrackItem {
	t.Helper()
	for _, item := range layout.Items {
		if item.Record.ID == id {
			return item
		}
	}
	t.Fatalf("no item %q", id)
	return TrackItem{}
}

func TestComputeLayoutEmpty(t *testing.T) {
	for _, view := range []View{Desktop, Mobile} {
		layout := ComputeLayout(nil, testNow, view, DefaultConfig())

		assert.Equal(t, 0, layout.LaneCount)
		assert.Equal(t, 0, layout.Height)
		assert.Equal(t, 0, layout.TotalMonths)
		assert.Empty(t, layout.Items)
		assert.Empty(t, layout.Rows)
		assert.NotNil(t, layout.Items)
		assert.NotNil(t, layout.Lanes)
	}
}

func TestComputeLayoutScenario(t *testing.T) {
	layout := ComputeLayout(scenarioRecords(), testNow, Desktop, DefaultConfig())

	require.Len(t, layout.Items, 3)
	assert.Equal(t, []string{"C", "B", "A"}, []string{
		layout.Items[0].Record.ID, layout.Items[1].Record.ID, layout.Items[2].Record.ID,
	})
	assert.Equal(t, 3, layout.LaneCount)
	assert.Equal(t, 3, layout.ColumnCount)
	assert.Equal(t, 42, layout.TotalMonths)
	assert.Equal(t, 42*28, layout.Height)

	c := itemByID(t, layout, "C")
	assert.Equal(t, 2, c.Lane)
	assert.Equal(t, 1, c.Offset)
	assert.Equal(t, 2, c.Column)
	assert.Equal(t, 1, c.RowStart)
	assert.Equal(t, 25, c.RowEnd)
	assert.Equal(t, 24, c.DurationMonths)
	assert.Equal(t, 0, c.Top)
	assert.False(t, c.IsLeft)
	assert.Equal(t, 240, c.DotX)
	assert.Equal(t, 48, c.ConnectorWidth)
	assert.Equal(t, "Present", c.EndLabel)

	b := itemByID(t, layout, "B")
	assert.Equal(t, 1, b.Lane)
	assert.Equal(t, 0, b.Column)
	assert.Equal(t, 31, b.RowStart)
	assert.Equal(t, 41, b.RowEnd)
	assert.Equal(t, 10, b.DurationMonths)
	assert.Equal(t, 30*28, b.Top)
	assert.True(t, b.IsLeft)

	a := itemByID(t, layout, "A")
	assert.Equal(t, 0, a.Lane)
	assert.Equal(t, 1, a.Column)
	assert.Equal(t, 37, a.RowStart)
	assert.Equal(t, 43, a.RowEnd)
	assert.Equal(t, 6, a.DurationMonths)
	assert.True(t, a.IsLeft, "trunk item at an even position goes left")
	assert.Equal(t, 144, a.ConnectorWidth)

	assert.Less(t, c.RowStart, b.RowStart)
	assert.Less(t, c.RowStart, a.RowStart)

	assert.Equal(t, []LaneLine{
		{Lane: 0, Column: 1, MinRowStart: 37, MaxRowEnd: 43, FullHeight: true},
		{Lane: 1, Column: 0, MinRowStart: 31, MaxRowEnd: 41},
		{Lane: 2, Column: 2, MinRowStart: 1, MaxRowEnd: 25},
	}, layout.Lanes)
	assert.Empty(t, layout.Stacks)
	assert.Len(t, layout.Left(), 2)
	assert.Len(t, layout.Right(), 1)
	assert.Equal(t, 17, layout.ConnectorOffset)
}

func TestComputeLayoutDurationFloor(t *testing.T) {
	tests := []struct {
		name   string
		record Record
	}{
		{"same month", Record{ID: "x", Start: "Jan 2024", End: "Jan 2024"}},
		{"end before start", Record{ID: "x", Start: "Jun 2024", End: "Jan 2024"}},
		{"unparseable start", Record{ID: "x", Start: "someday", End: "Present"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			layout := ComputeLayout([]Record{tt.record}, testNow, Desktop, DefaultConfig())

			require.Len(t, layout.Items, 1)
			item := layout.Items[0]
			assert.Equal(t, 1, item.DurationMonths)
			assert.Equal(t, 1, item.RowStart)
			assert.Equal(t, 2, item.RowEnd)
			assert.True(t, item.IsLeft)
			assert.Equal(t, 1, layout.LaneCount)
			assert.Equal(t, 1, layout.ColumnCount)
			assert.Equal(t, 1, layout.TotalMonths)
		})
	}
}

func TestComputeLayoutReversedSpanStaysOnGrid(t *testing.T) {
	layout := ComputeLayout([]Record{
		{ID: "recent", Start: "Jan 2024", End: "Mar 2024"},
		{ID: "reversed", Start: "Feb 2024", End: "Jan 2022"},
	}, testNow, Desktop, DefaultConfig())

	for _, item := range layout.Items {
		assert.LessOrEqual(t, item.RowEnd-1, layout.TotalMonths, item.Record.ID)
	}
}

func TestComputeLayoutStacking(t *testing.T) {
	records := []Record{
		{ID: "X", Start: "Jan 2020", End: "Dec 2020"},
		{ID: "Y", Start: "Feb 2020", End: "Dec 2020"},
		{ID: "Z", Start: "Mar 2020", End: "Dec 2020"},
	}
	layout := ComputeLayout(records, testNow, Desktop, DefaultConfig())

	x, y, z := itemByID(t, layout, "X"), itemByID(t, layout, "Y"), itemByID(t, layout, "Z")
	assert.True(t, x.IsLeft)
	assert.True(t, y.IsLeft)
	assert.False(t, z.IsLeft)

	require.Len(t, layout.Stacks, 1)
	assert.Equal(t, StackGroup{IsLeft: true, RowStart: 1, IDs: []string{"Y", "X"}}, layout.Stacks[0])

	assert.Equal(t, 0, y.StackOffset)
	assert.Equal(t, 384, x.StackOffset)
	assert.Equal(t, 2, x.StackCount)
	assert.True(t, x.Compact)
	assert.True(t, y.Compact)
	assert.Equal(t, 48, y.ConnectorWidth)
	assert.Equal(t, 144+384, x.ConnectorWidth)

	assert.False(t, z.Compact)
	assert.Equal(t, 0, z.StackOffset)
}

func TestComputeLayoutMobile(t *testing.T) {
	layout := ComputeLayout([]Record{
		{ID: "old", Start: "Jan 2020", End: "Mar 2020"},
		{ID: "new", Start: "Jan 2022", End: "Jun 2022"},
	}, testNow, Mobile, DefaultConfig())

	assert.Empty(t, layout.Items)
	require.Len(t, layout.Rows, 2)

	first, second := layout.Rows[0], layout.Rows[1]
	assert.Equal(t, "new", first.Record.ID)
	assert.Equal(t, 0, first.Top)
	assert.Equal(t, 6, first.DurationMonths)
	assert.Equal(t, 168, first.DurationHeight)
	assert.Equal(t, 50, first.SegmentTop)
	assert.Equal(t, 230, first.StartLabelTop)
	assert.Equal(t, 254, first.RowHeight)
	assert.True(t, first.IsLeft)

	assert.Equal(t, "old", second.Record.ID)
	assert.Equal(t, 254+21*28, second.Top)
	assert.Equal(t, 170, second.RowHeight)
	assert.False(t, second.IsLeft)
	assert.Equal(t, second.Top+second.RowHeight, layout.Height)
}

func TestComputeLayoutMobileMinGap(t *testing.T) {
	layout := ComputeLayout([]Record{
		{ID: "a", Start: "Jan 2022", End: "Jun 2022"},
		{ID: "b", Start: "Nov 2021", End: "Dec 2021"},
	}, testNow, Mobile, DefaultConfig())

	require.Len(t, layout.Rows, 2)
	assert.Equal(t, layout.Rows[0].RowHeight+40, layout.Rows[1].Top)
}

func TestParseView(t *testing.T) {
	v, err := ParseView("")
	require.NoError(t, err)
	assert.Equal(t, Desktop, v)

	v, err = ParseView(" Mobile ")
	require.NoError(t, err)
	assert.Equal(t, Mobile, v)

	_, err = ParseView("tablet")
	assert.True(t, errors.Is(err, ErrUnknownView))
}
