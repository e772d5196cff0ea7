package timeline

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"
)

// View selects the geometry mode.
type View string

const (
	Desktop View = "desktop"
	Mobile  View = "mobile"
)

var ErrUnknownView = errors.New("unknown view")

// ParseView accepts "desktop" or "mobile", case-insensitively. Empty means
// desktop.
func ParseView(s string) (View, error) {
	switch View(strings.ToLower(strings.TrimSpace(s))) {
	case "", Desktop:
		return Desktop, nil
	case Mobile:
		return Mobile, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownView, s)
}

// TrackItem is the desktop geometry of one record. Rows count months down
// from the latest end date, starting at 1.
type TrackItem struct {
	Record         Record `json:"record"`
	Lane           int    `json:"lane"`
	Offset         int    `json:"offset"`
	Column         int    `json:"column"`
	RowStart       int    `json:"rowStart"`
	RowEnd         int    `json:"rowEnd"`
	DurationMonths int    `json:"durationMonths"`
	Top            int    `json:"top"`
	IsLeft         bool   `json:"isLeft"`
	StackOffset    int    `json:"stackOffset"`
	StackCount     int    `json:"stackCount"`
	Compact        bool   `json:"compact"`
	DotX           int    `json:"dotX"`
	ConnectorWidth int    `json:"connectorWidth"`
	Period         string `json:"period"`
	EndLabel       string `json:"endLabel"`
}

// LaneLine is the vertical rule drawn for a lane.
type LaneLine struct {
	Lane        int  `json:"lane"`
	Column      int  `json:"column"`
	MinRowStart int  `json:"minRowStart"`
	MaxRowEnd   int  `json:"maxRowEnd"`
	FullHeight  bool `json:"fullHeight"`
}

// StackGroup lists the records of one side that share a start row, in
// stacking order.
type StackGroup struct {
	IsLeft   bool     `json:"isLeft"`
	RowStart int      `json:"rowStart"`
	IDs      []string `json:"ids"`
}

// Layout is the output of ComputeLayout. Desktop layouts fill Items, Lanes
// and Stacks; mobile layouts fill Rows. Height is in pixels.
type Layout struct {
	View            View         `json:"view"`
	Items           []TrackItem  `json:"items"`
	Lanes           []LaneLine   `json:"lanes"`
	Stacks          []StackGroup `json:"stacks"`
	Rows            []Row        `json:"rows"`
	LaneCount       int          `json:"laneCount"`
	ColumnCount     int          `json:"columnCount"`
	TotalMonths     int          `json:"totalMonths"`
	Height          int          `json:"height"`
	ConnectorOffset int          `json:"connectorOffset"`
	MonthHeight     int          `json:"monthHeight"`
	LaneWidth       int          `json:"laneWidth"`
}

// Left returns the desktop items drawn left of the grid.
func (l Layout) Left() []TrackItem {
	return l.side(true)
}

// Right returns the desktop items drawn right of the grid.
func (l Layout) Right() []TrackItem {
	return l.side(false)
}

func (l Layout) side(left bool) []TrackItem {
	var items []TrackItem
	for _, item := range l.Items {
		if item.IsLeft == left {
			items = append(items, item)
		}
	}
	return items
}

// GridWidth is the pixel width of the lane grid.
func (l Layout) GridWidth() int {
	return l.ColumnCount * l.LaneWidth
}

type prepared struct {
	record   Record
	interval Interval
	lane     int
}

// prepare resolves intervals and lanes and orders records by end date, most
// recent first. Ties keep input order.
func prepare(records []Record, now time.Time) []prepared {
	intervals := make([]Interval, len(records))
	for i, r := range records {
		intervals[i] = ResolveInterval(r, now)
	}
	lanes := assignLanes(records, intervals)

	entries := make([]prepared, len(records))
	for i, r := range records {
		entries[i] = prepared{record: r, interval: intervals[i], lane: lanes[i]}
	}
	sort.SliceStable(entries, func(a, b int) bool {
		return entries[a].interval.End.After(entries[b].interval.End)
	})
	return entries
}

// ComputeLayout lays out records for the given view. It never fails: bad
// dates degrade to now and reversed spans to one month.
func ComputeLayout(records []Record, now time.Time, view View, config Config) Layout {
	layout := Layout{
		View:            view,
		Items:           []TrackItem{},
		Lanes:           []LaneLine{},
		Stacks:          []StackGroup{},
		Rows:            []Row{},
		ConnectorOffset: config.connectorOffset(),
		MonthHeight:     config.MonthHeight,
		LaneWidth:       config.LaneWidth,
	}
	if len(records) == 0 {
		return layout
	}

	entries := prepare(records, now)
	if view == Mobile {
		layout.Rows, layout.Height = mobileRows(entries, config)
		return layout
	}
	buildDesktop(&layout, entries, config)
	return layout
}

func buildDesktop(layout *Layout, entries []prepared, config Config) {
	maxEnd := entries[0].interval.End
	minStart := entries[0].interval.Start
	laneCount := 0
	for _, e := range entries {
		if e.interval.End.After(maxEnd) {
			maxEnd = e.interval.End
		}
		if e.interval.Start.Before(minStart) {
			minStart = e.interval.Start
		}
		laneCount = max(laneCount, e.lane+1)
	}

	offsets := LaneOffsets(laneCount)
	maxOffset := 0
	for _, offset := range offsets {
		maxOffset = max(maxOffset, abs(offset))
	}
	layout.LaneCount = laneCount
	layout.ColumnCount = maxOffset*2 + 1
	layout.TotalMonths = max(1, MonthDiff(minStart, maxEnd)+1)
	gridWidth := layout.GridWidth()

	lanes := make([][]int, laneCount)
	for i, e := range entries {
		endIndex := max(0, MonthDiff(e.interval.End, maxEnd))
		startIndex := max(endIndex, MonthDiff(e.interval.Start, maxEnd))
		duration := max(1, startIndex-endIndex+1)
		rowStart := endIndex + 1
		offset := offsets[e.lane]

		isLeft := offset < 0
		if laneCount == 1 || offset == 0 {
			isLeft = i%2 == 0
		}

		column := offset + maxOffset
		dotX := column*config.LaneWidth + config.LaneWidth/2
		connector := gridWidth - dotX
		if isLeft {
			connector = dotX
		}

		layout.Items = append(layout.Items, TrackItem{
			Record:         e.record,
			Lane:           e.lane,
			Offset:         offset,
			Column:         column,
			RowStart:       rowStart,
			RowEnd:         rowStart + duration,
			DurationMonths: duration,
			Top:            (rowStart - 1) * config.MonthHeight,
			IsLeft:         isLeft,
			DotX:           dotX,
			ConnectorWidth: connector,
			Period:         Period(e.record),
			EndLabel:       EndLabel(e.record),
		})
		lanes[e.lane] = append(lanes[e.lane], i)
		// reversed spans can reach below the earliest start
		layout.TotalMonths = max(layout.TotalMonths, rowStart+duration-1)
	}
	layout.Height = layout.TotalMonths * config.MonthHeight

	layout.Stacks = append(layout.Stacks, stackSide(layout.Items, true, config)...)
	layout.Stacks = append(layout.Stacks, stackSide(layout.Items, false, config)...)
	layout.Lanes = append(layout.Lanes, laneLines(layout.Items, lanes, maxOffset)...)
}

// stackSide groups one side's items by start row and shifts every group of
// two or more outward by StackGap per position, ordered by column.
func stackSide(items []TrackItem, left bool, config Config) []StackGroup {
	byRow := make(map[int][]int)
	var rows []int
	for i, item := range items {
		if item.IsLeft != left {
			continue
		}
		if _, ok := byRow[item.RowStart]; !ok {
			rows = append(rows, item.RowStart)
		}
		byRow[item.RowStart] = append(byRow[item.RowStart], i)
	}
	sort.Ints(rows)

	var groups []StackGroup
	for _, row := range rows {
		members := byRow[row]
		if len(members) < 2 {
			continue
		}
		sort.SliceStable(members, func(a, b int) bool {
			return items[members[a]].Column < items[members[b]].Column
		})
		group := StackGroup{IsLeft: left, RowStart: row}
		for n, i := range members {
			items[i].StackOffset = n * config.StackGap
			items[i].StackCount = len(members)
			items[i].Compact = true
			items[i].ConnectorWidth += items[i].StackOffset
			group.IDs = append(group.IDs, items[i].Record.ID)
		}
		groups = append(groups, group)
	}
	return groups
}

func laneLines(items []TrackItem, lanes [][]int, centerColumn int) []LaneLine {
	var lines []LaneLine
	for lane, members := range lanes {
		if len(members) == 0 {
			continue
		}
		line := LaneLine{
			Lane:        lane,
			Column:      items[members[0]].Column,
			MinRowStart: items[members[0]].RowStart,
			MaxRowEnd:   items[members[0]].RowEnd,
		}
		for _, i := range members[1:] {
			line.MinRowStart = min(line.MinRowStart, items[i].RowStart)
			line.MaxRowEnd = max(line.MaxRowEnd, items[i].RowEnd)
		}
		line.FullHeight = line.Column == centerColumn
		lines = append(lines, line)
	}
	return lines
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
