package timeline

import (
	"sort"
	"time"
)

// LaneAssignment maps record ids to lanes. Lane 0 is the trunk.
type LaneAssignment struct {
	Lanes map[string]int
	Count int
}

// Lane returns the lane of id, or 0 when id was never assigned.
func (a LaneAssignment) Lane(id string) int {
	return a.Lanes[id]
}

// AssignLanes packs records into lanes in start order: each record takes the
// lowest lane whose last occupant ended strictly before it starts, or opens a
// new lane. Forced-parallel records are skipped by the packing and each get
// their own lane after the packed ones, in input order.
func AssignLanes(records []Record, now time.Time) LaneAssignment {
	intervals := make([]Interval, len(records))
	for i, r := range records {
		intervals[i] = ResolveInterval(r, now)
	}
	lanes := assignLanes(records, intervals)
	a := LaneAssignment{Lanes: make(map[string]int, len(records))}
	for i, r := range records {
		a.Lanes[r.ID] = lanes[i]
		if lanes[i]+1 > a.Count {
			a.Count = lanes[i] + 1
		}
	}
	return a
}

// assignLanes returns the lane for each record index.
func assignLanes(records []Record, intervals []Interval) []int {
	lanes := make([]int, len(records))
	var auto, forced []int
	for i, r := range records {
		if r.ForceParallel {
			forced = append(forced, i)
		} else {
			auto = append(auto, i)
		}
	}

	sort.SliceStable(auto, func(a, b int) bool {
		return intervals[auto[a]].Start.Before(intervals[auto[b]].Start)
	})

	var laneEnds []time.Time
	for _, i := range auto {
		assigned := -1
		for lane, end := range laneEnds {
			if intervals[i].Start.After(end) {
				assigned = lane
				break
			}
		}
		if assigned == -1 {
			assigned = len(laneEnds)
			laneEnds = append(laneEnds, intervals[i].End)
		} else {
			laneEnds[assigned] = intervals[i].End
		}
		lanes[i] = assigned
	}

	for n, i := range forced {
		lanes[i] = len(laneEnds) + n
	}
	return lanes
}

// LaneOffsets maps lanes to column offsets from the trunk: 0, -1, +1, -2, +2...
func LaneOffsets(count int) []int {
	offsets := make([]int, 0, count)
	if count > 0 {
		offsets = append(offsets, 0)
	}
	for step := 1; len(offsets) < count; step++ {
		offsets = append(offsets, -step)
		if len(offsets) < count {
			offsets = append(offsets, step)
		}
	}
	return offsets
}
