package timeline

// Row is the single-column geometry of one record. All values are pixels;
// SegmentTop and StartLabelTop are relative to Top.
type Row struct {
	Record         Record `json:"record"`
	Top            int    `json:"top"`
	DurationMonths int    `json:"durationMonths"`
	DurationHeight int    `json:"durationHeight"`
	SegmentTop     int    `json:"segmentTop"`
	StartLabelTop  int    `json:"startLabelTop"`
	RowHeight      int    `json:"rowHeight"`
	IsLeft         bool   `json:"isLeft"`
	Period         string `json:"period"`
	EndLabel       string `json:"endLabel"`
}

// mobileRows stacks entries top to bottom in end-date order. Each row is as
// tall as its own duration plus labels. The gap to the next row covers the
// months between them but never drops below MinGap.
func mobileRows(entries []prepared, config Config) ([]Row, int) {
	rows := make([]Row, 0, len(entries))
	segmentTop := config.DotOffset + config.DotSize + config.SegmentGap
	cursor := 0

	for i, e := range entries {
		duration := max(1, MonthDiff(e.interval.Start, e.interval.End)+1)
		durationHeight := duration * config.MonthHeight
		startLabelTop := segmentTop + durationHeight + config.LabelGap
		row := Row{
			Record:         e.record,
			Top:            cursor,
			DurationMonths: duration,
			DurationHeight: durationHeight,
			SegmentTop:     segmentTop,
			StartLabelTop:  startLabelTop,
			RowHeight:      startLabelTop + config.LabelHeight,
			IsLeft:         i%2 == 0,
			Period:         Period(e.record),
			EndLabel:       EndLabel(e.record),
		}
		rows = append(rows, row)

		cursor += row.RowHeight
		if i+1 < len(entries) {
			next := entries[i+1]
			gapMonths := max(0, MonthDiff(next.interval.End, e.interval.Start)-1)
			cursor += max(config.MinGap, gapMonths*config.MonthHeight)
		}
	}
	return rows, cursor
}
