package timeline

import (
	"fmt"
	"strings"
)

const (
	svgGutter     = 48 // space between the side columns and the lane grid
	svgCardHeight = 56
	svgMargin     = 24
)

// RenderSVG draws a desktop layout: lane rules, one segment per record,
// connectors and a card per record. Mobile layouts render as an empty canvas
// since they carry no lane geometry.
func RenderSVG(layout Layout, config Config) string {
	maxStack := 0
	for _, item := range layout.Items {
		maxStack = max(maxStack, item.StackOffset)
	}
	sideWidth := config.CardWidth + maxStack
	gridX := svgMargin + sideWidth + svgGutter
	width := gridX + layout.GridWidth() + svgGutter + sideWidth + svgMargin
	height := svgMargin*2 + layout.Height
	if len(layout.Items) > 0 {
		height += svgCardHeight
	}

	var svg strings.Builder
	svg.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg width="%d" height="%d" xmlns="http://www.w3.org/2000/svg">
<rect width="100%%" height="100%%" fill="#0b0d12"/>
<defs>
<style>
.role-text { font-family: Arial, sans-serif; font-size: 14px; font-weight: bold; fill: #f5f5f5; }
.company-text { font-family: Arial, sans-serif; font-size: 12px; fill: #c8c8c8; }
.date-text { font-family: Arial, sans-serif; font-size: 11px; fill: #9a9a9a; }
</style>
</defs>
`, width, height))

	top := svgMargin
	rowY := func(row int) int { return top + (row-1)*config.MonthHeight }

	for _, line := range layout.Lanes {
		x := gridX + line.Column*config.LaneWidth + config.LaneWidth/2
		y1, y2 := rowY(line.MinRowStart), rowY(line.MaxRowEnd)
		if line.FullHeight {
			y1, y2 = top, top+layout.Height
		}
		svg.WriteString(fmt.Sprintf(`<line x1="%d" y1="%d" x2="%d" y2="%d" stroke="#3a3f4b" stroke-width="1"/>`+"\n",
			x, y1, x, y2))
	}

	for _, item := range layout.Items {
		drawTrackItem(&svg, layout, item, gridX, top, sideWidth, config)
	}

	svg.WriteString("</svg>")
	return svg.String()
}

func drawTrackItem(svg *strings.Builder, layout Layout, item TrackItem, gridX, top, sideWidth int, config Config) {
	dotX := gridX + item.DotX
	y1 := top + item.Top
	y2 := y1 + item.DurationMonths*config.MonthHeight

	svg.WriteString(fmt.Sprintf(`<line x1="%d" y1="%d" x2="%d" y2="%d" stroke="#ffffff" stroke-width="3" stroke-linecap="round"/>`+"\n",
		dotX, y1, dotX, y2))
	svg.WriteString(fmt.Sprintf(`<circle cx="%d" cy="%d" r="%d" fill="#ffffff"/>`+"\n",
		dotX, y1, config.DotSize/2))

	cardWidth := config.CardWidth
	if item.Compact {
		cardWidth = config.CompactWidth
	}
	var cardX, edgeX int
	anchor := "start"
	if item.IsLeft {
		edgeX = svgMargin + sideWidth - item.StackOffset
		cardX = edgeX - cardWidth
		anchor = "end"
	} else {
		edgeX = gridX + layout.GridWidth() + svgGutter + item.StackOffset
		cardX = edgeX
	}
	connectorY := y1 + min(svgCardHeight/2, layout.ConnectorOffset)
	svg.WriteString(fmt.Sprintf(`<line x1="%d" y1="%d" x2="%d" y2="%d" stroke="#ffffff" stroke-opacity="0.5" stroke-width="1"/>`+"\n",
		edgeX, connectorY, dotX, connectorY))

	svg.WriteString(fmt.Sprintf(`<rect x="%d" y="%d" width="%d" height="%d" rx="8" fill="#161a22" stroke="#3a3f4b"/>`+"\n",
		cardX, y1, cardWidth, svgCardHeight))
	textX := cardX + 12
	if item.IsLeft {
		textX = cardX + cardWidth - 12
	}
	svg.WriteString(fmt.Sprintf(`<text x="%d" y="%d" text-anchor="%s" class="role-text">%s</text>`+"\n",
		textX, y1+20, anchor, escapeXML(item.Record.Role)))
	svg.WriteString(fmt.Sprintf(`<text x="%d" y="%d" text-anchor="%s" class="company-text">%s</text>`+"\n",
		textX, y1+36, anchor, escapeXML(item.Record.Company)))
	svg.WriteString(fmt.Sprintf(`<text x="%d" y="%d" text-anchor="%s" class="date-text">%s</text>`+"\n",
		textX, y1+50, anchor, escapeXML(item.Period)))
}

// escapeXML escapes the five XML special characters.
func escapeXML(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	s = strings.ReplaceAll(s, "\"", "&quot;")
	s = strings.ReplaceAll(s, "'", "&apos;")
	return s
}
