package timeline

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the pixel constants of the timeline. One row unit (a month)
// is MonthHeight pixels tall.
type Config struct {
	MonthHeight  int `yaml:"month_height" json:"monthHeight"`
	LabelHeight  int `yaml:"label_height" json:"labelHeight"`
	DotSize      int `yaml:"dot_size" json:"dotSize"`
	DotOffset    int `yaml:"dot_offset" json:"dotOffset"`
	SegmentGap   int `yaml:"segment_gap" json:"segmentGap"`
	LabelGap     int `yaml:"label_gap" json:"labelGap"`
	MinGap       int `yaml:"min_gap" json:"minGap"`             // smallest gap between mobile rows
	LaneWidth    int `yaml:"lane_width" json:"laneWidth"`       // width of one grid column
	StackGap     int `yaml:"stack_gap" json:"stackGap"`         // horizontal shift per stacked card
	DetailMargin int `yaml:"detail_margin" json:"detailMargin"` // added to the tallest detail panel
	CardWidth    int `yaml:"card_width" json:"cardWidth"`       // SVG only
	CompactWidth int `yaml:"compact_width" json:"compactWidth"` // SVG only
}

// DefaultConfig returns the stock geometry.
func DefaultConfig() Config {
	return Config{
		MonthHeight:  28,
		LabelHeight:  24,
		DotSize:      10,
		DotOffset:    28,
		SegmentGap:   12,
		LabelGap:     12,
		MinGap:       24 + 16,
		LaneWidth:    96,
		StackGap:     96 * 4,
		DetailMargin: 16,
		CardWidth:    520,
		CompactWidth: 360,
	}
}

// LoadConfig reads a YAML geometry file over the defaults. An empty path
// returns the defaults.
func LoadConfig(path string) (Config, error) {
	config := DefaultConfig()
	if path == "" {
		return config, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("error reading timeline config: %w", err)
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return Config{}, fmt.Errorf("error parsing timeline config: %w", err)
	}
	if config.MonthHeight <= 0 || config.LaneWidth <= 0 {
		return Config{}, fmt.Errorf("timeline config: month_height and lane_width must be positive")
	}
	// dots sit on the lane center in whole pixels
	if config.LaneWidth%2 != 0 {
		return Config{}, fmt.Errorf("timeline config: lane_width must be even, got %d", config.LaneWidth)
	}
	return config, nil
}

// connectorOffset is the vertical offset of a card's connector line.
func (c Config) connectorOffset() int {
	return max(16, (c.MonthHeight*6+5)/10)
}
