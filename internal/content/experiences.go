// Package content holds the static site content: the about-me text and the
// experience records shown on the timeline.
package content

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Zachkp/portfolio/internal/timeline"
)

var ErrInvalidContent = errors.New("invalid content")

var experiences = []timeline.Record{
	{
		ID:      "target",
		Role:    "Presentation Expert",
		Company: "Target",
		LogoURL: "/images/TargetLogo.jpg",
		Start:   "Aug 2023",
		End:     "Present",
		Summary: "Store merchandising and backroom operations",
		Highlights: []string{
			"Executed over 300 merchandising transitions on tight timelines by organizing team workflows and adapting quickly to changing priorities",
			"Boosted operational efficiency by managing backroom inventory processes and streamlining communication between floor and logistics teams",
			"Enhanced pricing and signage accuracy across departments by standardizing daily checks and collaborating cross-functionally",
		},
		Tags: []string{"Operations", "Logistics"},
	},
	{
		ID:            "jasons",
		Role:          "Manager",
		Company:       "Jasons Catered Events",
		ForceParallel: true,
		LogoURL:       "/images/jasonsCateringLogo.png",
		Start:         "Aug 2016",
		End:           "Present",
		Summary:       "Part-time event management",
		Highlights: []string{
			"Improved client satisfaction by coordinating customized menus and ensuring all dietary requirements were accurately met",
			"Supported event technology by troubleshooting AV equipment and managing digital order tracking systems, reducing technical delays and improving communication",
			"Maintained supply inventory and coordinated timely delivery between venues, optimizing resource allocation and minimizing downtime.",
		},
		Tags: []string{"Management", "AV"},
	},
	{
		ID:      "wgu",
		Role:    "Bachelor of Computer Science",
		Company: "Western Governors University",
		LogoURL: "/images/WGU-logo.png",
		Start:   "Sept 2019",
		End:     "May 2023",
		Highlights: []string{
			"Graduated Magna Cum Laude with 3.8 GPA",
			"Relevant coursework: Data Structures, Algorithms, Web Development",
			"Senior project: Machine Learning recommendation system",
		},
		Tags: []string{"Education"},
	},
	{
		ID:      "comptia",
		Role:    "Project Management",
		Company: "Comptia",
		LogoURL: "/images/comptiaCert.png",
		Start:   "July 2022",
		End:     "Present",
		Highlights: []string{
			"Certified in agile project management methodology",
			"Verification code: SRRRPGBSWBRQCCDJ",
		},
		Tags: []string{"Certification"},
	},
}

// Experiences returns a copy of the built-in records.
func Experiences() []timeline.Record {
	out := make([]timeline.Record, len(experiences))
	copy(out, experiences)
	return out
}

type contentFile struct {
	Experiences []timeline.Record `yaml:"experiences"`
}

// LoadExperiences reads records from a YAML file with a top-level
// "experiences" list. An empty path returns the built-in records.
func LoadExperiences(path string) ([]timeline.Record, error) {
	if path == "" {
		return Experiences(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading content file: %w", err)
	}

	var file contentFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("error parsing content file: %w", err)
	}

	seen := make(map[string]bool, len(file.Experiences))
	for i, r := range file.Experiences {
		id := strings.TrimSpace(r.ID)
		if id == "" {
			return nil, fmt.Errorf("%w: experience %d has no id", ErrInvalidContent, i)
		}
		if seen[id] {
			return nil, fmt.Errorf("%w: duplicate experience id %q", ErrInvalidContent, id)
		}
		seen[id] = true
	}
	return file.Experiences, nil
}
