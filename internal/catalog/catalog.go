// Package catalog supplies the slide sequences fed to the slideshow, either
// the built-in hero slides or a YAML file.
package catalog

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/sealive/herodeck/internal/slideshow"
	"gopkg.in/yaml.v3"
)

// ErrEmpty is returned for a catalog without slides.
var ErrEmpty = errors.New("catalog: no slides")

// File is the on-disk layout of a slides file.
//
//	slides:
//	  - id: 1
//	    image: https://example.com/a.png
//	    title: Fast and reliable
//	    subtitle: Next-Gen Logistics
//	    description: ...
type File struct {
	Slides []slideshow.Slide `yaml:"slides"`
}

// Default returns the three hero slides shown on the landing page.
func Default() []slideshow.Slide {
	return []slideshow.Slide{
		{
			ID:          1,
			ImageRef:    "https://villaqrmenu.b-cdn.net/sealive/A%C3%A7%C4%B1k%20Kargo%20ve%20Sar%C4%B1%20Zemin.png",
			Title:       "Fast and reliable",
			Subtitle:    "Next-Gen Logistics",
			Description: "Experience the future of freight forwarding with AI-powered solutions",
		},
		{
			ID:          2,
			ImageRef:    "https://globefarer.qodeinteractive.com/wp-content/uploads/2021/10/cargo-home-slider-img-2-new.jpg",
			Title:       "Package safety",
			Subtitle:    "Smart Protection",
			Description: "Advanced security systems protecting your cargo 24/7 worldwide",
		},
		{
			ID:          3,
			ImageRef:    "https://globefarer.qodeinteractive.com/wp-content/uploads/2021/10/cargo-home-slider-img-3-new.jpg",
			Title:       "Always on time",
			Subtitle:    "Precision Delivery",
			Description: "Real-time tracking and predictive logistics for guaranteed delivery",
		},
	}
}

// Parse decodes and validates a slides document.
func Parse(data []byte) ([]slideshow.Slide, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("catalog: decode: %w", err)
	}
	if err := Validate(f.Slides); err != nil {
		return nil, err
	}
	return f.Slides, nil
}

// Load reads a slides file from path.
func Load(path string) ([]slideshow.Slide, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: read %s: %w", path, err)
	}
	slides, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return slides, nil
}

// LoadOrDefault loads path, or returns Default when path is empty.
func LoadOrDefault(path string) ([]slideshow.Slide, error) {
	if strings.TrimSpace(path) == "" {
		return Default(), nil
	}
	return Load(path)
}

// Validate checks that slides is non-empty, ids are unique and every slide
// has a title.
func Validate(slides []slideshow.Slide) error {
	if len(slides) == 0 {
		return ErrEmpty
	}
	seen := make(map[int]int, len(slides))
	for i, s := range slides {
		if prev, dup := seen[s.ID]; dup {
			return fmt.Errorf("catalog: slide %d reuses id %d from slide %d", i, s.ID, prev)
		}
		seen[s.ID] = i
		if strings.TrimSpace(s.Title) == "" {
			return fmt.Errorf("catalog: slide %d (id %d) has no title", i, s.ID)
		}
	}
	return nil
}
