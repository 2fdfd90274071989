package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/maskedit"
)

// Script is a recorded editing session.
//
//	width: 640
//	height: 480
//	base: photo.jpg
//	events:
//	  - {kind: press, x: 10, y: 10}
//	  - {kind: move, x: 200, y: 40}
//	  - {kind: release}
//	  - {kind: undo}
type Script struct {
	Width  int           `yaml:"width"`
	Height int           `yaml:"height"`
	Base   string        `yaml:"base"`
	Events []ScriptEvent `yaml:"events"`
}

// ScriptEvent is one event line of a script.
type ScriptEvent struct {
	Kind string  `yaml:"kind"`
	X    float64 `yaml:"x"`
	Y    float64 `yaml:"y"`
}

// ParseScript decodes and validates a YAML script.
func ParseScript(data []byte) (*Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if s.Width <= 0 || s.Height <= 0 {
		return nil, fmt.Errorf("parse script: invalid size %dx%d", s.Width, s.Height)
	}
	return &s, nil
}

// LoadScript reads and parses the script file at path.
func LoadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return nil, err
	}
	return ParseScript(data)
}

// Compile converts the script events to editor events.
func (s *Script) Compile() ([]maskedit.Event, error) {
	events := make([]maskedit.Event, 0, len(s.Events))
	for i, se := range s.Events {
		kind, err := maskedit.ParseEventKind(se.Kind)
		if err != nil {
			return nil, fmt.Errorf("event %d: %w", i, err)
		}
		events = append(events, maskedit.Event{Kind: kind, Pos: maskedit.Pt(se.X, se.Y)})
	}
	return events, nil
}
