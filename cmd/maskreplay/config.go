package main

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/gogpu/maskedit"
)

// Config is the TOML configuration file of maskreplay.
//
//	[editor]
//	max_history_steps = 15
//	line_width = 25
//	snap_radius = 10
//	axis_lock_threshold = 5
//	duplicate_rule = "exact"   # or "aligned"
//	full_buffer_quantize = false
//	fetch_timeout_seconds = 30
//
//	[output]
//	dir = "out"
//	pdf = true
//	binary_mask = true
type Config struct {
	Editor EditorConfig `toml:"editor"`
	Output OutputConfig `toml:"output"`
}

// EditorConfig holds editor settings. Zero values keep the editor
// defaults.
type EditorConfig struct {
	MaxHistorySteps     int     `toml:"max_history_steps"`
	LineWidth           float64 `toml:"line_width"`
	SnapRadius          float64 `toml:"snap_radius"`
	AxisLockThreshold   float64 `toml:"axis_lock_threshold"`
	DuplicateRule       string  `toml:"duplicate_rule"`
	FullBufferQuantize  bool    `toml:"full_buffer_quantize"`
	FetchTimeoutSeconds int     `toml:"fetch_timeout_seconds"`
}

// OutputConfig selects what is written after the replay.
type OutputConfig struct {
	Dir        string `toml:"dir"`
	PDF        bool   `toml:"pdf"`
	BinaryMask bool   `toml:"binary_mask"`
}

// LoadConfig reads a TOML configuration file. Unknown keys are errors.
func LoadConfig(path string) (Config, error) {
	var cfg Config
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	if keys := md.Undecoded(); len(keys) > 0 {
		names := make([]string, len(keys))
		for i, k := range keys {
			names[i] = k.String()
		}
		return Config{}, fmt.Errorf("config %s: unknown keys: %s", path, strings.Join(names, ", "))
	}
	return cfg, nil
}

// Options converts the editor settings to editor options.
func (c EditorConfig) Options() ([]maskedit.Option, error) {
	opts := []maskedit.Option{
		maskedit.WithMaxHistorySteps(c.MaxHistorySteps),
		maskedit.WithLineWidth(c.LineWidth),
		maskedit.WithSnapRadius(c.SnapRadius),
		maskedit.WithAxisLockThreshold(c.AxisLockThreshold),
		maskedit.WithFullBufferQuantize(c.FullBufferQuantize),
	}

	switch strings.ToLower(c.DuplicateRule) {
	case "", "exact":
		opts = append(opts, maskedit.WithDuplicateRule(maskedit.RejectExactDuplicate))
	case "aligned":
		opts = append(opts, maskedit.WithDuplicateRule(maskedit.RejectAlignedClick))
	default:
		return nil, fmt.Errorf("unknown duplicate_rule %q (want exact or aligned)", c.DuplicateRule)
	}

	if c.FetchTimeoutSeconds > 0 {
		opts = append(opts, maskedit.WithHTTPClient(&http.Client{
			Timeout: time.Duration(c.FetchTimeoutSeconds) * time.Second,
		}))
	}
	return opts, nil
}
