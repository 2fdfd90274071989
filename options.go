package maskedit

import "net/http"

// Default editor settings.
const (
	DefaultLineWidth         = 25
	DefaultSnapRadius        = 10
	DefaultAxisLockThreshold = 5
)

// Option configures an Editor during creation.
// Use functional options to customize Editor behavior.
//
// Example:
//
//	// Default settings
//	e, err := maskedit.NewEditor(800, 600)
//
//	// Thinner brush and a longer history
//	e, err := maskedit.NewEditor(800, 600,
//	    maskedit.WithLineWidth(12),
//	    maskedit.WithMaxHistorySteps(50),
//	)
type Option func(*options)

// options holds optional configuration for Editor creation.
type options struct {
	maxHistorySteps   int
	lineWidth         float64
	snapRadius        float64
	axisLockThreshold float64
	duplicateRule     DuplicateRule
	fullQuantize      bool
	httpClient        *http.Client
}

// defaultOptions returns the default editor options.
func defaultOptions() options {
	return options{
		maxHistorySteps:   DefaultMaxHistorySteps,
		lineWidth:         DefaultLineWidth,
		snapRadius:        DefaultSnapRadius,
		axisLockThreshold: DefaultAxisLockThreshold,
		duplicateRule:     RejectExactDuplicate,
		httpClient:        http.DefaultClient,
	}
}

// WithMaxHistorySteps sets how many actions can be undone.
// Non-positive values keep the default of 15.
func WithMaxHistorySteps(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.maxHistorySteps = n
		}
	}
}

// WithLineWidth sets the brush diameter in pixels.
// Non-positive values keep the default of 25.
func WithLineWidth(w float64) Option {
	return func(o *options) {
		if w > 0 {
			o.lineWidth = w
		}
	}
}

// WithSnapRadius sets the distance, on both axes, within which a lasso
// click closes the polygon and the rubber band snaps to the first vertex.
// Non-positive values keep the default of 10.
func WithSnapRadius(r float64) Option {
	return func(o *options) {
		if r > 0 {
			o.snapRadius = r
		}
	}
}

// WithAxisLockThreshold sets how far the pointer must move on both axes
// after the modifier goes down before the brush axis is fixed.
// Non-positive values keep the default of 5.
func WithAxisLockThreshold(d float64) Option {
	return func(o *options) {
		if d > 0 {
			o.axisLockThreshold = d
		}
	}
}

// WithDuplicateRule selects which lasso clicks count as repeats of the
// previous vertex.
//
// Example:
//
//	// Reject clicks sharing either coordinate with the previous vertex
//	e, err := maskedit.NewEditor(800, 600,
//	    maskedit.WithDuplicateRule(maskedit.RejectAlignedClick))
func WithDuplicateRule(r DuplicateRule) Option {
	return func(o *options) {
		o.duplicateRule = r
	}
}

// WithFullBufferQuantize makes every draw rescan the whole mask layer
// instead of the rectangle the draw touched.
func WithFullBufferQuantize(enabled bool) Option {
	return func(o *options) {
		o.fullQuantize = enabled
	}
}

// WithHTTPClient sets the client used by Editor.LoadBaseImage.
// A nil client keeps http.DefaultClient.
func WithHTTPClient(c *http.Client) Option {
	return func(o *options) {
		if c != nil {
			o.httpClient = c
		}
	}
}
