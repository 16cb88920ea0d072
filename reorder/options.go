package reorder

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// PopOutScale is the scale factor applied to the drag proxy while a row is
// lifted. Any positive factor is accepted; the named presets mirror common
// choices.
type PopOutScale float64

// Pop-out presets.
const (
	PopOutNone   PopOutScale = 1.00
	PopOutSmall  PopOutScale = 1.01
	PopOutMedium PopOutScale = 1.03
	PopOutBig    PopOutScale = 1.05
)

// ParsePopOutScale accepts a preset name ("none", "small", "medium", "big")
// or a positive decimal factor.
func ParsePopOutScale(s string) (PopOutScale, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "none":
		return PopOutNone, nil
	case "small":
		return PopOutSmall, nil
	case "", "medium":
		return PopOutMedium, nil
	case "big":
		return PopOutBig, nil
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: pop-out scale %q", ErrInvalidOptions, s)
	}
	if !finite(f) || f <= 0 {
		return 0, fmt.Errorf("%w: pop-out scale must be positive, got %v", ErrInvalidOptions, f)
	}
	return PopOutScale(f), nil
}

// Options configures a Controller.
type Options struct {
	// MinimumPressDuration is how long the pointer must be held before the
	// gesture source reports began. The controller only passes it on to the
	// gesture source; it runs no timer itself.
	MinimumPressDuration time.Duration

	// RestrictMovementAxis makes the proxy follow the pointer on the scroll
	// (vertical) axis only.
	RestrictMovementAxis bool

	// PopOutScale is applied to the proxy during the lift.
	PopOutScale PopOutScale

	// RowHitTestMargin is the hysteresis used by the crossing rule and the
	// header hit-test, in host units.
	RowHitTestMargin float64

	// LiftDuration and DropDuration are the lengths of the begin and end
	// animations.
	LiftDuration time.Duration
	DropDuration time.Duration

	// Logger receives debug output about the drag. Defaults to a no-op logger.
	Logger Logger
}

// DefaultOptions returns the options used when none are supplied.
func DefaultOptions() Options {
	return Options{
		MinimumPressDuration: 500 * time.Millisecond,
		PopOutScale:          PopOutMedium,
		RowHitTestMargin:     5,
		LiftDuration:         250 * time.Millisecond,
		DropDuration:         300 * time.Millisecond,
		Logger:               nopLogger{},
	}
}

// Validate checks option constraints.
func (o *Options) Validate() error {
	if o.MinimumPressDuration < 0 {
		return fmt.Errorf("%w: minimum press duration must be >= 0, got %v", ErrInvalidOptions, o.MinimumPressDuration)
	}
	if !finite(float64(o.PopOutScale)) || o.PopOutScale <= 0 {
		return fmt.Errorf("%w: pop-out scale must be positive, got %v", ErrInvalidOptions, float64(o.PopOutScale))
	}
	if !finite(o.RowHitTestMargin) || o.RowHitTestMargin < 0 {
		return fmt.Errorf("%w: row hit-test margin must be >= 0, got %v", ErrInvalidOptions, o.RowHitTestMargin)
	}
	if o.LiftDuration < 0 || o.DropDuration < 0 {
		return fmt.Errorf("%w: animation durations must be >= 0", ErrInvalidOptions)
	}
	return nil
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// Option configures Options.
type Option func(*Options)

// WithOptions replaces all options at once. Later options still apply on top.
func WithOptions(opts Options) Option {
	return func(o *Options) {
		logger := o.Logger
		*o = opts
		if o.Logger == nil {
			o.Logger = logger
		}
	}
}

// WithMinimumPressDuration sets the hold time before a drag begins.
func WithMinimumPressDuration(d time.Duration) Option {
	return func(o *Options) {
		o.MinimumPressDuration = d
	}
}

// WithRestrictMovementAxis sets whether the proxy only follows the vertical
// axis.
func WithRestrictMovementAxis(restrict bool) Option {
	return func(o *Options) {
		o.RestrictMovementAxis = restrict
	}
}

// WithPopOutScale sets the lift scale factor.
func WithPopOutScale(scale PopOutScale) Option {
	return func(o *Options) {
		o.PopOutScale = scale
	}
}

// WithRowHitTestMargin sets the crossing hysteresis.
func WithRowHitTestMargin(margin float64) Option {
	return func(o *Options) {
		o.RowHitTestMargin = margin
	}
}

// WithAnimationDurations sets the lift and drop animation lengths.
func WithAnimationDurations(lift, drop time.Duration) Option {
	return func(o *Options) {
		o.LiftDuration = lift
		o.DropDuration = drop
	}
}

// WithLogger sets the logger. A nil logger restores the no-op logger.
func WithLogger(logger Logger) Option {
	return func(o *Options) {
		if logger == nil {
			logger = nopLogger{}
		}
		o.Logger = logger
	}
}
