package reorder

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePopOutScale(t *testing.T) {
	tests := []struct {
		in   string
		want PopOutScale
	}{
		{"none", PopOutNone},
		{"Small", PopOutSmall},
		{"", PopOutMedium},
		{"medium", PopOutMedium},
		{" big ", PopOutBig},
		{"1.2", 1.2},
	}
	for _, tt := range tests {
		got, err := ParsePopOutScale(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	for _, bad := range []string{"huge", "0", "-1", "NaN", "+Inf"} {
		_, err := ParsePopOutScale(bad)
		require.ErrorIs(t, err, ErrInvalidOptions, bad)
	}
}

func TestDefaultOptions(t *testing.T) {
	o := DefaultOptions()

	assert.Equal(t, 500*time.Millisecond, o.MinimumPressDuration)
	assert.Equal(t, PopOutMedium, o.PopOutScale)
	assert.False(t, o.RestrictMovementAxis)
	require.NoError(t, o.Validate())
}

func TestOptions_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Options)
	}{
		{"negative press", func(o *Options) { o.MinimumPressDuration = -time.Second }},
		{"zero scale", func(o *Options) { o.PopOutScale = 0 }},
		{"negative margin", func(o *Options) { o.RowHitTestMargin = -1 }},
		{"negative lift", func(o *Options) { o.LiftDuration = -time.Millisecond }},
		{"negative drop", func(o *Options) { o.DropDuration = -time.Millisecond }},
		{"NaN scale", func(o *Options) { o.PopOutScale = PopOutScale(math.NaN()) }},
		{"infinite scale", func(o *Options) { o.PopOutScale = PopOutScale(math.Inf(1)) }},
		{"NaN margin", func(o *Options) { o.RowHitTestMargin = math.NaN() }},
		{"infinite margin", func(o *Options) { o.RowHitTestMargin = math.Inf(1) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := DefaultOptions()
			tt.mutate(&o)
			require.ErrorIs(t, o.Validate(), ErrInvalidOptions)
		})
	}
}

func TestOptionFuncs(t *testing.T) {
	ctrl, err := NewController(newFakeHostRows(1), &manualAnimator{}, nil,
		WithMinimumPressDuration(time.Second),
		WithRestrictMovementAxis(true),
		WithPopOutScale(PopOutSmall),
		WithRowHitTestMargin(0.75),
		WithAnimationDurations(0, 0),
		WithLogger(nil),
	)
	require.NoError(t, err)

	o := ctrl.Options()
	assert.Equal(t, time.Second, o.MinimumPressDuration)
	assert.True(t, o.RestrictMovementAxis)
	assert.Equal(t, PopOutSmall, o.PopOutScale)
	assert.Equal(t, 0.75, o.RowHitTestMargin)
	assert.Zero(t, o.LiftDuration)
	assert.NotNil(t, o.Logger)
}

func TestWithOptions_KeepsLogger(t *testing.T) {
	base := DefaultOptions()
	base.Logger = nil
	base.RowHitTestMargin = 2

	ctrl, err := NewController(newFakeHostRows(1), &manualAnimator{}, nil, WithOptions(base), WithPopOutScale(PopOutBig))
	require.NoError(t, err)

	assert.Equal(t, 2.0, ctrl.Options().RowHitTestMargin)
	assert.Equal(t, PopOutBig, ctrl.Options().PopOutScale)
	assert.NotNil(t, ctrl.Options().Logger)
}
