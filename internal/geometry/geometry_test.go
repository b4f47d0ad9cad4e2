package geometry

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntersects(t *testing.T) {
	tests := []struct {
		name string
		a    *Rect
		b    *Rect
		want bool
	}{
		{
			name: "overlapping",
			a:    &Rect{Left: 0, Top: 0, Right: 10, Bottom: 10},
			b:    &Rect{Left: 5, Top: 5, Right: 15, Bottom: 15},
			want: true,
		},
		{
			name: "disjoint_horizontal",
			a:    &Rect{Left: 0, Top: 0, Right: 10, Bottom: 10},
			b:    &Rect{Left: 11, Top: 0, Right: 20, Bottom: 10},
			want: false,
		},
		{
			name: "disjoint_vertical",
			a:    &Rect{Left: 0, Top: 0, Right: 10, Bottom: 10},
			b:    &Rect{Left: 0, Top: 11, Right: 10, Bottom: 20},
			want: false,
		},
		{
			name: "shared_edge",
			a:    &Rect{Left: 0, Top: 0, Right: 10, Bottom: 10},
			b:    &Rect{Left: 10, Top: 0, Right: 20, Bottom: 10},
			want: true,
		},
		{
			name: "shared_corner",
			a:    &Rect{Left: 0, Top: 0, Right: 10, Bottom: 10},
			b:    &Rect{Left: 10, Top: 10, Right: 20, Bottom: 20},
			want: true,
		},
		{
			name: "contained",
			a:    &Rect{Left: 0, Top: 0, Right: 100, Bottom: 100},
			b:    &Rect{Left: 40, Top: 40, Right: 60, Bottom: 60},
			want: true,
		},
		{
			name: "nil_first",
			a:    nil,
			b:    &Rect{Left: 0, Top: 0, Right: 10, Bottom: 10},
			want: false,
		},
		{
			name: "nil_second",
			a:    &Rect{Left: 0, Top: 0, Right: 10, Bottom: 10},
			b:    nil,
			want: false,
		},
		{
			name: "both_nil",
			a:    nil,
			b:    nil,
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Intersects(tt.a, tt.b))
			// Intersection must be symmetric.
			assert.Equal(t, tt.want, Intersects(tt.b, tt.a))
		})
	}
}

func TestRectHeight(t *testing.T) {
	r := Rect{Left: 100, Top: 125, Right: 280, Bottom: 142}
	assert.InDelta(t, 17.0, r.Height(), 1e-9)
	assert.InDelta(t, 180.0, r.Width(), 1e-9)
}

func TestRectJSONRoundTrip(t *testing.T) {
	r := Rect{Left: 100, Top: 125, Right: 280, Bottom: 142}

	data, err := json.Marshal(r)
	require.NoError(t, err)
	assert.JSONEq(t, `[100,125,280,142]`, string(data))

	var back Rect
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, r, back)
}

func TestRectUnmarshalErrors(t *testing.T) {
	var r Rect
	assert.Error(t, json.Unmarshal([]byte(`[1,2,3]`), &r), "too few coordinates")
	assert.Error(t, json.Unmarshal([]byte(`[1,2,3,4,5]`), &r), "too many coordinates")
	assert.Error(t, json.Unmarshal([]byte(`"100,125,280,142"`), &r), "not an array")
}

func TestPageSpaceAnchor(t *testing.T) {
	// Letter page rendered at double resolution: scale 0.5 on both axes.
	ps := NewPageSpace(612, 792, 1224, 1584)
	assert.InDelta(t, 0.5, ps.ScaleX(), 1e-9)
	assert.InDelta(t, 0.5, ps.ScaleY(), 1e-9)

	x, y := ps.Anchor(Rect{Left: 100, Top: 125, Right: 280, Bottom: 142})
	assert.InDelta(t, 50.0, x, 1e-9)
	assert.InDelta(t, 721.0, y, 1e-9)
}

func TestPageSpaceFallback(t *testing.T) {
	tests := []struct {
		name     string
		imgW     float64
		imgH     float64
		wantImgW float64
		wantImgH float64
	}{
		{"zero_dims", 0, 0, 612, 792},
		{"zero_width", 0, 1584, 612, 792},
		{"zero_height", 1224, 0, 612, 792},
		{"explicit_dims", 1224, 1584, 1224, 1584},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ps := NewPageSpace(612, 792, tt.imgW, tt.imgH)
			assert.Equal(t, tt.wantImgW, ps.ImageWidth)
			assert.Equal(t, tt.wantImgH, ps.ImageHeight)
		})
	}

	// Fallback means identity scaling: pixel coordinates are already points.
	ps := NewPageSpace(612, 792, 0, 0)
	x, y := ps.Anchor(Rect{Left: 72, Top: 100, Right: 200, Bottom: 120})
	assert.InDelta(t, 72.0, x, 1e-9)
	assert.InDelta(t, 672.0, y, 1e-9)
}

func TestPageSpaceToPoints(t *testing.T) {
	ps := NewPageSpace(612, 792, 1224, 1584)
	got := ps.ToPoints(Rect{Left: 100, Top: 125, Right: 280, Bottom: 142})
	assert.Equal(t, Rect{Left: 50, Top: 62.5, Right: 140, Bottom: 71}, got)
}
