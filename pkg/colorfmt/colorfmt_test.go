package colorfmt

import (
	"testing"

	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{in: "#ff00ff", want: "#ff00ff", ok: true},
		{in: "#FF00FF", want: "#ff00ff", ok: true},
		{in: "0x00ff00", want: "#00ff00", ok: true},
		{in: "12ab34", want: "#12ab34", ok: true},
		{in: "#abc", want: "#aabbcc", ok: true},
		{in: "f0a", want: "#ff00aa", ok: true},
		{in: "rgb(255, 0, 128)", want: "#ff0080", ok: true},
		{in: "rgb(300, 0, 0)", ok: false},
		{in: "#12", ok: false},
		{in: "purple", ok: false},
		{in: "", ok: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			got, ok := Normalize(tt.in)
			require.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDetect(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value any
		want  string
	}{
		{name: "string", value: "#ff00ff", want: "string"},
		{name: "int", value: 0xff00ff, want: "int"},
		{name: "uint32", value: uint32(0x00ff00), want: "int"},
		{name: "slice", value: []float64{1, 0, 0}, want: "array"},
		{name: "array", value: [3]int{0, 127, 255}, want: "array"},
		{name: "struct", value: colorful.Color{R: 1}, want: "object"},
		{name: "map", value: map[string]float64{"r": 1, "g": 0, "b": 0}, want: "object"},
		{name: "any map", value: map[string]any{"r": 1.0, "g": 0, "b": 0.5}, want: "object"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			f, err := Detect(tt.value)
			require.NoError(t, err)
			assert.Equal(t, tt.want, f.Name())
		})
	}

	for _, bad := range []any{nil, true, []float64{1, 2}, map[string]float64{"r": 1}, struct{ X int }{}} {
		_, err := Detect(bad)
		assert.Error(t, err, "%#v", bad)
	}
}

func TestStringFormatRoundTrip(t *testing.T) {
	t.Parallel()

	f := stringFormat{}
	require.True(t, f.Primitive())

	hex, ok := f.ToHex("#FFAA00", 1)
	require.True(t, ok)
	assert.Equal(t, "#ffaa00", hex)

	v, err := f.FromHex("#00ff00", "#ff00ff", 1)
	require.NoError(t, err)
	assert.Equal(t, "#00ff00", v)

	_, err = f.FromHex("nope", "#ff00ff", 1)
	assert.Error(t, err)
}

func TestIntFormatKeepsIntegerType(t *testing.T) {
	t.Parallel()

	f := intFormat{}
	hex, ok := f.ToHex(uint32(0x0000ff), 1)
	require.True(t, ok)
	assert.Equal(t, "#0000ff", hex)

	v, err := f.FromHex("#123456", uint32(0), 1)
	require.NoError(t, err)
	assert.Equal(t, uint32(0x123456), v)

	v, err = f.FromHex("#123456", 0, 1)
	require.NoError(t, err)
	assert.Equal(t, 0x123456, v)
}

func TestArrayFormatMutatesSliceInPlace(t *testing.T) {
	t.Parallel()

	f := arrayFormat{}
	target := []float64{0, 0, 0}

	hex, ok := f.ToHex([]float64{1, 0, 1}, 1)
	require.True(t, ok)
	assert.Equal(t, "#ff00ff", hex)

	out, err := f.FromHex("#ff0000", target, 1)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 0, 0}, target)
	assert.Equal(t, target, out)
}

func TestArrayFormatRespectsScale(t *testing.T) {
	t.Parallel()

	f := arrayFormat{}
	hex, ok := f.ToHex([3]int{0, 127, 255}, 255)
	require.True(t, ok)
	assert.Equal(t, "#007fff", hex)

	out, err := f.FromHex("#ff8000", [3]int{}, 255)
	require.NoError(t, err)
	assert.Equal(t, [3]int{255, 128, 0}, out)

	floats, err := f.FromHex("#ff0000", []float64{0, 0, 0}, 255)
	require.NoError(t, err)
	assert.Equal(t, []float64{255, 0, 0}, floats)

	halves, err := f.FromHex("#ff0000", []float64{0, 0, 0}, 2)
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 0, 0}, halves)
}

func TestObjectFormatStructAndMap(t *testing.T) {
	t.Parallel()

	f := objectFormat{}

	hex, ok := f.ToHex(colorful.Color{R: 0, G: 0.2, B: 0.4}, 1)
	require.True(t, ok)
	assert.Equal(t, "#003366", hex)

	out, err := f.FromHex("#ff0000", colorful.Color{}, 1)
	require.NoError(t, err)
	assert.Equal(t, colorful.Color{R: 1, G: 0, B: 0}, out)

	m := map[string]float64{"r": 0, "g": 0, "b": 0}
	_, err = f.FromHex("#00ff00", m, 1)
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"r": 0, "g": 1, "b": 0}, m)
}

func TestCloneDoesNotAlias(t *testing.T) {
	t.Parallel()

	original := []float64{1, 0, 0}
	clone := Clone(original).([]float64)
	original[0] = 0
	assert.Equal(t, []float64{1, 0, 0}, clone)

	m := map[string]float64{"r": 1}
	mc := Clone(m).(map[string]float64)
	m["r"] = 0
	assert.Equal(t, 1.0, mc["r"])

	assert.Equal(t, "#fff", Clone("#fff"))
	assert.Nil(t, Clone(nil))
}
