package binding

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tperrors "github.com/alexisbeaulieu97/tweakpanel/pkg/errors"
)

type scene struct {
	Speed   float64
	Count   int
	Label   string `tweak:"title"`
	Enabled bool
	hidden  int
	fired   int
}

func (s *scene) Fire() { s.fired++ }

func TestBindingStructFieldLookup(t *testing.T) {
	t.Parallel()

	s := &scene{Speed: 1.5, Label: "hello"}

	b, err := New(s, "Speed")
	require.NoError(t, err)
	assert.Equal(t, 1.5, b.Get())

	b, err = New(s, "title")
	require.NoError(t, err)
	assert.Equal(t, "hello", b.Get())

	b, err = New(s, "enabled")
	require.NoError(t, err)
	assert.Equal(t, false, b.Get())
	assert.Same(t, s, b.Object())
	assert.Equal(t, "enabled", b.Property())
}

func TestBindingRejectsUnknownAndUnexported(t *testing.T) {
	t.Parallel()

	s := &scene{}
	_, err := New(s, "hidden")
	require.ErrorIs(t, err, tperrors.ErrPropertyNotFound)

	_, err = New(s, "Missing")
	require.ErrorIs(t, err, tperrors.ErrPropertyNotFound)

	_, err = New(scene{}, "Speed")
	require.ErrorIs(t, err, tperrors.ErrUnsupportedObject)

	_, err = New(nil, "Speed")
	require.ErrorIs(t, err, tperrors.ErrUnsupportedObject)

	var bindingErr *tperrors.BindingError
	require.True(t, errors.As(err, &bindingErr))
	assert.Equal(t, "Speed", bindingErr.Property)
}

func TestBindingGetIsLive(t *testing.T) {
	t.Parallel()

	s := &scene{Count: 1}
	b, err := New(s, "Count")
	require.NoError(t, err)

	s.Count = 7
	assert.Equal(t, 7, b.Get())
	assert.True(t, b.IsInteger())
}

func TestBindingSetConvertsNumbers(t *testing.T) {
	t.Parallel()

	s := &scene{}
	count, err := New(s, "Count")
	require.NoError(t, err)
	require.NoError(t, count.Set(2.6))
	assert.Equal(t, 3, s.Count)

	speed, err := New(s, "Speed")
	require.NoError(t, err)
	require.NoError(t, speed.Set(4))
	assert.Equal(t, 4.0, s.Speed)

	label, err := New(s, "Label")
	require.NoError(t, err)
	err = label.Set(12)
	require.ErrorIs(t, err, tperrors.ErrTypeMismatch)

	err = label.Set(nil)
	require.ErrorIs(t, err, tperrors.ErrNilValue)
}

func TestBindingMapHost(t *testing.T) {
	t.Parallel()

	obj := map[string]any{"x": 5}
	b, err := New(obj, "x")
	require.NoError(t, err)
	assert.Equal(t, 5, b.Get())
	assert.True(t, b.IsInteger())

	require.NoError(t, b.Set(5.6))
	assert.Equal(t, 6, obj["x"])
	assert.True(t, b.IsInteger())

	ratio, err := New(map[string]any{"r": 0.5}, "r")
	require.NoError(t, err)
	require.NoError(t, ratio.Set(2))
	assert.Equal(t, 2.0, ratio.Get())

	missing, err := New(obj, "y")
	require.NoError(t, err)
	assert.Nil(t, missing.Get())

	typed := map[string]float64{"x": 1}
	tb, err := New(typed, "x")
	require.NoError(t, err)
	require.NoError(t, tb.Set(3))
	assert.Equal(t, 3.0, typed["x"])
}

func TestBindingCall(t *testing.T) {
	t.Parallel()

	s := &scene{}
	b, err := New(s, "Fire")
	require.NoError(t, err)
	require.NoError(t, b.Call())
	require.NoError(t, b.Call())
	assert.Equal(t, 2, s.fired)
	require.Error(t, b.Set(1))

	calls := 0
	obj := map[string]any{"go": func() { calls++ }, "fail": func() error { return errors.New("boom") }}
	fn, err := New(obj, "go")
	require.NoError(t, err)
	require.NoError(t, fn.Call())
	assert.Equal(t, 1, calls)

	failing, err := New(obj, "fail")
	require.NoError(t, err)
	require.EqualError(t, failing.Call(), "boom")

	notFn, err := New(map[string]any{"x": 1}, "x")
	require.NoError(t, err)
	require.ErrorIs(t, notFn.Call(), tperrors.ErrNotCallable)
}

type limits struct {
	Level uint8
	Small int8
	Wide  int64
	Count uint
}

func TestBindingSetSaturatesIntegers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		property string
		value    any
		want     any
	}{
		{name: "uint8 above range", property: "Level", value: 300, want: uint8(255)},
		{name: "uint8 negative", property: "Level", value: -4.2, want: uint8(0)},
		{name: "uint8 in range", property: "Level", value: 254.6, want: uint8(255)},
		{name: "int8 above range", property: "Small", value: 200, want: int8(127)},
		{name: "int8 below range", property: "Small", value: -500.0, want: int8(-128)},
		{name: "int8 positive infinity", property: "Small", value: math.Inf(1), want: int8(127)},
		{name: "int64 negative infinity", property: "Wide", value: math.Inf(-1), want: int64(math.MinInt64)},
		{name: "int64 above range", property: "Wide", value: 1e300, want: int64(math.MaxInt64)},
		{name: "uint infinity", property: "Count", value: math.Inf(1), want: uint(math.MaxUint)},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			host := &limits{}
			b, err := New(host, tt.property)
			require.NoError(t, err)
			require.NoError(t, b.Set(tt.value))
			assert.Equal(t, tt.want, b.Get())
		})
	}
}

func TestBindingSetRejectsNaNForIntegers(t *testing.T) {
	t.Parallel()

	host := &limits{Small: 3}
	b, err := New(host, "Small")
	require.NoError(t, err)

	err = b.Set(math.NaN())
	require.ErrorIs(t, err, tperrors.ErrTypeMismatch)
	assert.Equal(t, int8(3), host.Small)
}
