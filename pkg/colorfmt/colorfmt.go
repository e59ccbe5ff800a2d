// Package colorfmt converts between the "#rrggbb" strings shown by colour
// widgets and the shapes a host property may hold: CSS-like strings, packed
// integers, {r,g,b} structs or maps, and numeric arrays.
package colorfmt

import (
	"fmt"
	"math"
	"reflect"
	"regexp"
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

var (
	sixDigitPattern   = regexp.MustCompile(`(?i)(#|0x)?([a-f0-9]{6})`)
	rgbFuncPattern    = regexp.MustCompile(`rgb\(\s*(\d*)\s*,\s*(\d*)\s*,\s*(\d*)\s*\)`)
	threeDigitPattern = regexp.MustCompile(`(?i)^#?([a-f0-9])([a-f0-9])([a-f0-9])$`)
)

// Normalize turns "#rrggbb", "0xrrggbb", "rrggbb", "#rgb" or "rgb(r, g, b)"
// into a lower-case "#rrggbb" string.
func Normalize(s string) (string, bool) {
	var hex string
	if m := sixDigitPattern.FindStringSubmatch(s); m != nil {
		hex = m[2]
	} else if m := rgbFuncPattern.FindStringSubmatch(s); m != nil {
		var b strings.Builder
		for _, part := range m[1:] {
			n, err := strconv.Atoi(part)
			if err != nil || n > 255 {
				return "", false
			}
			fmt.Fprintf(&b, "%02x", n)
		}
		hex = b.String()
	} else if m := threeDigitPattern.FindStringSubmatch(s); m != nil {
		hex = m[1] + m[1] + m[2] + m[2] + m[3] + m[3]
	}
	if hex == "" {
		return "", false
	}
	return "#" + strings.ToLower(hex), true
}

// Channels parses a hex string into red, green and blue in [0,1].
func Channels(hex string) (r, g, b float64, ok bool) {
	normalized, ok := Normalize(hex)
	if !ok {
		return 0, 0, 0, false
	}
	c, err := colorful.Hex(normalized)
	if err != nil {
		return 0, 0, 0, false
	}
	return c.R, c.G, c.B, true
}

// FromChannels formats channels in [0,1] as "#rrggbb".
func FromChannels(r, g, b float64) string {
	return colorful.Color{R: r, G: g, B: b}.Clamped().Hex()
}

// Format converts one host representation to and from hex strings.
type Format interface {
	// Name identifies the format in logs and errors.
	Name() string
	// Primitive formats are replaced on write; compound ones are updated
	// channel by channel.
	Primitive() bool
	// ToHex renders v. It fails for values of the wrong shape.
	ToHex(v any, scale float64) (string, bool)
	// FromHex returns the value to store. Compound formats write channels into
	// current, mutating it when it is a reference (slice or map) and returning
	// a modified copy otherwise.
	FromHex(hex string, current any, scale float64) (any, error)
}

// Detect selects the format matching the shape of v.
func Detect(v any) (Format, error) {
	rv := reflect.ValueOf(v)
	if !rv.IsValid() {
		return nil, fmt.Errorf("colorfmt: nil colour value")
	}
	switch {
	case rv.Kind() == reflect.String:
		return stringFormat{}, nil
	case isInteger(rv.Kind()):
		return intFormat{}, nil
	case (rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array) && rv.Len() >= 3 && isNumber(rv.Type().Elem().Kind()):
		return arrayFormat{}, nil
	case rv.Kind() == reflect.Struct && structChannels(rv.Type()) != nil:
		return objectFormat{}, nil
	case rv.Kind() == reflect.Map && rv.Type().Key().Kind() == reflect.String && mapHasChannels(rv):
		return objectFormat{}, nil
	}
	return nil, fmt.Errorf("colorfmt: unsupported colour value of type %T", v)
}

// Clone returns a structural copy of v so later in-place writes to the
// original do not show through.
func Clone(v any) any {
	rv := reflect.ValueOf(v)
	if !rv.IsValid() {
		return nil
	}
	switch rv.Kind() {
	case reflect.Slice:
		if rv.IsNil() {
			return v
		}
		out := reflect.MakeSlice(rv.Type(), rv.Len(), rv.Len())
		reflect.Copy(out, rv)
		return out.Interface()
	case reflect.Map:
		if rv.IsNil() {
			return v
		}
		out := reflect.MakeMapWithSize(rv.Type(), rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			out.SetMapIndex(iter.Key(), iter.Value())
		}
		return out.Interface()
	default:
		return v
	}
}

type stringFormat struct{}

func (stringFormat) Name() string    { return "string" }
func (stringFormat) Primitive() bool { return true }

func (stringFormat) ToHex(v any, _ float64) (string, bool) {
	s, ok := v.(string)
	if !ok {
		return "", false
	}
	return Normalize(s)
}

func (stringFormat) FromHex(hex string, _ any, _ float64) (any, error) {
	normalized, ok := Normalize(hex)
	if !ok {
		return nil, fmt.Errorf("colorfmt: invalid colour %q", hex)
	}
	return normalized, nil
}

type intFormat struct{}

func (intFormat) Name() string    { return "int" }
func (intFormat) Primitive() bool { return true }

func (intFormat) ToHex(v any, _ float64) (string, bool) {
	rv := reflect.ValueOf(v)
	if !rv.IsValid() || !isInteger(rv.Kind()) {
		return "", false
	}
	var n uint64
	if rv.CanInt() {
		if rv.Int() < 0 {
			return "", false
		}
		n = uint64(rv.Int())
	} else {
		n = rv.Uint()
	}
	return fmt.Sprintf("#%06x", n&0xffffff), true
}

func (intFormat) FromHex(hex string, current any, _ float64) (any, error) {
	normalized, ok := Normalize(hex)
	if !ok {
		return nil, fmt.Errorf("colorfmt: invalid colour %q", hex)
	}
	n, err := strconv.ParseUint(normalized[1:], 16, 32)
	if err != nil {
		return nil, err
	}
	if rv := reflect.ValueOf(current); rv.IsValid() && isInteger(rv.Kind()) {
		out := reflect.New(rv.Type()).Elem()
		if rv.CanInt() {
			out.SetInt(int64(n))
		} else {
			out.SetUint(n)
		}
		return out.Interface(), nil
	}
	return int(n), nil
}

type arrayFormat struct{}

func (arrayFormat) Name() string    { return "array" }
func (arrayFormat) Primitive() bool { return false }

func (arrayFormat) ToHex(v any, scale float64) (string, bool) {
	rv := reflect.ValueOf(v)
	if !rv.IsValid() || (rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array) || rv.Len() < 3 {
		return "", false
	}
	var ch [3]float64
	for i := range ch {
		f, ok := toFloat(rv.Index(i))
		if !ok {
			return "", false
		}
		ch[i] = f / scale
	}
	return FromChannels(ch[0], ch[1], ch[2]), true
}

func (arrayFormat) FromHex(hex string, current any, scale float64) (any, error) {
	r, g, b, ok := Channels(hex)
	if !ok {
		return nil, fmt.Errorf("colorfmt: invalid colour %q", hex)
	}
	rv := reflect.ValueOf(current)
	if !rv.IsValid() || (rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array) || rv.Len() < 3 {
		return nil, fmt.Errorf("colorfmt: target of type %T is not a colour array", current)
	}
	target := rv
	if rv.Kind() == reflect.Array {
		target = reflect.New(rv.Type()).Elem()
		target.Set(rv)
	}
	for i, c := range [3]float64{r, g, b} {
		setChannel(target.Index(i), c, scale)
	}
	return target.Interface(), nil
}

type objectFormat struct{}

func (objectFormat) Name() string    { return "object" }
func (objectFormat) Primitive() bool { return false }

func (objectFormat) ToHex(v any, scale float64) (string, bool) {
	rv := reflect.ValueOf(v)
	if !rv.IsValid() {
		return "", false
	}
	var ch [3]float64
	switch rv.Kind() {
	case reflect.Struct:
		idx := structChannels(rv.Type())
		if idx == nil {
			return "", false
		}
		for i, field := range idx {
			f, ok := toFloat(rv.Field(field))
			if !ok {
				return "", false
			}
			ch[i] = f / scale
		}
	case reflect.Map:
		for i, key := range channelKeys {
			entry := rv.MapIndex(reflect.ValueOf(key).Convert(rv.Type().Key()))
			f, ok := toFloat(entry)
			if !ok {
				return "", false
			}
			ch[i] = f / scale
		}
	default:
		return "", false
	}
	return FromChannels(ch[0], ch[1], ch[2]), true
}

func (objectFormat) FromHex(hex string, current any, scale float64) (any, error) {
	r, g, b, ok := Channels(hex)
	if !ok {
		return nil, fmt.Errorf("colorfmt: invalid colour %q", hex)
	}
	rv := reflect.ValueOf(current)
	channels := [3]float64{r, g, b}
	switch {
	case rv.Kind() == reflect.Struct && structChannels(rv.Type()) != nil:
		target := reflect.New(rv.Type()).Elem()
		target.Set(rv)
		for i, field := range structChannels(rv.Type()) {
			setChannel(target.Field(field), channels[i], scale)
		}
		return target.Interface(), nil
	case rv.Kind() == reflect.Map && rv.Type().Key().Kind() == reflect.String:
		elem := rv.Type().Elem()
		for i, key := range channelKeys {
			k := reflect.ValueOf(key).Convert(rv.Type().Key())
			slot := reflect.New(elem).Elem()
			if existing := rv.MapIndex(k); existing.IsValid() {
				slot.Set(existing)
			}
			setChannel(slot, channels[i], scale)
			rv.SetMapIndex(k, slot)
		}
		return current, nil
	}
	return nil, fmt.Errorf("colorfmt: target of type %T is not a colour object", current)
}

var channelKeys = [3]string{"r", "g", "b"}

// structChannels returns the field indexes of R, G and B, or nil.
func structChannels(t reflect.Type) []int {
	idx := make([]int, 0, 3)
	for _, name := range []string{"R", "G", "B"} {
		f, ok := t.FieldByNameFunc(func(n string) bool { return strings.EqualFold(n, name) })
		if !ok || len(f.Index) != 1 || !f.IsExported() || !isNumber(f.Type.Kind()) {
			return nil
		}
		idx = append(idx, f.Index[0])
	}
	return idx
}

func mapHasChannels(rv reflect.Value) bool {
	for _, key := range channelKeys {
		entry := rv.MapIndex(reflect.ValueOf(key).Convert(rv.Type().Key()))
		if _, ok := toFloat(entry); !ok {
			return false
		}
	}
	return true
}

// setChannel stores channel c in [0,1] as c*scale. Integer slots and a 255
// scale hold whole numbers.
func setChannel(slot reflect.Value, c, scale float64) {
	v := c * scale
	if scale == 255 {
		v = math.Round(v)
	}
	if slot.Kind() == reflect.Interface {
		slot.Set(reflect.ValueOf(v))
		return
	}
	switch {
	case slot.CanInt():
		slot.SetInt(int64(math.Round(v)))
	case slot.CanUint():
		slot.SetUint(uint64(math.Round(v)))
	case slot.CanFloat():
		slot.SetFloat(v)
	}
}

func toFloat(v reflect.Value) (float64, bool) {
	if !v.IsValid() {
		return 0, false
	}
	if v.Kind() == reflect.Interface {
		if v.IsNil() {
			return 0, false
		}
		v = v.Elem()
	}
	switch {
	case v.CanInt():
		return float64(v.Int()), true
	case v.CanUint():
		return float64(v.Uint()), true
	case v.CanFloat():
		return v.Float(), true
	}
	return 0, false
}

func isInteger(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return true
	}
	return false
}

func isNumber(k reflect.Kind) bool {
	return isInteger(k) || k == reflect.Float32 || k == reflect.Float64 || k == reflect.Interface
}
