// Package binding reads and writes a named property of a host object. Hosts
// are pointers to structs or string-keyed maps; the object is never copied.
package binding

import (
	"math"
	"reflect"
	"strings"

	tperrors "github.com/alexisbeaulieu97/tweakpanel/pkg/errors"
)

// TagName is the struct tag consulted when no field matches a property by
// exact name.
const TagName = "tweak"

// Binding is a live reference to object[property].
type Binding struct {
	object   any
	property string

	// struct hosts
	field  reflect.Value
	method reflect.Value

	// map hosts
	m   reflect.Value
	key reflect.Value
}

// New resolves property on object.
func New(object any, property string) (*Binding, error) {
	rv := reflect.ValueOf(object)
	b := &Binding{object: object, property: property}

	switch {
	case rv.Kind() == reflect.Pointer && !rv.IsNil() && rv.Elem().Kind() == reflect.Struct:
		if field, ok := lookupField(rv.Elem(), property); ok {
			b.field = field
			return b, nil
		}
		if method := rv.MethodByName(property); method.IsValid() {
			b.method = method
			return b, nil
		}
		return nil, tperrors.NewBindingError(property, tperrors.ErrPropertyNotFound)
	case rv.Kind() == reflect.Map && !rv.IsNil() && rv.Type().Key().Kind() == reflect.String:
		b.m = rv
		b.key = reflect.ValueOf(property).Convert(rv.Type().Key())
		return b, nil
	case rv.Kind() == reflect.Pointer && !rv.IsNil() && rv.Elem().Kind() == reflect.Map:
		return New(rv.Elem().Interface(), property)
	}
	return nil, tperrors.NewBindingError(property, tperrors.ErrUnsupportedObject)
}

func lookupField(sv reflect.Value, property string) (reflect.Value, bool) {
	st := sv.Type()
	if f, ok := st.FieldByName(property); ok && f.IsExported() {
		return sv.FieldByIndex(f.Index), true
	}
	for i := 0; i < st.NumField(); i++ {
		f := st.Field(i)
		if !f.IsExported() {
			continue
		}
		if name, _, _ := strings.Cut(f.Tag.Get(TagName), ","); name == property {
			return sv.Field(i), true
		}
	}
	f, ok := st.FieldByNameFunc(func(name string) bool { return strings.EqualFold(name, property) })
	if ok && f.IsExported() {
		return sv.FieldByIndex(f.Index), true
	}
	return reflect.Value{}, false
}

// Object returns the bound host object.
func (b *Binding) Object() any { return b.object }

// Property returns the bound property name.
func (b *Binding) Property() string { return b.property }

// Get returns the live value of object[property], or nil when a map key is
// absent.
func (b *Binding) Get() any {
	v := b.value()
	if !v.IsValid() {
		return nil
	}
	if v.Kind() == reflect.Interface {
		if v.IsNil() {
			return nil
		}
		return v.Elem().Interface()
	}
	return v.Interface()
}

func (b *Binding) value() reflect.Value {
	switch {
	case b.field.IsValid():
		return b.field
	case b.method.IsValid():
		return b.method
	case b.m.IsValid():
		return b.m.MapIndex(b.key)
	}
	return reflect.Value{}
}

// Type returns the static type of the property: the field type, the method
// signature, or the map element type.
func (b *Binding) Type() reflect.Type {
	switch {
	case b.field.IsValid():
		return b.field.Type()
	case b.method.IsValid():
		return b.method.Type()
	default:
		return b.m.Type().Elem()
	}
}

// IsInteger reports whether the current value is an integer.
func (b *Binding) IsInteger() bool {
	v := reflect.ValueOf(b.Get())
	return v.IsValid() && (v.CanInt() || v.CanUint())
}

// Set writes v to object[property], converting numbers to the property type.
// Integer targets receive rounded values clamped to the range of the type.
// An interface-typed slot holding a number keeps its dynamic type.
func (b *Binding) Set(v any) error {
	if b.method.IsValid() {
		return tperrors.NewBindingError(b.property, tperrors.ErrTypeMismatch)
	}
	converted, err := convert(v, b.targetType(v))
	if err != nil {
		return tperrors.NewBindingError(b.property, err)
	}
	if b.field.IsValid() {
		if !b.field.CanSet() {
			return tperrors.NewBindingError(b.property, tperrors.ErrTypeMismatch)
		}
		b.field.Set(converted)
		return nil
	}
	b.m.SetMapIndex(b.key, converted)
	return nil
}

func (b *Binding) targetType(v any) reflect.Type {
	target := b.Type()
	if target.Kind() != reflect.Interface {
		return target
	}
	current := reflect.ValueOf(b.Get())
	incoming := reflect.ValueOf(v)
	if current.IsValid() && incoming.IsValid() && isNumeric(current) && isNumeric(incoming) {
		return current.Type()
	}
	return target
}

// Call invokes the bound function property.
func (b *Binding) Call() error {
	fn := b.value()
	if fn.Kind() == reflect.Interface && !fn.IsNil() {
		fn = fn.Elem()
	}
	if fn.Kind() != reflect.Func || fn.IsNil() || fn.Type().NumIn() != 0 {
		return tperrors.NewBindingError(b.property, tperrors.ErrNotCallable)
	}
	out := fn.Call(nil)
	for _, o := range out {
		if err, ok := o.Interface().(error); ok && err != nil {
			return err
		}
	}
	return nil
}

func convert(v any, target reflect.Type) (reflect.Value, error) {
	rv := reflect.ValueOf(v)
	if !rv.IsValid() {
		return reflect.Value{}, tperrors.ErrNilValue
	}
	if target.Kind() == reflect.Interface {
		if rv.Type().Implements(target) {
			return rv, nil
		}
		return reflect.Value{}, tperrors.ErrTypeMismatch
	}
	if rv.Type().AssignableTo(target) {
		return rv, nil
	}
	if isNumeric(rv) && isNumericKind(target.Kind()) {
		f := toFloat(rv)
		out := reflect.New(target).Elem()
		switch {
		case out.CanInt():
			if math.IsNaN(f) {
				return reflect.Value{}, tperrors.ErrTypeMismatch
			}
			out.SetInt(roundInt(f, target.Bits()))
		case out.CanUint():
			if math.IsNaN(f) {
				return reflect.Value{}, tperrors.ErrTypeMismatch
			}
			out.SetUint(roundUint(f, target.Bits()))
		default:
			out.SetFloat(f)
		}
		return out, nil
	}
	if rv.Kind() == target.Kind() && rv.Type().ConvertibleTo(target) {
		return rv.Convert(target), nil
	}
	return reflect.Value{}, tperrors.ErrTypeMismatch
}

// roundInt rounds f and saturates at the limits of a signed integer of the
// given bit size. Infinities land on the matching limit.
func roundInt(f float64, bits int) int64 {
	hi := int64(math.MaxInt64 >> (64 - bits))
	lo := -hi - 1
	r := math.Round(f)
	switch {
	case r >= float64(hi):
		return hi
	case r <= float64(lo):
		return lo
	}
	return int64(r)
}

// roundUint is roundInt for unsigned integers.
func roundUint(f float64, bits int) uint64 {
	hi := uint64(math.MaxUint64 >> (64 - bits))
	r := math.Round(f)
	switch {
	case r <= 0:
		return 0
	case r >= float64(hi):
		return hi
	}
	return uint64(r)
}

func isNumeric(v reflect.Value) bool {
	return v.CanInt() || v.CanUint() || v.CanFloat()
}

func isNumericKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

func toFloat(v reflect.Value) float64 {
	switch {
	case v.CanInt():
		return float64(v.Int())
	case v.CanUint():
		return float64(v.Uint())
	default:
		return v.Float()
	}
}
