package refined

import (
	"encoding/json"
	"fmt"
	"reflect"
)

// Value is a validated instance of a refinement: simultaneously a valid
// supertype value and tagged with its *Type. Its existence is proof that the
// validator hook accepted the raw value at construction time and at every
// committed mutation since.
type Value[T any] struct {
	typ   *Type[T]
	raw   T
	attrs map[string]any
}

// Raw returns the wrapped supertype value. For reference-backed supertypes
// (slices, maps) the caller shares backing storage with the instance;
// mutating it directly bypasses validation.
func (v *Value[T]) Raw() T { return v.raw }

// Type returns the refinement this instance belongs to.
func (v *Value[T]) Type() *Type[T] { return v.typ }

// String formats the raw value. Representation is deliberately not funneled
// through validation.
func (v *Value[T]) String() string {
	return fmt.Sprintf("%v", v.raw)
}

// Map is the value-producing path of the wrapping protocol: op derives a new
// raw supertype value from the current one, and the result is re-wrapped
// through full construction so it comes back as a validated instance of the
// same refinement. The receiver is left untouched.
func (v *Value[T]) Map(op func(T) T, extra ...any) (*Value[T], error) {
	if op == nil {
		return nil, fmt.Errorf("%w: nil operation", ErrUnimplemented)
	}
	return v.typ.New(op(v.raw), extra...)
}

// Mutate is the in-place path of the wrapping protocol: op derives a
// candidate value, the validator hook re-checks it, and only an accepted
// candidate is committed. A rejected candidate leaves the receiver at its
// prior, still-valid value (validate-before-commit semantics).
func (v *Value[T]) Mutate(op func(T) T, extra ...any) error {
	if op == nil {
		return fmt.Errorf("%w: nil operation", ErrUnimplemented)
	}
	accepted, err := v.typ.validate(op(v.raw), extra...)
	if err != nil {
		return err
	}
	v.raw = accepted
	return nil
}

// SetAttr assigns an instance attribute and re-runs the validator hook
// against the receiver, mirroring the attribute-assignment wrapper: the
// instance must still satisfy its refinement after any assignment.
func (v *Value[T]) SetAttr(key string, val any) error {
	if v.attrs == nil {
		v.attrs = make(map[string]any)
	}
	v.attrs[key] = val

	accepted, err := v.typ.validate(v.raw)
	if err != nil {
		return err
	}
	v.raw = accepted
	return nil
}

// InitAttr assigns an instance attribute without re-validation. Intended for
// initializers running inside construction, where the hook has just accepted
// the value.
func (v *Value[T]) InitAttr(key string, val any) {
	if v.attrs == nil {
		v.attrs = make(map[string]any)
	}
	v.attrs[key] = val
}

// Attr returns an instance attribute set by SetAttr or an initializer.
// Instance attributes shadow class-level attributes of the same name.
func (v *Value[T]) Attr(key string) (any, bool) {
	if val, ok := v.attrs[key]; ok {
		return val, true
	}
	return v.typ.Attr(key)
}

// Equal reports whether the wrapped value equals raw. Comparisons return
// plain booleans and are never re-wrapped.
func (v *Value[T]) Equal(raw T) bool {
	return reflect.DeepEqual(v.raw, raw)
}

// MarshalJSON encodes the raw supertype value, so instances serialize
// exactly like their supertype.
func (v *Value[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.raw)
}

// MarshalYAML encodes the raw supertype value.
func (v *Value[T]) MarshalYAML() (any, error) {
	return v.raw, nil
}
