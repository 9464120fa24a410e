package refined

import (
	"encoding/json"
	"errors"
	"fmt"
	"iter"
	"reflect"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

// Validator is the user-supplied refinement hook. It rejects a raw value with
// a descriptive error or returns the accepted (possibly normalized) value to
// wrap. Extra arguments from the construction call are passed through.
type Validator[T any] func(raw T, extra ...any) (T, error)

// InitFunc is an optional initializer run after validation with the original
// raw value and extra arguments. It typically derives instance attributes
// from the accepted value via Value.InitAttr.
type InitFunc[T any] func(v *Value[T], raw T, extra ...any) error

// Type is a synthesized refinement over a supertype T. Instances are obtained
// through Define (or a Family) and cached process-wide, so repeated
// declaration of the same logical refinement yields the identical *Type.
type Type[T any] struct {
	name     string
	conduit  *conduit
	validate Validator[T]
	init     InitFunc[T]
	attrs    map[string]any
}

// TypeOption configures a refinement at declaration time.
type TypeOption[T any] func(*Type[T])

// WithAttr declares a class-level attribute on the refinement, e.g. a
// parametrizing constant. Attributes participate in the cache key, so two
// declarations with different attributes are distinct types.
func WithAttr[T any](key string, value any) TypeOption[T] {
	return func(t *Type[T]) {
		if t.attrs == nil {
			t.attrs = make(map[string]any)
		}
		t.attrs[key] = value
	}
}

// WithInit declares an initializer invoked on every successful construction,
// after the validator hook has accepted the raw value.
func WithInit[T any](fn InitFunc[T]) TypeOption[T] {
	return func(t *Type[T]) {
		t.init = fn
	}
}

// typeKey uniquely identifies a synthesized refinement: its declared name,
// the supertype identity and a fingerprint of its declared attributes.
type typeKey struct {
	name  string
	super reflect.Type
	attrs string
}

var (
	typesOnce sync.Once
	types     *registry[typeKey, any]
)

func typeRegistry() *registry[typeKey, any] {
	typesOnce.Do(func() {
		types = newRegistry[typeKey, any](loadSettings().TypeCacheSize)
	})
	return types
}

func attrFingerprint(attrs map[string]any) string {
	if len(attrs) == 0 {
		return ""
	}
	keys := make([]string, 0, len(attrs))
	for k := range attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var sb strings.Builder
	for i, k := range keys {
		if i > 0 {
			sb.WriteByte(';')
		}
		fmt.Fprintf(&sb, "%s=%v", k, attrs[k])
	}
	return sb.String()
}

// Define declares a refinement of T named name, validated by the given hook.
// If a refinement with the same name, supertype and attributes has already
// been synthesized, the cached *Type is returned and the new hook and options
// are discarded; the first declaration wins.
func Define[T any](name string, validate Validator[T], opts ...TypeOption[T]) (*Type[T], error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if validate == nil {
		return nil, ErrNilValidator
	}

	c := conduitFor[T]()
	t := &Type[T]{name: name, conduit: c, validate: validate}
	for _, opt := range opts {
		opt(t)
	}

	key := typeKey{name: name, super: c.super, attrs: attrFingerprint(t.attrs)}
	reg := typeRegistry()
	if cached, ok := reg.get(key); ok {
		if existing, ok := cached.(*Type[T]); ok {
			return existing, nil
		}
	}
	if stored, ok := reg.put(key, t).(*Type[T]); ok {
		return stored, nil
	}
	return t, nil
}

// MustDefine works like Define but panics on invalid declarations. Intended
// for package-level refinement variables where misuse is a programming error.
func MustDefine[T any](name string, validate Validator[T], opts ...TypeOption[T]) *Type[T] {
	t, err := Define(name, validate, opts...)
	if err != nil {
		panic(fmt.Sprintf("refined: failed to define %q: %v", name, err))
	}
	return t
}

// Name returns the declared refinement name.
func (t *Type[T]) Name() string { return t.name }

// Supertype returns the identity of the underlying supertype.
func (t *Type[T]) Supertype() reflect.Type { return t.conduit.super }

// Attr returns a class-level attribute declared via WithAttr.
func (t *Type[T]) Attr(key string) (any, bool) {
	v, ok := t.attrs[key]
	return v, ok
}

// New constructs a validated instance from raw. The validator hook runs
// before any usable instance exists; its failure propagates unchanged and no
// instance escapes. Extra arguments reach both the hook and the initializer.
func (t *Type[T]) New(raw T, extra ...any) (*Value[T], error) {
	accepted, err := t.validate(raw, extra...)
	if err != nil {
		return nil, err
	}

	v := &Value[T]{typ: t, raw: accepted}
	if t.init != nil {
		if err := t.init(v, raw, extra...); err != nil {
			return nil, err
		}
	}
	return v, nil
}

// MustNew works like New but panics on rejection.
func (t *Type[T]) MustNew(raw T, extra ...any) *Value[T] {
	v, err := t.New(raw, extra...)
	if err != nil {
		panic(fmt.Sprintf("refined: failed to construct %s: %v", t.name, err))
	}
	return v
}

// Validators yields the refinement's validator hooks, for interoperability
// with schema frameworks that discover validators by iterating.
func (t *Type[T]) Validators() iter.Seq[Validator[T]] {
	return func(yield func(Validator[T]) bool) {
		yield(t.validate)
	}
}

// ParseJSON decodes a JSON document into the supertype and funnels the result
// through New, so the returned instance is fully validated.
func (t *Type[T]) ParseJSON(data []byte, extra ...any) (*Value[T], error) {
	var raw T
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, errors.Join(ErrDecode, err)
	}
	return t.New(raw, extra...)
}

// ParseYAML decodes a YAML document into the supertype and funnels the result
// through New.
func (t *Type[T]) ParseYAML(data []byte, extra ...any) (*Value[T], error) {
	var raw T
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, errors.Join(ErrDecode, err)
	}
	return t.New(raw, extra...)
}

// ResetRegistries clears the process-wide conduit and derived-type caches.
// Family member caches are owned by their Family and reset separately.
func ResetRegistries() {
	conduitRegistry().clear()
	typeRegistry().clear()
}
