package refined

import (
	"fmt"
	"sync"
)

// Family is a parametrized collection of refinements over a shared supertype,
// indexed by a runtime parameter: e.g. length-capped lists indexed by the
// cap, or fixed-word-count phrases indexed by the word count. Members are
// synthesized lazily and cached, so repeated indexing with the same
// parameter returns the identical *Type.
type Family[P comparable, T any] struct {
	name       string
	factory    func(P) Validator[T]
	memberOpts func(P) []TypeOption[T]

	once    sync.Once
	members *registry[P, *Type[T]]
}

// FamilyOption configures a family at declaration time.
type FamilyOption[P comparable, T any] func(*Family[P, T])

// WithMemberOptions declares extra per-member type options, computed from the
// member's parameter (e.g. an initializer shared by every member).
func WithMemberOptions[P comparable, T any](fn func(P) []TypeOption[T]) FamilyOption[P, T] {
	return func(f *Family[P, T]) {
		f.memberOpts = fn
	}
}

// NewFamily declares a refinement family. The factory builds the validator
// hook for a given parameter; it is invoked once per distinct parameter.
func NewFamily[P comparable, T any](name string, factory func(P) Validator[T], opts ...FamilyOption[P, T]) *Family[P, T] {
	if name == "" {
		panic("refined: family name must not be empty")
	}
	if factory == nil {
		panic("refined: family validator factory must not be nil")
	}

	f := &Family[P, T]{name: name, factory: factory}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Name returns the declared family name.
func (f *Family[P, T]) Name() string { return f.name }

// Index returns the family member for param, synthesizing and caching it on
// first use. The member carries the parameter as the "param" class attribute,
// so validators and callers can introspect it.
func (f *Family[P, T]) Index(param P) *Type[T] {
	f.once.Do(func() {
		f.members = newRegistry[P, *Type[T]](loadSettings().FamilyCacheSize)
	})

	if t, ok := f.members.get(param); ok {
		return t
	}

	opts := []TypeOption[T]{WithAttr[T]("param", param)}
	if f.memberOpts != nil {
		opts = append(opts, f.memberOpts(param)...)
	}
	t := MustDefine(fmt.Sprintf("%s[%v]", f.name, param), f.factory(param), opts...)

	return f.members.put(param, t)
}

// New fails unconditionally: a family is not constructible directly, only its
// indexed members are. The error names the intended entry point.
func (f *Family[P, T]) New(_ T, _ ...any) (*Value[T], error) {
	return nil, fmt.Errorf("%w: construct members of %s via Index, e.g. %s.Index(param).New(raw)",
		ErrUnimplemented, f.name, f.name)
}

// Reset clears the family's member cache. Subsequent indexing re-synthesizes
// members.
func (f *Family[P, T]) Reset() {
	if f.members != nil {
		f.members.clear()
	}
}
