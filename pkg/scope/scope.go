package scope

// With runs fn against an assignment copy of value and returns fn's result.
// The caller's value is left as it was, as long as T holds no shared
// reference fields; use WithCopied with a deeper Copier otherwise.
func With[T, V any](value T, fn func(*T) V) V {
	return WithCopied(value, Shallow[T], fn)
}

// WithCopied is With using c to duplicate value first.
func WithCopied[T, V any](value T, c Copier[T], fn func(*T) V) V {
	dup := c(value)
	return fn(&dup)
}

// WithObject runs fn against the live object and returns fn's result.
// Mutations are visible through obj afterwards.
func WithObject[T, V any](obj *T, fn func(*T) V) V {
	return fn(obj)
}

// Value is a value subject together with the Copier used to duplicate it
// each time a closure runs. The held value itself is never mutated.
type Value[T any] struct {
	v    T
	copy Copier[T]
}

// Of wraps v with the Shallow copier. Like With, slices, maps and pointers
// inside v stay shared with the copies handed to closures; use OfSlice,
// OfMap, OfCloner or OfDeep when the original must not change.
func Of[T any](v T) Value[T] {
	return OfCopied(v, Shallow[T])
}

// OfCopied wraps v with c. A nil c means Shallow.
func OfCopied[T any](v T, c Copier[T]) Value[T] {
	if c == nil {
		c = Shallow[T]
	}
	return Value[T]{v: v, copy: c}
}

// OfSlice wraps s so each closure gets its own backing array.
func OfSlice[S ~[]E, E any](s S) Value[S] {
	return OfCopied(s, CloneSlice[S])
}

// OfMap wraps m so each closure gets its own map.
func OfMap[M ~map[K]V, K comparable, V any](m M) Value[M] {
	return OfCopied(m, CloneMap[M])
}

// OfCloner wraps v so each closure gets v.Clone().
func OfCloner[T Cloner[T]](v T) Value[T] {
	return OfCopied(v, CloneWith[T])
}

// OfDeep wraps v with Deep. Unexported fields are not deep copied, see Deep.
func OfDeep[T any](v T) Value[T] {
	return OfCopied(v, Deep[T])
}

// Get returns the held value.
func (v Value[T]) Get() T {
	return v.v
}

func (v Value[T]) dup() T {
	if v.copy == nil {
		return v.v
	}
	return v.copy(v.v)
}

// Let runs fn against a copy of the held value and returns fn's result.
func Let[T, V any](v Value[T], fn func(*T) V) V {
	dup := v.dup()
	return fn(&dup)
}

// Also lets fn mutate a copy of the held value, then returns that copy.
func (v Value[T]) Also(fn func(*T)) T {
	dup := v.dup()
	fn(&dup)
	return dup
}

// TakeIf hands a copy to fn and keeps it, mutations included, only if fn
// returns true. The held value is untouched either way.
func (v Value[T]) TakeIf(fn func(*T) bool) Option[T] {
	dup := v.dup()
	if fn(&dup) {
		return Some(dup)
	}
	return None[T]()
}

// Ref is a reference subject. Every closure receives the same pointer.
type Ref[T any] struct {
	p *T
}

// RefOf wraps the live object p.
func RefOf[T any](p *T) Ref[T] {
	return Ref[T]{p: p}
}

// Get returns the pointer.
func (r Ref[T]) Get() *T {
	return r.p
}

// LetRef runs fn against the live object and returns fn's result.
func LetRef[T, V any](r Ref[T], fn func(*T) V) V {
	return fn(r.p)
}

// Also lets fn mutate the live object and returns the same pointer.
func (r Ref[T]) Also(fn func(*T)) *T {
	fn(r.p)
	return r.p
}

// TakeIf returns Some with the same pointer if fn returns true.
// Anything fn changed on the object stays changed even when it returns false.
func (r Ref[T]) TakeIf(fn func(*T) bool) Option[*T] {
	if fn(r.p) {
		return Some(r.p)
	}
	return None[*T]()
}
