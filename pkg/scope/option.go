package scope

// Option holds the outcome of a TakeIf: Some(v) when the predicate
// accepted the subject, None otherwise.
type Option[T any] struct {
	v     T
	valid bool
}

// Some constructs an Option with a value.
func Some[T any](v T) Option[T] {
	return Option[T]{v: v, valid: true}
}

// None constructs an empty Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

func (o Option[T]) IsSome() bool {
	return o.valid
}

func (o Option[T]) IsNone() bool {
	return !o.valid
}

// Get returns the value and whether it was present.
func (o Option[T]) Get() (T, bool) {
	return o.v, o.valid
}

// MustGet returns the value or panics on None.
func (o Option[T]) MustGet() T {
	if !o.valid {
		panic("scope: MustGet on None")
	}
	return o.v
}

func (o Option[T]) OrElse(fallback T) T {
	if o.valid {
		return o.v
	}
	return fallback
}

func (o Option[T]) OrElseGet(fallback func() T) T {
	if o.valid {
		return o.v
	}
	return fallback()
}

// MapOption applies f to the value if present.
func MapOption[T, U any](o Option[T], f func(T) U) Option[U] {
	if o.valid {
		return Some(f(o.v))
	}
	return None[U]()
}
