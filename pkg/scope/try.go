package scope

// TryWith is With for closures that can fail. The closure's error is
// returned as is.
func TryWith[T, V any](value T, fn func(*T) (V, error)) (V, error) {
	return TryWithCopied(value, Shallow[T], fn)
}

// TryWithCopied is TryWith using c to duplicate value first.
func TryWithCopied[T, V any](value T, c Copier[T], fn func(*T) (V, error)) (V, error) {
	dup := c(value)
	out, err := fn(&dup)
	if err != nil {
		var zero V
		return zero, err
	}
	return out, nil
}

// TryWithObject is WithObject for closures that can fail.
func TryWithObject[T, V any](obj *T, fn func(*T) (V, error)) (V, error) {
	out, err := fn(obj)
	if err != nil {
		var zero V
		return zero, err
	}
	return out, nil
}

// TryLet is Let for closures that can fail.
func TryLet[T, V any](v Value[T], fn func(*T) (V, error)) (V, error) {
	dup := v.dup()
	out, err := fn(&dup)
	if err != nil {
		var zero V
		return zero, err
	}
	return out, nil
}

// TryLetRef is LetRef for closures that can fail.
func TryLetRef[T, V any](r Ref[T], fn func(*T) (V, error)) (V, error) {
	return TryWithObject(r.p, fn)
}

// TryAlso returns the mutated copy, or the zero T and fn's error.
// A partially mutated copy is never returned.
func (v Value[T]) TryAlso(fn func(*T) error) (T, error) {
	dup := v.dup()
	if err := fn(&dup); err != nil {
		var zero T
		return zero, err
	}
	return dup, nil
}

// TryTakeIf is TakeIf for predicates that can fail. On error it returns None.
func (v Value[T]) TryTakeIf(fn func(*T) (bool, error)) (Option[T], error) {
	dup := v.dup()
	ok, err := fn(&dup)
	if err != nil {
		return None[T](), err
	}
	if !ok {
		return None[T](), nil
	}
	return Some(dup), nil
}

// TryAlso returns the same pointer, or nil and fn's error. Changes fn made
// to the object before failing are not rolled back.
func (r Ref[T]) TryAlso(fn func(*T) error) (*T, error) {
	if err := fn(r.p); err != nil {
		return nil, err
	}
	return r.p, nil
}

// TryTakeIf is Ref.TakeIf for predicates that can fail. On error it returns
// None; changes already made to the object stay.
func (r Ref[T]) TryTakeIf(fn func(*T) (bool, error)) (Option[*T], error) {
	ok, err := fn(r.p)
	if err != nil {
		return None[*T](), err
	}
	if !ok {
		return None[*T](), nil
	}
	return Some(r.p), nil
}
