package scope

import (
	"errors"
	"fmt"
	"maps"
	"reflect"
	"slices"

	"github.com/jinzhu/copier"
)

// ErrDeepCopy is wrapped into the panic raised when Deep cannot copy a value.
var ErrDeepCopy = errors.New("scope: deep copy failed")

// Copier duplicates a value before a closure is allowed to mutate it.
// The returned value must not share mutable state the closure could touch
// through the original.
type Copier[T any] func(src T) T

// Cloner is implemented by types that know how to copy themselves.
type Cloner[T any] interface {
	Clone() T
}

// Shallow copies by assignment. Slices, maps and pointers inside T stay shared.
func Shallow[T any](src T) T {
	return src
}

// CloneSlice copies src into a new backing array. Elements are assigned.
func CloneSlice[S ~[]E, E any](src S) S {
	return slices.Clone(src)
}

// CloneMap copies src into a new map. Values are assigned.
func CloneMap[M ~map[K]V, K comparable, V any](src M) M {
	return maps.Clone(src)
}

// CloneWith delegates to src.Clone.
func CloneWith[T Cloner[T]](src T) T {
	return src.Clone()
}

var deepCopy = func(dst, src any) error {
	return copier.CopyWithOption(dst, src, copier.Option{DeepCopy: true})
}

// Deep copies src reflectively, following exported slices, maps and
// pointers. A pointer src is copied into a newly allocated value; a nil
// pointer is returned as is.
//
// Unexported struct fields are not visited by copier and keep sharing
// whatever they reference with src. Types with unexported reference fields
// should implement Cloner and use CloneWith instead.
//
// It panics with ErrDeepCopy if copier rejects the value.
func Deep[T any](src T) T {
	rv := reflect.ValueOf(&src).Elem()
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return src
		}
		dst := reflect.New(rv.Type().Elem())
		if err := deepCopy(dst.Interface(), rv.Interface()); err != nil {
			panic(fmt.Errorf("%w: %v", ErrDeepCopy, err))
		}
		return dst.Interface().(T)
	}

	var dst T
	if err := deepCopy(&dst, &src); err != nil {
		panic(fmt.Errorf("%w: %v", ErrDeepCopy, err))
	}
	return dst
}
