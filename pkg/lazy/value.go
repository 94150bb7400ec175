// Package lazy provides deferred values that are resolved on demand.
package lazy

// Value holds a producer that is evaluated every time Get is called.
// The zero Value is unset and resolves to the zero T.
type Value[T any] struct {
	fn func() (T, error)
}

// Of wraps an already known value.
func Of[T any](v T) Value[T] {
	return Value[T]{fn: func() (T, error) { return v, nil }}
}

// From wraps a producer that cannot fail.
func From[T any](fn func() T) Value[T] {
	if fn == nil {
		return Value[T]{}
	}
	return Value[T]{fn: func() (T, error) { return fn(), nil }}
}

// FromE wraps a producer that may fail.
func FromE[T any](fn func() (T, error)) Value[T] {
	return Value[T]{fn: fn}
}

// IsSet reports whether a producer has been assigned.
func (v Value[T]) IsSet() bool {
	return v.fn != nil
}

// Get evaluates the producer. Results are not cached.
func (v Value[T]) Get() (T, error) {
	if v.fn == nil {
		var zero T
		return zero, nil
	}
	return v.fn()
}

// MustGet is like Get but panics on error.
func (v Value[T]) MustGet() T {
	res, err := v.Get()
	if err != nil {
		panic(err)
	}
	return res
}
