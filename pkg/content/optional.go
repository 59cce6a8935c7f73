package content

// Opt holds an optional field value and remembers whether it was set.
// The zero Opt is unset. Some("") is set and serializes as an empty string.
type Opt[T any] struct {
	value T
	set   bool
}

// Some returns a set Opt holding v.
func Some[T any](v T) Opt[T] {
	return Opt[T]{value: v, set: true}
}

// Get returns the value and whether it was set.
func (o Opt[T]) Get() (T, bool) {
	return o.value, o.set
}

func (o Opt[T]) IsSet() bool {
	return o.set
}

// OrZero returns the value, or the zero value of T when unset.
func (o Opt[T]) OrZero() T {
	return o.value
}

func appendOpt[T any](fields []Field, name string, o Opt[T]) []Field {
	if v, ok := o.Get(); ok {
		return append(fields, Field{Name: name, Value: v})
	}
	return fields
}
