package sanitizer

// Apply runs value through transforms from left to right. Nil transforms
// are skipped.
func Apply[T any](value T, transforms ...func(T) T) T {
	for _, fn := range transforms {
		if fn != nil {
			value = fn(value)
		}
	}
	return value
}

// Compose freezes transforms into a single function. The slice is copied,
// so later changes by the caller do not affect the result.
func Compose[T any](transforms ...func(T) T) func(T) T {
	steps := make([]func(T) T, 0, len(transforms))
	for _, fn := range transforms {
		if fn != nil {
			steps = append(steps, fn)
		}
	}
	return func(value T) T {
		return Apply(value, steps...)
	}
}
