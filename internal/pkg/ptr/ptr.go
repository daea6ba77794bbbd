package ptr

// To returns a pointer to v. Partial-update inputs use pointer fields so only
// changed values reach the adapter.
func To[T any](v T) *T {
	return &v
}

// Coalesce returns the value pointed to by p if it's not nil, otherwise fallback.
func Coalesce[T any](p *T, fallback T) T {
	if p != nil {
		return *p
	}
	return fallback
}
