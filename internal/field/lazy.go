package field

// memo resolves a value once and caches it. Only a successful resolution is
// memoized; a failed one may be retried on the next access. Every handle
// variant shares this accessor instead of re-implementing the
// resolve-and-cache dance per field type.
type memo[T any] struct {
	resolve  func() (T, error)
	value    T
	resolved bool
}

func newMemo[T any](resolve func() (T, error)) *memo[T] {
	return &memo[T]{resolve: resolve}
}

// get returns the cached value, resolving it first if needed.
func (m *memo[T]) get() (T, error) {
	if m.resolved {
		return m.value, nil
	}
	value, err := m.resolve()
	if err != nil {
		var zero T
		return zero, err
	}
	m.value = value
	m.resolved = true
	return m.value, nil
}
