package globs

// stream produces items one at a time until it reports false.
type stream[T any] interface {
	next() (T, bool)
}

// chainStream drains each part in order.
type chainStream[T any] struct {
	parts []stream[T]
}

// next implements stream.
func (c *chainStream[T]) next() (T, bool) {
	for len(c.parts) > 0 {
		if item, ok := c.parts[0].next(); ok {
			return item, true
		}

		c.parts = c.parts[1:]
	}

	var zero T

	return zero, false
}

// dedupStream drops items whose key was already produced.
type dedupStream[T any] struct {
	inner stream[T]
	key   func(T) string
	seen  map[string]struct{}
}

// newDedupStream wraps inner with a seen-set over key.
func newDedupStream[T any](inner stream[T], key func(T) string) *dedupStream[T] {
	return &dedupStream[T]{
		inner: inner,
		key:   key,
		seen:  make(map[string]struct{}),
	}
}

// next implements stream.
func (d *dedupStream[T]) next() (T, bool) {
	for {
		item, ok := d.inner.next()
		if !ok {
			return item, false
		}

		k := d.key(item)
		if _, dup := d.seen[k]; dup {
			continue
		}

		d.seen[k] = struct{}{}

		return item, true
	}
}
