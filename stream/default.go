package stream

func defaultWrapper[T any](next *stream[T]) []Option[T] {
	defaultConsumer := func(e T) {
		next.consumeOne(e)
	}
	defaultSettler := func(capacity int64, opts ...Option[T]) {
		for _, o := range opts {
			o(next.prev)
		}
		next.settler(capacity, opts...)
	}
	defaultCleaner := func() {
		next.cleaner()
	}
	// cancellation propagates towards the tail; DummyTail answers false
	defaultCanceller := func() bool {
		return next.canceller()
	}
	return []Option[T]{
		wrapConsumer(defaultConsumer),
		wrapSettler(defaultSettler),
		wrapCleaner[T](defaultCleaner),
		wrapCanceller[T](defaultCanceller),
	}
}
