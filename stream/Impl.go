package stream

import (
	"sync"
	"sync/atomic"

	"github.com/cornelk/hashmap"
	"github.com/emirpasic/gods/maps/treemap"
	"github.com/kabu1204/go-optional/optional"
	"github.com/kabu1204/go-optional/types"
	"github.com/panjf2000/ants/v2"
)

// source <- Filtered <- ToSlice

type Option[T any] func(*stream[T])
type wrapperType[T any] func(next *stream[T]) []Option[T]

type stream[T any] struct {
	source    types.Iterator[T]
	prev      *stream[T]
	wrapper   wrapperType[T]
	consumer  types.Consumer[T]
	settler   func(size int64, opts ...Option[T])
	cleaner   func()
	canceller func() bool
	parallel  int
	Name      string
}

func (s *stream[T]) terminate() {
	head := s.setFunctor()
	it := s.source
	head.settler(int64(it.Len()))
	for v, ok := it.Next(); ok && !head.canceller(); v, ok = it.Next() {
		head.consumeOne(*v)
	}
	head.cleaner()
}

func (s *stream[T]) consumeOne(e T) {
	s.consumer(e)
}

func (s *stream[T]) unwrap(next *stream[T]) {
	opts := s.wrapper(next)
	for _, o := range opts {
		o(s)
	}
}

func wrapConsumer[T any](c types.Consumer[T]) Option[T] { return func(s *stream[T]) { s.consumer = c } }
func wrapSettler[T any](c func(int64, ...Option[T])) Option[T] {
	return func(s *stream[T]) { s.settler = c }
}
func wrapCleaner[T any](c func()) Option[T]      { return func(s *stream[T]) { s.cleaner = c } }
func wrapCanceller[T any](c func() bool) Option[T] { return func(s *stream[T]) { s.canceller = c } }

func (s *stream[T]) setFunctor() *stream[T] {
	s.unwrap(&stream[T]{
		source:    s.source,
		prev:      s,
		consumer:  func(_ T) {},
		settler:   func(_ int64, _ ...Option[T]) {},
		cleaner:   func() {},
		canceller: func() bool { return false },
		parallel:  0,
		Name:      "DummyTail",
	})
	p := s
	for ; p.prev != nil; p = p.prev {
		p.prev.unwrap(p)
	}
	return p
}

func newStream[T any](prev *stream[T], wrapper wrapperType[T], name string) *stream[T] {
	return &stream[T]{
		source:   prev.source,
		prev:     prev,
		wrapper:  wrapper,
		parallel: 0,
		Name:     name,
	}
}

// stateless

func (s *stream[T]) Filter(p types.Predicate[T]) Stream[T] {
	// s is prev
	wrapper := func(next *stream[T]) []Option[T] {
		consumer := func(e T) {
			if p(e) {
				next.consumeOne(e)
			}
		}
		return append(defaultWrapper(next), wrapConsumer(consumer))
	}
	return newStream(s, wrapper, "Filter")
}

func (s *stream[T]) Map(f types.UnaryOperator[T]) Stream[T] {
	wrapper := func(next *stream[T]) []Option[T] {
		consumer := func(e T) {
			next.consumeOne(f(e))
		}
		return append(defaultWrapper(next), wrapConsumer(consumer))
	}
	return newStream(s, wrapper, "Map")
}

func (s *stream[T]) FlatMap(f func(T) Stream[T]) Stream[T] {
	wrapper := func(next *stream[T]) []Option[T] {
		consumer := func(e T) {
			stm := f(e)
			stm.ForEach(next.consumeOne)
		}
		return append(defaultWrapper(next), wrapConsumer(consumer))
	}
	return newStream(s, wrapper, "FlatMap")
}

func (s *stream[T]) Peek(f types.Consumer[T]) Stream[T] {
	wrapper := func(next *stream[T]) []Option[T] {
		consumer := func(e T) {
			f(e)
			next.consumeOne(e)
		}
		return append(defaultWrapper(next), wrapConsumer(consumer))
	}
	return newStream(s, wrapper, "Peek")
}

func (s *stream[T]) Parallel(n int) Stream[T] {
	wrapper := func(next *stream[T]) []Option[T] {
		var wg sync.WaitGroup
		var pool *ants.Pool
		settler := func(sz int64, opts ...Option[T]) {
			if n >= 0 {
				toggleParallel := func(this *stream[T]) { this.parallel = n }
				opts = append(opts, toggleParallel)
			}
			for _, o := range opts {
				o(next.prev)
			}
			pool, _ = ants.NewPool(MaxInt(n, 1))
			next.settler(sz, opts...)
		}
		consumer := func(e T) {
			wg.Add(1)
			f := func() {
				next.consumeOne(e)
				wg.Done()
			}
			_ = pool.Submit(f)
		}
		cleaner := func() {
			wg.Wait()
			pool.Release()
			pool = nil
			next.cleaner()
		}
		return append(defaultWrapper(next), wrapSettler(settler), wrapConsumer(consumer), wrapCleaner[T](cleaner))
	}
	return newStream(s, wrapper, "Parallel")
}

// stateful

func (s *stream[T]) Distinct(f types.IntFunction[T]) Stream[T] {
	wrapper := func(next *stream[T]) []Option[T] {
		var set *hashmap.HashMap
		settler := func(sz int64, opts ...Option[T]) {
			for _, o := range opts {
				o(next.prev)
			}
			set = &hashmap.HashMap{}
			next.settler(sz, opts...)
		}
		consumer := func(e T) {
			hash := f(e)
			if _, exist := set.GetOrInsert(hash, struct{}{}); !exist {
				next.consumeOne(e)
			}
		}
		cleaner := func() {
			set = nil
			next.cleaner()
		}
		return append(defaultWrapper(next), wrapSettler(settler), wrapConsumer(consumer), wrapCleaner[T](cleaner))
	}
	return newStream(s, wrapper, "Distinct")
}

func (s *stream[T]) Sorted(cmp types.Comparator[T], keepParallel bool) Stream[T] {
	wrapper := func(next *stream[T]) []Option[T] {
		var buffer chan T
		var done chan struct{}
		var mp *treemap.Map
		this := next.prev
		settler := func(capacity int64, opts ...Option[T]) {
			for _, o := range opts {
				o(this)
			}
			mp = treemap.NewWith(func(a, b interface{}) int { return cmp(a.(T), b.(T)) })
			if this.parallel > 0 {
				buffer = make(chan T, MaxInt(int(capacity), 0))
				done = make(chan struct{})
				writer := func() {
					for e := range buffer {
						if c, ok := mp.Get(e); ok {
							mp.Put(e, c.(int)+1)
						} else {
							mp.Put(e, 1)
						}
					}
					close(done)
				}
				go writer()
			}
			next.settler(capacity, opts...)
		}
		consumer := func(e T) {
			if this.parallel > 0 {
				buffer <- e
			} else {
				if c, ok := mp.Get(e); ok {
					mp.Put(e, c.(int)+1)
				} else {
					mp.Put(e, 1)
				}
			}
		}
		cleaner := func() {
			opts := make([]Option[T], 0)
			if !keepParallel || this.parallel == 0 {
				opts = append(opts, func(_this *stream[T]) { _this.parallel = 0 })
			}
			if this.parallel > 0 {
				close(buffer)
				<-done
			}
			next.settler(int64(mp.Size()), opts...)
			it := mp.Iterator()
			for it.Next() {
				e, c := it.Key().(T), it.Value().(int)
				for ; c > 0; c-- {
					next.consumeOne(e)
				}
			}
			mp.Clear()
			mp = nil
			next.cleaner()
		}
		return append(defaultWrapper(next), wrapSettler(settler), wrapConsumer(consumer), wrapCleaner[T](cleaner))
	}
	if keepParallel {
		return newStream(s, wrapper, "Sorted").Parallel(-1)
	}
	return newStream(s, wrapper, "Sorted")
}

func (s *stream[T]) Limit(N int64) Stream[T] {
	wrapper := func(next *stream[T]) []Option[T] {
		var cnt *int64
		settler := func(sz int64, opts ...Option[T]) {
			for _, o := range opts {
				o(next.prev)
			}
			cnt = new(int64)
			next.settler(sz, opts...)
		}
		consumer := func(e T) {
			for old := atomic.LoadInt64(cnt); old < N; old = atomic.LoadInt64(cnt) {
				if atomic.CompareAndSwapInt64(cnt, old, old+1) {
					next.consumeOne(e)
					break
				}
			}
		}
		cleaner := func() {
			atomic.StoreInt64(cnt, N)
			cnt = nil
			next.cleaner()
		}
		canceller := func() bool {
			return atomic.LoadInt64(cnt) == N
		}
		return append(defaultWrapper(next), wrapSettler(settler),
			wrapConsumer(consumer), wrapCleaner[T](cleaner), wrapCanceller[T](canceller))
	}
	return newStream(s, wrapper, "Limit")
}

func (s *stream[T]) Skip(N int64) Stream[T] {
	wrapper := func(next *stream[T]) []Option[T] {
		var cnt *int64
		settler := func(sz int64, opts ...Option[T]) {
			for _, o := range opts {
				o(next.prev)
			}
			cnt = new(int64)
			next.settler(sz, opts...)
		}
		consumer := func(e T) {
			for old := atomic.LoadInt64(cnt); old < N; old = atomic.LoadInt64(cnt) {
				if atomic.CompareAndSwapInt64(cnt, old, old+1) {
					return
				}
			}
			next.consumeOne(e)
		}
		cleaner := func() {
			atomic.StoreInt64(cnt, N)
			cnt = nil
			next.cleaner()
		}
		return append(defaultWrapper(next), wrapSettler(settler), wrapConsumer(consumer), wrapCleaner[T](cleaner))
	}
	return newStream(s, wrapper, "Skip")
}

// termination

func (s *stream[T]) ToSlice() []T {
	var slice []T
	wrapper := func(next *stream[T]) []Option[T] {
		settler := func(sz int64, opts ...Option[T]) {
			for _, o := range opts {
				o(next.prev)
			}
			slice = make([]T, 0, MaxInt(int(sz), 0))
		}
		consumer := func(e T) {
			slice = append(slice, e)
		}
		return append(defaultWrapper(next), wrapConsumer(consumer), wrapSettler(settler))
	}
	newStream(s, wrapper, "ToSlice").terminate()
	return slice
}

func (s *stream[T]) ForEach(f types.Consumer[T]) {
	wrapper := func(next *stream[T]) []Option[T] {
		consumer := func(e T) { f(e) }
		return append(defaultWrapper(next), wrapConsumer(consumer))
	}
	newStream(s, wrapper, "ForEach").terminate()
}

func (s *stream[T]) AllMatch(p types.Predicate[T]) bool {
	var flag bool
	wrapper := func(next *stream[T]) []Option[T] {
		settler := func(sz int64, opts ...Option[T]) {
			for _, o := range opts {
				o(next.prev)
			}
			flag = true
			next.settler(sz)
		}
		consumer := func(e T) {
			if !p(e) {
				flag = false
			}
		}
		canceller := func() bool {
			return !flag
		}
		return append(defaultWrapper(next), wrapSettler(settler), wrapConsumer(consumer), wrapCanceller[T](canceller))
	}
	newStream(s, wrapper, "AllMatch").terminate()
	return flag
}

func (s *stream[T]) NoneMatch(p types.Predicate[T]) bool {
	var flag bool
	wrapper := func(next *stream[T]) []Option[T] {
		settler := func(sz int64, opts ...Option[T]) {
			for _, o := range opts {
				o(next.prev)
			}
			flag = true
			next.settler(sz)
		}
		consumer := func(e T) {
			if p(e) {
				flag = false
			}
		}
		canceller := func() bool {
			return !flag
		}
		return append(defaultWrapper(next), wrapSettler(settler), wrapConsumer(consumer), wrapCanceller[T](canceller))
	}
	newStream(s, wrapper, "NoneMatch").terminate()
	return flag
}

func (s *stream[T]) AnyMatch(p types.Predicate[T]) bool {
	var flag bool
	wrapper := func(next *stream[T]) []Option[T] {
		settler := func(sz int64, opts ...Option[T]) {
			for _, o := range opts {
				o(next.prev)
			}
			flag = false
			next.settler(sz)
		}
		consumer := func(e T) {
			if p(e) {
				flag = true
			}
		}
		canceller := func() bool {
			return flag
		}
		return append(defaultWrapper(next), wrapSettler(settler), wrapConsumer(consumer), wrapCanceller[T](canceller))
	}
	newStream(s, wrapper, "AnyMatch").terminate()
	return flag
}

func (s *stream[T]) Reduce(accumulator types.BinaryOperator[T]) optional.Optional[T] {
	var result T
	none := true
	wrapper := func(next *stream[T]) []Option[T] {
		consumer := func(e T) {
			if none {
				result = e
				none = false
			} else {
				result = accumulator(result, e)
			}
		}
		return append(defaultWrapper(next), wrapConsumer(consumer))
	}
	newStream(s, wrapper, "Reduce").terminate()
	if none {
		return optional.None[T]()
	}
	return optional.OfAny(result)
}

func (s *stream[T]) ReduceFrom(initValue T, accumulator types.BinaryOperator[T]) T {
	result := initValue
	wrapper := func(next *stream[T]) []Option[T] {
		consumer := func(e T) {
			result = accumulator(result, e)
		}
		return append(defaultWrapper(next), wrapConsumer(consumer))
	}
	newStream(s, wrapper, "ReduceFrom").terminate()
	return result
}

func (s *stream[T]) FindFirst() optional.Optional[T] {
	none := true
	var result T
	wrapper := func(next *stream[T]) []Option[T] {
		consumer := func(e T) {
			if none {
				result = e
				none = false
			}
		}
		canceller := func() bool {
			return !none
		}
		return append(defaultWrapper(next), wrapConsumer(consumer), wrapCanceller[T](canceller))
	}
	newStream(s, wrapper, "FindFirst").terminate()
	if none {
		return optional.None[T]()
	}
	return optional.OfAny(result)
}

func (s *stream[T]) FindFirstMatch(p types.Predicate[T]) optional.Optional[T] {
	none := true
	var result T
	wrapper := func(next *stream[T]) []Option[T] {
		consumer := func(e T) {
			if none && p(e) {
				result = e
				none = false
			}
		}
		return append(defaultWrapper(next), wrapConsumer(consumer))
	}
	newStream(s, wrapper, "FindFirstMatch").terminate()
	if none {
		return optional.None[T]()
	}
	return optional.OfAny(result)
}

func (s *stream[T]) Count() int64 {
	var cnt int64 = 0
	wrapper := func(next *stream[T]) []Option[T] {
		consumer := func(e T) { cnt++ }
		return append(defaultWrapper(next), wrapConsumer(consumer))
	}
	newStream(s, wrapper, "Count").terminate()
	return cnt
}
