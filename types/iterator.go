package types

type Iterator[T any] interface {
	Next() (*T, bool)
	Len() int // for slice: a definite number; for channel: -1
}

type sliceIterator[T any] struct {
	index int
	slice *Slice[T]
}

func (s *Slice[T]) Iterator() *sliceIterator[T] {
	return &sliceIterator[T]{
		index: -1,
		slice: s,
	}
}

func (it *sliceIterator[T]) hasNext() bool {
	return it.index < len(*it.slice)-1
}

func (it *sliceIterator[T]) Next() (*T, bool) {
	if it.hasNext() {
		it.index++
		return &((*it.slice)[it.index]), true
	}
	return nil, false
}

func (it *sliceIterator[T]) Len() int {
	return len(*it.slice)
}

func (it *sliceIterator[T]) At(i int) *T {
	return &((*it.slice)[i])
}

func (it *sliceIterator[T]) Seek(i int) bool {
	if i < 0 || i >= len(*it.slice) {
		return false
	}
	it.index = i
	return true
}

type chanIterator[T any] struct {
	ch <-chan T
}

func ChanIterator[T any](ch <-chan T) Iterator[T] {
	return &chanIterator[T]{ch: ch}
}

func (it *chanIterator[T]) Next() (*T, bool) {
	v, ok := <-it.ch
	if !ok {
		return nil, false
	}
	return &v, true
}

func (it *chanIterator[T]) Len() int {
	return -1
}
