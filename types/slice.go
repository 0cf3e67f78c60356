package types

func (s *Array[T]) Len() int           { return len(s.Data) }
func (s *Array[T]) Swap(i, j int)      { s.Data[i], s.Data[j] = s.Data[j], s.Data[i] }
func (s *Array[T]) Less(i, j int) bool { return s.Cmp(s.Data[i], s.Data[j]) < 0 }
