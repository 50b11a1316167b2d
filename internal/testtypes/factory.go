package testtypes

import "sync/atomic"

// Factory creates instances tagged with a sequence number.
type Factory struct {
	count atomic.Int64
}

func (f *Factory) NewStructA() *StructA {
	n := f.count.Add(1) - 1
	return &StructA{
		Tag: int(n),
	}
}

// Count returns the number of instances created.
func (f *Factory) Count() int {
	return int(f.count.Load())
}

func (f *Factory) NewInterfaceA() InterfaceA {
	return f.NewStructA()
}

func ExpectStructA(count int) []*StructA {
	var s []*StructA
	for i := range count {
		s = append(s, &StructA{Tag: i})
	}
	return s
}

func ExpectInterfaceA(count int) []InterfaceA {
	var s []InterfaceA
	for i := range count {
		s = append(s, &StructA{Tag: i})
	}
	return s
}
