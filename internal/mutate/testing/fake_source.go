// Package testing provides test doubles for the mutate package.
package testing

import "fmt"

// FakeSource replays scripted random values.
//
// Intn pops the next scripted int and Float64 pops the next scripted float.
// When a queue runs dry Intn returns 0 and Float64 returns DefaultFloat.
type FakeSource struct {
	Ints         []int
	Floats       []float64
	DefaultFloat float64

	IntnCalls    int
	Float64Calls int
	LastN        int
}

// NewFakeSource creates a source that replays ints and never corrupts once its
// floats are used up.
func NewFakeSource(ints []int, floats []float64) *FakeSource {
	return &FakeSource{
		Ints:         ints,
		Floats:       floats,
		DefaultFloat: 0.999999,
	}
}

// Intn returns the next scripted int. It panics if that value is outside [0,n).
func (f *FakeSource) Intn(n int) int {
	f.IntnCalls++
	f.LastN = n
	if len(f.Ints) == 0 {
		return 0
	}
	v := f.Ints[0]
	f.Ints = f.Ints[1:]
	if v < 0 || v >= n {
		panic(fmt.Sprintf("fake source: scripted %d outside [0,%d)", v, n))
	}
	return v
}

// Float64 returns the next scripted float.
func (f *FakeSource) Float64() float64 {
	f.Float64Calls++
	if len(f.Floats) == 0 {
		return f.DefaultFloat
	}
	v := f.Floats[0]
	f.Floats = f.Floats[1:]
	return v
}

// Remaining reports how many scripted ints and floats are left.
func (f *FakeSource) Remaining() (ints, floats int) {
	return len(f.Ints), len(f.Floats)
}
