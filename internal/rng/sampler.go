package rng

// Weighted pairs a category with its selection weight.
type Weighted[T any] struct {
	Value  T
	Weight float64
}

// Sampler picks one category per draw by cumulative weight.
// Category order is significant: ties resolve to the earliest category.
type Sampler[T any] struct {
	cats       []Weighted[T]
	cumulative []float64
}

// NewSampler builds a sampler over the given categories. At least one
// category is required.
func NewSampler[T any](cats ...Weighted[T]) Sampler[T] {
	if len(cats) == 0 {
		panic("rng: sampler needs at least one category")
	}
	cum := make([]float64, len(cats))
	total := 0.0
	for i, c := range cats {
		total += c.Weight
		cum[i] = total
	}
	return Sampler[T]{cats: cats, cumulative: cum}
}

// Pick returns the first category whose cumulative weight is >= draw.
// Draws past the final cumulative weight fall back to the last category.
func (s Sampler[T]) Pick(draw float64) T {
	for i, c := range s.cumulative {
		if draw <= c {
			return s.cats[i].Value
		}
	}
	return s.cats[len(s.cats)-1].Value
}

// Sample consumes exactly one draw from src.
func (s Sampler[T]) Sample(src Source) T {
	return s.Pick(src.Next())
}

// Total returns the sum of all weights.
func (s Sampler[T]) Total() float64 {
	return s.cumulative[len(s.cumulative)-1]
}

// Len returns the number of categories.
func (s Sampler[T]) Len() int {
	return len(s.cats)
}
