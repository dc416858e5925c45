package vec

// Utilization returns the ratio of live elements to total slots (0.0 to 1.0).
// Returns 0.0 if the vector has no capacity.
func (v *Vector[T]) Utilization() float64 {
	capacity := v.data.Capacity()
	if capacity == 0 {
		return 0
	}
	return float64(v.size) / float64(capacity)
}

// Grows returns how many times the vector replaced its block with a larger
// one since it was created (or last acquired storage via move).
func (v *Vector[T]) Grows() uint64 {
	return v.grows
}

// ElementsRelocated returns the total number of elements moved or copied
// between blocks by growth and Reserve. With doubling growth this stays
// linear in the number of appends, which is what makes appends amortized
// O(1).
func (v *Vector[T]) ElementsRelocated() uint64 {
	return v.relocated
}

// Metrics returns a snapshot of vector statistics.
func (v *Vector[T]) Metrics() VectorMetrics {
	return VectorMetrics{
		Len:               v.size,
		Cap:               v.data.Capacity(),
		Utilization:       v.Utilization(),
		Grows:             v.grows,
		ElementsRelocated: v.relocated,
	}
}

// VectorMetrics contains statistical information about a vector.
type VectorMetrics struct {
	Len               int     // Live elements
	Cap               int     // Total slots
	Utilization       float64 // Ratio of live elements to slots (0.0-1.0)
	Grows             uint64  // Block replacements due to growth
	ElementsRelocated uint64  // Elements transferred between blocks
}
