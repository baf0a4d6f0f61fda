package vector

// ElemSize returns the size in bytes of one element slot.
func (v *Vector[T]) ElemSize() int {
	return int(elemSize[T]())
}

// SizeInUse returns the number of bytes occupied by live elements.
func (v *Vector[T]) SizeInUse() int {
	return v.Len() * v.ElemSize()
}

// SizeReserved returns the size in bytes of the storage region.
func (v *Vector[T]) SizeReserved() int {
	if v == nil {
		return 0
	}
	return int(v.region.bytes)
}

// Utilization returns the ratio of live elements to capacity (0.0 to 1.0).
// Returns 0.0 if the vector has no storage.
func (v *Vector[T]) Utilization() float64 {
	capacity := v.Cap()
	if capacity == 0 {
		return 0
	}
	return float64(v.Len()) / float64(capacity)
}

// Metrics returns a snapshot of vector statistics.
func (v *Vector[T]) Metrics() VectorMetrics {
	return VectorMetrics{
		Len:           v.Len(),
		Cap:           v.Cap(),
		ElemSize:      v.ElemSize(),
		SizeInUse:     v.SizeInUse(),
		SizeReserved:  v.SizeReserved(),
		Utilization:   v.Utilization(),
		Allocations:   v.stats.allocations,
		Reallocations: v.stats.reallocations,
		Releases:      v.stats.releases,
	}
}

// VectorMetrics contains statistical information about a vector.
type VectorMetrics struct {
	Len           int     `json:"len" yaml:"len"`                     // Live elements
	Cap           int     `json:"cap" yaml:"cap"`                     // Element slots
	ElemSize      int     `json:"elem_size" yaml:"elem_size"`         // Bytes per slot
	SizeInUse     int     `json:"size_in_use" yaml:"size_in_use"`     // Bytes held by live elements
	SizeReserved  int     `json:"size_reserved" yaml:"size_reserved"` // Bytes in the storage region
	Utilization   float64 `json:"utilization" yaml:"utilization"`     // Len / Cap (0.0-1.0)
	Allocations   int     `json:"allocations" yaml:"allocations"`     // Regions obtained
	Reallocations int     `json:"reallocations" yaml:"reallocations"` // Relocations of live elements
	Releases      int     `json:"releases" yaml:"releases"`           // Regions returned
}
