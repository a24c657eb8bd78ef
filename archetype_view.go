package genpool

// View1 projects an archetype onto a single column of type V1. It
// borrows the underlying column slice; the view is only valid for as
// long as the archetype is not resized or cleared out from under it.
type View1[V1 any] struct {
	col []V1
}

func (v View1[V1]) Size() int { return len(v.col) }

// At returns a pointer to row i's value. Precondition: i < Size().
func (v View1[V1]) At(i int) *V1 { return &v.col[i] }

// Iter calls f with each row's value in ascending row order.
func (v View1[V1]) Iter(f func(v1 *V1)) {
	for i := range v.col {
		f(&v.col[i])
	}
}

// IterIndexed calls f with each row index and value in ascending order.
func (v View1[V1]) IterIndexed(f func(row int, v1 *V1)) {
	for i := range v.col {
		f(i, &v.col[i])
	}
}

// EachN calls f for count rows starting at first. Precondition: first +
// count <= Size().
func (v View1[V1]) EachN(first, count int, f func(v1 *V1)) {
	for i := first; i < first+count; i++ {
		f(&v.col[i])
	}
}

// EachNIndexed is EachN with the row index also supplied.
func (v View1[V1]) EachNIndexed(first, count int, f func(row int, v1 *V1)) {
	for i := first; i < first+count; i++ {
		f(i, &v.col[i])
	}
}

// View2 projects an archetype onto two columns, in whatever order the
// constructing Archetype method chose — independent of each column's
// declared position in the owning archetype.
type View2[V1, V2 any] struct {
	colA []V1
	colB []V2
}

func (v View2[V1, V2]) Size() int { return len(v.colA) }

func (v View2[V1, V2]) At(i int) (*V1, *V2) { return &v.colA[i], &v.colB[i] }

func (v View2[V1, V2]) Iter(f func(v1 *V1, v2 *V2)) {
	for i := range v.colA {
		f(&v.colA[i], &v.colB[i])
	}
}

func (v View2[V1, V2]) IterIndexed(f func(row int, v1 *V1, v2 *V2)) {
	for i := range v.colA {
		f(i, &v.colA[i], &v.colB[i])
	}
}

func (v View2[V1, V2]) EachN(first, count int, f func(v1 *V1, v2 *V2)) {
	for i := first; i < first+count; i++ {
		f(&v.colA[i], &v.colB[i])
	}
}

func (v View2[V1, V2]) EachNIndexed(first, count int, f func(row int, v1 *V1, v2 *V2)) {
	for i := first; i < first+count; i++ {
		f(i, &v.colA[i], &v.colB[i])
	}
}

// View3 projects an archetype onto three columns.
type View3[V1, V2, V3 any] struct {
	colA []V1
	colB []V2
	colC []V3
}

func (v View3[V1, V2, V3]) Size() int { return len(v.colA) }

func (v View3[V1, V2, V3]) At(i int) (*V1, *V2, *V3) {
	return &v.colA[i], &v.colB[i], &v.colC[i]
}

func (v View3[V1, V2, V3]) Iter(f func(v1 *V1, v2 *V2, v3 *V3)) {
	for i := range v.colA {
		f(&v.colA[i], &v.colB[i], &v.colC[i])
	}
}

func (v View3[V1, V2, V3]) IterIndexed(f func(row int, v1 *V1, v2 *V2, v3 *V3)) {
	for i := range v.colA {
		f(i, &v.colA[i], &v.colB[i], &v.colC[i])
	}
}

func (v View3[V1, V2, V3]) EachN(first, count int, f func(v1 *V1, v2 *V2, v3 *V3)) {
	for i := first; i < first+count; i++ {
		f(&v.colA[i], &v.colB[i], &v.colC[i])
	}
}

func (v View3[V1, V2, V3]) EachNIndexed(first, count int, f func(row int, v1 *V1, v2 *V2, v3 *V3)) {
	for i := first; i < first+count; i++ {
		f(i, &v.colA[i], &v.colB[i], &v.colC[i])
	}
}

// View4 projects an archetype onto four columns.
type View4[V1, V2, V3, V4 any] struct {
	colA []V1
	colB []V2
	colC []V3
	colD []V4
}

func (v View4[V1, V2, V3, V4]) Size() int { return len(v.colA) }

func (v View4[V1, V2, V3, V4]) At(i int) (*V1, *V2, *V3, *V4) {
	return &v.colA[i], &v.colB[i], &v.colC[i], &v.colD[i]
}

func (v View4[V1, V2, V3, V4]) Iter(f func(v1 *V1, v2 *V2, v3 *V3, v4 *V4)) {
	for i := range v.colA {
		f(&v.colA[i], &v.colB[i], &v.colC[i], &v.colD[i])
	}
}

func (v View4[V1, V2, V3, V4]) IterIndexed(f func(row int, v1 *V1, v2 *V2, v3 *V3, v4 *V4)) {
	for i := range v.colA {
		f(i, &v.colA[i], &v.colB[i], &v.colC[i], &v.colD[i])
	}
}

func (v View4[V1, V2, V3, V4]) EachN(first, count int, f func(v1 *V1, v2 *V2, v3 *V3, v4 *V4)) {
	for i := first; i < first+count; i++ {
		f(&v.colA[i], &v.colB[i], &v.colC[i], &v.colD[i])
	}
}

func (v View4[V1, V2, V3, V4]) EachNIndexed(first, count int, f func(row int, v1 *V1, v2 *V2, v3 *V3, v4 *V4)) {
	for i := first; i < first+count; i++ {
		f(i, &v.colA[i], &v.colB[i], &v.colC[i], &v.colD[i])
	}
}
