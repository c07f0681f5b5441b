package trading

import "strings"

// Labeler is implemented by every concrete type in package kinds.
type Labeler interface {
	Label() string
}

func label[T Labeler]() string {
	var t T
	return t.Label()
}

func join(labels ...string) string {
	return strings.Join(labels, "_")
}

// DualSystem is a system built for one venue and one strategy.
type DualSystem[E, S Labeler] struct{}

func NewDualSystem[E, S Labeler]() DualSystem[E, S] {
	return DualSystem[E, S]{}
}

// Name identifies the system by the labels of its type arguments.
func (DualSystem[E, S]) Name() string {
	return join(label[E](), label[S]())
}

// TripleSystem adds a time frame to DualSystem.
type TripleSystem[E, S, T Labeler] struct{}

func NewTripleSystem[E, S, T Labeler]() TripleSystem[E, S, T] {
	return TripleSystem[E, S, T]{}
}

func (TripleSystem[E, S, T]) Name() string {
	return join(label[E](), label[S](), label[T]())
}

// QuadSystem adds a market to TripleSystem.
type QuadSystem[E, S, T, M Labeler] struct{}

func NewQuadSystem[E, S, T, M Labeler]() QuadSystem[E, S, T, M] {
	return QuadSystem[E, S, T, M]{}
}

func (QuadSystem[E, S, T, M]) Name() string {
	return join(label[E](), label[S](), label[T](), label[M]())
}

// QuintSystem adds a risk level to QuadSystem.
type QuintSystem[E, S, T, M, R Labeler] struct{}

func NewQuintSystem[E, S, T, M, R Labeler]() QuintSystem[E, S, T, M, R] {
	return QuintSystem[E, S, T, M, R]{}
}

func (QuintSystem[E, S, T, M, R]) Name() string {
	return join(label[E](), label[S](), label[T](), label[M](), label[R]())
}
