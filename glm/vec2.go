package glm

import "fmt"

type Vec2[T numeric] [2]T

func (lhs Vec2[T]) Sub(rhs Vec2[T]) Vec2[T] {
	return Vec2[T]{
		lhs[0] - rhs[0],
		lhs[1] - rhs[1],
	}
}

// String formats the vector like a tuple, e.g. "(12.5, 40)".
func (lhs Vec2[T]) String() string {
	return fmt.Sprintf("(%v, %v)", lhs[0], lhs[1])
}
