package glm

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVec2Sub(t *testing.T) {
	a := Vec2d{10, 20}
	b := Vec2d{2.5, 5}

	require.Equal(t, Vec2d{7.5, 15}, a.Sub(b))
	require.Equal(t, Vec2i{-3, 4}, Vec2i{2, 8}.Sub(Vec2i{5, 4}))
}

func TestVec2String(t *testing.T) {
	require.Equal(t, "(12.5, 40)", Vec2d{12.5, 40}.String())
	require.Equal(t, "(800, 600)", Vec2i{800, 600}.String())
}
