package vec2_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/gridroute/vec2"
)

func TestArithmetic(t *testing.T) {
	a := vec2.New(3, -2)
	b := vec2.New(-1, 5)

	assert.Equal(t, vec2.New(2, 3), a.Add(b))
	assert.Equal(t, vec2.New(4, -7), a.Sub(b))
	assert.Equal(t, vec2.New(9, -6), a.Scale(3))
	assert.Equal(t, vec2.New(-1, -2), a.Min(b))
	assert.Equal(t, vec2.New(3, 5), a.Max(b))
	assert.Equal(t, vec2.Zero[int](), a.Sub(a))
	assert.Equal(t, vec2.New(1, 1), vec2.One[int]())
}

func TestManhattan(t *testing.T) {
	cases := []struct {
		name string
		a, b vec2.Vec2[int]
		want int
	}{
		{"Same", vec2.New(4, 4), vec2.New(4, 4), 0},
		{"Axis", vec2.New(0, 0), vec2.New(0, 7), 7},
		{"Diagonal", vec2.New(-2, 3), vec2.New(1, -1), 7},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.a.ManhattanTo(tc.b))
			assert.Equal(t, tc.want, tc.b.ManhattanTo(tc.a))
		})
	}
}

func TestInBounds(t *testing.T) {
	lo, hi := vec2.New(0, 0), vec2.New(6, 6)

	for _, v := range []vec2.Vec2[int]{{0, 0}, {6, 6}, {3, 0}, {0, 6}} {
		assert.True(t, v.InBounds(lo, hi), "%v should be inside", v)
	}
	for _, v := range []vec2.Vec2[int]{{-1, 0}, {7, 0}, {0, 7}, {3, -1}} {
		assert.False(t, v.InBounds(lo, hi), "%v should be outside", v)
	}
}

func TestDirs(t *testing.T) {
	dirs := vec2.Dirs[int]()
	seen := map[vec2.Vec2[int]]bool{}
	for _, d := range dirs {
		assert.Equal(t, 1, d.Manhattan())
		seen[d] = true
	}
	assert.Len(t, seen, 4)
	assert.Equal(t, "(1,0)", dirs[0].String())
}

func TestSmallIntTypes(t *testing.T) {
	v := vec2.New[int8](-3, 4)
	assert.Equal(t, int8(7), v.Manhattan())
}
