package advanced

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInterleave(t *testing.T) {
	assert.Equal(t, uint32(0), interleave(0))
	assert.Equal(t, uint32(0b1), interleave(0b1))
	assert.Equal(t, uint32(0b101), interleave(0b11))
	assert.Equal(t, uint32(0x55555555), interleave(0xFFFF))
}

func TestZOrder(t *testing.T) {
	z := &zOrderTest{minX: -10, minY: -10, invSize: 1}
	assert.Equal(t, uint32(0), z.zOrder(-10, -10))
	assert.Equal(t, uint32(0b01), z.zOrder(-9, -10))
	assert.Equal(t, uint32(0b10), z.zOrder(-10, -9))
	assert.Equal(t, uint32(0b11), z.zOrder(-9, -9))

	// Monotone in each coordinate, which is what makes range queries work
	for i := 0; i < 100; i++ {
		x, y := float64(i%10), float64(i/10)
		assert.LessOrEqual(t, z.zOrder(x, y), z.zOrder(x+1, y))
		assert.LessOrEqual(t, z.zOrder(x, y), z.zOrder(x, y+1))
	}
}

func TestNewEarTest(t *testing.T) {
	square := Flat{Vertices: []float64{0, 0, 10, 0, 10, 10, 0, 10}, Dim: 2}

	assert.IsType(t, scanTest{}, newEarTest(square, 4, 80))
	assert.IsType(t, scanTest{}, newEarTest(square, 4, -1))
	assert.IsType(t, scanTest{}, newEarTest(square, 4, 4))

	test, ok := newEarTest(square, 4, 3).(*zOrderTest)
	require.True(t, ok)
	assert.Equal(t, 0.0, test.minX)
	assert.Equal(t, 0.0, test.minY)
	assert.InDelta(t, 3276.7, test.invSize, epsilon)

	// Every vertex in one place has no extent to index
	point := Flat{Vertices: []float64{1, 1, 1, 1, 1, 1}, Dim: 2}
	assert.IsType(t, scanTest{}, newEarTest(point, 3, 0))
}

func TestSortLinked(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	coords := make([]float64, 0, 200)
	for i := 0; i < 100; i++ {
		coords = append(coords, rng.Float64()*100, rng.Float64()*100)
	}
	r, last := linkCoords(coords...)
	test := newEarTest(Flat{Vertices: coords, Dim: 2}, 100, 0).(*zOrderTest)
	test.prepare(r, last)

	// Find the head and walk the list
	head := last
	for r.at(head).prevZ != nilRef {
		head = r.at(head).prevZ
	}
	count := 0
	for p := head; p != nilRef; p = r.at(p).nextZ {
		if next := r.at(p).nextZ; next != nilRef {
			require.LessOrEqual(t, r.at(p).z, r.at(next).z)
			require.Equal(t, p, r.at(next).prevZ)
		}
		count++
	}
	assert.Equal(t, r.size(last), count)
}

func TestEarTestsAgree(t *testing.T) {
	// A comb has many reflex vertices near every ear
	coords := []float64{0, 0, 30, 0.5}
	for x := 29.0; x > 1; x -= 2 {
		coords = append(coords, x, 10+x/7, x-0.9, 2+x/50)
	}
	f := Flat{Vertices: coords, Dim: 2}
	n := f.VertexCount()

	r, last := linkCoords(coords...)
	z := newEarTest(f, n, 0)
	z.prepare(r, last)

	p := last
	for {
		assert.Equal(t, scanTest{}.isEar(r, p), z.isEar(r, p), "vertex %d", r.at(p).i)
		p = r.at(p).next
		if p == last {
			break
		}
	}
}
