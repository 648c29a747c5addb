package fixtures

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNames(t *testing.T) {
	assert.Equal(t, []string{"bowtie", "comb", "donut_holes", "frame", "spiral"}, Names())
}

func TestLoad(t *testing.T) {
	donut := Load("donut_holes")
	assert.Len(t, donut.Exterior, 120)
	require.Len(t, donut.Interiors, 5)
	for _, hole := range donut.Interiors {
		assert.Len(t, hole, 16)
	}

	frame := Load("frame")
	assert.Equal(t, frame.Exterior[0], frame.Exterior[len(frame.Exterior)-1], "closed ring")
}

func TestGenerators(t *testing.T) {
	assert.Len(t, SimpleStar().Exterior, 10)
	assert.InDelta(t, 84, SquareWithHole().Area(), 1e-9)

	outline := StarOutline()
	assert.Greater(t, outline.Exterior.SignedArea(), 0.0)
	assert.Less(t, outline.Interiors[0].SignedArea(), 0.0)

	disc := StarryDisc()
	count := len(disc.Exterior)
	for _, hole := range disc.Interiors {
		count += len(hole)
	}
	assert.Greater(t, count, 80, "large enough to be indexed by default")

	assert.Len(t, Circle(0, 0, 1, 7), 7)
	assert.InDelta(t, 0, Bowtie().Exterior.SignedArea(), 1e-9)
}
