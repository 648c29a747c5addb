package advanced

import (
	"log/slog"
	"testing"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/earcut/dbg"
	"github.com/stretchr/testify/assert"
)

func TestDescribe(t *testing.T) {
	// An L shape has one reflex corner, at vertex 3
	r, last := linkCoords(0, 0, 20, 0, 20, 10, 10, 10, 10, 20, 0, 20)
	p := last
	for r.at(p).i != 3 {
		p = r.at(p).next
	}

	reflex := r.describe(p).LogValue()
	assert.Equal(t, slog.KindString, reflex.Kind())
	assert.Equal(t, aurora.Red(dbg.Name(p)+"#3(10, 10)").String(), reflex.String())

	convex := r.at(p).next
	assert.Equal(t, aurora.Green(dbg.Name(convex)+"#4(10, 20)").String(), r.describe(convex).LogValue().String())

	r.at(p).steiner = true
	assert.Equal(t, aurora.Cyan(dbg.Name(p)+"#3(10, 10)").String(), r.describe(p).LogValue().String())

	assert.Equal(t, "Ø", r.describe(nilRef).LogValue().String())
}
