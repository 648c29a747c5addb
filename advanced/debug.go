package advanced

import (
	"fmt"
	"log/slog"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/earcut/dbg"
)

// nodeValue describes a ring node for debug logs. It is only rendered if the
// record is actually emitted.
type nodeValue struct {
	r *ring
	h ref
}

func (r *ring) describe(h ref) slog.LogValuer {
	return nodeValue{r, h}
}

func (v nodeValue) LogValue() slog.Value {
	if v.h == nilRef {
		return slog.StringValue("Ø")
	}
	return slog.StringValue(v.r.dbgName(v.h))
}

// Readable name for a node, colored by its local shape: cyan for steiner
// nodes, red for reflex or flat corners, green for convex ones.
func (r *ring) dbgName(h ref) string {
	n := r.at(h)
	label := fmt.Sprintf("%s#%d(%g, %g)", dbg.Name(h), n.i, n.x, n.y)
	switch {
	case n.steiner:
		return aurora.Cyan(label).String()
	case area(r.at(n.prev), n, r.at(n.next)) >= 0:
		return aurora.Red(label).String()
	default:
		return aurora.Green(label).String()
	}
}
