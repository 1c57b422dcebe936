package stage

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// maxFields is the number of block fields a single stage can animate:
// X, Y, W, H and alpha.
const maxFields = 5

// tweenGroup animates up to maxFields float64 fields simultaneously. Values
// are written through the field pointers on every update.
type tweenGroup struct {
	tweens [maxFields]*gween.Tween
	fields [maxFields]*float64
	to     [maxFields]float64
	count  int
	done   bool
}

// add registers a tween from the field's current value to `to`.
func (g *tweenGroup) add(field *float64, to float64, duration float32, fn ease.TweenFunc) {
	g.tweens[g.count] = gween.New(float32(*field), float32(to), duration, fn)
	g.fields[g.count] = field
	g.to[g.count] = to
	g.count++
}

// update advances all tweens by dt seconds and writes their values.
func (g *tweenGroup) update(dt float32) {
	if g.done {
		return
	}
	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		*g.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	g.done = allDone
}

// finish writes every target value exactly. gween keeps time in float32, so
// a tween fed the remaining stage time can stop a hair short of its end.
func (g *tweenGroup) finish() {
	for i := 0; i < g.count; i++ {
		*g.fields[i] = g.to[i]
	}
	g.done = true
}

func (g *tweenGroup) reset() {
	*g = tweenGroup{}
}
