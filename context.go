package engine

import "sync"

// scoreContext carries the scratch buffers for one scoring pass: the two
// space-stripped strings and the transposition set built from them. Once
// the buffers have grown to phrase size, repeated Score calls allocate
// nothing.
type scoreContext struct {
	src []byte
	dst []byte
	ts  []Transposition
}

// Pool of score contexts so ranking many phrases reuses the same buffers
var scoreContextPool = sync.Pool{
	New: func() interface{} {
		return &scoreContext{
			src: make([]byte, 0, 128),
			dst: make([]byte, 0, 128),
			ts:  make([]Transposition, 0, 256),
		}
	},
}

// reset clears the context for reuse without freeing the buffers
func (ctx *scoreContext) reset() {
	ctx.src = ctx.src[:0]
	ctx.dst = ctx.dst[:0]
	ctx.ts = ctx.ts[:0]
}
