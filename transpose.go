package engine

import "strconv"

// Transposition is a witness that a run of Span bytes starting at Start
// in the source string also appears at Destination in the target. Both
// offsets index the space-stripped strings.
type Transposition struct {
	Start       int
	Destination int
	Span        int
}

func (t Transposition) String() string {
	return "(" + strconv.Itoa(t.Start) + "->" + strconv.Itoa(t.Destination) +
		" x" + strconv.Itoa(t.Span) + ")"
}

// Transpositions enumerates every shared substring of source and target
// after stripping spaces from both. Results come out ordered by start
// position, then by span, then by destination.
func Transpositions(source, target string) []Transposition {
	src := stripSpaces(nil, source)
	dst := stripSpaces(nil, target)
	return enumerate(src, dst, nil)
}

// enumerate appends the shared substrings of src and dst to ts. Cubic in
// the source length, which is fine at phrase scale.
func enumerate(src, dst []byte, ts []Transposition) []Transposition {
	n := len(src)
	for start := 0; start < n; start++ {
		for end := start; end < n; end++ {
			span := end - start + 1
			for d := 0; d+span <= n && d+span <= len(dst); d++ {
				if memEqual(src[start:], dst[d:], span) {
					ts = append(ts, Transposition{Start: start, Destination: d, Span: span})
				}
			}
		}
	}
	return ts
}

// Covers reports whether the source ranges and the destination ranges of
// the two transpositions both overlap — t2 is then explained by (part of)
// t1. The relation is reflexive and symmetric.
func Covers(t1, t2 Transposition) bool {
	return t1.Start < t2.Start+t2.Span && t2.Start < t1.Start+t1.Span &&
		t1.Destination < t2.Destination+t2.Span && t2.Destination < t1.Destination+t1.Span
}

// maximumOverlap picks the transposition covering the most others (the
// first maximum encountered wins) and filters out, in place, everything
// the winner covers.
func maximumOverlap(ts []Transposition) []Transposition {
	best, bestCount := 0, -1
	for i := range ts {
		count := 0
		for j := range ts {
			if Covers(ts[j], ts[i]) {
				count++
			}
		}
		if count > bestCount {
			bestCount, best = count, i
		}
	}

	chosen := ts[best]
	out := ts[:0]
	for _, t := range ts {
		if !Covers(chosen, t) {
			out = append(out, t)
		}
	}
	return out
}

// GreedyScore counts how many greedy reduction rounds it takes to empty
// ts; an empty set scores one. A phrase sharing one long run with the goal
// collapses in a single round; scrambled phrases need a round per block
// of letters that moved. The input slice is consumed.
func GreedyScore(ts []Transposition) int {
	count := 1
	for len(ts) > 0 {
		ts = maximumOverlap(ts)
		if len(ts) == 0 {
			break
		}
		count++
	}
	return count
}

// Score ranks how rearranged candidate is relative to goal: higher means
// more of the letter order moved. Spaces in either operand play no part.
func Score(goal, candidate string) int {
	ctx := scoreContextPool.Get().(*scoreContext)
	defer func() {
		ctx.reset()
		scoreContextPool.Put(ctx)
	}()

	ctx.src = stripSpaces(ctx.src[:0], goal)
	ctx.dst = stripSpaces(ctx.dst[:0], candidate)
	ctx.ts = enumerate(ctx.src, ctx.dst, ctx.ts[:0])
	score := GreedyScore(ctx.ts)
	ctx.ts = ctx.ts[:0]
	return score
}
