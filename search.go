package engine

import (
	"sort"

	"golang.org/x/sync/errgroup"
)

// AnagramSequence is an ordered run of fingerprints whose combined
// letters equal a goal fingerprint. The same fingerprint appearing twice
// means a word with that fingerprint is used twice.
type AnagramSequence []*LetterMultiset

// FilterCandidates keeps the candidates that fit inside goal and orders
// them longest first — a long candidate either prunes immediately or
// consumes a big bite of the remainder, which keeps the search tree
// narrow. The sort is stable so equal lengths keep their incoming
// positions and runs stay reproducible.
func FilterCandidates(goal *LetterMultiset, candidates []*LetterMultiset) []*LetterMultiset {
	kept := make([]*LetterMultiset, 0, len(candidates))
	for _, c := range candidates {
		if c.Length() <= goal.Length() && Contains(goal, c) {
			kept = append(kept, c)
		}
	}
	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i].Length() > kept[j].Length()
	})
	return kept
}

// Search enumerates every sequence of candidate fingerprints whose
// combined letters equal goal, using at most maxWords fingerprints per
// sequence. The top level of the tree fans out across workers; within a
// branch the recursion runs sequentially. Goal and candidates are only
// ever read, so the workers share them without locks, and each branch
// collects into its own slot so the merged output keeps candidate order.
func Search(goal *LetterMultiset, candidates []*LetterMultiset, maxWords, workers int) []AnagramSequence {
	if maxWords <= 0 || len(candidates) == 0 {
		return nil
	}
	if workers <= 0 {
		workers = DefaultWorkers()
	}

	perBranch := make([][]AnagramSequence, len(candidates))
	var g errgroup.Group
	g.SetLimit(workers)
	for i := range candidates {
		i := i
		g.Go(func() error {
			perBranch[i] = branch(goal, candidates, i, maxWords)
			return nil
		})
	}
	// branches never fail, Wait is only the join point
	_ = g.Wait()

	var out []AnagramSequence
	for _, seqs := range perBranch {
		out = append(out, seqs...)
	}
	return out
}

// branch explores the subproblem rooted at candidates[i]. Slicing the
// follow-up candidates from i rather than 0 keeps chosen fingerprints in
// non-increasing position order, so one combination can never come out
// rearranged as a second result.
func branch(goal *LetterMultiset, candidates []*LetterMultiset, i, depth int) []AnagramSequence {
	w := candidates[i]
	m := Subtract(goal, w)
	switch m.Kind {
	case NoMatch:
		return nil
	case FullMatch:
		return []AnagramSequence{{w}}
	}

	rest := FilterCandidates(m.Remainder, candidates[i:])
	tails := search(m.Remainder, rest, depth-1)
	seqs := make([]AnagramSequence, 0, len(tails))
	for _, tail := range tails {
		seq := make(AnagramSequence, 0, len(tail)+1)
		seq = append(seq, w)
		seq = append(seq, tail...)
		seqs = append(seqs, seq)
	}
	return seqs
}

// search is the sequential core of the recursion. depth strictly
// decreases and the candidate slice only ever shrinks, so the walk is
// finite for any finite dictionary.
func search(goal *LetterMultiset, candidates []*LetterMultiset, depth int) []AnagramSequence {
	if depth == 0 {
		return nil
	}
	var out []AnagramSequence
	for i := range candidates {
		out = append(out, branch(goal, candidates, i, depth)...)
	}
	return out
}
