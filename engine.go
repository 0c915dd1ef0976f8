package engine

import (
	"io"
	"sort"

	"github.com/projectdiscovery/gologger"
)

// RankedPhrase pairs a generated phrase with its rearrangement score.
// Higher scores mean more rearrangement and sort first.
type RankedPhrase struct {
	Score  int
	Phrase string
}

// Default knobs for the anagram run.
const (
	DefaultMinWordLength = 4
	DefaultMaxWords      = 5
	DefaultMaxResults    = 10
)

// Options configure an Engine. Zero values fall back to the defaults
// above; Workers 0 lets the tuning heuristics pick.
type Options struct {
	Goal          string // phrase to anagrammatize
	MinWordLength int    // minimum raw byte length for a dictionary word
	MaxWords      int    // most words allowed in one anagram
	MaxResults    int    // how many ranked phrases Rank keeps
	Workers       int    // top-level search parallelism
}

// Engine generates multi-word anagrams of one goal phrase from a word
// dictionary and ranks them by how rearranged they are. The three stages
// are exposed separately (LoadDictionary, Anagrams, Rank) so a driver can
// report progress between them.
type Engine struct {
	opts  Options
	goal  *LetterMultiset
	index *DictionaryIndex
}

// NewEngine creates an engine for the given goal, applying defaults for
// unset options.
func NewEngine(opts Options) *Engine {
	if opts.MinWordLength <= 0 {
		opts.MinWordLength = DefaultMinWordLength
	}
	if opts.MaxWords <= 0 {
		opts.MaxWords = DefaultMaxWords
	}
	if opts.MaxResults <= 0 {
		opts.MaxResults = DefaultMaxResults
	}
	return &Engine{
		opts:  opts,
		goal:  FromString(lowercase(opts.Goal)),
		index: NewDictionaryIndex(opts.MinWordLength),
	}
}

// Goal returns the lowercased goal fingerprint.
func (e *Engine) Goal() *LetterMultiset {
	return e.goal
}

// LoadDictionary indexes the word list at path (plain or .gz). Returns
// how many words were accepted.
func (e *Engine) LoadDictionary(path string) (int, error) {
	return e.index.Load(path)
}

// ReadDictionary indexes words from an arbitrary reader.
func (e *Engine) ReadDictionary(r io.Reader) int {
	return e.index.ReadFrom(r)
}

// Anagrams runs the search over the indexed dictionary and expands every
// fingerprint sequence into its phrases.
func (e *Engine) Anagrams() []string {
	candidates := FilterCandidates(e.goal, e.index.Keys())
	gologger.Debug().Msgf("%d of %d fingerprints fit the goal", len(candidates), len(e.index.entries))

	seqs := Search(e.goal, candidates, e.opts.MaxWords, e.opts.Workers)
	gologger.Debug().Msgf("search produced %d fingerprint sequences", len(seqs))

	var phrases []string
	for _, seq := range seqs {
		phrases = append(phrases, ExpandPhrases(seq, e.index)...)
	}
	return phrases
}

// Rank scores each phrase against the goal and returns the most
// rearranged ones first, at most MaxResults of them. The sort is stable,
// so phrases with equal scores keep their generation order.
func (e *Engine) Rank(phrases []string) []RankedPhrase {
	ranked := make([]RankedPhrase, len(phrases))
	for i, p := range phrases {
		ranked[i] = RankedPhrase{Score: Score(e.opts.Goal, p), Phrase: p}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	if len(ranked) > e.opts.MaxResults {
		ranked = ranked[:e.opts.MaxResults]
	}
	return ranked
}
