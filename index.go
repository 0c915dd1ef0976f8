package engine

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/pgzip"
	"github.com/projectdiscovery/gologger"
)

// bucket groups the words sharing one letter fingerprint.
type bucket struct {
	set   *LetterMultiset
	words []string
}

// DictionaryIndex maps letter fingerprints to the words that produce
// them. It is built once at startup and read-only afterwards. Keys come
// back in first-seen order, which keeps runs over the same wordfile
// reproducible.
type DictionaryIndex struct {
	minLength int
	buckets   map[string]int
	entries   []bucket
	keyBuf    []byte
}

// NewDictionaryIndex creates an empty index. Words shorter than
// minLength bytes on the raw input line are ignored — the gate counts
// bytes, so multi-byte letters weigh their encoded width.
func NewDictionaryIndex(minLength int) *DictionaryIndex {
	return &DictionaryIndex{
		minLength: minLength,
		buckets:   make(map[string]int, bucketCapacityHint()),
	}
}

// Load indexes the newline-delimited word list at path. Files ending in
// .gz are decompressed on the fly. Returns how many lines were accepted.
func (ix *DictionaryIndex) Load(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("open wordfile: %w", err)
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		zr, err := pgzip.NewReader(f)
		if err != nil {
			return 0, fmt.Errorf("open wordfile: %w", err)
		}
		defer zr.Close()
		r = zr
	}
	return ix.ReadFrom(r), nil
}

// ReadFrom indexes words line by line. A read error mid-stream stops the
// scan; everything indexed before the error stays usable.
func (ix *DictionaryIndex) ReadFrom(r io.Reader) int {
	sc := bufio.NewScanner(r)
	n := 0
	for sc.Scan() {
		word := sc.Text()
		if len(word) < ix.minLength {
			continue
		}
		ix.add(word)
		n++
	}
	if err := sc.Err(); err != nil {
		gologger.Warning().Msgf("wordfile read stopped early: %v", err)
	}
	return n
}

// add files word under its fingerprint, deduplicated within the bucket.
// The stored word keeps its original casing; only the fingerprint is
// computed over the lowercased form.
func (ix *DictionaryIndex) add(word string) {
	set := FromString(lowercase(word))
	ix.keyBuf = set.appendKey(ix.keyBuf[:0])
	pos, ok := ix.buckets[unsafeBytesToString(ix.keyBuf)]
	if !ok {
		ix.buckets[string(ix.keyBuf)] = len(ix.entries)
		ix.entries = append(ix.entries, bucket{set: set, words: []string{word}})
		return
	}
	b := &ix.entries[pos]
	for _, w := range b.words {
		if w == word {
			return
		}
	}
	b.words = append(b.words, word)
}

// Keys returns every distinct fingerprint in first-seen order.
func (ix *DictionaryIndex) Keys() []*LetterMultiset {
	keys := make([]*LetterMultiset, len(ix.entries))
	for i := range ix.entries {
		keys[i] = ix.entries[i].set
	}
	return keys
}

// Expand returns the words behind one fingerprint, in the order they were
// first read. The returned slice is owned by the index; callers must not
// modify it.
func (ix *DictionaryIndex) Expand(set *LetterMultiset) []string {
	key := set.appendKey(make([]byte, 0, 64))
	pos, ok := ix.buckets[unsafeBytesToString(key)]
	if !ok {
		return nil
	}
	return ix.entries[pos].words
}
