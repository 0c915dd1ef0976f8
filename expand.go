package engine

import "strings"

// ExpandPhrases realizes a fingerprint sequence as every phrase it can
// spell: the cartesian product of each fingerprint's bucket, the words of
// one tuple joined by single spaces. Every fingerprint in a sequence
// originated as an index key, so empty buckets only occur when the
// sequence came from a different index.
func ExpandPhrases(seq AnagramSequence, ix *DictionaryIndex) []string {
	if len(seq) == 0 {
		return nil
	}
	words := make([][]string, len(seq))
	total := 1
	for i, set := range seq {
		words[i] = ix.Expand(set)
		if len(words[i]) == 0 {
			return nil
		}
		total *= len(words[i])
	}

	phrases := make([]string, 0, total)
	pick := make([]int, len(seq))
	var sb strings.Builder
	for {
		sb.Reset()
		for i, w := range words {
			if i > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(w[pick[i]])
		}
		phrases = append(phrases, sb.String())

		// odometer over the word choices, rightmost digit fastest
		i := len(pick) - 1
		for ; i >= 0; i-- {
			pick[i]++
			if pick[i] < len(words[i]) {
				break
			}
			pick[i] = 0
		}
		if i < 0 {
			break
		}
	}
	return phrases
}
