package keywords

import (
	"sort"
)

// Bucket holds the tokens of one language that share a first byte, sorted by their literal.
type Bucket struct {
	First  byte
	Tokens []Token
}

// Len returns the number of tokens in the bucket
func (b Bucket) Len() int {
	return len(b.Tokens)
}

// Partition groups tokens by first byte.
// Buckets come back ordered by first byte and each bucket is sorted byte-wise, so the result does not depend
// on the order of the input.
func Partition(tokens []Token) []Bucket {
	byFirst := map[byte][]Token{}
	for _, t := range tokens {
		byFirst[t.First()] = append(byFirst[t.First()], t)
	}

	firsts := make([]int, 0, len(byFirst))
	for c := range byFirst {
		firsts = append(firsts, int(c))
	}
	sort.Ints(firsts)

	buckets := make([]Bucket, 0, len(firsts))
	for _, c := range firsts {
		bucket := byFirst[byte(c)]
		sort.SliceStable(bucket, func(i, j int) bool {
			return bucket[i].Str < bucket[j].Str
		})
		buckets = append(buckets, Bucket{byte(c), bucket})
	}
	return buckets
}
