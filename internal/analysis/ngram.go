package analysis

import (
	"slices"
	"sort"
)

// NGram represents a repeated move sequence.
type NGram struct {
	N           int               `json:"n"`
	Sequence    []string          `json:"sequence"`
	Tokens      []uint8           `json:"-"`
	Count       int               `json:"count"`
	Occurrences []NGramOccurrence `json:"occurrences,omitempty"`
}

// NGramOccurrence represents where an n-gram was found.
type NGramOccurrence struct {
	StartIndex int   `json:"start_index"`
	TsMs       int64 `json:"ts_ms"`
}

// NGramReport contains the results of n-gram mining.
type NGramReport struct {
	TopNGrams map[int][]NGram `json:"top_ngrams"` // Keyed by n
}

// RollingHash implements Rabin-Karp rolling hash for efficient n-gram detection.
type RollingHash struct {
	base   uint64
	hash   uint64
	pow    uint64 // base^(n-1) for removal
	window []uint8
	n      int
}

// NewRollingHash creates a new rolling hash for window size n.
func NewRollingHash(n int) *RollingHash {
	rh := &RollingHash{
		base:   131, // prime above the token range
		n:      n,
		window: make([]uint8, 0, n),
	}

	rh.pow = 1
	for i := 0; i < n-1; i++ {
		rh.pow *= rh.base
	}

	return rh
}

// Roll adds a token, dropping the oldest once the window is full.
func (rh *RollingHash) Roll(token uint8) {
	if len(rh.window) < rh.n {
		rh.window = append(rh.window, token)
		rh.hash = rh.hash*rh.base + uint64(token)
		return
	}

	old := rh.window[0]
	rh.hash = (rh.hash-uint64(old)*rh.pow)*rh.base + uint64(token)

	copy(rh.window, rh.window[1:])
	rh.window[rh.n-1] = token
}

// Hash returns the current hash value.
func (rh *RollingHash) Hash() uint64 {
	return rh.hash
}

// Window returns a copy of the current window.
func (rh *RollingHash) Window() []uint8 {
	return slices.Clone(rh.window)
}

// Ready returns true if the window is full.
func (rh *RollingHash) Ready() bool {
	return len(rh.window) == rh.n
}

// ngramEntry tracks n-gram occurrences during mining.
type ngramEntry struct {
	tokens      []uint8
	first       int
	count       int
	occurrences []NGramOccurrence
}

// maxOccurrences caps the sample occurrences kept per n-gram.
const maxOccurrences = 10

// MineNGrams finds the top-K most frequent repeated n-grams for each n in
// [minN, maxN].
func MineNGrams(steps []Step, minN, maxN, topK int) *NGramReport {
	report := &NGramReport{
		TopNGrams: make(map[int][]NGram),
	}

	tokens := make([]uint8, len(steps))
	for i, st := range steps {
		tokens[i] = moveTokens[st.Move]
	}

	for n := max(minN, 1); n <= maxN && n <= len(steps); n++ {
		if ngrams := mineNGramsForN(tokens, steps, n, topK); len(ngrams) > 0 {
			report.TopNGrams[n] = ngrams
		}
	}

	return report
}

// mineNGramsForN mines n-grams of a specific length.
func mineNGramsForN(tokens []uint8, steps []Step, n, topK int) []NGram {
	counts := make(map[uint64][]*ngramEntry)
	rh := NewRollingHash(n)

	for i, token := range tokens {
		rh.Roll(token)
		if !rh.Ready() {
			continue
		}

		start := i - n + 1
		occ := NGramOccurrence{StartIndex: start, TsMs: steps[start].TsMs}
		window := tokens[start : i+1]

		// Entries sharing a hash are told apart by their tokens.
		bucket := counts[rh.Hash()]
		idx := slices.IndexFunc(bucket, func(e *ngramEntry) bool {
			return slices.Equal(e.tokens, window)
		})
		if idx < 0 {
			counts[rh.Hash()] = append(bucket, &ngramEntry{
				tokens:      rh.Window(),
				first:       start,
				count:       1,
				occurrences: []NGramOccurrence{occ},
			})
			continue
		}

		entry := bucket[idx]
		entry.count++
		if len(entry.occurrences) < maxOccurrences {
			entry.occurrences = append(entry.occurrences, occ)
		}
	}

	var entries []*ngramEntry
	for _, bucket := range counts {
		for _, entry := range bucket {
			if entry.count >= 2 {
				entries = append(entries, entry)
			}
		}
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].count != entries[j].count {
			return entries[i].count > entries[j].count
		}
		return entries[i].first < entries[j].first
	})

	if len(entries) > topK {
		entries = entries[:topK]
	}

	result := make([]NGram, len(entries))
	for i, entry := range entries {
		sequence := make([]string, n)
		for j := range sequence {
			sequence[j] = steps[entry.first+j].Move.Notation()
		}

		result[i] = NGram{
			N:           n,
			Sequence:    sequence,
			Tokens:      entry.tokens,
			Count:       entry.count,
			Occurrences: entry.occurrences,
		}
	}

	return result
}
