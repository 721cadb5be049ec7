package giveaway

import "math/rand"

// SelectWinners draws up to count distinct entries from pool without bias.
// It shuffles only the prefix it needs (partial Fisher-Yates) so drawing a
// handful of winners from thousands of entries stays cheap. The input slice
// is never mutated. With count >= len(pool) every entry wins.
func SelectWinners(rng *rand.Rand, pool []string, count int) []string {
	if count <= 0 || len(pool) == 0 {
		return nil
	}
	scratch := make([]string, len(pool))
	copy(scratch, pool)
	if count > len(scratch) {
		count = len(scratch)
	}
	for i := 0; i < count; i++ {
		if rest := len(scratch) - i; rest > 1 {
			j := i + rng.Intn(rest)
			scratch[i], scratch[j] = scratch[j], scratch[i]
		}
	}
	return scratch[:count]
}

// dedupe removes repeated IDs preserving first-seen order. Reaction fetches
// paginate and the page boundary can repeat a user.
func dedupe(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := ids[:0:0]
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
