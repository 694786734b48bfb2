package domain

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Rankable is anything that can be placed on a ranked scoreboard. WithRank
// returns a copy with the rank set; ranks are never mutated in place.
type Rankable[T any] interface {
	RankScore() float64
	RankName() string
	WithRank(rank int) T
}

// Ranker imposes the total order of a leaderboard: score descending, then
// display name ascending under locale-aware collation. The collator makes
// ties among equal scores (for example several zero-score placeholders)
// fully deterministic for a given locale.
type Ranker struct {
	col *collate.Collator
}

func NewRanker(locale string) *Ranker {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.English
	}
	return &Ranker{col: collate.New(tag)}
}

// CompareNames reports the collation order of two display names.
func (r *Ranker) CompareNames(a, b string) int {
	return r.col.CompareString(a, b)
}

// AssignRanks returns a sorted copy of items with dense 1-based ranks
// assigned. Any provisional ranks on the input are overwritten. The input
// slice is left untouched.
func AssignRanks[T Rankable[T]](r *Ranker, items []T) []T {
	ranked := make([]T, len(items))
	copy(ranked, items)

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].RankScore() != ranked[j].RankScore() {
			return ranked[i].RankScore() > ranked[j].RankScore()
		}
		return r.CompareNames(ranked[i].RankName(), ranked[j].RankName()) < 0
	})

	for i := range ranked {
		ranked[i] = ranked[i].WithRank(i + 1)
	}
	return ranked
}
