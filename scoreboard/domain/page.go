package domain

import "github.com/google/uuid"

// SlicePage windows the ranked sequence to the 1-based page of the given
// limit. A page past the end yields an empty, non-nil slice.
func SlicePage[T any](items []T, page, limit int) (data []T, hasMore bool, totalPages int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 1
	}

	totalPages = (len(items) + limit - 1) / limit
	hasMore = len(items) > page*limit

	start := (page - 1) * limit
	if start >= len(items) {
		return []T{}, hasMore, totalPages
	}
	end := start + limit
	if end > len(items) {
		end = len(items)
	}
	return items[start:end], hasMore, totalPages
}

// BasicInfo summarizes the un-sliced ranked sequence for the requesting
// participant. ArchiverName is the display name of the rank-1 holder.
type BasicInfo struct {
	CurrentRank       int
	TopScore          float64
	ArchiverName      string
	TotalParticipants int
}

// Summarize derives the top-three preview and the basic info block from the
// full ranked sequence. CurrentRank is 0 when the requesting participant is
// not on the board.
func Summarize(ranked []Entry, requestingID uuid.UUID) ([]Entry, BasicInfo) {
	topThree := ranked
	if len(topThree) > 3 {
		topThree = topThree[:3]
	}

	info := BasicInfo{TotalParticipants: len(ranked)}
	if len(ranked) > 0 {
		info.TopScore = ranked[0].Score
		info.ArchiverName = ranked[0].Name
	}
	for _, e := range ranked {
		if e.ID == requestingID {
			info.CurrentRank = e.Rank
			break
		}
	}
	return topThree, info
}
