package http

import (
	"github.com/google/uuid"
	"github.com/skillarena/backend/scoreboard"
	"github.com/skillarena/backend/scoreboard/domain"
)

type ProblemScore struct {
	ID    string  `json:"id"`
	Title string  `json:"title"`
	Score float64 `json:"score"`
}

type LeaderboardEntry struct {
	ID              string                    `json:"id"`
	Rank            int                       `json:"rank"`
	Name            string                    `json:"name"`
	Avatar          string                    `json:"avatar"`
	Score           float64                   `json:"score"`
	ChallengeScores map[string]float64        `json:"challengeScores"`
	ProblemScores   map[string][]ProblemScore `json:"problemScores,omitempty"`
}

type BasicInfo struct {
	CurrentRank       int     `json:"currentRank"`
	TopScore          float64 `json:"topScore"`
	ArchiverName      string  `json:"archiverName"`
	TotalParticipants int     `json:"totalParticipants"`
}

type IndividualLeaderboardResponse struct {
	Data       []LeaderboardEntry `json:"data"`
	TopThree   []LeaderboardEntry `json:"topThree"`
	BasicInfo  BasicInfo          `json:"basicInfo"`
	HasMore    bool               `json:"hasMore"`
	TotalPages int                `json:"totalPages"`
}

type TeamMemberEntry struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

type TeamEntry struct {
	ID              string                    `json:"id"`
	Rank            int                       `json:"rank"`
	Name            string                    `json:"name"`
	Members         []TeamMemberEntry         `json:"members"`
	ChallengeScores map[string]float64        `json:"challengeScores"`
	ProblemScores   map[string][]ProblemScore `json:"problemScores"`
	Score           float64                   `json:"score"`
	Avatars         []string                  `json:"avatars"`
}

type TeamLeaderboardResponse struct {
	Data    []TeamEntry `json:"data"`
	HasMore bool        `json:"hasMore"`
}

func mapProblemScores(scores []domain.ProblemScore) []ProblemScore {
	mapped := make([]ProblemScore, len(scores))
	for i, ps := range scores {
		mapped[i] = ProblemScore{
			ID:    ps.ProblemID.String(),
			Title: ps.Title,
			Score: ps.Score,
		}
	}
	return mapped
}

func mapScoreMap(scores map[uuid.UUID]float64) map[string]float64 {
	mapped := make(map[string]float64, len(scores))
	for id, score := range scores {
		mapped[id.String()] = score
	}
	return mapped
}

func mapProblemScoreMap(scores map[uuid.UUID][]domain.ProblemScore) map[string][]ProblemScore {
	mapped := make(map[string][]ProblemScore, len(scores))
	for id, list := range scores {
		mapped[id.String()] = mapProblemScores(list)
	}
	return mapped
}

func mapEntry(e domain.Entry) LeaderboardEntry {
	entry := LeaderboardEntry{
		ID:              e.ID.String(),
		Rank:            e.Rank,
		Name:            e.Name,
		Avatar:          e.Avatar,
		Score:           e.Score,
		ChallengeScores: mapScoreMap(e.ChallengeScores),
	}
	if e.ProblemScores != nil {
		entry.ProblemScores = mapProblemScoreMap(e.ProblemScores)
	}
	return entry
}

func mapEntries(entries []domain.Entry) []LeaderboardEntry {
	mapped := make([]LeaderboardEntry, len(entries))
	for i, e := range entries {
		mapped[i] = mapEntry(e)
	}
	return mapped
}

func mapIndividualLeaderboard(lb *scoreboard.IndividualLeaderboard) IndividualLeaderboardResponse {
	return IndividualLeaderboardResponse{
		Data:     mapEntries(lb.Data),
		TopThree: mapEntries(lb.TopThree),
		BasicInfo: BasicInfo{
			CurrentRank:       lb.BasicInfo.CurrentRank,
			TopScore:          lb.BasicInfo.TopScore,
			ArchiverName:      lb.BasicInfo.ArchiverName,
			TotalParticipants: lb.BasicInfo.TotalParticipants,
		},
		HasMore:    lb.HasMore,
		TotalPages: lb.TotalPages,
	}
}

func mapTeamLeaderboard(lb *scoreboard.TeamLeaderboard) TeamLeaderboardResponse {
	data := make([]TeamEntry, len(lb.Data))
	for i, t := range lb.Data {
		members := make([]TeamMemberEntry, len(t.Members))
		for j, m := range t.Members {
			members[j] = TeamMemberEntry{
				ID:     m.UserID.String(),
				Name:   m.Name,
				Avatar: m.Avatar,
			}
		}
		avatars := t.Avatars
		if avatars == nil {
			avatars = []string{}
		}
		data[i] = TeamEntry{
			ID:              t.TeamID.String(),
			Rank:            t.Rank,
			Name:            t.Name,
			Members:         members,
			ChallengeScores: mapScoreMap(t.ChallengeScores),
			ProblemScores:   mapProblemScoreMap(t.ProblemScores),
			Score:           t.Score,
			Avatars:         avatars,
		}
	}
	return TeamLeaderboardResponse{
		Data:    data,
		HasMore: lb.HasMore,
	}
}
