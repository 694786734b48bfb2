package domain

import "github.com/google/uuid"

// SubmRecord carries the raw grading counters of one graded submission.
// Rows are produced by the grading pipeline and are read-only here.
type SubmRecord struct {
	ParticipantID uuid.UUID
	ProblemID     uuid.UUID
	SessionID     uuid.UUID // uuid.Nil when the submission was graded outside a timed session
	TotalTests    int
	PassedTests   int
	TotalCriteria int
	CriterionSum  float64 // sum of awarded criterion scores, each criterion worth MaxPoints
}

// ScorePolicy holds the named grading constants. Each problem is worth
// MaxPoints. When a problem grades by both automated tests and rubric
// criteria, each mode contributes SharedModeWeight of the total; a problem
// with a single grading mode gives that mode FullModeWeight.
type ScorePolicy struct {
	MaxPoints        float64
	SharedModeWeight float64
	FullModeWeight   float64
}

// DefaultScorePolicy returns the grading policy in effect since launch.
func DefaultScorePolicy() ScorePolicy {
	return ScorePolicy{
		MaxPoints:        10,
		SharedModeWeight: 0.5,
		FullModeWeight:   1.0,
	}
}

func (p ScorePolicy) withDefaults() ScorePolicy {
	def := DefaultScorePolicy()
	if p.MaxPoints <= 0 {
		p.MaxPoints = def.MaxPoints
	}
	if p.SharedModeWeight <= 0 {
		p.SharedModeWeight = def.SharedModeWeight
	}
	if p.FullModeWeight <= 0 {
		p.FullModeWeight = def.FullModeWeight
	}
	return p
}

// SubmScore normalizes the raw counters of one submission into [0, MaxPoints].
// A zero TotalTests or TotalCriteria means that grading mode does not apply to
// the problem; it contributes nothing and never causes a division by zero.
func (p ScorePolicy) SubmScore(rec SubmRecord) float64 {
	p = p.withDefaults()

	hasCriteria := rec.TotalCriteria > 0
	hasTests := rec.TotalTests > 0

	score := 0.0
	if hasCriteria {
		weight := p.FullModeWeight
		if hasTests {
			weight = p.SharedModeWeight
		}
		score += rec.CriterionSum / (float64(rec.TotalCriteria) * p.MaxPoints) * p.MaxPoints * weight
	}
	if hasTests {
		weight := p.FullModeWeight
		if hasCriteria {
			weight = p.SharedModeWeight
		}
		score += float64(rec.PassedTests) / float64(rec.TotalTests) * p.MaxPoints * weight
	}
	return score
}
