package domain

import (
	"sort"
	"time"
)

// RankingConfig holds the weights used to score questions.
type RankingConfig struct {
	// AnswerPoints is added for each answer whose value lies in [MinValidAnswer, MaxValidAnswer].
	AnswerPoints int
	// LikePoints is added for each like.
	LikePoints int
	// DislikePoints is subtracted for each dislike.
	DislikePoints int
	// CreatedTodayBonus is added when the question was created today.
	CreatedTodayBonus int

	MinValidAnswer int
	MaxValidAnswer int
}

// DefaultRankingConfig returns the standard scoring weights.
func DefaultRankingConfig() RankingConfig {
	return RankingConfig{
		AnswerPoints:      10,
		LikePoints:        5,
		DislikePoints:     3,
		CreatedTodayBonus: 10,
		MinValidAnswer:    1,
		MaxValidAnswer:    5,
	}
}

// AnswerCount is the number of answers with a given value for a question.
type AnswerCount struct {
	QuestionID int64
	Value      int
	Count      int
}

// FeedbackCount is the number of feedback records with a given value for a question.
type FeedbackCount struct {
	QuestionID int64
	Value      FeedbackValue
	Count      int
}

// VoteTally summarises the votes that contribute to a question's score.
type VoteTally struct {
	ValidAnswers int
	Likes        int
	Dislikes     int
}

// TallyVotes folds grouped answer and feedback counts into per-question tallies.
// Answers outside the valid range and "other" feedback do not contribute.
func TallyVotes(answers []AnswerCount, feedback []FeedbackCount, config RankingConfig) map[int64]VoteTally {
	tallies := make(map[int64]VoteTally)

	for _, a := range answers {
		if a.Value < config.MinValidAnswer || a.Value > config.MaxValidAnswer {
			continue
		}
		t := tallies[a.QuestionID]
		t.ValidAnswers += a.Count
		tallies[a.QuestionID] = t
	}

	for _, f := range feedback {
		t := tallies[f.QuestionID]
		switch f.Value {
		case FeedbackLike:
			t.Likes += f.Count
		case FeedbackDislike:
			t.Dislikes += f.Count
		default:
			continue
		}
		tallies[f.QuestionID] = t
	}

	return tallies
}

// Score computes a question's ranking. today should already be in the
// location question creation dates are recorded in.
func Score(q Question, tally VoteTally, today time.Time, config RankingConfig) int {
	score := tally.ValidAnswers * config.AnswerPoints
	score += tally.Likes * config.LikePoints
	score -= tally.Dislikes * config.DislikePoints

	if q.CreatedOn(today) {
		score += config.CreatedTodayBonus
	}

	return score
}

// RankQuestions scores every question and returns the top n by descending score.
// Equal scores are ordered by ascending question ID. A non-positive n returns all questions.
func RankQuestions(
	questions []Question,
	tallies map[int64]VoteTally,
	today time.Time,
	config RankingConfig,
	n int,
) []RankedQuestion {
	ranked := make([]RankedQuestion, 0, len(questions))
	for _, q := range questions {
		ranked = append(ranked, RankedQuestion{
			Question: q,
			Score:    Score(q, tallies[q.ID], today, config),
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		return ranked[i].ID < ranked[j].ID
	})

	if n > 0 && len(ranked) > n {
		ranked = ranked[:n]
	}

	return ranked
}
