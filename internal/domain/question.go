package domain

import "time"

// MaxQuestionTitleLength bounds Question.Title, in characters.
const MaxQuestionTitleLength = 200

type Question struct {
	ID          int64     `json:"pk"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	AuthorID    string    `json:"-"`
	AuthorName  string    `json:"author"`
	Created     time.Time `json:"created"`
}

// IsAuthoredBy reports whether userID wrote the question.
func (q Question) IsAuthoredBy(userID string) bool {
	return userID != "" && q.AuthorID == userID
}

// CreatedOn reports whether the question was created on the calendar day of t,
// interpreted in t's location.
func (q Question) CreatedOn(t time.Time) bool {
	y1, m1, d1 := q.Created.Date()
	y2, m2, d2 := t.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// RankedQuestion is a question together with the score computed for it at read time.
type RankedQuestion struct {
	Question
	Score int `json:"ranking"`
}

// UserVotes holds one user's answer and feedback for a set of questions, keyed by question ID.
type UserVotes struct {
	Answers  map[int64]int
	Feedback map[int64]FeedbackValue
}
