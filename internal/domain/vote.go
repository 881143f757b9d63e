package domain

import (
	"fmt"
	"strconv"
)

const (
	MinAnswerValue = 0
	MaxAnswerValue = 5
)

// Answer is a user's numeric response to a question. Zero means unanswered.
type Answer struct {
	QuestionID int64
	AuthorID   string
	Value      int
	Comment    string
}

type FeedbackValue string

const (
	FeedbackLike    FeedbackValue = "like"
	FeedbackDislike FeedbackValue = "dislike"
	FeedbackOther   FeedbackValue = "other"
)

var ValidFeedbackValues = []FeedbackValue{
	FeedbackLike,
	FeedbackDislike,
	FeedbackOther,
}

// Feedback is a user's like/dislike/other reaction to a question.
type Feedback struct {
	QuestionID int64
	AuthorID   string
	Value      FeedbackValue
}

// VoteError is a rejected vote submission. Message is shown to the user as-is.
type VoteError struct {
	Message string
}

func (e *VoteError) Error() string {
	return e.Message
}

func voteErrorf(format string, args ...any) *VoteError {
	return &VoteError{Message: fmt.Sprintf(format, args...)}
}

func ErrIncompleteVote() *VoteError {
	return voteErrorf("Datos incompletos")
}

func ErrQuestionNotFound(questionPK string) *VoteError {
	return voteErrorf("Pregunta no encontrada: %s", questionPK)
}

func ErrSelfAnswer() *VoteError {
	return voteErrorf("No se puede votar tu propia pregunta")
}

func ErrSelfFeedback() *VoteError {
	return voteErrorf("No puedes votar tu propia pregunta")
}

// ParseAnswerValue validates a submitted answer value. Only ASCII digits are
// accepted, and the resulting number must lie in [MinAnswerValue, MaxAnswerValue].
func ParseAnswerValue(raw string) (int, error) {
	if raw == "" || !isDigits(raw) {
		return 0, voteErrorf("El valor no es digito: %s", raw)
	}

	v, err := strconv.Atoi(raw)
	if err != nil || v < MinAnswerValue || v > MaxAnswerValue {
		return 0, voteErrorf("Valor invalido: %s", raw)
	}

	return v, nil
}

// ParseFeedbackValue validates a submitted feedback value against ValidFeedbackValues.
func ParseFeedbackValue(raw string) (FeedbackValue, error) {
	for _, v := range ValidFeedbackValues {
		if raw == string(v) {
			return v, nil
		}
	}
	return "", voteErrorf("Valor invalido: %s", raw)
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
