package controller

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/jbeshir/question-survey/internal/command"
	cmdmocks "github.com/jbeshir/question-survey/internal/command/mocks"
	"github.com/jbeshir/question-survey/internal/datasources/mocks"
	"github.com/jbeshir/question-survey/internal/domain"
	"github.com/jbeshir/question-survey/internal/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestQuestionAnswer_ServeHTTP(t *testing.T) {
	ranked := []domain.RankedQuestion{
		{Question: domain.Question{ID: 5, Title: "Q"}, Score: 10},
	}

	cases := []struct {
		name       string
		form       url.Values
		submitRes  command.SubmitVoteResponse
		submitErr  error
		wantList   bool
		listErr    error
		wantStatus int
		wantBody   string
		wantResult string
	}{
		{
			name:       "created",
			form:       url.Values{"question_pk": {"5"}, "value": {"3"}},
			submitRes:  command.SubmitVoteResponse{QuestionID: 5, Created: true},
			wantList:   true,
			wantStatus: http.StatusOK,
			wantBody: `{"ok":true,"questions":[{"pk":5,"title":"Q","description":"","author":"",
				"created":"0001-01-01T00:00:00Z","ranking":10,"answer":3,"like":false,"dislike":false}]}`,
			wantResult: metrics.VoteResultCreated,
		},
		{
			name:       "updated",
			form:       url.Values{"question_pk": {"5"}, "value": {"3"}},
			submitRes:  command.SubmitVoteResponse{QuestionID: 5, Created: false},
			wantList:   true,
			wantStatus: http.StatusOK,
			wantResult: metrics.VoteResultUpdated,
		},
		{
			name:       "passes_comment",
			form:       url.Values{"question_pk": {"5"}, "value": {"1"}, "comment": {"no aplica"}},
			submitRes:  command.SubmitVoteResponse{QuestionID: 5, Created: true},
			wantList:   true,
			wantStatus: http.StatusOK,
			wantResult: metrics.VoteResultCreated,
		},
		{
			name:       "validation_error",
			form:       url.Values{"question_pk": {"5"}, "value": {"9"}},
			submitErr:  &domain.VoteError{Message: "Valor invalido: 9"},
			wantStatus: http.StatusOK,
			wantBody:   `{"ok":false,"error":"Valor invalido: 9"}`,
			wantResult: metrics.VoteResultRejected,
		},
		{
			name:       "self_vote",
			form:       url.Values{"question_pk": {"5"}, "value": {"2"}},
			submitErr:  domain.ErrSelfAnswer(),
			wantStatus: http.StatusOK,
			wantBody:   `{"ok":false,"error":"No se puede votar tu propia pregunta"}`,
			wantResult: metrics.VoteResultRejected,
		},
		{
			name:       "store_error",
			form:       url.Values{"question_pk": {"5"}, "value": {"2"}},
			submitErr:  fmt.Errorf("storing answer: %w", errors.New("deadlock")),
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"ok":false,"error":"Error interno"}`,
			wantResult: metrics.VoteResultError,
		},
		{
			name:       "list_error_after_vote",
			form:       url.Values{"question_pk": {"5"}, "value": {"2"}},
			submitRes:  command.SubmitVoteResponse{QuestionID: 5, Created: true},
			wantList:   true,
			listErr:    errors.New("database error"),
			wantStatus: http.StatusOK,
			wantBody:   `{"ok":true,"questions":[]}`,
			wantResult: metrics.VoteResultCreated,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			submitCmd := cmdmocks.NewMockCommand[command.SubmitVoteRequest, command.SubmitVoteResponse](t)
			rankCmd := cmdmocks.NewMockCommand[command.RankQuestionsRequest, []domain.RankedQuestion](t)
			votesFetcher := mocks.NewMockUserVotesFetcher(t)

			submitCmd.EXPECT().
				Execute(mock.Anything, command.SubmitVoteRequest{
					UserID:     "voter",
					QuestionPK: tc.form.Get("question_pk"),
					Value:      tc.form.Get("value"),
					Comment:    tc.form.Get("comment"),
				}).
				Return(tc.submitRes, tc.submitErr)

			if tc.wantList {
				rankCmd.EXPECT().
					Execute(mock.Anything, command.RankQuestionsRequest{Limit: 20}).
					Return(ranked, tc.listErr)
				if tc.listErr == nil {
					votesFetcher.EXPECT().
						FetchUserVotes(mock.Anything, "voter", []int64{5}).
						Return(domain.UserVotes{Answers: map[int64]int{5: 3}}, nil)
				}
			}

			voteMetrics := metrics.NewVoteMetrics(prometheus.NewRegistry())
			controller := QuestionAnswer{
				SubmitCmd: submitCmd,
				Listing: QuestionListing{
					RankCmd:      rankCmd,
					VotesFetcher: votesFetcher,
					Limit:        20,
				},
				Metrics: voteMetrics,
			}

			req := testContextWithUserID("voter")(formRequest(http.MethodPost, "/question/answer", tc.form))
			rec := httptest.NewRecorder()
			controller.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)
			if tc.wantBody != "" {
				assert.JSONEq(t, tc.wantBody, rec.Body.String())
			}
			assert.Equal(t, 1.0, testutil.ToFloat64(
				voteMetrics.VotesSubmitted.WithLabelValues(metrics.VoteKindAnswer, tc.wantResult)))
		})
	}
}

func TestQuestionFeedback_ServeHTTP(t *testing.T) {
	cases := []struct {
		name       string
		form       url.Values
		submitErr  error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "like",
			form:       url.Values{"question_pk": {"8"}, "value": {"like"}},
			wantStatus: http.StatusOK,
			wantBody: `{"ok":true,"questions":[{"pk":8,"title":"","description":"","author":"",
				"created":"0001-01-01T00:00:00Z","ranking":5,"answer":0,"like":true,"dislike":false}]}`,
		},
		{
			name:       "incomplete",
			form:       url.Values{"value": {"like"}},
			submitErr:  domain.ErrIncompleteVote(),
			wantStatus: http.StatusOK,
			wantBody:   `{"ok":false,"error":"Datos incompletos"}`,
		},
		{
			name:       "unknown_question",
			form:       url.Values{"question_pk": {"x"}, "value": {"like"}},
			submitErr:  domain.ErrQuestionNotFound("x"),
			wantStatus: http.StatusOK,
			wantBody:   `{"ok":false,"error":"Pregunta no encontrada: x"}`,
		},
		{
			name:       "unauthenticated",
			form:       url.Values{"question_pk": {"8"}, "value": {"like"}},
			submitErr:  command.ErrUnauthenticated,
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			submitCmd := cmdmocks.NewMockCommand[command.SubmitVoteRequest, command.SubmitVoteResponse](t)
			rankCmd := cmdmocks.NewMockCommand[command.RankQuestionsRequest, []domain.RankedQuestion](t)
			votesFetcher := mocks.NewMockUserVotesFetcher(t)

			submitCmd.EXPECT().
				Execute(mock.Anything, mock.AnythingOfType("command.SubmitVoteRequest")).
				Return(command.SubmitVoteResponse{QuestionID: 8, Created: true}, tc.submitErr)

			if tc.submitErr == nil {
				rankCmd.EXPECT().
					Execute(mock.Anything, mock.Anything).
					Return([]domain.RankedQuestion{{Question: domain.Question{ID: 8}, Score: 5}}, nil)
				votesFetcher.EXPECT().
					FetchUserVotes(mock.Anything, "voter", []int64{8}).
					Return(domain.UserVotes{Feedback: map[int64]domain.FeedbackValue{8: domain.FeedbackLike}}, nil)
			}

			controller := QuestionFeedback{
				SubmitCmd: submitCmd,
				Listing: QuestionListing{
					RankCmd:      rankCmd,
					VotesFetcher: votesFetcher,
					Limit:        20,
				},
			}

			req := testContextWithUserID("voter")(formRequest(http.MethodPost, "/question/like", tc.form))
			rec := httptest.NewRecorder()
			controller.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)
			if tc.wantBody != "" {
				assert.JSONEq(t, tc.wantBody, rec.Body.String())
			}
		})
	}
}
