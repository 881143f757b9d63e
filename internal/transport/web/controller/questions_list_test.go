package controller

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jbeshir/question-survey/internal/command"
	cmdmocks "github.com/jbeshir/question-survey/internal/command/mocks"
	"github.com/jbeshir/question-survey/internal/datasources/mocks"
	"github.com/jbeshir/question-survey/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestQuestionsList_ServeHTTP(t *testing.T) {
	created := time.Date(2024, 4, 27, 0, 0, 0, 0, time.UTC)
	ranked := []domain.RankedQuestion{
		{Question: domain.Question{ID: 2, Title: "Second", AuthorName: "bob", Created: created}, Score: 20},
		{Question: domain.Question{ID: 1, Title: "First", AuthorName: "amy", Created: created}, Score: 5},
	}

	cases := []struct {
		name          string
		setupContext  func(r *http.Request) *http.Request
		ranked        []domain.RankedQuestion
		rankErr       error
		fetchVotes    bool
		votes         domain.UserVotes
		votesErr      error
		wantStatus    int
		wantCacheCtrl string
		wantBody      string
	}{
		{
			name:          "anonymous",
			setupContext:  testContext(),
			ranked:        ranked,
			wantStatus:    http.StatusOK,
			wantCacheCtrl: "max-age=60",
			wantBody: `{"questions":[
				{"pk":2,"title":"Second","description":"","author":"bob","created":"2024-04-27T00:00:00Z","ranking":20},
				{"pk":1,"title":"First","description":"","author":"amy","created":"2024-04-27T00:00:00Z","ranking":5}
			]}`,
		},
		{
			name:         "authenticated_annotations",
			setupContext: testContextWithUserID("user-1"),
			ranked:       ranked,
			fetchVotes:   true,
			votes: domain.UserVotes{
				Answers:  map[int64]int{1: 4},
				Feedback: map[int64]domain.FeedbackValue{2: domain.FeedbackDislike, 1: domain.FeedbackOther},
			},
			wantStatus:    http.StatusOK,
			wantCacheCtrl: "private, no-store",
			wantBody: `{"questions":[
				{"pk":2,"title":"Second","description":"","author":"bob","created":"2024-04-27T00:00:00Z","ranking":20,
				 "answer":0,"like":false,"dislike":true},
				{"pk":1,"title":"First","description":"","author":"amy","created":"2024-04-27T00:00:00Z","ranking":5,
				 "answer":4,"like":false,"dislike":false}
			]}`,
		},
		{
			name:          "empty",
			setupContext:  testContextWithUserID("user-1"),
			wantStatus:    http.StatusOK,
			wantCacheCtrl: "private, no-store",
			wantBody:      `{"questions":[]}`,
		},
		{
			name:         "rank_error",
			setupContext: testContext(),
			rankErr:      errors.New("database error"),
			wantStatus:   http.StatusInternalServerError,
		},
		{
			name:         "votes_error",
			setupContext: testContextWithUserID("user-1"),
			ranked:       ranked,
			fetchVotes:   true,
			votesErr:     errors.New("database error"),
			wantStatus:   http.StatusInternalServerError,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rankCmd := cmdmocks.NewMockCommand[command.RankQuestionsRequest, []domain.RankedQuestion](t)
			votesFetcher := mocks.NewMockUserVotesFetcher(t)

			rankCmd.EXPECT().
				Execute(mock.Anything, command.RankQuestionsRequest{Limit: 20}).
				Return(tc.ranked, tc.rankErr)
			if tc.fetchVotes {
				votesFetcher.EXPECT().
					FetchUserVotes(mock.Anything, "user-1", []int64{2, 1}).
					Return(tc.votes, tc.votesErr)
			}

			controller := QuestionsList{
				Listing: QuestionListing{
					RankCmd:      rankCmd,
					VotesFetcher: votesFetcher,
					Limit:        20,
				},
				CacheMaxAge: time.Minute,
			}

			req := tc.setupContext(httptest.NewRequest(http.MethodGet, "/", nil))
			rec := httptest.NewRecorder()
			controller.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)
			if tc.wantBody != "" {
				assert.Equal(t, tc.wantCacheCtrl, rec.Header().Get("Cache-Control"))
				assert.JSONEq(t, tc.wantBody, rec.Body.String())
			}
		})
	}
}
