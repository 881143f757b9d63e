package router

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/jbeshir/question-survey/internal/command"
	cmdmocks "github.com/jbeshir/question-survey/internal/command/mocks"
	"github.com/jbeshir/question-survey/internal/datasources/mocks"
	"github.com/jbeshir/question-survey/internal/domain"
	"github.com/jbeshir/question-survey/internal/metrics"
	"github.com/jbeshir/question-survey/internal/transport/web/session"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockDataset struct {
	*mocks.MockQuestionFetcher
	*mocks.MockQuestionLister
	*mocks.MockUserQuestionLister
	*mocks.MockQuestionCreator
	*mocks.MockQuestionUpdater
	*mocks.MockQuestionDeleter
	*mocks.MockAnswerUpserter
	*mocks.MockFeedbackUpserter
	*mocks.MockVoteCounter
	*mocks.MockUserVotesFetcher
	*mocks.MockUserCreator
	*mocks.MockUserByUsernameGetter
}

func newMockDataset(t *testing.T) mockDataset {
	return mockDataset{
		MockQuestionFetcher:      mocks.NewMockQuestionFetcher(t),
		MockQuestionLister:       mocks.NewMockQuestionLister(t),
		MockUserQuestionLister:   mocks.NewMockUserQuestionLister(t),
		MockQuestionCreator:      mocks.NewMockQuestionCreator(t),
		MockQuestionUpdater:      mocks.NewMockQuestionUpdater(t),
		MockQuestionDeleter:      mocks.NewMockQuestionDeleter(t),
		MockAnswerUpserter:       mocks.NewMockAnswerUpserter(t),
		MockFeedbackUpserter:     mocks.NewMockFeedbackUpserter(t),
		MockVoteCounter:          mocks.NewMockVoteCounter(t),
		MockUserVotesFetcher:     mocks.NewMockUserVotesFetcher(t),
		MockUserCreator:          mocks.NewMockUserCreator(t),
		MockUserByUsernameGetter: mocks.NewMockUserByUsernameGetter(t),
	}
}

type testRouter struct {
	handler  http.Handler
	dataset  mockDataset
	rank     *cmdmocks.MockCommand[command.RankQuestionsRequest, []domain.RankedQuestion]
	answer   *cmdmocks.MockCommand[command.SubmitVoteRequest, command.SubmitVoteResponse]
	feedback *cmdmocks.MockCommand[command.SubmitVoteRequest, command.SubmitVoteResponse]
	auth     *cmdmocks.MockCommand[command.AuthenticateUserRequest, domain.User]
	sessions *session.Store
}

func newTestRouter(t *testing.T) testRouter {
	tr := testRouter{
		dataset:  newMockDataset(t),
		rank:     cmdmocks.NewMockCommand[command.RankQuestionsRequest, []domain.RankedQuestion](t),
		answer:   cmdmocks.NewMockCommand[command.SubmitVoteRequest, command.SubmitVoteResponse](t),
		feedback: cmdmocks.NewMockCommand[command.SubmitVoteRequest, command.SubmitVoteResponse](t),
		auth:     cmdmocks.NewMockCommand[command.AuthenticateUserRequest, domain.User](t),
		sessions: session.NewStore([]byte(testSessionSecret), false),
	}

	handler, err := MakeRouter(
		Config{
			Logger:       slog.New(slog.DiscardHandler),
			Clock:        clockwork.NewFakeClock(),
			Location:     time.UTC,
			RankingLimit: 20,
			RSS:          RSSConfig{BaseURL: "https://survey.example.com", CacheMaxAge: time.Minute},
			Registry:     metrics.NewRegistry(),
		},
		tr.dataset,
		Commands{
			RankQuestions:    tr.rank,
			SubmitAnswer:     tr.answer,
			SubmitFeedback:   tr.feedback,
			AuthenticateUser: tr.auth,
		},
		tr.sessions,
		NewAuthMiddleware([]AuthValidator{NewSessionValidator(tr.sessions)}),
	)
	require.NoError(t, err)
	tr.handler = handler

	return tr
}

func (tr testRouter) loggedInCookies(t *testing.T, userID string) []*http.Cookie {
	rec := httptest.NewRecorder()
	require.NoError(t, tr.sessions.Login(rec, httptest.NewRequest(http.MethodPost, loginPath, nil), userID))
	return rec.Result().Cookies()
}

func TestMakeRouter_PublicRoutes(t *testing.T) {
	tr := newTestRouter(t)

	t.Run("health", func(t *testing.T) {
		rec := httptest.NewRecorder()
		tr.handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("metrics", func(t *testing.T) {
		rec := httptest.NewRecorder()
		tr.handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "go_goroutines")
	})

	t.Run("cors_preflight", func(t *testing.T) {
		rec := httptest.NewRecorder()
		tr.handler.ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/question/answer", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("index_anonymous", func(t *testing.T) {
		tr.rank.EXPECT().
			Execute(mock.Anything, command.RankQuestionsRequest{Limit: 20}).
			Return([]domain.RankedQuestion{{Question: domain.Question{ID: 1, Title: "Q"}, Score: 10}}, nil).
			Once()

		rec := httptest.NewRecorder()
		tr.handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		require.Equal(t, http.StatusOK, rec.Code)

		var body map[string][]map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		require.Len(t, body["questions"], 1)
		assert.NotContains(t, body["questions"][0], "answer")
		assert.NotEmpty(t, rec.Header().Get(requestIDHeader))
	})
}

func TestMakeRouter_ProtectedRoutesRedirect(t *testing.T) {
	tr := newTestRouter(t)

	cases := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/question/edit-list/"},
		{http.MethodGet, "/question/add/"},
		{http.MethodPost, "/question/add/"},
		{http.MethodGet, "/question/edit/1"},
		{http.MethodPost, "/question/delete/1"},
		{http.MethodPost, "/question/answer"},
		{http.MethodPost, "/question/like"},
	}

	for _, tc := range cases {
		t.Run(tc.method+"_"+tc.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			tr.handler.ServeHTTP(rec, httptest.NewRequest(tc.method, tc.path, nil))

			assert.Equal(t, http.StatusFound, rec.Code)
			assert.Equal(t, loginPath+"?next="+url.QueryEscape(tc.path), rec.Header().Get("Location"))
		})
	}
}

func TestMakeRouter_AnswerWithSession(t *testing.T) {
	tr := newTestRouter(t)

	tr.answer.EXPECT().
		Execute(mock.Anything, command.SubmitVoteRequest{UserID: "user-1", QuestionPK: "4", Value: "3"}).
		Return(command.SubmitVoteResponse{QuestionID: 4, Created: true}, nil)
	tr.rank.EXPECT().
		Execute(mock.Anything, command.RankQuestionsRequest{Limit: 20}).
		Return([]domain.RankedQuestion{{Question: domain.Question{ID: 4}, Score: 10}}, nil)
	tr.dataset.MockUserVotesFetcher.EXPECT().
		FetchUserVotes(mock.Anything, "user-1", []int64{4}).
		Return(domain.UserVotes{Answers: map[int64]int{4: 3}}, nil)

	r := httptest.NewRequest(http.MethodPost, "/question/answer", strings.NewReader("question_pk=4&value=3"))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, c := range tr.loggedInCookies(t, "user-1") {
		r.AddCookie(c)
	}

	rec := httptest.NewRecorder()
	tr.handler.ServeHTTP(rec, r)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t,
		`{"ok":true,"questions":[{"pk":4,"title":"","description":"","author":"","created":"0001-01-01T00:00:00Z","ranking":10,"answer":3,"like":false,"dislike":false}]}`,
		rec.Body.String())
}

func TestMakeRouter_UnknownMethod(t *testing.T) {
	tr := newTestRouter(t)

	rec := httptest.NewRecorder()
	tr.handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/question/answer", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
