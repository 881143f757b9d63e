package router

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/jbeshir/question-survey/internal/command"
	"github.com/jbeshir/question-survey/internal/datasources"
	"github.com/jbeshir/question-survey/internal/domain"
	"github.com/jbeshir/question-survey/internal/metrics"
	"github.com/jbeshir/question-survey/internal/transport/web/controller"
	"github.com/jbeshir/question-survey/internal/transport/web/session"
	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus"
)

// Commands groups the business operations exposed over HTTP.
type Commands struct {
	RankQuestions    command.Command[command.RankQuestionsRequest, []domain.RankedQuestion]
	SubmitAnswer     command.Command[command.SubmitVoteRequest, command.SubmitVoteResponse]
	SubmitFeedback   command.Command[command.SubmitVoteRequest, command.SubmitVoteResponse]
	AuthenticateUser command.Command[command.AuthenticateUserRequest, domain.User]
}

// RSSConfig describes the published feed.
type RSSConfig struct {
	BaseURL     string
	AuthorName  string
	AuthorEmail string
	CacheMaxAge time.Duration
}

type Config struct {
	Logger       *slog.Logger
	Clock        clockwork.Clock
	Location     *time.Location
	RankingLimit int
	RSS          RSSConfig
	Registry     *prometheus.Registry
	DB           controller.Pinger
}

func MakeRouter(
	cfg Config,
	dataset datasources.DatasetRepository,
	commands Commands,
	sessions *session.Store,
	authMiddleware func(http.Handler) http.Handler,
) (http.Handler, error) {
	httpMetrics := metrics.NewHTTPMetrics(cfg.Registry)
	voteMetrics := metrics.NewVoteMetrics(cfg.Registry)

	r := mux.NewRouter()
	r.Use(newLoggingMiddleware(cfg.Logger))
	r.Use(httpMetrics.Middleware)
	r.Use(corsMiddleware)
	r.Use(authMiddleware)

	listing := controller.QuestionListing{
		RankCmd:      commands.RankQuestions,
		VotesFetcher: dataset,
		Limit:        cfg.RankingLimit,
	}

	r.Handle("/", controller.QuestionsList{
		Listing:     listing,
		CacheMaxAge: cfg.RSS.CacheMaxAge,
	}).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/question/edit-list/", requireAuthMiddleware(controller.UserQuestionsList{
		Lister: dataset,
	})).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/question/add/", requireAuthMiddleware(controller.QuestionCreate{
		Creator:  dataset,
		Clock:    cfg.Clock,
		Location: cfg.Location,
	})).Methods(http.MethodGet, http.MethodPost, http.MethodOptions)

	r.Handle("/question/edit/{pk}", requireAuthMiddleware(controller.QuestionEdit{
		Questions: dataset,
	})).Methods(http.MethodGet, http.MethodPost, http.MethodOptions)

	r.Handle("/question/delete/{pk}", requireAuthMiddleware(controller.QuestionDelete{
		Questions: dataset,
	})).Methods(http.MethodGet, http.MethodPost, http.MethodOptions)

	r.Handle("/question/answer", requireAuthMiddleware(controller.QuestionAnswer{
		SubmitCmd: commands.SubmitAnswer,
		Listing:   listing,
		Metrics:   voteMetrics,
	})).Methods(http.MethodPost, http.MethodOptions)

	r.Handle("/question/like", requireAuthMiddleware(controller.QuestionFeedback{
		SubmitCmd: commands.SubmitFeedback,
		Listing:   listing,
		Metrics:   voteMetrics,
	})).Methods(http.MethodPost, http.MethodOptions)

	r.Handle(loginPath, controller.Login{
		AuthCmd:  commands.AuthenticateUser,
		Sessions: sessions,
	}).Methods(http.MethodGet, http.MethodPost, http.MethodOptions)

	r.Handle("/accounts/logout/", controller.Logout{
		Sessions: sessions,
	}).Methods(http.MethodPost, http.MethodOptions)

	rssFeeds := []controller.RSS{
		{
			RankCmd:         commands.RankQuestions,
			Limit:           cfg.RankingLimit,
			FeedHostname:    cfg.RSS.BaseURL,
			FeedPath:        "/rss",
			FeedAuthorName:  cfg.RSS.AuthorName,
			FeedAuthorEmail: cfg.RSS.AuthorEmail,
			CacheMaxAge:     cfg.RSS.CacheMaxAge,
			Clock:           cfg.Clock,
		},
	}

	for _, feed := range rssFeeds {
		r.Handle(feed.FeedPath, feed).Methods(http.MethodGet, http.MethodOptions)
	}

	r.Handle("/metrics", metrics.Handler(cfg.Registry)).Methods(http.MethodGet)
	r.Handle("/health", controller.Health{DB: cfg.DB}).Methods(http.MethodGet)

	return r, nil
}
