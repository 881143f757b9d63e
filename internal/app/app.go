package app

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"time"

	"github.com/jbeshir/question-survey/internal/command"
	"github.com/jbeshir/question-survey/internal/datasources/mysql"
	"github.com/jbeshir/question-survey/internal/domain"
	"github.com/jbeshir/question-survey/internal/metrics"
	"github.com/jbeshir/question-survey/internal/transport/web/router"
	"github.com/jbeshir/question-survey/internal/transport/web/server"
	"github.com/jbeshir/question-survey/internal/transport/web/session"
	"github.com/jonboulle/clockwork"
)

const defaultRankingLimit = 20

type Component interface {
	Run(ctx context.Context) error
}

func Setup(ctx context.Context) ([]Component, error) {
	db, err := SetupDatabase(ctx)
	if err != nil {
		return nil, fmt.Errorf("setting up database: %w", err)
	}
	dataset := mysql.New(db)

	sessions := session.NewStore(
		[]byte(MustGetEnvAsString(ctx, "SESSION_SECRET")),
		GetEnvAsBooleanOrDefault(ctx, "SESSION_SECURE", true),
	)

	authMiddleware, err := setupAuthMiddleware(ctx, sessions)
	if err != nil {
		return nil, fmt.Errorf("setting up auth middleware: %w", err)
	}

	clock := clockwork.NewRealClock()
	location := GetEnvAsLocationOrDefault(ctx, "TIME_ZONE", time.UTC)
	allowSelfVote := GetEnvAsBooleanOrDefault(ctx, "SELF_VOTE_ALLOWED", false)

	commands := router.Commands{
		RankQuestions: command.NewRankQuestions(
			dataset,
			dataset,
			clock,
			location,
			domain.DefaultRankingConfig(),
		),
		SubmitAnswer:     command.NewSubmitAnswer(dataset, dataset, allowSelfVote),
		SubmitFeedback:   command.NewSubmitFeedback(dataset, dataset, allowSelfVote),
		AuthenticateUser: command.NewAuthenticateUser(dataset),
	}

	httpRouter, err := router.MakeRouter(
		router.Config{
			Logger:       domain.LoggerFromContext(ctx),
			Clock:        clock,
			Location:     location,
			RankingLimit: GetEnvAsIntOrDefault(ctx, "RANKING_LIMIT", defaultRankingLimit),
			RSS: router.RSSConfig{
				BaseURL:     MustGetEnvAsString(ctx, "RSS_FEED_BASE_URL"),
				AuthorName:  MustGetEnvAsString(ctx, "RSS_FEED_AUTHOR_NAME"),
				AuthorEmail: MustGetEnvAsString(ctx, "RSS_FEED_AUTHOR_EMAIL"),
				CacheMaxAge: MustGetEnvAsDuration(ctx, "RSS_FEED_CACHE_MAX_AGE"),
			},
			Registry: metrics.NewRegistry(),
			DB:       db,
		},
		dataset,
		commands,
		sessions,
		authMiddleware,
	)
	if err != nil {
		return nil, fmt.Errorf("unable to create HTTP router: %w", err)
	}

	tlsDisabled := MustGetEnvAsBoolean(ctx, "HTTP_TLS_DISABLED")
	var autocertHostnames []string
	if !tlsDisabled {
		for _, h := range MustGetEnvAsStrings(ctx, "HTTP_AUTOCERT_HOSTNAMES") {
			if h != "" {
				autocertHostnames = append(autocertHostnames, h)
			}
		}
	}

	return []Component{
		&server.Server{
			TLSDisabled:       tlsDisabled,
			TLSDisabledPort:   GetEnvAsIntOrDefault(ctx, "PORT", 8080),
			AutocertHostnames: autocertHostnames,
			Router:            httpRouter,
		},
	}, nil
}

// SetupDatabase connects to MySQL and creates any missing tables.
func SetupDatabase(ctx context.Context) (*sql.DB, error) {
	db, err := mysql.Connect(ctx, MustGetEnvAsString(ctx, "MYSQL_URI"))
	if err != nil {
		return nil, fmt.Errorf("connecting to MySQL: %w", err)
	}

	if err := mysql.CreateSchema(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return db, nil
}

func setupAuthMiddleware(
	ctx context.Context, sessions *session.Store,
) (func(http.Handler) http.Handler, error) {
	var validators []router.AuthValidator

	for _, driver := range MustGetEnvAsStrings(ctx, "AUTH_DRIVERS") {
		switch driver {
		case "":
			// Skip empty strings (e.g., from splitting an empty AUTH_DRIVERS)
		case "session":
			validators = append(validators, router.NewSessionValidator(sessions))
		case "auth0":
			v, err := router.NewAuth0Validator(
				MustGetEnvAsString(ctx, "AUTH0_DOMAIN"),
				MustGetEnvAsString(ctx, "AUTH0_AUDIENCE"),
			)
			if err != nil {
				return nil, fmt.Errorf("creating Auth0 validator: %w", err)
			}
			validators = append(validators, v)
		default:
			return nil, fmt.Errorf("unknown auth driver [%s]", driver)
		}
	}

	return router.NewAuthMiddleware(validators), nil
}
