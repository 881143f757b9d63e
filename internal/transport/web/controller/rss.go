package controller

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/feeds"
	"github.com/jbeshir/question-survey/internal/command"
	"github.com/jbeshir/question-survey/internal/domain"
	"github.com/jonboulle/clockwork"
)

// RSS publishes the ranked question list as an RSS feed.
type RSS struct {
	RankCmd         command.Command[command.RankQuestionsRequest, []domain.RankedQuestion]
	Limit           int
	FeedHostname    string
	FeedPath        string
	FeedAuthorName  string
	FeedAuthorEmail string
	CacheMaxAge     time.Duration
	Clock           clockwork.Clock
}

func (c RSS) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	feed := &feeds.Feed{
		Title:       "Question Survey",
		Link:        &feeds.Link{Href: c.FeedHostname + c.FeedPath},
		Description: "Top ranked questions",
		Author:      &feeds.Author{Name: c.FeedAuthorName, Email: c.FeedAuthorEmail},
		Created:     c.Clock.Now(),
	}

	questions, err := c.RankCmd.Execute(ctx, command.RankQuestionsRequest{Limit: c.Limit})
	if err != nil {
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to rank questions for feed", "error", err)

		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	for _, q := range questions {
		id := strconv.FormatInt(q.ID, 10)
		feed.Items = append(feed.Items, &feeds.Item{
			Id:          id,
			IsPermaLink: "false",
			Title:       q.Title,
			Link:        &feeds.Link{Href: c.FeedHostname + "/#question-" + id},
			Description: fmt.Sprintf("%s\n\nRanking: %d", q.Description, q.Score),
			Author: &feeds.Author{
				Name: q.AuthorName,
			},
			Created: q.Created,
		})
	}

	rss, err := feed.ToRss()
	if err != nil {
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to format feed as RSS", "error", err)

		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/xml")
	w.Header().Set("Cache-Control", fmt.Sprintf("max-age=%d", int(c.CacheMaxAge.Seconds())))

	if _, err := w.Write([]byte(rss)); err != nil {
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to write feed to response", "error", err)
	}
}
