package app

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/jbeshir/question-survey/internal/domain"
)

func MustGetEnvAsString(ctx context.Context, name string) string {
	s, exists := os.LookupEnv(name)
	if !exists {
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "environment variable missing", "variable_name", name)
		panic(fmt.Sprintf("missing environment variable [%s]", name))
	}

	return s
}

// MustGetEnvAsStrings splits a comma-separated variable, trimming whitespace.
// Empty entries are kept so callers can skip them.
func MustGetEnvAsStrings(ctx context.Context, name string) []string {
	parts := strings.Split(MustGetEnvAsString(ctx, name), ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

func GetEnvAsIntOrDefault(ctx context.Context, name string, def int) int {
	s, exists := os.LookupEnv(name)
	if !exists || s == "" {
		return def
	}
	return mustParseInt(ctx, name, s)
}

func mustParseInt(ctx context.Context, name, s string) int {
	v, err := strconv.Atoi(s)
	if err != nil {
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to parse environment variable as integer",
			"variable_name", name,
			"variable_value", s,
		)
		panic(fmt.Sprintf("unable to parse environment variable as integer [%s]: %s", name, s))
	}

	return v
}

func MustGetEnvAsBoolean(ctx context.Context, name string) bool {
	return mustParseBoolean(ctx, name, MustGetEnvAsString(ctx, name))
}

func GetEnvAsBooleanOrDefault(ctx context.Context, name string, def bool) bool {
	s, exists := os.LookupEnv(name)
	if !exists || s == "" {
		return def
	}
	return mustParseBoolean(ctx, name, s)
}

func mustParseBoolean(ctx context.Context, name, s string) bool {
	switch strings.ToLower(s) {
	case "true":
		return true
	case "false":
		return false
	default:
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to parse environment variable as boolean ('true'/'false')",
			"variable_name", name,
			"variable_value", s,
		)
		panic(fmt.Sprintf("unable to parse environment variable as boolean ('true'/'false') [%s]: %s", name, s))
	}
}

func MustGetEnvAsDuration(ctx context.Context, name string) time.Duration {
	s := MustGetEnvAsString(ctx, name)

	duration, err := time.ParseDuration(s)
	if err != nil {
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to parse environment variable as duration",
			"variable_name", name,
			"variable_value", s,
		)
		panic(fmt.Sprintf("unable to parse environment variable as duration [%s]: %s", name, s))
	}

	return duration
}

// GetEnvAsLocationOrDefault loads the IANA time zone named by the variable,
// falling back to def when it is unset.
func GetEnvAsLocationOrDefault(ctx context.Context, name string, def *time.Location) *time.Location {
	s, exists := os.LookupEnv(name)
	if !exists || s == "" {
		return def
	}

	loc, err := time.LoadLocation(s)
	if err != nil {
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to load time zone from environment variable",
			"variable_name", name,
			"variable_value", s,
			"error", err,
		)
		panic(fmt.Sprintf("unable to load time zone from environment variable [%s]: %s", name, s))
	}

	return loc
}
