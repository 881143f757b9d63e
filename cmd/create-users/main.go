// Command create-users reads username,password,email records from the file
// named by the first argument, or from stdin, and creates one local user per record.
package main

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/jbeshir/question-survey/internal/app"
	"github.com/jbeshir/question-survey/internal/command"
	"github.com/jbeshir/question-survey/internal/datasources/mysql"
	"github.com/jbeshir/question-survey/internal/domain"
	"github.com/jonboulle/clockwork"

	_ "github.com/joho/godotenv/autoload"
)

func main() {
	ctx := context.Background()

	logLevel := slog.LevelInfo
	if lvl := os.Getenv("LOG_LEVEL"); lvl != "" {
		if err := logLevel.UnmarshalText([]byte(lvl)); err != nil {
			fmt.Fprintf(os.Stderr, "invalid LOG_LEVEL: %s\n", lvl)
			os.Exit(1)
		}
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)
	ctx = domain.ContextWithLogger(ctx, logger)

	if err := run(ctx, os.Args[1:]); err != nil {
		logger.ErrorContext(ctx, "user creation failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string) error {
	input := io.Reader(os.Stdin)
	if len(args) > 0 {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("opening users file: %w", err)
		}
		defer func() { _ = f.Close() }()
		input = f
	}

	requests, err := readUsers(input)
	if err != nil {
		return err
	}

	db, err := app.SetupDatabase(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	createCmd := command.NewCreateUser(mysql.New(db), clockwork.NewRealClock())

	return createUsers(ctx, createCmd, requests)
}

func createUsers(
	ctx context.Context,
	createCmd command.Command[command.CreateUserRequest, command.CreateUserResponse],
	requests []command.CreateUserRequest,
) error {
	logger := domain.LoggerFromContext(ctx)

	var failed int
	for _, req := range requests {
		res, err := createCmd.Execute(ctx, req)
		if err != nil {
			failed++
			logger.ErrorContext(ctx, "unable to create user", "username", req.Username, "error", err)
			continue
		}
		logger.InfoContext(ctx, "created user", "username", req.Username, "user_id", res.UserID)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d users could not be created", failed, len(requests))
	}
	return nil
}

// readUsers parses username,password[,email] records. A leading header row is skipped.
func readUsers(r io.Reader) ([]command.CreateUserRequest, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	reader.Comment = '#'

	var requests []command.CreateUserRequest
	for line := 1; ; line++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading users: %w", err)
		}

		if line == 1 && strings.EqualFold(strings.TrimSpace(record[0]), "username") {
			continue
		}
		if len(record) < 2 || len(record) > 3 {
			return nil, fmt.Errorf("record %d: expected username,password[,email], got %d fields", line, len(record))
		}

		req := command.CreateUserRequest{
			Username: record[0],
			Password: record[1],
		}
		if len(record) == 3 {
			req.Email = record[2]
		}
		requests = append(requests, req)
	}

	return requests, nil
}
