package commands

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	accountUsecase "github.com/allisson/recipes/internal/account/usecase"
)

// RunCreateAccount registers a new account from the command line.
// When the password flag is omitted the command prompts for it, so the
// password does not end up in shell history. Outputs the created account in
// either text or JSON format.
//
// Requirements: Database must be migrated and accessible.
func RunCreateAccount(
	ctx context.Context,
	accountUseCase accountUsecase.UseCase,
	logger *slog.Logger,
	username string,
	password string,
	format string,
	io IOTuple,
) error {
	logger.Info("creating new account", slog.String("username", username))

	if password == "" {
		prompted, err := promptForPassword(io)
		if err != nil {
			return fmt.Errorf("failed to read password: %w", err)
		}
		password = prompted
	}

	account, err := accountUseCase.Register(ctx, accountUsecase.RegisterAccountInput{
		Username: username,
		Password: password,
	})
	if err != nil {
		return fmt.Errorf("failed to create account: %w", err)
	}

	if format == "json" {
		encoder := json.NewEncoder(io.Writer)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(map[string]any{
			"id":         account.ID,
			"username":   account.Username,
			"created_at": account.CreatedAt,
		}); err != nil {
			return fmt.Errorf("failed to encode output: %w", err)
		}
	} else {
		_, _ = fmt.Fprintln(io.Writer, "Account created")
		_, _ = fmt.Fprintf(io.Writer, "  ID:       %d\n", account.ID)
		_, _ = fmt.Fprintf(io.Writer, "  Username: %s\n", account.Username)
	}

	logger.Info("account created successfully",
		slog.Int64("account_id", account.ID),
		slog.String("username", account.Username),
	)

	return nil
}

// promptForPassword reads the password from the command's input.
func promptForPassword(io IOTuple) (string, error) {
	reader := bufio.NewReader(io.Reader)

	_, _ = fmt.Fprint(io.Writer, "Enter password: ")
	password, err := reader.ReadString('\n')
	if err != nil {
		return "", err
	}

	password = strings.TrimRight(password, "\r\n")
	if password == "" {
		return "", fmt.Errorf("password cannot be empty")
	}

	return password, nil
}
