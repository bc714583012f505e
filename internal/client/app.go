// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/atotto/clipboard"

	"github.com/MKhiriev/airline-guard/internal/adapter"
	"github.com/MKhiriev/airline-guard/internal/logger"
	"github.com/MKhiriev/airline-guard/models"
)

// App dispatches one command per invocation.
type App struct {
	adapter adapter.ServerAdapter

	in  *bufio.Reader
	out io.Writer

	// copyToClipboard receives the access token after login. Nil disables
	// copying.
	copyToClipboard func(string) error

	logger *logger.Logger
}

func NewApp(serverAdapter adapter.ServerAdapter, in io.Reader, out io.Writer, logger *logger.Logger) (*App, error) {
	if serverAdapter == nil {
		return nil, ErrNilAdapter
	}

	return &App{
		adapter:         serverAdapter,
		in:              bufio.NewReader(in),
		out:             out,
		copyToClipboard: clipboard.WriteAll,
		logger:          logger,
	}, nil
}

type command struct {
	usage string
	run   func(a *App, ctx context.Context, args []string) error
}

var commands = map[string]command{
	"login":             {usage: "login <email>", run: (*App).login},
	"maintenance":       {usage: "maintenance", run: (*App).maintenance},
	"retention-stats":   {usage: "retention-stats", run: (*App).retentionStats},
	"retention-cleanup": {usage: "retention-cleanup [category]", run: (*App).retentionCleanup},
	"config":            {usage: "config <category> [key=value ...]", run: (*App).config},
	"sessions":          {usage: "sessions", run: (*App).sessions},
	"revoke-session":    {usage: "revoke-session <session-id>", run: (*App).revokeSession},
}

// NeedsToken reports whether the named command calls an authenticated
// endpoint.
func NeedsToken(name string) bool {
	return name != "login" && name != "maintenance" && name != "help"
}

func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 || args[0] == "help" {
		a.usage()
		return nil
	}

	cmd, ok := commands[args[0]]
	if !ok {
		a.usage()
		return fmt.Errorf("%w: %s", ErrUnknownCommand, args[0])
	}

	a.logger.Debug().Str("command", args[0]).Msg("running command")
	return cmd.run(a, ctx, args[1:])
}

func (a *App) usage() {
	rows := make([][]string, 0, len(commands))
	for _, name := range sortedCommandNames() {
		rows = append(rows, []string{commands[name].usage})
	}
	fmt.Fprintln(a.out, renderTable([]string{"Usage"}, rows))
}

// login prompts for the password and, when required, the authenticator code.
// The resulting access token is printed for use as CLIENT_TOKEN.
func (a *App) login(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("%w: email", ErrMissingArgument)
	}

	password, err := a.prompt("Password: ")
	if err != nil {
		return err
	}

	result, err := a.adapter.Login(ctx, models.LoginRequest{Email: args[0], Password: password})
	if err != nil {
		return fmt.Errorf("login: %w", err)
	}

	if result.Status == models.LoginRequiresTwoFactor {
		code, err := a.prompt("Authenticator code: ")
		if err != nil {
			return err
		}
		result, err = a.adapter.CompleteTwoFactor(ctx, models.TwoFactorLoginRequest{PendingToken: result.PendingToken, Code: code})
		if err != nil {
			return fmt.Errorf("two-factor login: %w", err)
		}
	}

	fmt.Fprintln(a.out, renderKeyValues([][2]string{
		{"Session", result.SessionID},
		{"Must change password", fmt.Sprint(result.MustChangePassword)},
		{"Days until expiration", optionalDays(result.DaysUntilExpiration)},
	}))
	fmt.Fprintln(a.out, a.adapter.Token())

	if a.copyToClipboard != nil {
		if err = a.copyToClipboard(a.adapter.Token()); err != nil {
			a.logger.Warn().Err(err).Msg("error copying token to clipboard")
		}
	}
	return nil
}

func (a *App) prompt(label string) (string, error) {
	fmt.Fprint(a.out, label)

	line, err := a.in.ReadString('\n')
	line = strings.TrimSpace(line)
	if line == "" {
		if err != nil && err != io.EOF {
			return "", fmt.Errorf("read input: %w", err)
		}
		return "", ErrNoInput
	}
	return line, nil
}

func (a *App) maintenance(ctx context.Context, _ []string) error {
	status, err := a.adapter.Maintenance(ctx)
	if err != nil {
		return fmt.Errorf("maintenance: %w", err)
	}

	fmt.Fprintln(a.out, renderKeyValues([][2]string{
		{"Enabled", fmt.Sprint(status.Enabled)},
		{"Message", status.Message},
		{"Estimated end", status.EstimatedEnd},
	}))
	return nil
}

func (a *App) retentionStats(ctx context.Context, _ []string) error {
	overview, err := a.adapter.RetentionOverview(ctx)
	if err != nil {
		return fmt.Errorf("retention statistics: %w", err)
	}

	fmt.Fprintln(a.out, renderRetention(overview))
	return nil
}

func (a *App) retentionCleanup(ctx context.Context, args []string) error {
	if len(args) == 0 {
		result, err := a.adapter.CleanupAll(ctx)
		if err != nil {
			return fmt.Errorf("retention cleanup: %w", err)
		}
		fmt.Fprintln(a.out, renderRetentionResult(result))
		return nil
	}

	category, err := models.ParseRetentionCategory(args[0])
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}

	n, err := a.adapter.Cleanup(ctx, category)
	if err != nil {
		return fmt.Errorf("retention cleanup %s: %w", category, err)
	}

	fmt.Fprintf(a.out, "%s: %d rows deleted\n", category, n)
	return nil
}

// config lists a category, or updates it when key=value pairs follow.
func (a *App) config(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: category", ErrMissingArgument)
	}
	category := args[0]

	if len(args) > 1 {
		values, err := parseAssignments(args[1:])
		if err != nil {
			return err
		}
		if err = a.adapter.UpdateConfigCategory(ctx, category, values); err != nil {
			return fmt.Errorf("update %s: %w", category, err)
		}
	}

	entries, err := a.adapter.ConfigCategory(ctx, category)
	if err != nil {
		return fmt.Errorf("config %s: %w", category, err)
	}

	fmt.Fprintln(a.out, renderConfig(entries))
	return nil
}

func parseAssignments(args []string) (map[string]string, error) {
	values := make(map[string]string, len(args))
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok || strings.TrimSpace(key) == "" {
			return nil, fmt.Errorf("%w: %q is not key=value", ErrInvalidArgument, arg)
		}
		values[strings.TrimSpace(key)] = value
	}
	return values, nil
}

func (a *App) sessions(ctx context.Context, _ []string) error {
	sessions, err := a.adapter.Sessions(ctx)
	if err != nil {
		return fmt.Errorf("sessions: %w", err)
	}

	fmt.Fprintln(a.out, renderSessions(sessions))
	return nil
}

func (a *App) revokeSession(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: session id", ErrMissingArgument)
	}

	if err := a.adapter.RevokeSession(ctx, args[0]); err != nil {
		return fmt.Errorf("revoke session: %w", err)
	}

	fmt.Fprintf(a.out, "session %s revoked\n", args[0])
	return nil
}
