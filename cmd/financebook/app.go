package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"financebook/internal/auth"
	"financebook/internal/cache"
	"financebook/internal/client"
	"financebook/internal/config"
	"financebook/internal/queries"
	"financebook/internal/render"
)

// cacheTTL bounds how long a cached read is reused within one process.
const cacheTTL = 5 * time.Minute

// errPartial marks a payment that was saved while its invoice upload failed.
var errPartial = errors.New("invoice upload failed")

// errUsage marks bad command-line input.
var errUsage = errors.New("usage error")

type command func(ctx context.Context, args []string) error

// app holds the wired client stack for one invocation.
type app struct {
	cfg      *config.Config
	api      *client.Client
	tokens   *auth.Store
	session  *auth.Session
	queries  *queries.Queries
	renderer *render.Renderer

	in  *bufio.Reader
	out io.Writer
	now func() time.Time
}

func newApp(cfg *config.Config, in io.Reader, out io.Writer) *app {
	a := &app{
		cfg:    cfg,
		tokens: auth.NewStore(cfg.TokenFile),
		in:     bufio.NewReader(in),
		out:    out,
		now:    time.Now,
	}
	store := cache.NewMemory(cacheTTL)

	a.api = client.New(cfg.APIURL,
		client.WithTimeout(cfg.Timeout),
		client.WithMaxRetries(cfg.MaxRetries),
		client.WithTokenSource(a.tokens),
		client.WithUnauthorizedHandler(func() {
			store.Clear()
			fmt.Fprintln(a.out, "Your session has expired. Please log in again with `financebook login`.")
		}),
	)
	a.queries = queries.New(a.api, store)
	a.session = auth.NewSession(a.api, a.tokens, a.queries.Clear)
	a.renderer = render.New(render.WithIconBaseURL(a.api.BaseURL()))
	return a
}

func (a *app) commands() map[string]command {
	return map[string]command{
		"login":      a.login,
		"logout":     a.logout,
		"whoami":     a.whoami,
		"summary":    a.summary,
		"stats":      a.stats,
		"categories": a.categories,
		"add":        a.add,
		"delete":     a.delete,
		"export":     a.export,
		"import":     a.importCSV,
	}
}

func (a *app) run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: no command given", errUsage)
	}
	cmd, ok := a.commands()[args[0]]
	if !ok {
		return fmt.Errorf("%w: unknown command %q", errUsage, args[0])
	}
	if args[0] != "login" && !a.session.LoggedIn() {
		return errors.New("not logged in; run `financebook login` first")
	}
	return cmd(ctx, args[1:])
}

// prompt writes label and reads one trimmed line of input.
func (a *app) prompt(label string) (string, error) {
	fmt.Fprint(a.out, label)
	line, err := a.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("reading input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

func exitCode(err error) int {
	switch {
	case errors.Is(err, errUsage):
		return 2
	case errors.Is(err, errPartial):
		return 3
	}
	return 1
}
