// Command financebook is the terminal client for the FinanceBook API.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"financebook/internal/config"
	"financebook/internal/logger"
)

const usage = `usage: financebook <command> [flags]

commands:
  login       log in (-username, -password, -remember); without -remember
              the token is not kept after the command exits, so later
              commands need a remembered login
  logout      forget the stored token
  whoami      show the logged-in user
  summary     list payment items (-filter, -category, -sort, -page, -size)
  stats       income and expense breakdown with the running balance
  categories  show the category forest
  add         create or edit a payment item (-amount, -expense, -id, ...)
  delete      delete a payment item (-id, -yes)
  export      write all payment items as CSV (-out)
  import      import payment items from CSV (-file)
`

func main() {
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "configuration error: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	a := newApp(cfg, os.Stdin, os.Stdout)
	if err := a.run(ctx, os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(exitCode(err))
	}
}
