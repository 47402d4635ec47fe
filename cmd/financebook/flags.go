package main

import (
	"errors"
	"flag"
	"fmt"
	"strconv"
	"strings"

	gpvalidator "github.com/go-playground/validator/v10"

	"financebook/internal/validator"
)

// idList collects a repeatable numeric flag.
type idList []string

func (l *idList) String() string { return strings.Join(*l, ",") }

func (l *idList) Set(v string) error {
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			*l = append(*l, part)
		}
	}
	return nil
}

func (a *app) flags(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(a.out)
	return fs
}

func parseFlags(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("%w: unexpected argument %q", errUsage, fs.Arg(0))
	}
	return nil
}

func parseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 32)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("%w: invalid id %q", errUsage, raw)
	}
	return uint(id), nil
}

// summaryOptions are the summary flags restricted to a fixed set of values.
type summaryOptions struct {
	View string `validate:"view_filter"`
	Sort string `validate:"sort_order"`
}

var summaryFlagNames = map[string]string{"View": "filter", "Sort": "sort"}

func (o summaryOptions) validate() error {
	err := validator.Struct(o)
	if err == nil {
		return nil
	}
	var verrs gpvalidator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return fmt.Errorf("%w: invalid -%s %q", errUsage, summaryFlagNames[verrs[0].Field()], verrs[0].Value())
	}
	return fmt.Errorf("%w: %v", errUsage, err)
}
