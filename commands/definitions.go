package commands

import (
	"context"
	"flag"
	"fmt"

	"github.com/ga-sheets/ga-app-sheets/analytics"
	"github.com/ga-sheets/ga-app-sheets/layout"
	"github.com/ga-sheets/ga-app-sheets/store/gsheets"
)

// definitionsCommand is the common base for the commands that manage UA custom dimensions
// and custom metrics.
type definitionsCommand struct {
	command
	definitions string
}

func newDefinitionsCommand() definitionsCommand {
	return definitionsCommand{
		command:     newCommand(),
		definitions: "dimensions",
	}
}

func (cmd *definitionsCommand) flagset(name string) *flag.FlagSet {
	flagset := cmd.command.flagset(name)

	flagset.StringVar(&cmd.definitions, "definitions", cmd.definitions, "Custom definitions to manage ('dimensions' or 'metrics')")

	return flagset
}

type session struct {
	kind   analytics.Kind
	ranges layout.Definitions
	store  *gsheets.Store
	ua     *analytics.UAClient
}

// open validates the command line, loads the layout and connects to the spreadsheet and
// the Management API.
func (cmd *definitionsCommand) open(ctx context.Context, options *Options) (*session, error) {
	cmd.debug = options.Debug

	spreadsheet, err := cmd.validate()
	if err != nil {
		return nil, err
	}

	kind, err := analytics.ParseKind(cmd.definitions)
	if err != nil {
		return nil, fmt.Errorf("invalid --definitions (%v)", err)
	}

	l, err := cmd.loadLayout(options)
	if err != nil {
		return nil, err
	}

	auth, err := cmd.client(SCOPES...)
	if err != nil {
		return nil, err
	}

	s, err := cmd.spreadsheet(ctx, spreadsheet, auth)
	if err != nil {
		return nil, err
	}

	ua, err := cmd.ua(ctx, auth)
	if err != nil {
		return nil, err
	}

	return &session{
		kind:   kind,
		ranges: l.Definitions(kind == analytics.Metrics),
		store:  s,
		ua:     ua,
	}, nil
}
