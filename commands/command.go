package commands

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	ga "google.golang.org/api/analytics/v3"
	admin "google.golang.org/api/analyticsadmin/v1beta"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/ga-sheets/ga-app-sheets/analytics"
	"github.com/ga-sheets/ga-app-sheets/layout"
	"github.com/ga-sheets/ga-app-sheets/log"
	"github.com/ga-sheets/ga-app-sheets/ratelimit"
	"github.com/ga-sheets/ga-app-sheets/store/gsheets"
)

const APP = "ga-app-sheets"
const VERSION = "v0.1.0"
const LAYOUT = "ga-app-sheets.toml"

// Management API requests are throttled to stay under the default per-user quota.
const API_REQUESTS_PER_MINUTE = 300
const API_BURST = 5

// Options are the global command line options common to all commands.
type Options struct {
	Config string
	Debug  bool
}

type command struct {
	workdir        string
	credentials    string
	tokens         string
	serviceAccount string
	url            string
	debug          bool
}

func newCommand() command {
	return command{
		workdir:     DEFAULT_WORKDIR,
		credentials: DEFAULT_CREDENTIALS,
		tokens:      "",
		url:         "",
		debug:       false,
	}
}

func (cmd *command) flagset(name string) *flag.FlagSet {
	flagset := flag.NewFlagSet(name, flag.ExitOnError)

	flagset.StringVar(&cmd.workdir, "workdir", cmd.workdir, "Directory for working files (tokens, layout, etc)")
	flagset.StringVar(&cmd.credentials, "credentials", cmd.credentials, "Path for the 'credentials.json' file")
	flagset.StringVar(&cmd.tokens, "tokens", cmd.tokens, "Directory for the authorisation tokens. Defaults to <workdir>/.google")
	flagset.StringVar(&cmd.serviceAccount, "service-account", cmd.serviceAccount, "Path for a service account key file. Replaces the --credentials OAuth2 flow")
	flagset.StringVar(&cmd.url, "url", cmd.url, "Spreadsheet URL")

	return flagset
}

// validate checks the options common to all commands and returns the spreadsheet ID.
func (cmd *command) validate() (string, error) {
	if strings.TrimSpace(cmd.credentials) == "" && strings.TrimSpace(cmd.serviceAccount) == "" {
		return "", fmt.Errorf("--credentials is a required option")
	}

	if strings.TrimSpace(cmd.url) == "" {
		return "", fmt.Errorf("--url is a required option")
	}

	return gsheets.SpreadsheetID(cmd.url)
}

func (cmd *command) tokenDir() string {
	if cmd.tokens != "" {
		return cmd.tokens
	}

	return filepath.Join(cmd.workdir, ".google")
}

// client returns the option used to authenticate the Google API services, either a
// service account key or an OAuth2 client with stored tokens.
func (cmd *command) client(scopes ...string) (option.ClientOption, error) {
	if cmd.serviceAccount != "" {
		bytes, err := os.ReadFile(cmd.serviceAccount)
		if err != nil {
			return nil, fmt.Errorf("unable to read service account key (%v)", err)
		}

		return option.WithCredentialsJSON(bytes), nil
	}

	client, err := authorize(cmd.credentials, cmd.tokenDir(), scopes...)
	if err != nil {
		return nil, fmt.Errorf("authentication/authorization error (%v)", err)
	}

	return option.WithHTTPClient(client), nil
}

func (cmd *command) spreadsheet(ctx context.Context, spreadsheetID string, auth option.ClientOption) (*gsheets.Store, error) {
	google, err := sheets.NewService(ctx, auth)
	if err != nil {
		return nil, fmt.Errorf("unable to create new Sheets client (%v)", err)
	}

	if cmd.debug {
		log.Debugf("Spreadsheet - ID:%s", spreadsheetID)
	}

	return gsheets.NewStore(google, spreadsheetID), nil
}

func (cmd *command) ua(ctx context.Context, auth option.ClientOption) (*analytics.UAClient, error) {
	service, err := ga.NewService(ctx, auth)
	if err != nil {
		return nil, fmt.Errorf("unable to create new Google Analytics client (%v)", err)
	}

	return analytics.NewUAClient(service, ratelimit.NewLimiterPerMinute(API_REQUESTS_PER_MINUTE, API_BURST)), nil
}

func (cmd *command) ga4(ctx context.Context, auth option.ClientOption) (*analytics.GA4Client, error) {
	service, err := admin.NewService(ctx, auth)
	if err != nil {
		return nil, fmt.Errorf("unable to create new Google Analytics Admin client (%v)", err)
	}

	return analytics.NewGA4Client(service, ratelimit.NewLimiterPerMinute(API_REQUESTS_PER_MINUTE, API_BURST)), nil
}

// loadLayout loads the worksheet layout from the --config file, falling back to
// <workdir>/ga-app-sheets.toml.
func (cmd *command) loadLayout(options *Options) (*layout.Layout, error) {
	file := options.Config
	if file == "" {
		file = filepath.Join(cmd.workdir, LAYOUT)
	}

	l, err := layout.Load(file)
	if err != nil {
		return nil, fmt.Errorf("invalid layout file %v (%v)", file, err)
	}

	return l, nil
}

func helpOptions(flagset *flag.FlagSet) {
	count := 0
	flag.VisitAll(func(f *flag.Flag) {
		count++
	})

	flagset.VisitAll(func(f *flag.Flag) {
		fmt.Printf("    --%-15s %s\n", f.Name, f.Usage)
	})

	if count > 0 {
		fmt.Println()
		fmt.Println("  Options:")
		flag.VisitAll(func(f *flag.Flag) {
			fmt.Printf("    --%-15s %s\n", f.Name, f.Usage)
		})
	}
}

func example(cmd string, args ...string) {
	prefix := fmt.Sprintf("    %s --debug %s ", APP, cmd)
	indent := strings.Repeat(" ", len(prefix))

	fmt.Print(prefix)
	for i, arg := range args {
		if i > 0 {
			fmt.Print(indent)
		}

		if i < len(args)-1 {
			fmt.Printf("%s \\\n", arg)
		} else {
			fmt.Printf("%s\n", arg)
		}
	}
}

const exampleURL = `--url "https://docs.google.com/spreadsheets/d/1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms"`
