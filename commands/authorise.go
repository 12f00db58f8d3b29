package commands

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"net/url"
	"os"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/oauth2"
	admin "google.golang.org/api/analyticsadmin/v1beta"
	ga "google.golang.org/api/analytics/v3"
	"google.golang.org/api/sheets/v4"
)

var AuthoriseCmd = Authorise{
	command: newCommand(),
	in:      os.Stdin,
}

// Authorise runs the OAuth2 consent flow on the console and stores the resulting tokens
// in the tokens directory.
type Authorise struct {
	command
	in io.Reader
}

// SCOPES are the OAuth2 scopes requested by 'authorise'. Every other command uses a subset.
var SCOPES = []string{
	sheets.SpreadsheetsScope,
	ga.AnalyticsEditScope,
	admin.AnalyticsReadonlyScope,
}

func (cmd *Authorise) Name() string {
	return "authorise"
}

func (cmd *Authorise) Description() string {
	return "Authorises ga-app-sheets to access Google Sheets and Google Analytics"
}

func (cmd *Authorise) Usage() string {
	return "--credentials <file>"
}

func (cmd *Authorise) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] authorise [options] --credentials <file>\n", APP)
	fmt.Println()
	fmt.Println("  Authorises ga-app-sheets to access Google Sheets and Google Analytics on behalf of")
	fmt.Println("  the signed in user. Not required when using a service account.")
	fmt.Println()

	helpOptions(cmd.FlagSet())

	fmt.Println()
	fmt.Println("  Examples:")
	example("authorise", `--credentials "credentials.json"`)
	fmt.Println()
}

func (cmd *Authorise) FlagSet() *flag.FlagSet {
	flagset := flag.NewFlagSet("authorise", flag.ExitOnError)

	flagset.StringVar(&cmd.workdir, "workdir", cmd.workdir, "Directory for working files (tokens, layout, etc)")
	flagset.StringVar(&cmd.credentials, "credentials", cmd.credentials, "Path for the 'credentials.json' file")
	flagset.StringVar(&cmd.tokens, "tokens", cmd.tokens, "Directory for the authorisation tokens. Defaults to <workdir>/.google")

	return flagset
}

func (cmd *Authorise) Execute(args ...any) error {
	options := args[0].(*Options)

	cmd.debug = options.Debug

	// ... check parameters
	if strings.TrimSpace(cmd.credentials) == "" {
		return fmt.Errorf("--credentials is a required option")
	}

	config, err := oauthConfig(cmd.credentials, SCOPES...)
	if err != nil {
		return fmt.Errorf("invalid credentials file (%v)", err)
	}

	token, err := cmd.authorise(context.Background(), config)
	if err != nil {
		return fmt.Errorf("authorisation error (%v)", err)
	}

	return saveToken(tokenFile(cmd.credentials, cmd.tokenDir()), token)
}

func (cmd *Authorise) authorise(ctx context.Context, config *oauth2.Config) (*oauth2.Token, error) {
	state := uuid.New().String()
	link := config.AuthCodeURL(state, oauth2.AccessTypeOffline)

	fmt.Println()
	fmt.Println("  Open the following link in your browser and then enter the authorisation code (or the")
	fmt.Println("  URL of the page you were redirected to):")
	fmt.Println()
	fmt.Printf("  %v\n", link)
	fmt.Println()
	fmt.Print("  Code: ")

	code, err := bufio.NewReader(cmd.in).ReadString('\n')
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("unable to read authorisation code (%v)", err)
	}

	code, err = parseCode(code, state)
	if err != nil {
		return nil, err
	}

	token, err := config.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("unable to retrieve token from web (%v)", err)
	}

	return token, nil
}

// parseCode extracts the authorisation code from the console input. The input is either
// the bare code or the redirect URL, in which case the state must match the one sent.
func parseCode(input string, state string) (string, error) {
	input = strings.TrimSpace(input)

	if strings.HasPrefix(input, "http://") || strings.HasPrefix(input, "https://") {
		u, err := url.Parse(input)
		if err != nil {
			return "", fmt.Errorf("invalid redirect URL (%v)", err)
		}

		q := u.Query()
		if e := q.Get("error"); e != "" {
			return "", fmt.Errorf("authorisation refused (%v)", e)
		}

		if q.Get("state") != state {
			return "", fmt.Errorf("redirect URL state does not match the authorisation request")
		}

		input = strings.TrimSpace(q.Get("code"))
	}

	if input == "" {
		return "", fmt.Errorf("missing authorisation code")
	}

	return input, nil
}
