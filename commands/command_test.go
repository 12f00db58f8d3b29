package commands

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
	"google.golang.org/api/googleapi"

	"github.com/ga-sheets/ga-app-sheets/analytics"
	"github.com/ga-sheets/ga-app-sheets/layout"
)

const testURL = "https://docs.google.com/spreadsheets/d/1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms/edit#gid=0"

func TestValidate(t *testing.T) {
	tests := []struct {
		credentials    string
		serviceAccount string
		url            string
		id             string
		err            string
	}{
		{"credentials.json", "", testURL, "1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms", ""},
		{"", "service-account.json", testURL, "1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms", ""},
		{"", "", testURL, "", "--credentials is a required option"},
		{"credentials.json", "", " ", "", "--url is a required option"},
		{"credentials.json", "", "https://example.com/spreadsheets/d/1Bxi", "", "invalid spreadsheet URL"},
	}

	for _, test := range tests {
		cmd := command{
			credentials:    test.credentials,
			serviceAccount: test.serviceAccount,
			url:            test.url,
		}

		id, err := cmd.validate()
		if test.err != "" {
			if err == nil || !strings.Contains(err.Error(), test.err) {
				t.Errorf("Incorrect error\n   expected: %v\n   got:      %v", test.err, err)
			}
			continue
		}

		if err != nil {
			t.Fatalf("Unexpected error (%v)", err)
		}

		if id != test.id {
			t.Errorf("Incorrect spreadsheet ID\n   expected: %v\n   got:      %v", test.id, id)
		}
	}
}

func TestTokenDir(t *testing.T) {
	cmd := command{workdir: "/var/ga"}
	assert.Equal(t, filepath.Join("/var/ga", ".google"), cmd.tokenDir())

	cmd.tokens = "/etc/ga/tokens"
	assert.Equal(t, "/etc/ga/tokens", cmd.tokenDir())
}

func TestTokenFile(t *testing.T) {
	file := tokenFile("/etc/ga/.google/credentials.json", "/var/ga/.google")

	assert.Equal(t, filepath.Join("/var/ga/.google", "credentials.tokens"), file)
}

func TestSaveToken(t *testing.T) {
	file := filepath.Join(t.TempDir(), ".google", "credentials.tokens")
	token := oauth2.Token{
		AccessToken:  "qwerty",
		TokenType:    "Bearer",
		RefreshToken: "uiop",
		Expiry:       time.Date(2022, time.March, 14, 9, 30, 15, 0, time.UTC),
	}

	require.NoError(t, saveToken(file, &token))

	saved, err := tokenFromFile(file)
	require.NoError(t, err)

	assert.Equal(t, token.AccessToken, saved.AccessToken)
	assert.Equal(t, token.RefreshToken, saved.RefreshToken)
	assert.True(t, token.Expiry.Equal(saved.Expiry))
}

func TestAuthorizeWithoutTokens(t *testing.T) {
	dir := t.TempDir()
	credentials := writeCredentials(t, dir, "https://oauth2.example.com/token")

	_, err := authorize(credentials, filepath.Join(dir, ".google"), SCOPES...)

	assert.ErrorContains(t, err, "run 'ga-app-sheets authorise'")
}

func TestAuthorise(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		r.ParseForm()

		if r.FormValue("code") != "4/0AX4XfWh" {
			http.Error(w, `{"error":"invalid_grant"}`, http.StatusBadRequest)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"access_token":"qwerty","token_type":"Bearer","refresh_token":"uiop","expires_in":3600}`)
	}))

	defer srv.Close()

	dir := t.TempDir()
	credentials := writeCredentials(t, dir, srv.URL)

	cmd := Authorise{
		command: command{
			workdir:     dir,
			credentials: credentials,
		},
		in: strings.NewReader("4/0AX4XfWh\n"),
	}

	require.NoError(t, cmd.Execute(&Options{}))

	token, err := tokenFromFile(filepath.Join(dir, ".google", "credentials.tokens"))
	require.NoError(t, err)

	assert.Equal(t, "qwerty", token.AccessToken)
	assert.Equal(t, "uiop", token.RefreshToken)

	_, err = authorize(credentials, filepath.Join(dir, ".google"), SCOPES...)
	assert.NoError(t, err)
}

func TestAuthoriseWithoutCode(t *testing.T) {
	dir := t.TempDir()

	cmd := Authorise{
		command: command{
			workdir:     dir,
			credentials: writeCredentials(t, dir, "https://oauth2.example.com/token"),
		},
		in: strings.NewReader("\n"),
	}

	assert.ErrorContains(t, cmd.Execute(&Options{}), "missing authorisation code")
}

func TestParseCode(t *testing.T) {
	state := "6ba7b810-9dad-11d1-80b4-00c04fd430c8"

	tests := []struct {
		input string
		code  string
		err   string
	}{
		{" 4/0AX4XfWh\n", "4/0AX4XfWh", ""},
		{"http://localhost/?state=6ba7b810-9dad-11d1-80b4-00c04fd430c8&code=4/0AX4XfWh&scope=x", "4/0AX4XfWh", ""},
		{"http://localhost/?state=00000000-0000-0000-0000-000000000000&code=4/0AX4XfWh", "", "state does not match"},
		{"http://localhost/?error=access_denied&state=6ba7b810-9dad-11d1-80b4-00c04fd430c8", "", "authorisation refused"},
		{"http://localhost/?state=6ba7b810-9dad-11d1-80b4-00c04fd430c8", "", "missing authorisation code"},
		{"\n", "", "missing authorisation code"},
	}

	for _, test := range tests {
		code, err := parseCode(test.input, state)

		if test.err != "" {
			assert.ErrorContains(t, err, test.err, "input %q", test.input)
			continue
		}

		require.NoError(t, err, "input %q", test.input)
		assert.Equal(t, test.code, code)
	}
}

func TestLoadLayout(t *testing.T) {
	dir := t.TempDir()
	cmd := command{workdir: dir}

	l, err := cmd.loadLayout(&Options{})
	require.NoError(t, err)
	assert.Equal(t, layout.Default(), *l)

	toml := `
[ga4.properties]
sheet = "Properties"
row = 3
column = 2
columns = 5
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, LAYOUT), []byte(toml), 0600))

	l, err = cmd.loadLayout(&Options{})
	require.NoError(t, err)
	assert.Equal(t, layout.Range{Sheet: "Properties", Row: 3, Column: 2, Columns: 5}, l.GA4.Properties)
}

func TestInvalidDefinitions(t *testing.T) {
	cmd := UAModify{
		definitionsCommand: definitionsCommand{
			command: command{
				credentials: "credentials.json",
				url:         testURL,
			},
			definitions: "goals",
		},
	}

	assert.ErrorContains(t, cmd.Execute(&Options{}), "invalid --definitions")
}

func TestHint(t *testing.T) {
	tests := []struct {
		err      error
		expected string
	}{
		{nil, ""},
		{fmt.Errorf("plain error"), ""},
		{fmt.Errorf("unable to retrieve data (%w)", &googleapi.Error{Code: http.StatusUnauthorized}), "run 'ga-app-sheets authorise'"},
		{fmt.Errorf("token refresh (%w)", &oauth2.RetrieveError{ErrorCode: "invalid_grant"}), "run 'ga-app-sheets authorise'"},
		{fmt.Errorf("error modifying custom dimensions (%w)", analytics.ErrForbidden), "does not have edit access"},
		{fmt.Errorf("error listing (%w)", analytics.ErrRateLimited), "increase the ua-modify --delay"},
		{&googleapi.Error{Code: http.StatusNotFound}, "check the spreadsheet URL"},
	}

	for _, test := range tests {
		hint := Hint(test.err)

		if test.expected == "" && hint != "" {
			t.Errorf("Unexpected hint for %v\n   got: %v", test.err, hint)
		} else if !strings.Contains(hint, test.expected) {
			t.Errorf("Incorrect hint for %v\n   expected: %v\n   got:      %v", test.err, test.expected, hint)
		}
	}
}

func writeCredentials(t *testing.T, dir string, tokenURL string) string {
	t.Helper()

	credentials := fmt.Sprintf(`{
  "installed": {
    "client_id": "12345.apps.googleusercontent.com",
    "client_secret": "secret",
    "auth_uri": "https://accounts.google.com/o/oauth2/auth",
    "token_uri": %q,
    "redirect_uris": ["urn:ietf:wg:oauth:2.0:oob", "http://localhost"]
  }
}`, tokenURL)

	file := filepath.Join(dir, "credentials.json")
	if err := os.WriteFile(file, []byte(credentials), 0600); err != nil {
		t.Fatalf("Error writing credentials file (%v)", err)
	}

	return file
}
