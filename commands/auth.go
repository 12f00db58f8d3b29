package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"github.com/ga-sheets/ga-app-sheets/log"
)

// authorize returns an HTTP client for the stored OAuth2 tokens. The tokens file is created
// by the 'authorise' command.
func authorize(credentials string, tokens string, scopes ...string) (*http.Client, error) {
	config, err := oauthConfig(credentials, scopes...)
	if err != nil {
		return nil, err
	}

	file := tokenFile(credentials, tokens)
	token, err := tokenFromFile(file)
	if err != nil {
		return nil, fmt.Errorf("missing or invalid tokens file %v - run '%v authorise' to create it (%v)", file, APP, err)
	}

	return config.Client(context.Background(), token), nil
}

func oauthConfig(credentials string, scopes ...string) (*oauth2.Config, error) {
	b, err := os.ReadFile(credentials)
	if err != nil {
		return nil, err
	}

	return google.ConfigFromJSON(b, scopes...)
}

func tokenFile(credentials, tokens string) string {
	_, file := filepath.Split(credentials)
	name := strings.TrimSuffix(file, filepath.Ext(file))

	return filepath.Join(tokens, fmt.Sprintf("%s.tokens", name))
}

func tokenFromFile(file string) (*oauth2.Token, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}

	defer f.Close()

	token := oauth2.Token{}
	if err := json.NewDecoder(f).Decode(&token); err != nil {
		return nil, err
	}

	return &token, nil
}

func saveToken(file string, token *oauth2.Token) error {
	if err := os.MkdirAll(filepath.Dir(file), 0700); err != nil {
		return err
	}

	f, err := os.OpenFile(file, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("unable to save OAuth2 token (%v)", err)
	}

	defer f.Close()

	if err := json.NewEncoder(f).Encode(token); err != nil {
		return err
	}

	log.Infof("Saved OAuth2 token to %s", file)

	return nil
}
