package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"

	"github.com/sheetbridge/sheetbridge/bridge"
)

// authorize builds the client options for a Google API service. A service
// account key authenticates directly; OAuth2 client credentials go through
// the console flow, with tokens cached under the workdir.
func authorize(ctx context.Context, credentials, scope string) ([]option.ClientOption, error) {
	b, err := os.ReadFile(credentials)
	if err != nil {
		return nil, err
	}

	var key struct {
		Type string `json:"type"`
	}

	if err := json.Unmarshal(b, &key); err == nil && key.Type == "service_account" {
		return []option.ClientOption{
			option.WithCredentialsJSON(b),
			option.WithScopes(scope),
		}, nil
	}

	config, err := google.ConfigFromJSON(b, scope)
	if err != nil {
		return nil, err
	}

	tokens := tokenFile(credentials, scope)

	token, err := tokenFromFile(tokens)
	if err != nil {
		if token, err = tokenFromConsole(ctx, config); err != nil {
			return nil, err
		}

		if err := saveToken(tokens, token); err != nil {
			return nil, err
		}
	}

	return []option.ClientOption{
		option.WithHTTPClient(config.Client(ctx, token)),
	}, nil
}

// newBridge authorizes against the Sheets API and wraps the service.
func newBridge(ctx context.Context, scope string) (*bridge.Bridge, error) {
	credentials, err := credentials()
	if err != nil {
		return nil, err
	}

	opts, err := authorize(ctx, credentials, scope)
	if err != nil {
		return nil, fmt.Errorf("authentication/authorization error (%w)", err)
	}

	return bridge.NewService(ctx, opts...)
}

// tokenFile names the cached token file for a credentials/scope pair, keeping
// Sheets and Drive tokens apart.
func tokenFile(credentials, scope string) string {
	_, file := filepath.Split(credentials)
	name := strings.TrimSuffix(file, filepath.Ext(file))

	switch {
	case strings.HasPrefix(scope, "https://www.googleapis.com/auth/spreadsheets"):
		return filepath.Join(workdir(), fmt.Sprintf("%s.sheets", name))

	case strings.HasPrefix(scope, "https://www.googleapis.com/auth/drive"):
		return filepath.Join(workdir(), fmt.Sprintf("%s.drive", name))

	default:
		return filepath.Join(workdir(), fmt.Sprintf("%s.tokens", name))
	}
}

// tokenFromConsole requests a token interactively: the user opens the
// authorization URL in a browser and pastes the code back.
func tokenFromConsole(ctx context.Context, config *oauth2.Config) (*oauth2.Token, error) {
	authURL := config.AuthCodeURL("state-token", oauth2.AccessTypeOffline)
	fmt.Printf("Go to the following link in your browser then type the authorization code:\n%v\n", authURL)

	var authCode string
	if _, err := fmt.Scan(&authCode); err != nil {
		return nil, fmt.Errorf("unable to read authorization code (%w)", err)
	}

	token, err := config.Exchange(ctx, authCode)
	if err != nil {
		return nil, fmt.Errorf("unable to retrieve token from web (%w)", err)
	}

	return token, nil
}

func tokenFromFile(file string) (*oauth2.Token, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}

	defer f.Close()

	token := &oauth2.Token{}
	err = json.NewDecoder(f).Decode(token)

	return token, err
}

func saveToken(path string, token *oauth2.Token) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}

	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return err
	}

	defer f.Close()

	return json.NewEncoder(f).Encode(token)
}
