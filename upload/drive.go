package upload

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/int128/oauth2cli"
	"github.com/sirupsen/logrus"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
)

// ErrNoToken is returned when no cached user token exists and the browser
// consent flow is not allowed.
var ErrNoToken = errors.New("no cached Google Drive token")

// Drive uploads videos to the authorized user's Google Drive.
type Drive struct {
	service *drive.Service
	log     logrus.FieldLogger
}

// NewDrive builds the Drive service on an already authorized client.
func NewDrive(ctx context.Context, client *http.Client, log logrus.FieldLogger, opts ...option.ClientOption) (*Drive, error) {
	opts = append([]option.ClientOption{option.WithHTTPClient(client)}, opts...)
	service, err := drive.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("unable to create Drive service: %w", err)
	}
	return &Drive{service: service, log: log}, nil
}

func (d *Drive) Upload(ctx context.Context, path, name string) (Ref, error) {
	f, err := os.Open(path)
	if err != nil {
		return Ref{}, fmt.Errorf("failed to open video file: %w", err)
	}
	defer f.Close()

	d.log.Infof("Uploading %s (%.2f MB)", name, fileSizeMB(f))

	file, err := d.service.Files.Create(&drive.File{Name: name, MimeType: videoContentType}).
		Media(f).
		Fields("id, name, webViewLink").
		Context(ctx).
		Do()
	if err != nil {
		return Ref{}, fmt.Errorf("failed to upload video: %w", err)
	}

	d.log.WithFields(logrus.Fields{"id": file.Id, "url": file.WebViewLink}).Info("Video uploaded")
	return Ref{Backend: "drive", ID: file.Id, Name: file.Name, URL: file.WebViewLink}, nil
}

// DriveAuth locates the credentials that authorize Drive uploads.
type DriveAuth struct {
	// Credentials is a service account key or an OAuth client secret file
	Credentials string
	// Token caches the user token of the OAuth flow
	Token string
	// Interactive allows the browser consent flow when no token is cached
	Interactive bool
	// Prompt shows the consent URL to the user
	Prompt func(url string)
}

// Client returns an HTTP client authorized for Drive file uploads. A service
// account key is used as is; an OAuth client secret goes through the cached
// user token, asking for consent once when none is cached.
func (a DriveAuth) Client(ctx context.Context) (*http.Client, error) {
	data, err := os.ReadFile(a.Credentials)
	if err != nil {
		return nil, fmt.Errorf("unable to read Drive credentials: %w", err)
	}

	if isServiceAccount(data) {
		jwt, err := google.JWTConfigFromJSON(data, drive.DriveFileScope)
		if err != nil {
			return nil, fmt.Errorf("unable to parse service account: %w", err)
		}
		return jwt.Client(ctx), nil
	}

	conf, err := google.ConfigFromJSON(data, drive.DriveFileScope)
	if err != nil {
		return nil, fmt.Errorf("unable to parse client secret: %w", err)
	}

	tok, err := loadToken(a.Token)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
		if !a.Interactive {
			return nil, fmt.Errorf("%w at %s", ErrNoToken, a.Token)
		}
		if tok, err = authorize(ctx, conf, a.Prompt); err != nil {
			return nil, err
		}
		if err := saveToken(a.Token, tok); err != nil {
			return nil, err
		}
	}
	return conf.Client(ctx, tok), nil
}

func isServiceAccount(data []byte) bool {
	var key struct {
		Type string `json:"type"`
	}
	return json.Unmarshal(data, &key) == nil && key.Type == "service_account"
}

// authorize runs the installed-app flow on a loopback redirect. prompt
// receives the local URL that forwards the user to the consent page.
func authorize(ctx context.Context, conf *oauth2.Config, prompt func(string)) (*oauth2.Token, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	ready := make(chan string, 1)
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case url := <-ready:
			if prompt != nil {
				prompt(url)
			}
		case <-done:
		}
	}()

	tok, err := oauth2cli.GetToken(ctx, oauth2cli.Config{
		OAuth2Config:           *conf,
		AuthCodeOptions:        []oauth2.AuthCodeOption{oauth2.AccessTypeOffline},
		LocalServerBindAddress: []string{"127.0.0.1:0"},
		LocalServerReadyChan:   ready,
		LocalServerSuccessHTML: "Authorization complete, you can close this window.",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to authorize Drive access: %w", err)
	}
	return tok, nil
}

func loadToken(path string) (*oauth2.Token, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var tok oauth2.Token
	if err := json.Unmarshal(data, &tok); err != nil {
		return nil, fmt.Errorf("invalid token cache %s: %w", path, err)
	}
	return &tok, nil
}

func saveToken(path string, tok *oauth2.Token) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("failed to create token dir: %w", err)
	}
	data, err := json.Marshal(tok)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to cache token: %w", err)
	}
	return nil
}
