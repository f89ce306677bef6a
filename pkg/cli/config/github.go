package config

import (
	"os"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/apkshelf/apkshelf/pkg/domain/interfaces"
	githubinfra "github.com/apkshelf/apkshelf/pkg/infra/github"
)

// GitHub holds GitHub API configuration. All credentials are optional.
type GitHub struct {
	BaseURL        string
	Token          string `masq:"secret"`
	AppID          int64
	InstallationID int64
	PrivateKey     string `masq:"secret"`
	PrivateKeyFile string
	Timeout        time.Duration
}

// Flags returns CLI flags for GitHub configuration
func (c *GitHub) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "github-base-url",
			Usage:       "GitHub API base URL (for GitHub Enterprise)",
			Destination: &c.BaseURL,
			Sources:     cli.EnvVars("APKSHELF_GITHUB_BASE_URL"),
		},
		&cli.StringFlag{
			Name:        "github-token",
			Usage:       "GitHub token to raise the API rate limit",
			Destination: &c.Token,
			Sources:     cli.EnvVars("APKSHELF_GITHUB_TOKEN", "GITHUB_TOKEN"),
		},
		&cli.Int64Flag{
			Name:        "github-app-id",
			Usage:       "GitHub App ID",
			Destination: &c.AppID,
			Sources:     cli.EnvVars("APKSHELF_GITHUB_APP_ID"),
		},
		&cli.Int64Flag{
			Name:        "github-installation-id",
			Usage:       "GitHub App installation ID",
			Destination: &c.InstallationID,
			Sources:     cli.EnvVars("APKSHELF_GITHUB_INSTALLATION_ID"),
		},
		&cli.StringFlag{
			Name:        "github-private-key",
			Usage:       "GitHub App private key (PEM content)",
			Destination: &c.PrivateKey,
			Sources:     cli.EnvVars("APKSHELF_GITHUB_PRIVATE_KEY"),
		},
		&cli.StringFlag{
			Name:        "github-private-key-file",
			Usage:       "Path to GitHub App private key",
			Destination: &c.PrivateKeyFile,
			Sources:     cli.EnvVars("APKSHELF_GITHUB_PRIVATE_KEY_FILE"),
		},
		&cli.DurationFlag{
			Name:        "github-timeout",
			Usage:       "Timeout of one GitHub API request (0 keeps the HTTP client default)",
			Destination: &c.Timeout,
			Sources:     cli.EnvVars("APKSHELF_GITHUB_TIMEOUT"),
		},
	}
}

// NewClient builds a release client from the configuration
func (c *GitHub) NewClient() (interfaces.ReleaseClient, error) {
	opts := []githubinfra.Option{
		githubinfra.WithTimeout(c.Timeout),
	}
	if c.BaseURL != "" {
		opts = append(opts, githubinfra.WithBaseURL(c.BaseURL))
	}

	switch {
	case c.AppID != 0:
		key, err := c.privateKey()
		if err != nil {
			return nil, err
		}
		if c.InstallationID == 0 {
			return nil, goerr.New("github-installation-id is required with github-app-id")
		}
		opts = append(opts, githubinfra.WithApp(c.AppID, c.InstallationID, key))
	case c.Token != "":
		opts = append(opts, githubinfra.WithToken(c.Token))
	}

	return githubinfra.NewClient(opts...)
}

// AuthMode describes which credentials are in use, for logging
func (c *GitHub) AuthMode() string {
	switch {
	case c.AppID != 0:
		return "app"
	case c.Token != "":
		return "token"
	default:
		return "anonymous"
	}
}

func (c *GitHub) privateKey() ([]byte, error) {
	if c.PrivateKey != "" {
		return []byte(c.PrivateKey), nil
	}
	if c.PrivateKeyFile == "" {
		return nil, goerr.New("github-private-key or github-private-key-file is required with github-app-id")
	}

	key, err := os.ReadFile(c.PrivateKeyFile)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read GitHub App private key", goerr.V("path", c.PrivateKeyFile))
	}
	return key, nil
}
