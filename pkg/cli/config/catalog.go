package config

import (
	"github.com/urfave/cli/v3"

	"github.com/apkshelf/apkshelf/pkg/domain/model"
	"github.com/apkshelf/apkshelf/pkg/infra/catalog"
)

// Catalog holds target catalog configuration
type Catalog struct {
	Path        string
	Concurrency int
}

// Flags returns CLI flags for catalog configuration
func (c *Catalog) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "targets",
			Aliases:     []string{"t"},
			Usage:       "Path to a TOML target catalog (built-in catalog when empty)",
			Destination: &c.Path,
			Sources:     cli.EnvVars("APKSHELF_TARGETS"),
		},
		&cli.IntFlag{
			Name:        "concurrency",
			Usage:       "Maximum number of targets resolved at once (0 means unlimited)",
			Value:       0,
			Destination: &c.Concurrency,
			Sources:     cli.EnvVars("APKSHELF_CONCURRENCY"),
		},
	}
}

// Load returns the configured targets
func (c *Catalog) Load() ([]*model.Target, error) {
	return catalog.Load(c.Path)
}
