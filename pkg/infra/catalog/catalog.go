package catalog

import (
	"bytes"
	_ "embed"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"

	"github.com/apkshelf/apkshelf/pkg/domain/model"
)

//go:embed default.toml
var defaultCatalog []byte

type file struct {
	Targets []*model.Target `toml:"targets"`
}

// Default returns the built-in list of tracked apps
func Default() ([]*model.Target, error) {
	targets, err := Parse(defaultCatalog)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to parse built-in catalog")
	}
	return targets, nil
}

// Load reads a catalog file. An empty path returns the built-in catalog.
func Load(path string) ([]*model.Target, error) {
	if path == "" {
		return Default()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read catalog file", goerr.V("path", path))
	}

	targets, err := Parse(data)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to parse catalog file", goerr.V("path", path))
	}
	return targets, nil
}

// Parse decodes and validates a TOML catalog. Target IDs must be unique.
func Parse(data []byte) ([]*model.Target, error) {
	var f file
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&f); err != nil {
		return nil, goerr.Wrap(err, "invalid catalog TOML")
	}

	if len(f.Targets) == 0 {
		return nil, goerr.New("catalog has no targets")
	}

	seen := make(map[string]struct{}, len(f.Targets))
	for _, target := range f.Targets {
		if err := target.Validate(); err != nil {
			return nil, err
		}
		if _, ok := seen[target.ID]; ok {
			return nil, goerr.New("duplicate target id",
				goerr.T(model.ErrTagInvalidTarget),
				goerr.V("id", target.ID),
			)
		}
		seen[target.ID] = struct{}{}

		if target.Section == "" {
			target.Section = target.ID
		}
	}

	return f.Targets, nil
}
