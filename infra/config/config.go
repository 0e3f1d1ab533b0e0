package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
)

// Path is the directory of the config files.
var Path = "infra/config"

// Load loads the config for the given key into v.
// Fields missing from the file keep the values already present in v.
func Load(key string, v interface{}) error {
	return LoadFile(filepath.Join(Path, fmt.Sprintf("%s.json", key)), v)
}

// LoadFile loads the given json config file into v.
func LoadFile(file string, v interface{}) error {
	b, err := os.ReadFile(file)
	if err != nil {
		return fmt.Errorf("could not load config from '%s': %w", file, err)
	}
	if err := json.Unmarshal(b, v); err != nil {
		return fmt.Errorf("could not unmarshal the config from '%s': %w", file, err)
	}
	log.Info().Str("file", file).Msg("loaded config")
	return nil
}
