package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/ioutil"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

// UnknownFormatErr is returned for a config file with an unsupported extension.
var UnknownFormatErr = errors.New("unknown config format")

// Load decodes the given json or yaml file into v, based on the file extension.
func Load(file string, v interface{}) error {

	b, err := ioutil.ReadFile(file)
	if err != nil {
		return fmt.Errorf("could not load config '%s': %w", file, err)
	}

	switch ext := strings.ToLower(filepath.Ext(file)); ext {
	case ".json":
		err = json.Unmarshal(b, v)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, v)
	default:
		return fmt.Errorf("could not load config '%s' with extension '%s': %w", file, ext, UnknownFormatErr)
	}
	if err != nil {
		return fmt.Errorf("could not unmarshal config '%s': %w", file, err)
	}

	log.Info().Str("file", file).Msg("loaded config")

	return nil
}
