package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/mapstructure"
	toml "github.com/pelletier/go-toml/v2"
)

// RunModeEnv names the environment variable selecting the run mode file.
const RunModeEnv = "APP_RUN_MODE"

// Load merges dir/common.toml, dir/<run mode>.toml and dir/local.toml over the defaults.
// Missing files are skipped; later files override keys of earlier ones.
func Load(dir string) (*Settings, error) {
	mode := strings.TrimSpace(os.Getenv(RunModeEnv))
	if mode == "" {
		mode = "default"
	}
	var layers [][]byte
	for _, name := range []string{"common.toml", mode + ".toml", "local.toml"} {
		p := filepath.Join(dir, name)
		b, err := os.ReadFile(p)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("config: read %s: %w", p, err)
		}
		layers = append(layers, b)
	}
	s, err := Parse(layers...)
	if err != nil {
		return nil, err
	}
	s.App.RunMode = mode
	return s, nil
}

// Parse merges TOML documents in order over the defaults and validates the result.
func Parse(layers ...[]byte) (*Settings, error) {
	raw := map[string]any{}
	for i, b := range layers {
		var m map[string]any
		if err := toml.Unmarshal(b, &m); err != nil {
			return nil, fmt.Errorf("config: layer %d: %w", i, err)
		}
		merge(raw, m)
	}

	s := Defaults()
	if err := decode(raw, s); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	s.raw = raw
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Decode decodes the raw section (dotted for nested tables, e.g. "admin.menu") into out.
// Unknown sections leave out untouched.
func (s *Settings) Decode(section string, out any) error {
	var v any = s.raw
	for _, part := range strings.Split(section, ".") {
		m, ok := v.(map[string]any)
		if !ok {
			return nil
		}
		if v, ok = m[part]; !ok {
			return nil
		}
	}
	if err := decode(v, out); err != nil {
		return fmt.Errorf("config: section %s: %w", section, err)
	}
	return nil
}

func decode(in, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "toml",
		WeaklyTypedInput: true,
		Result:           out,
	})
	if err != nil {
		return err
	}
	return dec.Decode(in)
}

// merge copies src into dst, merging nested tables.
func merge(dst, src map[string]any) {
	for k, v := range src {
		sm, ok := v.(map[string]any)
		if !ok {
			dst[k] = v
			continue
		}
		dm, ok := dst[k].(map[string]any)
		if !ok {
			dm = map[string]any{}
			dst[k] = dm
		}
		merge(dm, sm)
	}
}
