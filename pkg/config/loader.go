package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/minifiles/pkg/errors"
	"github.com/arthur-debert/minifiles/pkg/logging"
	"github.com/arthur-debert/minifiles/pkg/paths"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix prefixes environment overrides: MINIFILES_OPTIONS_TRASH_DIR sets
// options.trash_dir
const EnvPrefix = "MINIFILES_"

// ProjectYAMLFileName is the YAML alternative to the TOML project config
const ProjectYAMLFileName = ".minifiles.yaml"

// Load reads the defaults, the user config file, the project config file in
// the working directory and the environment
func Load() (*Config, error) {
	return LoadWithOverrides(nil)
}

// LoadWithOverrides is Load with command line values applied last. Keys are
// dotted config paths such as "ui.format".
func LoadWithOverrides(overrides map[string]interface{}) (*Config, error) {
	return load(overrides,
		paths.New().ConfigFilePath(),
		paths.ProjectConfigFileName,
		ProjectYAMLFileName,
	)
}

// LoadFrom reads the defaults, then every existing file in files in order,
// then the environment. Missing files are skipped.
func LoadFrom(files ...string) (*Config, error) {
	return load(nil, files...)
}

func load(overrides map[string]interface{}, files ...string) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load defaults")
	}

	// 2. Config files
	for _, path := range files {
		if path == "" {
			continue
		}
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := k.Load(file.Provider(path), parserFor(path)); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to load config from %s", path).
				WithDetail("path", path)
		}
		logger.Debug().Str("path", path).Msg("Loaded config file")
	}

	// 3. Environment
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load env vars")
	}

	// 4. Command line
	if len(overrides) > 0 {
		if err := k.Load(confmap.Provider(overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to apply overrides")
		}
	}

	// 5. Unmarshal
	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			ErrorUnused:      true,
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigValid, "failed to unmarshal configuration")
	}

	// 6. Post-process
	postProcess(&cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// parserFor picks the parser from the file extension, TOML unless YAML
func parserFor(path string) koanf.Parser {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Parser()
	default:
		return toml.Parser()
	}
}

var sections = map[string]bool{"options": true, "content": true, "ui": true}

// envKey maps MINIFILES_SECTION_SOME_KEY to section.some_key. Section names
// never contain underscores, so only the first one separates. Variables
// outside the config sections (MINIFILES_DATA_DIR) are ignored.
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	section, rest, ok := strings.Cut(key, "_")
	if !ok || !sections[section] {
		return ""
	}
	return section + "." + rest
}

func postProcess(cfg *Config) {
	cfg.Content.Sort = strings.ToLower(strings.TrimSpace(cfg.Content.Sort))
	cfg.Content.Prefix = strings.ToLower(strings.TrimSpace(cfg.Content.Prefix))
	cfg.UI.Format = strings.ToLower(strings.TrimSpace(cfg.UI.Format))

	if cfg.Options.TrashDir == "" {
		cfg.Options.TrashDir = paths.New().TrashDir()
	} else {
		cfg.Options.TrashDir = paths.ExpandHome(cfg.Options.TrashDir)
	}
}
