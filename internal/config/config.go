package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

const DefaultPath = "configs/fixture.toml"

type Fixture struct {
	ByeLabel           string `toml:"bye_label"`
	DoubleLeg          bool   `toml:"double_leg"`
	RandomizeTeams     bool   `toml:"randomize_teams"`
	RandomizeMatchdays bool   `toml:"randomize_matchdays"`
	Seed               int64  `toml:"seed"`
	NormalizeNames     bool   `toml:"normalize_names"`
}

type Output struct {
	File            string `toml:"file"`
	CollateLanguage string `toml:"collate_language"`
}

type Log struct {
	Level string `toml:"level"`
}

type Config struct {
	Fixture Fixture `toml:"fixture"`
	Output  Output  `toml:"output"`
	Log     Log     `toml:"log"`
}

var ErrUnknownKey = errors.New("unknown config key")

func Default() Config {
	return Config{
		Fixture: Fixture{
			ByeLabel:           "Free",
			DoubleLeg:          true,
			RandomizeTeams:     true,
			RandomizeMatchdays: true,
		},
		Output: Output{
			CollateLanguage: "en",
		},
		Log: Log{
			Level: "info",
		},
	}
}

// New reads the config file at path on top of the defaults, then applies
// FIXTURE_* environment variables. Variables from a .env file in the
// working directory are loaded first and never override the environment.
// A missing file is fine when path is DefaultPath.
func New(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		path = DefaultPath
	}
	md, err := toml.DecodeFile(path, &cfg)
	switch {
	case errors.Is(err, fs.ErrNotExist) && path == DefaultPath:
	case err != nil:
		return Config{}, err
	default:
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i := range undecoded {
				keys[i] = undecoded[i].String()
			}
			return Config{}, fmt.Errorf("%s: %w: %s", path, ErrUnknownKey, strings.Join(keys, ", "))
		}
	}

	err = godotenv.Load()
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf(".env: %w", err)
	}
	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	var err error
	setString := func(key string, dst *string) {
		if v, ok := lookup(key); ok {
			*dst = v
		}
	}
	setBool := func(key string, dst *bool) {
		v, ok := lookup(key)
		if !ok {
			return
		}
		b, parseErr := strconv.ParseBool(v)
		if parseErr != nil {
			err = errors.Join(err, fmt.Errorf("env %s: %w", key, parseErr))
			return
		}
		*dst = b
	}

	setString("FIXTURE_BYE_LABEL", &c.Fixture.ByeLabel)
	setBool("FIXTURE_DOUBLE_LEG", &c.Fixture.DoubleLeg)
	setBool("FIXTURE_RANDOMIZE_TEAMS", &c.Fixture.RandomizeTeams)
	setBool("FIXTURE_RANDOMIZE_MATCHDAYS", &c.Fixture.RandomizeMatchdays)
	setBool("FIXTURE_NORMALIZE_NAMES", &c.Fixture.NormalizeNames)
	if v, ok := lookup("FIXTURE_SEED"); ok {
		seed, parseErr := strconv.ParseInt(v, 10, 64)
		if parseErr != nil {
			err = errors.Join(err, fmt.Errorf("env FIXTURE_SEED: %w", parseErr))
		} else {
			c.Fixture.Seed = seed
		}
	}
	setString("FIXTURE_OUTPUT", &c.Output.File)
	setString("FIXTURE_COLLATE_LANGUAGE", &c.Output.CollateLanguage)
	setString("FIXTURE_LOG_LEVEL", &c.Log.Level)
	return err
}
