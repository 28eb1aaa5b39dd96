package config

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/viper"

	"sealgen/internal/errors"
)

// EnvPrefix prefixes every environment variable sealgen reads.
const EnvPrefix = "SEALGEN"

// Setting keys shared by flags, environment and settings files.
const (
	KeyManifest    = "manifest"
	KeySuffix      = "suffix"
	KeyStrict      = "strict"
	KeyJSONLogs    = "json_logs"
	KeyVerbose     = "verbose"
	KeyConcurrency = "concurrency"
	KeyDryRun      = "dry_run"
)

// settingsBase is the settings file name without extension.
const settingsBase = ".sealgen"

// Settings are the run settings of one sealgen invocation.
type Settings struct {
	// Manifest is the path to a blueprint manifest, if any.
	Manifest string
	Suffix   string
	// Strict overrides every blueprint's strict mode when set.
	Strict      *bool
	JSONLogs    bool
	Verbose     bool
	Concurrency int
	DryRun      bool
	// File is the settings file that was merged, if any.
	File string
}

// NewViper returns a viper instance with sealgen defaults and environment
// binding. Callers bind their flags before LoadSettings.
func NewViper() *viper.Viper {
	v := viper.New()

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	SetDefaults(v)

	return v
}

// SetDefaults registers the default of every setting except strict, which
// stays unset so blueprints keep their own choice.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyManifest, "")
	v.SetDefault(KeySuffix, "_sealed.go")
	v.SetDefault(KeyJSONLogs, false)
	v.SetDefault(KeyVerbose, false)
	v.SetDefault(KeyConcurrency, runtime.GOMAXPROCS(0))
	v.SetDefault(KeyDryRun, false)
}

// LoadSettings merges the optional settings file found in dir and resolves
// the effective settings. Flags and environment take precedence over it.
// A relative manifest path is resolved against dir.
func LoadSettings(v *viper.Viper, dir string) (*Settings, error) {
	file, err := mergeSettingsFile(v, dir)
	if err != nil {
		return nil, err
	}

	s := &Settings{
		Manifest:    v.GetString(KeyManifest),
		Suffix:      v.GetString(KeySuffix),
		JSONLogs:    v.GetBool(KeyJSONLogs),
		Verbose:     v.GetBool(KeyVerbose),
		Concurrency: v.GetInt(KeyConcurrency),
		DryRun:      v.GetBool(KeyDryRun),
		File:        file,
	}

	if v.IsSet(KeyStrict) {
		strict := v.GetBool(KeyStrict)
		s.Strict = &strict
	}

	if s.Concurrency < 1 {
		s.Concurrency = 1
	}

	if s.Manifest != "" && !filepath.IsAbs(s.Manifest) {
		s.Manifest = filepath.Join(dir, s.Manifest)
	}

	return s, nil
}

// mergeSettingsFile merges .sealgen.yaml, .sealgen.yml or .sealgen.toml from
// dir into v. It returns the merged path, or "" when there is none.
func mergeSettingsFile(v *viper.Viper, dir string) (string, error) {
	for _, ext := range []string{".yaml", ".yml", ".toml"} {
		path := filepath.Join(dir, settingsBase+ext)
		if _, err := os.Stat(path); err != nil {
			continue
		}

		if ext == ".toml" {
			settings := make(map[string]any)
			if _, err := toml.DecodeFile(path, &settings); err != nil {
				return "", errors.Wrapf(err, "reading settings %s", path)
			}

			if err := v.MergeConfigMap(settings); err != nil {
				return "", errors.Wrapf(err, "merging settings %s", path)
			}

			return path, nil
		}

		v.SetConfigFile(path)
		v.SetConfigType("yaml")

		if err := v.ReadInConfig(); err != nil {
			return "", errors.Wrapf(err, "reading settings %s", path)
		}

		return path, nil
	}

	return "", nil
}
