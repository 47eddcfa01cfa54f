package lib

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/afero"
	"gopkg.in/ini.v1"
)

// ConfigEnvVar names an environment variable pointing to a config file used
// instead of .caosgit/config.
const ConfigEnvVar = "CAOSGIT_CONFIG"

const defaultLockTimeout = 2 * time.Second

// Settings holds the repository options read from the optional git-style
// config file:
//
//	[core]
//	    ignorefile = .caosgitignore
//	    lockrefs = true
//	    locktimeout = 2s
type Settings struct {
	// IgnoreFile is the root-relative name of the ignore file. Empty disables
	// ignore rules.
	IgnoreFile string
	// LockRefs makes mutating operations hold the repository lock.
	LockRefs    bool
	LockTimeout time.Duration
}

// DefaultSettings returns the settings used when no config file exists.
func DefaultSettings() Settings {
	return Settings{
		IgnoreFile:  DefaultIgnoreFilename,
		LockRefs:    true,
		LockTimeout: defaultLockTimeout,
	}
}

// LoadSettings reads the config file of the repository rooted at rootDir.
// If getenv(ConfigEnvVar) is set, that file is read instead. A missing file
// yields DefaultSettings.
func LoadSettings(fs afero.Fs, rootDir string, getenv func(string) string) (Settings, error) {
	settings := DefaultSettings()

	configPath := GetConfigPath(rootDir)
	if getenv != nil {
		if p := getenv(ConfigEnvVar); p != "" {
			configPath = p
		}
	}

	data, err := afero.ReadFile(fs, configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return settings, nil
		}
		return Settings{}, ioError("read", configPath, err)
	}

	cfg, err := ini.LoadSources(ini.LoadOptions{Insensitive: true}, data)
	if err != nil {
		return Settings{}, fmt.Errorf("could not parse config %s: %w", configPath, err)
	}

	core := cfg.Section("core")
	if core.HasKey("ignorefile") {
		settings.IgnoreFile = core.Key("ignorefile").String()
	}
	settings.LockRefs = core.Key("lockrefs").MustBool(settings.LockRefs)
	settings.LockTimeout = core.Key("locktimeout").MustDuration(settings.LockTimeout)
	if settings.LockTimeout <= 0 {
		settings.LockTimeout = defaultLockTimeout
	}
	return settings, nil
}
