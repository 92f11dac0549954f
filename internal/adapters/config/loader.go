// Package config loads codereq.yaml.
package config

import (
	"path/filepath"
	"regexp"
	"strings"

	"go.trai.ch/codereq/internal/core/domain"
	"go.trai.ch/codereq/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// SupportedVersion is the config schema version this loader understands.
const SupportedVersion = "1"

var validGuardRegex = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
	FS     FileSystem
}

// NewLoader creates a Loader reading from the OS filesystem.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger, FS: NewOSFS()}
}

// Load returns the configuration of the nearest codereq.yaml at or above cwd,
// layered over domain.DefaultConfig. Without a file it returns the defaults.
func (l *Loader) Load(cwd string) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	configPath, found := l.findConfiguration(cwd)
	if !found {
		return cfg, nil
	}

	var file Configfile
	if err := l.readAndUnmarshalYAML(configPath, &file); err != nil {
		return domain.Config{}, zerr.With(err, "path", configPath)
	}

	if file.Version != "" && file.Version != SupportedVersion {
		l.Logger.Warn("unknown version '" + file.Version + "' in " + configPath + ", reading it as version " + SupportedVersion)
	}

	applyFlake(&cfg.Flake, file.Flake)
	if err := applyScript(&cfg.Script, file.Script); err != nil {
		return domain.Config{}, zerr.With(err, "path", configPath)
	}

	return cfg, nil
}

// DiscoverRoot returns the directory holding the nearest codereq.yaml, or cwd when there is none.
func (l *Loader) DiscoverRoot(cwd string) (string, error) {
	configPath, found := l.findConfiguration(cwd)
	if !found {
		return cwd, nil
	}
	return filepath.Dir(configPath), nil
}

func (l *Loader) findConfiguration(cwd string) (string, bool) {
	currentDir := cwd
	for {
		candidate := filepath.Join(currentDir, domain.ConfigFileName)
		if info, err := l.FS.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, true
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			return "", false
		}
		currentDir = parentDir
	}
}

func (l *Loader) readAndUnmarshalYAML(configPath string, target *Configfile) error {
	data, err := l.FS.ReadFile(configPath)
	if err != nil {
		return zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}
	if err := yaml.Unmarshal(data, target); err != nil {
		return zerr.Wrap(err, domain.ErrConfigParseFailed.Error())
	}
	return nil
}

func applyFlake(spec *domain.FlakeSpec, dto *FlakeDTO) {
	if dto == nil {
		return
	}
	setIfNotEmpty(&spec.Name, dto.Name)
	setIfNotEmpty(&spec.Version, dto.Version)
	setIfNotEmpty(&spec.URL, dto.URL)
	setIfNotEmpty(&spec.Description, dto.Description)
	setIfNotEmpty(&spec.Homepage, dto.Homepage)
	setIfNotEmpty(&spec.License, dto.License)
	if dto.Maintainers != nil {
		spec.Maintainers = append([]string{}, dto.Maintainers...)
	}
	if dto.Copyright != nil {
		if dto.Copyright.Year != 0 {
			spec.CopyrightYear = dto.Copyright.Year
		}
		setIfNotEmpty(&spec.CopyrightHolder, dto.Copyright.Holder)
	}
}

func applyScript(settings *domain.ScriptSettings, dto *ScriptDTO) error {
	if dto == nil {
		return nil
	}
	if dto.Guard != "" {
		if !validGuardRegex.MatchString(dto.Guard) {
			return zerr.With(domain.ErrInvalidGuard, "guard", dto.Guard)
		}
		settings.Guard = dto.Guard
	}
	if dto.Language != "" {
		if strings.ContainsAny(dto.Language, " \t\r\n`") {
			return zerr.With(domain.ErrInvalidLanguage, "language", dto.Language)
		}
		settings.Language = dto.Language
	}
	return nil
}

func setIfNotEmpty(dst *string, value string) {
	if value != "" {
		*dst = value
	}
}
