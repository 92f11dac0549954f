package config

// Configfile represents the structure of the codereq.yaml configuration file.
type Configfile struct {
	Version string     `yaml:"version"`
	Flake   *FlakeDTO  `yaml:"flake"`
	Script  *ScriptDTO `yaml:"script"`
}

// FlakeDTO holds flake metadata defaults.
type FlakeDTO struct {
	Name        string        `yaml:"name"`
	Version     string        `yaml:"version"`
	URL         string        `yaml:"url"`
	Description string        `yaml:"description"`
	Homepage    string        `yaml:"homepage"`
	License     string        `yaml:"license"`
	Maintainers []string      `yaml:"maintainers"`
	Copyright   *CopyrightDTO `yaml:"copyright"`
}

// CopyrightDTO holds the copyright notice of generated flakes.
type CopyrightDTO struct {
	Year   int    `yaml:"year"`
	Holder string `yaml:"holder"`
}

// ScriptDTO holds script generation settings.
type ScriptDTO struct {
	Guard    string `yaml:"guard"`
	Language string `yaml:"language"`
}
