package entities

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	logger "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Settings is the optional file-backed configuration. Every field left empty
// here is collected interactively before a workflow starts.
type Settings struct {
	Source struct {
		Workspace string `yaml:"workspace"`
		Username  string `yaml:"username"`
		AppSecret string `yaml:"app_secret"` // inline, ${ENV_VAR}, or file path
	} `yaml:"source"`
	Destination struct {
		OrgURL      string `yaml:"org_url"`
		Project     string `yaml:"project"`
		AccessToken string `yaml:"access_token"` // inline, ${ENV_VAR}, or file path
	} `yaml:"destination"`
}

// envVarPattern matches ${VAR_NAME} placeholders.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)}`)

// ErrSettingsNotFound is returned when no settings file exists in any of the
// default locations.
var ErrSettingsNotFound = errors.New("settings file not found in default locations")

// NewSettings reads and parses a settings file, expanding environment
// variables and resolving secret file paths.
func NewSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read settings file %q: %w", path, err)
	}

	var s Settings
	if unmarshalErr := yaml.Unmarshal(data, &s); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to parse settings file: %w", unmarshalErr)
	}

	s.Source.AppSecret = resolveSecret(s.Source.AppSecret)
	s.Destination.AccessToken = resolveSecret(s.Destination.AccessToken)

	return &s, nil
}

// FindSettingsFile searches for a settings file in standard locations and
// returns the first one found.
func FindSettingsFile() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = ""
	}

	locations := []string{".", ".config"}
	if homeDir != "" {
		locations = append(locations, homeDir, filepath.Join(homeDir, ".config"))
	}

	patterns := []string{".bb2ado.yaml", ".bb2ado.yml", "bb2ado.yaml", "bb2ado.yml"}

	for _, loc := range locations {
		for _, pat := range patterns {
			p := filepath.Join(loc, pat)
			if _, statErr := os.Stat(p); statErr == nil {
				return p, nil
			}
		}
	}

	return "", ErrSettingsNotFound
}

// Credentials maps the settings onto a Credentials value. Empty fields stay
// empty and are filled in later by the prompter.
func (s *Settings) Credentials() Credentials {
	var creds Credentials
	creds.Source.Workspace = s.Source.Workspace
	creds.Source.Username = s.Source.Username
	creds.Source.AppSecret = s.Source.AppSecret
	creds.Destination.OrgURL = s.Destination.OrgURL
	creds.Destination.Project = s.Destination.Project
	creds.Destination.AccessToken = s.Destination.AccessToken
	return creds
}

// resolveSecret expands environment variable references (${VAR}) and, if the
// resulting string is a path to an existing file, reads the secret from the file.
func resolveSecret(raw string) string {
	if raw == "" {
		return raw
	}

	resolved := envVarPattern.ReplaceAllStringFunc(raw, func(match string) string {
		varName := envVarPattern.FindStringSubmatch(match)[1]
		if val := os.Getenv(varName); val != "" {
			return val
		}
		logger.Warnf("Environment variable %q is not set", varName)
		return ""
	})

	if info, statErr := os.Stat(resolved); statErr == nil && !info.IsDir() {
		data, readErr := os.ReadFile(resolved)
		if readErr != nil {
			logger.Warnf("Failed to read secret file %q: %v", resolved, readErr)
			return resolved
		}
		return strings.TrimSpace(string(data))
	}

	return resolved
}
