// Package config provides the configuration loader for lddgraph.
package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.trai.ch/lddgraph/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	getenv   func(string) string
	validate *validator.Validate
}

// NewLoader creates a new Loader reading the process environment.
func NewLoader() *Loader {
	return NewLoaderWithEnv(os.Getenv)
}

// NewLoaderWithEnv creates a new Loader with a custom environment lookup.
func NewLoaderWithEnv(getenv func(string) string) *Loader {
	return &Loader{
		getenv:   getenv,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Load finds the configuration for cwd. An explicit LDDGRAPH_CONFIG wins over
// discovery; discovery walks up from cwd. Without a file the defaults apply.
func (l *Loader) Load(cwd string) (domain.Config, error) {
	configPath := l.getenv(domain.ConfigEnvVar)
	if configPath == "" {
		configPath = findConfiguration(cwd)
	}
	if configPath == "" {
		return domain.DefaultConfig(), nil
	}

	file := defaultConfigfile()
	if err := readAndUnmarshalYAML(configPath, &file); err != nil {
		return domain.Config{}, zerr.With(err, "path", configPath)
	}

	if err := l.validate.Struct(&file); err != nil {
		return domain.Config{}, validationError(err, configPath)
	}

	return toDomain(&file), nil
}

func findConfiguration(cwd string) string {
	currentDir := cwd
	for {
		candidate := filepath.Join(currentDir, domain.ConfigFileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root
			return ""
		}
		currentDir = parentDir
	}
}

// defaultConfigfile pre-fills the DTO so keys absent from the file keep their defaults.
func defaultConfigfile() Configfile {
	def := domain.DefaultConfig()
	return Configfile{
		Version: "1",
		Lister: ListerDTO{
			Command: def.ListerCommand,
			Args:    def.ListerArgs,
		},
		Graph: GraphDTO{
			Name:         def.GraphName,
			NotFoundSink: def.NotFoundSink,
			NotFoundPath: def.NotFoundPath,
		},
		Log: LogDTO{
			Level:  strings.ToLower(def.LogLevel.String()),
			Format: def.LogFormat,
		},
	}
}

func toDomain(file *Configfile) domain.Config {
	format := file.Log.Format
	if format == "" {
		format = domain.LogFormatPretty
	}
	return domain.Config{
		ListerCommand: file.Lister.Command,
		ListerArgs:    file.Lister.Args,
		GraphName:     file.Graph.Name,
		NotFoundSink:  file.Graph.NotFoundSink,
		NotFoundPath:  file.Graph.NotFoundPath,
		LogLevel:      domain.ParseLogLevel(file.Log.Level),
		LogFormat:     format,
	}
}

func validationError(err error, configPath string) error {
	result := zerr.With(zerr.Wrap(err, domain.ErrConfigInvalid.Error()), "path", configPath)

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		result = zerr.With(result, "field", fieldErrs[0].Namespace())
		result = zerr.With(result, "rule", fieldErrs[0].Tag())
	}
	return result
}

// readAndUnmarshalYAML reads a YAML file and unmarshals it into the target struct.
func readAndUnmarshalYAML[T any](configPath string, target *T) error {
	// #nosec G304 -- configPath is chosen by the user
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		return zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	if parseErr := yaml.Unmarshal(configFile, target); parseErr != nil {
		return zerr.Wrap(parseErr, domain.ErrConfigParseFailed.Error())
	}

	return nil
}
