package domain

// Config is the validated configuration shared by all components.
type Config struct {
	ListerCommand string
	ListerArgs    []string
	GraphName     string
	NotFoundSink  bool
	NotFoundPath  string
	LogLevel      LogLevel
	LogFormat     string
}

// DefaultConfig returns the configuration used when no config file is found.
func DefaultConfig() Config {
	return Config{
		ListerCommand: DefaultListerCommand,
		ListerArgs:    []string{DefaultListerFlag},
		GraphName:     DefaultGraphName,
		NotFoundSink:  true,
		NotFoundPath:  DefaultNotFoundPath,
		LogLevel:      LogLevelInfo,
		LogFormat:     LogFormatPretty,
	}
}
