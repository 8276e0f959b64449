package config

// Configfile represents the structure of the lddgraph.yaml configuration file.
type Configfile struct {
	Version string    `yaml:"version" validate:"omitempty,oneof=1"`
	Lister  ListerDTO `yaml:"lister"`
	Graph   GraphDTO  `yaml:"graph"`
	Log     LogDTO    `yaml:"log"`
}

// ListerDTO configures the external dependency lister.
type ListerDTO struct {
	Command string   `yaml:"command" validate:"required"`
	Args    []string `yaml:"args"`
}

// GraphDTO configures the emitted graph.
type GraphDTO struct {
	Name         string `yaml:"name" validate:"required"`
	NotFoundSink bool   `yaml:"notFoundSink"`
	NotFoundPath string `yaml:"notFoundPath" validate:"required"`
}

// LogDTO configures diagnostics.
type LogDTO struct {
	Level  string `yaml:"level" validate:"omitempty,oneof=debug info warn warning error"`
	Format string `yaml:"format" validate:"omitempty,oneof=pretty json"`
}
