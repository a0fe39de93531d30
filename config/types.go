package config

// Missing-field policies.
const (
	OnMissingFail = "fail"
	OnMissingSkip = "skip"
)

// KindCustom marks a converter whose field table is declared in the run file.
const KindCustom = "custom"

// LoggingConfig contains logger settings
type LoggingConfig struct {
	Level string `yaml:"level" validate:"omitempty,oneof=debug info warn error"`
}

// FieldSpec declares one mapped field of a custom converter.
// Target defaults to Source.
type FieldSpec struct {
	Source   string `yaml:"source" validate:"required"`
	Target   string `yaml:"target"`
	Required bool   `yaml:"required"`
}

// ConverterJob configures one converter run
type ConverterJob struct {
	Name        string `yaml:"name" validate:"required"`
	Kind        string `yaml:"kind" validate:"required,oneof=coordinates names photos details urls custom"`
	Source      string `yaml:"source" validate:"required"`
	Destination string `yaml:"destination" validate:"required,nefield=Source"`
	// OnMissingField overrides the top-level policy for this converter.
	OnMissingField string      `yaml:"onMissingField" validate:"omitempty,oneof=fail skip"`
	Identifier     string      `yaml:"identifier"`
	Fields         []FieldSpec `yaml:"fields" validate:"dive"`
}

// AppConfig is the root configuration structure
type AppConfig struct {
	Logging        LoggingConfig  `yaml:"logging"`
	InputDir       string         `yaml:"inputDir"`
	OutputDir      string         `yaml:"outputDir"`
	Indent         string         `yaml:"indent"`
	OnMissingField string         `yaml:"onMissingField" validate:"omitempty,oneof=fail skip"`
	Parallelism    int            `yaml:"parallelism" validate:"gte=0,lte=64"`
	Converters     []ConverterJob `yaml:"converters" validate:"required,min=1,unique=Name,dive"`
}
