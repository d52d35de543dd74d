package config

type Log struct {
	Level      string `envconfig:"LEVEL" default:"info" mapstructure:"level" validate:"oneof=debug info warn error"`
	Format     string `envconfig:"FORMAT" default:"text" mapstructure:"format" validate:"oneof=text json"`
	TimeFormat string `envconfig:"TIME_FORMAT" default:"15:04:05" mapstructure:"time_format"`
	Prefix     string `envconfig:"PREFIX" default:"propdesc" mapstructure:"prefix"`
}

type Input struct {
	// Format of the record document; auto picks yaml for .yaml/.yml files
	// and json otherwise.
	Format   string `envconfig:"FORMAT" default:"auto" mapstructure:"format" validate:"oneof=auto json yaml"`
	Snapshot bool   `envconfig:"SNAPSHOT" default:"false" mapstructure:"snapshot"`
}

type Output struct {
	Format   string `envconfig:"FORMAT" default:"table" mapstructure:"format" validate:"oneof=table json yaml"`
	Color    bool   `envconfig:"COLOR" default:"true" mapstructure:"color"`
	Snapshot bool   `envconfig:"SNAPSHOT" default:"false" mapstructure:"snapshot"`
}

// App is the CLI configuration. Environment variables use the PROPDESC_
// prefix, e.g. PROPDESC_OUTPUT_FORMAT=json.
type App struct {
	Env    string `envconfig:"APP_ENV" default:"development" mapstructure:"env"`
	Log    Log    `envconfig:"LOG" mapstructure:"log"`
	Input  Input  `envconfig:"INPUT" mapstructure:"input"`
	Output Output `envconfig:"OUTPUT" mapstructure:"output"`
}
