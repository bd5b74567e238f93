package structures

import "time"

type Server struct {
	Host string `yaml:"host" validate:"required"`
	Port int    `yaml:"port" validate:"required|uint|min:1"`
}

type Weights struct {
	MouseClick float64 `yaml:"mouseClick" validate:"min:0"`
	KeyPress   float64 `yaml:"keyPress" validate:"min:0"`
	Continuous float64 `yaml:"continuous" validate:"min:0"`
}

type TrackingConfig struct {
	TickIntervalSeconds        int      `yaml:"tickIntervalSeconds" validate:"required|min:1"`
	TargetProcess              string   `yaml:"targetProcess" validate:"required"`
	FileExtensions             []string `yaml:"fileExtensions"`
	ExcludedIdentitySubstrings []string `yaml:"excludedIdentitySubstrings"`
	InputSampler               string   `yaml:"inputSampler" validate:"in:presence,none"`
	Weights                    Weights  `yaml:"weights"`
}

type Persistence struct {
	FilePath            string `yaml:"filePath" validate:"required|unixPath"`
	SaveIntervalSeconds int    `yaml:"saveIntervalSeconds" validate:"required|min:1"`
	Compress            bool   `yaml:"compress"`
}

type ReportConfig struct {
	FilePath string `yaml:"filePath" validate:"required|unixPath"`
}

type LoggerConfig struct {
	Level string `yaml:"level" validate:"required|in:trace,debug,info,warn,error,fatal,panic"`
	Mode  uint32 `yaml:"mode" validate:"required|uint"`
	Dir   string `yaml:"dir" validate:"required|unixPath"`
}

type CacheConfig struct {
	Enabled bool `yaml:"enabled"`
	Size    int  `yaml:"size"`
}

type MetricsConfig struct {
	Enabled bool `yaml:"enabled"`
}

type Config struct {
	AppName     string
	Debug       bool
	Path        string
	Tracking    TrackingConfig `yaml:"tracking"`
	WebServer   Server         `yaml:"webServer"`
	Persistence Persistence    `yaml:"persistence"`
	Report      ReportConfig   `yaml:"report"`
	Logger      LoggerConfig   `yaml:"logger"`
	Cache       CacheConfig    `yaml:"cache"`
	Metrics     MetricsConfig  `yaml:"metrics"`
}

func (c *Config) TickInterval() time.Duration {
	return time.Duration(c.Tracking.TickIntervalSeconds) * time.Second
}

func (c *Config) SaveInterval() time.Duration {
	return time.Duration(c.Persistence.SaveIntervalSeconds) * time.Second
}
