package structures

import "time"

type Server struct {
	Host string `yaml:"host" validate:"required"`
	Port int    `yaml:"port" validate:"required|uint|min:1"`
}

type StoreConfig struct {
	Driver       string        `yaml:"driver" validate:"required|in:file,sqlite"`
	FilePath     string        `yaml:"filePath" validate:"required|unixPath"`
	DBPath       string        `yaml:"dbPath" validate:"unixPath"`
	SaveInterval time.Duration `yaml:"saveInterval" validate:"required|min:1"`
	Namespace    string        `yaml:"namespace"`
}

type LoggerConfig struct {
	Level string `yaml:"level" validate:"required|in:trace,debug,info,warn,error,fatal,panic"`
	Mode  uint32 `yaml:"mode" validate:"required|uint"`
	Dir   string `yaml:"dir" validate:"required|unixPath"`
}

// LedgerConfig holds the defaults applied when the user never saved
// settings, plus the bounty deletion policy.
type LedgerConfig struct {
	UnitsPerDay    float64       `yaml:"unitsPerDay" validate:"min:0"`
	ConversionRate float64       `yaml:"conversionRate" validate:"min:0"`
	RefundOnDelete bool          `yaml:"refundOnDelete"`
	TickInterval   time.Duration `yaml:"tickInterval"`
}

type PanicConfig struct {
	BreathUnit time.Duration `yaml:"breathUnit"`
}

type CacheConfig struct {
	Enabled bool `yaml:"enabled"`
	Size    int  `yaml:"size"`
	TTL     int  `yaml:"ttl"`
}

type MetricsConfig struct {
	Enabled bool `yaml:"enabled"`
}

type Config struct {
	AppName   string
	Version   string
	Debug     bool
	Path      string
	WebServer Server        `yaml:"webServer"`
	Store     StoreConfig   `yaml:"store"`
	Logger    LoggerConfig  `yaml:"logger"`
	Ledger    LedgerConfig  `yaml:"ledger"`
	Panic     PanicConfig   `yaml:"panic"`
	Cache     CacheConfig   `yaml:"cache"`
	Metrics   MetricsConfig `yaml:"metrics"`
}

type CliFlags struct {
	ConfigPath string
	DebugMode  bool
}
