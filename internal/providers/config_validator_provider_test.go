package providers

import (
	"respire/internal/structures"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validConfig() *structures.Config {
	return &structures.Config{
		WebServer: structures.Server{
			Host: "0.0.0.0",
			Port: 8080,
		},
		Store: structures.StoreConfig{
			Driver:       "file",
			FilePath:     "/tmp/respire.dat",
			SaveInterval: 30 * time.Second,
			Namespace:    "respire",
		},
		Logger: structures.LoggerConfig{
			Level: "info",
			Mode:  0644,
			Dir:   "/tmp/logs",
		},
		Ledger: structures.LedgerConfig{
			UnitsPerDay:    10,
			ConversionRate: 1,
			RefundOnDelete: true,
			TickInterval:   time.Second,
		},
		Panic: structures.PanicConfig{BreathUnit: time.Second},
	}
}

func TestConfigValidator_ValidConfig(t *testing.T) {
	v := NewCnfValidator(validConfig())
	assert.NoError(t, v.Validate())
}

func TestConfigValidator_EmptyHost(t *testing.T) {
	c := validConfig()
	c.WebServer.Host = ""
	v := NewCnfValidator(c)
	assert.Error(t, v.Validate())
}

func TestConfigValidator_ZeroPort(t *testing.T) {
	c := validConfig()
	c.WebServer.Port = 0
	v := NewCnfValidator(c)
	assert.Error(t, v.Validate())
}

func TestConfigValidator_EmptyLogLevel(t *testing.T) {
	c := validConfig()
	c.Logger.Level = ""
	v := NewCnfValidator(c)
	assert.Error(t, v.Validate())
}

func TestConfigValidator_InvalidLogLevel(t *testing.T) {
	c := validConfig()
	c.Logger.Level = "verbose"
	v := NewCnfValidator(c)
	assert.Error(t, v.Validate())
}

func TestConfigValidator_UnknownStoreDriver(t *testing.T) {
	c := validConfig()
	c.Store.Driver = "redis"
	assert.Error(t, NewCnfValidator(c).Validate())
}

func TestConfigValidator_NegativeLedgerValues(t *testing.T) {
	c := validConfig()
	c.Ledger.UnitsPerDay = -1
	assert.Error(t, NewCnfValidator(c).Validate())

	c = validConfig()
	c.Panic.BreathUnit = -time.Second
	assert.Error(t, NewCnfValidator(c).Validate())
}
