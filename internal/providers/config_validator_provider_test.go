package providers

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"atd/internal/structures"
)

func validConfig() *structures.Config {
	return &structures.Config{
		WebServer: structures.Server{
			Host: "0.0.0.0",
			Port: 8080,
		},
		Tracking: structures.TrackingConfig{
			TickIntervalSeconds: 1,
			TargetProcess:       "inventor",
			InputSampler:        "presence",
		},
		Persistence: structures.Persistence{
			FilePath:            "/tmp/atd.json",
			SaveIntervalSeconds: 30,
		},
		Report: structures.ReportConfig{
			FilePath: "/tmp/atd-report.csv",
		},
		Logger: structures.LoggerConfig{
			Level: "info",
			Mode:  0644,
			Dir:   "/tmp/logs",
		},
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

func TestConfigValidator_ZeroTickInterval(t *testing.T) {
	c := validConfig()
	c.Tracking.TickIntervalSeconds = 0
	v := NewCnfValidator(c)
	assert.Error(t, v.Validate())
}

func TestConfigValidator_EmptyTargetProcess(t *testing.T) {
	c := validConfig()
	c.Tracking.TargetProcess = ""
	v := NewCnfValidator(c)
	assert.Error(t, v.Validate())
}

func TestConfigValidator_UnknownInputSampler(t *testing.T) {
	c := validConfig()
	c.Tracking.InputSampler = "webcam"
	v := NewCnfValidator(c)
	assert.Error(t, v.Validate())
}

func TestConfigValidator_EmptyPersistencePath(t *testing.T) {
	c := validConfig()
	c.Persistence.FilePath = ""
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

func TestConfigValidator_NegativeWeight(t *testing.T) {
	c := validConfig()
	c.Tracking.Weights.MouseClick = -1
	v := NewCnfValidator(c)
	assert.Error(t, v.Validate())
}
