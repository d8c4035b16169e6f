package simulation

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
	golog "github.com/tochemey/goakt/v3/log"

	"github.com/lao-tseu-is-alive/go-flocking-boids/pkg/behavior"
)

//go:embed config.schema.json
var configSchema string

const configSchemaURL = "config.schema.json"

type Config struct {
	// World Dimensions
	WorldWidth  float64 `json:"worldWidth"`
	WorldHeight float64 `json:"worldHeight"`

	// Population: NumBoids followers plus one leader
	NumBoids int   `json:"numBoids"`
	Seed     int64 `json:"seed"`

	// Host pacing, used by hosts that own their ticker
	TicksPerSecond int `json:"ticksPerSecond"`

	LogLevel string `json:"logLevel"`

	// Visualization
	ShowStats bool `json:"showStats"`
	ShowRadii bool `json:"showRadii"`
}

func DefaultConfig() *Config {
	return &Config{
		WorldWidth:     1200,
		WorldHeight:    800,
		NumBoids:       100,
		TicksPerSecond: 60,
		LogLevel:       "info",
		ShowStats:      true,
	}
}

// Bounds returns the world size as seen by the boids.
func (c *Config) Bounds() behavior.Bounds {
	return behavior.Bounds{Width: c.WorldWidth, Height: c.WorldHeight}
}

// Validate checks the configuration against the embedded JSON schema.
func (c *Config) Validate() error {
	b, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return validate(b)
}

// NewLogger builds a goakt logger writing to w at the configured level.
func (c *Config) NewLogger(w io.Writer) golog.Logger {
	return golog.New(parseLevel(c.LogLevel), w)
}

func parseLevel(s string) golog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return golog.DebugLevel
	case "warn", "warning":
		return golog.WarningLevel
	case "error":
		return golog.ErrorLevel
	default:
		return golog.InfoLevel
	}
}

// LoadConfig loads configuration from a JSON file and validates it against
// the embedded schema. Fields missing from the file keep their default value.
func LoadConfig(configFile string) (*Config, error) {
	b, err := os.ReadFile(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}

	if err := validate(b); err != nil {
		return nil, err
	}

	cfg := DefaultConfig()
	if err := json.Unmarshal(b, cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return cfg, nil
}

func validate(b []byte) error {
	sch, err := jsonschema.CompileString(configSchemaURL, configSchema)
	if err != nil {
		return fmt.Errorf("failed to compile schema: %w", err)
	}

	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return fmt.Errorf("failed to decode config json: %w", err)
	}

	if err := sch.Validate(v); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	return nil
}
