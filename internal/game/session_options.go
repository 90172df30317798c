package game

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/google/uuid"
)

// SessionOption configures a Session during creation.
type SessionOption func(*sessionConfig)

type sessionConfig struct {
	id         string
	clock      quartz.Clock
	logger     *log.Logger
	bus        EventBus
	firstRound int
}

// WithSessionID overrides the generated session ID.
func WithSessionID(id string) SessionOption {
	return func(c *sessionConfig) {
		c.id = id
	}
}

// WithClock sets the clock used to timestamp events. Tests use quartz.NewMock.
func WithClock(clock quartz.Clock) SessionOption {
	return func(c *sessionConfig) {
		c.clock = clock
	}
}

// WithLogger sets the logger. Default discards everything.
func WithLogger(logger *log.Logger) SessionOption {
	return func(c *sessionConfig) {
		c.logger = logger
	}
}

// WithEventBus publishes events on an existing bus instead of a private one.
func WithEventBus(bus EventBus) SessionOption {
	return func(c *sessionConfig) {
		c.bus = bus
	}
}

// WithFirstRound sets the number of the first round. Default is 1.
func WithFirstRound(number int) SessionOption {
	return func(c *sessionConfig) {
		c.firstRound = number
	}
}

func newSessionConfig(opts []SessionOption) *sessionConfig {
	cfg := &sessionConfig{
		firstRound: 1,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.id == "" {
		cfg.id = uuid.NewString()
	}
	if cfg.clock == nil {
		cfg.clock = quartz.NewReal()
	}
	if cfg.logger == nil {
		cfg.logger = log.New(io.Discard)
	}
	if cfg.bus == nil {
		cfg.bus = NewEventBus()
	}
	return cfg
}
