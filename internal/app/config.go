package app

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"artichat/internal/crypto"
	"artichat/internal/protocol/frame"
	"artichat/internal/relay"
	"artichat/internal/session"
)

const (
	DefaultHost        = "127.0.0.1"
	DefaultPort        = 9191
	DefaultCreatorPort = 9090
	DefaultWire        = "legacy"

	usernameLength = 10
)

// Role decides which local port a client binds.
type Role uint8

const (
	// RoleCreator started the room and binds the fixed creator port.
	RoleCreator Role = iota
	// RoleJoiner was given a room key and binds the configured port.
	RoleJoiner
)

func (r Role) String() string {
	if r == RoleCreator {
		return "creator"
	}
	return "joiner"
}

// Config holds runtime options for building the app. YAML keys match the
// long flag names.
type Config struct {
	Username     string        `yaml:"username"`
	RoomKey      string        `yaml:"roomkey"`
	Port         int           `yaml:"port"`          // joiner bind port
	Host         string        `yaml:"host"`          // local bind host
	CreatorPort  int           `yaml:"creator_port"`  // creator bind port
	RelayAddr    string        `yaml:"relay"`         // e.g. 127.0.0.1:9595
	Wire         string        `yaml:"wire"`          // legacy | typed
	Cipher       string        `yaml:"cipher"`        // aes-256-gcm | chacha20-poly1305
	HistoryLimit int           `yaml:"history_limit"` // 0 keeps everything
	PollInterval time.Duration `yaml:"poll_interval"`
	LogFile      string        `yaml:"log_file"`
	LogLevel     string        `yaml:"log_level"`
}

// DefaultConfig returns the settings used when nothing is configured.
func DefaultConfig() Config {
	return Config{
		Port:         DefaultPort,
		Host:         DefaultHost,
		CreatorPort:  DefaultCreatorPort,
		RelayAddr:    relay.DefaultAddr,
		Wire:         DefaultWire,
		Cipher:       string(crypto.SuiteAESGCM),
		PollInterval: session.DefaultPollInterval,
		LogLevel:     "info",
	}
}

// LoadConfig overlays the YAML file at path on DefaultConfig. An empty path
// returns the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks ranges and enumerations. It does not check the room key,
// which may still be generated.
func (c Config) Validate() error {
	var errs []error
	if err := checkPort("port", c.Port); err != nil {
		errs = append(errs, err)
	}
	if err := checkPort("creator_port", c.CreatorPort); err != nil {
		errs = append(errs, err)
	}
	if c.Host == "" {
		errs = append(errs, errors.New("host must not be empty"))
	}
	if _, _, err := net.SplitHostPort(c.RelayAddr); err != nil {
		errs = append(errs, fmt.Errorf("relay %q: %w", c.RelayAddr, err))
	}
	if _, err := frame.ForWire(c.Wire); err != nil {
		errs = append(errs, err)
	}
	if _, err := crypto.ParseSuite(c.Cipher); err != nil {
		errs = append(errs, err)
	}
	if c.HistoryLimit < 0 {
		errs = append(errs, fmt.Errorf("history_limit %d must not be negative", c.HistoryLimit))
	}
	if c.PollInterval <= 0 {
		errs = append(errs, fmt.Errorf("poll_interval %s must be positive", c.PollInterval))
	}
	return errors.Join(errs...)
}

// Resolve fills in a random username and, when no room key was supplied,
// generates one. The role follows from whether a key was given.
func (c *Config) Resolve() (Role, error) {
	if c.Username == "" {
		name, err := crypto.RandomUsername(usernameLength)
		if err != nil {
			return 0, err
		}
		c.Username = name
	}
	if c.RoomKey != "" {
		return RoleJoiner, nil
	}
	key, err := crypto.GenerateRoomKey()
	if err != nil {
		return 0, err
	}
	c.RoomKey = key
	return RoleCreator, nil
}

// LocalAddr returns the bind address for role.
func (c Config) LocalAddr(role Role) string {
	port := c.Port
	if role == RoleCreator {
		port = c.CreatorPort
	}
	return net.JoinHostPort(c.Host, strconv.Itoa(port))
}

func checkPort(name string, p int) error {
	if p < 0 || p > 65535 {
		return fmt.Errorf("%s %d out of range", name, p)
	}
	return nil
}
