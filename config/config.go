package config

import (
	"fmt"
	"os"
	"time"

	"github.com/ratel-online/hokm/hokm/game"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Game     GameConfig     `yaml:"game"`
	Timeouts TimeoutsConfig `yaml:"timeouts"`
}

type ServerConfig struct {
	TcpAddr string `yaml:"tcp_addr"`
	WsAddr  string `yaml:"ws_addr"`
}

type GameConfig struct {
	TargetScore int    `yaml:"target_score"`
	DealMode    string `yaml:"deal_mode"`
	HakimMode   string `yaml:"hakim_mode"`
	Direction   string `yaml:"direction"`
}

type TimeoutsConfig struct {
	Play  time.Duration `yaml:"play"`
	Trump time.Duration `yaml:"trump"`
}

func Default() *Config {
	return &Config{
		Server: ServerConfig{
			TcpAddr: ":9999",
			WsAddr:  ":9998",
		},
		Game: GameConfig{
			TargetScore: game.DefaultTargetScore,
			DealMode:    "all",
			HakimMode:   "fixed",
			Direction:   "clockwise",
		},
		Timeouts: TimeoutsConfig{
			Play:  40 * time.Second,
			Trump: 30 * time.Second,
		},
	}
}

// Load reads path over the defaults. An empty path yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.TcpAddr == "" && c.Server.WsAddr == "" {
		return fmt.Errorf("config: no listen address")
	}
	if c.Game.TargetScore <= 0 {
		return fmt.Errorf("config: target_score must be positive, got %d", c.Game.TargetScore)
	}
	if _, err := c.Rules(); err != nil {
		return fmt.Errorf("config: %v", err)
	}
	if c.Timeouts.Play <= 0 || c.Timeouts.Trump <= 0 {
		return fmt.Errorf("config: timeouts must be positive")
	}
	return nil
}

// Rules builds the engine rules for a new room.
func (c *Config) Rules() (game.Rules, error) {
	rules := game.DefaultRules()
	var err error
	if rules.Deal, err = game.ParseDealMode(c.Game.DealMode); err != nil {
		return rules, err
	}
	if rules.Hakim, err = game.ParseHakimMode(c.Game.HakimMode); err != nil {
		return rules, err
	}
	if rules.Direction, err = game.ParseDirection(c.Game.Direction); err != nil {
		return rules, err
	}
	return rules, nil
}
