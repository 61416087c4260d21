package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dimfu/polyclack/rhythm"
	"github.com/pkg/errors"
)

type Config struct {
	Key     string   `json:"key"`
	Tempo   int64    `json:"tempo"`
	Timesig []string `json:"timesig"`
}

func NewConfig(key string, session Session) Config {
	cfg := Config{Key: key, Tempo: session.Tempo}
	for _, sig := range session.Signatures {
		cfg.Timesig = append(cfg.Timesig, sig.String())
	}
	return cfg
}

func (c Config) Session() (Session, error) {
	if !ValidTempo(c.Tempo) {
		return Session{}, errors.Wrapf(rhythm.ErrInvalidArgument, "preset `%v` has invalid tempo %d", c.Key, c.Tempo)
	}
	if len(c.Timesig) == 0 {
		return Session{}, errors.Wrapf(rhythm.ErrInvalidArgument, "preset `%v` has no time signatures", c.Key)
	}

	session := Session{Tempo: c.Tempo}
	for _, s := range c.Timesig {
		sig, err := rhythm.ParseSignature(s)
		if err != nil {
			return Session{}, errors.Wrapf(err, "preset `%v`", c.Key)
		}
		session.Signatures = append(session.Signatures, sig)
	}
	return session, nil
}

type ConfigManager struct {
	Config     []Config
	ConfigPath string
}

// DefaultConfigPath is ~/.polyclack.json.
func DefaultConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(err, "locating home directory")
	}
	return filepath.Join(home, CONFIG_FILE), nil
}

func NewConfigManager(path string) (*ConfigManager, error) {
	cm := &ConfigManager{
		ConfigPath: path,
		Config:     []Config{},
	}
	if err := cm.LoadConfig(); err != nil {
		return nil, err
	}
	return cm, nil
}

func (cm *ConfigManager) LoadConfig() error {
	data, err := os.ReadFile(cm.ConfigPath)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return errors.Wrapf(err, "reading %s", cm.ConfigPath)
	}
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, &cm.Config); err != nil {
		return errors.Wrapf(err, "decoding %s", cm.ConfigPath)
	}
	return nil
}

func (cm *ConfigManager) GetConfigByKey(key string) *Config {
	for i := range cm.Config {
		if cm.Config[i].Key == key {
			return &cm.Config[i]
		}
	}
	return nil
}

func (cm *ConfigManager) WriteConfig() error {
	newConf, err := json.MarshalIndent(cm.Config, "", "  ")
	if err != nil {
		return err
	}

	if err := os.WriteFile(cm.ConfigPath, newConf, 0644); err != nil {
		return errors.Wrapf(err, "writing %s", cm.ConfigPath)
	}
	return nil
}

func CreateConf(path string, cfg Config) error {
	cm, err := NewConfigManager(path)
	if err != nil {
		return err
	}

	if c := cm.GetConfigByKey(cfg.Key); c != nil {
		return fmt.Errorf("`%v` config already exists", cfg.Key)
	}

	cm.Config = append(cm.Config, cfg)
	return cm.WriteConfig()
}

func DeleteConfig(path, key string) error {
	cm, err := NewConfigManager(path)
	if err != nil {
		return err
	}

	for i, config := range cm.Config {
		if config.Key == key {
			cm.Config = append(cm.Config[:i], cm.Config[i+1:]...)
			return cm.WriteConfig()
		}
	}
	return fmt.Errorf("`%v` config not found", key)
}

func LoadPreset(path, key string) (Session, error) {
	cm, err := NewConfigManager(path)
	if err != nil {
		return Session{}, err
	}

	c := cm.GetConfigByKey(key)
	if c == nil {
		return Session{}, fmt.Errorf("`%v` config not found", key)
	}
	return c.Session()
}
