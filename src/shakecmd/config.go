package shakecmd

import (
	"encoding/base64"
	"encoding/hex"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"go.keccak.dev/shake/src/shake"
)

const (
	EncodingHex    = "hex"
	EncodingBase64 = "base64"
)

// Config holds defaults for the sum command. Flags override it.
type Config struct {
	Variant  int    `yaml:"variant"`
	Length   int    `yaml:"length"`
	Encoding string `yaml:"encoding"`
}

func DefaultConfig() Config {
	return Config{
		Variant:  int(shake.SHAKE256),
		Length:   32,
		Encoding: EncodingHex,
	}
}

func (c *Config) Validate() error {
	if shake.Variant(c.Variant).Rate() == 0 {
		return shake.ErrInvalidVariant{Bits: c.Variant}
	}
	if c.Length < 0 {
		return shake.ErrInvalidLength{Len: c.Length}
	}
	if _, err := encoder(c.Encoding); err != nil {
		return err
	}
	return nil
}

func LoadConfig(p string) (*Config, error) {
	data, err := os.ReadFile(p)
	if err != nil {
		return nil, err
	}
	c := DefaultConfig()
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, errors.Wrapf(err, "parsing config %s", p)
	}
	if err := c.Validate(); err != nil {
		return nil, errors.Wrapf(err, "invalid config %s", p)
	}
	return &c, nil
}

func SaveConfig(p string, c Config) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(p, data, 0644)
}

func encoder(name string) (func([]byte) string, error) {
	switch name {
	case EncodingHex:
		return hex.EncodeToString, nil
	case EncodingBase64:
		return base64.StdEncoding.EncodeToString, nil
	default:
		return nil, errors.Errorf("unknown encoding %q", name)
	}
}
