// Package backend loads the boardd server configuration.
//
// Values come from a YAML file; any of them can be overridden from the
// environment (BOARDD_*), which is how deployments inject the signing
// secret without writing it to disk.
package backend

import (
	"fmt"
	"os"
	"reflect"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Duration is time.Duration readable from YAML and env as "24h", "30m", ...
type Duration time.Duration

func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	parsed, err := time.ParseDuration(node.Value)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", node.Value, err)
	}
	*d = Duration(parsed)
	return nil
}

func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

type BackendConfig struct {
	DBURI       string   `yaml:"dbURI" env:"BOARDD_DB_URI"`
	ServerPort  string   `yaml:"serverPort" env:"BOARDD_PORT"`
	JWTSecret   string   `yaml:"jwtSecret" env:"BOARDD_JWT_SECRET"`
	TokenExpiry Duration `yaml:"tokenExpiry" env:"BOARDD_TOKEN_EXPIRY"`
	BcryptCost  int      `yaml:"bcryptCost" env:"BOARDD_BCRYPT_COST"`
}

func LoadBackendConfig(filepath string) (*BackendConfig, error) {
	content, err := os.ReadFile(filepath)
	if err != nil {
		return nil, err
	}
	conf, err := Unmarshal(content)
	if err != nil {
		return nil, err
	}
	if err := parseEnv(conf); err != nil {
		return nil, err
	}
	return conf, nil
}

func Unmarshal(conf []byte) (*BackendConfig, error) {
	out := BackendConfig{
		ServerPort:  "8080",
		TokenExpiry: Duration(24 * time.Hour),
		BcryptCost:  10,
	}
	if err := yaml.Unmarshal(conf, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func parseEnv(conf *BackendConfig) error {
	err := env.ParseWithOptions(conf, env.Options{
		FuncMap: map[reflect.Type]env.ParserFunc{
			reflect.TypeOf(Duration(0)): func(v string) (interface{}, error) {
				parsed, err := time.ParseDuration(v)
				if err != nil {
					return nil, err
				}
				return Duration(parsed), nil
			},
		},
	})
	if err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
