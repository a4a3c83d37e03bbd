package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/siags/siagsctl/cmd/siagsctl/internal/client"
	"github.com/siags/siagsctl/pkg/sdk"
)

type contextKey string

const configKey contextKey = "siagsctl-config"

// GlobalConfig holds shared configuration for all siagsctl commands. It is
// injected into the cobra command context by the root command's
// PersistentPreRun hook and consumed by all subcommands.
type GlobalConfig struct {
	ServerURL      string
	NonInteractive bool
	Provider       *client.Provider
}

// InjectConfig adds config to the cobra command context.
func InjectConfig(ctx context.Context, cfg *GlobalConfig) context.Context {
	return context.WithValue(ctx, configKey, cfg)
}

// FromContext retrieves config from the cobra command context.
// Returns (nil, false) if config is not present.
func FromContext(ctx context.Context) (*GlobalConfig, bool) {
	cfg, ok := ctx.Value(configKey).(*GlobalConfig)
	return cfg, ok
}

// MustFromContext retrieves config from context or panics. Only for use in
// RunE functions, where the root command has already injected it.
func MustFromContext(ctx context.Context) *GlobalConfig {
	cfg, ok := FromContext(ctx)
	if !ok {
		panic("siagsctl: config not found in context - this is a bug in siagsctl")
	}
	return cfg
}

// RequireAccess gates a command the way the web client gated protected
// routes: deny-to-login becomes a "please log in" error, deny-to-home a
// permission error. With an ephemeral bearer token the local session is
// bypassed and enforcement is left to the server.
func (cfg *GlobalConfig) RequireAccess(roles, permissions []string) error {
	if cfg.Provider.HasBearerToken() {
		return nil
	}
	creds, err := cfg.Provider.Credentials()
	if err != nil {
		return err
	}
	switch sdk.Authorize(creds, roles, permissions) {
	case sdk.DenyToLogin:
		return errors.New("not logged in; run `siagsctl auth login`")
	case sdk.DenyToHome:
		needed := append(append([]string{}, roles...), permissions...)
		return fmt.Errorf("permission denied: requires %s", strings.Join(needed, " or "))
	}
	return nil
}

// FileConfig is the optional ~/.siags/config.yaml.
type FileConfig struct {
	Server string `yaml:"server"`
}

// LoadFile reads the config file from the user's home directory.
// Returns (nil, nil) when the file does not exist.
func LoadFile() (*FileConfig, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get user home directory: %w", err)
	}
	return loadFileFrom(filepath.Join(home, ".siags", "config.yaml"))
}

func loadFileFrom(path string) (*FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	var cfg FileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return &cfg, nil
}
