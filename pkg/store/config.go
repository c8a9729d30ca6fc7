package store

import (
	"fmt"
	"os"
	"time"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"

	"tableflip.dev/dayboard/pkg/timeutil"
)

// Config supplies the persistence location and the notification lead.
type Config interface {
	BasePath() string
	NotificationLead() time.Duration
}

// LoadConfig reads configuration from a .dayboard file (current directory or
// DAYBOARD_CONFIG_PATH) and DAYBOARD_* environment variables.
func LoadConfig() (Config, error) {
	viper.SetDefault("path", "~/.dayboard.db")
	viper.SetDefault("lead", "30m")
	viper.SetConfigName(".dayboard") // .yaml is implicit
	viper.SetEnvPrefix("DAYBOARD")
	viper.AutomaticEnv()

	if override := os.Getenv("DAYBOARD_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}
	viper.AddConfigPath("./")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("store: read config file: %w", err)
		}
	}

	path, err := homedir.Expand(viper.GetString("path"))
	if err != nil {
		return nil, fmt.Errorf("store: expand path: %w", err)
	}

	lead, err := timeutil.ParseLead(viper.GetString("lead"))
	if err != nil {
		return nil, fmt.Errorf("store: parse notification lead: %w", err)
	}

	return &fileConfig{Path: path, Lead: lead}, nil
}

type fileConfig struct {
	Path string        `json:"path"`
	Lead time.Duration `json:"lead"`
}

func (f *fileConfig) BasePath() string {
	return f.Path
}

func (f *fileConfig) NotificationLead() time.Duration {
	return f.Lead
}
