/*
Copyright 2024-2025 the Unikorn Authors.
Copyright 2026 Nscale.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package api

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	settingsFileName = "appsettings"
	settingsFileType = "json"
)

type TestConfig struct {
	BaseURL         string        `mapstructure:"baseUrl"`
	RequestTimeout  time.Duration `mapstructure:"requestTimeout"`
	MaxResponseTime time.Duration `mapstructure:"maxResponseTime"`
	SkipIntegration bool          `mapstructure:"skipIntegration"`
	LogRequests     bool          `mapstructure:"logRequests"`
	LogResponses    bool          `mapstructure:"logResponses"`
}

// settingsSearchPaths are relative to the package under test, the suites
// live three levels below the repository root.
//
//nolint:gochecknoglobals
var settingsSearchPaths = []string{".", "..", "../..", "../../.."}

// environment maps configuration keys to the variables that override them.
//
//nolint:gochecknoglobals
var environment = map[string]string{
	"baseUrl":         "API_BASE_URL",
	"requestTimeout":  "REQUEST_TIMEOUT",
	"maxResponseTime": "MAX_RESPONSE_TIME",
	"skipIntegration": "SKIP_INTEGRATION",
	"logRequests":     "LOG_REQUESTS",
	"logResponses":    "LOG_RESPONSES",
}

//nolint:gochecknoglobals
var loadTestConfig = sync.OnceValues(func() (*TestConfig, error) {
	return ReadTestConfig(settingsSearchPaths...)
})

// LoadTestConfig returns the process wide configuration, reading it on first use.
func LoadTestConfig() (*TestConfig, error) {
	return loadTestConfig()
}

// ReadTestConfig reads appsettings.json from the first search path that has
// one, then applies any .env file and the process environment on top.
// CLIENT_SETTINGS_FILE names a settings file explicitly.
func ReadTestConfig(searchPaths ...string) (*TestConfig, error) {
	loadEnvFile(searchPaths)

	v := viper.New()
	v.SetConfigType(settingsFileType)

	v.SetDefault("requestTimeout", time.Duration(0))
	v.SetDefault("maxResponseTime", 500*time.Millisecond)
	v.SetDefault("skipIntegration", false)
	v.SetDefault("logRequests", false)
	v.SetDefault("logResponses", false)

	for key, env := range environment {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("%w: binding %s: %w", ErrConfiguration, env, err)
		}
	}

	if file := os.Getenv("CLIENT_SETTINGS_FILE"); file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName(settingsFileName)

		for _, path := range searchPaths {
			v.AddConfigPath(path)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		// A missing settings file is fine as long as the environment fills the gap.
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("%w: reading settings: %w", ErrConfiguration, err)
		}
	}

	if err := checkDurations(v); err != nil {
		return nil, err
	}

	config := &TestConfig{}

	if err := v.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("%w: decoding settings: %w", ErrConfiguration, err)
	}

	if err := validateRequiredFields(config); err != nil {
		return nil, err
	}

	return config, nil
}

// checkDurations rejects durations given as bare numbers, which would
// otherwise decode as nanoseconds.
func checkDurations(v *viper.Viper) error {
	for _, key := range []string{"requestTimeout", "maxResponseTime"} {
		switch value := v.Get(key).(type) {
		case string, time.Duration:
		default:
			return fmt.Errorf("%w: %s must be a duration string such as \"500ms\", got %v", ErrConfiguration, key, value)
		}
	}

	return nil
}

func loadEnvFile(searchPaths []string) {
	for _, path := range searchPaths {
		envPath := filepath.Join(path, ".env")

		if _, err := os.Stat(envPath); err != nil {
			continue
		}

		// Variables already in the environment take precedence over the file.
		if err := godotenv.Load(envPath); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to load .env file from %s: %v\n", envPath, err)
		}

		return
	}
}

// validateRequiredFields checks the base URL is present and usable.
func validateRequiredFields(config *TestConfig) error {
	if config.BaseURL == "" {
		return fmt.Errorf("%w: missing required configuration: baseUrl. Please set it in %s.%s, set API_BASE_URL or add it to a .env file", ErrConfiguration, settingsFileName, settingsFileType)
	}

	u, err := url.Parse(config.BaseURL)
	if err != nil {
		return fmt.Errorf("%w: invalid baseUrl %q: %w", ErrConfiguration, config.BaseURL, err)
	}

	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: invalid baseUrl %q: expected an absolute http(s) URL", ErrConfiguration, config.BaseURL)
	}

	if config.MaxResponseTime <= 0 {
		return fmt.Errorf("%w: maxResponseTime must be positive, got %s", ErrConfiguration, config.MaxResponseTime)
	}

	return nil
}
