// The Licensed Work is (c) 2024 Crossmesh
// SPDX-License-Identifier: LGPL-3.0-only

package relayer

import (
	"fmt"
	"strconv"

	"github.com/rs/zerolog"
)

type RelayerConfig struct {
	OpenTelemetryCollectorURL string
	LogLevel                  zerolog.Level
	LogFile                   string
	Env                       string
	Id                        string
	HealthPort                uint16
	TransportPort             uint16
}

type RawRelayerConfig struct {
	OpenTelemetryCollectorURL string `mapstructure:"OpenTelemetryCollectorURL" json:"opentelemetryCollectorURL"`
	LogLevel                  string `mapstructure:"LogLevel" json:"logLevel" default:"info"`
	LogFile                   string `mapstructure:"LogFile" json:"logFile" default:"out.log"`
	Env                       string `mapstructure:"Env" json:"env"`
	Id                        string `mapstructure:"Id" json:"id"`
	HealthPort                string `mapstructure:"HealthPort" json:"healthPort" default:"9001"`
	TransportPort             string `mapstructure:"TransportPort" json:"transportPort" default:"9002"`
}

func (c *RawRelayerConfig) Validate() error {
	return nil
}

// NewRelayerConfig parses RawRelayerConfig into RelayerConfig
func NewRelayerConfig(rawConfig RawRelayerConfig) (RelayerConfig, error) {
	config := RelayerConfig{}
	err := rawConfig.Validate()
	if err != nil {
		return config, err
	}

	logLevel, err := zerolog.ParseLevel(rawConfig.LogLevel)
	if err != nil {
		return config, fmt.Errorf("unknown log level: %s", rawConfig.LogLevel)
	}
	config.LogLevel = logLevel
	config.LogFile = rawConfig.LogFile
	config.Env = rawConfig.Env
	config.Id = rawConfig.Id
	config.OpenTelemetryCollectorURL = rawConfig.OpenTelemetryCollectorURL

	healthPort, err := strconv.ParseUint(rawConfig.HealthPort, 10, 16)
	if err != nil {
		return config, fmt.Errorf("unable to parse health port: %w", err)
	}
	config.HealthPort = uint16(healthPort)

	transportPort, err := strconv.ParseUint(rawConfig.TransportPort, 10, 16)
	if err != nil {
		return config, fmt.Errorf("unable to parse transport port: %w", err)
	}
	config.TransportPort = uint16(transportPort)

	return config, nil
}
