package config

import "fmt"

// ServerConfig holds the listen addresses for both transports. The gRPC
// listener only carries the health service.
type ServerConfig struct {
	HTTP HTTPConfig `yaml:"http"`
	GRPC GRPCConfig `yaml:"grpc"`
}

type HTTPConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

type GRPCConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

func (c HTTPConfig) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

func (c GRPCConfig) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
