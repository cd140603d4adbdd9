package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestServerConfig_Addresses(t *testing.T) {
	cfg := ServerConfig{
		HTTP: HTTPConfig{Host: "0.0.0.0", Port: 8080},
		GRPC: GRPCConfig{Host: "127.0.0.1", Port: 9090},
	}

	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Address())
	assert.Equal(t, "127.0.0.1:9090", cfg.GRPC.Address())
}
