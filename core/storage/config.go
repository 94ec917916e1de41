package storage

import (
	"errors"
	"fmt"
)

// MaxPort is the highest valid TCP port.
const MaxPort = 65535

// Config holds configuration for the storage provider.
type Config struct {
	// Endpoint is the host of the storage service, with or without scheme.
	Endpoint string `mapstructure:"endpoint" default:"localhost"`
	// Port overrides the endpoint port when non-zero.
	Port int `mapstructure:"port" default:"9000"`
	// AccessKey is the access key ID for authentication.
	AccessKey string `mapstructure:"access_key" default:"minioadmin"`
	// SecretKey is the secret access key for authentication.
	SecretKey string `mapstructure:"secret_key" default:"minioadmin"`
	// UseSSL indicates whether to use SSL/TLS for connections.
	UseSSL bool `mapstructure:"use_ssl" default:"false"`
	// Bucket is the default bucket name.
	Bucket string `mapstructure:"bucket" default:"default"`
	// Region is the location of the bucket (e.g., us-east-1).
	Region string `mapstructure:"region" default:""`
	// TimeoutSeconds is the connection timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}

var (
	// ErrInvalidPort is returned when the port is outside 0-65535.
	ErrInvalidPort = errors.New("invalid port")
	// ErrInvalidCredentials is returned when only one half of the key pair is set.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrMissingEndpoint is returned when no endpoint is configured.
	ErrMissingEndpoint = errors.New("missing endpoint")
)

// Validate checks the settings that must be correct before a client can be built.
func (c Config) Validate() error {
	if c.Endpoint == "" {
		return ErrMissingEndpoint
	}
	if c.Port < 0 || c.Port > MaxPort {
		return fmt.Errorf("%w: %d is outside 0-%d", ErrInvalidPort, c.Port, MaxPort)
	}
	if (c.AccessKey == "") != (c.SecretKey == "") {
		return fmt.Errorf("%w: access key and secret key must be set together", ErrInvalidCredentials)
	}
	return nil
}
