package storage_test

import (
	"testing"

	"bucket-manager/core/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	t.Run("ValidConfig", func(t *testing.T) {
		cfg := storage.Config{
			Endpoint:  "localhost",
			Port:      9000,
			AccessKey: "testkey",
			SecretKey: "testsecret",
			UseSSL:    false,
			Bucket:    "test-bucket",
			Region:    "us-east-1",
		}

		client, err := storage.NewClient(cfg)
		require.NoError(t, err)
		assert.Equal(t, "localhost:9000", client.EndpointURL().Host)
		assert.Equal(t, "http", client.EndpointURL().Scheme)
	})

	t.Run("EndpointWithHTTP", func(t *testing.T) {
		cfg := storage.Config{
			Endpoint:  "http://localhost:9000",
			AccessKey: "testkey",
			SecretKey: "testsecret",
		}

		client, err := storage.NewClient(cfg)
		require.NoError(t, err)
		assert.Equal(t, "localhost:9000", client.EndpointURL().Host)
	})

	t.Run("EndpointWithHTTPS", func(t *testing.T) {
		cfg := storage.Config{
			Endpoint:  "https://s3.amazonaws.com",
			AccessKey: "testkey",
			SecretKey: "testsecret",
			UseSSL:    true,
			Region:    "us-east-1",
		}

		client, err := storage.NewClient(cfg)
		require.NoError(t, err)
		assert.Equal(t, "https", client.EndpointURL().Scheme)
		assert.Equal(t, "s3.amazonaws.com", client.EndpointURL().Host)
	})

	t.Run("PortOverridesEndpointPort", func(t *testing.T) {
		cfg := storage.Config{
			Endpoint:  "localhost:9000",
			Port:      9100,
			AccessKey: "testkey",
			SecretKey: "testsecret",
		}

		client, err := storage.NewClient(cfg)
		require.NoError(t, err)
		assert.Equal(t, "localhost:9100", client.EndpointURL().Host)
	})

	t.Run("Anonymous", func(t *testing.T) {
		client, err := storage.NewClient(storage.Config{Endpoint: "localhost", Port: 9000})
		require.NoError(t, err)
		assert.NotNil(t, client)
	})

	t.Run("InvalidPort", func(t *testing.T) {
		for _, port := range []int{-1, 65536, 100000} {
			client, err := storage.NewClient(storage.Config{Endpoint: "localhost", Port: port})
			assert.ErrorIs(t, err, storage.ErrInvalidPort)
			assert.Nil(t, client)
		}
	})

	t.Run("HalfCredentials", func(t *testing.T) {
		client, err := storage.NewClient(storage.Config{Endpoint: "localhost", AccessKey: "only-access"})
		assert.ErrorIs(t, err, storage.ErrInvalidCredentials)
		assert.Nil(t, client)
	})
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     storage.Config
		wantErr error
	}{
		{"Valid", storage.Config{Endpoint: "localhost", Port: 9000, AccessKey: "a", SecretKey: "b"}, nil},
		{"ZeroPort", storage.Config{Endpoint: "localhost", Port: 0}, nil},
		{"MaxPort", storage.Config{Endpoint: "localhost", Port: storage.MaxPort}, nil},
		{"MissingEndpoint", storage.Config{Port: 9000}, storage.ErrMissingEndpoint},
		{"NegativePort", storage.Config{Endpoint: "localhost", Port: -5}, storage.ErrInvalidPort},
		{"SecretWithoutAccess", storage.Config{Endpoint: "localhost", SecretKey: "b"}, storage.ErrInvalidCredentials},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
