package objectstore

import (
	"context"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestService_PresignedGetURL(t *testing.T) {
	ctx := context.Background()

	for _, expiry := range []int{0, -5, MaxExpirySeconds + 1} {
		svc, mockClient, _ := newTestService()

		_, err := svc.PresignedGetURL(ctx, "assets", "a", expiry)
		assert.ErrorIs(t, err, ErrExpiryOutOfRange, "expiry %d", expiry)
		mockClient.AssertNotCalled(t, "BucketExists", mock.Anything, mock.Anything)
		mockClient.AssertNotCalled(t, "PresignedGetObject", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	}

	t.Run("Bounds", func(t *testing.T) {
		for _, expiry := range []int{1, MaxExpirySeconds} {
			svc, mockClient, _ := newTestService()
			signed, _ := url.Parse("http://localhost:9000/assets/a?X-Amz-Signature=abc")

			mockClient.On("BucketExists", mock.Anything, "assets").Return(true, nil)
			mockClient.On("PresignedGetObject", mock.Anything, "assets", "a", time.Duration(expiry)*time.Second, url.Values(nil)).
				Return(signed, nil)

			u, err := svc.PresignedGetURL(ctx, "assets", "a", expiry)
			require.NoError(t, err)
			assert.Equal(t, signed.String(), u)
		}
	})

	t.Run("MissingBucket", func(t *testing.T) {
		svc, mockClient, _ := newTestService()
		mockClient.On("BucketExists", mock.Anything, "ghost").Return(false, nil)

		_, err := svc.PresignedGetURL(ctx, "ghost", "a", 60)
		assert.ErrorIs(t, err, ErrBucketNotFound)
	})
}

func TestService_PresignedPutURL(t *testing.T) {
	ctx := context.Background()

	invalid := []struct {
		name   string
		expiry int
		unit   time.Duration
	}{
		{"Zero", 0, time.Second},
		{"TooLong", MaxExpirySeconds + 1, time.Second},
		{"EightDays", 8, 24 * time.Hour},
		{"SubSecond", 500, time.Millisecond},
		{"NoUnit", 10, 0},
	}
	for _, tt := range invalid {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockClient, _ := newTestService()

			_, err := svc.PresignedPutURL(ctx, "assets", "a", tt.expiry, tt.unit)
			assert.ErrorIs(t, err, ErrExpiryOutOfRange)
			mockClient.AssertNotCalled(t, "PresignedPutObject", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		})
	}

	t.Run("Hours", func(t *testing.T) {
		svc, mockClient, _ := newTestService()
		signed, _ := url.Parse("http://localhost:9000/assets/a?X-Amz-Expires=7200")

		mockClient.On("BucketExists", mock.Anything, "assets").Return(true, nil)
		mockClient.On("PresignedPutObject", mock.Anything, "assets", "a", 2*time.Hour).Return(signed, nil)

		u, err := svc.PresignedPutURL(ctx, "assets", "a", 2, time.Hour)
		require.NoError(t, err)
		assert.Equal(t, signed.String(), u)
	})

	t.Run("SevenDays", func(t *testing.T) {
		svc, mockClient, _ := newTestService()
		signed, _ := url.Parse("http://localhost:9000/assets/a")

		mockClient.On("BucketExists", mock.Anything, "assets").Return(true, nil)
		mockClient.On("PresignedPutObject", mock.Anything, "assets", "a", MaxExpiry).Return(signed, nil)

		_, err := svc.PresignedPutURL(ctx, "assets", "a", 7, 24*time.Hour)
		assert.NoError(t, err)
	})
}

func TestExpiryConstants(t *testing.T) {
	// Query and flag parsing hand the default around as both int and int64.
	var fromQuery int64 = DefaultExpirySeconds
	var fromFlag int = DefaultExpirySeconds

	assert.Equal(t, MaxExpiry, time.Duration(fromQuery)*time.Second)
	assert.Equal(t, MaxExpiry, time.Duration(fromFlag)*time.Second)
}
