package objectstore

import (
	"bytes"
	"context"
	"errors"
	"io"
	"math"
	"net/url"
	"testing"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var errNoSuchKey = minio.ErrorResponse{Code: "NoSuchKey", StatusCode: 404, Message: "The specified key does not exist."}

func TestService_UploadDownloadRoundTrip(t *testing.T) {
	svc, mockClient, journal := newTestService()
	ctx := context.Background()

	payload := bytes.Repeat([]byte("0123456789abcdef"), 4096+3)
	var stored []byte

	mockClient.On("BucketExists", mock.Anything, "assets").Return(true, nil)
	mockClient.On("PutObject", mock.Anything, "assets", "blob.bin", mock.Anything, int64(-1),
		mock.MatchedBy(func(opts minio.PutObjectOptions) bool {
			return opts.PartSize == StreamPartSize && opts.ContentType == "application/x-test"
		})).
		Run(func(args mock.Arguments) {
			data, err := io.ReadAll(args.Get(3).(io.Reader))
			require.NoError(t, err)
			stored = data
		}).
		Return(minio.UploadInfo{Size: int64(len(payload))}, nil)
	mockClient.On("StatObject", mock.Anything, "assets", "blob.bin", mock.Anything).
		Return(minio.ObjectInfo{Key: "blob.bin", Size: int64(len(payload))}, nil)

	ok, err := svc.UploadStream(ctx, "assets", "blob.bin", bytes.NewReader(payload), "application/x-test")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []journalEntry{{op: OpUploadStream, bucket: "assets", object: "blob.bin"}}, journal.entries)

	mockClient.On("GetObject", mock.Anything, "assets", "blob.bin", mock.Anything).
		Return(io.NopCloser(bytes.NewReader(stored)), nil)

	reader, err := svc.Download(ctx, "assets", "blob.bin")
	require.NoError(t, err)
	defer reader.Close()

	got, err := io.ReadAll(reader)
	require.NoError(t, err)
	assert.Equal(t, payload, got)
}

func TestService_UploadStream_Guards(t *testing.T) {
	ctx := context.Background()

	t.Run("MissingBucket", func(t *testing.T) {
		svc, mockClient, journal := newTestService()
		mockClient.On("BucketExists", mock.Anything, "ghost").Return(false, nil)

		ok, err := svc.UploadStream(ctx, "ghost", "a", bytes.NewReader([]byte("x")), "")
		assert.NoError(t, err)
		assert.False(t, ok)
		assert.Empty(t, journal.entries)
		mockClient.AssertNotCalled(t, "PutObject", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("EmptyResult", func(t *testing.T) {
		svc, mockClient, _ := newTestService()
		mockClient.On("BucketExists", mock.Anything, "assets").Return(true, nil)
		mockClient.On("PutObject", mock.Anything, "assets", "empty", mock.Anything, int64(-1), mock.Anything).
			Return(minio.UploadInfo{}, nil)
		mockClient.On("StatObject", mock.Anything, "assets", "empty", mock.Anything).
			Return(minio.ObjectInfo{Key: "empty", Size: 0}, nil)

		ok, err := svc.UploadStream(ctx, "assets", "empty", bytes.NewReader(nil), "")
		assert.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("RemoteFailure", func(t *testing.T) {
		svc, mockClient, journal := newTestService()
		mockClient.On("BucketExists", mock.Anything, "assets").Return(true, nil)
		mockClient.On("PutObject", mock.Anything, "assets", "a", mock.Anything, int64(-1), mock.Anything).
			Return(minio.UploadInfo{}, minio.ErrorResponse{Code: "AccessDenied", StatusCode: 403})

		ok, err := svc.UploadStream(ctx, "assets", "a", bytes.NewReader([]byte("x")), "")
		assert.Error(t, err)
		assert.False(t, ok)
		assert.Equal(t, KindAuth, Classify(err))
		require.Len(t, journal.entries, 1)
		assert.True(t, journal.entries[0].failed)
	})
}

func TestService_UploadFile(t *testing.T) {
	svc, mockClient, journal := newTestService()

	mockClient.On("BucketExists", mock.Anything, "assets").Return(true, nil)
	mockClient.On("FPutObject", mock.Anything, "assets", "docs/readme.md", "/tmp/readme.md", mock.Anything).
		Return(minio.UploadInfo{Size: 42}, nil)
	mockClient.On("StatObject", mock.Anything, "assets", "docs/readme.md", mock.Anything).
		Return(minio.ObjectInfo{Key: "docs/readme.md", Size: 42}, nil)

	ok, err := svc.UploadFile(context.Background(), "assets", "docs/readme.md", "/tmp/readme.md")
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, OpUploadFile, journal.entries[0].op)
}

func TestService_ListObjectNames(t *testing.T) {
	ctx := context.Background()

	t.Run("AfterUploads", func(t *testing.T) {
		svc, mockClient, _ := newTestService()
		mockClient.On("BucketExists", mock.Anything, "assets").Return(true, nil)
		mockClient.On("ListObjects", mock.Anything, "assets", minio.ListObjectsOptions{Recursive: true}).
			Return(objectsChan(
				minio.ObjectInfo{Key: "c", Size: 1},
				minio.ObjectInfo{Key: "a", Size: 1},
				minio.ObjectInfo{Key: "b", Size: 1},
			))

		names, err := svc.ListObjectNames(ctx, "assets")
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"a", "b", "c"}, names)
	})

	t.Run("MissingBucket", func(t *testing.T) {
		svc, mockClient, _ := newTestService()
		mockClient.On("BucketExists", mock.Anything, "ghost").Return(false, nil)

		names, err := svc.ListObjectNames(ctx, "ghost")
		require.NoError(t, err)
		assert.NotNil(t, names)
		assert.Empty(t, names)
	})

	t.Run("ListingError", func(t *testing.T) {
		svc, mockClient, _ := newTestService()
		mockClient.On("BucketExists", mock.Anything, "assets").Return(true, nil)
		mockClient.On("ListObjects", mock.Anything, "assets", mock.Anything).
			Return(objectsChan(minio.ObjectInfo{Key: "a"}, minio.ObjectInfo{Err: errors.New("reset by peer")}))

		names, err := svc.ListObjectNames(ctx, "assets")
		assert.Error(t, err)
		assert.Nil(t, names)
	})
}

func TestService_Download_Guards(t *testing.T) {
	ctx := context.Background()

	t.Run("MissingBucket", func(t *testing.T) {
		svc, mockClient, _ := newTestService()
		mockClient.On("BucketExists", mock.Anything, "ghost").Return(false, nil)

		_, err := svc.Download(ctx, "ghost", "a")
		assert.ErrorIs(t, err, ErrBucketNotFound)
	})

	t.Run("MissingObject", func(t *testing.T) {
		svc, mockClient, _ := newTestService()
		mockClient.On("BucketExists", mock.Anything, "assets").Return(true, nil)
		mockClient.On("StatObject", mock.Anything, "assets", "a", mock.Anything).
			Return(minio.ObjectInfo{}, errNoSuchKey)

		_, err := svc.Download(ctx, "assets", "a")
		assert.ErrorIs(t, err, ErrObjectNotFound)
		assert.Equal(t, KindNotFound, Classify(err))
	})

	t.Run("EmptyObject", func(t *testing.T) {
		svc, mockClient, _ := newTestService()
		mockClient.On("BucketExists", mock.Anything, "assets").Return(true, nil)
		mockClient.On("StatObject", mock.Anything, "assets", "a", mock.Anything).
			Return(minio.ObjectInfo{Key: "a", Size: 0}, nil)

		_, err := svc.Download(ctx, "assets", "a")
		assert.ErrorIs(t, err, ErrEmptyObject)
		mockClient.AssertNotCalled(t, "GetObject", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestService_DownloadRange(t *testing.T) {
	ctx := context.Background()
	int64p := func(v int64) *int64 { return &v }
	rangeHeader := func(want string) interface{} {
		return mock.MatchedBy(func(opts minio.GetObjectOptions) bool {
			return opts.Header().Get("Range") == want
		})
	}

	tests := []struct {
		name   string
		offset int64
		length *int64
		want   string
	}{
		{"OffsetAndLength", 2, int64p(3), "bytes=2-4"},
		{"OffsetOnly", 4, nil, "bytes=4-"},
		{"WholeObject", 0, nil, ""},
		{"LengthPastEnd", 2, int64p(100), "bytes=2-9"},
		{"MaxLength", 2, int64p(math.MaxInt64), "bytes=2-9"},
		{"ExactTail", 7, int64p(3), "bytes=7-9"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockClient, _ := newTestService()
			mockClient.On("BucketExists", mock.Anything, "assets").Return(true, nil)
			mockClient.On("StatObject", mock.Anything, "assets", "a", mock.Anything).
				Return(minio.ObjectInfo{Key: "a", Size: 10}, nil)
			mockClient.On("GetObject", mock.Anything, "assets", "a", rangeHeader(tt.want)).
				Return(io.NopCloser(bytes.NewReader([]byte("xyz"))), nil)

			reader, err := svc.DownloadRange(ctx, "assets", "a", tt.offset, tt.length)
			require.NoError(t, err)
			reader.Close()
			mockClient.AssertExpectations(t)
		})
	}

	t.Run("NegativeOffset", func(t *testing.T) {
		svc, mockClient, _ := newTestService()

		_, err := svc.DownloadRange(ctx, "assets", "a", -1, nil)
		assert.ErrorIs(t, err, ErrInvalidRange)
		mockClient.AssertNotCalled(t, "BucketExists", mock.Anything, mock.Anything)
	})

	t.Run("ZeroLength", func(t *testing.T) {
		svc, _, _ := newTestService()

		_, err := svc.DownloadRange(ctx, "assets", "a", 0, int64p(0))
		assert.ErrorIs(t, err, ErrInvalidRange)
	})

	t.Run("OffsetPastEnd", func(t *testing.T) {
		svc, mockClient, _ := newTestService()
		mockClient.On("BucketExists", mock.Anything, "assets").Return(true, nil)
		mockClient.On("StatObject", mock.Anything, "assets", "a", mock.Anything).
			Return(minio.ObjectInfo{Key: "a", Size: 10}, nil)

		_, err := svc.DownloadRange(ctx, "assets", "a", 10, nil)
		assert.ErrorIs(t, err, ErrInvalidRange)
	})
}

func TestService_DownloadFile(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		svc, mockClient, _ := newTestService()
		mockClient.On("BucketExists", mock.Anything, "assets").Return(true, nil)
		mockClient.On("StatObject", mock.Anything, "assets", "a", mock.Anything).
			Return(minio.ObjectInfo{Key: "a", Size: 3}, nil)
		mockClient.On("FGetObject", mock.Anything, "assets", "a", "/tmp/a", mock.Anything).Return(nil)

		ok, err := svc.DownloadFile(ctx, "assets", "a", "/tmp/a")
		assert.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("MissingObject", func(t *testing.T) {
		svc, mockClient, _ := newTestService()
		mockClient.On("BucketExists", mock.Anything, "assets").Return(true, nil)
		mockClient.On("StatObject", mock.Anything, "assets", "a", mock.Anything).
			Return(minio.ObjectInfo{}, errNoSuchKey)

		ok, err := svc.DownloadFile(ctx, "assets", "a", "/tmp/a")
		assert.NoError(t, err)
		assert.False(t, ok)
		mockClient.AssertNotCalled(t, "FGetObject", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("StatFails", func(t *testing.T) {
		svc, mockClient, _ := newTestService()
		mockClient.On("BucketExists", mock.Anything, "assets").Return(true, nil)
		mockClient.On("StatObject", mock.Anything, "assets", "a", mock.Anything).
			Return(minio.ObjectInfo{}, minio.ErrorResponse{Code: "AccessDenied", StatusCode: 403})

		ok, err := svc.DownloadFile(ctx, "assets", "a", "/tmp/a")
		assert.Error(t, err)
		assert.False(t, ok)
	})
}

func TestService_RemoveObject(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		svc, mockClient, journal := newTestService()
		mockClient.On("BucketExists", mock.Anything, "assets").Return(true, nil)
		mockClient.On("RemoveObject", mock.Anything, "assets", "a", mock.Anything).Return(nil)

		ok, err := svc.RemoveObject(ctx, "assets", "a")
		assert.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, []journalEntry{{op: OpRemoveObject, bucket: "assets", object: "a"}}, journal.entries)
	})

	t.Run("MissingBucket", func(t *testing.T) {
		svc, mockClient, _ := newTestService()
		mockClient.On("BucketExists", mock.Anything, "ghost").Return(false, nil)

		ok, err := svc.RemoveObject(ctx, "ghost", "a")
		assert.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestService_RemoveObjects(t *testing.T) {
	ctx := context.Background()

	t.Run("MissingKeyReported", func(t *testing.T) {
		svc, mockClient, journal := newTestService()
		var deleted []string

		mockClient.On("BucketExists", mock.Anything, "assets").Return(true, nil)
		mockClient.On("StatObject", mock.Anything, "assets", "a", mock.Anything).Return(minio.ObjectInfo{Key: "a", Size: 1}, nil)
		mockClient.On("StatObject", mock.Anything, "assets", "missing", mock.Anything).Return(minio.ObjectInfo{}, errNoSuchKey)
		mockClient.On("StatObject", mock.Anything, "assets", "c", mock.Anything).Return(minio.ObjectInfo{Key: "c", Size: 1}, nil)

		errCh := make(chan minio.RemoveObjectError)
		close(errCh)
		mockClient.On("RemoveObjects", mock.Anything, "assets", mock.Anything, mock.Anything).
			Run(func(args mock.Arguments) {
				for obj := range args.Get(2).(<-chan minio.ObjectInfo) {
					deleted = append(deleted, obj.Key)
				}
			}).
			Return((<-chan minio.RemoveObjectError)(errCh))

		failed, err := svc.RemoveObjects(ctx, "assets", []string{"a", "missing", "c"})
		require.NoError(t, err)
		assert.Equal(t, []string{"missing"}, failed)
		assert.Equal(t, []string{"a", "c"}, deleted)
		assert.Len(t, journal.entries, 2)
	})

	t.Run("RejectedByServer", func(t *testing.T) {
		svc, mockClient, journal := newTestService()

		mockClient.On("BucketExists", mock.Anything, "assets").Return(true, nil)
		mockClient.On("StatObject", mock.Anything, "assets", mock.Anything, mock.Anything).Return(minio.ObjectInfo{Size: 1}, nil)

		errCh := make(chan minio.RemoveObjectError, 1)
		errCh <- minio.RemoveObjectError{ObjectName: "b", Err: errors.New("access denied")}
		close(errCh)
		mockClient.On("RemoveObjects", mock.Anything, "assets", mock.Anything, mock.Anything).
			Return((<-chan minio.RemoveObjectError)(errCh))

		failed, err := svc.RemoveObjects(ctx, "assets", []string{"a", "b"})
		require.NoError(t, err)
		assert.Equal(t, []string{"b"}, failed)
		require.Len(t, journal.entries, 2)
		assert.False(t, journal.entries[0].failed)
		assert.True(t, journal.entries[1].failed)
	})

	t.Run("AllMissing", func(t *testing.T) {
		svc, mockClient, _ := newTestService()
		mockClient.On("BucketExists", mock.Anything, "assets").Return(true, nil)
		mockClient.On("StatObject", mock.Anything, "assets", mock.Anything, mock.Anything).Return(minio.ObjectInfo{}, errNoSuchKey)

		failed, err := svc.RemoveObjects(ctx, "assets", []string{"x", "y"})
		require.NoError(t, err)
		assert.Equal(t, []string{"x", "y"}, failed)
		mockClient.AssertNotCalled(t, "RemoveObjects", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("MissingBucket", func(t *testing.T) {
		svc, mockClient, _ := newTestService()
		mockClient.On("BucketExists", mock.Anything, "ghost").Return(false, nil)

		keys := []string{"a", "b"}
		failed, err := svc.RemoveObjects(ctx, "ghost", keys)
		require.NoError(t, err)
		assert.Equal(t, keys, failed)
	})
}

func TestService_StatObject(t *testing.T) {
	ctx := context.Background()

	t.Run("Found", func(t *testing.T) {
		svc, mockClient, _ := newTestService()
		mockClient.On("BucketExists", mock.Anything, "assets").Return(true, nil)
		mockClient.On("StatObject", mock.Anything, "assets", "a", mock.Anything).
			Return(minio.ObjectInfo{Key: "a", Size: 7, ContentType: "text/plain"}, nil)

		info, err := svc.StatObject(ctx, "assets", "a")
		require.NoError(t, err)
		assert.Equal(t, int64(7), info.Size)
		assert.Equal(t, "text/plain", info.ContentType)
	})

	t.Run("MissingBucket", func(t *testing.T) {
		svc, mockClient, _ := newTestService()
		mockClient.On("BucketExists", mock.Anything, "ghost").Return(false, nil)

		_, err := svc.StatObject(ctx, "ghost", "a")
		assert.ErrorIs(t, err, ErrBucketNotFound)
	})
}

func TestService_ObjectURL(t *testing.T) {
	svc, mockClient, _ := newTestService()
	endpoint, _ := url.Parse("http://localhost:9000")

	mockClient.On("BucketExists", mock.Anything, "assets").Return(true, nil)
	mockClient.On("EndpointURL").Return(endpoint)

	u, err := svc.ObjectURL(context.Background(), "assets", "dir/my file.txt")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:9000/assets/dir/my%20file.txt", u)
}
