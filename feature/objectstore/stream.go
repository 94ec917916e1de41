package objectstore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"path"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// StreamChunkSize is the size of each write to the response sink.
const StreamChunkSize = 32 * 1024

// ResponseSink is the destination of StreamTo: a body writer plus response headers.
type ResponseSink interface {
	io.Writer
	SetHeader(key, value string)
}

type httpSink struct {
	w http.ResponseWriter
}

// NewHTTPSink adapts a net/http ResponseWriter to a ResponseSink.
func NewHTTPSink(w http.ResponseWriter) ResponseSink {
	return httpSink{w: w}
}

func (s httpSink) Write(p []byte) (int, error) { return s.w.Write(p) }

func (s httpSink) SetHeader(key, value string) { s.w.Header().Set(key, value) }

// ObjectStream is an open object whose first chunk has already been read, so
// lookup errors surface before any response header is written.
type ObjectStream struct {
	name    string
	head    []byte
	headErr error
	body    io.ReadCloser
}

// OpenStream opens an object for download as an attachment named displayName,
// or the base name of the key when displayName is empty.
func (s *Service) OpenStream(ctx context.Context, bucket, object, displayName string) (*ObjectStream, error) {
	l := s.logger.With(zap.String("bucket", bucket), zap.String("object", object))

	reader, err := s.client.GetObject(ctx, bucket, object, minio.GetObjectOptions{})
	if err != nil {
		l.Error("Failed to open object stream", zap.Error(err))
		return nil, fmt.Errorf("failed to get %s/%s: %w", bucket, object, err)
	}

	head := make([]byte, StreamChunkSize)
	var n int
	for n == 0 && err == nil {
		n, err = reader.Read(head)
	}
	if n == 0 && err != nil && !errors.Is(err, io.EOF) {
		reader.Close()
		l.Error("Failed to open object stream", zap.Error(err))
		return nil, fmt.Errorf("failed to get %s/%s: %w", bucket, object, err)
	}

	name := displayName
	if name == "" {
		name = path.Base(object)
	}
	return &ObjectStream{name: name, head: head[:n], headErr: err, body: reader}, nil
}

// ContentDisposition returns the attachment header value for the stream.
func (o *ObjectStream) ContentDisposition() string {
	return contentDisposition(o.name)
}

// WriteTo copies the object into w in StreamChunkSize writes.
func (o *ObjectStream) WriteTo(w io.Writer) (int64, error) {
	var written int64
	if len(o.head) > 0 {
		n, err := w.Write(o.head)
		written += int64(n)
		if err != nil {
			return written, err
		}
	}
	if errors.Is(o.headErr, io.EOF) {
		return written, nil
	}
	if o.headErr != nil {
		return written, o.headErr
	}
	n, err := copyChunks(w, o.body)
	return written + n, err
}

// Close releases the underlying object reader.
func (o *ObjectStream) Close() error {
	return o.body.Close()
}

// StreamTo copies an object into sink as an attachment named displayName, or the
// base name of the key when displayName is empty. Bytes already written stay
// written when the copy fails midway.
func (s *Service) StreamTo(ctx context.Context, bucket, object, displayName string, sink ResponseSink) error {
	stream, err := s.OpenStream(ctx, bucket, object, displayName)
	if err != nil {
		return err
	}
	defer stream.Close()

	sink.SetHeader("Content-Disposition", stream.ContentDisposition())
	sink.SetHeader("Content-Type", "application/octet-stream")

	l := s.logger.With(zap.String("bucket", bucket), zap.String("object", object))
	written, err := stream.WriteTo(sink)
	if err != nil {
		l.Error("Failed to stream object", zap.Int64("written", written), zap.Error(err))
		return fmt.Errorf("failed to stream %s/%s after %d bytes: %w", bucket, object, written, err)
	}
	l.Debug("Streamed object", zap.Int64("bytes", written))
	return nil
}

func contentDisposition(name string) string {
	if v := mime.FormatMediaType("attachment", map[string]string{"filename": name}); v != "" {
		return v
	}
	return "attachment"
}

// copyChunks copies src to dst in StreamChunkSize writes.
func copyChunks(dst io.Writer, src io.Reader) (int64, error) {
	buf := make([]byte, StreamChunkSize)
	var written int64
	for {
		n, rerr := src.Read(buf)
		if n > 0 {
			m, werr := dst.Write(buf[:n])
			written += int64(m)
			if werr != nil {
				return written, werr
			}
			if m != n {
				return written, io.ErrShortWrite
			}
		}
		if errors.Is(rerr, io.EOF) {
			return written, nil
		}
		if rerr != nil {
			return written, rerr
		}
	}
}
