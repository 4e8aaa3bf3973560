package multipart

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/sirosfoundation/go-httpcodec/pkg/codec"
	"github.com/sirosfoundation/go-httpcodec/pkg/request"
)

// contentTypePrefix is the required Content-Type shape; everything after
// the prefix is the boundary.
const contentTypePrefix = "multipart/form-data; boundary="

// FormOption configures a FormData codec.
type FormOption func(*formConfig)

type formConfig struct {
	boundary string
}

// WithBoundary pins the boundary used when printing. Without it every
// print generates a fresh boundary.
func WithBoundary(boundary string) FormOption {
	return func(c *formConfig) {
		c.boundary = boundary
	}
}

type formData[Out any] struct {
	parts  codec.Codec[[]Part, Out]
	config formConfig
}

// FormData is the multipart facade: a request codec that splits the body
// into parts using the boundary named by the Content-Type header, then
// hands the part sequence positionally to the given per-part codec.
//
// Parsing consumes the request body, leaving the unparsed remainder after
// the closing marker (normally empty) as the new body. Parts the per-part
// codec leaves unconsumed are dropped, mirroring unmatched field remainder
// behavior. Printing runs the per-part codec in reverse to rebuild the part
// sequence, serializes it, and writes both the body and the Content-Type
// header naming the boundary.
func FormData[Out any](parts codec.Codec[[]Part, Out], opts ...FormOption) codec.Codec[request.Request, Out] {
	f := formData[Out]{parts: parts}
	for _, opt := range opts {
		opt(&f.config)
	}
	return f
}

func (f formData[Out]) Parse(in *request.Request) (Out, error) {
	var zero Out
	body, ok := in.TakeBody()
	if !ok {
		return zero, ErrMissingBody
	}
	boundary, err := pullBoundary(in)
	if err != nil {
		return zero, err
	}
	parts, err := PartsCodec(boundary).Parse(&body)
	if err != nil {
		return zero, err
	}
	in.Body = body
	cursor := parts
	return f.parts.Parse(&cursor)
}

func (f formData[Out]) Print(out Out, in *request.Request) error {
	var parts []Part
	if err := f.parts.Print(out, &parts); err != nil {
		return err
	}
	boundary := f.config.boundary
	if boundary == "" {
		boundary = generateBoundary()
	}
	var body []byte
	if err := PartsCodec(boundary).Print(parts, &body); err != nil {
		return err
	}
	in.Body = body
	in.Headers.Add("Content-Type", contentTypePrefix+boundary)
	return nil
}

// pullBoundary consumes the Content-Type header and extracts the boundary
// through an embedded sub-parser matching the literal prefix.
func pullBoundary(in *request.Request) (string, error) {
	raw, ok := in.Headers.Pull("Content-Type")
	if !ok || raw == nil {
		return "", ErrMissingBoundary
	}
	value := []byte(*raw)
	boundary, err := codec.SkipFirst(codec.Literal(contentTypePrefix), codec.String()).Parse(&value)
	if err != nil {
		return "", fmt.Errorf("%q: %w", *raw, ErrMalformedContentType)
	}
	if boundary == "" {
		return "", fmt.Errorf("%q: %w", *raw, ErrMissingBoundary)
	}
	return boundary, nil
}

// generateBoundary generates a MIME boundary string.
func generateBoundary() string {
	return fmt.Sprintf("----=_Part_%s", strings.ReplaceAll(uuid.New().String(), "-", ""))
}
