package pdf

import (
	"bytes"
	"context"
	"io"

	"github.com/smallbiznis/folio/internal/document/domain"
)

// Provider renders an assembled document to PDF.
type Provider interface {
	Generate(ctx context.Context, doc domain.Document) (io.Reader, error)
}

type NoOpProvider struct{}

func (p *NoOpProvider) Generate(ctx context.Context, doc domain.Document) (io.Reader, error) {
	return bytes.NewReader(nil), nil
}
