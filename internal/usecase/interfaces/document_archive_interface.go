package interfaces

import "context"

// IDocumentArchive stores generated documents (quote PDFs) in object storage.
type IDocumentArchive interface {
	Upload(ctx context.Context, key string, body []byte, contentType string) (location string, err error)
}
