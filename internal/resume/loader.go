package resume

import (
	"context"
	"errors"
)

// Document is a fetched and parsed résumé.
type Document struct {
	Data  []byte
	Pages int
}

// Loader produces a Document. Viewers call it once each; wrap it in a
// CachedLoader to share one document between them.
type Loader interface {
	Load(ctx context.Context) (*Document, error)
}

// LoaderFunc adapts a function to Loader.
type LoaderFunc func(ctx context.Context) (*Document, error)

func (f LoaderFunc) Load(ctx context.Context) (*Document, error) {
	return f(ctx)
}

// PageCounter reports how many pages a PDF has.
type PageCounter interface {
	PageCount(data []byte) (int, error)
}

// SourceLoader fetches from a Source and counts pages.
type SourceLoader struct {
	Source  Source
	Counter PageCounter
}

func (l SourceLoader) Load(ctx context.Context) (*Document, error) {
	data, err := l.Source.Fetch(ctx)
	if err != nil {
		return nil, err
	}
	pages, err := l.Counter.PageCount(data)
	if err != nil {
		return nil, err
	}
	if pages < 1 {
		return nil, errors.New("document has no pages")
	}
	return &Document{Data: data, Pages: pages}, nil
}
