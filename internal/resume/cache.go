package resume

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// LoadTimeout bounds one shared load. A caller giving up early does not
// cancel the load for the others.
const LoadTimeout = 30 * time.Second

// CachedLoader shares a single document between every viewer. Concurrent
// callers wait on the same load and a successful result is kept for the
// life of the process. Failures are not kept, so the next viewer tries
// again.
type CachedLoader struct {
	loader Loader
	group  singleflight.Group

	mu  sync.Mutex
	doc *Document
}

// NewCachedLoader wraps loader.
func NewCachedLoader(loader Loader) *CachedLoader {
	return &CachedLoader{loader: loader}
}

func (c *CachedLoader) cached() *Document {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.doc
}

func (c *CachedLoader) Load(ctx context.Context) (*Document, error) {
	if doc := c.cached(); doc != nil {
		return doc, nil
	}

	ch := c.group.DoChan("resume", func() (any, error) {
		if doc := c.cached(); doc != nil {
			return doc, nil
		}
		loadCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), LoadTimeout)
		defer cancel()

		doc, err := c.loader.Load(loadCtx)
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		c.doc = doc
		c.mu.Unlock()
		return doc, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*Document), nil
	}
}
