package resume

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func loaded(pages int) Loader {
	return LoaderFunc(func(context.Context) (*Document, error) {
		return &Document{Data: []byte("%PDF"), Pages: pages}, nil
	})
}

func startAndWait(t *testing.T, loader Loader) *Viewer {
	t.Helper()
	v := NewViewer(nil)
	v.Start(context.Background(), loader)
	waitDone(t, v)
	return v
}

func waitDone(t *testing.T, v *Viewer) {
	t.Helper()
	select {
	case <-v.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("resume load did not finish")
	}
}

func TestViewerStartsLoading(t *testing.T) {
	v := NewViewer(nil)
	vs := v.State()
	require.Equal(t, Loading, vs.State)
	require.True(t, vs.Loading())
	require.Empty(t, vs.Error)
	require.False(t, vs.Paged())
}

func TestViewerLoadSuccess(t *testing.T) {
	v := startAndWait(t, loaded(3))

	vs := v.State()
	require.Equal(t, Loaded, vs.State)
	require.False(t, vs.Loading())
	require.Empty(t, vs.Error)
	require.Equal(t, 1, vs.CurrentPage)
	require.Equal(t, 3, vs.TotalPages)
	require.True(t, vs.Paged())

	doc, ok := v.Document()
	require.True(t, ok)
	require.Equal(t, 3, doc.Pages)
}

func TestViewerPagingIsClamped(t *testing.T) {
	v := startAndWait(t, loaded(3))

	vs := v.PrevPage()
	require.Equal(t, 1, vs.CurrentPage, "prev at page 1 is a no-op")
	require.False(t, vs.HasPrev())
	require.True(t, vs.HasNext())

	require.Equal(t, 2, v.NextPage().CurrentPage)
	require.Equal(t, 3, v.NextPage().CurrentPage)

	vs = v.NextPage()
	require.Equal(t, 3, vs.CurrentPage, "next at the last page is a no-op")
	require.False(t, vs.HasNext())
	require.True(t, vs.HasPrev())

	for range 10 {
		vs = v.PrevPage()
		require.GreaterOrEqual(t, vs.CurrentPage, 1)
		require.LessOrEqual(t, vs.CurrentPage, vs.TotalPages)
	}
	require.Equal(t, 1, vs.CurrentPage)
}

func TestViewerSinglePageHasNoControls(t *testing.T) {
	v := startAndWait(t, loaded(1))

	vs := v.NextPage()
	require.Equal(t, 1, vs.CurrentPage)
	require.False(t, vs.Paged())
	require.False(t, vs.HasNext())
	require.False(t, vs.HasPrev())
}

func TestViewerLoadFailure(t *testing.T) {
	v := startAndWait(t, LoaderFunc(func(context.Context) (*Document, error) {
		return nil, errors.New("boom")
	}))

	vs := v.State()
	require.Equal(t, Failed, vs.State)
	require.False(t, vs.Loading())
	require.Equal(t, FailureMessage, vs.Error)
	require.False(t, vs.Paged())

	require.Equal(t, vs, v.NextPage())
	require.Equal(t, vs, v.PrevPage())
	_, ok := v.Document()
	require.False(t, ok)
}

func TestViewerPagingBeforeLoadIsNoop(t *testing.T) {
	v := NewViewer(nil)
	require.Equal(t, 1, v.NextPage().CurrentPage)
	require.Equal(t, 1, v.PrevPage().CurrentPage)
	require.Equal(t, Loading, v.State().State)
}

func TestViewerCloseDiscardsLateResult(t *testing.T) {
	release := make(chan struct{})
	v := NewViewer(nil)
	v.Start(context.Background(), LoaderFunc(func(context.Context) (*Document, error) {
		<-release
		return &Document{Pages: 2}, nil
	}))

	v.Close()
	close(release)
	waitDone(t, v)

	require.Equal(t, Loading, v.State().State)
	_, ok := v.Document()
	require.False(t, ok)
}

func TestViewerCloseCancelsLoad(t *testing.T) {
	v := NewViewer(nil)
	v.Start(context.Background(), LoaderFunc(func(ctx context.Context) (*Document, error) {
		<-ctx.Done()
		return nil, ctx.Err()
	}))

	v.Close()
	waitDone(t, v)

	vs := v.State()
	require.Equal(t, Loading, vs.State)
	require.Empty(t, vs.Error)
}

func TestStateString(t *testing.T) {
	require.Equal(t, "loading", Loading.String())
	require.Equal(t, "loaded", Loaded.String())
	require.Equal(t, "failed", Failed.String())
}
