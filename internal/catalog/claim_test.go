package catalog

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeObjectStore keeps objects in a map keyed by delivery URL and can be
// told to fail specific calls.
type fakeObjectStore struct {
	objects map[string][]byte

	fetchErr     error
	overwriteErr error
	deleteErr    error

	overwrites int
	deletes    int
}

func newFakeObjectStore() *fakeObjectStore {
	return &fakeObjectStore{objects: make(map[string][]byte)}
}

func (f *fakeObjectStore) Upload(_ context.Context, objectName string, reader io.Reader, _ int64, _ string) (string, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return "", err
	}
	url := "https://cdn.test/" + objectName
	f.objects[url] = data
	return url, nil
}

func (f *fakeObjectStore) Overwrite(_ context.Context, deliveryURL string, data []byte, _ string) error {
	if f.overwriteErr != nil {
		return f.overwriteErr
	}
	f.overwrites++
	f.objects[deliveryURL] = data
	return nil
}

func (f *fakeObjectStore) Fetch(_ context.Context, deliveryURL string) ([]byte, error) {
	if f.fetchErr != nil {
		return nil, f.fetchErr
	}
	data, ok := f.objects[deliveryURL]
	if !ok {
		return nil, errors.New("object not found")
	}
	return data, nil
}

func (f *fakeObjectStore) Delete(_ context.Context, deliveryURL string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deletes++
	delete(f.objects, deliveryURL)
	return nil
}

func markerOverlay(data []byte) ([]byte, string, error) {
	return append([]byte("marked:"), data...), "image/jpeg", nil
}

func newTestClaimer(t *testing.T) (*Claimer, *Service, *fakeObjectStore) {
	t.Helper()
	svc, _ := newTestService(t)
	objects := newFakeObjectStore()
	claimer := NewClaimer(svc, objects, markerOverlay, 5*time.Second)
	return claimer, svc, objects
}

func TestClaimSuccess(t *testing.T) {
	claimer, svc, objects := newTestClaimer(t)
	ctx := context.Background()

	const url = "https://cdn.test/flash/moth.jpg"
	objects.objects[url] = []byte("original")
	require.NoError(t, svc.AddImage(ctx, CollectionFlash, url))

	rev, err := claimer.Claim(ctx, CollectionFlash, url)
	require.NoError(t, err)
	assert.Equal(t, "1748782800000", rev)

	assert.Equal(t, []byte("marked:original"), objects.objects[url], "bytes overwritten in place")

	claimed, err := svc.Claimed(ctx, url)
	require.NoError(t, err)
	assert.True(t, claimed)

	caption, err := svc.Caption(ctx, url)
	require.NoError(t, err)
	assert.Equal(t, ClaimedCaption, caption)

	stored, err := svc.Revision(ctx, url)
	require.NoError(t, err)
	assert.Equal(t, rev, stored)
}

func TestClaimUnknownImage(t *testing.T) {
	claimer, _, _ := newTestClaimer(t)

	_, err := claimer.Claim(context.Background(), CollectionFlash, "https://cdn.test/flash/nope.jpg")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestClaimFetchFailureLeavesStateUntouched(t *testing.T) {
	claimer, svc, objects := newTestClaimer(t)
	ctx := context.Background()

	const url = "https://cdn.test/flash/moth.jpg"
	require.NoError(t, svc.AddImage(ctx, CollectionFlash, url))
	objects.fetchErr = errors.New("cdn down")

	_, err := claimer.Claim(ctx, CollectionFlash, url)
	require.Error(t, err)

	claimed, _ := svc.Claimed(ctx, url)
	caption, _ := svc.Caption(ctx, url)
	rev, _ := svc.Revision(ctx, url)
	assert.False(t, claimed)
	assert.Empty(t, caption)
	assert.Empty(t, rev)
}

func TestClaimOverwriteFailureLeavesStateUntouched(t *testing.T) {
	claimer, svc, objects := newTestClaimer(t)
	ctx := context.Background()

	const url = "https://cdn.test/flash/moth.jpg"
	objects.objects[url] = []byte("original")
	require.NoError(t, svc.AddImage(ctx, CollectionFlash, url))
	objects.overwriteErr = errors.New("upload refused")

	_, err := claimer.Claim(ctx, CollectionFlash, url)
	require.Error(t, err)

	// Nothing committed: no flag, no caption overwrite, no revision.
	claimed, _ := svc.Claimed(ctx, url)
	caption, _ := svc.Caption(ctx, url)
	rev, _ := svc.Revision(ctx, url)
	assert.False(t, claimed)
	assert.Empty(t, caption)
	assert.Empty(t, rev)
	assert.Equal(t, []byte("original"), objects.objects[url])
}

func TestClaimOverlayFailure(t *testing.T) {
	svc, _ := newTestService(t)
	objects := newFakeObjectStore()
	broken := func([]byte) ([]byte, string, error) {
		return nil, "", errors.New("undecodable")
	}
	claimer := NewClaimer(svc, objects, broken, 5*time.Second)
	ctx := context.Background()

	const url = "https://cdn.test/flash/moth.jpg"
	objects.objects[url] = []byte("original")
	require.NoError(t, svc.AddImage(ctx, CollectionFlash, url))

	_, err := claimer.Claim(ctx, CollectionFlash, url)
	require.Error(t, err)
	assert.Zero(t, objects.overwrites, "no overwrite after overlay failure")
}

func TestUnclaimClearsFlagOnly(t *testing.T) {
	claimer, svc, objects := newTestClaimer(t)
	ctx := context.Background()

	const url = "https://cdn.test/flash/moth.jpg"
	objects.objects[url] = []byte("original")
	require.NoError(t, svc.AddImage(ctx, CollectionFlash, url))
	_, err := claimer.Claim(ctx, CollectionFlash, url)
	require.NoError(t, err)

	require.NoError(t, claimer.Unclaim(ctx, url))

	claimed, _ := svc.Claimed(ctx, url)
	assert.False(t, claimed)

	// The overwritten caption and bytes stay as they are.
	caption, _ := svc.Caption(ctx, url)
	assert.Equal(t, ClaimedCaption, caption)
	assert.Equal(t, []byte("marked:original"), objects.objects[url])
}

func TestReplaceCopiesBytesAndMintsRevision(t *testing.T) {
	claimer, svc, objects := newTestClaimer(t)
	ctx := context.Background()

	const source = "https://cdn.test/flash/new-version.jpg"
	const target = "https://cdn.test/flash/moth.jpg"
	objects.objects[source] = []byte("fresh")
	objects.objects[target] = []byte("stale")

	rev, err := claimer.Replace(ctx, source, target)
	require.NoError(t, err)
	assert.NotEmpty(t, rev)
	assert.Equal(t, []byte("fresh"), objects.objects[target])

	stored, err := svc.Revision(ctx, target)
	require.NoError(t, err)
	assert.Equal(t, rev, stored)
}

func TestDeleteImageClearsEverything(t *testing.T) {
	claimer, svc, objects := newTestClaimer(t)
	ctx := context.Background()

	const url = "https://cdn.test/flash/moth.jpg"
	objects.objects[url] = []byte("original")
	require.NoError(t, svc.AddImage(ctx, CollectionFlash, url))
	require.NoError(t, svc.SetCaption(ctx, url, "caption"))

	require.NoError(t, claimer.DeleteImage(ctx, CollectionFlash, url))

	urls, err := svc.Images(ctx, CollectionFlash)
	require.NoError(t, err)
	assert.Empty(t, urls)

	caption, _ := svc.Caption(ctx, url)
	assert.Empty(t, caption)
	assert.NotContains(t, objects.objects, url)
}

func TestDeleteImageSurvivesCDNFailure(t *testing.T) {
	claimer, svc, objects := newTestClaimer(t)
	ctx := context.Background()

	const url = "https://cdn.test/flash/moth.jpg"
	require.NoError(t, svc.AddImage(ctx, CollectionFlash, url))
	objects.deleteErr = errors.New("cdn down")

	require.NoError(t, claimer.DeleteImage(ctx, CollectionFlash, url))

	urls, err := svc.Images(ctx, CollectionFlash)
	require.NoError(t, err)
	assert.Empty(t, urls, "catalog removal proceeds despite asset delete failure")
}
