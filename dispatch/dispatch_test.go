package dispatch_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/edirooss/valkeybatch/batch"
	"github.com/edirooss/valkeybatch/batcherrors"
	"github.com/edirooss/valkeybatch/dispatch"
	"github.com/edirooss/valkeybatch/dispatch/transport"
)

// fakeTransport records every request it receives and replays a scripted
// sequence of responses, one per call, so retry behavior can be observed. It
// is safe for concurrent use since TestConcurrentBatchesAllTimeout drives it
// from multiple goroutines via errgroup.
type fakeTransport struct {
	mu        sync.Mutex
	calls     int
	responses []fakeResponse
}

type fakeResponse struct {
	replies []transport.Reply
	err     error
	delay   time.Duration
}

func (f *fakeTransport) Exec(ctx context.Context, req transport.Request) ([]transport.Reply, error) {
	f.mu.Lock()
	i := f.calls
	f.calls++
	if i >= len(f.responses) {
		i = len(f.responses) - 1
	}
	resp := f.responses[i]
	f.mu.Unlock()

	if resp.delay > 0 {
		select {
		case <-time.After(resp.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return resp.replies, resp.err
}

func (f *fakeTransport) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func testLogger() *zap.Logger { return zap.NewNop() }

func TestExecShortCircuitsOnBuildError(t *testing.T) {
	ft := &fakeTransport{}
	d := dispatch.New(ft, testLogger())

	b := batch.NewStandaloneBatch(false).MGet()
	require.Error(t, b.Err())

	res, err := d.Exec(context.Background(), b)
	assert.Nil(t, res)
	assert.Error(t, err)
	assert.Equal(t, 0, ft.callCount())
}

func TestExecSucceedsAndCompletesBatch(t *testing.T) {
	ft := &fakeTransport{responses: []fakeResponse{
		{replies: []transport.Reply{{Value: "OK"}}},
	}}
	d := dispatch.New(ft, testLogger())

	b := batch.NewStandaloneBatch(false).SetString("k", "v")
	res, err := d.Exec(context.Background(), b)
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.Equal(t, []any{"OK"}, res.Values)
	assert.NotEmpty(t, res.CorrelationID)
	assert.Equal(t, batch.StateCompleted, b.State())
}

func TestStandaloneBatchAlwaysRaisesFirstServerError(t *testing.T) {
	ft := &fakeTransport{responses: []fakeResponse{
		{replies: []transport.Reply{
			{Value: "OK"},
			{Err: errors.New("WRONGTYPE")},
		}},
	}}
	d := dispatch.New(ft, testLogger())

	b := batch.NewStandaloneBatch(false).SetString("k", "v").LPush("k", "x")
	res, err := d.Exec(context.Background(), b)
	require.Error(t, err)
	require.NotNil(t, res)

	var se *batcherrors.ServerError
	assert.True(t, errors.As(err, &se))
	assert.Equal(t, batch.StateFailed, b.State())
}

func TestClusterBatchWithRaiseOnErrorFalseReturnsErrorsInValues(t *testing.T) {
	ft := &fakeTransport{responses: []fakeResponse{
		{replies: []transport.Reply{
			{Value: "OK"},
			{Err: errors.New("WRONGTYPE")},
		}},
	}}
	d := dispatch.New(ft, testLogger())

	b := batch.NewClusterBatch(false).WithOptions(batch.ClusterBatchOptions{RaiseOnError: false})
	b.SetString("k", "v")
	b.LPush("k", "x")

	res, err := d.Exec(context.Background(), b)
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.Equal(t, "OK", res.Values[0])
	_, isServerErr := res.Values[1].(*batcherrors.ServerError)
	assert.True(t, isServerErr)
	assert.Equal(t, batch.StateCompleted, b.State())
}

func TestClusterBatchWithRaiseOnErrorTrueRaisesFirstError(t *testing.T) {
	ft := &fakeTransport{responses: []fakeResponse{
		{replies: []transport.Reply{{Err: errors.New("WRONGTYPE")}}},
	}}
	d := dispatch.New(ft, testLogger())

	b := batch.NewClusterBatch(false).WithOptions(batch.ClusterBatchOptions{RaiseOnError: true})
	b.SetString("k", "v")

	_, err := d.Exec(context.Background(), b)
	require.Error(t, err)
	assert.Equal(t, batch.StateFailed, b.State())
}

func TestClusterBatchTimeoutYieldsTimeoutError(t *testing.T) {
	timeoutMs := uint32(10)
	ft := &fakeTransport{responses: []fakeResponse{
		{delay: 50 * time.Millisecond, err: errors.New("deadline exceeded")},
	}}
	d := dispatch.New(ft, testLogger())

	b := batch.NewClusterBatch(false).WithOptions(batch.ClusterBatchOptions{TimeoutMillis: &timeoutMs})
	b.SetString("k", "v")

	_, err := d.Exec(context.Background(), b)
	require.Error(t, err)
	var te *batcherrors.TimeoutError
	assert.True(t, errors.As(err, &te))
	assert.Equal(t, timeoutMs, te.TimeoutMillis)
}

func TestClusterBatchCancellationYieldsCancellationError(t *testing.T) {
	ft := &fakeTransport{responses: []fakeResponse{
		{delay: 50 * time.Millisecond, err: errors.New("canceled")},
	}}
	d := dispatch.New(ft, testLogger())

	b := batch.NewClusterBatch(false)
	b.SetString("k", "v")

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(5 * time.Millisecond)
		cancel()
	}()

	_, err := d.Exec(ctx, b)
	require.Error(t, err)
	var ce *batcherrors.CancellationError
	assert.True(t, errors.As(err, &ce))
}

func TestNonAtomicClusterBatchRetriesOnConnectionError(t *testing.T) {
	ft := &fakeTransport{responses: []fakeResponse{
		{err: errors.New("connection reset")},
		{replies: []transport.Reply{{Value: "OK"}}},
	}}
	d := dispatch.New(ft, testLogger())

	rs := batch.NewRetryStrategy().WithRetryOnConnectionError(true)
	b := batch.NewClusterBatch(false).WithOptions(batch.ClusterBatchOptions{RetryStrategy: rs})
	b.SetString("k", "v")

	res, err := d.Exec(context.Background(), b)
	require.NoError(t, err)
	assert.Equal(t, 2, ft.callCount())
	assert.Equal(t, []any{"OK"}, res.Values)
}

func TestAtomicClusterBatchNeverRetriesEvenWithRetryStrategy(t *testing.T) {
	ft := &fakeTransport{responses: []fakeResponse{
		{err: errors.New("connection reset")},
		{replies: []transport.Reply{{Value: "OK"}}},
	}}
	d := dispatch.New(ft, testLogger())

	rs := batch.NewRetryStrategy().WithRetryOnConnectionError(true)
	b := batch.NewClusterTransaction().WithOptions(batch.ClusterBatchOptions{RetryStrategy: rs})
	b.SetString("k", "v")

	_, err := d.Exec(context.Background(), b)
	require.Error(t, err)
	assert.Equal(t, 1, ft.callCount())
}

func TestDoubleSubmitIsRejected(t *testing.T) {
	ft := &fakeTransport{responses: []fakeResponse{
		{replies: []transport.Reply{{Value: "OK"}}},
	}}
	d := dispatch.New(ft, testLogger())

	b := batch.NewStandaloneBatch(false).SetString("k", "v")
	_, err := d.Exec(context.Background(), b)
	require.NoError(t, err)

	_, err = d.Exec(context.Background(), b)
	assert.Error(t, err)
}

// TestConcurrentBatchesAllTimeout drives several in-flight batches against a
// transport that always outlasts its deadline, confirming each call gets its
// own independent timeout rather than one batch's deadline leaking into
// another's.
func TestConcurrentBatchesAllTimeout(t *testing.T) {
	timeoutMs := uint32(10)
	ft := &fakeTransport{responses: []fakeResponse{
		{delay: 200 * time.Millisecond, err: errors.New("deadline exceeded")},
	}}
	d := dispatch.New(ft, testLogger())

	const n = 5
	var g errgroup.Group
	for i := 0; i < n; i++ {
		g.Go(func() error {
			b := batch.NewClusterBatch(false).WithOptions(batch.ClusterBatchOptions{TimeoutMillis: &timeoutMs})
			b.SetString("k", "v")
			_, err := d.Exec(context.Background(), b)
			var te *batcherrors.TimeoutError
			if !errors.As(err, &te) {
				return err
			}
			return nil
		})
	}
	assert.NoError(t, g.Wait())
	assert.Equal(t, n, ft.callCount())
}
