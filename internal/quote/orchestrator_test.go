package quote

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"hoteldesk/internal/domain"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRateCalculator struct{ mock.Mock }

func (m *MockRateCalculator) CalculateRate(ctx context.Context, q domain.RateQuery) (float64, error) {
	args := m.Called(ctx, q)
	amount, _ := args.Get(0).(float64)
	return amount, args.Error(1)
}

type memoryCache struct {
	mu sync.Mutex
	m  map[string]float64
}

func newMemoryCache() *memoryCache { return &memoryCache{m: make(map[string]float64)} }

func (c *memoryCache) Get(key string) (float64, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.m[key]
	return v, ok
}

func (c *memoryCache) Set(key string, amount float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.m[key] = amount
}

func completeQuery(roomID int64) domain.RateQuery {
	return domain.RateQuery{RoomID: roomID, CheckIn: "2025-06-01", CheckOut: "2025-06-05"}
}

func forRoom(roomID int64) any {
	return mock.MatchedBy(func(q domain.RateQuery) bool { return q.RoomID == roomID })
}

func TestOrchestrator_StartsIdle(t *testing.T) {
	o := New(new(MockRateCalculator), nil, time.Millisecond)
	t.Cleanup(o.Close)

	require.Equal(t, StateIdle, o.State())
	_, ok := o.Quote()
	require.False(t, ok)
}

func TestOrchestrator_IncompleteInputsStayIdle(t *testing.T) {
	calc := new(MockRateCalculator)
	o := New(calc, nil, time.Millisecond)
	t.Cleanup(o.Close)

	o.SetQuery(domain.RateQuery{RoomID: 1})
	o.SetQuery(domain.RateQuery{RoomID: 1, CheckIn: "2025-06-01"})
	// check-out equal to check-in is not a valid stay
	o.SetQuery(domain.RateQuery{RoomID: 1, CheckIn: "2025-06-01", CheckOut: "2025-06-01"})
	// check-out before check-in neither
	o.SetQuery(domain.RateQuery{RoomID: 1, CheckIn: "2025-06-05", CheckOut: "2025-06-01"})

	time.Sleep(50 * time.Millisecond)
	require.Equal(t, StateIdle, o.State())
	calc.AssertNotCalled(t, "CalculateRate", mock.Anything, mock.Anything)
}

func TestOrchestrator_CompleteInputsProduceQuote(t *testing.T) {
	calc := new(MockRateCalculator)
	o := New(calc, nil, time.Millisecond)
	t.Cleanup(o.Close)

	calc.On("CalculateRate", mock.Anything, forRoom(1)).Return(4200.0, nil).Once()

	o.SetQuery(completeQuery(1))

	require.Eventually(t, func() bool { return o.State() == StateQuoted }, 2*time.Second, 5*time.Millisecond)
	q, ok := o.Quote()
	require.True(t, ok)
	require.InDelta(t, 4200.0, q.Amount, 1e-9)
	calc.AssertExpectations(t)
}

func TestOrchestrator_SameTupleQueriedExactlyOnce(t *testing.T) {
	calc := new(MockRateCalculator)
	o := New(calc, nil, time.Millisecond)
	t.Cleanup(o.Close)

	calc.On("CalculateRate", mock.Anything, forRoom(1)).Return(4200.0, nil).Once()

	o.SetQuery(completeQuery(1))
	require.Eventually(t, func() bool { return o.State() == StateQuoted }, 2*time.Second, 5*time.Millisecond)

	// Re-feeding the identical tuple must not leave Quoted or re-query.
	o.SetQuery(completeQuery(1))
	time.Sleep(50 * time.Millisecond)

	require.Equal(t, StateQuoted, o.State())
	calc.AssertNumberOfCalls(t, "CalculateRate", 1)
}

func TestOrchestrator_RapidEditsDebouncedToLastTuple(t *testing.T) {
	calc := new(MockRateCalculator)
	o := New(calc, nil, 80*time.Millisecond)
	t.Cleanup(o.Close)

	calc.On("CalculateRate", mock.Anything, forRoom(3)).Return(300.0, nil).Once()

	o.SetQuery(completeQuery(1))
	o.SetQuery(completeQuery(2))
	o.SetQuery(completeQuery(3))

	require.Eventually(t, func() bool { return o.State() == StateQuoted }, 2*time.Second, 5*time.Millisecond)
	q, _ := o.Quote()
	require.InDelta(t, 300.0, q.Amount, 1e-9)
	calc.AssertNumberOfCalls(t, "CalculateRate", 1)
}

func TestOrchestrator_StaleResponseDiscarded(t *testing.T) {
	calc := new(MockRateCalculator)
	o := New(calc, nil, time.Millisecond)
	t.Cleanup(o.Close)

	slowStarted := make(chan struct{})
	slowRelease := make(chan struct{})
	calc.On("CalculateRate", mock.Anything, forRoom(1)).Run(func(mock.Arguments) {
		close(slowStarted)
		<-slowRelease
	}).Return(100.0, nil).Once()
	calc.On("CalculateRate", mock.Anything, forRoom(2)).Return(200.0, nil).Once()

	o.SetQuery(completeQuery(1))
	select {
	case <-slowStarted:
	case <-time.After(2 * time.Second):
		t.Fatal("first query never reached the calculator")
	}

	// Supersede the in-flight query, let the newer one complete first.
	o.SetQuery(completeQuery(2))
	require.Eventually(t, func() bool {
		q, ok := o.Quote()
		return ok && q.Amount == 200.0
	}, 2*time.Second, 5*time.Millisecond)

	// Now the stale response resolves; it must not overwrite the newer quote.
	close(slowRelease)
	time.Sleep(50 * time.Millisecond)

	q, ok := o.Quote()
	require.True(t, ok)
	require.InDelta(t, 200.0, q.Amount, 1e-9)
	require.Equal(t, StateQuoted, o.State())
	calc.AssertExpectations(t)
}

func TestOrchestrator_FailureKeepsPreviousQuote(t *testing.T) {
	calc := new(MockRateCalculator)
	o := New(calc, nil, time.Millisecond)
	t.Cleanup(o.Close)

	calc.On("CalculateRate", mock.Anything, forRoom(1)).Return(100.0, nil).Once()
	calc.On("CalculateRate", mock.Anything, forRoom(2)).Return(0.0, errors.New("backend down")).Once()

	o.SetQuery(completeQuery(1))
	require.Eventually(t, func() bool {
		q, ok := o.Quote()
		return ok && q.Amount == 100.0
	}, 2*time.Second, 5*time.Millisecond)

	o.SetQuery(completeQuery(2))
	require.Eventually(t, func() bool { return o.State() == StateQuoted }, 2*time.Second, 5*time.Millisecond)

	q, ok := o.Quote()
	require.True(t, ok)
	require.InDelta(t, 100.0, q.Amount, 1e-9)
	calc.AssertExpectations(t)
}

func TestOrchestrator_FailureWithoutPriorQuoteReturnsToReady(t *testing.T) {
	calc := new(MockRateCalculator)
	o := New(calc, nil, time.Millisecond)
	t.Cleanup(o.Close)

	calc.On("CalculateRate", mock.Anything, forRoom(1)).Return(0.0, errors.New("backend down")).Once()

	o.SetQuery(completeQuery(1))

	require.Eventually(t, func() bool { return o.State() == StateReady }, 2*time.Second, 5*time.Millisecond)
	_, ok := o.Quote()
	require.False(t, ok)
}

func TestOrchestrator_CacheHitSkipsBackend(t *testing.T) {
	calc := new(MockRateCalculator)
	c := newMemoryCache()
	o := New(calc, c, time.Millisecond)
	t.Cleanup(o.Close)

	q := completeQuery(1)
	c.Set(q.Fingerprint(), 777.0)

	o.SetQuery(q)

	require.Eventually(t, func() bool { return o.State() == StateQuoted }, 2*time.Second, 5*time.Millisecond)
	got, ok := o.Quote()
	require.True(t, ok)
	require.InDelta(t, 777.0, got.Amount, 1e-9)
	calc.AssertNotCalled(t, "CalculateRate", mock.Anything, mock.Anything)
}

func TestOrchestrator_SuccessfulQuotePopulatesCache(t *testing.T) {
	calc := new(MockRateCalculator)
	c := newMemoryCache()
	o := New(calc, c, time.Millisecond)
	t.Cleanup(o.Close)

	calc.On("CalculateRate", mock.Anything, forRoom(1)).Return(4200.0, nil).Once()

	q := completeQuery(1)
	o.SetQuery(q)

	require.Eventually(t, func() bool {
		v, ok := c.Get(q.Fingerprint())
		return ok && v == 4200.0
	}, 2*time.Second, 5*time.Millisecond)
}

func TestOrchestrator_BackToIdleInvalidatesInFlight(t *testing.T) {
	calc := new(MockRateCalculator)
	o := New(calc, nil, time.Millisecond)
	t.Cleanup(o.Close)

	started := make(chan struct{})
	release := make(chan struct{})
	calc.On("CalculateRate", mock.Anything, forRoom(1)).Run(func(mock.Arguments) {
		close(started)
		<-release
	}).Return(100.0, nil).Once()

	o.SetQuery(completeQuery(1))
	<-started

	// Clearing the room invalidates the in-flight request.
	o.SetQuery(domain.RateQuery{CheckIn: "2025-06-01", CheckOut: "2025-06-05"})
	require.Equal(t, StateIdle, o.State())

	close(release)
	time.Sleep(50 * time.Millisecond)

	require.Equal(t, StateIdle, o.State())
	_, ok := o.Quote()
	require.False(t, ok)
}

func TestOrchestrator_CloseDropsPendingWork(t *testing.T) {
	calc := new(MockRateCalculator)
	o := New(calc, nil, 20*time.Millisecond)

	o.SetQuery(completeQuery(1))
	o.Close()

	time.Sleep(60 * time.Millisecond)
	calc.AssertNotCalled(t, "CalculateRate", mock.Anything, mock.Anything)
	require.Equal(t, StateReady, o.State())
}
