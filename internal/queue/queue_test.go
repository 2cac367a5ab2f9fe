package queue

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/papparazzi76/casa-con-avatar-3d-sub000/internal/models"
)

func testBatch(n int) []*models.RawListing {
	batch := make([]*models.RawListing, 0, n)
	for i := 0; i < n; i++ {
		batch = append(batch, &models.RawListing{
			Fuente:      "idealista.com",
			URL:         "https://www.idealista.com/inmueble/1/",
			Zona:        "Parquesol",
			Titulo:      "Piso de 90 m2, 3 habitaciones",
			PrecioTexto: "171.000 €",
		})
	}
	return batch
}

func TestQueuePushAndLen(t *testing.T) {
	q := NewListingQueue(5, logrus.New())
	defer q.Close()

	require.NoError(t, q.Push(testBatch(2)))
	require.NoError(t, q.Push(testBatch(3)))
	assert.Equal(t, 2, q.Len())
}

func TestQueueFull(t *testing.T) {
	q := NewListingQueue(1, logrus.New())
	defer q.Close()

	require.NoError(t, q.Push(testBatch(1)))
	err := q.Push(testBatch(1))
	assert.ErrorIs(t, err, ErrQueueFull)
}

func TestQueuePushAfterClose(t *testing.T) {
	q := NewListingQueue(5, logrus.New())
	require.NoError(t, q.Close())

	assert.True(t, q.IsClosed())
	assert.ErrorIs(t, q.Push(testBatch(1)), ErrQueueClosed)
}

func TestQueueCloseIsIdempotent(t *testing.T) {
	q := NewListingQueue(5, logrus.New())
	require.NoError(t, q.Close())
	require.NoError(t, q.Close())
}

func TestQueueDeliversBatchesToSubscriber(t *testing.T) {
	q := NewListingQueue(10, logrus.New())
	defer q.Close()

	var mu sync.Mutex
	received := 0
	done := make(chan struct{})

	q.Subscribe(func(batch []*models.RawListing) error {
		mu.Lock()
		received += len(batch)
		if received == 5 {
			close(done)
		}
		mu.Unlock()
		return nil
	})
	q.Start()

	require.NoError(t, q.Push(testBatch(2)))
	require.NoError(t, q.Push(testBatch(3)))

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for batches to be processed")
	}

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 5, received)
}

func TestQueueHandlerErrorDoesNotStopProcessing(t *testing.T) {
	q := NewListingQueue(10, logrus.New())
	defer q.Close()

	var mu sync.Mutex
	calls := 0
	done := make(chan struct{})

	q.Subscribe(func(batch []*models.RawListing) error {
		mu.Lock()
		calls++
		if calls == 2 {
			close(done)
		}
		mu.Unlock()
		return errors.New("handler failure")
	})
	q.Start()

	require.NoError(t, q.Push(testBatch(1)))
	require.NoError(t, q.Push(testBatch(1)))

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for second batch after handler error")
	}
}

func TestQueueMultipleSubscribers(t *testing.T) {
	q := NewListingQueue(10, logrus.New())
	defer q.Close()

	var wg sync.WaitGroup
	wg.Add(2)
	for i := 0; i < 2; i++ {
		var once sync.Once
		q.Subscribe(func(batch []*models.RawListing) error {
			once.Do(wg.Done)
			return nil
		})
	}
	q.Start()

	require.NoError(t, q.Push(testBatch(1)))

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for all subscribers")
	}
}
