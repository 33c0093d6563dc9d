// AngelaMos | 2026
// handler_test.go

package health

import (
	"context"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePinger struct {
	err error
}

func (f *fakePinger) Ping(ctx context.Context) error {
	return f.err
}

func TestReadinessHealthy(t *testing.T) {
	h := NewHandler(&fakePinger{}, &fakePinger{})

	rec := httptest.NewRecorder()
	h.Readiness(rec, httptest.NewRequest("GET", "/readyz", nil))

	require.Equal(t, 200, rec.Code)

	var body readinessResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body.Status)
	require.Contains(t, body.Checks, "database")
	require.Contains(t, body.Checks, "redis")
	assert.True(t, body.Checks["database"].Healthy)
	assert.True(t, body.Checks["redis"].Healthy)
}

func TestReadinessDegraded(t *testing.T) {
	h := NewHandler(&fakePinger{}, &fakePinger{err: errors.New("down")})

	rec := httptest.NewRecorder()
	h.Readiness(rec, httptest.NewRequest("GET", "/readyz", nil))

	require.Equal(t, 503, rec.Code)

	var body readinessResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "degraded", body.Status)
	assert.False(t, body.Checks["redis"].Healthy)
}

// Both backend checks run on their own goroutines; this stays clean
// under the race detector.
func TestReadinessConcurrent(t *testing.T) {
	h := NewHandler(&fakePinger{}, &fakePinger{})

	var wg sync.WaitGroup
	for range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			rec := httptest.NewRecorder()
			h.Readiness(rec, httptest.NewRequest("GET", "/readyz", nil))
			assert.Equal(t, 200, rec.Code)
		}()
	}
	wg.Wait()
}

func TestReadinessDuringShutdown(t *testing.T) {
	h := NewHandler(&fakePinger{}, &fakePinger{})
	h.SetShutdown(true)

	rec := httptest.NewRecorder()
	h.Readiness(rec, httptest.NewRequest("GET", "/readyz", nil))

	require.Equal(t, 503, rec.Code)
}
