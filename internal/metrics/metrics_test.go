package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/vyevs/wordbrain"
)

func TestObserve(t *testing.T) {
	m := NewSolver()

	m.Observe(time.Millisecond, 2, wordbrain.Stats{Visited: 10, Pruned: 3}, nil)
	m.Observe(time.Millisecond, 0, wordbrain.Stats{Visited: 5}, nil)
	m.Observe(time.Millisecond, 0, wordbrain.Stats{}, errors.New("boom"))

	assert.Equal(t, 1.0, testutil.ToFloat64(m.solves.WithLabelValues("ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.solves.WithLabelValues("unsolved")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.solves.WithLabelValues("error")))
	assert.Equal(t, 15.0, testutil.ToFloat64(m.visited))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.pruned))
}

func TestHandler(t *testing.T) {
	m := NewSolver()
	m.Observe(time.Millisecond, 1, wordbrain.Stats{Visited: 1}, nil)

	rr := httptest.NewRecorder()
	m.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "wordbrain_solves_total")
	assert.Contains(t, rr.Body.String(), "wordbrain_cells_visited_total")
}
