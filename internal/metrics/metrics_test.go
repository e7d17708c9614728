package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/slide/internal/core"
)

func TestSessions(t *testing.T) {
	m := New()

	m.SessionStarted()
	m.SessionStarted()
	m.SessionEnded()

	assert.Equal(t, 2.0, testutil.ToFloat64(m.SessionsTotal))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ActiveSessions))
}

func TestObserve(t *testing.T) {
	m := New()

	m.Observe("slide", []core.Event{{Kind: core.EventMoved, Level: 1, Moves: 1}}, nil)
	m.Observe("slide", []core.Event{{Kind: core.EventUndone, Level: 1}}, nil)
	m.Observe("slide", []core.Event{
		{Kind: core.EventMoved, Level: 1, Moves: 7},
		{Kind: core.EventSolved, Level: 1, Moves: 7},
	}, func(level, moves int) string { return "perfect" })
	m.Observe("slide_hands", []core.Event{
		{Kind: core.EventSolved, Level: 2, Moves: 4},
		{Kind: core.EventLevelChanged, Level: 3},
	}, nil)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.MovesTotal.WithLabelValues("slide")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.UndosTotal.WithLabelValues("slide")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.LevelsSolvedTotal.WithLabelValues("slide", "perfect")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.LevelsSolvedTotal.WithLabelValues("slide_hands", "solved")))
	assert.Equal(t, 2, testutil.CollectAndCount(m.SolveMoves))
}

func TestSeparateRegistries(t *testing.T) {
	a, b := New(), New()
	a.SessionStarted()

	assert.Equal(t, 0.0, testutil.ToFloat64(b.SessionsTotal))
	assert.NotSame(t, a.Registry(), b.Registry())
}

func TestHandler(t *testing.T) {
	m := New()
	m.SessionStarted()

	srv := httptest.NewServer(m.Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "slide_ssh_sessions_total 1")
	assert.Contains(t, string(body), "go_goroutines")
}
