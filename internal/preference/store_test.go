package preference

import (
	"bytes"
	"errors"
	"testing"

	"github.com/dgilligan/folio/internal/repository"
	"github.com/dgilligan/folio/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingObserver struct {
	events []StoreEvent
}

func (r *recordingObserver) OnStoreEvent(e StoreEvent) { r.events = append(r.events, e) }

func TestSQLiteStore_RoundTrip(t *testing.T) {
	repo := repository.NewSQLitePreferenceRepo(testutil.NewTestDB(t))
	s := NewSQLiteStore(repo, nil)

	_, ok := s.Get("portfolio:dark")
	assert.False(t, ok)

	s.Set("portfolio:dark", "true")
	v, ok := s.Get("portfolio:dark")
	require.True(t, ok)
	assert.Equal(t, "true", v)
}

func TestSQLiteStore_MissingKeyIsNotReported(t *testing.T) {
	obs := &recordingObserver{}
	s := NewSQLiteStore(repository.NewSQLitePreferenceRepo(testutil.NewTestDB(t)), obs)

	_, ok := s.Get("nothing")
	assert.False(t, ok)
	assert.Empty(t, obs.events)
}

func TestSQLiteStore_NilRepoIsUnavailable(t *testing.T) {
	s := NewSQLiteStore(nil, nil)

	assert.NotPanics(t, func() { s.Set("portfolio:dark", "true") })
	_, ok := s.Get("portfolio:dark")
	assert.False(t, ok)

	var nilStore *SQLiteStore
	assert.NotPanics(t, func() { nilStore.Set("k", "v") })
	_, ok = nilStore.Get("k")
	assert.False(t, ok)
}

func TestSQLiteStore_ClosedDatabaseDegrades(t *testing.T) {
	obs := &recordingObserver{}
	s := NewSQLiteStore(repository.NewSQLitePreferenceRepo(testutil.NewClosedDB(t)), obs)

	_, ok := s.Get("portfolio:dark")
	assert.False(t, ok)
	assert.NotPanics(t, func() { s.Set("portfolio:dark", "false") })

	require.Len(t, obs.events, 2)
	assert.Equal(t, OpGet, obs.events[0].Op)
	assert.Error(t, obs.events[0].Err)
	assert.Equal(t, OpSet, obs.events[1].Op)
	assert.Error(t, obs.events[1].Err)
}

func TestSQLiteStore_FailedWriteKeepsOldValue(t *testing.T) {
	database := testutil.NewTestDB(t)
	require.NoError(t, repository.NewSQLitePreferenceRepo(database).Set(t.Context(), "portfolio:dark", "true"))

	failing := &testutil.FailOnNthExec{DBTX: database, Err: errors.New("disk full")}
	s := NewSQLiteStore(repository.NewSQLitePreferenceRepo(failing), nil)

	s.Set("portfolio:dark", "false")
	assert.Equal(t, 1, failing.Execs())

	v, ok := s.Get("portfolio:dark")
	require.True(t, ok)
	assert.Equal(t, "true", v)
}

func TestMemoryStore(t *testing.T) {
	m := NewMemoryStore()
	_, ok := m.Get("k")
	assert.False(t, ok)

	m.Set("k", "v1")
	m.Set("k", "v2")
	v, ok := m.Get("k")
	require.True(t, ok)
	assert.Equal(t, "v2", v)

	m.Delete("k")
	m.Delete("missing")
	_, ok = m.Get("k")
	assert.False(t, ok)
}

func TestSQLiteStore_Delete(t *testing.T) {
	obs := &recordingObserver{}
	s := NewSQLiteStore(repository.NewSQLitePreferenceRepo(testutil.NewTestDB(t)), obs)

	s.Set("portfolio:dark", "true")
	s.Delete("portfolio:dark")
	_, ok := s.Get("portfolio:dark")
	assert.False(t, ok)

	require.Len(t, obs.events, 2)
	assert.Equal(t, OpDelete, obs.events[1].Op)
	assert.NoError(t, obs.events[1].Err)
}

func TestSQLiteStore_FailedDeleteIsObserved(t *testing.T) {
	obs := &recordingObserver{}
	s := NewSQLiteStore(repository.NewSQLitePreferenceRepo(testutil.NewClosedDB(t)), obs)

	assert.NotPanics(t, func() { s.Delete("portfolio:dark") })
	require.Len(t, obs.events, 1)
	assert.Equal(t, OpDelete, obs.events[0].Op)
	assert.Error(t, obs.events[0].Err)
}

func TestUnavailable(t *testing.T) {
	s := Unavailable()
	s.Set("k", "v")
	s.Delete("k")
	_, ok := s.Get("k")
	assert.False(t, ok)
}

func TestUnavailableBecause_ReportsCause(t *testing.T) {
	obs := &recordingObserver{}
	cause := errors.New("finding home directory: $HOME is not defined")

	s := UnavailableBecause(cause, obs)

	s.Set("k", "v")
	_, ok := s.Get("k")
	assert.False(t, ok)
	require.Len(t, obs.events, 1)
	assert.Equal(t, OpOpen, obs.events[0].Op)
	assert.ErrorIs(t, obs.events[0].Err, cause)

	assert.NotPanics(t, func() { UnavailableBecause(cause, nil) })
}

func TestLogObserver_Format(t *testing.T) {
	var buf bytes.Buffer
	obs := NewLogObserver(&buf)

	obs.OnStoreEvent(StoreEvent{Op: OpSet, Key: "portfolio:dark", Value: "true"})
	obs.OnStoreEvent(StoreEvent{Op: OpGet, Key: "portfolio:dark", Err: errors.New("boom")})

	out := buf.String()
	assert.Contains(t, out, `pref_set session=`)
	assert.Contains(t, out, `key=portfolio:dark value="true" status=ok`)
	assert.Contains(t, out, `status=degraded err="boom"`)
	assert.Equal(t, 2, bytes.Count(buf.Bytes(), []byte("\n")))
}
