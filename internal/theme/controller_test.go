package theme

import (
	"testing"

	"github.com/dgilligan/folio/internal/domain"
	"github.com/dgilligan/folio/internal/preference"
	"github.com/dgilligan/folio/internal/repository"
	"github.com/dgilligan/folio/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_StoredValueWins(t *testing.T) {
	cases := []struct {
		stored string
		signal bool
		want   domain.ThemePreference
	}{
		{"true", false, domain.ThemeDark},
		{"false", true, domain.ThemeLight},
	}
	for _, tc := range cases {
		store := preference.NewMemoryStore()
		store.Set(PreferenceKey, tc.stored)

		c := New(store, StaticSignal(tc.signal))
		assert.Equal(t, tc.want, c.Current(), "stored=%s", tc.stored)
		assert.Equal(t, SourceStored, c.Source())
	}
}

func TestNew_FallsBackToSignal(t *testing.T) {
	t.Run("signal dark", func(t *testing.T) {
		c := New(preference.NewMemoryStore(), StaticSignal(true))
		assert.Equal(t, domain.ThemeDark, c.Current())
		assert.Equal(t, SourceSystem, c.Source())
	})
	t.Run("signal light", func(t *testing.T) {
		c := New(preference.NewMemoryStore(), StaticSignal(false))
		assert.Equal(t, domain.ThemeLight, c.Current())
	})
	t.Run("signal absent", func(t *testing.T) {
		c := New(preference.NewMemoryStore(), nil)
		assert.Equal(t, domain.ThemeLight, c.Current())
		assert.Equal(t, SourceDefault, c.Source())
	})
}

func TestNew_InvalidStoredValueIgnored(t *testing.T) {
	for _, raw := range []string{"", "1", "TRUE", "dark", " true"} {
		store := preference.NewMemoryStore()
		store.Set(PreferenceKey, raw)

		c := New(store, StaticSignal(true))
		assert.Equal(t, domain.ThemeDark, c.Current(), "raw=%q", raw)
		assert.Equal(t, SourceSystem, c.Source(), "raw=%q", raw)
	}
}

func TestNew_DoesNotPersistResolvedValue(t *testing.T) {
	store := preference.NewMemoryStore()
	New(store, StaticSignal(true))

	_, ok := store.Get(PreferenceKey)
	assert.False(t, ok, "startup resolution must not write")
}

func TestNew_UnavailableStorage(t *testing.T) {
	c := New(nil, nil)
	assert.Equal(t, domain.ThemeLight, c.Current())
	assert.NotPanics(t, func() { c.Toggle() })
	assert.Equal(t, domain.ThemeDark, c.Current())

	c = New(preference.Unavailable(), StaticSignal(true))
	assert.Equal(t, domain.ThemeDark, c.Current())
}

func TestToggle_PersistsBooleanString(t *testing.T) {
	store := preference.NewMemoryStore()
	c := New(store, StaticSignal(false))

	assert.Equal(t, domain.ThemeDark, c.Toggle())
	v, _ := store.Get(PreferenceKey)
	assert.Equal(t, "true", v)

	assert.Equal(t, domain.ThemeLight, c.Toggle())
	v, _ = store.Get(PreferenceKey)
	assert.Equal(t, "false", v)
}

func TestToggle_NotifiesListeners(t *testing.T) {
	c := New(preference.NewMemoryStore(), nil)
	var seen []domain.ThemePreference
	c.OnChange(func(p domain.ThemePreference) { seen = append(seen, p) })

	c.Toggle()
	c.Toggle()
	assert.Equal(t, []domain.ThemePreference{domain.ThemeDark, domain.ThemeLight}, seen)
}

// Any toggle sequence must be observed by a fresh controller on the same
// storage, including across a real database reopen.
func TestToggle_RoundTripsAcrossReload(t *testing.T) {
	database := testutil.NewTestDB(t)
	newStore := func() preference.Store {
		return preference.NewSQLiteStore(repository.NewSQLitePreferenceRepo(database), nil)
	}

	for n := 1; n <= 5; n++ {
		first := New(newStore(), StaticSignal(false))
		var last domain.ThemePreference
		for i := 0; i < n; i++ {
			last = first.Toggle()
		}

		reloaded := New(newStore(), StaticSignal(!last.IsDark()))
		require.Equal(t, last, reloaded.Current(), "after %d toggles", n)
		assert.Equal(t, SourceStored, reloaded.Source())
	}
}

func TestReset_FallsBackToSignal(t *testing.T) {
	store := preference.NewMemoryStore()
	c := New(store, StaticSignal(false))
	var seen []domain.ThemePreference
	c.OnChange(func(p domain.ThemePreference) { seen = append(seen, p) })

	c.Toggle()
	require.Equal(t, SourceStored, c.Source())

	assert.Equal(t, domain.ThemeLight, c.Reset())
	assert.Equal(t, SourceSystem, c.Source())
	_, ok := store.Get(PreferenceKey)
	assert.False(t, ok, "reset must remove the stored value")
	assert.Equal(t, []domain.ThemePreference{domain.ThemeDark, domain.ThemeLight}, seen)

	// Nothing stored and nothing changes: no notification.
	c.Reset()
	assert.Len(t, seen, 2)
}

func TestReset_AcrossReload(t *testing.T) {
	database := testutil.NewTestDB(t)
	store := preference.NewSQLiteStore(repository.NewSQLitePreferenceRepo(database), nil)

	first := New(store, StaticSignal(true))
	first.Toggle()
	first.Reset()

	reloaded := New(preference.NewSQLiteStore(repository.NewSQLitePreferenceRepo(database), nil), StaticSignal(true))
	assert.Equal(t, domain.ThemeDark, reloaded.Current())
	assert.Equal(t, SourceSystem, reloaded.Source())
}

func TestOverrideSignal(t *testing.T) {
	yes, no := true, false

	assert.True(t, OverrideSignal{Value: &yes, Fallback: StaticSignal(false)}.PrefersDark())
	assert.False(t, OverrideSignal{Value: &no, Fallback: StaticSignal(true)}.PrefersDark())
	assert.True(t, OverrideSignal{Fallback: StaticSignal(true)}.PrefersDark())
	assert.False(t, OverrideSignal{}.PrefersDark())
}

func TestSignalFunc(t *testing.T) {
	calls := 0
	s := SignalFunc(func() bool { calls++; return true })

	c := New(preference.NewMemoryStore(), s)
	assert.True(t, c.Dark())
	c.Current()
	assert.Equal(t, 1, calls, "signal is queried once at startup")
}

func TestSignalFunc_NotQueriedWhenStored(t *testing.T) {
	store := preference.NewMemoryStore()
	store.Set(PreferenceKey, "false")
	calls := 0

	New(store, SignalFunc(func() bool { calls++; return true }))
	assert.Zero(t, calls)
}

func TestTerminalSignal_NonTerminalIsLight(t *testing.T) {
	assert.False(t, TerminalSignal{}.PrefersDark())

	f, err := openTempFile(t)
	require.NoError(t, err)
	assert.False(t, TerminalSignal{Out: f}.PrefersDark())
}
