package prefs_test

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/card-ledger/pkg/prefs"
)

type onboarding struct {
	Completed bool     `json:"completed"`
	Dismissed []string `json:"dismissed"`
}

func newService(t *testing.T) *prefs.Service {
	t.Helper()
	fixed := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	return prefs.NewService(prefs.NewMemoryStore(prefs.WithNowFunc(func() time.Time { return fixed })))
}

func TestValidateKey(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		key     string
		wantErr bool
	}{
		{name: "simple", key: "onboarding"},
		{name: "dotted", key: "tips.dismissed"},
		{name: "dashes and digits", key: "alerts-cache-v2"},
		{name: "empty", key: "", wantErr: true},
		{name: "uppercase", key: "Onboarding", wantErr: true},
		{name: "slash", key: "a/b", wantErr: true},
		{name: "too long", key: strings.Repeat("k", 129), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := prefs.ValidateKey(tt.key)
			if tt.wantErr {
				require.ErrorIs(t, err, prefs.ErrInvalidKey)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestService_SetGetDelete(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc := newService(t)

	require.NoError(t, svc.Set(ctx, "u1", "theme", json.RawMessage(`"dark"`)))

	p, err := svc.Get(ctx, "u1", "theme")
	require.NoError(t, err)
	assert.JSONEq(t, `"dark"`, string(p.Value))
	assert.Equal(t, "u1", p.UserID)
	assert.Equal(t, 2026, p.UpdatedAt.Year())

	_, err = svc.Get(ctx, "u2", "theme")
	require.ErrorIs(t, err, prefs.ErrNotFound)

	require.NoError(t, svc.Delete(ctx, "u1", "theme"))
	_, err = svc.Get(ctx, "u1", "theme")
	require.ErrorIs(t, err, prefs.ErrNotFound)

	// Deleting again is fine.
	require.NoError(t, svc.Delete(ctx, "u1", "theme"))
}

func TestService_SetRejectsBadValues(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc := newService(t)

	err := svc.Set(ctx, "u1", "theme", json.RawMessage(`{not json`))
	require.ErrorIs(t, err, prefs.ErrInvalidValue)

	big := json.RawMessage(`"` + strings.Repeat("x", prefs.MaxValueBytes) + `"`)
	err = svc.Set(ctx, "u1", "theme", big)
	require.ErrorIs(t, err, prefs.ErrInvalidValue)

	err = svc.Set(ctx, "u1", "Bad Key", json.RawMessage(`1`))
	require.ErrorIs(t, err, prefs.ErrInvalidKey)
}

func TestService_List(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc := newService(t)

	require.NoError(t, svc.Set(ctx, "u1", "b", json.RawMessage(`2`)))
	require.NoError(t, svc.Set(ctx, "u1", "a", json.RawMessage(`1`)))
	require.NoError(t, svc.Set(ctx, "u2", "c", json.RawMessage(`3`)))

	got, err := svc.List(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].Key)
	assert.Equal(t, "b", got[1].Key)

	empty, err := svc.List(ctx, "nobody")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestLoadSave(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc := newService(t)

	var got onboarding
	ok, err := prefs.Load(ctx, svc, "u1", "onboarding", &got)
	require.NoError(t, err)
	assert.False(t, ok)

	want := onboarding{Completed: true, Dismissed: []string{"import-tip"}}
	require.NoError(t, prefs.Save(ctx, svc, "u1", "onboarding", want))

	ok, err = prefs.Load(ctx, svc, "u1", "onboarding", &got)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, want, got)
}

func TestMemoryStore_ReturnsCopies(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := prefs.NewMemoryStore()
	value := json.RawMessage(`[1,2,3]`)
	require.NoError(t, store.SetPreference(ctx, "u1", "k", value))

	value[1] = '9'
	p, err := store.GetPreference(ctx, "u1", "k")
	require.NoError(t, err)
	assert.Equal(t, `[1,2,3]`, string(p.Value))
}
