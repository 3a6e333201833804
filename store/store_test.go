package store_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/store"
	"github.com/katalvlaran/gridpath/store/storetest"
)

func TestCodec_RoundTrip(t *testing.T) {
	rec := storetest.Sample()
	data, err := store.Marshal(rec)
	require.NoError(t, err)

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.JSONEq(t, `[0,0]`, string(raw["start"]))
	assert.JSONEq(t, `[[0,0,8,0,3],[0,8,0,0,1],[8,0,0,0,3],[8,0,8,8,7]]`, string(raw["edges"]))

	got, err := store.Unmarshal(data)
	require.NoError(t, err)
	storetest.RequireSameRecord(t, rec, got)
}

func TestCodec_Malformed(t *testing.T) {
	cases := map[string]string{
		"syntax":          `{"nodes":`,
		"no nodes":        `{"nodes":[],"edges":[],"start":[0,0],"end":[0,0]}`,
		"dangling edge":   `{"nodes":[[0,0]],"edges":[[0,0,8,0,1]],"start":[0,0],"end":[0,0]}`,
		"zero weight":     `{"nodes":[[0,0],[8,0]],"edges":[[0,0,8,0,0]],"start":[0,0],"end":[8,0]}`,
		"negative weight": `{"nodes":[[0,0],[8,0]],"edges":[[0,0,8,0,-4]],"start":[0,0],"end":[8,0]}`,
		"foreign end":     `{"nodes":[[0,0],[8,0]],"edges":[],"start":[0,0],"end":[9,9]}`,
		"string coords":   `{"nodes":[["a","b"]],"edges":[],"start":[0,0],"end":[0,0]}`,
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := store.Unmarshal([]byte(in))
			assert.ErrorIs(t, err, store.ErrMalformed)
		})
	}

	_, err := store.Marshal(store.Record{})
	assert.ErrorIs(t, err, store.ErrMalformed)
}

func TestValidateKey(t *testing.T) {
	assert.NoError(t, store.ValidateKey("run-1"))
	assert.NoError(t, store.ValidateKey(store.NewKey()))
	for _, k := range []string{"", ".", "..", "a/b", `a\b`} {
		assert.ErrorIs(t, store.ValidateKey(k), store.ErrInvalidKey, k)
	}
	assert.NotEqual(t, store.NewKey(), store.NewKey())
}
