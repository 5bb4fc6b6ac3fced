package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/lazharichir/baccarat/baccarat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envOf(vars map[string]string) func(string) string {
	return func(key string) string { return vars[key] }
}

func TestFromEnv_Defaults(t *testing.T) {
	cfg, err := FromEnv(envOf(nil))
	require.NoError(t, err)

	assert.Equal(t, 6, cfg.Decks)
	assert.Equal(t, 6, cfg.MinCards)
	assert.Equal(t, baccarat.LiteralPolicy, cfg.Policy)
	assert.False(t, cfg.HasSeed)
	assert.False(t, cfg.Verbose)
	assert.Zero(t, cfg.MaxRounds)
}

func TestFromEnv_Overrides(t *testing.T) {
	cfg, err := FromEnv(envOf(map[string]string{
		"BACCARAT_DECKS":       "8",
		"BACCARAT_MIN_CARDS":   "10",
		"BACCARAT_SEED":        "-42",
		"BACCARAT_BANKER_RULE": "standard",
		"BACCARAT_MAX_ROUNDS":  "25",
		"BACCARAT_VERBOSE":     "true",
	}))
	require.NoError(t, err)

	assert.Equal(t, &Config{
		Decks:     8,
		MinCards:  10,
		Seed:      -42,
		HasSeed:   true,
		Policy:    baccarat.StandardPolicy,
		MaxRounds: 25,
		Verbose:   true,
	}, cfg)
}

func TestFromEnv_Invalid(t *testing.T) {
	tests := map[string]string{
		"BACCARAT_DECKS":       "six",
		"BACCARAT_MIN_CARDS":   "1.5",
		"BACCARAT_SEED":        "abc",
		"BACCARAT_BANKER_RULE": "macau",
		"BACCARAT_MAX_ROUNDS":  "-1",
		"BACCARAT_VERBOSE":     "loud",
	}

	for key, value := range tests {
		t.Run(key, func(t *testing.T) {
			_, err := FromEnv(envOf(map[string]string{key: value}))
			require.Error(t, err)
			assert.Contains(t, err.Error(), key)
		})
	}
}

func TestLoad_ReadsDotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("BACCARAT_DECKS=8\nBACCARAT_BANKER_RULE=standard\n"), 0o644))

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		os.Chdir(wd)
		os.Unsetenv("BACCARAT_DECKS")
		os.Unsetenv("BACCARAT_BANKER_RULE")
	})

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 8, cfg.Decks)
	assert.Equal(t, baccarat.StandardPolicy, cfg.Policy)
}
