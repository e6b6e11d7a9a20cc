package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krisalay/memo-cache/config"
)

func TestDefault(t *testing.T) {
	cfg := config.Default()
	assert.Equal(t, 1000, cfg.MaxSize)
	assert.Equal(t, time.Hour, cfg.DefaultTTL)
	assert.NoError(t, cfg.Validate())
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		want    config.Config
		wantErr bool
	}{
		{
			name: "both keys",
			doc:  "max_size: 50\ndefault_ttl: 90s\n",
			want: config.Config{MaxSize: 50, DefaultTTL: 90 * time.Second},
		},
		{
			name: "omitted key keeps default",
			doc:  "max_size: 5\n",
			want: config.Config{MaxSize: 5, DefaultTTL: time.Hour},
		},
		{
			name: "empty document",
			doc:  "",
			want: config.Default(),
		},
		{
			name:    "unknown key",
			doc:     "max_size: 5\nmax_szie: 6\n",
			wantErr: true,
		},
		{
			name:    "zero max size",
			doc:     "max_size: 0\n",
			wantErr: true,
		},
		{
			name:    "negative ttl",
			doc:     "default_ttl: -5s\n",
			wantErr: true,
		},
		{
			name:    "malformed ttl",
			doc:     "default_ttl: soon\n",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := config.Load(strings.NewReader(tt.doc))
			if tt.wantErr {
				assert.ErrorIs(t, err, config.ErrInvalidConfig)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg)
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.yaml")
	require.NoError(t, os.WriteFile(path, []byte("max_size: 3\ndefault_ttl: 2m\n"), 0o600))

	cfg, err := config.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, config.Config{MaxSize: 3, DefaultTTL: 2 * time.Minute}, cfg)

	_, err = config.LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
