package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 5000, cfg.Port)
	assert.Equal(t, "users.json", cfg.UsersFile)
	assert.Equal(t, []int{5, 50, 5, 10, 10, 10, 10}, cfg.SpinWeights)
	assert.Equal(t, 35, cfg.TeamCap)
}

func TestLoadCustomWeights(t *testing.T) {
	t.Setenv("SPIN_WEIGHTS", "6, 48,6,10,10,10,10")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, []int{6, 48, 6, 10, 10, 10, 10}, cfg.SpinWeights)
}

func TestLoadRejectsBadWeights(t *testing.T) {
	t.Setenv("SPIN_WEIGHTS", "5,fifty,5")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadRejectsZeroWeightTable(t *testing.T) {
	t.Setenv("SPIN_WEIGHTS", "0,0,0")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadRejectsUnknownStorageType(t *testing.T) {
	t.Setenv("STORAGE_TYPE", "cassandra")

	_, err := Load()
	assert.Error(t, err)
}

func TestNormalizedDatabaseURL(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "empty stays empty",
			in:   "",
			want: "",
		},
		{
			name: "postgres url gains sslmode",
			in:   "postgres://u:p@host:5432/db",
			want: "postgres://u:p@host:5432/db?sslmode=require",
		},
		{
			name: "postgresql scheme gains sslmode",
			in:   "postgresql://u:p@host/db",
			want: "postgresql://u:p@host/db?sslmode=require",
		},
		{
			name: "existing sslmode untouched",
			in:   "postgres://u:p@host/db?sslmode=disable",
			want: "postgres://u:p@host/db?sslmode=disable",
		},
		{
			name: "non-postgres url untouched",
			in:   "mysql://u:p@host/db",
			want: "mysql://u:p@host/db",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Config{DatabaseURL: tt.in}
			assert.Equal(t, tt.want, cfg.NormalizedDatabaseURL())
		})
	}
}
