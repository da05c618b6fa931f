package experiments

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultProfiles(t *testing.T) {
	profiles := DefaultProfiles()

	require.Len(t, profiles, 4)
	names := make(map[string]bool)
	for _, p := range profiles {
		names[p.Name] = true
		require.GreaterOrEqual(t, p.BuyStreet, 0.0)
		require.LessOrEqual(t, p.BuyStreet, 1.0)
	}
	require.Len(t, names, 4, "profile names must be distinct")
}

func TestLoadProfiles(t *testing.T) {
	t.Run("valid file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "profiles.yaml")
		data := `
- name: alpha
  buy_street: 0.9
  buy_railroad: 0.8
  buy_utility: 0.7
  roll_double_in_jail: 0.6
  use_jail_free_card: 0.5
  min_cash: 150
  min_cash_to_unmortgage: 250
- name: beta
  buy_street: 0.4
`
		require.NoError(t, os.WriteFile(path, []byte(data), 0644))

		profiles, err := LoadProfiles(path)

		require.NoError(t, err)
		require.Len(t, profiles, 2)
		require.Equal(t, "alpha", profiles[0].Name)
		require.Equal(t, 0.9, profiles[0].BuyStreet)
		require.Equal(t, 150, profiles[0].MinCash)
		require.Equal(t, 0.4, profiles[1].BuyStreet)
		require.Equal(t, 0, profiles[1].MinCash, "omitted fields default to zero")
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadProfiles(filepath.Join(t.TempDir(), "missing.yaml"))
		require.Error(t, err)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("{not yaml"), 0644))

		_, err := LoadProfiles(path)
		require.Error(t, err)
	})

	t.Run("too few players", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "one.yaml")
		require.NoError(t, os.WriteFile(path, []byte("- name: solo\n"), 0644))

		_, err := LoadProfiles(path)
		require.Error(t, err)
	})
}
