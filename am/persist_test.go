package am

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readTOML(t *testing.T, path string) map[string]interface{} {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	out := make(map[string]interface{})
	require.NoError(t, toml.Unmarshal(data, &out))
	return out
}

func TestSetValueInFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), UserConfigDir, UserConfigName)

	require.NoError(t, setValueInFile(path, "format.font_size", int64(16)))
	require.NoError(t, setValueInFile(path, "format.match_target", "destination"))

	written := readTOML(t, path)
	format := written["format"].(map[string]interface{})
	assert.EqualValues(t, 16, format["font_size"])
	assert.Equal(t, "destination", format["match_target"])

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, 16.0, cfg.Format.FontSize)

	// Second write rotated the first version into .back1
	_, err = os.Stat(path + ".back1")
	assert.NoError(t, err)
}

func TestSetValueInFileRejects(t *testing.T) {
	path := filepath.Join(t.TempDir(), UserConfigName)

	err := setValueInFile(path, "format.nope", "x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown configuration key")

	err = setValueInFile(path, "format", "x")
	require.Error(t, err, "sections are not settable")

	err = setValueInFile(path, "format.font_size", int64(100))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "format.font_size must be <= 60")

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr), "invalid values never reach the file")
}

func TestCreateBackupRotation(t *testing.T) {
	path := filepath.Join(t.TempDir(), UserConfigName)
	require.NoError(t, createBackup(path), "missing file has nothing to back up")

	for i := 1; i <= 4; i++ {
		require.NoError(t, os.WriteFile(path, []byte{byte('0' + i)}, DefaultFilePermissions))
		require.NoError(t, createBackup(path))
	}

	for suffix, want := range map[string]string{".back1": "4", ".back2": "3", ".back3": "2"} {
		data, err := os.ReadFile(path + suffix)
		require.NoError(t, err)
		assert.Equal(t, want, string(data), suffix)
	}
}

func TestParseScalar(t *testing.T) {
	assert.Equal(t, true, parseScalar("true"))
	assert.Equal(t, int64(1), parseScalar("1"))
	assert.Equal(t, 12.5, parseScalar("12.5"))
	assert.Equal(t, "#FF0000", parseScalar("#FF0000"))
}

func TestIsBackupFile(t *testing.T) {
	assert.True(t, isBackupFile("/x/am.toml.back2"))
	assert.True(t, isBackupFile("/x/.am-1234.toml"))
	assert.False(t, isBackupFile("/x/am.toml"))
	assert.False(t, isBackupFile("/x/sankeyfmt.toml"))
}

func TestNewConfigWatcherErrors(t *testing.T) {
	_, err := NewConfigWatcher()
	assert.Error(t, err)

	_, err = NewConfigWatcher(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}
