package am

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/teranos/sankeyfmt/errors"
	"github.com/teranos/sankeyfmt/logger"
)

// createBackup creates rotating backups (.back1, .back2, .back3) before modifying config
func createBackup(configPath string) error {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil // No file to backup
	}

	back3 := configPath + ".back3"
	back2 := configPath + ".back2"
	back1 := configPath + ".back1"

	if err := os.Remove(back3); err != nil && !os.IsNotExist(err) {
		logger.Warnw("Failed to delete old config backup", logger.FieldFile, back3, logger.FieldError, err)
	}

	if _, err := os.Stat(back2); err == nil {
		if err := os.Rename(back2, back3); err != nil {
			return errors.Wrap(err, "failed to rotate .back2 to .back3")
		}
	}

	if _, err := os.Stat(back1); err == nil {
		if err := os.Rename(back1, back2); err != nil {
			return errors.Wrap(err, "failed to rotate .back1 to .back2")
		}
	}

	content, err := os.ReadFile(configPath)
	if err != nil {
		return errors.Wrap(err, "failed to read config for backup")
	}

	if err := os.WriteFile(back1, content, DefaultFilePermissions); err != nil {
		return errors.Wrap(err, "failed to create .back1")
	}

	return nil
}

// SetUserValue writes key = raw into ~/.sankeyfmt/am.toml, keeping rotating backups.
// raw is parsed as a bool or number when it looks like one.
func SetUserValue(key, raw string) error {
	path := UserConfigPath()
	if path == "" {
		return errors.New("could not determine home directory")
	}
	if err := setValueInFile(path, key, parseScalar(raw)); err != nil {
		return err
	}
	Reset()
	return nil
}

// setValueInFile updates one dotted key in the TOML file at path and validates the result
// before replacing the file
func setValueInFile(path, key string, value interface{}) error {
	if !knownKey(key) {
		return errors.WithHint(
			errors.Newf("unknown configuration key %q", key),
			"run 'sankeyfmt am show' to list keys",
		)
	}

	if err := os.MkdirAll(filepath.Dir(path), DefaultDirPermissions); err != nil {
		return errors.Wrap(err, "failed to create config directory")
	}

	config := make(map[string]interface{})
	if data, err := os.ReadFile(path); err == nil {
		if err := toml.Unmarshal(data, &config); err != nil {
			return errors.Wrapf(err, "failed to parse %s", path)
		}
	}
	setNested(config, strings.Split(key, "."), value)

	data, err := toml.Marshal(config)
	if err != nil {
		return errors.Wrap(err, "failed to marshal config")
	}

	// Validate the candidate before touching the real file
	candidate, err := os.CreateTemp(filepath.Dir(path), ".am-*.toml")
	if err != nil {
		return errors.Wrap(err, "failed to stage config")
	}
	defer os.Remove(candidate.Name())
	if _, err := candidate.Write(data); err != nil {
		candidate.Close()
		return errors.Wrap(err, "failed to stage config")
	}
	candidate.Close()

	cfg, err := LoadFromFile(candidate.Name())
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return errors.Wrapf(err, "refusing to write %s", key)
	}

	if err := createBackup(path); err != nil {
		return errors.Wrap(err, "failed to create backup")
	}

	// Mark this as our own write to prevent reload loops
	if w := GetGlobalWatcher(); w != nil {
		w.MarkOwnWrite()
	}

	if err := os.WriteFile(path, data, DefaultFilePermissions); err != nil {
		return errors.Wrap(err, "failed to write user config")
	}
	return nil
}

func setNested(config map[string]interface{}, path []string, value interface{}) {
	if len(path) == 1 {
		config[path[0]] = value
		return
	}
	child, ok := config[path[0]].(map[string]interface{})
	if !ok {
		child = make(map[string]interface{})
		config[path[0]] = child
	}
	setNested(child, path[1:], value)
}

// knownKey reports whether key names a leaf setting
func knownKey(key string) bool {
	v := newDefaultsViper()
	if !v.IsSet(key) {
		return false
	}
	_, section := v.Get(key).(map[string]interface{})
	return !section
}

func parseScalar(raw string) interface{} {
	switch raw {
	case "true":
		return true
	case "false":
		return false
	}
	if i, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		return f
	}
	return raw
}
