package main

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"codeberg.org/herostep/herostep"
)

// DataDir returns the data directory location, creating it if needed.
func DataDir() (string, error) {
	var xdg string
	if runtime.GOOS == "windows" {
		xdg = os.Getenv("LOCALAPPDATA")
	} else {
		xdg = os.Getenv("XDG_DATA_HOME")
	}
	if xdg == "" {
		xdg = filepath.Join(os.Getenv("HOME"), ".local", "share")
	}
	dataDir := filepath.Join(xdg, "herostep")
	_, err := os.Stat(dataDir)
	if err != nil {
		err = os.MkdirAll(dataDir, 0755)
		if err != nil {
			return "", fmt.Errorf("building data directory: %w", err)
		}
	}
	return dataDir, nil
}

// SaveFile writes data to the given file in the data directory. It writes a
// temporary file first, so that an interrupted write never leaves a
// truncated file behind.
func SaveFile(filename string, data []byte) error {
	dataDir, err := DataDir()
	if err != nil {
		return err
	}
	tempFile := filepath.Join(dataDir, "temp-"+filename)
	f, err := os.OpenFile(tempFile, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return err
	}
	if err := f.Sync(); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(tempFile, filepath.Join(dataDir, filename))
}

// SaveConfig saves the movement options to the config file.
func SaveConfig(c herostep.Config) error {
	data, err := c.ConfigSave()
	if err != nil {
		return err
	}
	return SaveFile("config", data)
}

// LoadConfig loads the movement options from the config file. It reports
// false when there is no usable config file.
func LoadConfig() (herostep.Config, bool, error) {
	def := herostep.DefaultConfig()
	dataDir, err := DataDir()
	if err != nil {
		return def, false, err
	}
	configFile := filepath.Join(dataDir, "config")
	if _, err := os.Stat(configFile); err != nil {
		// no config file yet
		return def, false, nil
	}
	data, err := os.ReadFile(configFile)
	if err != nil {
		return def, false, err
	}
	c, err := herostep.DecodeConfigSave(data)
	if err != nil {
		return def, false, err
	}
	if c.Version != def.Version {
		herostep.Logger.Warn("ignoring incompatible old config")
		if err := RemoveDataFile("config"); err != nil {
			herostep.Logger.WithError(err).Warn("removing old config")
		}
		return def, false, nil
	}
	return *c, true, nil
}

// RemoveDataFile removes the given file in the data directory, if it
// exists.
func RemoveDataFile(file string) error {
	dataDir, err := DataDir()
	if err != nil {
		return err
	}
	dataFile := filepath.Join(dataDir, file)
	if _, err := os.Stat(dataFile); err == nil {
		return os.Remove(dataFile)
	}
	return nil
}
