package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

func settingsPath() string {
	return filepath.Join(GetDatadir(), SettingsFile)
}

// readSettings merges the settings file of the datadir, if any, below the
// environment.
func readSettings() error {
	path := settingsPath()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	vip.SetConfigFile(path)
	return vip.ReadInConfig()
}

// SetSkipDataAndType persists the toggle in the settings file of the datadir
// and applies it to the running process.
func SetSkipDataAndType(skip bool) error {
	return writeSetting(SkipDataAndTypeKey, skip)
}

func writeSetting(key string, value interface{}) error {
	path := settingsPath()
	if err := makeDirectoryIfNotExists(filepath.Dir(path)); err != nil {
		return err
	}

	settingsVip := viper.New()
	settingsVip.SetConfigFile(path)
	if _, err := os.Stat(path); err == nil {
		if err := settingsVip.ReadInConfig(); err != nil {
			return err
		}
	}
	settingsVip.Set(key, value)
	if err := settingsVip.WriteConfigAs(path); err != nil {
		return err
	}

	vip.Set(key, value)
	return nil
}
