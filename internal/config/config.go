// Package config persists the commit time window in an ini file under the
// application config directory.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/inovacc/gitpace/internal/application"
	"github.com/inovacc/gitpace/internal/schedule"
	"gopkg.in/ini.v1"
)

const configFileName = "config.ini"

type windowSection struct {
	StartTime string `ini:"start_time"`
	EndTime   string `ini:"end_time"`
}

// Store reads and writes the configured window. Dir is the directory
// holding the config file.
type Store struct {
	Dir string
}

// DefaultStore returns a Store rooted at the platform config directory.
func DefaultStore() (*Store, error) {
	dir, err := application.GetApplicationDirectory()
	if err != nil {
		return nil, err
	}

	return &Store{Dir: dir}, nil
}

func (s *Store) path() string {
	return filepath.Join(s.Dir, configFileName)
}

// Load returns the stored window, or the default 00:00 - 02:00 window when
// no configuration exists yet.
func (s *Store) Load() (schedule.Window, error) {
	if _, err := os.Stat(s.path()); os.IsNotExist(err) {
		return schedule.DefaultWindow, nil
	}

	cfg, err := ini.Load(s.path())
	if err != nil {
		return schedule.Window{}, fmt.Errorf("failed to read config: %w", err)
	}

	var sec windowSection
	if err := cfg.Section("window").MapTo(&sec); err != nil {
		return schedule.Window{}, fmt.Errorf("failed to read config: %w", err)
	}

	if sec.StartTime == "" || sec.EndTime == "" {
		return schedule.DefaultWindow, nil
	}

	w, err := schedule.ParseWindow(sec.StartTime, sec.EndTime)
	if err != nil {
		return schedule.Window{}, fmt.Errorf("invalid stored window: %w", err)
	}

	return w, nil
}

// Save writes a validated window to disk, creating the directory if needed.
func (s *Store) Save(w schedule.Window) error {
	if err := w.Validate(); err != nil {
		return err
	}

	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	cfg := ini.Empty()

	sec := windowSection{
		StartTime: w.StartString(),
		EndTime:   w.EndString(),
	}

	if err := cfg.Section("window").ReflectFrom(&sec); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	if err := cfg.SaveTo(s.path()); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}
