package config

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// Prefs are remembered between runs. Session results are never stored here.
type Prefs struct {
	LastExportDir string `yaml:"lastExportDir"`
}

const (
	prefsObject   = "prefs"
	prefsProperty = "global"
)

// PrefsStore loads and saves Prefs through gdata.
// A nil manager keeps preferences in memory only.
type PrefsStore struct {
	manager *gdata.Manager
	prefs   Prefs
}

// OpenPrefsManager opens the gdata manager for appName, returning nil when
// the platform storage is unavailable.
func OpenPrefsManager(appName string) *gdata.Manager {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		log.Printf("[Prefs] Warning: storage unavailable: %v (preferences kept in memory)", err)
		return nil
	}
	return m
}

// NewPrefsStore creates a store and loads any saved preferences.
func NewPrefsStore(manager *gdata.Manager) *PrefsStore {
	ps := &PrefsStore{manager: manager}
	if err := ps.Load(); err != nil {
		log.Printf("[Prefs] Warning: %v (using defaults)", err)
	}
	return ps
}

// Load reads preferences from storage. Missing data leaves the zero value.
func (ps *PrefsStore) Load() error {
	ps.prefs = Prefs{}
	if ps.manager == nil {
		return nil
	}
	if !ps.manager.ObjectPropExists(prefsObject, prefsProperty) {
		return nil
	}
	data, err := ps.manager.LoadObjectProp(prefsObject, prefsProperty)
	if err != nil {
		return fmt.Errorf("failed to load prefs: %w", err)
	}
	var loaded Prefs
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return fmt.Errorf("failed to unmarshal prefs: %w", err)
	}
	ps.prefs = loaded
	return nil
}

// Save writes preferences to storage.
func (ps *PrefsStore) Save() error {
	if ps.manager == nil {
		return nil
	}
	data, err := yaml.Marshal(ps.prefs)
	if err != nil {
		return fmt.Errorf("failed to marshal prefs: %w", err)
	}
	if err := ps.manager.SaveObjectProp(prefsObject, prefsProperty, data); err != nil {
		return fmt.Errorf("failed to save prefs: %w", err)
	}
	return nil
}

func (ps *PrefsStore) LastExportDir() string { return ps.prefs.LastExportDir }

// RememberExportDir records dir and persists it immediately.
func (ps *PrefsStore) RememberExportDir(dir string) error {
	ps.prefs.LastExportDir = dir
	return ps.Save()
}
