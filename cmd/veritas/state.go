// cmd/veritas/state.go
package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// State holds runtime counters persisted across restarts
type State struct {
	StartupTime   time.Time        `json:"startup_time"`
	Version       string           `json:"version"`
	VerifyCount   int64            `json:"verify_count"`
	StageCounts   map[string]int64 `json:"stage_counts"`
	LastError     string           `json:"last_error,omitempty"`
	LastErrorTime time.Time        `json:"last_error_time,omitempty"`
}

var (
	appState   *State
	stateMutex sync.RWMutex
	statePath  = defaultStatePath
)

// InitState loads persisted state or starts fresh
func InitState(path string) error {
	stateMutex.Lock()
	defer stateMutex.Unlock()

	if path != "" {
		statePath = path
	}

	state := &State{
		StartupTime: time.Now(),
		Version:     VERSION,
		StageCounts: make(map[string]int64),
	}

	data, err := os.ReadFile(statePath)
	if err == nil {
		var loaded State
		if err := json.Unmarshal(data, &loaded); err == nil {
			state.VerifyCount = loaded.VerifyCount
			if loaded.StageCounts != nil {
				state.StageCounts = loaded.StageCounts
			}
		}
	} else if !os.IsNotExist(err) {
		return err
	}

	appState = state
	return saveStateLocked()
}

// GetState returns a copy of the current state
func GetState() State {
	stateMutex.RLock()
	defer stateMutex.RUnlock()

	if appState == nil {
		return State{StartupTime: time.Now(), Version: VERSION}
	}

	snapshot := *appState
	snapshot.StageCounts = make(map[string]int64, len(appState.StageCounts))
	for k, v := range appState.StageCounts {
		snapshot.StageCounts[k] = v
	}
	return snapshot
}

// RecordVerification bumps the counters for a completed verification
func RecordVerification(method string) {
	stateMutex.Lock()
	defer stateMutex.Unlock()

	if appState == nil {
		return
	}
	appState.VerifyCount++
	if appState.StageCounts == nil {
		appState.StageCounts = make(map[string]int64)
	}
	appState.StageCounts[method]++
}

// RecordError notes the most recent error for the status endpoint
func RecordError(err error) {
	if err == nil {
		return
	}

	stateMutex.Lock()
	defer stateMutex.Unlock()

	if appState == nil {
		return
	}
	appState.LastError = err.Error()
	appState.LastErrorTime = time.Now()
}

// SaveState persists the current state to disk; run periodically and at
// shutdown
func SaveState() error {
	stateMutex.RLock()
	defer stateMutex.RUnlock()
	return saveStateLocked()
}

func saveStateLocked() error {
	if appState == nil {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(statePath), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(appState, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(statePath, data, 0644)
}
