/*
Package storage provides tests for the resolution audit log.
*/
package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// TestInit verifies database initialization and schema creation.
func TestInit(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store := NewStorageAt(dbPath)

	if err := store.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	// Verify database file exists
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file not created")
	}

	store.Close()
}

// TestRecordResolution verifies recording and retrieving events.
func TestRecordResolution(t *testing.T) {
	tmpDir := t.TempDir()
	store := NewStorageAt(filepath.Join(tmpDir, "test.db"))

	if err := store.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	defer store.Close()

	event := ResolutionEvent{
		Node:       "agent-1",
		ToolKey:    "jdk@jdk8",
		Home:       "/opt/jdk8",
		Overridden: true,
		Timestamp:  time.Now(),
	}

	if err := store.RecordResolution(event); err != nil {
		t.Fatalf("RecordResolution failed: %v", err)
	}

	history, err := store.GetResolutionHistory("agent-1", time.Now().Add(-1*time.Hour))
	if err != nil {
		t.Fatalf("GetResolutionHistory failed: %v", err)
	}

	if len(history) != 1 {
		t.Fatalf("Expected 1 event, got %d", len(history))
	}
	if history[0].ToolKey != "jdk@jdk8" {
		t.Errorf("Expected tool_key 'jdk@jdk8', got '%s'", history[0].ToolKey)
	}
	if !history[0].Overridden {
		t.Error("Expected overridden event")
	}
}

// TestHistoryNodeFilter verifies node-scoped and fleet-wide history.
func TestHistoryNodeFilter(t *testing.T) {
	tmpDir := t.TempDir()
	store := NewStorageAt(filepath.Join(tmpDir, "test.db"))

	if err := store.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	defer store.Close()

	for _, node := range []string{"agent-1", "agent-2"} {
		event := ResolutionEvent{
			Node:      node,
			ToolKey:   "jdk@jdk8",
			Home:      "/usr/lib/jvm/jdk8",
			Timestamp: time.Now(),
		}
		if err := store.RecordResolution(event); err != nil {
			t.Fatalf("RecordResolution failed: %v", err)
		}
	}

	since := time.Now().Add(-1 * time.Hour)

	scoped, err := store.GetResolutionHistory("agent-1", since)
	if err != nil {
		t.Fatalf("GetResolutionHistory failed: %v", err)
	}
	if len(scoped) != 1 {
		t.Errorf("Expected 1 event for agent-1, got %d", len(scoped))
	}

	all, err := store.GetResolutionHistory("", since)
	if err != nil {
		t.Fatalf("GetResolutionHistory failed: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("Expected 2 fleet-wide events, got %d", len(all))
	}
}

// TestCleanup verifies retention-based deletion.
func TestCleanup(t *testing.T) {
	tmpDir := t.TempDir()
	store := NewStorageAt(filepath.Join(tmpDir, "test.db"))

	if err := store.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	defer store.Close()

	old := ResolutionEvent{
		Node:      "agent-1",
		ToolKey:   "jdk@jdk8",
		Home:      "/opt/jdk8",
		Timestamp: time.Now().Add(-48 * time.Hour),
	}
	recent := ResolutionEvent{
		Node:      "agent-1",
		ToolKey:   "jdk@jdk11",
		Home:      "/opt/jdk11",
		Timestamp: time.Now(),
	}
	if err := store.RecordResolution(old); err != nil {
		t.Fatalf("RecordResolution failed: %v", err)
	}
	if err := store.RecordResolution(recent); err != nil {
		t.Fatalf("RecordResolution failed: %v", err)
	}

	if err := store.Cleanup(24 * time.Hour); err != nil {
		t.Fatalf("Cleanup failed: %v", err)
	}

	history, err := store.GetResolutionHistory("agent-1", time.Now().Add(-72*time.Hour))
	if err != nil {
		t.Fatalf("GetResolutionHistory failed: %v", err)
	}
	if len(history) != 1 {
		t.Fatalf("Expected 1 event after cleanup, got %d", len(history))
	}
	if history[0].ToolKey != "jdk@jdk11" {
		t.Errorf("Expected the recent event to survive, got %s", history[0].ToolKey)
	}
}

// TestDisabledStorageNoOps verifies graceful degradation.
func TestDisabledStorageNoOps(t *testing.T) {
	store := &SQLiteStorage{enabled: false}

	if err := store.Init(); err != nil {
		t.Errorf("Init on disabled storage should be a no-op: %v", err)
	}
	if err := store.RecordResolution(ResolutionEvent{Node: "agent-1"}); err != nil {
		t.Errorf("RecordResolution on disabled storage should be a no-op: %v", err)
	}
	history, err := store.GetResolutionHistory("agent-1", time.Now())
	if err != nil {
		t.Errorf("GetResolutionHistory on disabled storage should be a no-op: %v", err)
	}
	if len(history) != 0 {
		t.Errorf("Expected empty history, got %d events", len(history))
	}
	if err := store.Close(); err != nil {
		t.Errorf("Close on disabled storage should be a no-op: %v", err)
	}
}
