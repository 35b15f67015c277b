package storage

import (
	"log"
	"time"
)

// RecordResolution records one tool home resolution.
func (s *SQLiteStorage) RecordResolution(event ResolutionEvent) error {
	if !s.enabled || s.db == nil {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	overridden := 0
	if event.Overridden {
		overridden = 1
	}

	query := `
		INSERT INTO resolution_log (node, tool_key, home, overridden, timestamp)
		VALUES (?, ?, ?, ?, ?)
	`

	_, err := s.db.Exec(query,
		event.Node,
		event.ToolKey,
		event.Home,
		overridden,
		event.Timestamp.Format(time.RFC3339),
	)

	if err != nil {
		log.Printf("Warning: failed to record resolution: %v", err)
	}

	return nil
}

// GetResolutionHistory retrieves resolutions since a given time, newest
// first. An empty node name returns history for the whole fleet.
func (s *SQLiteStorage) GetResolutionHistory(nodeName string, since time.Time) ([]ResolutionEvent, error) {
	if !s.enabled || s.db == nil {
		return []ResolutionEvent{}, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	query := `
		SELECT node, tool_key, home, overridden, timestamp
		FROM resolution_log
		WHERE timestamp >= ?
	`
	args := []interface{}{since.Format(time.RFC3339)}

	if nodeName != "" {
		query += " AND node = ?"
		args = append(args, nodeName)
	}
	query += " ORDER BY timestamp DESC"

	rows, err := s.db.Query(query, args...)
	if err != nil {
		log.Printf("Warning: failed to query resolution history: %v", err)
		return []ResolutionEvent{}, nil
	}
	defer rows.Close()

	var events []ResolutionEvent
	for rows.Next() {
		var event ResolutionEvent
		var timestampStr string
		var overridden int

		if err := rows.Scan(
			&event.Node,
			&event.ToolKey,
			&event.Home,
			&overridden,
			&timestampStr,
		); err != nil {
			log.Printf("Warning: failed to scan resolution row: %v", err)
			continue
		}

		event.Overridden = overridden == 1

		event.Timestamp, err = time.Parse(time.RFC3339, timestampStr)
		if err != nil {
			log.Printf("Warning: failed to parse timestamp: %v", err)
			continue
		}

		events = append(events, event)
	}

	return events, nil
}

// Cleanup removes resolution records older than the retention window.
func (s *SQLiteStorage) Cleanup(retention time.Duration) error {
	if !s.enabled || s.db == nil {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := time.Now().Add(-retention)

	query := "DELETE FROM resolution_log WHERE timestamp < ?"
	if _, err := s.db.Exec(query, cutoff.Format(time.RFC3339)); err != nil {
		log.Printf("Warning: failed to clean up resolution log: %v", err)
	}

	return nil
}
