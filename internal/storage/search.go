package storage

import (
	"fmt"
	"time"

	"go.uber.org/zap"
)

// timestampLayout sorts lexically, which Cleanup relies on.
const timestampLayout = "2006-01-02T15:04:05Z"

// RecordSearch records a search snapshot. Write failures are logged, not returned.
func (s *SQLiteStorage) RecordSearch(record SearchRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.enabled || s.db == nil {
		return nil
	}

	query := `
		INSERT INTO search_history
			(search_id, query_hash, timestamp, results_count, search_time_ms, filters_applied, top_matches)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	_, err := s.db.Exec(query,
		record.SearchID,
		record.QueryHash,
		record.Timestamp.UTC().Format(timestampLayout),
		record.ResultsCount,
		record.SearchTimeMs,
		stringsToJSON(record.FiltersApplied),
		stringsToJSON(record.TopMatches),
	)
	if err != nil {
		s.logger.Warn("failed to record search", zap.String("search_id", record.SearchID), zap.Error(err))
	}

	return nil
}

// ListSearches returns up to limit records, newest first. limit <= 0 returns all.
func (s *SQLiteStorage) ListSearches(limit int) ([]SearchRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.enabled || s.db == nil {
		return []SearchRecord{}, nil
	}

	if limit <= 0 {
		limit = -1 // SQLite: no limit
	}

	rows, err := s.db.Query(`
		SELECT search_id, query_hash, timestamp, results_count, search_time_ms, filters_applied, top_matches
		FROM search_history
		ORDER BY timestamp DESC, id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query search history: %w", err)
	}
	defer rows.Close()

	records := []SearchRecord{}
	for rows.Next() {
		var (
			rec       SearchRecord
			timestamp string
			filters   string
			matches   string
		)
		if err := rows.Scan(&rec.SearchID, &rec.QueryHash, &timestamp, &rec.ResultsCount,
			&rec.SearchTimeMs, &filters, &matches); err != nil {
			return nil, fmt.Errorf("failed to scan search record: %w", err)
		}

		if rec.Timestamp, err = time.Parse(timestampLayout, timestamp); err != nil {
			s.logger.Warn("bad timestamp in search history", zap.String("value", timestamp), zap.Error(err))
		}
		if rec.FiltersApplied, err = jsonToStrings(filters); err != nil {
			return nil, fmt.Errorf("failed to decode filters for %s: %w", rec.SearchID, err)
		}
		if rec.TopMatches, err = jsonToStrings(matches); err != nil {
			return nil, fmt.Errorf("failed to decode top matches for %s: %w", rec.SearchID, err)
		}

		records = append(records, rec)
	}

	return records, rows.Err()
}

// Cleanup removes records older than retention.
func (s *SQLiteStorage) Cleanup(retention time.Duration) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.enabled || s.db == nil {
		return 0, nil
	}

	cutoff := time.Now().Add(-retention).UTC().Format(timestampLayout)

	res, err := s.db.Exec("DELETE FROM search_history WHERE timestamp < ?", cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to cleanup search_history: %w", err)
	}
	removed, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to count removed records: %w", err)
	}

	// Vacuum to reclaim space
	if _, err := s.db.Exec("VACUUM"); err != nil {
		s.logger.Warn("failed to vacuum database", zap.Error(err))
	}

	return removed, nil
}
