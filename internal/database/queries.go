package database

import (
	"database/sql"
	"time"

	"aping/internal/models"
)

var _ models.Store = (*DB)(nil)

// SaveResult saves a ping result to the session table
func (db *DB) SaveResult(result models.PingResult) error {
	query := `
        INSERT INTO ping_results (timestamp, target, success, spawn_failed, has_rtt, rtt_ms, error_message)
        VALUES (?, ?, ?, ?, ?, ?, ?)
    `
	_, err := db.Exec(query,
		result.Timestamp.UnixNano(),
		result.Target,
		result.Success,
		result.SpawnFailed,
		result.HasRTT,
		result.RTT,
		result.ErrorMessage,
	)
	return err
}

// GetResults retrieves every result of the session in order. Line and Output
// are not stored and come back empty.
func (db *DB) GetResults() ([]models.PingResult, error) {
	query := `
        SELECT timestamp, target, success, spawn_failed, has_rtt, rtt_ms, error_message
        FROM ping_results
        ORDER BY timestamp, id
    `

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []models.PingResult
	for rows.Next() {
		var r models.PingResult
		var ts int64
		var errMsg sql.NullString
		err := rows.Scan(&ts, &r.Target, &r.Success, &r.SpawnFailed, &r.HasRTT, &r.RTT, &errMsg)
		if err != nil {
			continue
		}
		r.Timestamp = time.Unix(0, ts)
		r.ErrorMessage = errMsg.String
		results = append(results, r)
	}

	return results, rows.Err()
}

// GetStats retrieves aggregated statistics per target
func (db *DB) GetStats() ([]models.StoredStats, error) {
	query := `
        SELECT
            target,
            COUNT(*) as total_pings,
            SUM(CASE WHEN has_rtt THEN 1 ELSE 0 END) as successful_pings,
            AVG(CASE WHEN has_rtt THEN rtt_ms ELSE NULL END) as avg_rtt,
            MAX(CASE WHEN has_rtt THEN rtt_ms ELSE NULL END) as max_rtt,
            MIN(CASE WHEN has_rtt THEN rtt_ms ELSE NULL END) as min_rtt
        FROM ping_results
        GROUP BY target
    `

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stats []models.StoredStats
	for rows.Next() {
		var s models.StoredStats
		var avgRTT, maxRTT, minRTT sql.NullFloat64
		err := rows.Scan(&s.Target, &s.TotalPings, &s.Successful, &avgRTT, &maxRTT, &minRTT)
		if err != nil {
			continue
		}
		s.AvgRTT = avgRTT.Float64
		s.MaxRTT = maxRTT.Float64
		s.MinRTT = minRTT.Float64
		stats = append(stats, s)
	}

	return stats, rows.Err()
}

// GetOutages retrieves runs of at least minFailures consecutive failed pings,
// newest first
func (db *DB) GetOutages(minFailures int) ([]models.Outage, error) {
	query := `
        WITH grouped_failures AS (
            SELECT
                target,
                timestamp,
                success,
                ROW_NUMBER() OVER (PARTITION BY target ORDER BY timestamp, id) -
                ROW_NUMBER() OVER (PARTITION BY target, success ORDER BY timestamp, id) as grp
            FROM ping_results
        )
        SELECT
            target,
            MIN(timestamp) as start_time,
            MAX(timestamp) as end_time,
            COUNT(*) as failed_checks
        FROM grouped_failures
        WHERE success = 0
        GROUP BY target, grp
        HAVING COUNT(*) >= ?
        ORDER BY start_time DESC
    `

	rows, err := db.Query(query, minFailures)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var outages []models.Outage
	for rows.Next() {
		var o models.Outage
		var start, end int64
		err := rows.Scan(&o.Target, &start, &end, &o.FailedChecks)
		if err != nil {
			continue
		}
		o.StartTime = time.Unix(0, start)
		o.EndTime = time.Unix(0, end)
		o.Duration = o.EndTime.Sub(o.StartTime).String()
		outages = append(outages, o)
	}

	return outages, rows.Err()
}
