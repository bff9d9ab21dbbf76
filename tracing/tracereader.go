package tracing

import (
	"database/sql"
	"fmt"
	"strings"

	// SQLite driver
	_ "github.com/mattn/go-sqlite3"
)

// EventQuery is used to define the events to be queried. Not all the fields
// have to be set. If a field is empty, the criterion is ignored.
type EventQuery struct {
	// Use ID to select a single event by its ID.
	ID string

	// Use Level to select all the events of a level.
	Level string

	// Enable time range selection.
	EnableTimeRange bool

	// Use StartTime and EndTime to select events within the given range.
	StartTime, EndTime float64

	// Limit is the maximum number of events to return. Set to 0 for no
	// limit.
	Limit int

	// Offset is the number of events to skip.
	Offset int
}

// TraceReader can parse a recorded trace.
type TraceReader interface {
	// ListLevels returns all the levels that appear in the trace.
	ListLevels() []string

	// ListEvents queries events.
	ListEvents(query EventQuery) []Event
}

// SQLiteTraceReader reads a trace recorded by a SQLiteTraceWriter.
type SQLiteTraceReader struct {
	*sql.DB

	filename string
}

// NewSQLiteTraceReader creates a new SQLiteTraceReader.
func NewSQLiteTraceReader(filename string) *SQLiteTraceReader {
	r := &SQLiteTraceReader{
		filename: filename,
	}

	return r
}

// Init establishes a connection to the database.
func (r *SQLiteTraceReader) Init() {
	db, err := sql.Open("sqlite3", r.filename)
	if err != nil {
		panic(err)
	}

	r.DB = db
}

// ListLevels returns all the levels used in the trace.
func (r *SQLiteTraceReader) ListLevels() []string {
	var levels []string

	rows, err := r.Query("SELECT DISTINCT level FROM trace_events ORDER BY level")
	if err != nil {
		panic(err)
	}
	defer rows.Close()

	for rows.Next() {
		var level string
		err := rows.Scan(&level)
		if err != nil {
			panic(err)
		}
		levels = append(levels, level)
	}

	return levels
}

// ListEvents returns the events that match the query, ordered by time.
func (r *SQLiteTraceReader) ListEvents(query EventQuery) []Event {
	sqlStr, args := r.prepareEventQueryStr(query)

	rows, err := r.Query(sqlStr, args...)
	if err != nil {
		panic(err)
	}
	defer rows.Close()

	events := []Event{}
	for rows.Next() {
		e := Event{}

		err := rows.Scan(
			&e.ID,
			&e.EventID,
			&e.Level,
			&e.Time,
			&e.Message,
		)
		if err != nil {
			panic(err)
		}

		events = append(events, e)
	}

	return events
}

func (r *SQLiteTraceReader) prepareEventQueryStr(
	query EventQuery,
) (string, []any) {
	sqlStr := `
		SELECT
			id,
			event_id,
			level,
			time,
			message
		FROM trace_events
	`

	conditions := []string{}
	args := []any{}

	if query.ID != "" {
		conditions = append(conditions, "id = ?")
		args = append(args, query.ID)
	}

	if query.Level != "" {
		conditions = append(conditions, "level = ?")
		args = append(args, query.Level)
	}

	if query.EnableTimeRange {
		conditions = append(conditions, "time >= ?", "time <= ?")
		args = append(args, query.StartTime, query.EndTime)
	}

	if len(conditions) > 0 {
		sqlStr += "WHERE " + strings.Join(conditions, " AND ") + "\n"
	}

	sqlStr += "ORDER BY time\n"

	if query.Limit > 0 {
		sqlStr += fmt.Sprintf("LIMIT %d OFFSET %d\n", query.Limit, query.Offset)
	}

	return sqlStr, args
}
