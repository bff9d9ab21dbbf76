package tracing

import (
	"database/sql"
	"fmt"
	"os"
	"sync"

	// Need to use SQLite connections.
	_ "github.com/mattn/go-sqlite3"

	"github.com/rs/xid"
	"github.com/tebeka/atexit"
)

// SQLiteTraceWriter is a tracer that writes the collected events to a SQLite
// database.
type SQLiteTraceWriter struct {
	*sql.DB
	statement *sql.Stmt

	dbName string

	lock            sync.Mutex
	eventsToWriteDB []Event
	batchSize       int
}

// NewSQLiteTraceWriter creates a new SQLiteTraceWriter.
func NewSQLiteTraceWriter(path string) *SQLiteTraceWriter {
	w := &SQLiteTraceWriter{
		dbName:    path,
		batchSize: 100000,
	}

	atexit.Register(func() { w.Flush() })

	return w
}

// Init establishes a connection to the database and prepares the events
// table.
func (t *SQLiteTraceWriter) Init() {
	t.createDatabase()
	t.createTable()
	t.prepareStatement()
}

func (t *SQLiteTraceWriter) createDatabase() {
	if t.dbName == "" {
		t.dbName = "tracekit_trace_" + xid.New().String()
	}

	filename := t.dbName + ".sqlite3"
	_, err := os.Stat(filename)
	if err == nil {
		panic(fmt.Errorf("file %s already exists", filename))
	}

	db, err := sql.Open("sqlite3", filename)
	if err != nil {
		panic(err)
	}

	t.DB = db
}

func (t *SQLiteTraceWriter) createTable() {
	t.mustExecute(`
		CREATE TABLE trace_events (
			id TEXT,
			event_id INTEGER,
			level TEXT,
			time REAL,
			message TEXT
		)
	`)

	t.mustExecute("CREATE INDEX idx_trace_events_level ON trace_events (level)")
	t.mustExecute("CREATE INDEX idx_trace_events_time ON trace_events (time)")
}

func (t *SQLiteTraceWriter) prepareStatement() {
	stmt, err := t.Prepare(`
		INSERT INTO trace_events (id, event_id, level, time, message)
		VALUES (?, ?, ?, ?, ?)
	`)
	if err != nil {
		panic(err)
	}

	t.statement = stmt
}

// Collect buffers an event, flushing to the database when the batch size is
// reached.
func (t *SQLiteTraceWriter) Collect(e Event) {
	t.lock.Lock()
	defer t.lock.Unlock()

	t.eventsToWriteDB = append(t.eventsToWriteDB, e)
	if len(t.eventsToWriteDB) >= t.batchSize {
		t.flush()
	}
}

// Flush writes all the buffered events to the database.
func (t *SQLiteTraceWriter) Flush() {
	t.lock.Lock()
	defer t.lock.Unlock()

	t.flush()
}

func (t *SQLiteTraceWriter) flush() {
	if len(t.eventsToWriteDB) == 0 {
		return
	}

	t.mustExecute("BEGIN TRANSACTION")
	defer t.mustExecute("COMMIT TRANSACTION")

	for _, e := range t.eventsToWriteDB {
		_, err := t.statement.Exec(
			e.ID,
			e.EventID,
			e.Level,
			e.Time,
			e.Message,
		)
		if err != nil {
			panic(err)
		}
	}

	t.eventsToWriteDB = nil
}

func (t *SQLiteTraceWriter) mustExecute(query string) sql.Result {
	res, err := t.Exec(query)
	if err != nil {
		panic(err)
	}

	return res
}
