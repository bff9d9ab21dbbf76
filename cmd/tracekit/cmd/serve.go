package cmd

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/pkg/browser"
	"github.com/spf13/cobra"

	"github.com/tracekit/tracekit/tracing"
)

var serveReader *tracing.SQLiteTraceReader

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve a recorded trace over HTTP.",
	Long: "`serve --sqlite [file]` starts an HTTP server that exposes the " +
		"events of a recorded trace as JSON. The listen address can also " +
		"be set with the TRACEKIT_HTTP variable in the environment or a " +
		".env file.",
	Run: func(cmd *cobra.Command, args []string) {
		sqliteFile, _ := cmd.Flags().GetString("sqlite")
		addr, _ := cmd.Flags().GetString("http")
		open, _ := cmd.Flags().GetBool("open")

		if sqliteFile == "" {
			log.Fatalf("Error: must specify a SQLite file with --sqlite.")
		}

		if !cmd.Flags().Changed("http") {
			addr = addrFromEnv(addr)
		}

		serveReader = tracing.NewSQLiteTraceReader(sqliteFile)
		serveReader.Init()

		startAPIServer(addr, open)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("sqlite", "", "The SQLite file to read from")
	serveCmd.Flags().String("http", "0.0.0.0:3001",
		"HTTP service address (e.g., ':6060')")
	serveCmd.Flags().Bool("open", false,
		"Open the event listing in a browser")
}

// addrFromEnv returns the listen address from the environment, falling back
// to the given default. A .env file in the working directory is loaded first
// when present.
func addrFromEnv(fallback string) string {
	_ = godotenv.Load()

	if addr := os.Getenv("TRACEKIT_HTTP"); addr != "" {
		return addr
	}

	return fallback
}

func startAPIServer(addr string, open bool) {
	r := mux.NewRouter()
	r.HandleFunc("/api/levels", httpLevels)
	r.HandleFunc("/api/events", httpEvents)

	fmt.Printf("Listening %s\n", addr)

	if open {
		err := browser.OpenURL("http://" + addr + "/api/events")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Cannot open browser: %v\n", err)
		}
	}

	err := http.ListenAndServe(addr, r)
	dieOnErr(err)
}

func httpLevels(w http.ResponseWriter, r *http.Request) {
	levels := serveReader.ListLevels()

	rsp, err := json.Marshal(levels)
	dieOnErr(err)

	_, err = w.Write(rsp)
	dieOnErr(err)
}

func httpEvents(w http.ResponseWriter, r *http.Request) {
	query := tracing.EventQuery{
		ID:    r.FormValue("id"),
		Level: r.FormValue("level"),
	}

	startTime := r.FormValue("starttime")
	endTime := r.FormValue("endtime")
	if startTime != "" && endTime != "" {
		query.EnableTimeRange = true
		query.StartTime = parseFloat(startTime)
		query.EndTime = parseFloat(endTime)
	}

	if limit := r.FormValue("limit"); limit != "" {
		query.Limit = parseInt(limit)
		query.Offset = parseInt(r.FormValue("offset"))
	}

	events := serveReader.ListEvents(query)

	rsp, err := json.Marshal(events)
	dieOnErr(err)

	_, err = w.Write(rsp)
	dieOnErr(err)
}

func parseFloat(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	dieOnErr(err)
	return v
}

func parseInt(s string) int {
	if s == "" {
		return 0
	}

	v, err := strconv.Atoi(s)
	dieOnErr(err)
	return v
}

func dieOnErr(err error) {
	if err != nil {
		log.Panic(err)
	}
}
