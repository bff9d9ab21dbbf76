package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/tracekit/tracekit/tracing"
)

var dumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Dump a recorded trace to the terminal.",
	Long: "`dump --sqlite [file]` prints all the events of a recorded " +
		"trace. Use `--format` to select the output format and `--level` " +
		"to only print the events of one level.",
	Run: func(cmd *cobra.Command, args []string) {
		sqliteFile, _ := cmd.Flags().GetString("sqlite")
		format, _ := cmd.Flags().GetString("format")
		level, _ := cmd.Flags().GetString("level")

		if sqliteFile == "" {
			log.Fatalf("Error: must specify a SQLite file with --sqlite.")
		}

		reader := tracing.NewSQLiteTraceReader(sqliteFile)
		reader.Init()

		events := reader.ListEvents(tracing.EventQuery{Level: level})

		switch format {
		case "csv":
			dumpCSV(events)
		case "json":
			dumpJSON(events)
		default:
			log.Fatalf("Error: unknown format %s, use csv or json.", format)
		}
	},
}

func init() {
	rootCmd.AddCommand(dumpCmd)
	dumpCmd.Flags().String("sqlite", "", "The SQLite file to read from")
	dumpCmd.Flags().String("format", "csv", "Output format, csv or json")
	dumpCmd.Flags().String("level", "", "Only dump events of this level")
}

func dumpCSV(events []tracing.Event) {
	fmt.Printf("ID, EventID, Level, Time, Message\n")
	for _, e := range events {
		fmt.Printf("%s, %d, %s, %.9f, %q\n",
			e.ID, e.EventID, e.Level, e.Time, e.Message)
	}
}

func dumpJSON(events []tracing.Event) {
	tracer := tracing.NewJSONTracerWithWriter(os.Stdout)
	for _, e := range events {
		tracer.Collect(e)
	}
	tracer.Finish()
	fmt.Println()
}
