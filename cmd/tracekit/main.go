package main

import "github.com/tracekit/tracekit/cmd/tracekit/cmd"

func main() {
	cmd.Execute()
}
