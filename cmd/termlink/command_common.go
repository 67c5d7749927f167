package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"termlink/internal/types"
)

func printSessions(output io.Writer, sessions []types.Session) {
	writer := tabwriter.NewWriter(output, 0, 8, 2, ' ', 0)
	fmt.Fprintln(writer, "ID\tSTATUS\tNAME\tCOMMAND")
	for _, s := range sessions {
		name := s.Name
		if name == "" {
			name = "-"
		}
		fmt.Fprintf(writer, "%s\t%s\t%s\t%s\n", s.ID, s.Status, name, strings.Join(s.Command, " "))
	}
	_ = writer.Flush()
}

func exitOnErr(label string, err error, stderr io.Writer) {
	if err == nil {
		return
	}
	fmt.Fprintf(stderr, "%s error: %v\n", label, err)
	os.Exit(1)
}
