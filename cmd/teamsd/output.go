package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/alecthomas/chroma/v2/quick"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

const (
	outputTable = "table"
	outputJSON  = "json"
)

// outputFlags are shared by the commands that print backend resources
type outputFlags struct {
	format string
	color  bool
}

func (o *outputFlags) register(cmd *cobra.Command, defaultFormat string) {
	cmd.Flags().StringVarP(&o.format, "output", "o", defaultFormat, "output format (table|json)")
	cmd.Flags().BoolVar(&o.color, "color", false, "highlight json output")
}

func (o *outputFlags) validate() error {
	if o.format != outputTable && o.format != outputJSON {
		return fmt.Errorf("invalid output format %q, expected %s or %s", o.format, outputTable, outputJSON)
	}
	return nil
}

func (o *outputFlags) json() bool {
	return o.format == outputJSON
}

func writeJSON(w io.Writer, v any, color bool) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')

	if color {
		return quick.Highlight(w, string(data), "json", "terminal256", "monokai")
	}
	_, err = w.Write(data)
	return err
}

// formatDate renders a backend date relative to now. Unparseable dates are shown as sent.
func formatDate(date string) string {
	if date == "" {
		return "-"
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", time.DateOnly} {
		if t, err := time.Parse(layout, date); err == nil {
			return humanize.Time(t)
		}
	}
	return date
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
