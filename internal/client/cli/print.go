package cli

import (
	"errors"
	"io"
	"sort"
	"text/tabwriter"
	"time"

	"github.com/Svmi93/projetHygieneResto-sub000/internal/client/apiclient"
)

const timeLayout = "2006-01-02 15:04"

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Local().Format(timeLayout)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// printFieldErrors lists the per-field messages of a rejected request.
func printFieldErrors(err error) {
	var apiErr *apiclient.APIError
	if !errors.As(err, &apiErr) || len(apiErr.Errors) == 0 {
		return
	}
	fields := make([]string, 0, len(apiErr.Errors))
	for f := range apiErr.Errors {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	for _, f := range fields {
		printlnFn("  "+f+":", apiErr.Errors[f])
	}
}
