package workload

import (
	"fmt"
	"io"
	"text/tabwriter"

	json "github.com/json-iterator/go"
	"gopkg.in/yaml.v3"
)

// Render writes r to w in the given format.
func Render(w io.Writer, r Report, format string) error {
	switch format {
	case FormatJSON:
		enc := json.ConfigCompatibleWithStandardLibrary.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return err
		}
		return enc.Close()
	case FormatTable, "":
		return renderTable(w, r)
	}
	return fmt.Errorf("unknown output format %q", format)
}

func renderTable(w io.Writer, r Report) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "OP\tARG\tLEN\tCAP\tERROR\n")
	for _, s := range r.Steps {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%s\n", s.Op, s.Arg, s.Len, s.Cap, s.Err)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	m := r.Metrics
	fmt.Fprintf(w, "\nfinal: %v\n", r.Final)
	fmt.Fprintf(w, "len=%d cap=%d utilization=%.2f%%\n", m.Len, m.Cap, m.Utilization*100)
	fmt.Fprintf(w, "allocations=%d reallocations=%d releases=%d\n", m.Allocations, m.Reallocations, m.Releases)
	return nil
}
