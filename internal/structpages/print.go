package structpages

import (
	"fmt"
	"io"
	"text/tabwriter"
)

// PrintRoutes writes the registered routes as an aligned table.
func (sp *StructPages) PrintRoutes(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "METHOD\tPATH\tTITLE\tPAGE")
	for _, r := range sp.routes {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", r.Method, r.Path, r.Title, r.Name)
	}
	return tw.Flush()
}
