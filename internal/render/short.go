package render

import (
	"fmt"
	"io"

	"github.com/dnsscience/dog/internal/orchestrator"
)

// Short implements --short/-1: print only the first answer RR's
// rendered body, one line per query, nothing else. A query with no
// answer prints nothing (the orchestrator is what maps that condition to
// exit code 2, not this function).
func Short(w io.Writer, views []orchestrator.ResponseView) {
	for _, v := range views {
		if !v.HasAnswer() {
			continue
		}
		fmt.Fprintln(w, FormatBody(v.Answer[0]))
	}
}
