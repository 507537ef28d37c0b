package render

import (
	"encoding/json"
	"io"

	"github.com/dnsscience/dog/internal/message"
	"github.com/dnsscience/dog/internal/orchestrator"
	"github.com/dnsscience/dog/internal/registry"
)

// jsonRR is the --json rendering of one resource record: the codec's
// typed RDATA collapsed into a single presentation string. It does not
// mirror the tagged-variant shape in JSON; a flat, renderer-owned struct
// is simpler for downstream tooling to consume than a discriminated
// union would be.
type jsonRR struct {
	Name  string `json:"name"`
	TTL   uint32 `json:"ttl"`
	Class string `json:"class"`
	Type  string `json:"type"`
	Data  string `json:"data"`
}

func toJSONRR(rr message.RR) jsonRR {
	return jsonRR{
		Name:  rr.Name.String(),
		TTL:   rr.TTL,
		Class: registry.ClassName(rr.Class),
		Type:  registry.TypeName(rr.Type),
		Data:  FormatBody(rr),
	}
}

func toJSONRRs(rrs []message.RR) []jsonRR {
	out := make([]jsonRR, len(rrs))
	for i, rr := range rrs {
		out[i] = toJSONRR(rr)
	}
	return out
}

type jsonQuestion struct {
	Name  string `json:"name"`
	Class string `json:"class"`
	Type  string `json:"type"`
}

type jsonView struct {
	Question   jsonQuestion `json:"question"`
	Server     string       `json:"server,omitempty"`
	Protocol   string       `json:"protocol,omitempty"`
	Status     string       `json:"status,omitempty"`
	ElapsedMS  int64        `json:"elapsed_ms,omitempty"`
	Warning    string       `json:"warning,omitempty"`
	Error      string       `json:"error,omitempty"`
	Answer     []jsonRR     `json:"answer,omitempty"`
	Authority  []jsonRR     `json:"authority,omitempty"`
	Additional []jsonRR     `json:"additional,omitempty"`
}

func toJSONView(v orchestrator.ResponseView) jsonView {
	jv := jsonView{
		Question: jsonQuestion{
			Name:  v.Question.Name.String(),
			Class: registry.ClassName(v.Question.Class),
			Type:  registry.TypeName(v.Question.Type),
		},
	}
	if v.Err != nil {
		jv.Error = v.Err.Error()
		return jv
	}
	jv.Server = v.Server
	jv.Protocol = v.Protocol.String()
	jv.Status = rcodeName(v.Rcode)
	jv.ElapsedMS = v.Elapsed.Milliseconds()
	jv.Warning = v.Warning
	jv.Answer = toJSONRRs(v.Answer)
	jv.Authority = toJSONRRs(v.Authority)
	jv.Additional = toJSONRRs(v.Additional)
	return jv
}

// JSON writes views to w as a JSON array, one object per query, in the
// same order Run returned them. TTLs are always numeric seconds in JSON
// regardless of --seconds, which only affects the human-readable table.
func JSON(w io.Writer, views []orchestrator.ResponseView) error {
	out := make([]jsonView, len(views))
	for i, v := range views {
		out[i] = toJSONView(v)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
