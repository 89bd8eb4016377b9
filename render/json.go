package render

import (
	"encoding/json"

	"github.com/joshuafuller/dog/internal/dispatch"
	"github.com/joshuafuller/dog/internal/message"
	"github.com/joshuafuller/dog/internal/rrtypes"
)

// JSON renders an Outcome as a single JSON object. Character-string fields
// go through TextResult.JSONString so invalid UTF-8 becomes U+FFFD rather
// than the \xHH form the text adapters use.
type JSON struct{}

type jsonRR struct {
	Name  string `json:"name"`
	Type  string `json:"type"`
	TTL   uint32 `json:"ttl"`
	Data  string `json:"data"`
}

type jsonResult struct {
	Error       string   `json:"error,omitempty"`
	Answers     []jsonRR `json:"answers,omitempty"`
	Authorities []jsonRR `json:"authorities,omitempty"`
	Additionals []jsonRR `json:"additionals,omitempty"`
}

func (JSON) Render(o dispatch.Outcome) (string, bool) {
	if o.Err != nil {
		out, _ := json.Marshal(jsonResult{Error: o.Err.Error()})
		return string(out), false
	}

	result := jsonResult{
		Answers:     toJSONRRs(o.Response.Answers),
		Authorities: toJSONRRs(o.Response.Authorities),
		Additionals: toJSONRRs(o.Response.Additionals),
	}
	out, err := json.Marshal(result)
	if err != nil {
		return "", false
	}
	return string(out), len(o.Response.Answers) > 0
}

func toJSONRRs(rrs []message.ResourceRecord) []jsonRR {
	out := make([]jsonRR, len(rrs))
	for i, rr := range rrs {
		out[i] = jsonRR{
			Name: rr.Name.String(),
			Type: mnemonic(rr.RType),
			TTL:  rr.TTL,
			Data: jsonDataFor(rr.Record),
		}
	}
	return out
}

func jsonDataFor(rec rrtypes.Record) string {
	switch r := rec.(type) {
	case rrtypes.TXT:
		var s string
		for i, t := range r.Strings {
			if i > 0 {
				s += " "
			}
			s += t.JSONString()
		}
		return s
	case rrtypes.HINFO:
		return r.CPU.JSONString() + " " + r.OS.JSONString()
	default:
		return rec.String()
	}
}
