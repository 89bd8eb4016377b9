package dispatch

import (
	"context"
	"testing"

	"github.com/joshuafuller/dog/internal/builder"
	"github.com/joshuafuller/dog/internal/message"
	"github.com/joshuafuller/dog/internal/transport"
)

func TestExpand_CartesianOrder(t *testing.T) {
	tuples := Expand([]string{"example.net", "example.org"}, []uint16{1, 15}, []uint16{1}, []string{"1.1.1.1"})

	if len(tuples) != 4 {
		t.Fatalf("len(tuples) = %d, want 4", len(tuples))
	}

	want := []struct {
		name  string
		qtype uint16
	}{
		{"example.net", 1},
		{"example.net", 15},
		{"example.org", 1},
		{"example.org", 15},
	}
	for i, w := range want {
		if tuples[i].Name != w.name || tuples[i].QType != w.qtype {
			t.Errorf("tuples[%d] = (%s, %d), want (%s, %d)", i, tuples[i].Name, tuples[i].QType, w.name, w.qtype)
		}
	}
}

// fakeTransport returns a canned response, optionally different on
// successive calls (used to simulate the UDP reply arriving truncated and
// the TCP retransmission arriving whole).
type fakeTransport struct {
	responses [][]byte
	calls     int
}

func (f *fakeTransport) Send(_ context.Context, _ []byte, _ string) ([]byte, error) {
	resp := f.responses[f.calls]
	if f.calls < len(f.responses)-1 {
		f.calls++
	}
	return resp, nil
}

func buildReply(txid uint16, tc bool) []byte {
	m := message.Message{
		Header: message.Header{TxID: txid, QR: true, TC: tc},
	}
	raw, _ := message.Encode(m)
	return raw
}

func TestRun_TruncationFallsBackToTCP(t *testing.T) {
	txid := uint16(7)
	udp := &fakeTransport{responses: [][]byte{buildReply(txid, true)}}
	tcp := &fakeTransport{responses: [][]byte{buildReply(txid, false)}}

	var outcomes []Outcome
	Run(context.Background(), []Tuple{{Name: "example.com", QType: 1, QClass: 1, Server: "1.1.1.1"}},
		Options{Preferred: transport.Auto, TxID: &txid, EDNS: builder.EDNSDisable},
		Transports{UDP: udp, TCP: tcp},
		func(o Outcome) { outcomes = append(outcomes, o) },
	)

	if len(outcomes) != 1 {
		t.Fatalf("len(outcomes) = %d, want 1", len(outcomes))
	}
	if outcomes[0].Err != nil {
		t.Fatalf("outcomes[0].Err = %v, want nil", outcomes[0].Err)
	}
	if outcomes[0].Response.Header.TC {
		t.Error("final Response.Header.TC = true, want false after TCP fallback replaces it")
	}
}

func TestRun_ExplicitUDPReportsTruncationWithoutFallback(t *testing.T) {
	txid := uint16(9)
	udp := &fakeTransport{responses: [][]byte{buildReply(txid, true)}}
	tcp := &fakeTransport{responses: [][]byte{buildReply(txid, false)}}

	var outcomes []Outcome
	Run(context.Background(), []Tuple{{Name: "example.com", QType: 1, QClass: 1, Server: "1.1.1.1"}},
		Options{Preferred: transport.UDP, UDPExplicit: true, TxID: &txid, EDNS: builder.EDNSDisable},
		Transports{UDP: udp, TCP: tcp},
		func(o Outcome) { outcomes = append(outcomes, o) },
	)

	if len(outcomes) != 1 {
		t.Fatalf("len(outcomes) = %d, want 1", len(outcomes))
	}
	if !outcomes[0].Truncated {
		t.Error("Truncated = false, want true when --udp is explicit and the reply is truncated")
	}
	if !outcomes[0].Response.Header.TC {
		t.Error("Response.Header.TC = false, want true: the truncated message is still returned")
	}
}
