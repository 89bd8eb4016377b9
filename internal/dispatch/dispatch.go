// Package dispatch iterates the Cartesian product of (name, type, class,
// server) tuples, sends each request over the selected transport, and
// applies the UDP→TCP truncation fallback. It is strictly sequential: no
// goroutines, no concurrency among requests.
package dispatch

import (
	"context"
	"time"

	"github.com/joshuafuller/dog/internal/builder"
	"github.com/joshuafuller/dog/internal/logging"
	"github.com/joshuafuller/dog/internal/message"
	"github.com/joshuafuller/dog/internal/transport"
)

// Tuple identifies one (name, type, class, server) combination to query.
type Tuple struct {
	Name   string
	QType  uint16
	QClass uint16
	Server string
}

// Expand produces the Cartesian product |names|·|types|·|classes|·|servers|
// in insertion order: names vary slowest, servers fastest.
func Expand(names []string, types []uint16, classes []uint16, servers []string) []Tuple {
	tuples := make([]Tuple, 0, len(names)*len(types)*len(classes)*len(servers))
	for _, n := range names {
		for _, t := range types {
			for _, c := range classes {
				for _, s := range servers {
					tuples = append(tuples, Tuple{Name: n, QType: t, QClass: c, Server: s})
				}
			}
		}
	}
	return tuples
}

// Transports resolves each transport.Kind to its implementation.
type Transports struct {
	UDP   transport.Transport
	TCP   transport.Transport
	TLS   transport.Transport
	HTTPS transport.Transport
}

func (t Transports) pick(kind transport.Kind) transport.Transport {
	switch kind {
	case transport.TCP:
		return t.TCP
	case transport.TLS:
		return t.TLS
	case transport.HTTPS:
		return t.HTTPS
	default:
		return t.UDP
	}
}

// Outcome is what the output adapter (external) receives for one tuple.
type Outcome struct {
	Tuple     Tuple
	Request   message.Message
	Response  message.Message
	Err       error
	Truncated bool
	Duration  time.Duration
}

// Options configures a dispatch Run.
type Options struct {
	Preferred  transport.Kind
	UDPExplicit bool // true when UDP was selected explicitly, by -U or the config file (no Auto fallback semantics)
	Timeout    time.Duration
	EDNS       builder.EDNSPolicy
	Tweaks     builder.Tweaks
	TxID       *uint16
}

// Run sends one request per tuple in order and invokes emit with its
// Outcome. Transport and protocol errors abort only the offending tuple;
// remaining tuples still execute.
func Run(ctx context.Context, tuples []Tuple, opts Options, tr Transports, emit func(Outcome)) {
	for _, tup := range tuples {
		emit(runOne(ctx, tup, opts, tr))
	}
}

func runOne(ctx context.Context, tup Tuple, opts Options, tr Transports) Outcome {
	req, err := builder.Build(builder.Request{
		QName:  tup.Name,
		QType:  tup.QType,
		QClass: tup.QClass,
		TxID:   opts.TxID,
		EDNS:   opts.EDNS,
		Tweaks: opts.Tweaks,
	})
	if err != nil {
		return Outcome{Tuple: tup, Err: err}
	}

	reqBytes, err := message.Encode(req)
	if err != nil {
		return Outcome{Tuple: tup, Request: req, Err: err}
	}

	kind := opts.Preferred
	if kind == transport.Auto {
		kind = transport.UDP
	}

	timeout := opts.Timeout
	if timeout == 0 {
		timeout = transport.DefaultTimeout
	}
	sendCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	start := time.Now()
	respBytes, err := tr.pick(kind).Send(sendCtx, reqBytes, tup.Server)
	duration := time.Since(start)
	if err != nil {
		return Outcome{Tuple: tup, Request: req, Err: err, Duration: duration}
	}

	resp, err := message.Decode(respBytes)
	if err != nil {
		return Outcome{Tuple: tup, Request: req, Err: err, Duration: duration}
	}

	truncated := resp.Header.TC
	if truncated && opts.Preferred == transport.Auto {
		logging.L.Debug().Str("name", tup.Name).Msg("udp response truncated, retrying over tcp")
		tcpCtx, tcpCancel := context.WithTimeout(ctx, timeout)
		tcpBytes, tcpErr := tr.TCP.Send(tcpCtx, reqBytes, tup.Server)
		tcpCancel()
		if tcpErr != nil {
			return Outcome{Tuple: tup, Request: req, Err: tcpErr, Duration: duration}
		}
		tcpResp, decErr := message.Decode(tcpBytes)
		if decErr != nil {
			return Outcome{Tuple: tup, Request: req, Err: decErr, Duration: duration}
		}
		return Outcome{Tuple: tup, Request: req, Response: tcpResp, Duration: duration}
	}

	// Explicit --udp with a truncated reply: report it but still return the
	// truncated message as a non-fatal warning. Exit status is governed
	// solely by whether any answer RR is present.
	return Outcome{Tuple: tup, Request: req, Response: resp, Truncated: truncated && opts.UDPExplicit, Duration: duration}
}
