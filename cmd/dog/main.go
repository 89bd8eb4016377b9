// Command dog is a command-line DNS client: it composes, transmits, and
// decodes DNS queries over UDP, TCP, TLS, and HTTPS.
//
// Flag parsing here is deliberately minimal: this file exists only to wire
// the wire-codec and transport-dispatcher packages together into a
// runnable process and to map dogerr.ExitCoder values to process exit
// status.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joshuafuller/dog/internal/builder"
	"github.com/joshuafuller/dog/internal/config"
	"github.com/joshuafuller/dog/internal/dispatch"
	"github.com/joshuafuller/dog/internal/dogerr"
	"github.com/joshuafuller/dog/internal/idna"
	"github.com/joshuafuller/dog/internal/logging"
	"github.com/joshuafuller/dog/internal/registry"
	"github.com/joshuafuller/dog/internal/resolvconf"
	"github.com/joshuafuller/dog/internal/transport"
	"github.com/joshuafuller/dog/render"
)

func main() {
	logging.Init()
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	cfg, err := config.Load(configPath())
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		return exitFor(err)
	}

	ednsDefault := cfg.EDNS
	if ednsDefault == "" {
		ednsDefault = "hide"
	}

	fs := flag.NewFlagSet("dog", flag.ContinueOnError)
	var (
		queries     multiFlag
		types       multiFlag
		nameservers multiFlag
		classes     multiFlag
		edns        = fs.String("edns", ednsDefault, "disable|hide|show")
		bufSize     = fs.Int("bufsize", int(cfg.BufSize), "EDNS(0) UDP payload size (0 selects the protocol default)")
		txid        = fs.Int64("txid", -1, "fixed 16-bit transaction id")
		short       = fs.Bool("short", false, "short output")
		jsonOut     = fs.Bool("json", false, "JSON output")
		useUDP      = fs.Bool("U", false, "force UDP")
		useTCP      = fs.Bool("T", false, "force TCP")
		useTLS      = fs.Bool("S", false, "force TLS")
		useHTTPS    = fs.Bool("H", false, "force HTTPS")
	)
	fs.Var(&queries, "q", "query name (repeatable)")
	fs.Var(&queries, "query", "query name (repeatable)")
	fs.Var(&types, "t", "query type (repeatable)")
	fs.Var(&types, "type", "query type (repeatable)")
	fs.Var(&nameservers, "n", "nameserver (repeatable)")
	fs.Var(&nameservers, "nameserver", "nameserver (repeatable)")
	fs.Var(&classes, "class", "query class (repeatable)")

	if err := fs.Parse(args); err != nil {
		return dogerr.ExitArgument
	}

	classifyPositionals(fs.Args(), &queries, &types, &nameservers, &classes)

	if len(queries) == 0 {
		fmt.Fprintln(os.Stderr, (&dogerr.ArgumentError{Field: "query", Message: "no query name given"}).Error())
		return dogerr.ExitArgument
	}

	queryNames, err := normalizeQueryNames(queries)
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		return exitFor(err)
	}

	typeCodes, err := resolveTypes(types)
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		return exitFor(err)
	}
	classCodes, err := resolveClasses(classes)
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		return exitFor(err)
	}

	servers := []string(nameservers)
	if len(servers) == 0 {
		servers = cfg.Nameservers
	}
	if len(servers) == 0 {
		ns, err := resolvconf.First()
		if err != nil {
			fmt.Fprintln(os.Stderr, err.Error())
			return exitFor(err)
		}
		servers = []string{ns}
	}

	ednsPolicy, err := parseEDNS(*edns)
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		return exitFor(err)
	}

	if *bufSize < 0 || *bufSize > 65535 {
		err := &dogerr.ArgumentError{Field: "bufsize", Message: fmt.Sprintf("bufsize %d out of range for a 16-bit field", *bufSize)}
		fmt.Fprintln(os.Stderr, err.Error())
		return exitFor(err)
	}
	tweaks := builder.Tweaks{BufSize: uint16(*bufSize)}

	var txidPtr *uint16
	if *txid >= 0 {
		id, err := builder.ValidateTxID(*txid)
		if err != nil {
			fmt.Fprintln(os.Stderr, err.Error())
			return exitFor(err)
		}
		txidPtr = &id
	}

	kind := transportKindFromConfig(cfg.Transport)
	switch {
	case *useUDP:
		kind = transport.UDP
	case *useTCP:
		kind = transport.TCP
	case *useTLS:
		kind = transport.TLS
	case *useHTTPS:
		kind = transport.HTTPS
	}
	udpExplicit := kind == transport.UDP

	tuples := dispatch.Expand(queryNames, typeCodes, classCodes, servers)

	transports := dispatch.Transports{
		UDP:   transport.NewUDP(),
		TCP:   transport.NewTCP(),
		TLS:   transport.NewTLS(),
		HTTPS: transport.NewHTTPS(),
	}
	opts := dispatch.Options{
		Preferred:   kind,
		UDPExplicit: udpExplicit,
		EDNS:        ednsPolicy,
		Tweaks:      tweaks,
		TxID:        txidPtr,
	}

	var renderer render.Renderer = render.Table{}
	if *jsonOut {
		renderer = render.JSON{}
	} else if *short {
		renderer = render.Short{}
	}

	anyPrintable := false
	var lastErr error
	dispatch.Run(context.Background(), tuples, opts, transports, func(o dispatch.Outcome) {
		if o.Err != nil {
			fmt.Fprintln(os.Stderr, o.Err.Error())
			lastErr = o.Err
			return
		}
		text, printable := renderer.Render(o)
		if printable {
			anyPrintable = true
		}
		if text != "" {
			fmt.Println(text)
		}
	})

	if !anyPrintable {
		if lastErr != nil {
			return exitFor(lastErr)
		}
		fmt.Fprintln(os.Stderr, (&dogerr.NoResultError{}).Error())
		return dogerr.ExitNoResult
	}
	return dogerr.ExitSuccess
}

// configPath locates the optional dog/config.toml under the user's config
// directory. If the directory can't be determined, Load is called with an
// empty path, which os.ReadFile reports as not-exist, so this degrades to
// "no config file" rather than an error.
func configPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "dog", "config.toml")
}

// transportKindFromConfig maps a config file's transport string to a
// transport.Kind, defaulting to Auto for an empty or unrecognized value so
// that CLI flags remain the only way to force a specific transport when the
// config file is silent on it.
func transportKindFromConfig(s string) transport.Kind {
	switch strings.ToLower(s) {
	case "udp":
		return transport.UDP
	case "tcp":
		return transport.TCP
	case "tls":
		return transport.TLS
	case "https":
		return transport.HTTPS
	default:
		return transport.Auto
	}
}

func exitFor(err error) int {
	if ec, ok := err.(dogerr.ExitCoder); ok {
		return ec.ExitCode()
	}
	return dogerr.ExitNetworkOrDecode
}

// normalizeQueryNames runs each query name through IDNA, converting
// non-ASCII labels to their A-label form before the wire codec ever sees
// the name. Lowercase ASCII names pass through unchanged; uppercase ASCII
// is folded to lowercase.
func normalizeQueryNames(in []string) ([]string, error) {
	out := make([]string, len(in))
	for i, name := range in {
		ascii, err := idna.ToASCII(name)
		if err != nil {
			return nil, err
		}
		out[i] = ascii
	}
	return out, nil
}

func resolveTypes(in []string) ([]uint16, error) {
	if len(in) == 0 {
		return []uint16{1}, nil // default A, matching `dog a.example`'s implicit type
	}
	out := make([]uint16, 0, len(in))
	for _, t := range in {
		code, ok := registry.TypeByMnemonic(t)
		if !ok {
			return nil, &dogerr.ArgumentError{Field: "type", Message: fmt.Sprintf("unknown query type %q", t)}
		}
		out = append(out, code)
	}
	return out, nil
}

func resolveClasses(in []string) ([]uint16, error) {
	if len(in) == 0 {
		return []uint16{1}, nil // IN
	}
	out := make([]uint16, 0, len(in))
	for _, c := range in {
		code, ok := registry.ClassByMnemonic(c)
		if !ok {
			return nil, &dogerr.ArgumentError{Field: "class", Message: fmt.Sprintf("unknown query class %q", c)}
		}
		out = append(out, code)
	}
	return out, nil
}

func parseEDNS(v string) (builder.EDNSPolicy, error) {
	switch strings.ToLower(v) {
	case "disable":
		return builder.EDNSDisable, nil
	case "hide":
		return builder.EDNSHide, nil
	case "show":
		return builder.EDNSShow, nil
	default:
		return 0, &dogerr.ArgumentError{Field: "edns", Message: fmt.Sprintf("unknown edns policy %q", v)}
	}
}

// classifyPositionals sorts unflagged arguments by shape: a known type
// mnemonic becomes a type, a known class mnemonic becomes a class, an
// "@host" becomes a nameserver, everything else is a query name.
func classifyPositionals(args []string, queries, types, nameservers, classes *multiFlag) {
	for _, a := range args {
		switch {
		case strings.HasPrefix(a, "@"):
			*nameservers = append(*nameservers, strings.TrimPrefix(a, "@"))
		default:
			if _, ok := registry.TypeByMnemonic(a); ok {
				*types = append(*types, a)
				continue
			}
			if _, ok := registry.ClassByMnemonic(a); ok {
				*classes = append(*classes, a)
				continue
			}
			*queries = append(*queries, a)
		}
	}
}

type multiFlag []string

func (m *multiFlag) String() string { return strings.Join(*m, ",") }
func (m *multiFlag) Set(v string) error {
	*m = append(*m, v)
	return nil
}
