// Command dog is a DNS command-line client: it accepts a set of queries,
// dispatches them over a chosen transport, and renders the decoded
// responses. This file owns the CLI-facing concerns (argument parsing,
// rendering, logging setup, resolver discovery) and wires them to
// internal/orchestrator, which does the actual wire-protocol work.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/dnsscience/dog/internal/debuglog"
	"github.com/dnsscience/dog/internal/metrics"
	"github.com/dnsscience/dog/internal/orchestrator"
	"github.com/dnsscience/dog/internal/registry"
	"github.com/dnsscience/dog/internal/render"
	"github.com/dnsscience/dog/internal/sysresolv"
)

const version = "dog 0.1.0 (dnsscience)"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr *os.File) int {
	fs := flag.NewFlagSet("dog", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		queries     stringList
		types       stringList
		nameservers stringList
		classes     stringList
		tweaks      tweakSet

		ednsMode = fs.String("edns", "hide", "EDNS mode: disable, hide, or show")
		txid     = fs.String("txid", "", "override the transaction id (hex) for every query in the batch")
		color    = fs.String("color", "automatic", "always, automatic, or never")

		useUDP  = fs.Bool("U", false, "use UDP (default)")
		useTCP  = fs.Bool("T", false, "use TCP")
		useTLS  = fs.Bool("S", false, "use DNS-over-TLS")
		useHTTP = fs.Bool("H", false, "use DNS-over-HTTPS")

		short     = fs.Bool("1", false, "print only the first answer")
		jsonOut   = fs.Bool("J", false, "render as JSON")
		seconds   = fs.Bool("seconds", false, "render TTLs as plain seconds")
		showTime  = fs.Bool("time", false, "show per-query elapsed time")
		showVer   = fs.Bool("V", false, "print the version and exit")
		showHelp  = fs.Bool("?", false, "print usage and exit")
		listTypes = fs.Bool("l", false, "list registered record types and exit")
		verbose   = fs.Bool("v", false, "verbose: dump metrics and EDNS/cookie detail")
	)
	fs.Var(&queries, "q", "a domain to query (repeatable)")
	fs.Var(&types, "t", "a record type to query (repeatable)")
	fs.Var(&nameservers, "n", "a nameserver to query (repeatable)")
	fs.Var(&classes, "class", "a class to query (repeatable)")
	fs.Var(&tweaks, "Z", "protocol tweak: aa, ad, cd, or bufsize=N (repeatable)")

	// Long-form aliases for the single-letter flags above, sharing the
	// same backing variables (plain flag, no external getopt dependency
	// anywhere in the retrieved pack).
	fs.BoolVar(useUDP, "udp", false, "use UDP (default)")
	fs.BoolVar(useTCP, "tcp", false, "use TCP")
	fs.BoolVar(useTLS, "tls", false, "use DNS-over-TLS")
	fs.BoolVar(useHTTP, "https", false, "use DNS-over-HTTPS")
	fs.BoolVar(short, "short", false, "print only the first answer")
	fs.BoolVar(jsonOut, "json", false, "render as JSON")
	fs.BoolVar(showVer, "version", false, "print the version and exit")
	fs.BoolVar(showHelp, "help", false, "print usage and exit")
	fs.BoolVar(listTypes, "list", false, "list registered record types and exit")
	fs.BoolVar(verbose, "verbose", false, "verbose: dump metrics and EDNS/cookie detail")
	fs.StringVar(color, "colour", "automatic", "always, automatic, or never")
	fs.Var(&queries, "query", "a domain to query (repeatable)")
	fs.Var(&types, "type", "a record type to query (repeatable)")
	fs.Var(&nameservers, "nameserver", "a nameserver to query (repeatable)")

	flagArgs, extraPositional := permuteArgs(args)
	if err := fs.Parse(flagArgs); err != nil {
		return orchestrator.ExitCLIError
	}

	if *showHelp {
		fs.Usage()
		return orchestrator.ExitSuccess
	}
	if *showVer {
		fmt.Fprintln(stdout, version)
		return orchestrator.ExitSuccess
	}
	if *listTypes {
		for _, e := range registry.ListTypes() {
			fmt.Fprintf(stdout, "%-6d %s\n", e.Code, e.Name)
		}
		return orchestrator.ExitSuccess
	}

	debugLevel := debuglog.LevelFromEnv(os.Getenv("DOG_DEBUG"))
	logger := debuglog.New(debugLevel, stderr)

	transportCount := 0
	for _, b := range []bool{*useUDP, *useTCP, *useTLS, *useHTTP} {
		if b {
			transportCount++
		}
	}
	if transportCount > 1 {
		fmt.Fprintln(stderr, "dog: conflicting transports: at most one of -U/-T/-S/-H may be given")
		return orchestrator.ExitCLIError
	}
	transport := orchestrator.TransportUDP
	switch {
	case *useTCP:
		transport = orchestrator.TransportTCP
	case *useTLS:
		transport = orchestrator.TransportTLS
	case *useHTTP:
		transport = orchestrator.TransportHTTPS
	}

	ednsVal := strings.ToLower(*ednsMode)
	var mode orchestrator.EDNSMode
	switch ednsVal {
	case "disable":
		mode = orchestrator.EDNSDisable
	case "hide":
		mode = orchestrator.EDNSHide
	case "show":
		mode = orchestrator.EDNSShow
	default:
		fmt.Fprintf(stderr, "dog: --edns: unrecognized mode %q (want disable, hide, or show)\n", *ednsMode)
		return orchestrator.ExitCLIError
	}

	var txidOverride *uint16
	if *txid != "" {
		id, err := parseTxID(*txid)
		if err != nil {
			fmt.Fprintln(stderr, "dog:", err)
			return orchestrator.ExitCLIError
		}
		txidOverride = &id
	}

	domains, cliTypes, cliNS, cliClasses := classifyPositional(append(extraPositional, fs.Args()...))
	domains = append(domains, queries.values...)
	cliTypes = append(cliTypes, types.values...)
	cliNS = append(cliNS, nameservers.values...)
	cliClasses = append(cliClasses, classes.values...)

	if len(domains) == 0 {
		fmt.Fprintln(stderr, "dog: no domain provided")
		return orchestrator.ExitCLIError
	}

	if len(cliNS) == 0 {
		cfg, err := sysresolv.Load()
		if err != nil {
			fmt.Fprintln(stderr, "dog:", err)
			return orchestrator.ExitNetworkError
		}
		cliNS = cfg.Servers
		logger.Debugf("using system resolver list: %v", cliNS)
	}

	plan := orchestrator.QueryPlan{
		Domains:     domains,
		Types:       cliTypes,
		Nameservers: cliNS,
		Classes:     cliClasses,
		Transport:   transport,
		ExplicitUDP: *useUDP,
		EDNS:        mode,
		Tweaks:      orchestrator.Tweaks{AA: tweaks.aa, AD: tweaks.ad, CD: tweaks.cd, BufSize: tweaks.bufSize},
		TxID:        txidOverride,
		Timeout:     orchestrator.DefaultTimeout,
		Output: orchestrator.OutputOptions{
			Short:   *short,
			JSON:    *jsonOut,
			Seconds: *seconds,
			Color:   *color,
			Verbose: *verbose || *showTime,
		},
	}

	var mc *metrics.Collector
	if *verbose || debugLevel == debuglog.LevelTrace {
		mc = metrics.New()
	}

	queryCount := len(domains) * len(cliNS) * max(1, len(cliTypes)) * max(1, len(cliClasses))
	ctx, cancel := context.WithTimeout(context.Background(), orchestrator.DefaultTimeout*time.Duration(queryCount+1))
	defer cancel()

	views, exitCode, err := orchestrator.Run(ctx, plan, mc)
	if err != nil {
		fmt.Fprintln(stderr, "dog:", err)
		return orchestrator.ExitCLIError
	}

	switch {
	case *short:
		render.Short(stdout, views)
	case *jsonOut:
		if err := render.JSON(stdout, views); err != nil {
			fmt.Fprintln(stderr, "dog: rendering JSON:", err)
			return orchestrator.ExitNetworkError
		}
	default:
		render.Table(stdout, views, plan.Output, render.ColorMode(strings.ToLower(*color)))
	}

	if mc != nil {
		logger.Tracef("dumping run metrics")
		_ = mc.Dump(stderr)
	}

	return exitCode
}

// classifyPositional buckets the bare (non-flag) command-line arguments
// via orchestrator.ClassifyArg.
func classifyPositional(args []string) (domains, types, nameservers, classes []string) {
	for _, a := range args {
		switch orchestrator.ClassifyArg(a) {
		case orchestrator.ArgNameserver:
			nameservers = append(nameservers, strings.TrimPrefix(a, "@"))
		case orchestrator.ArgType:
			types = append(types, a)
		case orchestrator.ArgClass:
			classes = append(classes, a)
		default:
			domains = append(domains, a)
		}
	}
	return
}
