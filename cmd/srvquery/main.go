// Command srvquery resolves the SRV records of one service name and prints
// them ordered by priority and weight.
package main

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	flag "github.com/spf13/pflag"

	"github.com/jroosing/hydrasrv/internal/channel"
	"github.com/jroosing/hydrasrv/internal/dns"
	"github.com/jroosing/hydrasrv/internal/logging"
	"github.com/jroosing/hydrasrv/internal/resolvers"
)

// Exit codes.
const (
	exitFound    = 0
	exitNotFound = 1
	exitUsage    = 2
)

func main() {
	os.Exit(run(os.Args, os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	name := "srvquery"
	if len(args) > 0 {
		name = args[0]
		args = args[1:]
	}

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(stderr, "usage: %s [flags] <service-name>\n", name)
		fs.PrintDefaults()
	}

	var (
		transport  = fs.StringP("transport", "t", resolvers.TransportAuto, "Transport: auto, system or udp")
		server     = fs.StringP("server", "s", resolvers.DefaultUDPServer, "Resolver for the udp transport (host[:port])")
		resolvConf = fs.String("resolv-conf", resolvers.DefaultResolvConf, "Resolver configuration for the system transport")
		timeout    = fs.Duration("timeout", resolvers.DefaultTimeout, "Lookup timeout")
		raw        = fs.Bool("raw", false, "Print the wire query as hex and exit")
		asJSON     = fs.Bool("json", false, "Print records as JSON")
		quiet      = fs.BoolP("quiet", "q", false, "Suppress output (exit status indicates success)")
		debug      = fs.Bool("debug", false, "Log lookup outcome to stderr")
	)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitFound
		}
		return exitUsage
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return exitUsage
	}

	qname, err := channel.ToASCII(fs.Arg(0))
	if err != nil {
		fmt.Fprintf(stderr, "invalid name %q: %v\n", fs.Arg(0), err)
		return exitUsage
	}

	if *raw {
		fmt.Fprintln(stdout, hex.EncodeToString(dns.EncodeQuery(qname, dns.NewTransactionID())))
		return exitFound
	}

	level := "WARN"
	if *debug {
		level = "DEBUG"
	}
	logger := logging.New(logging.Config{Level: level, Output: stderr})

	t, err := resolvers.NewTransport(*transport, *server, *resolvConf)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}
	engine := resolvers.NewEngine(t, resolvers.WithTimeout(*timeout), resolvers.WithLogger(logger))

	ctx, cancel := context.WithTimeout(context.Background(), *timeout+time.Second)
	defer cancel()
	records := dns.SortSrv(engine.Lookup(ctx, qname))

	if !*quiet {
		if *asJSON {
			enc := json.NewEncoder(stdout)
			enc.SetIndent("", "  ")
			_ = enc.Encode(records)
		} else {
			for _, r := range records {
				fmt.Fprintln(stdout, r.String())
			}
		}
	}
	if len(records) == 0 {
		return exitNotFound
	}
	return exitFound
}
