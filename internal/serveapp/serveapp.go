// internal/serveapp/serveapp.go
package serveapp

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"dnalign/internal/clibase"
	"dnalign/internal/cliutil"
	"dnalign/internal/cmdutil"
	"dnalign/internal/engine"
	"dnalign/internal/server"
	"dnalign/internal/version"
)

// EnvAddr overrides the listen address from the config file; --addr wins
// over both.
const EnvAddr = "DNALIGN_ADDR"

const shutdownGrace = 10 * time.Second

type options struct {
	clibase.Common
	Addr     string
	Method   string
	Examples bool
}

func parseArgs(fs *flag.FlagSet, argv []string) (options, error) {
	var o options
	clibase.Register(fs, &o.Common)
	fs.StringVar(&o.Addr, "addr", "", "listen address (default from config, then $"+EnvAddr+")")
	fs.StringVar(&o.Method, "method", engine.MethodTable, "table | memo")
	fs.BoolVar(&o.Examples, "examples", false, "print quickstart examples and exit")
	clibase.UsageCommon(fs, "dnalign-serve", "alignment over HTTP", func(out io.Writer, def func(string) string) {
		fmt.Fprintln(out, "Usage:")
		fmt.Fprintln(out, "  dnalign-serve [flags]")
		fmt.Fprintln(out, "\nServer:")
		fmt.Fprintln(out, "      --addr string           Listen address (config, then $"+EnvAddr+") [127.0.0.1:8080]")
		fmt.Fprintf(out, "      --method string         table | memo [%s]\n", def("method"))
		fmt.Fprintln(out, "      --examples              Print quickstart examples and exit")
	})
	if err := fs.Parse(argv); err != nil {
		return o, err
	}
	if fs.NArg() > 0 {
		return o, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	switch {
	case o.Help:
		return o, flag.ErrHelp
	case o.Examples:
		return o, clibase.ErrPrintedAndExitOK
	}
	return o, nil
}

// RunContext serves until ctx is cancelled, then shuts down gracefully.
func RunContext(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("dnalign-serve", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	o, err := parseArgs(fs, argv)
	if err != nil {
		switch {
		case errors.Is(err, flag.ErrHelp):
			fs.SetOutput(stdout)
			fs.Usage()
			return 0
		case errors.Is(err, clibase.ErrPrintedAndExitOK):
			clibase.PrintExamples(stdout, "dnalign-serve", clibase.ServeExamples)
			return 0
		}
		fmt.Fprintln(stderr, "error:", err)
		return 2
	}
	if o.Version {
		fmt.Fprintf(stdout, "dnalign-serve version %s\n", version.Version)
		return 0
	}

	cfg, err := clibase.Resolve(fs, &o.Common)
	if err != nil {
		fmt.Fprintln(stderr, "error:", err)
		return 2
	}
	addr := cfg.Server.Addr
	if v := os.Getenv(EnvAddr); v != "" {
		addr = v
	}
	if cliutil.SetFlags(fs)["addr"] {
		addr = o.Addr
	}
	if _, err := engine.New(engine.Config{Scheme: cfg.Scheme(), Method: o.Method}); err != nil {
		fmt.Fprintln(stderr, "error:", err)
		return 2
	}

	log := cmdutil.NewServiceLogger(stderr, o.Verbose)
	handler := server.New(server.Config{
		Scheme:       cfg.Scheme(),
		Method:       o.Method,
		MaxLength:    cfg.Limits.MaxLength,
		MaxBodyBytes: cfg.Server.MaxBodyBytes,
		Strict:       o.Strict,
	}, log)

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		log.WithError(err).Error("listen")
		return 3
	}
	srv := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout.Std(),
	}
	return serve(ctx, srv, ln, log)
}

// serve runs srv on ln until ctx is done, then drains in-flight requests.
func serve(ctx context.Context, srv *http.Server, ln net.Listener, log logrus.FieldLogger) int {
	errCh := make(chan error, 1)
	go func() { errCh <- srv.Serve(ln) }()
	log.Infof("listening on %s (version %s)", ln.Addr(), version.Version)

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Errorf("server failed: %v", err)
			return 3
		}
		return 0
	case <-ctx.Done():
	}

	log.Infof("shutting down")
	sctx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()
	if err := srv.Shutdown(sctx); err != nil {
		log.Errorf("shutdown: %v", err)
		return 3
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Errorf("server failed: %v", err)
		return 3
	}
	return 0
}
