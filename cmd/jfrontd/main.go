// Copyright (C) 2025 The jsonfront Authors. All Rights Reserved.

// Program jfrontd is a demonstration REST service built on the jsonfront
// parser. It accepts POST requests whose body is a JSON object, treats each
// top-level member key as the name of a requested call, and acknowledges
// the request. Bodies that are not valid JSON objects are rejected.
package main

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/alecthomas/kong"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/gorilla/mux"
	"github.com/tailscale/hujson"

	"github.com/jsonfront/jsonfront/ast"
)

// CLI defines the command-line interface.
var CLI struct {
	Addr    string `help:"Address to listen on." default:":8123"`
	MaxBody int64  `help:"Maximum request body size in bytes." default:"2048"`
	Lenient bool   `help:"Standardize human JSON (comments, trailing commas) before parsing."`
	Verbose bool   `help:"Enable debug logging." short:"v"`
}

func main() {
	parser := kong.Must(&CLI,
		kong.Name("jfrontd"),
		kong.Description("A demonstration REST service that parses JSON request bodies"),
		kong.UsageOnError(),
	)
	if _, err := parser.Parse(os.Args[1:]); err != nil {
		os.Exit(1)
	}

	logger := log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))
	logger = log.With(logger, "ts", log.DefaultTimestampUTC)
	if !CLI.Verbose {
		logger = level.NewFilter(logger, level.AllowInfo())
	}

	level.Info(logger).Log("msg", "listening", "addr", CLI.Addr)
	srv := newServer(logger, CLI.MaxBody, CLI.Lenient)
	if err := http.ListenAndServe(CLI.Addr, srv); err != nil {
		level.Error(logger).Log("msg", "server failed", "err", err)
		os.Exit(1)
	}
}

type server struct {
	logger  log.Logger
	maxBody int64
	lenient bool
}

// newServer returns the demo service's HTTP handler. Request bodies larger
// than maxBody are rejected; with lenient set, bodies are standardized from
// human JSON before parsing.
func newServer(logger log.Logger, maxBody int64, lenient bool) http.Handler {
	s := &server{logger: logger, maxBody: maxBody, lenient: lenient}
	r := mux.NewRouter()
	r.HandleFunc("/call", s.handleCall).Methods(http.MethodPost)
	r.HandleFunc("/healthz", s.handleHealthz).Methods(http.MethodGet)
	return r
}

func (s *server) handleCall(w http.ResponseWriter, req *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, req.Body, s.maxBody))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			http.Error(w, "request body too large", http.StatusRequestEntityTooLarge)
		} else {
			http.Error(w, "cannot read request body", http.StatusBadRequest)
		}
		return
	}
	if s.lenient {
		std, err := hujson.Standardize(body)
		if err != nil {
			level.Debug(s.logger).Log("msg", "standardize failed", "err", err)
			http.Error(w, "malformed request body", http.StatusBadRequest)
			return
		}
		body = std
	}

	v := ast.Parse(body)
	if e, ok := v.(*ast.Error); ok {
		level.Debug(s.logger).Log("msg", "parse failed", "err", e.Err())
		http.Error(w, "malformed JSON body", http.StatusBadRequest)
		return
	}
	obj, ok := v.(*ast.Object)
	if !ok {
		http.Error(w, "request body must be a JSON object", http.StatusBadRequest)
		return
	}

	for _, m := range obj.Members {
		// TODO: Dispatch to a registered handler with m.Value as arguments.
		level.Info(s.logger).Log("msg", "call requested", "function", m.Key)
	}

	w.Header().Set("Content-Type", "application/json")
	fmt.Fprintf(w, "{\"status\":\"ok\",\"calls\":%d}\n", len(obj.Members))
}

func (s *server) handleHealthz(w http.ResponseWriter, req *http.Request) {
	io.WriteString(w, "ok\n")
}
