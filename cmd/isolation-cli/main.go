// Command isolation-cli runs the context-free block-body isolation check
// against a single JSON-encoded block read from stdin, and writes a
// JSON-encoded verdict to stdout. It is a conformance and debugging tool,
// not a node: it performs no networking, no storage beyond an optional
// known-invalid cache, and validates exactly one block per invocation.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"kasparule.dev/isolation/bodyprocessor"
	"kasparule.dev/isolation/config"
	"kasparule.dev/isolation/hashing"
	"kasparule.dev/isolation/mass"
	"kasparule.dev/isolation/txvalidator"
)

type response struct {
	Ok    bool   `json:"ok"`
	Mass  uint64 `json:"mass,omitempty"`
	Err   string `json:"err,omitempty"`
	Cached bool  `json:"cached,omitempty"`
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	os.Exit(run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("isolation-cli", flag.ContinueOnError)
	fs.SetOutput(stderr)

	network := fs.String("network", "mainnet", "network parameter set: mainnet|testnet|devnet")
	cacheDBPath := fs.String("cache-db", "", "optional path to a bbolt known-invalid cache")
	logLevel := fs.String("log-level", "info", "log level: debug|info|warn|error")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	logger := newLogger(stderr, *logLevel)

	params, err := networkParams(*network)
	if err != nil {
		logger.Error("invalid network", "network", *network, "err", err)
		return 2
	}

	var cache *invalidCache
	if *cacheDBPath != "" {
		cache, err = openInvalidCache(*cacheDBPath)
		if err != nil {
			logger.Error("cache open failed", "path", *cacheDBPath, "err", err)
			return 1
		}
		defer cache.Close()
	}

	requestBytes, err := io.ReadAll(stdin)
	if err != nil {
		logger.Error("read stdin failed", "err", err)
		writeResponse(stdout, response{Ok: false, Err: fmt.Sprintf("read request: %v", err)})
		return 1
	}

	if ctx.Err() != nil {
		logger.Warn("shutdown signal received before validation started")
		return 130
	}

	key := digest(requestBytes)
	if code, found := cache.Lookup(key); found {
		logger.Info("served from known-invalid cache", "code", code)
		writeResponse(stdout, response{Ok: false, Err: code, Cached: true})
		return 0
	}

	var blk blockJSON
	if err := json.Unmarshal(requestBytes, &blk); err != nil {
		writeResponse(stdout, response{Ok: false, Err: fmt.Sprintf("bad request: %v", err)})
		return 0
	}
	domainBlock, err := blk.toDomain()
	if err != nil {
		writeResponse(stdout, response{Ok: false, Err: fmt.Sprintf("bad request: %v", err)})
		return 0
	}

	processor := bodyprocessor.New(
		params.BodyProcessorParams(),
		hashing.New(),
		mass.New(),
		txvalidator.New(params.TxValidatorParams()),
	)

	totalMass, ruleErr := processor.ValidateBodyInIsolation(domainBlock)
	if ruleErr != nil {
		logger.Info("block rejected", "code", ruleErr.Code, "err", ruleErr)
		if ruleErr.Cacheable() {
			if err := cache.Record(key, string(ruleErr.Code)); err != nil {
				logger.Warn("cache write failed", "err", err)
			}
		}
		writeResponse(stdout, response{Ok: false, Err: string(ruleErr.Code)})
		return 0
	}

	logger.Info("block accepted", "mass", totalMass)
	writeResponse(stdout, response{Ok: true, Mass: totalMass})
	return 0
}

func networkParams(name string) (*config.Params, error) {
	switch name {
	case "mainnet":
		return config.Mainnet(), nil
	case "testnet":
		return config.Testnet(), nil
	case "devnet":
		return config.Devnet(), nil
	default:
		return nil, fmt.Errorf("unknown network %q", name)
	}
}

func newLogger(w io.Writer, level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
}

func writeResponse(w io.Writer, resp response) {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(resp)
}
