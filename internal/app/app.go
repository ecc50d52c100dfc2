package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-json"

	"github.com/vk/formbridge/internal/config"
	"github.com/vk/formbridge/internal/ctxlog"
	"github.com/vk/formbridge/internal/operation"
	"github.com/vk/formbridge/internal/params"
	"github.com/vk/formbridge/internal/webapi"
	"github.com/vk/formbridge/internal/wiretype"
)

// App performs one operation invocation against the configured endpoint.
type App struct {
	outW io.Writer
	cfg  *Config
}

// NewApp builds the application. outW receives the invocation result;
// logging goes to stderr.
func NewApp(outW io.Writer, cfg *Config) *App {
	return &App{outW: outW, cfg: cfg}
}

// Run executes the configured invocation and writes the response, if any,
// to the output writer as indented JSON.
func (a *App) Run(ctx context.Context) error {
	logger := newLogger(a.cfg, os.Stderr)
	ctx = ctxlog.WithLogger(ctx, logger)

	clientCfg, err := config.Load(ctx, a.cfg.ConfigPath)
	if err != nil {
		return err
	}

	client, err := webapi.NewClient(clientCfg.EndpointURL)
	if err != nil {
		return err
	}
	registry := wiretype.New(clientCfg.Namespace)
	invoker := operation.NewInvoker(client, registry)

	ps := make([]params.Parameter, 0, len(a.cfg.Parameters))
	for _, literal := range a.cfg.Parameters {
		p, err := parseParameter(literal)
		if err != nil {
			return err
		}
		ps = append(ps, p)
	}

	var bound *params.EntityRef
	if a.cfg.Bound != "" {
		ref, err := parseRef(a.cfg.Bound)
		if err != nil {
			return fmt.Errorf("invalid --bound value: %w", err)
		}
		bound = &ref
	}

	logger.Info("Invoking operation.", "operation", a.cfg.Operation, "function", a.cfg.AsFunction, "parameters", len(ps), "bound", bound != nil)

	var result any
	if a.cfg.AsFunction {
		result, err = invoker.ExecuteFunction(ctx, a.cfg.Operation, ps, bound)
	} else {
		result, err = invoker.ExecuteAction(ctx, a.cfg.Operation, ps, bound)
	}
	if err != nil {
		return err
	}

	if result == nil {
		logger.Info("Operation completed with an empty response.")
		return nil
	}

	// A non-JSON response body comes back as raw bytes; print it as-is.
	if raw, ok := result.([]byte); ok {
		fmt.Fprintln(a.outW, string(raw))
		return nil
	}

	encoded, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to render response: %w", err)
	}
	fmt.Fprintln(a.outW, string(encoded))
	return nil
}
