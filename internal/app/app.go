package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/generative-ai-go/genai"
	"github.com/google/uuid"
	anthropicsdk "github.com/liushuangls/go-anthropic/v2"
	openaisdk "github.com/sashabaranov/go-openai"
	"google.golang.org/api/option"

	"github.com/bububa/probe-go"
	"github.com/bububa/probe-go/internal/config"
	"github.com/bububa/probe-go/internal/httpclient"
	"github.com/bububa/probe-go/providers"
)

const (
	ExitOK = iota
	ExitConfig
	ExitFileRead
	ExitEncoding
	ExitRemoteCall
)

// NewGenerator builds the adapter for cfg.Provider. The returned closer
// releases provider resources and is never nil.
func NewGenerator(ctx context.Context, cfg *config.Config) (probe.Generator, io.Closer, error) {
	httpClient := httpclient.New(httpclient.Options{
		PreferIPv4: cfg.PreferIPv4,
		Timeout:    cfg.Timeout(),
	})
	opts := cfg.Options()

	switch cfg.Provider {
	case probe.ProviderOpenAI:
		clientConfig := openaisdk.DefaultConfig(cfg.APIKey)
		if cfg.BaseURL != "" {
			clientConfig.BaseURL = cfg.BaseURL
		}
		clientConfig.HTTPClient = httpClient
		return providers.FromOpenAI(openaisdk.NewClientWithConfig(clientConfig), opts...), nopCloser{}, nil
	case probe.ProviderAnthropic:
		clientOpts := []anthropicsdk.ClientOption{anthropicsdk.WithHTTPClient(httpClient)}
		if cfg.BaseURL != "" {
			clientOpts = append(clientOpts, anthropicsdk.WithBaseURL(cfg.BaseURL))
		}
		return providers.FromAnthropic(anthropicsdk.NewClient(cfg.APIKey, clientOpts...), opts...), nopCloser{}, nil
	case probe.ProviderGemini:
		clientOpts := []option.ClientOption{option.WithAPIKey(cfg.APIKey)}
		if cfg.BaseURL != "" {
			clientOpts = append(clientOpts, option.WithEndpoint(cfg.BaseURL))
		}
		client, err := genai.NewClient(ctx, clientOpts...)
		if err != nil {
			return nil, nil, err
		}
		return providers.FromGemini(client, opts...), client, nil
	}
	return nil, nil, fmt.Errorf("unsupported provider %q", cfg.Provider)
}

// Run performs one probe with gen, prints the report to w and returns the
// process exit code.
func Run(ctx context.Context, gen probe.Generator, cfg *config.Config, w io.Writer, logger *slog.Logger) int {
	runID := uuid.NewString()
	logger = logger.With("run", runID, "provider", gen.Provider(), "model", cfg.Model)
	logger.Info("probe started", "image", cfg.ImagePath, "mode", cfg.Mode)

	report, err := probe.Run(ctx, gen, cfg.Params())
	report.RunID = runID
	if perr := report.Print(w); perr != nil {
		logger.Error("print report failed", "err", perr)
	}
	if err != nil {
		code := ExitCode(err)
		logger.Error("probe failed", "err", err, "exit", code)
		return code
	}
	attrs := []any{"text_len", len(report.Result.Text)}
	if usage := report.Result.Usage; usage != nil {
		attrs = append(attrs, "input_tokens", usage.InputTokens, "output_tokens", usage.OutputTokens)
	}
	logger.Info("probe finished", attrs...)
	return ExitOK
}

// ExitCode maps a probe error to a process exit code.
func ExitCode(err error) int {
	var (
		fileErr   *probe.FileReadError
		encErr    *probe.EncodingError
		remoteErr *probe.RemoteCallError
	)
	switch {
	case err == nil:
		return ExitOK
	case errors.As(err, &fileErr):
		return ExitFileRead
	case errors.As(err, &encErr):
		return ExitEncoding
	case errors.As(err, &remoteErr):
		return ExitRemoteCall
	}
	return ExitConfig
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
