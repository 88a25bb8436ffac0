// Package telemetry owns the process-wide OpenTelemetry pipeline: the
// service resource, OTLP/HTTP exporters and the repository instruments.
package telemetry

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/metric"
	metricnoop "go.opentelemetry.io/otel/metric/noop"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

// DefaultServiceName names the service resource when none is configured.
const DefaultServiceName = "conanhost"

// Config holds telemetry configuration.
type Config struct {
	Enabled         bool    `mapstructure:"enabled" yaml:"enabled"`
	Endpoint        string  `mapstructure:"endpoint" yaml:"endpoint"`     // OTLP HTTP base URL, e.g. "http://localhost:4318"
	AuthToken       string  `mapstructure:"auth_token" yaml:"auth_token"` // base64 user:pass
	Traces          bool    `mapstructure:"traces" yaml:"traces"`
	Metrics         bool    `mapstructure:"metrics" yaml:"metrics"`
	TraceSampleRate float64 `mapstructure:"trace_sample_rate" yaml:"trace_sample_rate"`
	ServiceName     string  `mapstructure:"service_name" yaml:"service_name"`
	Environment     string  `mapstructure:"environment" yaml:"environment"` // deployment.environment
}

// Provider carries the meter provider the repository instruments are
// created from, plus the exporters to flush on exit.
type Provider struct {
	meters    metric.MeterProvider
	resource  *resource.Resource
	shutdowns []func(context.Context) error
}

// NewProvider builds the pipeline described by cfg. When telemetry is
// disabled the provider hands out noop instruments. Traces are installed
// as the global tracer provider so use cases can start spans.
func NewProvider(ctx context.Context, cfg Config, version string) (*Provider, error) {
	p := &Provider{meters: metricnoop.NewMeterProvider()}
	if !cfg.Enabled || cfg.Endpoint == "" {
		return p, nil
	}

	res, err := serviceResource(ctx, cfg, version)
	if err != nil {
		return nil, err
	}
	p.resource = res

	if cfg.Traces {
		if err := p.exportTraces(ctx, cfg); err != nil {
			return nil, err
		}
	}
	if cfg.Metrics {
		if err := p.exportMetrics(ctx, cfg); err != nil {
			_ = p.Shutdown(ctx)
			return nil, err
		}
	}
	return p, nil
}

// Metrics creates the repository instruments from the provider's meters.
func (p *Provider) Metrics() (*Metrics, error) {
	return NewMetrics(p.meters)
}

// Shutdown flushes and stops the exporters, newest first.
func (p *Provider) Shutdown(ctx context.Context) error {
	var errs []error
	for i := len(p.shutdowns) - 1; i >= 0; i-- {
		errs = append(errs, p.shutdowns[i](ctx))
	}
	p.shutdowns = nil
	return errors.Join(errs...)
}

func serviceResource(ctx context.Context, cfg Config, version string) (*resource.Resource, error) {
	name := cfg.ServiceName
	if name == "" {
		name = DefaultServiceName
	}

	attrs := []resource.Option{
		resource.WithAttributes(
			semconv.ServiceName(name),
			semconv.ServiceVersion(version),
			semconv.ServiceInstanceID(uuid.NewString()),
		),
		resource.WithHost(),
	}
	if cfg.Environment != "" {
		attrs = append(attrs, resource.WithAttributes(semconv.DeploymentEnvironment(cfg.Environment)))
	}

	res, err := resource.New(ctx, attrs...)
	if err != nil {
		return nil, fmt.Errorf("create resource: %w", err)
	}
	return res, nil
}

// signalURL appends the OTLP signal path to the configured base URL.
func signalURL(endpoint, signal string) (string, error) {
	u, err := url.Parse(endpoint)
	if err != nil {
		return "", fmt.Errorf("parse endpoint URL: %w", err)
	}
	if u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return "", fmt.Errorf("endpoint %q must be an http(s) URL", endpoint)
	}
	u.Path = strings.TrimSuffix(u.Path, "/") + "/v1/" + signal
	return u.String(), nil
}

func authHeaders(cfg Config) map[string]string {
	if cfg.AuthToken == "" {
		return nil
	}
	return map[string]string{"Authorization": "Basic " + cfg.AuthToken}
}

// sampler maps the configured rate: 0 never samples, 1 or more always
// does, anything between samples by trace id. Parent decisions win.
func sampler(rate float64) sdktrace.Sampler {
	switch {
	case rate <= 0:
		return sdktrace.NeverSample()
	case rate >= 1:
		return sdktrace.ParentBased(sdktrace.AlwaysSample())
	default:
		return sdktrace.ParentBased(sdktrace.TraceIDRatioBased(rate))
	}
}

func (p *Provider) exportTraces(ctx context.Context, cfg Config) error {
	endpoint, err := signalURL(cfg.Endpoint, "traces")
	if err != nil {
		return err
	}

	exp, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpointURL(endpoint),
		otlptracehttp.WithHeaders(authHeaders(cfg)),
	)
	if err != nil {
		return fmt.Errorf("create trace exporter: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exp),
		sdktrace.WithResource(p.resource),
		sdktrace.WithSampler(sampler(cfg.TraceSampleRate)),
	)
	otel.SetTracerProvider(tp)
	p.shutdowns = append(p.shutdowns, tp.Shutdown)
	return nil
}

func (p *Provider) exportMetrics(ctx context.Context, cfg Config) error {
	endpoint, err := signalURL(cfg.Endpoint, "metrics")
	if err != nil {
		return err
	}

	exp, err := otlpmetrichttp.New(ctx,
		otlpmetrichttp.WithEndpointURL(endpoint),
		otlpmetrichttp.WithHeaders(authHeaders(cfg)),
	)
	if err != nil {
		return fmt.Errorf("create metric exporter: %w", err)
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exp)),
		sdkmetric.WithResource(p.resource),
	)
	p.meters = mp
	p.shutdowns = append(p.shutdowns, mp.Shutdown)
	return nil
}
