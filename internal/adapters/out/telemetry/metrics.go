package telemetry

import (
	"go.opentelemetry.io/otel/metric"
)

// instrumentationScope names the meter the repository instruments live on.
const instrumentationScope = "github.com/bnema/conanhost"

// Metrics holds repository OTel metric instruments.
type Metrics struct {
	// Uploads
	UploadTotal  metric.Int64Counter
	UploadBytes  metric.Int64Counter
	UploadErrors metric.Int64Counter

	// Downloads
	DownloadTotal  metric.Int64Counter
	DownloadMisses metric.Int64Counter

	// Search
	SearchTotal   metric.Int64Counter
	SearchResults metric.Int64Histogram

	// Access
	AuthFailures metric.Int64Counter
	RateLimited  metric.Int64Counter
}

// NewMetrics creates every repository instrument on a meter of mp.
func NewMetrics(mp metric.MeterProvider) (*Metrics, error) {
	meter := mp.Meter(instrumentationScope)
	m := &Metrics{}
	var err error

	if m.UploadTotal, err = meter.Int64Counter("conanhost.upload.total",
		metric.WithDescription("Total uploaded assets")); err != nil {
		return nil, err
	}
	if m.UploadBytes, err = meter.Int64Counter("conanhost.upload.bytes",
		metric.WithDescription("Total bytes uploaded"),
		metric.WithUnit("By")); err != nil {
		return nil, err
	}
	if m.UploadErrors, err = meter.Int64Counter("conanhost.upload.errors",
		metric.WithDescription("Total failed uploads")); err != nil {
		return nil, err
	}
	if m.DownloadTotal, err = meter.Int64Counter("conanhost.download.total",
		metric.WithDescription("Total served assets")); err != nil {
		return nil, err
	}
	if m.DownloadMisses, err = meter.Int64Counter("conanhost.download.misses",
		metric.WithDescription("Total downloads of missing assets")); err != nil {
		return nil, err
	}
	if m.SearchTotal, err = meter.Int64Counter("conanhost.search.total",
		metric.WithDescription("Total search requests")); err != nil {
		return nil, err
	}
	if m.SearchResults, err = meter.Int64Histogram("conanhost.search.results",
		metric.WithDescription("Number of references returned per search"),
		metric.WithExplicitBucketBoundaries(0, 1, 5, 10, 50, 100, 500)); err != nil {
		return nil, err
	}
	if m.AuthFailures, err = meter.Int64Counter("conanhost.auth.failures",
		metric.WithDescription("Total rejected credentials")); err != nil {
		return nil, err
	}
	if m.RateLimited, err = meter.Int64Counter("conanhost.ratelimit.rejected",
		metric.WithDescription("Total requests rejected by the rate limiter")); err != nil {
		return nil, err
	}

	return m, nil
}
