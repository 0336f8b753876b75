package threadlens

import "time"

type options struct {
	provider string
	path     string
	endpoint string
	timeout  time.Duration

	artifacts Artifacts
}

// Option configures an Analyzer load.
type Option func(*options)

// Artifacts names the optional precomputed artifact locations. Each entry
// is a local path or an http(s) URL; empty entries are skipped.
type Artifacts struct {
	Topics      string
	SemanticMap string
	Events      string
	Network     string
}

// WithFile loads the dataset from a local JSON file.
func WithFile(path string) Option {
	return func(o *options) {
		o.provider = "file"
		o.path = path
	}
}

// WithURL downloads the dataset from an HTTP(S) endpoint.
func WithURL(endpoint string) Option {
	return func(o *options) {
		o.provider = "http"
		o.endpoint = endpoint
	}
}

// WithTimeout bounds HTTP fetches (dataset and artifacts). Default: 30s.
func WithTimeout(d time.Duration) Option {
	return func(o *options) {
		o.timeout = d
	}
}

// WithArtifacts attaches precomputed artifacts after the dataset loads.
// A failed artifact degrades its view only and never fails the load.
func WithArtifacts(a Artifacts) Option {
	return func(o *options) {
		o.artifacts = a
	}
}

func defaultOptions() options {
	return options{
		provider: "file",
		timeout:  30 * time.Second,
	}
}
