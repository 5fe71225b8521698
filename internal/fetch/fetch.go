// Copyright (c) 2026 The archdiff authors.
// SPDX-License-Identifier: Apache-2.0

package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	s3v2 "github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/archdiff/archdiff/internal/log"
)

// options holds optional overrides for staging remote inputs.
type options struct {
	profile    string
	region     string
	httpClient *http.Client
}

// Option customizes how remote inputs are fetched. Default behavior (no
// options) inherits the shell's AWS setup (AWS_PROFILE, shared config, env,
// IMDS) and uses http.DefaultClient.
type Option func(*options)

// WithProfile sets the shared config profile used for s3:// inputs.
func WithProfile(profile string) Option {
	return func(o *options) { o.profile = profile }
}

// WithRegion sets the region override used for s3:// inputs.
func WithRegion(region string) Option {
	return func(o *options) { o.region = region }
}

// WithHTTPClient replaces the client used for http(s):// inputs.
func WithHTTPClient(client *http.Client) Option {
	return func(o *options) { o.httpClient = client }
}

// Stage makes the input at rawURL available as a local path. Inputs named by
// s3:// or http(s):// URLs are downloaded to a temporary file; anything else
// is treated as a local path and returned unchanged. The returned cleanup is
// never nil and removes whatever Stage created.
func Stage(ctx context.Context, rawURL string, opts ...Option) (string, func(), error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	noop := func() {}

	switch {
	case strings.HasPrefix(rawURL, "s3://"):
		return stageS3(ctx, rawURL, &o)
	case strings.HasPrefix(rawURL, "http://"), strings.HasPrefix(rawURL, "https://"):
		return stageHTTP(ctx, rawURL, &o)
	default:
		return rawURL, noop, nil
	}
}

// parseS3URL splits s3://bucket/key/path into bucket and key.
func parseS3URL(rawURL string) (bucket, key string, err error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", "", fmt.Errorf("invalid s3 url %s: %w", rawURL, err)
	}
	bucket = u.Host
	key = strings.TrimPrefix(u.Path, "/")
	if bucket == "" || key == "" {
		return "", "", fmt.Errorf("invalid s3 url %s: need s3://bucket/key", rawURL)
	}
	return bucket, key, nil
}

func stageS3(ctx context.Context, rawURL string, o *options) (string, func(), error) {
	bucket, key, err := parseS3URL(rawURL)
	if err != nil {
		return "", func() {}, err
	}

	var loadOpts []func(*awsconfig.LoadOptions) error
	if o.profile != "" {
		loadOpts = append(loadOpts, awsconfig.WithSharedConfigProfile(o.profile))
	}
	if o.region != "" {
		loadOpts = append(loadOpts, awsconfig.WithRegion(o.region))
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return "", func() {}, fmt.Errorf("failed to load aws config: %w", err)
	}

	client := s3v2.NewFromConfig(cfg)
	log.Debugf("fetching s3 object: bucket=%s key=%s", bucket, key)

	result, err := client.GetObject(ctx, &s3v2.GetObjectInput{
		Bucket: awsv2.String(bucket),
		Key:    awsv2.String(key),
	})
	if err != nil {
		return "", func() {}, fmt.Errorf("failed to fetch %s: %w", rawURL, err)
	}
	defer result.Body.Close()

	return spool(result.Body, rawURL)
}

func stageHTTP(ctx context.Context, rawURL string, o *options) (string, func(), error) {
	client := o.httpClient
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", func() {}, err
	}
	log.Debugf("fetching url: url=%s", rawURL)

	resp, err := client.Do(req)
	if err != nil {
		return "", func() {}, fmt.Errorf("failed to fetch %s: %w", rawURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", func() {}, fmt.Errorf("failed to fetch %s: status %s", rawURL, resp.Status)
	}

	return spool(resp.Body, rawURL)
}

// spool copies a remote body to a temporary file and returns its path with a
// cleanup that removes it. The original URL's last path element is kept as a
// name suffix so format sniffing and error messages stay readable.
func spool(body io.Reader, rawURL string) (string, func(), error) {
	base := rawURL
	if i := strings.LastIndexByte(base, '/'); i >= 0 {
		base = base[i+1:]
	}
	if base == "" {
		base = "archive"
	}

	f, err := os.CreateTemp("", "archdiff-*-"+base)
	if err != nil {
		return "", func() {}, err
	}
	cleanup := func() {
		if err := os.Remove(f.Name()); err != nil {
			log.Debugf("failed to remove staged file: path=%s err=%v", f.Name(), err)
		}
	}

	n, err := io.Copy(f, body)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		cleanup()
		return "", func() {}, fmt.Errorf("failed to stage %s: %w", rawURL, err)
	}

	log.Debugf("staged remote input: url=%s path=%s bytes=%d", rawURL, f.Name(), n)
	return f.Name(), cleanup, nil
}
