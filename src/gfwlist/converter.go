// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package gfwlist

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"golang.org/x/sync/errgroup"
)

// Default configuration values.
const (
	defaultConcurrency = 100
	defaultMode        = ModeSmartDNS
)

// Converter turns gfwlist-style feeds into DNS server configuration.
type Converter struct {
	group       string
	mode        Mode
	concurrency int
	suffixList  SuffixList
	classifier  Classifier
	cache       Cache
	cacheSet    bool
}

// New creates a new [Converter]. Use functional options to customize
// behavior; at least [WithGroup] is required before converting.
//
//	c := gfwlist.New(gfwlist.WithGroup("overseas"))
//
//	// Custom configuration:
//	c := gfwlist.New(
//	    gfwlist.WithGroup("overseas"),
//	    gfwlist.WithSuffixList(list),
//	    gfwlist.WithConcurrency(8),
//	)
func New(opts ...Option) *Converter {
	c := &Converter{
		mode:        defaultMode,
		concurrency: defaultConcurrency,
	}

	for _, opt := range opts {
		opt(c)
	}

	// Initialize classifier if not set by option.
	if c.classifier == nil {
		c.classifier = NewClassifier(c.suffixList)
	}

	// Initialize cache unless explicitly disabled with WithCache(nil).
	if !c.cacheSet {
		c.cache = newMemoryCache()
	}
	if c.cache != nil {
		c.classifier = &cachedClassifier{next: c.classifier, cache: c.cache}
	}

	return c
}

// Group returns the configured upstream DNS group.
func (c *Converter) Group() string { return c.group }

// Mode returns the configured output dialect.
func (c *Converter) Mode() Mode { return c.mode }

// FlushCache clears all memoized classifications.
func (c *Converter) FlushCache() {
	if c.cache != nil {
		c.cache.Flush()
	}
}

// Normalize converts a single rule using the converter's classifier.
// See the package-level [Normalize].
func (c *Converter) Normalize(line string) (string, error) {
	return Normalize(line, c.classifier)
}

// Convert decodes a base64 feed with [DecodeFeed] and processes it.
// Decoding failures are fatal and returned as-is.
func (c *Converter) Convert(ctx context.Context, raw []byte) (*Result, error) {
	text, err := DecodeFeed(raw)
	if err != nil {
		return nil, err
	}
	return c.Process(ctx, text)
}

// Process converts decoded feed text into configuration lines.
//
// Comments, exceptions, headers, regex rules and blank lines are skipped.
// Every other line is normalized; lines that fail are collected in
// [Result.Errors] and never abort the run. Domains are sorted and exact
// duplicates removed before rendering.
//
// Process only fails when no group is configured, the mode is unknown,
// or ctx is done.
func (c *Converter) Process(ctx context.Context, text string) (*Result, error) {
	if c.group == "" {
		return nil, ErrEmptyGroup
	}
	if c.mode != ModeSmartDNS {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedMode, string(c.mode))
	}

	lines := strings.Split(text, "\n")

	type outcome struct {
		domain  string
		err     *TransformError
		skipped bool
	}
	outcomes := make([]outcome, len(lines))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.concurrency)

Loop:
	for i, line := range lines {
		if ShouldSkip(line) {
			outcomes[i].skipped = true
			continue
		}

		// Stop spawning once the context is done; running
		// goroutines are still awaited below.
		select {
		case <-gctx.Done():
			break Loop
		default:
		}

		g.Go(func() error {
			defer func() {
				if r := recover(); r != nil {
					outcomes[i] = outcome{err: &TransformError{
						Line: i + 1,
						Rule: strings.TrimSpace(line),
						Err:  fmt.Errorf("%w: %v", ErrInternalPanic, r),
					}}
				}
			}()

			if err := gctx.Err(); err != nil {
				return err
			}

			domain, terr := c.normalizeLine(i+1, line)
			outcomes[i] = outcome{domain: domain, err: terr}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	res := &Result{}
	var domains []string
	for _, o := range outcomes {
		switch {
		case o.skipped:
			res.Skipped++
		case o.err != nil:
			res.Errors = append(res.Errors, o.err)
		default:
			domains = append(domains, o.domain)
		}
	}

	before := len(domains)
	slices.Sort(domains)
	domains = slices.Compact(domains)

	rendered, err := Render(c.mode, domains, c.group)
	if err != nil {
		return nil, err
	}

	res.Domains = domains
	res.Lines = rendered
	res.Total = len(domains)
	res.DuplicatesRemoved = before - len(domains)
	return res, nil
}

// normalizeLine normalizes one rule and tags any failure with its line number.
func (c *Converter) normalizeLine(lineNo int, line string) (string, *TransformError) {
	domain, err := Normalize(line, c.classifier)
	if err == nil {
		return domain, nil
	}

	var terr *TransformError
	if !errors.As(err, &terr) {
		terr = &TransformError{Rule: strings.TrimSpace(line), Err: err}
	}
	terr.Line = lineNo
	return "", terr
}
