// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package gfwlist

// Option is a functional option for configuring a [Converter].
type Option func(*Converter)

// WithGroup sets the upstream DNS group written into every output line.
// A group is required; [Converter.Process] fails with [ErrEmptyGroup]
// without one.
func WithGroup(group string) Option {
	return func(c *Converter) {
		c.group = group
	}
}

// WithMode sets the output dialect. The default is [ModeSmartDNS].
func WithMode(mode Mode) Option {
	return func(c *Converter) {
		c.mode = mode
	}
}

// WithSuffixList sets the public suffix dataset used by the built-in
// classifier. The default is [EmbeddedSuffixList].
//
// This option has no effect if a custom classifier is set via
// [WithClassifier].
func WithSuffixList(list SuffixList) Option {
	return func(c *Converter) {
		c.suffixList = list
	}
}

// WithClassifier sets a custom [Classifier] for host classification.
//
// Passing nil is a no-op and the built-in classifier will be used.
func WithClassifier(classifier Classifier) Option {
	return func(c *Converter) {
		if classifier != nil {
			c.classifier = classifier
		}
	}
}

// WithConcurrency sets the maximum number of rules normalized in parallel.
// The default is 100. Use 1 for strictly sequential processing.
func WithConcurrency(n int) Option {
	return func(c *Converter) {
		if n > 0 {
			c.concurrency = n
		}
	}
}

// WithCache sets a custom [Cache] implementation.
// By default, the converter memoizes classifications in memory.
//
// Pass nil to disable caching entirely.
func WithCache(cache Cache) Option {
	return func(c *Converter) {
		c.cache = cache
		c.cacheSet = true
	}
}
