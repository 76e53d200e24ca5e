// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package gfwlist

import (
	"errors"
	"strings"
)

// HostKind distinguishes domain names from IP literals.
type HostKind int

const (
	// HostDomain is a DNS name.
	HostDomain HostKind = iota

	// HostIP is an IPv4 or IPv6 literal.
	HostIP
)

// String returns a human-readable name for the kind.
func (k HostKind) String() string {
	switch k {
	case HostDomain:
		return "domain"
	case HostIP:
		return "ip"
	default:
		return "unknown"
	}
}

// Host represents the outcome of classifying the host part of a URL.
type Host struct {
	// Name is the canonical host: lowercased ASCII (Punycode) for
	// domains, or the normalized textual form for IP literals.
	Name string

	// Kind reports whether Name is a domain or an IP literal.
	Kind HostKind

	// KnownSuffix indicates whether the domain ends in a suffix listed in
	// the public suffix list. Always false for IP literals.
	KnownSuffix bool
}

// TransformError explains why a single feed line could not be turned into
// a domain. It is collected by the pipeline and never aborts a run.
//
// Only dotted-quad IPv4 and bracketed IPv6 hosts count as IPs. Shorthand
// forms such as "192.168.1" or "0x7f.1" are treated as domains and fail
// as "<host> is invalid." rather than "<ip> is a IP.".
type TransformError struct {
	// Line is the 1-based position of the rule in the decoded feed,
	// or 0 when the rule was normalized on its own.
	Line int

	// Rule is the line after marker stripping and wildcard translation.
	Rule string

	// Host is the classified host, empty when classification failed.
	Host string

	// Err is the underlying cause: [ErrIPLiteral], [ErrUnknownSuffix],
	// or the classifier error.
	Err error
}

// Error renders the message in the form "<host> is a IP.",
// "<host> is invalid." or "<cause> in <rule>".
func (e *TransformError) Error() string {
	switch {
	case errors.Is(e.Err, ErrIPLiteral):
		return e.Host + " is a IP."
	case errors.Is(e.Err, ErrUnknownSuffix):
		return e.Host + " is invalid."
	case e.Err == nil:
		return "unknown error in " + e.Rule
	default:
		return e.Err.Error() + " in " + e.Rule
	}
}

// Unwrap returns the underlying cause.
func (e *TransformError) Unwrap() error { return e.Err }

// Result is the outcome of converting a whole feed.
type Result struct {
	// Domains holds the unique normalized domains in ascending order.
	Domains []string

	// Lines holds the rendered configuration lines, one per domain.
	Lines []string

	// Errors holds one entry per rule that could not be transformed,
	// in feed order.
	Errors []*TransformError

	// Total is the number of domains after deduplication.
	Total int

	// DuplicatesRemoved is the number of duplicate domains dropped.
	DuplicatesRemoved int

	// Skipped counts comments, exceptions, headers, regex rules and
	// blank lines. They are not errors.
	Skipped int
}

// ErrorCount returns the number of rules that could not be transformed.
func (r *Result) ErrorCount() int { return len(r.Errors) }

// Payload returns the configuration file content: the rendered lines
// joined by newlines, without a trailing newline.
func (r *Result) Payload() string {
	return strings.Join(r.Lines, "\n")
}
