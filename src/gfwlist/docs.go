// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package gfwlist converts AdBlock-style domain blocklists such as
// [gfwlist] into SmartDNS configuration that routes every listed domain
// through a named upstream DNS group.
//
// The feed is a base64 text file. Each rule is stripped of its AdBlock
// markers, reduced to a host, and kept only when the host is a domain
// with a suffix listed in the [Public Suffix List]. The surviving domains
// are sorted, deduplicated and rendered as:
//
//	nameserver /example.com/overseas
//
// # Features
//
//   - Rule filtering — comments, exception rules, headers and regex
//     rules are skipped, not reported as errors
//   - Canonical hosts — IDNs are converted to Punycode and lowercased
//   - Public suffix validation — embedded list by default, or a list
//     loaded at run time via [LoadSuffixList]
//   - Soft per-rule errors — a bad rule is collected as a
//     [*TransformError] and never aborts the run
//   - Concurrent normalization — bounded worker pool with panic recovery
//   - Classification cache — pluggable via the [Cache] interface
//   - Functional options — clean, [idiomatic Go] configuration pattern
//   - Typed errors — sentinel errors for [errors.Is] matching
//
// # Quick Start
//
//	c := gfwlist.New(gfwlist.WithGroup("overseas"))
//
//	res, err := c.Convert(ctx, feed) // feed is the raw base64 body
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println(res.Payload())
//	fmt.Fprintf(os.Stderr, "%d domains, %d duplicates, %d errors\n",
//	    res.Total, res.DuplicatesRemoved, res.ErrorCount())
//
// # Configuration
//
// Available options:
//
//   - [WithGroup]       — Upstream DNS group name (required)
//   - [WithMode]        — Output dialect (default: [ModeSmartDNS])
//   - [WithSuffixList]  — Public suffix dataset (default: embedded)
//   - [WithClassifier]  — Custom host classifier
//   - [WithConcurrency] — Max rules normalized in parallel (default: 100)
//   - [WithCache]       — Custom Cache implementation; pass nil to disable
//
// # Rule Normalization
//
// [Normalize] removes at most one leading occurrence of each marker, in
// this order, in a single pass:
//
//	"||"  "|"  "http://"  "https://"  "*"  "."
//
// Remaining "*" wildcards become "/", so anything after the first
// wildcard is treated as a URL path. The host of "http://<rule>" is then
// classified:
//
//	||example.com        -> example.com
//	|https://example.com -> example.com
//	*.ads.example.com    -> ads.example.com
//	192.168.1.1          -> error "192.168.1.1 is a IP."
//	localhost            -> error "localhost is invalid."
//
// Markers are not re-checked once passed, so "http://||x.com" keeps its
// "||" and fails classification.
//
// # Errors
//
// Sentinel errors for use with [errors.Is]:
//
//	var (
//	    ErrEmptyGroup      // No upstream group configured
//	    ErrUnsupportedMode // Unknown output mode
//	    ErrMalformedFeed   // A feed line is not valid base64
//	    ErrInvalidUTF8     // The decoded feed is not valid UTF-8
//	    ErrSuffixList      // A public suffix list could not be loaded
//	    ErrEmptyHost       // A rule has no host
//	    ErrInvalidHost     // A host is not a valid domain name
//	    ErrIPLiteral       // A rule points at an IP address
//	    ErrUnknownSuffix   // A domain has no known public suffix
//	    ErrInternalPanic   // An internal panic was recovered
//	)
//
// [gfwlist]: https://github.com/gfwlist/gfwlist
// [Public Suffix List]: https://publicsuffix.org
// [idiomatic Go]: https://go.dev/doc/effective_go
package gfwlist
