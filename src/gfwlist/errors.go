// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package gfwlist

import "errors"

// Sentinel errors for the gfwlist package.
var (
	// ErrEmptyGroup is returned when no upstream DNS group is configured.
	ErrEmptyGroup = errors.New("gfwlist: no upstream group configured")

	// ErrUnsupportedMode is returned when an output mode is not recognized.
	ErrUnsupportedMode = errors.New("gfwlist: unsupported output mode")

	// ErrMalformedFeed is returned when a feed line is not valid base64.
	ErrMalformedFeed = errors.New("gfwlist: malformed base64 feed")

	// ErrInvalidUTF8 is returned when the decoded feed is not valid UTF-8.
	ErrInvalidUTF8 = errors.New("gfwlist: decoded feed is not valid UTF-8")

	// ErrSuffixList is returned when a public suffix list cannot be loaded.
	ErrSuffixList = errors.New("gfwlist: cannot load public suffix list")

	// ErrEmptyHost is returned when a rule does not contain a host.
	ErrEmptyHost = errors.New("empty host")

	// ErrInvalidHost is returned when a host is not a syntactically valid domain name.
	ErrInvalidHost = errors.New("invalid domain name")

	// ErrIPLiteral marks a rule whose host is an IP address.
	ErrIPLiteral = errors.New("gfwlist: host is an IP literal")

	// ErrUnknownSuffix marks a rule whose host has no recognized public suffix.
	ErrUnknownSuffix = errors.New("gfwlist: host has no known public suffix")

	// ErrInternalPanic is returned when an internal panic is recovered during execution.
	ErrInternalPanic = errors.New("gfwlist: internal panic recovered")
)
