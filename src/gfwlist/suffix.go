// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package gfwlist

import (
	"fmt"
	"io"
	"strings"

	psl "github.com/weppos/publicsuffix-go/publicsuffix"
	xpsl "golang.org/x/net/publicsuffix"
)

// SuffixList reports whether a domain ends in a recognized public suffix.
//
// Implement this interface to plug in a custom public suffix dataset
// via the [WithSuffixList] option.
type SuffixList interface {
	// HasKnownSuffix reports whether domain (lowercased ASCII, no
	// trailing dot) matches an explicit ICANN or private rule. The
	// implicit "*" rule does not count.
	HasKnownSuffix(domain string) bool
}

// embeddedList is backed by the table compiled into golang.org/x/net.
type embeddedList struct{}

// EmbeddedSuffixList returns a [SuffixList] backed by the public suffix
// table compiled into golang.org/x/net/publicsuffix. It requires no
// network access and is the default.
func EmbeddedSuffixList() SuffixList { return embeddedList{} }

func (embeddedList) HasKnownSuffix(domain string) bool {
	suffix, icann := xpsl.PublicSuffix(domain)
	if icann {
		return true
	}

	// Private rules always span more than one label; the implicit
	// rule only ever yields the last label.
	return strings.IndexByte(suffix, '.') >= 0
}

// loadedList is a list parsed at run time.
type loadedList struct {
	list *psl.List
}

// LoadSuffixList parses a list in the publicsuffix.org format
// (public_suffix_list.dat), including private domains.
//
// It returns an error wrapping [ErrSuffixList] when the data cannot be
// parsed or contains no rules.
func LoadSuffixList(r io.Reader) (SuffixList, error) {
	list := psl.NewList()
	rules, err := list.Load(r, &psl.ParserOption{PrivateDomains: true, ASCIIEncoded: true})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSuffixList, err)
	}
	if len(rules) == 0 {
		return nil, fmt.Errorf("%w: no rules found", ErrSuffixList)
	}
	return &loadedList{list: list}, nil
}

func (l *loadedList) HasKnownSuffix(domain string) bool {
	// A nil DefaultRule makes Find report unlisted suffixes as nil
	// instead of falling back to "*".
	return l.list.Find(domain, &psl.FindOptions{IgnorePrivate: false}) != nil
}
