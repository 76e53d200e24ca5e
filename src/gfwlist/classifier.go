// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package gfwlist

import (
	"fmt"
	"net"
	"net/url"
	"strings"

	"github.com/miekg/dns"
	"golang.org/x/net/idna"
)

// Classifier determines what kind of host a URL points at.
//
// Implement this interface to replace the suffix lookup entirely via the
// [WithClassifier] option, for example with a fixed table in tests.
type Classifier interface {
	// Classify parses rawURL ("scheme://host[/path]") and classifies its
	// host. A non-nil error means the host is malformed.
	Classify(rawURL string) (Host, error)
}

// hostProfile maps hosts the way a browser would for lookup, but allows
// "--" in the third and fourth positions of a label ("r1---sn-abc").
var hostProfile = idna.New(
	idna.MapForLookup(),
	idna.Transitional(false),
	idna.CheckHyphens(false),
	idna.StrictDomainName(true),
	idna.BidiRule(),
)

// suffixClassifier classifies hosts against a [SuffixList].
type suffixClassifier struct {
	list SuffixList
}

// NewClassifier returns a [Classifier] that canonicalizes hosts and checks
// domains against list. A nil list selects [EmbeddedSuffixList].
func NewClassifier(list SuffixList) Classifier {
	if list == nil {
		list = EmbeddedSuffixList()
	}
	return &suffixClassifier{list: list}
}

// Classify implements [Classifier].
func (c *suffixClassifier) Classify(rawURL string) (Host, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return Host{}, err
	}

	host := u.Hostname()
	if host == "" {
		return Host{}, ErrEmptyHost
	}

	if ip := net.ParseIP(host); ip != nil {
		return Host{Name: ip.String(), Kind: HostIP}, nil
	}

	name, err := canonicalDomain(host)
	if err != nil {
		return Host{}, err
	}

	return Host{
		Name:        name,
		Kind:        HostDomain,
		KnownSuffix: c.list.HasKnownSuffix(name),
	}, nil
}

// canonicalDomain converts host to lowercase ASCII (Punycode for IDNs)
// and validates it as a DNS name.
func canonicalDomain(host string) (string, error) {
	name := strings.TrimSuffix(host, ".")
	if name == "" {
		return "", ErrEmptyHost
	}

	ascii, err := hostProfile.ToASCII(name)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidHost, err)
	}
	ascii = strings.ToLower(ascii)

	for label := range strings.SplitSeq(ascii, ".") {
		if strings.HasPrefix(label, "-") || strings.HasSuffix(label, "-") {
			return "", fmt.Errorf("%w: label %q in %s", ErrInvalidHost, label, ascii)
		}
	}

	// IsDomainName enforces the 63-octet label and 255-octet name limits
	// and rejects empty labels.
	if _, ok := dns.IsDomainName(ascii); !ok {
		return "", fmt.Errorf("%w: %s", ErrInvalidHost, ascii)
	}

	return ascii, nil
}
