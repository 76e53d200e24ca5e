// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package gfwlist_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/H0llyW00dzZ/gfwlist-smartdns/src/gfwlist"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		line string
		want string
	}{
		{"plain domain", "example.com", "example.com"},
		{"double pipe anchor", "||example.com", "example.com"},
		{"http url", "http://example.com", "example.com"},
		{"https url", "https://example.com", "example.com"},
		{"single pipe http url", "|http://example.com/path", "example.com"},
		{"single pipe https url", "|https://example.com", "example.com"},
		{"leading dot", ".example.com", "example.com"},
		{"leading wildcard then dot", "*.ads.example.com", "ads.example.com"},
		{"wildcard without dot", "*example.com", "example.com"},
		{"inner wildcard becomes path", "example.com*ad", "example.com"},
		{"anchor with wildcard path", "||example.com/ads*.js", "example.com"},
		{"uppercase", "||Example.COM", "example.com"},
		{"port", "example.com:8080", "example.com"},
		{"trailing dot", "example.com.", "example.com"},
		{"surrounding whitespace", "  ||example.com \t", "example.com"},
		{"multi-label suffix", "||news.bbc.co.uk", "news.bbc.co.uk"},
		{"subdomain kept", "||www.google.com", "www.google.com"},
		{"IDN to punycode", "||münchen.de", "xn--mnchen-3ya.de"},
		{"private suffix", "||user.github.io", "user.github.io"},
		{"triple hyphen label", "||r1---sn-abc.googlevideo.com", "r1---sn-abc.googlevideo.com"},
		{"double hyphen in third position", "||ab--cd.example.com", "ab--cd.example.com"},
		{"inner hyphen", "||my-site.example.com", "my-site.example.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := gfwlist.Normalize(tt.line, nil)
			require.NoError(t, err, "Normalize(%q)", tt.line)
			assert.Equal(t, tt.want, got, "Normalize(%q)", tt.line)
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	for _, line := range []string{"||example.com", "*.ads.example.com", "||münchen.de", "news.bbc.co.uk"} {
		first, err := gfwlist.Normalize(line, nil)
		require.NoError(t, err)

		second, err := gfwlist.Normalize(first, nil)
		require.NoError(t, err)
		assert.Equal(t, first, second, "normalizing %q twice", line)
	}
}

func TestNormalizeEquivalentForms(t *testing.T) {
	var got []string
	for _, line := range []string{"||example.com", "example.com", "http://example.com"} {
		d, err := gfwlist.Normalize(line, nil)
		require.NoError(t, err)
		got = append(got, d)
	}
	assert.Equal(t, []string{"example.com", "example.com", "example.com"}, got)
}

func TestNormalizeErrors(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		wantErr error
		wantMsg string
	}{
		{"IPv4", "192.168.1.1", gfwlist.ErrIPLiteral, "192.168.1.1 is a IP."},
		{"anchored IPv4", "||192.0.2.1", gfwlist.ErrIPLiteral, "192.0.2.1 is a IP."},
		{"IPv6", "[2001:db8::1]", gfwlist.ErrIPLiteral, "2001:db8::1 is a IP."},
		{"IPv4 shorthand", "192.168.1", gfwlist.ErrUnknownSuffix, "192.168.1 is invalid."},
		{"single label", "localhost", gfwlist.ErrUnknownSuffix, "localhost is invalid."},
		{"unknown TLD", "||example.notarealtld", gfwlist.ErrUnknownSuffix, "example.notarealtld is invalid."},
		{"only wildcard", "*", gfwlist.ErrEmptyHost, "empty host in "},
		{"only anchors", "||", gfwlist.ErrEmptyHost, "empty host in "},
		{"only pipe", "|", gfwlist.ErrEmptyHost, "empty host in "},
		{"double wildcard", "**", gfwlist.ErrEmptyHost, "empty host in /"},
		{"empty label", "a..com", gfwlist.ErrInvalidHost, "in a..com"},
		{"leading hyphen", "||-bad.example.com", gfwlist.ErrInvalidHost, "in -bad.example.com"},
		{"trailing hyphen", "||bad-.example.com", gfwlist.ErrInvalidHost, "in bad-.example.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := gfwlist.Normalize(tt.line, nil)
			require.Error(t, err)
			assert.Empty(t, got)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Contains(t, err.Error(), tt.wantMsg)

			var terr *gfwlist.TransformError
			require.True(t, errors.As(err, &terr), "expected *TransformError, got %T", err)
			assert.Zero(t, terr.Line)
		})
	}
}

func TestNormalizeMalformedHost(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		wantRule string
	}{
		// Markers are checked once, in order: "||" is not re-checked
		// after "http://" is removed.
		{"anchor after scheme", "http://||x.com", "||x.com"},
		{"internal whitespace", "exa mple.com", "exa mple.com"},
		{"caret separator", "||example.com^", "example.com^"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := gfwlist.Normalize(tt.line, nil)
			require.Error(t, err)

			var terr *gfwlist.TransformError
			require.True(t, errors.As(err, &terr))
			assert.Equal(t, tt.wantRule, terr.Rule)
			assert.Empty(t, terr.Host)
			assert.True(t, len(err.Error()) > len(" in "+tt.wantRule))
			assert.Contains(t, err.Error(), " in "+tt.wantRule)
		})
	}
}

func TestNormalizeWithClassifier(t *testing.T) {
	c := &fakeClassifier{hosts: map[string]gfwlist.Host{
		"http://a.test":     {Name: "a.test", Kind: gfwlist.HostDomain, KnownSuffix: true},
		"http://b.test/x/y": {Name: "b.test", Kind: gfwlist.HostDomain, KnownSuffix: false},
		"http://10.0.0.1":   {Name: "10.0.0.1", Kind: gfwlist.HostIP},
	}}

	got, err := gfwlist.Normalize("||a.test", c)
	require.NoError(t, err)
	assert.Equal(t, "a.test", got)

	_, err = gfwlist.Normalize("b.test*x*y", c)
	assert.EqualError(t, err, "b.test is invalid.")

	_, err = gfwlist.Normalize("|http://10.0.0.1", c)
	assert.EqualError(t, err, "10.0.0.1 is a IP.")

	_, err = gfwlist.Normalize("c.test", c)
	assert.EqualError(t, err, "fake: no entry in c.test")

	assert.Equal(t, []string{"http://a.test", "http://b.test/x/y", "http://10.0.0.1", "http://c.test"}, c.seen)
}

func TestTransformErrorNilCause(t *testing.T) {
	err := &gfwlist.TransformError{Rule: "x"}
	assert.Equal(t, "unknown error in x", err.Error())
	assert.Nil(t, errors.Unwrap(err))
}
