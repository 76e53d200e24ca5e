// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package gfwlist_test

import (
	"encoding/base64"
	"errors"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/H0llyW00dzZ/gfwlist-smartdns/src/gfwlist"
)

// fakeClassifier answers from a fixed table and records every lookup.
type fakeClassifier struct {
	mu    sync.Mutex
	hosts map[string]gfwlist.Host
	seen  []string
	calls atomic.Int32
}

func (f *fakeClassifier) Classify(rawURL string) (gfwlist.Host, error) {
	f.calls.Add(1)
	f.mu.Lock()
	f.seen = append(f.seen, rawURL)
	f.mu.Unlock()

	if host, ok := f.hosts[rawURL]; ok {
		return host, nil
	}
	return gfwlist.Host{}, errors.New("fake: no entry")
}

// panicClassifier panics for one URL and delegates the rest.
type panicClassifier struct {
	next    gfwlist.Classifier
	trigger string
}

func (p *panicClassifier) Classify(rawURL string) (gfwlist.Host, error) {
	if rawURL == p.trigger {
		panic("classifier exploded")
	}
	return p.next.Classify(rawURL)
}

// encodeFeed base64-encodes text and wraps it at 64 columns, the way
// the published gfwlist.txt is laid out.
func encodeFeed(text string) []byte {
	enc := base64.StdEncoding.EncodeToString([]byte(text))

	var b strings.Builder
	for len(enc) > 64 {
		b.WriteString(enc[:64])
		b.WriteByte('\n')
		enc = enc[64:]
	}
	b.WriteString(enc)
	b.WriteByte('\n')
	return []byte(b.String())
}
