// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package gfwlist

import (
	"fmt"
	"strings"
)

// Mode selects the output dialect.
type Mode string

// ModeSmartDNS renders SmartDNS "nameserver /<domain>/<group>" lines.
const ModeSmartDNS Mode = "smartdns"

// ParseMode converts a user-supplied mode name to a [Mode].
// Matching is case-insensitive and ignores '-' and '_', so "SmartDNS"
// and "smart-dns" are both accepted.
func ParseMode(s string) (Mode, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	key = strings.NewReplacer("-", "", "_", "").Replace(key)

	switch Mode(key) {
	case ModeSmartDNS:
		return ModeSmartDNS, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedMode, s)
	}
}

// String returns the canonical name of the mode.
func (m Mode) String() string { return string(m) }

// Render formats each domain as a configuration line for group.
func Render(mode Mode, domains []string, group string) ([]string, error) {
	if group == "" {
		return nil, ErrEmptyGroup
	}

	switch mode {
	case ModeSmartDNS:
		lines := make([]string, len(domains))
		for i, d := range domains {
			lines[i] = "nameserver /" + d + "/" + group
		}
		return lines, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedMode, string(mode))
	}
}
