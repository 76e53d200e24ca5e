// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package gfwlist

import "strings"

// ruleMarkers are the leading AdBlock markers removed from a rule, in
// the order they are checked. Each is removed at most once and earlier
// markers are not checked again after a later one is removed.
var ruleMarkers = [...]string{"||", "|", "http://", "https://", "*", "."}

// stripRule reduces an AdBlock-style rule to a host candidate: leading
// markers are removed and every remaining "*" becomes a path separator.
func stripRule(line string) string {
	line = strings.TrimSpace(line)
	for _, marker := range ruleMarkers {
		if strings.HasPrefix(line, marker) {
			line = line[len(marker):]
		}
	}
	return strings.ReplaceAll(line, "*", "/")
}

// Normalize converts a single blocking rule into a domain name.
//
// The rule is stripped of its leading markers ("||", "|", "http://",
// "https://", "*", "."), its wildcards are turned into path separators,
// and the host of the resulting "http://" URL is classified by c.
//
// It returns the canonical domain when the host has a recognized public
// suffix. Otherwise it returns a [*TransformError] wrapping
// [ErrIPLiteral], [ErrUnknownSuffix], or the classifier error.
//
// A nil classifier uses [NewClassifier] with the embedded suffix list.
func Normalize(line string, c Classifier) (string, error) {
	if c == nil {
		c = NewClassifier(nil)
	}

	rule := stripRule(line)

	host, err := c.Classify("http://" + rule)
	if err != nil {
		return "", &TransformError{Rule: rule, Err: err}
	}

	switch {
	case host.Kind == HostIP:
		return "", &TransformError{Rule: rule, Host: host.Name, Err: ErrIPLiteral}
	case !host.KnownSuffix:
		return "", &TransformError{Rule: rule, Host: host.Name, Err: ErrUnknownSuffix}
	default:
		return host.Name, nil
	}
}
