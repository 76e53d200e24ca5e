// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package gfwlist

import "strings"

// ShouldSkip reports whether a feed line carries no blocking rule.
//
// Comments ("!"), exception rules ("@@"), section headers ("["),
// regex-style wildcards (".*") and blank lines are skipped.
func ShouldSkip(line string) bool {
	line = strings.TrimSpace(line)
	if line == "" {
		return true
	}

	switch line[0] {
	case '!', '@', '[':
		return true
	}

	return strings.Contains(line, ".*")
}
