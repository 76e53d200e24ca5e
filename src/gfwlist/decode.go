// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package gfwlist

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"unicode/utf8"
)

// DecodeFeed decodes a feed whose physical lines are each standard,
// padded base64. The decoded chunks are concatenated in order and the
// whole text must be valid UTF-8.
//
// Malformed base64 on any line yields an error wrapping [ErrMalformedFeed];
// invalid UTF-8 yields [ErrInvalidUTF8].
func DecodeFeed(raw []byte) (string, error) {
	var buf bytes.Buffer
	buf.Grow(base64.StdEncoding.DecodedLen(len(raw)))

	for i, line := range bytes.Split(raw, []byte("\n")) {
		line = bytes.TrimSuffix(line, []byte("\r"))
		if len(line) == 0 {
			continue
		}

		chunk := make([]byte, base64.StdEncoding.DecodedLen(len(line)))
		n, err := base64.StdEncoding.Decode(chunk, line)
		if err != nil {
			return "", fmt.Errorf("%w: line %d: %v", ErrMalformedFeed, i+1, err)
		}
		buf.Write(chunk[:n])
	}

	if !utf8.Valid(buf.Bytes()) {
		return "", ErrInvalidUTF8
	}

	return buf.String(), nil
}
