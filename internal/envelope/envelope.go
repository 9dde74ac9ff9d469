// Package envelope extracts plain-text payloads and login URLs from MCP tool
// results. The tool result is an opaque envelope owned by the remote server;
// this package resolves its possible shapes once at the boundary so the rest
// of the client only ever deals with an optional string.
package envelope

import (
	"regexp"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// urlPattern matches https URLs up to the first whitespace or closing paren,
// so URLs embedded in prose or parenthesised links stay intact.
var urlPattern = regexp.MustCompile(`https://[^\s)]+`)

// Text returns the text of the first text-typed content part of a tool
// result. Two envelope shapes are recognised: a *mcp.CallToolResult whose
// Content sequence is scanned in order, and a bare []mcp.Content scanned the
// same way. Any later text parts and all non-text parts are ignored. The
// second return value is false when no text part exists; absence is not an
// error.
func Text(v any) (string, bool) {
	switch res := v.(type) {
	case *mcp.CallToolResult:
		if res == nil {
			return "", false
		}
		return firstText(res.Content)
	case []mcp.Content:
		return firstText(res)
	}
	return "", false
}

func firstText(parts []mcp.Content) (string, bool) {
	for _, part := range parts {
		if tc, ok := part.(*mcp.TextContent); ok {
			return tc.Text, true
		}
	}
	return "", false
}

// LastURL returns the last https URL found in text. Login responses may
// carry several URLs (documentation links before the actionable redirect),
// so the final one is taken. The second return value is false when the text
// contains no URL.
func LastURL(text string) (string, bool) {
	urls := urlPattern.FindAllString(text, -1)
	if len(urls) == 0 {
		return "", false
	}
	return urls[len(urls)-1], true
}
