package utils

import (
	"errors"
	"path/filepath"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/sashabaranov/go-openai"
)

// IsTransient reports whether err looks like a temporary provider failure
// (rate limits, server errors, timeouts), where rerunning may succeed.
func IsTransient(err error) bool {
	if err == nil {
		return false
	}
	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "rate limit") ||
		strings.Contains(errMsg, "overloaded") ||
		strings.Contains(errMsg, "500 internal server error") ||
		strings.Contains(errMsg, "502 bad gateway") ||
		strings.Contains(errMsg, "503 service unavailable") ||
		strings.Contains(errMsg, "504 gateway timeout") ||
		strings.Contains(errMsg, "timeout") ||
		strings.Contains(errMsg, "connection reset by peer") ||
		strings.Contains(errMsg, "context deadline exceeded") {
		return true
	}
	var openAIErr *openai.APIError
	if errors.As(err, &openAIErr) {
		return transientStatus(openAIErr.HTTPStatusCode)
	}
	var anthropicErr *anthropic.Error
	if errors.As(err, &anthropicErr) {
		return transientStatus(anthropicErr.StatusCode)
	}
	return false
}

func transientStatus(code int) bool {
	return code >= 500 || code == 429
}

var extensionTypes = map[string]string{
	".go": "Go", ".py": "Python", ".rs": "Rust", ".java": "Java",
	".c": "C", ".h": "C", ".cpp": "C++", ".cc": "C++", ".hpp": "C++",
	".js": "JavaScript", ".jsx": "JSX", ".ts": "TypeScript", ".tsx": "TSX",
	".html": "HTML", ".css": "CSS", ".svg": "SVG", ".sql": "SQL", ".sh": "Shell",
	".json": "JSON", ".yaml": "YAML", ".yml": "YAML", ".toml": "TOML",
	".md": "Markdown", ".txt": "Text", ".env": "Env", ".gitignore": "GitIgnore",
}

var baseNameTypes = map[string]string{
	"dockerfile": "Dockerfile",
	"makefile":   "Makefile",
	"license":    "Text",
}

// DetermineFileType names a file's type from its base name or extension.
func DetermineFileType(filename string) string {
	base := strings.ToLower(filepath.Base(filename))
	if t, ok := baseNameTypes[base]; ok {
		return t
	}
	if t, ok := extensionTypes[filepath.Ext(base)]; ok {
		return t
	}
	return "Unknown"
}
