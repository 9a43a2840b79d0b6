// Package ingestion loads and normalizes resume documents before the
// workflow sees them.
package ingestion

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var supportedExtensions = map[string]bool{
	".txt":  true,
	".md":   true,
	".html": true,
	".htm":  true,
}

// LoadResume reads a resume file, strips markup where needed, and returns
// cleaned plain text.
func LoadResume(path string) (string, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if !supportedExtensions[ext] {
		return "", fmt.Errorf("unsupported resume format %q (expected .txt, .md, .html)", ext)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("resume file not found: %w", err)
		}
		return "", fmt.Errorf("failed to read resume file: %w", err)
	}

	text := string(content)
	if ext == ".html" || ext == ".htm" {
		text, err = CleanHTML(text)
		if err != nil {
			return "", err
		}
	}
	return CleanText(text), nil
}

// CleanHTML extracts readable text from an HTML resume, dropping scripts,
// styles and markup.
func CleanHTML(htmlContent string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	doc.Find("script, style, noscript").Remove()

	var sb strings.Builder
	doc.Find("body").Each(func(_ int, s *goquery.Selection) {
		sb.WriteString(s.Text())
	})
	if sb.Len() == 0 {
		// Fragment without a body element.
		sb.WriteString(doc.Text())
	}
	return sb.String(), nil
}

// CleanText normalizes resume text while preserving line structure, so
// section headings and bullet lists survive into the model prompts.
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	lines := strings.Split(content, "\n")
	cleanedLines := make([]string, 0, len(lines))
	for _, line := range lines {
		cleanedLines = append(cleanedLines, cleanLine(line))
	}
	result := strings.Join(cleanedLines, "\n")

	result = removeExcessiveBlankLines(result)
	return strings.TrimSpace(result)
}

var innerSpace = regexp.MustCompile(`\s+`)

// cleanLine trims trailing whitespace and collapses runs of spaces, keeping
// leading indentation and bullet markers intact.
func cleanLine(line string) string {
	line = strings.TrimRight(line, " \t")
	trimmed := strings.TrimLeft(line, " \t")
	if trimmed == "" {
		return ""
	}

	if strings.HasPrefix(trimmed, "#") {
		return trimmed
	}
	if isBulletLine(trimmed) {
		indent := len(line) - len(trimmed)
		return strings.Repeat(" ", indent) + trimmed
	}

	indent := len(line) - len(trimmed)
	content := innerSpace.ReplaceAllString(trimmed, " ")
	return strings.Repeat(" ", indent) + content
}

func isBulletLine(trimmed string) bool {
	return strings.HasPrefix(trimmed, "- ") || strings.HasPrefix(trimmed, "* ") ||
		strings.HasPrefix(trimmed, "• ") || strings.HasPrefix(trimmed, "· ")
}

var excessiveBlankLines = regexp.MustCompile(`\n\n\n+`)

func removeExcessiveBlankLines(content string) string {
	return excessiveBlankLines.ReplaceAllString(content, "\n\n")
}
