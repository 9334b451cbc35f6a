package builtin

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// defaultStripChars matches what a bare rstrip removes
const defaultStripChars = " \t\n\r\v\f"

type trailingWhitespaceFlags struct {
	Chars                string   `help:"The set of characters to strip from the end of lines."`
	MarkdownLinebreakExt []string `name:"markdown-linebreak-ext" help:"Markdown extensions (or *) whose two-space hard breaks are kept."`
}

func trimTrailingWhitespace(ctx context.Context, args []string, files []File) (bool, string) {
	var flags trailingWhitespaceFlags
	if err := parseArgs("trailing-whitespace", &flags, args); err != nil {
		return true, err.Error() + "\n"
	}

	markdownExts, err := markdownExtensions(flags.MarkdownLinebreakExt)
	if err != nil {
		return true, err.Error() + "\n"
	}
	chars := flags.Chars
	if chars == "" {
		chars = defaultStripChars
	}

	var r report
	for _, f := range files {
		if ctx.Err() != nil {
			r.fail("%s", ctx.Err())
			break
		}
		data, err := os.ReadFile(f.Path)
		if err != nil {
			r.fail("%s: %s", f.Name, err)
			continue
		}

		ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(f.Name), "."))
		isMarkdown := markdownExts["*"] || markdownExts[ext]

		fixed := trimLines(data, isMarkdown, chars)
		if bytes.Equal(fixed, data) {
			continue
		}
		if err := os.WriteFile(f.Path, fixed, 0644); err != nil {
			r.fail("%s: %s", f.Name, err)
			continue
		}
		r.fail("Fixing %s", f.Name)
	}
	return r.result()
}

func markdownExtensions(values []string) (map[string]bool, error) {
	exts := make(map[string]bool)
	for _, v := range values {
		for _, ext := range strings.Split(v, ",") {
			ext = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(ext), "."))
			if ext == "" {
				continue
			}
			if strings.ContainsAny(ext, `./\:`) {
				return nil, fmt.Errorf("bad --markdown-linebreak-ext extension '%s' (has . / \\ :)", ext)
			}
			exts[ext] = true
		}
	}
	return exts, nil
}

// trimLines strips chars from every line end, keeping line endings and,
// for markdown, a two-space hard break on non-blank lines
func trimLines(data []byte, isMarkdown bool, chars string) []byte {
	var out bytes.Buffer
	out.Grow(len(data))

	for len(data) > 0 {
		line := data
		if i := bytes.IndexByte(data, '\n'); i >= 0 {
			line = data[:i+1]
		}
		data = data[len(line):]

		eol := ""
		switch {
		case bytes.HasSuffix(line, []byte("\r\n")):
			eol = "\r\n"
		case bytes.HasSuffix(line, []byte("\n")):
			eol = "\n"
		}
		content := line[:len(line)-len(eol)]

		if isMarkdown && len(bytes.TrimSpace(content)) > 0 && bytes.HasSuffix(content, []byte("  ")) {
			out.Write(bytes.TrimRight(content[:len(content)-2], chars))
			out.WriteString("  ")
		} else {
			out.Write(bytes.TrimRight(content, chars))
		}
		out.WriteString(eol)
	}
	return out.Bytes()
}
