package runner

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"

	"github.com/alecthomas/kong"

	"github.com/renato0307/hookpin/internal/domain"
	"github.com/renato0307/hookpin/internal/ports"
)

type pygrepFlags struct {
	IgnoreCase bool `short:"i" name:"ignore-case"`
	Multiline  bool
	Negate     bool
}

// pygrep fails when the entry regex matches any file, or with --negate
// when a file has no match at all
func pygrep(ctx context.Context, hook domain.ResolvedHook, root string, files []string) (ports.ExecResult, error) {
	var flags pygrepFlags
	parser, err := kong.New(&flags, kong.Name("pygrep"), kong.Writers(io.Discard, io.Discard), kong.Exit(func(int) {}))
	if err != nil {
		return ports.ExecResult{}, err
	}
	if _, err := parser.Parse(hook.Args); err != nil {
		return ports.ExecResult{ExitCode: 1, Output: []byte(fmt.Sprintf("%s: %s\n", hook.ID, err))}, nil
	}

	pattern := hook.Entry
	if flags.IgnoreCase {
		pattern = "(?i)" + pattern
	}
	if flags.Multiline {
		pattern = "(?m)" + pattern
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return ports.ExecResult{ExitCode: 1, Output: []byte(fmt.Sprintf("%s: invalid regex: %s\n", hook.ID, err))}, nil
	}

	var out bytes.Buffer
	result := ports.ExecResult{}
	for _, f := range files {
		if err := ctx.Err(); err != nil {
			return ports.ExecResult{}, err
		}
		path := f
		if !filepath.IsAbs(path) {
			path = filepath.Join(root, f)
		}
		data, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintf(&out, "%s: %s\n", f, err)
			result.ExitCode = 1
			continue
		}

		var matched bool
		if flags.Multiline {
			matched = grepWhole(&out, re, f, data, flags.Negate)
		} else {
			matched = grepLines(&out, re, f, data, flags.Negate)
		}
		if matched != flags.Negate {
			result.ExitCode = 1
		}
		if flags.Negate && !matched {
			fmt.Fprintf(&out, "%s\n", f)
		}
	}

	result.Output = out.Bytes()
	return result, nil
}

func grepLines(out *bytes.Buffer, re *regexp.Regexp, name string, data []byte, quiet bool) bool {
	matched := false
	lineNo := 0
	for len(data) > 0 {
		lineNo++
		line := data
		if i := bytes.IndexByte(data, '\n'); i >= 0 {
			line = data[:i+1]
		}
		data = data[len(line):]

		if !re.Match(bytes.TrimRight(line, "\r\n")) {
			continue
		}
		matched = true
		if quiet {
			return true
		}
		fmt.Fprintf(out, "%s:%d:%s", name, lineNo, line)
		if !bytes.HasSuffix(line, []byte("\n")) {
			out.WriteByte('\n')
		}
	}
	return matched
}

func grepWhole(out *bytes.Buffer, re *regexp.Regexp, name string, data []byte, quiet bool) bool {
	locs := re.FindAllIndex(data, -1)
	if len(locs) == 0 {
		return false
	}
	if quiet {
		return true
	}

	for _, loc := range locs {
		start := bytes.LastIndexByte(data[:loc[0]], '\n') + 1
		end := len(data)
		if i := bytes.IndexByte(data[loc[1]:], '\n'); i >= 0 {
			end = loc[1] + i + 1
		}
		lineNo := bytes.Count(data[:loc[0]], []byte("\n")) + 1
		fmt.Fprintf(out, "%s:%d:%s", name, lineNo, data[start:end])
		if !bytes.HasSuffix(data[start:end], []byte("\n")) {
			out.WriteByte('\n')
		}
	}
	return true
}
