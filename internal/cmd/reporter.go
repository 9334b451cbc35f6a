package cmd

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/renato0307/hookpin/internal/domain"
	"github.com/renato0307/hookpin/internal/ports"
	"github.com/renato0307/hookpin/internal/theme"
)

// Reporter prints hook results as they finish
type Reporter struct {
	out     io.Writer
	verbose bool
}

// Verify interface compliance at compile time
var _ ports.RunReporter = (*Reporter)(nil)

// NewReporter creates a reporter writing to out.
// verbose prints the output of passing hooks too.
func NewReporter(out io.Writer, verbose bool) *Reporter {
	return &Reporter{out: out, verbose: verbose}
}

// HookFinished implements ports.RunReporter
func (r *Reporter) HookFinished(result domain.HookResult) {
	name := result.Hook.DisplayName()
	label := result.Status.Label()
	line := domain.FormatResultLine(name, result.SkipReason, label, domain.ResultLineWidth)
	prefix := line[:len(line)-len(result.SkipReason)-len(label)]

	fmt.Fprintln(r.out, prefix+theme.ReasonStyle.Render(result.SkipReason)+theme.StatusStyle(result.Status).Render(label))

	if result.Status == domain.StatusSkipped {
		return
	}
	verbose := r.verbose || result.Hook.Verbose
	if result.Status == domain.StatusPassed && !verbose {
		return
	}

	fmt.Fprintln(r.out, theme.DetailStyle.Render("- hook id: "+result.Hook.ID))
	if verbose {
		fmt.Fprintln(r.out, theme.DetailStyle.Render(fmt.Sprintf("- duration: %.2fs", result.Duration.Seconds())))
	}
	if result.ExitCode != 0 {
		fmt.Fprintln(r.out, theme.DetailStyle.Render(fmt.Sprintf("- exit code: %d", result.ExitCode)))
	}
	if result.FilesModified {
		fmt.Fprintln(r.out, theme.DetailStyle.Render("- files were modified by this hook"))
	}

	output := bytes.TrimSpace(result.Output)
	if len(output) > 0 {
		fmt.Fprintln(r.out)
		fmt.Fprintln(r.out, string(output))
		fmt.Fprintln(r.out)
	}
}

// ShowDiff implements ports.RunReporter
func (r *Reporter) ShowDiff(diff []byte) {
	fmt.Fprintln(r.out, theme.WarningStyle.Render("All changes made by hooks:"))
	printDiff(r.out, string(diff))
}

// printDiff prints a unified diff with colored hunks
func printDiff(out io.Writer, diff string) {
	scanner := bufio.NewScanner(strings.NewReader(diff))
	scanner.Buffer(make([]byte, 0, 64*1024), 10*1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		switch {
		case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"):
			fmt.Fprintln(out, theme.HighlightStyle.Render(line))
		case strings.HasPrefix(line, "@@"):
			fmt.Fprintln(out, theme.HunkStyle.Render(line))
		case strings.HasPrefix(line, "+"):
			fmt.Fprintln(out, theme.AdditionsStyle.Render(line))
		case strings.HasPrefix(line, "-"):
			fmt.Fprintln(out, theme.DeletionsStyle.Render(line))
		default:
			fmt.Fprintln(out, line)
		}
	}
}
