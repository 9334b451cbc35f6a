package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/renato0307/hookpin/internal/domain"
)

// HistoryCmd shows past hook runs
type HistoryCmd struct {
	Format string        `help:"Output format: table or json" enum:"table,json" default:"table"`
	Hook   string        `help:"Only runs of this hook id"`
	Limit  int           `help:"Maximum runs to show (0 = all)" short:"l" default:"50"`
	Since  time.Duration `help:"Only runs started within this duration (e.g. 24h)"`
	Status string        `help:"Only runs with this status (failed, passed or skipped)"`
}

// Run executes the history command
func (h *HistoryCmd) Run(cli *CLI) error {
	filter := domain.RunFilter{
		HookID: h.Hook,
		Limit:  h.Limit,
		Status: domain.HookStatus(h.Status),
	}
	if h.Since > 0 {
		filter.Since = time.Now().Add(-h.Since)
	}

	runs, err := cli.Container.HistoryService.List(context.Background(), filter)
	if err != nil {
		return err
	}

	if h.Format == "json" {
		type runJSON struct {
			DurationMs int64  `json:"duration_ms"`
			ExitCode   int    `json:"exit_code"`
			Files      int    `json:"files"`
			HookID     string `json:"hook_id"`
			Repo       string `json:"repo"`
			Rev        string `json:"rev,omitempty"`
			RunID      string `json:"run_id"`
			StartedAt  string `json:"started_at"`
			Status     string `json:"status"`
		}
		out := make([]runJSON, 0, len(runs))
		for _, r := range runs {
			out = append(out, runJSON{
				DurationMs: r.Duration.Milliseconds(),
				ExitCode:   r.ExitCode,
				Files:      r.Files,
				HookID:     r.HookID,
				Repo:       r.Repo,
				Rev:        r.Rev,
				RunID:      r.RunID,
				StartedAt:  r.StartedAt.Format(time.RFC3339),
				Status:     string(r.Status),
			})
		}
		data, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	if len(runs) == 0 {
		fmt.Println("No hook runs recorded yet.")
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Started", "Hook", "Status", "Exit", "Files", "Duration", "Run"})
	for _, r := range runs {
		runID := r.RunID
		if len(runID) > 8 {
			runID = runID[:8]
		}
		t.AppendRow(table.Row{
			r.StartedAt.Local().Format("2006-01-02 15:04:05"),
			r.HookID,
			string(r.Status),
			r.ExitCode,
			r.Files,
			r.Duration.Round(time.Millisecond).String(),
			runID,
		})
	}
	t.Render()
	return nil
}
