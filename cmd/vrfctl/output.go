package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/charmbracelet/x/ansi"

	"github.com/alexisbeaulieu97/vrfctl/internal/config"
	"github.com/alexisbeaulieu97/vrfctl/internal/engine"
	"github.com/alexisbeaulieu97/vrfctl/internal/model"
	"github.com/alexisbeaulieu97/vrfctl/internal/vrf"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")).Padding(0, 1)
	cellStyle    = lipgloss.NewStyle().Padding(0, 1)
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	pendingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	failureStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	skippedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	summaryStyle = lipgloss.NewStyle().MarginTop(1)
)

const maxMessageWidth = 60

func printTableOutput(w io.Writer, summary *engine.Summary, verbose bool) {
	title := "VRF results"
	if summary.DryRun {
		title += " (dry run)"
	}
	fmt.Fprintln(w, titleStyle.Render(title))

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("", "VRF", "STATUS", "MESSAGE").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	for _, result := range summary.Results {
		t.Row(
			statusStyle(result.Status).Render(statusSymbol(result.Status)),
			result.Name,
			result.Status,
			truncateString(result.Message, maxMessageWidth),
		)
	}
	fmt.Fprintln(w, t.Render())

	line := fmt.Sprintf("Total: %d  Changed: %d  Unchanged: %d  Failed: %d", summary.Total, summary.Changed, summary.Unchanged, summary.Failed)
	if summary.Skipped > 0 {
		line += fmt.Sprintf("  Not run: %d", summary.Skipped)
	}
	line += fmt.Sprintf("  Duration: %s", summary.Duration.Round(time.Millisecond))
	fmt.Fprintln(w, summaryStyle.Render(line))

	if !verbose {
		return
	}

	for _, result := range summary.Results {
		if result.Diff == "" && result.Err == nil {
			continue
		}
		fmt.Fprintf(w, "\n--- vrf: %s ---\n", result.Name)
		if result.Diff != "" {
			fmt.Fprintln(w, strings.TrimRight(result.Diff, "\n"))
		}
		if result.Err != nil {
			fmt.Fprintf(w, "Error: %v\n", result.Err)
		}
	}
}

type jsonResult struct {
	Name           string          `json:"name"`
	Changed        bool            `json:"changed"`
	Failed         bool            `json:"failed"`
	CheckMode      bool            `json:"check_mode"`
	State          string          `json:"state"`
	Status         string          `json:"status"`
	Message        string          `json:"message,omitempty"`
	StatusCode     int             `json:"status_code,omitempty"`
	ExistingConfig *vrf.Envelope   `json:"existing_config"`
	IntendedConfig *vrf.Envelope   `json:"intended_config"`
	Response       json.RawMessage `json:"response,omitempty"`
	Diff           string          `json:"diff,omitempty"`
	Error          string          `json:"error,omitempty"`
	Duration       float64         `json:"duration_seconds"`
}

type jsonSummary struct {
	RunID     string  `json:"run_id"`
	DryRun    bool    `json:"dry_run"`
	Total     int     `json:"total"`
	Changed   int     `json:"changed"`
	Unchanged int     `json:"unchanged"`
	Failed    int     `json:"failed"`
	Skipped   int     `json:"skipped"`
	ExitCode  int     `json:"exit_code"`
	Duration  float64 `json:"duration_seconds"`
}

type jsonOutput struct {
	Config  *config.Config `json:"config"`
	Summary jsonSummary    `json:"summary"`
	Results []jsonResult   `json:"results"`
}

func printJSONOutput(w io.Writer, cfg *config.Config, summary *engine.Summary) error {
	out := jsonOutput{
		Config: cfg,
		Summary: jsonSummary{
			RunID:     summary.RunID,
			DryRun:    summary.DryRun,
			Total:     summary.Total,
			Changed:   summary.Changed,
			Unchanged: summary.Unchanged,
			Failed:    summary.Failed,
			Skipped:   summary.Skipped,
			ExitCode:  summary.ExitCode(),
			Duration:  summary.Duration.Seconds(),
		},
		Results: make([]jsonResult, len(summary.Results)),
	}

	for i, result := range summary.Results {
		jr := jsonResult{
			Name:           result.Name,
			Changed:        result.Changed,
			Failed:         result.Failed,
			CheckMode:      result.CheckMode,
			State:          string(result.State),
			Status:         result.Status,
			Message:        result.Message,
			StatusCode:     result.StatusCode(),
			ExistingConfig: envelope(result.ExistingConfig),
			IntendedConfig: envelope(result.IntendedConfig),
			Response:       result.Response,
			Diff:           result.Diff,
			Duration:       result.Duration.Seconds(),
		}
		if result.Err != nil {
			jr.Error = result.Err.Error()
		}
		out.Results[i] = jr
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(out)
}

func envelope(d *vrf.Definition) *vrf.Envelope {
	if d == nil {
		return nil
	}
	return &vrf.Envelope{Definition: d}
}

func statusSymbol(status string) string {
	switch status {
	case model.StatusSuccess:
		return "✔"
	case model.StatusSkipped:
		return "="
	case model.StatusWouldCreate:
		return "+"
	case model.StatusWouldUpdate:
		return "~"
	case model.StatusFailed:
		return "✖"
	default:
		return "?"
	}
}

func statusStyle(status string) lipgloss.Style {
	switch status {
	case model.StatusSuccess:
		return successStyle
	case model.StatusWouldCreate, model.StatusWouldUpdate:
		return pendingStyle
	case model.StatusFailed:
		return failureStyle
	default:
		return skippedStyle
	}
}

// truncateString shortens s to maxLen terminal cells without splitting a rune.
func truncateString(s string, maxLen int) string {
	return ansi.Truncate(s, maxLen, "...")
}
