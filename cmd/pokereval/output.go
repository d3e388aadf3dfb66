package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/lox/pokereval/equity"
	"github.com/lox/pokereval/poker"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	handStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("14"))

	winStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))

	tieStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11"))

	loseStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9"))

	categoryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("12"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8"))
)

func percent(n, total uint64) string {
	if total == 0 {
		return "-"
	}
	return fmt.Sprintf("%.1f%%", float64(n)/float64(total)*100)
}

// renderResult prints an equity result as an aligned table, one row per
// evaluated seat.
func renderResult(w io.Writer, req equity.Request, res *equity.Result) {
	if len(req.Board) > 0 {
		fmt.Fprintf(w, "%s\n", headerStyle.Render("board"))
		fmt.Fprintf(w, "%s\n\n", strings.Join(req.Board, " "))
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	cols := []string{"seat", "hand"}
	if res.Info.HasHiPot {
		cols = append(cols, "win hi", "tie hi")
	}
	if res.Info.HasLoPot {
		cols = append(cols, "win lo", "tie lo")
	}
	cols = append(cols, "scoop", "ev")
	header := make([]string, len(cols))
	for i, c := range cols {
		header[i] = headerStyle.Render(c)
	}
	fmt.Fprintln(tw, strings.Join(header, "\t"))

	samples := res.Info.Samples
	for _, p := range res.Eval {
		row := []string{
			fmt.Sprintf("%d", p.Seat),
			handCell(req.Pockets[p.Seat]),
		}
		if p.Hi != nil {
			row = append(row, winStyle.Render(percent(p.Hi.Win, samples)), tieStyle.Render(percent(p.Hi.Tie, samples)))
		}
		if p.Lo != nil {
			row = append(row, winStyle.Render(percent(p.Lo.Win, samples)), tieStyle.Render(percent(p.Lo.Tie, samples)))
		}
		row = append(row, percent(p.Scoop, samples), evCell(p, res.Info.Mode))
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	tw.Flush()

	if excluded := res.Seats.Total() - res.Seats.Len(); excluded > 0 {
		fmt.Fprintf(w, "\n%s\n", dimStyle.Render(fmt.Sprintf("%d seat(s) folded or hidden", excluded)))
	}
	fmt.Fprintf(w, "\n%d samples (%s) in %v\n", samples, res.Info.Mode, res.Info.Elapsed.Truncate(time.Millisecond))
}

// handCell renders a pocket, naming two-card hold'em starting hands.
func handCell(tokens []string) string {
	cell := handStyle.Render(strings.Join(tokens, " "))
	cards, err := poker.ParseCardList(tokens)
	if err != nil {
		return cell
	}
	if name, ok := poker.NameStartingHand(cards); ok {
		cell += dimStyle.Render(fmt.Sprintf(" %s %s", name, name.Tier()))
	}
	return cell
}

func evCell(p equity.PocketStats, mode equity.Mode) string {
	ev := fmt.Sprintf("%.1f", p.EV)
	if mode != equity.ModeMonteCarlo {
		return ev
	}
	lo, hi := p.ConfidenceInterval(0.95)
	return ev + dimStyle.Render(fmt.Sprintf(" [%.1f, %.1f]", lo, hi))
}

// renderBest prints a best-hand report.
func renderBest(w io.Writer, side string, r equity.HandReport) {
	if len(r.Combination) == 0 {
		return
	}
	label := r.Combination[0]
	fmt.Fprintf(w, "%s %s %s\n",
		headerStyle.Render(side),
		categoryStyle.Render(label),
		handStyle.Render(strings.Join(r.Combination[1:], " ")))
	if label != "Nothing" {
		fmt.Fprintf(w, "%s %d\n", dimStyle.Render("value"), r.Value)
	}
}

// renderBatch prints one summary line per scenario.
func renderBatch(w io.Writer, runs []batchRun) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
		headerStyle.Render("scenario"),
		headerStyle.Render("game"),
		headerStyle.Render("samples"),
		headerStyle.Render("ev by seat"))
	for _, run := range runs {
		if run.Err != "" {
			fmt.Fprintf(tw, "%s\t%s\t-\t%s\n", run.Name, run.Game, loseStyle.Render(run.Err))
			continue
		}
		evs := make([]string, len(run.Result.Eval))
		for i, p := range run.Result.Eval {
			evs[i] = fmt.Sprintf("%d:%.1f", p.Seat, p.EV)
		}
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\n", run.Name, run.Game, run.Result.Info.Samples, strings.Join(evs, " "))
	}
	tw.Flush()
}
