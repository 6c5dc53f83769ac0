package ui

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/sergi/go-diff/diffmatchpatch"

	"dpltest/internal/domain"
	"dpltest/internal/storage"
)

// ErrorViewer displays failing statements in an interactive TUI
type ErrorViewer struct {
	storage storage.Storage
}

// NewErrorViewer creates a new ErrorViewer
func NewErrorViewer(st storage.Storage) *ErrorViewer {
	return &ErrorViewer{storage: st}
}

// View displays failing statements in an interactive TUI
func (ev *ErrorViewer) View(results *domain.RunOutput) error {
	if len(results.Details) == 0 {
		color.Green("✓ No failing statements in the last run!")
		return nil
	}

	app := tview.NewApplication()

	list := tview.NewList().
		ShowSecondaryText(false).
		SetHighlightFullLine(true)

	for i := range results.Details {
		list.AddItem(listItemText(results.Details[i], i), "", 0, nil)
	}

	list.SetMainTextColor(tview.Styles.PrimaryTextColor).
		SetSelectedTextColor(tcell.ColorWhite).
		SetSelectedBackgroundColor(tcell.ColorDarkCyan)

	statsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(false)

	detailsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(true).
		SetWordWrap(true)

	detailsContainer := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(detailsView, 0, 1, false).
		AddItem(tview.NewBox(), 2, 0, false)

	rightSide := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(statsView, 3, 0, false).
		AddItem(detailsContainer, 0, 1, false)

	// list on left (1/3), details on right (2/3)
	flex := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(list, 0, 1, true).
		AddItem(rightSide, 0, 2, false)

	headerView := tview.NewTextView().
		SetTextAlign(tview.AlignCenter).
		SetDynamicColors(true)

	updateHeader := func() {
		headerView.SetText(fmt.Sprintf(
			" Failing statements (%d total, %d unresolved) | ↑↓ navigate, [yellow]R[white] mark resolved, → details, ← back, Ctrl+C exit ",
			len(results.Details), countUnresolved(results.Details)))
	}
	updateHeader()

	updateDetails := func() {
		index := list.GetCurrentItem()
		if index >= 0 && index < len(results.Details) {
			failure := results.Details[index]
			statsView.SetText(formatFailureStats(failure))
			detailsView.SetText(formatFailureDetails(failure))
			detailsView.ScrollToBeginning()
		}
	}

	var saveErr error
	list.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyEnter, tcell.KeyRight:
			app.SetFocus(detailsView)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		case tcell.KeyRune:
			if event.Rune() == 'r' || event.Rune() == 'R' {
				index := list.GetCurrentItem()
				if index >= 0 && index < len(results.Details) {
					results.Details[index].Resolved = !results.Details[index].Resolved
					list.SetItemText(index, listItemText(results.Details[index], index), "")
					updateHeader()
					updateDetails()
					if err := ev.storage.SaveOutput(results); err != nil {
						saveErr = err
					}
				}
				return nil
			}
		}
		return event
	})

	detailsView.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyLeft, tcell.KeyEsc:
			app.SetFocus(list)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		}
		return event
	})

	list.SetChangedFunc(func(index int, mainText string, secondaryText string, shortcut rune) {
		updateDetails()
	})
	updateDetails()

	mainLayout := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(headerView, 1, 0, false).
		AddItem(tview.NewBox(), 1, 0, false).
		AddItem(flex, 0, 1, true)

	if err := app.SetRoot(mainLayout, true).SetFocus(list).Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	if saveErr != nil {
		return fmt.Errorf("failed to save resolved status: %w", saveErr)
	}
	return nil
}

func countUnresolved(failures []domain.CaseFailure) int {
	count := 0
	for _, failure := range failures {
		if !failure.Resolved {
			count++
		}
	}
	return count
}

// listItemText formats a list entry; resolved entries are greyed out
func listItemText(failure domain.CaseFailure, index int) string {
	statement := tview.Escape(strings.TrimSpace(failure.Statement))
	if statement == "" {
		statement = fmt.Sprintf("Statement %d", index+1)
	}
	if failure.Resolved {
		return fmt.Sprintf("[gray]✓ [yellow]%d.[gray] %s[white]", index+1, statement)
	}
	return fmt.Sprintf("[yellow]%d.[white] %s", index+1, statement)
}

// formatFailureStats formats the header line above the details
func formatFailureStats(failure domain.CaseFailure) string {
	path := failure.FixturePath
	if path == "" {
		path = "Unknown fixture"
	}
	description := failure.Description
	if description == "" {
		description = "(no description)"
	}
	return fmt.Sprintf("[cyan]fixture:[white] [yellow]%s:%d[white]\n[cyan]test:[white] %s\n",
		tview.Escape(path), failure.Line, tview.Escape(description))
}

// formatFailureDetails formats a failing statement using tview color tags
func formatFailureDetails(failure domain.CaseFailure) string {
	var b strings.Builder

	fmt.Fprintf(&b, "[red]✗ %s[white]\n\n", tview.Escape(failure.Statement))
	fmt.Fprintf(&b, "[yellow]Expected:[white]\n%s\n\n", quoteLine(failure.Expected))
	fmt.Fprintf(&b, "[yellow]Actual:[white]\n%s\n\n", quoteLine(failure.Actual))
	fmt.Fprintf(&b, "[yellow]Diff:[white]\n%s\n\n", diffLine(failure.Expected, failure.Actual))

	if failure.ExitCode != 0 {
		fmt.Fprintf(&b, "[yellow]Exit code:[white] %d\n\n", failure.ExitCode)
	}
	if failure.Stderr != "" {
		lines := strings.Split(strings.TrimRight(failure.Stderr, "\n"), "\n")
		fmt.Fprintf(&b, "[yellow]Stderr:[white]\n")
		for i, line := range lines {
			if i == 10 {
				fmt.Fprintf(&b, "  [gray]... and %d more lines[white]\n", len(lines)-10)
				break
			}
			fmt.Fprintf(&b, "  %s\n", tview.Escape(line))
		}
	}

	return b.String()
}

// quoteLine shows a line with visible boundaries so whitespace differences stand out
func quoteLine(s string) string {
	return "  " + tview.Escape(fmt.Sprintf("%q", s))
}

// diffLine renders a character diff: deletions red, insertions green
func diffLine(expected, actual string) string {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffCleanupSemantic(dmp.DiffMain(expected, actual, false))

	var b strings.Builder
	b.WriteString("  ")
	for _, d := range diffs {
		text := tview.Escape(d.Text)
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			fmt.Fprintf(&b, "[black:red]%s[-:-]", text)
		case diffmatchpatch.DiffInsert:
			fmt.Fprintf(&b, "[black:green]%s[-:-]", text)
		default:
			b.WriteString(text)
		}
	}
	return b.String()
}
