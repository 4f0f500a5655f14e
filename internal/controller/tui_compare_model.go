package controller

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mouse-blink/regdump/internal/domain"
	m "github.com/mouse-blink/regdump/internal/model"
)

// functionItem is one differing function in the browser list.
type functionItem struct {
	name    string
	blocks  int
	onlyIDs int
	detail  string
}

func (f functionItem) FilterValue() string {
	return f.name
}

// functionDelegate renders one list row: diff counts, then the function
// name truncated to the row.
type functionDelegate struct{}

func (d functionDelegate) Height() int  { return 1 }
func (d functionDelegate) Spacing() int { return 0 }
func (d functionDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d functionDelegate) Render(w io.Writer, lm list.Model, index int, item list.Item) {
	fn, ok := item.(functionItem)
	if !ok {
		return
	}

	isSelected := index == lm.Index()

	var nameStyle, countStyle lipgloss.Style

	if isSelected {
		nameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("6")).
			Bold(true)
		countStyle = nameStyle.Width(12).Align(lipgloss.Right)
	} else {
		nameStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
		countStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11")).
			Bold(true).
			Width(12).
			Align(lipgloss.Right)
	}

	width := lm.Width() - 14 // count column (12) + spacing (2)

	line := fmt.Sprintf("%s  %s",
		countStyle.Render(fmt.Sprintf("%d blocks", fn.blocks+fn.onlyIDs)),
		nameStyle.Render(truncateToWidth(fn.name, width)),
	)
	_, _ = fmt.Fprint(w, line)
}

func truncateToWidth(text string, width int) string {
	if width <= 0 {
		return ""
	}

	if lipgloss.Width(text) <= width {
		return text
	}

	const ellipsis = "…"

	maxWidth := width - lipgloss.Width(ellipsis)
	if maxWidth <= 0 {
		return ellipsis
	}

	currentWidth := 0

	result := make([]rune, 0, len(text))

	for _, r := range text {
		rWidth := lipgloss.Width(string(r))
		if currentWidth+rWidth > maxWidth {
			break
		}

		result = append(result, r)
		currentWidth += rWidth
	}

	return string(result) + ellipsis
}

// compareModel browses a comparison report: a filterable function list,
// with a per-function detail view on enter.
type compareModel struct {
	width    int
	height   int
	title    string
	summary  string
	funcList list.Model
	detail   viewport.Model
	viewing  bool
	selected functionItem
}

func newCompareModel(rep m.Report) compareModel {
	items := make([]list.Item, 0, len(rep.Functions))

	for _, fd := range rep.Functions {
		items = append(items, functionItem{
			name:    fd.Name,
			blocks:  len(fd.Blocks),
			onlyIDs: len(fd.BlocksOnlyInLeft) + len(fd.BlocksOnlyInRight),
			detail:  strings.Join(domain.RenderFunctionDiff(rep, fd), "\n"),
		})
	}

	funcList := list.New(items, functionDelegate{}, 80, 20)
	funcList.SetShowPagination(false)
	funcList.SetShowFilter(true)
	funcList.SetShowHelp(false)
	funcList.SetShowTitle(false)
	funcList.SetShowStatusBar(false)
	funcList.FilterInput.Placeholder = "Filter by function…"

	return compareModel{
		title:    fmt.Sprintf("Dump comparison: %s vs %s", rep.LeftLabel, rep.RightLabel),
		summary:  summarizeReport(rep),
		funcList: funcList,
		detail:   viewport.New(80, 20),
	}
}

func summarizeReport(rep m.Report) string {
	parts := []string{fmt.Sprintf("%d functions differ", len(rep.Functions))}

	if n := len(rep.SectionsOnlyInLeft); n > 0 {
		parts = append(parts, fmt.Sprintf("%d only in %s", n, rep.LeftLabel))
	}

	if n := len(rep.SectionsOnlyInRight); n > 0 {
		parts = append(parts, fmt.Sprintf("%d only in %s", n, rep.RightLabel))
	}

	return strings.Join(parts, " • ")
}

func (cm compareModel) Init() tea.Cmd {
	return nil
}

func (cm compareModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		cm.width = msg.Width
		cm.height = msg.Height
		cm.funcList.SetWidth(cm.width - 6)
		cm.detail.Width = cm.width - 4
		cm.detail.Height = contentHeight(cm.height)

		return cm, nil

	case tea.KeyMsg:
		if cm.viewing {
			return cm.updateDetail(msg)
		}

		return cm.updateList(msg)
	}

	return cm, nil
}

func (cm compareModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return cm, tea.Quit

	case "enter":
		if cm.funcList.FilterState() == list.Filtering {
			break
		}

		item, ok := cm.funcList.SelectedItem().(functionItem)
		if !ok {
			return cm, nil
		}

		cm.viewing = true
		cm.selected = item
		cm.detail.SetContent(item.detail)
		cm.detail.GotoTop()

		return cm, nil
	}

	var cmd tea.Cmd

	cm.funcList, cmd = cm.funcList.Update(msg)

	return cm, cmd
}

func (cm compareModel) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return cm, tea.Quit

	case "esc":
		cm.viewing = false

		return cm, nil
	}

	var cmd tea.Cmd

	cm.detail, cmd = cm.detail.Update(msg)

	return cm, cmd
}

func (cm compareModel) View() string {
	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")).
		Bold(true).
		Padding(1, 0, 0, 2)

	summaryStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252")).
		Padding(0, 0, 1, 2)

	footerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Align(lipgloss.Center).
		Width(cm.width)

	if cm.viewing {
		return lipgloss.JoinVertical(lipgloss.Left,
			titleStyle.Render(cm.selected.name),
			summaryStyle.Render(cm.title),
			cm.detail.View(),
			footerStyle.Render("↑/↓ scroll • esc back • q quit"),
		)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(cm.title),
		summaryStyle.Render(cm.summary),
		cm.renderList(),
		footerStyle.Render("↑/k up • ↓/j down • / filter • enter details • q quit"),
	)
}

func (cm compareModel) renderList() string {
	// Screen height minus title (2), summary (2), footer (1), border (2)
	// and padding (2).
	listHeight := contentHeight(cm.height)
	listWidth := cm.width - 6

	cm.funcList.SetHeight(listHeight)
	cm.funcList.SetWidth(listWidth)

	container := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("6")).
		Margin(0, 1).
		Padding(0, 1)

	return container.Render(cm.funcList.View())
}

func contentHeight(total int) int {
	h := total - 9
	if h < 5 {
		h = 5
	}

	return h
}
