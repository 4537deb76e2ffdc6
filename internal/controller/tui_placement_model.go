package controller

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/solderless/breadboard/internal/grid"
	m "github.com/solderless/breadboard/internal/model"
)

// placementItem adapts a Placement to the bubbles list.
type placementItem struct {
	placement m.Placement
}

func (i placementItem) FilterValue() string {
	return i.placement.Label
}

// placementDelegate renders one placement per line.
type placementDelegate struct{}

func (d placementDelegate) Height() int  { return 1 }
func (d placementDelegate) Spacing() int { return 0 }
func (d placementDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d placementDelegate) Render(w io.Writer, lm list.Model, index int, item list.Item) {
	pi, ok := item.(placementItem)
	if !ok {
		return
	}

	p := pi.placement
	isSelected := index == lm.Index()

	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Width(8)
	holeStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("11"))

	if isSelected {
		labelStyle = labelStyle.
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("6")).
			Bold(true)
	}

	detail := fmt.Sprintf("%s -> %s", p.Start, p.End)
	if p.Kind == m.PlacementDIP {
		detail = fmt.Sprintf("%s / %s (%d pins)", p.Start, p.End, p.PinCount)
	}

	if p.Kind == m.PlacementJumper {
		detail = fmt.Sprintf("%s -> %s %s", p.Start, p.End, jumperStyle(p.Color).Render(string(p.Color)))
	}

	line := fmt.Sprintf("%s %-14s %s",
		labelStyle.Render(p.Label),
		p.Kind,
		holeStyle.Render(detail),
	)
	_, _ = fmt.Fprint(w, line)
}

// placementModel is the interactive allocation browser: a filterable list
// of placements with a connectivity detail pane for the selection.
type placementModel struct {
	alloc    m.Allocation
	itemList list.Model
	width    int
	height   int
}

func newPlacementModel(alloc m.Allocation) placementModel {
	items := make([]list.Item, 0, len(alloc.Placements))
	for _, p := range alloc.Placements {
		items = append(items, placementItem{placement: p})
	}

	itemList := list.New(items, placementDelegate{}, 80, 20)
	itemList.SetShowPagination(false)
	itemList.SetShowFilter(true)
	itemList.SetShowHelp(false)
	itemList.SetShowTitle(false)
	itemList.SetShowStatusBar(false)
	itemList.FilterInput.Placeholder = "Filter by designator…"

	return placementModel{alloc: alloc, itemList: itemList}
}

func (pm placementModel) Init() tea.Cmd {
	return nil
}

func (pm placementModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		pm.width = msg.Width
		pm.height = msg.Height
		pm.itemList.SetWidth(pm.width)
		pm.itemList.SetHeight(max(pm.height-4, 4))

	case tea.KeyMsg:
		if pm.itemList.FilterState() != list.Filtering {
			switch msg.String() {
			case "q", "esc", "ctrl+c":
				return pm, tea.Quit
			}
		}
	}

	var cmd tea.Cmd
	pm.itemList, cmd = pm.itemList.Update(msg)

	return pm, cmd
}

func (pm placementModel) View() string {
	header := lipgloss.NewStyle().Bold(true).Render(
		fmt.Sprintf("Board %s: %d placements", pm.alloc.Board, len(pm.alloc.Placements)))

	return header + "\n" + pm.itemList.View() + "\n" + pm.detailLine()
}

// detailLine shows the connectivity group of the selected placement's
// start hole, so the user can see which holes share its net.
func (pm placementModel) detailLine() string {
	item, ok := pm.itemList.SelectedItem().(placementItem)
	if !ok {
		return ""
	}

	connected, err := grid.ConnectedHoles(item.placement.Start, pm.alloc.Board)
	if err != nil {
		return ""
	}

	group := make([]string, 0, len(connected))
	for _, h := range connected {
		group = append(group, string(h))
	}

	text := fmt.Sprintf("%s net: %s", item.placement.Start, strings.Join(group, " "))

	return lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Render(truncateToWidth(text, max(pm.width, 40)))
}

func truncateToWidth(text string, width int) string {
	if width <= 0 {
		return ""
	}

	if lipgloss.Width(text) <= width {
		return text
	}

	const ellipsis = "…"

	if width <= 1 {
		return ellipsis
	}

	runes := []rune(text)
	if len(runes) > width-1 {
		runes = runes[:width-1]
	}

	return string(runes) + ellipsis
}
