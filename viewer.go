package main

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"wiremap/canvas"
	"wiremap/render"
	"wiremap/wiring"
)

const panelHeight = 8

var (
	statusStyle   = lipgloss.NewStyle().Reverse(true)
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff0000")).Bold(true)
	successStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#00aa00"))
	conflictStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff0000"))
	droppedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#d7af00"))
	panelTitle    = lipgloss.NewStyle().Bold(true).Underline(true)
)

var termColors = map[string]string{
	"black":  "#c0c0c0", // drawn on a dark terminal
	"red":    "#ff0000",
	"green":  "#00aa00",
	"blue":   "#5f87ff",
	"orange": "#ffa500",
	"purple": "#af5fff",
	"#555":   "#808080",
	"#000":   "#c0c0c0",
}

func initialModel(file *wiring.File, tablePath string, config *Config) (model, error) {
	m := model{
		zoom:      defaultZoom,
		mode:      ModeBoard,
		file:      file,
		tablePath: tablePath,
		config:    config,
	}
	if err := m.renderDiagram(); err != nil {
		return m, err
	}
	m.focusBoard()
	return m, nil
}

// focusBoard pans to the top-left corner of the placed components.
func (m *model) focusBoard() {
	b := m.result.Layout.Bounds()
	z := zoomLevels[m.zoom]
	m.panX = int(float64(b.X) / z.cellW)
	m.panY = int(float64(b.Y) / z.cellH)
	m.ensurePanInBounds()
}

// renderDiagram records the diagram once; zooming replays the recording.
func (m *model) renderDiagram() error {
	rec := &canvas.Recorder{}
	res, err := render.Render(rec, m.file.Spec(), m.file.Table)
	if err != nil {
		return err
	}
	m.result = res
	m.drawing = rec
	m.rebuildGrid()
	return nil
}

func (m *model) rebuildGrid() {
	z := zoomLevels[m.zoom]
	grid := canvas.NewGrid(nil, z.cellW, z.cellH)
	if err := m.drawing.Replay(grid); err != nil {
		m.errorMessage = err.Error()
		return
	}
	m.grid = grid
}

func (m *model) gridSize() (int, int) {
	if m.grid == nil || len(m.grid.Cells()) == 0 {
		return 0, 0
	}
	cells := m.grid.Cells()
	return len(cells[0]), len(cells)
}

func (m *model) viewportSize() (int, int) {
	h := m.height - 1
	if m.mode != ModeBoard {
		h -= panelHeight
	}
	return max(1, m.width), max(1, h)
}

func (m *model) reload() {
	if m.tablePath == "" {
		m.errorMessage = "built-in wiring table, nothing to reload"
		return
	}
	file, err := wiring.LoadFile(m.tablePath)
	if err != nil {
		m.errorMessage = err.Error()
		return
	}
	m.file = file
	if err := m.renderDiagram(); err != nil {
		m.errorMessage = err.Error()
		return
	}
	m.ensurePanInBounds()
	m.successMessage = "Reloaded " + m.tablePath
}

func (m *model) export() {
	format := m.config.Format
	filename := m.config.GetSavePath(defaultFilename(format))
	if _, err := exportDiagram(m.file, format, filename, m.config.Scale); err != nil {
		m.errorMessage = err.Error()
		return
	}
	m.successMessage = "Saved " + filename
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ensurePanInBounds()
		return m, nil

	case tea.KeyMsg:
		m.errorMessage = ""
		m.successMessage = ""

		if m.help {
			switch msg.String() {
			case "esc", "q", "?":
				m.help = false
			case "ctrl+c":
				return m, tea.Quit
			}
			return m, nil
		}

		switch key := msg.String(); key {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "?":
			m.help = true
		case "h", "j", "k", "l", "H", "J", "K", "L",
			"left", "right", "up", "down",
			"shift+left", "shift+right", "shift+up", "shift+down":
			m.handleNavigation(key)
		case "+", "=", "-", "_":
			m.handleZoom(key)
		case "0":
			m.focusBoard()
		case "c":
			m.toggleMode(ModeConflicts)
		case "w":
			m.toggleMode(ModeWires)
		case "y":
			if err := copyReportToClipboard(m.result); err != nil {
				m.errorMessage = "clipboard: " + err.Error()
			} else {
				m.successMessage = "Conflict report copied"
			}
		case "e":
			m.export()
		case "r":
			m.reload()
		}
	}
	return m, nil
}

func (m *model) toggleMode(mode Mode) {
	if m.mode == mode {
		m.mode = ModeBoard
	} else {
		m.mode = mode
	}
	m.ensurePanInBounds()
}

func (m model) View() string {
	if m.help {
		return m.helpView()
	}

	viewW, viewH := m.viewportSize()
	var b strings.Builder
	b.WriteString(m.boardView(viewW, viewH))
	if m.mode != ModeBoard {
		b.WriteString(m.panelView(viewW))
	}
	b.WriteString(m.statusLine(viewW))
	return b.String()
}

// boardView crops the grid to the viewport and colors runs of cells that
// share a color.
func (m model) boardView(viewW, viewH int) string {
	var b strings.Builder
	if m.grid == nil {
		return strings.Repeat("\n", viewH)
	}
	cells := m.grid.Cells()
	for y := m.panY; y < m.panY+viewH; y++ {
		if y < len(cells) {
			row := cells[y]
			end := min(len(row), m.panX+viewW)
			for x := m.panX; x < end; {
				color := row[x].Color
				var run strings.Builder
				for x < end && row[x].Color == color {
					run.WriteRune(row[x].Ch)
					x++
				}
				b.WriteString(colorize(run.String(), color))
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}

func colorize(s, color string) string {
	if color == "" {
		return s
	}
	hex, ok := termColors[color]
	if !ok {
		hex = color
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(hex)).Render(s)
}

func (m model) panelView(width int) string {
	var lines []string
	switch m.mode {
	case ModeConflicts:
		lines = append(lines, panelTitle.Render("Pin conflicts"))
		if !m.result.Conflicts.HasConflicts() {
			lines = append(lines, "none")
		}
		for _, l := range m.result.Conflicts.Lines() {
			lines = append(lines, conflictStyle.Render(l))
		}
		for _, d := range m.result.Dropped {
			lines = append(lines, droppedStyle.Render("skipped "+d.String()))
		}
	case ModeWires:
		lines = append(lines, panelTitle.Render("Wires"))
		for _, w := range m.result.Logic {
			lines = append(lines, colorize(fmt.Sprintf("%-24s %-5s %s lane %d", w.Label, w.Kind, w.Side, w.Lane), w.Stroke))
		}
		for _, w := range m.result.Power {
			lines = append(lines, colorize(w.Label, w.Stroke))
		}
	}

	for len(lines) < panelHeight {
		lines = append(lines, "")
	}
	if len(lines) > panelHeight {
		more := len(lines) - panelHeight + 1
		lines = append(lines[:panelHeight-1], fmt.Sprintf("… %d more (y copies the report)", more))
	}
	panel := lipgloss.NewStyle().MaxWidth(width).Render(strings.Join(lines, "\n"))
	return panel + "\n"
}

func (m model) statusLine(width int) string {
	if m.errorMessage != "" {
		return errorStyle.Render(m.errorMessage)
	}
	if m.successMessage != "" {
		return successStyle.Render(m.successMessage)
	}

	res := m.result
	status := fmt.Sprintf(" %s | zoom %d/%d | %d logic, %d power wires | %d conflicts | %d skipped | ? help",
		m.modeString(), m.zoom+1, len(zoomLevels),
		len(res.Logic), len(res.Power), len(res.Conflicts.Conflicts), len(res.Dropped))
	if len(status) < width {
		status += strings.Repeat(" ", width-len(status))
	}
	return statusStyle.Render(status)
}

func (m model) modeString() string {
	switch m.mode {
	case ModeBoard:
		return "BOARD"
	case ModeConflicts:
		return "CONFLICTS"
	case ModeWires:
		return "WIRES"
	default:
		return "UNKNOWN"
	}
}

func (m model) helpView() string {
	helpLines := []string{
		"wiremap Help",
		"============",
		"",
		"  h/←/j/↓/k/↑/l/→  Pan the board",
		"  Shift+h/j/k/l    Pan faster",
		"  +/-              Zoom in/out",
		"  0                Jump back to the board",
		"  c                Toggle the conflict panel",
		"  w                Toggle the wire list",
		"  y                Copy the conflict report to the clipboard",
		"  e                Export the diagram (format from ~/.wiremaprc)",
		"  r                Reload the wiring file",
		"  ?                Toggle this help",
		"  q                Quit",
	}
	return strings.Join(helpLines, "\n")
}
