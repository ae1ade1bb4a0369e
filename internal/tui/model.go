package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/manav03panchal/gitfiti/internal/errors"
	"github.com/manav03panchal/gitfiti/internal/logging"
	"github.com/manav03panchal/gitfiti/internal/model"
	"github.com/manav03panchal/gitfiti/internal/painter"
	"github.com/manav03panchal/gitfiti/internal/push"
)

// pushResultMsg carries the server's answer back into the update loop.
type pushResultMsg struct {
	result *push.Result
}

// PainterModel is the bubbletea model for the heatmap painter.
type PainterModel struct {
	ctx       context.Context
	painter   *painter.Painter
	submitter painter.Submitter

	// UI state
	cursorCol int
	cursorRow int
	hoverCol  int
	hoverRow  int
	hovering  bool
	width     int
	height    int
	notice    string
	quitting  bool

	keys    keyMap
	help    help.Model
	spinner spinner.Model
}

// Config holds configuration for the painter model.
type Config struct {
	Painter   *painter.Painter
	Submitter painter.Submitter
	Width     int
	Height    int
}

// NewPainterModel creates a painter model with the cursor on the most
// recent day.
func NewPainterModel(ctx context.Context, cfg Config) *PainterModel {
	if ctx == nil {
		ctx = context.Background()
	}

	keys := defaultKeyMap()
	keys.setBracketHelp(len(cfg.Painter.Brackets()))

	m := &PainterModel{
		ctx:       ctx,
		painter:   cfg.Painter,
		submitter: cfg.Submitter,
		width:     cfg.Width,
		height:    cfg.Height,
		keys:      keys,
		help:      help.New(),
		spinner:   spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(StylePending)),
	}
	if last := cfg.Painter.Chart().LastCell(); last != nil {
		m.cursorCol, m.cursorRow = last.Col, last.Row
	}
	return m
}

// Painter returns the editing session driven by this model.
func (m *PainterModel) Painter() *painter.Painter {
	return m.painter
}

// Cursor returns the keyboard cursor's grid position.
func (m *PainterModel) Cursor() (col, row int) {
	return m.cursorCol, m.cursorRow
}

// Init implements tea.Model.
func (m *PainterModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *PainterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case pushResultMsg:
		m.painter.FinishPush(msg.result)
		return m, nil

	case spinner.TickMsg:
		if m.painter.State() != painter.StatePushing {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

// handleKeyPress handles keyboard input.
func (m *PainterModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.notice = ""

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		m.moveCursor(0, -1)
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(0, 1)
	case key.Matches(msg, m.keys.Left):
		m.moveCursor(-1, 0)
	case key.Matches(msg, m.keys.Right):
		m.moveCursor(1, 0)

	case key.Matches(msg, m.keys.Paint):
		m.painter.PaintCell(m.cursorCol, m.cursorRow)

	case key.Matches(msg, m.keys.Auto):
		m.painter.SelectAuto()

	case key.Matches(msg, m.keys.Bracket):
		i := int(msg.Runes[0] - '0')
		if err := m.painter.SelectBracket(i); err != nil {
			m.setNotice(err)
		}

	case key.Matches(msg, m.keys.Verify):
		if err := m.painter.Verify(); errors.Is(err, errors.ErrPushInFlight) {
			m.setNotice(err)
		}

	case key.Matches(msg, m.keys.Push):
		return m, m.startPush()

	case key.Matches(msg, m.keys.Tooltips):
		m.painter.SetTooltips(!m.painter.Tooltips())

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}

	return m, nil
}

// handleMouse maps terminal mouse events onto grid cells. Motion is only
// forwarded when it crosses into a new cell, so a drag paints each cell
// once.
func (m *PainterModel) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	col, row, onCell := m.cellAt(msg.X, msg.Y)

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		m.notice = ""
		if !onCell {
			col, row = -1, -1
		} else {
			m.cursorCol, m.cursorRow = col, row
		}
		m.painter.PointerDown(col, row)
		m.hoverCol, m.hoverRow, m.hovering = col, row, onCell

	case tea.MouseActionMotion:
		if !onCell {
			m.hovering = false
			return m, nil
		}
		if m.hovering && col == m.hoverCol && row == m.hoverRow {
			return m, nil
		}
		m.hoverCol, m.hoverRow, m.hovering = col, row, true
		if m.painter.Chart().CellAt(col, row) != nil {
			m.cursorCol, m.cursorRow = col, row
		}
		m.painter.PointerEnter(col, row)

	case tea.MouseActionRelease:
		m.painter.PointerUp()
	}

	return m, nil
}

// cellAt converts a screen position to a grid position.
func (m *PainterModel) cellAt(x, y int) (col, row int, ok bool) {
	ox, oy := m.CanvasOrigin()
	return m.painter.Chart().CellAtPoint(x-ox, y-oy)
}

// CanvasOrigin returns the screen position of the chart's top-left corner.
func (m *PainterModel) CanvasOrigin() (x, y int) {
	return canvasInsetX, lipgloss.Height(m.renderHeader()) + canvasInsetY
}

func (m *PainterModel) moveCursor(dCol, dRow int) {
	col, row := m.cursorCol+dCol, m.cursorRow+dRow
	if m.painter.Chart().CellAt(col, row) == nil {
		return
	}
	m.cursorCol, m.cursorRow = col, row
}

// startPush begins a push and returns the command that performs it.
func (m *PainterModel) startPush() tea.Cmd {
	commits, err := m.painter.BeginPush()
	if err != nil {
		m.setNotice(err)
		return nil
	}
	if m.submitter == nil {
		m.painter.FinishPush(nil)
		return nil
	}

	logging.Info("push started", logging.KeyCount, len(commits))
	submitter := m.submitter
	ctx := logging.NewRequestContext(m.ctx)
	submit := func() tea.Msg {
		return pushResultMsg{result: submitter.Submit(ctx, commits)}
	}
	return tea.Batch(m.spinner.Tick, submit)
}

// setNotice shows a one-line hint until the next input.
func (m *PainterModel) setNotice(err error) {
	if suggestion := errors.GetSuggestion(err); suggestion != "" {
		m.notice = suggestion
		return
	}
	m.notice = err.Error()
}

// View implements tea.Model.
func (m *PainterModel) View() string {
	if m.quitting {
		return ""
	}

	chart := m.painter.Chart()
	cursor := chart.CellAt(m.cursorCol, m.cursorRow)

	var sb strings.Builder
	sb.WriteString(m.renderHeader())
	sb.WriteString("\n")
	sb.WriteString(StyleCanvasBox.Render(chart.View(cursor)))
	sb.WriteString("\n")

	sb.WriteString(chart.Legend())
	if tip := chart.Tooltip(cursor); tip != "" {
		sb.WriteString("   ")
		sb.WriteString(StyleSubtitle.Render(tip))
	}
	sb.WriteString("\n\n")

	sb.WriteString(NewBrushComponent(m.painter).View())
	sb.WriteString("\n")

	status := &StatusComponent{
		Verify:  m.painter.VerifyMessage(),
		Push:    m.painter.PushMessage(),
		Spinner: m.spinner,
	}
	if s := status.View(); s != "" {
		sb.WriteString("\n")
		sb.WriteString(s)
		sb.WriteString("\n")
	}

	if m.notice != "" {
		sb.WriteString("\n")
		sb.WriteString(StyleWarning.Render(m.notice))
		sb.WriteString("\n")
	}

	need := chart.Width() + 2*canvasInsetX
	if m.width > 0 && m.width < need {
		sb.WriteString("\n")
		sb.WriteString(StyleWarning.Render(fmt.Sprintf("Widen the terminal to %d columns to see the whole year.", need)))
		sb.WriteString("\n")
	}

	sb.WriteString(StyleHelp.Render(m.help.View(m.keys)))
	return sb.String()
}

// renderHeader renders the title and the canvas date range.
func (m *PainterModel) renderHeader() string {
	title := StyleTitle.Render("gitfiti")
	data := m.painter.Chart().Data()
	if len(data) == 0 {
		return title
	}
	span := fmt.Sprintf("%s to %s  ·  %d painted",
		data[0].Date.Format("Jan 2, 2006"),
		data[len(data)-1].Date.Format("Jan 2, 2006"),
		model.PaintedDays(data))
	return title + "  " + StyleSubtitle.Render(span)
}

// Run starts the painter with mouse tracking in the alternate screen and
// blocks until the user quits.
func Run(ctx context.Context, cfg Config) (*painter.Painter, error) {
	m := NewPainterModel(ctx, cfg)
	p := tea.NewProgram(m,
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	if _, err := p.Run(); err != nil {
		return m.painter, errors.NewSystemErrorWithOp("run painter", "terminal session failed", err)
	}
	return m.painter, nil
}
