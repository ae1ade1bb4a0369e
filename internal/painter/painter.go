// Package painter holds the canvas editing session: the brush, the paint
// engine, verification and the push lifecycle. A Painter is driven from a
// single goroutine and is not safe for concurrent use.
package painter

import (
	"context"
	"fmt"

	"github.com/manav03panchal/gitfiti/internal/errors"
	"github.com/manav03panchal/gitfiti/internal/heatmap"
	"github.com/manav03panchal/gitfiti/internal/logging"
	"github.com/manav03panchal/gitfiti/internal/model"
	"github.com/manav03panchal/gitfiti/internal/push"
)

// Submitter sends a verified submission.
type Submitter interface {
	Submit(ctx context.Context, commits []model.Commit) *push.Result
}

// Config configures a Painter.
type Config struct {
	Data     []model.DayRecord
	Brackets model.Brackets
	MaxCount int
	Brush    model.Brush
	Tooltips bool
}

// Painter is one editing session over a heatmap.
type Painter struct {
	chart    *heatmap.Chart
	brackets model.Brackets
	maxCount int

	brush    model.Brush
	held     bool
	tooltips bool

	state   State
	pending model.Submission

	verifyMsg Message
	pushMsg   Message
}

// New creates a painter over cfg.Data and renders its chart.
func New(cfg Config) *Painter {
	brackets := cfg.Brackets
	if len(brackets) == 0 {
		brackets = model.DefaultBrackets()
	}
	maxCount := cfg.MaxCount
	if maxCount <= 0 {
		maxCount = model.DefaultMaxCount
	}

	p := &Painter{
		brackets: brackets,
		maxCount: maxCount,
		brush:    cfg.Brush,
		tooltips: cfg.Tooltips,
		state:    StateIdle,
	}
	p.chart = heatmap.New(heatmap.Config{
		Data:           cfg.Data,
		MaxValue:       maxCount,
		Brackets:       brackets,
		TooltipEnabled: cfg.Tooltips,
		OnPointerDown:  p.paint,
		OnPointerEnter: p.dragOver,
	})
	p.chart.Render()
	return p
}

// Chart returns the rendered heatmap.
func (p *Painter) Chart() *heatmap.Chart {
	return p.chart
}

// Brackets returns the palette.
func (p *Painter) Brackets() model.Brackets {
	return p.brackets
}

// MaxCount returns the scale maximum the placeholder is remapped to.
func (p *Painter) MaxCount() int {
	return p.maxCount
}

// State returns the lifecycle state.
func (p *Painter) State() State {
	return p.state
}

// Pending returns the staged submission. It is empty unless the last
// verification succeeded.
func (p *Painter) Pending() model.Submission {
	return p.pending
}

// CanPush reports whether the push control is enabled.
func (p *Painter) CanPush() bool {
	return p.state == StateReadyToPush
}

// VerifyMessage returns the verify status line.
func (p *Painter) VerifyMessage() Message {
	return p.verifyMsg
}

// PushMessage returns the push status line.
func (p *Painter) PushMessage() Message {
	return p.pushMsg
}

// Held reports whether the pointer is pressed.
func (p *Painter) Held() bool {
	return p.held
}

// ============================================================================
// Brush
// ============================================================================

// Brush returns the active brush.
func (p *Painter) Brush() model.Brush {
	return p.brush
}

// SelectBracket arms a fixed brush with bracket i's minimum.
func (p *Painter) SelectBracket(i int) error {
	if i < 0 || i >= len(p.brackets) {
		return errors.NewUserErrorWithField("bracket", fmt.Sprint(i),
			"Unknown bracket", errors.GetSuggestion(errors.ErrBracketOutOfRange)).For(errors.ErrBracketOutOfRange)
	}
	p.brush = model.FixedBrush(p.brackets[i].Min)
	logging.DebugLog("brush selected", logging.KeyBrush, p.brush.String())
	return nil
}

// SelectAuto arms the cycling brush.
func (p *Painter) SelectAuto() {
	p.brush = model.AutoBrush()
	logging.DebugLog("brush selected", logging.KeyBrush, p.brush.String())
}

// Selected returns which brush option is marked: 0 for Auto, i+1 for the
// bracket whose minimum equals a fixed brush's count. A fixed count that
// matches no bracket minimum marks the bracket it falls in.
func (p *Painter) Selected() int {
	if p.brush.IsAuto() {
		return 0
	}
	return p.brackets.Index(p.brush.Count) + 1
}

// ============================================================================
// Paint engine
// ============================================================================

// PointerDown presses the pointer and paints the cell at col/row, if any.
// Tooltips are suppressed until PointerUp.
func (p *Painter) PointerDown(col, row int) bool {
	p.held = true
	p.chart.SetTooltipEnabled(false)
	if p.state == StatePushing {
		return false
	}
	return p.chart.PointerDown(col, row)
}

// PointerEnter paints the cell at col/row when the pointer is held.
func (p *Painter) PointerEnter(col, row int) bool {
	if p.state == StatePushing {
		return false
	}
	return p.chart.PointerEnter(col, row)
}

// PointerUp releases the pointer.
func (p *Painter) PointerUp() {
	p.held = false
	p.chart.SetTooltipEnabled(p.tooltips)
}

// PaintCell paints the cell at col/row as a single click, without holding
// the pointer. Used for keyboard painting.
func (p *Painter) PaintCell(col, row int) bool {
	if p.state == StatePushing {
		return false
	}
	return p.chart.PointerDown(col, row)
}

// SetTooltips toggles tooltips. They stay hidden while the pointer is held.
func (p *Painter) SetTooltips(enabled bool) {
	p.tooltips = enabled
	if !p.held {
		p.chart.SetTooltipEnabled(enabled)
	}
}

// Tooltips reports the tooltip preference.
func (p *Painter) Tooltips() bool {
	return p.tooltips
}

func (p *Painter) dragOver(rec model.DayRecord, cell *heatmap.Cell) {
	if !p.held {
		return
	}
	p.paint(rec, cell)
}

func (p *Painter) paint(rec model.DayRecord, cell *heatmap.Cell) {
	count := p.brush.Apply(rec.Count, p.brackets)
	cell.Fill = p.brackets.ColorFor(count)

	data := p.chart.Data()
	if i := model.FindDay(data, rec.Date); i >= 0 {
		data[i].Count = count
	} else {
		p.chart.SetData(append(data, model.DayRecord{Date: cell.Date, Count: count}))
	}

	if p.state == StateReadyToPush {
		p.state = StateIdle
		p.pending = model.Submission{}
		p.verifyMsg = Message{}
	}
}

// ============================================================================
// Verify and push
// ============================================================================

// Verify stages every painted day for a push. The first day holding the
// darkest bracket's minimum is remapped to the scale maximum; without one
// the canvas is rejected with ErrNoDarkestBracket.
func (p *Painter) Verify() error {
	if p.state == StatePushing {
		return errors.ErrPushInFlight
	}
	p.state = StateValidating
	p.pushMsg = Message{}

	sub, found := model.BuildSubmission(p.chart.Data(), p.brackets.Darkest(), p.maxCount)
	if !found {
		p.pending = model.Submission{}
		p.state = StateInvalid
		p.verifyMsg = Message{Text: MsgInvalid, Kind: KindError}
		logging.Info("verify rejected", logging.KeyCount, model.PaintedDays(p.chart.Data()))
		return errors.ErrNoDarkestBracket
	}

	p.pending = sub
	p.state = StateReadyToPush
	p.verifyMsg = Message{Text: fmt.Sprintf(msgReady, sub.Total), Kind: KindSuccess}
	logging.Info("verify passed",
		logging.KeyCount, len(sub.Commits),
		logging.KeyTotal, sub.Total)
	return nil
}

// BeginPush enters Pushing and returns the commits to send.
func (p *Painter) BeginPush() ([]model.Commit, error) {
	switch p.state {
	case StatePushing:
		return nil, errors.ErrPushInFlight
	case StateReadyToPush:
	default:
		return nil, errors.ErrNotVerified
	}

	p.state = StatePushing
	p.verifyMsg = Message{}
	p.pushMsg = Message{Text: MsgProcessing, Kind: KindPending}

	commits := make([]model.Commit, len(p.pending.Commits))
	copy(commits, p.pending.Commits)
	return commits, nil
}

// FinishPush records the server's answer to the push started by BeginPush.
func (p *Painter) FinishPush(result *push.Result) {
	if p.state != StatePushing {
		return
	}
	if result == nil {
		result = &push.Result{Message: push.FallbackMessage, Err: errors.ErrPushFailed}
	}

	p.pending = model.Submission{}
	if result.OK() {
		p.state = StatePushSucceeded
		p.pushMsg = Message{Text: result.Message, Kind: KindSuccess}
	} else {
		p.state = StatePushFailed
		p.pushMsg = Message{Text: result.Message, Kind: KindError}
	}
	logging.Info("push recorded",
		logging.KeyState, p.state.String(),
		logging.KeyStatus, result.StatusCode,
		logging.KeyRequestID, result.RequestID)
}

// Push runs BeginPush, Submit and FinishPush in one call.
func (p *Painter) Push(ctx context.Context, s Submitter) error {
	commits, err := p.BeginPush()
	if err != nil {
		return err
	}
	result := s.Submit(ctx, commits)
	p.FinishPush(result)
	if result == nil {
		return errors.ErrPushFailed
	}
	return result.Err
}
