package painter

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manav03panchal/gitfiti/internal/errors"
	"github.com/manav03panchal/gitfiti/internal/heatmap"
	"github.com/manav03panchal/gitfiti/internal/logging"
	"github.com/manav03panchal/gitfiti/internal/model"
	"github.com/manav03panchal/gitfiti/internal/push"
)

func TestMain(m *testing.M) {
	logging.Discard()
	m.Run()
}

var day0 = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func days(n int) []model.DayRecord {
	data := make([]model.DayRecord, n)
	for i := range data {
		data[i] = model.DayRecord{Date: day0.AddDate(0, 0, i)}
	}
	return data
}

func newPainter(t *testing.T, data []model.DayRecord) *Painter {
	t.Helper()
	return New(Config{Data: data, Tooltips: true})
}

func cellFor(t *testing.T, p *Painter, i int) *heatmap.Cell {
	t.Helper()
	cell := p.Chart().CellForDate(day0.AddDate(0, 0, i))
	require.NotNil(t, cell, "no cell for day %d", i)
	return cell
}

func click(t *testing.T, p *Painter, i int) {
	t.Helper()
	cell := cellFor(t, p, i)
	require.True(t, p.PaintCell(cell.Col, cell.Row))
}

func countOf(p *Painter, i int) int {
	return p.Chart().Data()[i].Count
}

type fakeSubmitter struct {
	got    []model.Commit
	calls  int
	result *push.Result
}

func (f *fakeSubmitter) Submit(_ context.Context, commits []model.Commit) *push.Result {
	f.calls++
	f.got = commits
	return f.result
}

// =============================================================================
// Brush Tests
// =============================================================================

func TestBrushStartsAuto(t *testing.T) {
	p := newPainter(t, days(1))
	assert.True(t, p.Brush().IsAuto())
	assert.Equal(t, 0, p.Selected())
}

func TestSelectBracket(t *testing.T) {
	p := newPainter(t, days(1))

	for i, b := range p.Brackets() {
		require.NoError(t, p.SelectBracket(i))
		assert.Equal(t, model.FixedBrush(b.Min), p.Brush())
		assert.Equal(t, i+1, p.Selected())
	}

	p.SelectAuto()
	assert.True(t, p.Brush().IsAuto())
	assert.Equal(t, 0, p.Selected())
}

func TestSelectBracketOutOfRange(t *testing.T) {
	p := newPainter(t, days(1))
	require.NoError(t, p.SelectBracket(2))

	for _, i := range []int{-1, len(p.Brackets())} {
		err := p.SelectBracket(i)
		assert.Error(t, err)
		assert.True(t, errors.IsUserError(err))
	}
	assert.Equal(t, model.FixedBrush(5), p.Brush(), "brush unchanged")
}

func TestSelectedWithCustomBrush(t *testing.T) {
	p := New(Config{Data: days(1), Brush: model.FixedBrush(7)})
	assert.Equal(t, 3, p.Selected(), "7 falls in the 5+ bracket")
}

// =============================================================================
// Paint Engine Tests
// =============================================================================

func TestAutoBrushCycles(t *testing.T) {
	p := newPainter(t, days(1))
	b := p.Brackets()

	for _, want := range []int{1, 5, 10, 14, 0, 1, 5} {
		click(t, p, 0)
		assert.Equal(t, want, countOf(p, 0))
		assert.Equal(t, b.ColorFor(want), cellFor(t, p, 0).Fill)
	}
}

func TestAutoBrushFromBetweenMinimums(t *testing.T) {
	data := days(1)
	data[0].Count = 7
	p := newPainter(t, data)

	click(t, p, 0)
	assert.Equal(t, 10, countOf(p, 0))
}

func TestFixedBrushOverwrites(t *testing.T) {
	data := days(2)
	data[0].Count = 14
	p := newPainter(t, data)
	require.NoError(t, p.SelectBracket(2))

	click(t, p, 0)
	click(t, p, 1)
	click(t, p, 1)
	assert.Equal(t, 5, countOf(p, 0))
	assert.Equal(t, 5, countOf(p, 1))
	assert.Equal(t, "#7bc96f", cellFor(t, p, 1).Fill)
}

func TestFixedBrushZeroErases(t *testing.T) {
	data := days(1)
	data[0].Count = 10
	p := newPainter(t, data)
	require.NoError(t, p.SelectBracket(0))

	click(t, p, 0)
	assert.Equal(t, 0, countOf(p, 0))
	assert.Equal(t, "#eeeeee", cellFor(t, p, 0).Fill)
}

func TestPaintAppendsMissingRecord(t *testing.T) {
	data := days(3)
	p := newPainter(t, data)
	cell := cellFor(t, p, 1)

	// drop day 1 from the backing data; the cell is still rendered
	p.Chart().SetData([]model.DayRecord{data[0], data[2]})
	require.NoError(t, p.SelectBracket(4))
	require.True(t, p.PaintCell(cell.Col, cell.Row))

	got := p.Chart().Data()
	require.Len(t, got, 3)
	assert.True(t, model.SameDay(got[2].Date, day0.AddDate(0, 0, 1)))
	assert.Equal(t, 14, got[2].Count)
}

func TestDragPainting(t *testing.T) {
	p := newPainter(t, days(7))
	require.NoError(t, p.SelectBracket(1))

	c0, c1, c2 := cellFor(t, p, 0), cellFor(t, p, 1), cellFor(t, p, 2)

	// moving without a press paints nothing
	p.PointerEnter(c0.Col, c0.Row)
	assert.Equal(t, 0, countOf(p, 0))

	p.PointerDown(c0.Col, c0.Row)
	assert.True(t, p.Held())
	p.PointerEnter(c1.Col, c1.Row)
	p.PointerUp()
	assert.False(t, p.Held())
	p.PointerEnter(c2.Col, c2.Row)

	assert.Equal(t, 1, countOf(p, 0))
	assert.Equal(t, 1, countOf(p, 1))
	assert.Equal(t, 0, countOf(p, 2), "released before entering")
}

func TestPressOutsideGridStillHolds(t *testing.T) {
	p := newPainter(t, days(7))
	c := cellFor(t, p, 3)

	assert.False(t, p.PointerDown(-1, -1))
	assert.True(t, p.Held())
	p.PointerEnter(c.Col, c.Row)
	assert.Equal(t, 1, countOf(p, 3))
}

func TestTooltipsHiddenWhileHeld(t *testing.T) {
	p := newPainter(t, days(1))
	c := cellFor(t, p, 0)
	assert.True(t, p.Chart().TooltipEnabled())

	p.PointerDown(c.Col, c.Row)
	assert.False(t, p.Chart().TooltipEnabled())
	assert.Empty(t, p.Chart().Tooltip(c))

	p.SetTooltips(false)
	p.SetTooltips(true)
	assert.False(t, p.Chart().TooltipEnabled(), "still held")

	p.PointerUp()
	assert.True(t, p.Chart().TooltipEnabled())
	assert.Equal(t, "1 contribution on Jan 1, 2024", p.Chart().Tooltip(c))
}

func TestTooltipPreference(t *testing.T) {
	p := newPainter(t, days(1))
	p.SetTooltips(false)
	assert.False(t, p.Tooltips())

	c := cellFor(t, p, 0)
	p.PointerDown(c.Col, c.Row)
	p.PointerUp()
	assert.False(t, p.Chart().TooltipEnabled())
}

// =============================================================================
// Verify Tests
// =============================================================================

func TestVerifyRemapsFirstDarkest(t *testing.T) {
	data := days(4)
	data[0].Count = 14
	data[1].Count = 14
	data[3].Count = 3
	p := newPainter(t, data)

	require.NoError(t, p.Verify())

	assert.Equal(t, StateReadyToPush, p.State())
	assert.True(t, p.CanPush())
	assert.Equal(t, model.Submission{
		Commits: []model.Commit{
			{Date: "2024-01-01T00:00:00Z", Count: 24},
			{Date: "2024-01-02T00:00:00Z", Count: 14},
			{Date: "2024-01-04T00:00:00Z", Count: 3},
		},
		Total: 41,
	}, p.Pending())
	assert.Equal(t, Message{Text: "41 commits ready to be pushed.", Kind: KindSuccess}, p.VerifyMessage())

	// the canvas itself keeps the placeholder
	assert.Equal(t, 14, countOf(p, 0))
}

func TestVerifyWithoutDarkest(t *testing.T) {
	data := days(3)
	data[0].Count = 10
	data[2].Count = 1
	p := newPainter(t, data)

	err := p.Verify()
	assert.True(t, errors.Is(err, errors.ErrNoDarkestBracket))
	assert.Equal(t, StateInvalid, p.State())
	assert.False(t, p.CanPush())
	assert.True(t, p.Pending().Empty())
	assert.Equal(t, Message{Text: MsgInvalid, Kind: KindError}, p.VerifyMessage())
}

func TestVerifyEmptyCanvas(t *testing.T) {
	p := newPainter(t, days(366))
	assert.Error(t, p.Verify())
	assert.Equal(t, StateInvalid, p.State())
}

func TestVerifyReplacesPending(t *testing.T) {
	data := days(2)
	data[0].Count = 14
	p := newPainter(t, data)
	require.NoError(t, p.Verify())
	require.Len(t, p.Pending().Commits, 1)

	require.NoError(t, p.SelectBracket(1))
	click(t, p, 1)
	require.NoError(t, p.Verify())
	assert.Len(t, p.Pending().Commits, 2)
	assert.Equal(t, 25, p.Pending().Total)

	require.NoError(t, p.SelectBracket(0))
	click(t, p, 0)
	assert.Error(t, p.Verify())
	assert.True(t, p.Pending().Empty())
}

func TestPaintInvalidatesVerification(t *testing.T) {
	data := days(2)
	data[0].Count = 14
	p := newPainter(t, data)
	require.NoError(t, p.Verify())

	click(t, p, 1)
	assert.Equal(t, StateIdle, p.State())
	assert.False(t, p.CanPush())
	assert.True(t, p.Pending().Empty())
	assert.False(t, p.VerifyMessage().Visible())

	_, err := p.BeginPush()
	assert.True(t, errors.Is(err, errors.ErrNotVerified))
}

// =============================================================================
// Push Tests
// =============================================================================

func readyPainter(t *testing.T) *Painter {
	t.Helper()
	data := days(1)
	data[0].Count = 14
	p := newPainter(t, data)
	require.NoError(t, p.Verify())
	return p
}

func TestBeginPushRequiresVerify(t *testing.T) {
	p := newPainter(t, days(1))
	_, err := p.BeginPush()
	assert.True(t, errors.Is(err, errors.ErrNotVerified))
	assert.Equal(t, StateIdle, p.State())
}

func TestBeginPush(t *testing.T) {
	p := readyPainter(t)

	commits, err := p.BeginPush()
	require.NoError(t, err)
	assert.Equal(t, []model.Commit{{Date: "2024-01-01T00:00:00Z", Count: 24}}, commits)

	assert.Equal(t, StatePushing, p.State())
	assert.False(t, p.CanPush())
	assert.False(t, p.VerifyMessage().Visible())
	assert.Equal(t, Message{Text: MsgProcessing, Kind: KindPending}, p.PushMessage())

	_, err = p.BeginPush()
	assert.True(t, errors.Is(err, errors.ErrPushInFlight))
}

func TestInputIgnoredWhilePushing(t *testing.T) {
	p := readyPainter(t)
	c := cellFor(t, p, 0)
	_, err := p.BeginPush()
	require.NoError(t, err)

	assert.False(t, p.PaintCell(c.Col, c.Row))
	assert.False(t, p.PointerDown(c.Col, c.Row))
	assert.False(t, p.PointerEnter(c.Col, c.Row))
	assert.Equal(t, 14, countOf(p, 0))

	assert.True(t, errors.Is(p.Verify(), errors.ErrPushInFlight))
	assert.Equal(t, StatePushing, p.State())
}

func TestFinishPush(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		p := readyPainter(t)
		_, _ = p.BeginPush()
		p.FinishPush(&push.Result{StatusCode: http.StatusOK, Message: "ok"})

		assert.Equal(t, StatePushSucceeded, p.State())
		assert.Equal(t, Message{Text: "ok", Kind: KindSuccess}, p.PushMessage())
		assert.False(t, p.CanPush())
	})

	t.Run("failure", func(t *testing.T) {
		p := readyPainter(t)
		_, _ = p.BeginPush()
		p.FinishPush(&push.Result{StatusCode: 500, Message: push.FallbackMessage, Err: errors.ErrPushFailed})

		assert.Equal(t, StatePushFailed, p.State())
		assert.Equal(t, Message{Text: "Server error.", Kind: KindError}, p.PushMessage())
		assert.False(t, p.CanPush())
	})

	t.Run("nil_result", func(t *testing.T) {
		p := readyPainter(t)
		_, _ = p.BeginPush()
		p.FinishPush(nil)
		assert.Equal(t, StatePushFailed, p.State())
		assert.Equal(t, push.FallbackMessage, p.PushMessage().Text)
	})

	t.Run("ignored_when_not_pushing", func(t *testing.T) {
		p := readyPainter(t)
		p.FinishPush(&push.Result{StatusCode: http.StatusOK, Message: "ok"})
		assert.Equal(t, StateReadyToPush, p.State())
		assert.False(t, p.PushMessage().Visible())
	})
}

func TestVerifyHidesPushResult(t *testing.T) {
	p := readyPainter(t)
	_, _ = p.BeginPush()
	p.FinishPush(&push.Result{StatusCode: http.StatusOK, Message: "ok"})

	require.NoError(t, p.Verify())
	assert.False(t, p.PushMessage().Visible())
	assert.True(t, p.CanPush())
}

func TestPush(t *testing.T) {
	p := readyPainter(t)
	f := &fakeSubmitter{result: &push.Result{StatusCode: http.StatusOK, Message: "done"}}

	require.NoError(t, p.Push(context.Background(), f))
	assert.Equal(t, 1, f.calls)
	assert.Equal(t, []model.Commit{{Date: "2024-01-01T00:00:00Z", Count: 24}}, f.got)
	assert.Equal(t, StatePushSucceeded, p.State())

	err := p.Push(context.Background(), f)
	assert.True(t, errors.Is(err, errors.ErrNotVerified))
	assert.Equal(t, 1, f.calls, "no second request")
}

func TestPushEndToEnd(t *testing.T) {
	var body string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		body = string(b)
		w.WriteHeader(http.StatusOK)
		_, _ = io.WriteString(w, `{"message":"ok"}`)
	}))
	defer srv.Close()

	client, err := push.NewClient(srv.URL, "")
	require.NoError(t, err)

	p := readyPainter(t)
	require.NoError(t, p.Push(context.Background(), client))
	assert.JSONEq(t, `{"commits":[{"date":"2024-01-01T00:00:00Z","count":24}]}`, body)
	assert.Equal(t, Message{Text: "ok", Kind: KindSuccess}, p.PushMessage())
}

func TestPushServerErrorEndToEnd(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client, err := push.NewClient(srv.URL, "")
	require.NoError(t, err)

	p := readyPainter(t)
	assert.Error(t, p.Push(context.Background(), client))
	assert.Equal(t, StatePushFailed, p.State())
	assert.Equal(t, Message{Text: "Server error.", Kind: KindError}, p.PushMessage())
}

// =============================================================================
// State Tests
// =============================================================================

func TestStateString(t *testing.T) {
	assert.Equal(t, "idle", StateIdle.String())
	assert.Equal(t, "ready", StateReadyToPush.String())
	assert.Equal(t, "pushing", StatePushing.String())
	assert.Equal(t, "push_failed", StatePushFailed.String())
	assert.Equal(t, "unknown", State(42).String())
	assert.Equal(t, "pending", KindPending.String())
	assert.Equal(t, "none", Kind(42).String())
}
