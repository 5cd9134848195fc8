package tui

import (
	"log/slog"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/daptify14/keynav/internal/animator"
	"github.com/daptify14/keynav/internal/frameclock"
	"github.com/daptify14/keynav/internal/geom"
	"github.com/daptify14/keynav/internal/scroll"
	"github.com/daptify14/keynav/internal/selection"
)

// pane is one scrollable area: its scroller plus the frame clock
// subscription that drives it while it moves.
type pane struct {
	name     string
	scroller *scroll.Scroller
	sub      *frameclock.Subscription
}

func newPane(name string, metrics scroll.Metrics, maxDuration time.Duration, log *slog.Logger) *pane {
	return &pane{
		name: name,
		scroller: scroll.NewScroller(scroll.Geometry{}, metrics,
			animator.WithMaxDuration(maxDuration),
			animator.WithObserver(animationLogger{pane: name, log: log}),
		),
	}
}

// resize applies new bounds and content size to the scroller.
func (p *pane) resize(now time.Time, bounds, content geom.Size) {
	p.scroller.SetGeometry(now, scroll.Geometry{Bounds: bounds, ContentSize: content})
}

// animate subscribes the pane to clock while its scroller has work. The
// returned command is non-nil only when the tick stream has to start.
func (p *pane) animate(clock *frameclock.Clock) tea.Cmd {
	if !p.scroller.Active() || p.sub.Active() {
		return nil
	}
	s := p.scroller
	var cmd tea.Cmd
	p.sub, cmd = clock.Subscribe(func(now time.Time) { s.Tick(now) })
	return cmd
}

// settle drops the subscription once the scroller has come to rest.
func (p *pane) settle() {
	if !p.scroller.Active() {
		p.sub.Unsubscribe()
	}
}

// stop ends all motion and releases the clock.
func (p *pane) stop(now time.Time) {
	p.scroller.Stop(now)
	p.sub.Unsubscribe()
}

// rowOffset is the integral scroll offset used for rendering.
func (p *pane) rowOffset() (x, y int) {
	o := p.scroller.Offset()
	return roundCell(o.X), roundCell(o.Y)
}

// paneSink adapts a pane and its layout to the selection controller for the
// duration of one call.
type paneSink struct {
	pane   *pane
	layout paneLayout
	now    time.Time
	log    *slog.Logger
}

// VisibleRect is measured at the scroll target so presses made during an
// animation are judged against where the pane is heading.
func (s paneSink) VisibleRect() geom.Rect {
	g := s.pane.scroller.Geometry()
	return g.VisibleRect(s.pane.scroller.Target())
}

func (s paneSink) FrameOf(p selection.IndexPath) geom.Rect { return s.layout.FrameOf(p) }

func (s paneSink) SetSelection(p *selection.IndexPath, pos scroll.Position) {
	if s.log != nil {
		if p == nil {
			s.log.Info("selection", "pane", s.pane.name, "path", "none")
		} else {
			s.log.Info("selection", "pane", s.pane.name, "path", p.String())
		}
	}
	if p != nil && pos != scroll.PositionNone {
		s.ScrollTo(*p, pos, false)
	}
}

func (s paneSink) ScrollTo(p selection.IndexPath, pos scroll.Position, animated bool) {
	sc := s.pane.scroller
	target := scroll.RevealOffset(s.layout.FrameOf(p), pos, sc.Target(), sc.Geometry())
	sc.ScrollTo(s.now, target, animated)
}

// animationLogger reports animation lifecycle events to the debug log.
type animationLogger struct {
	pane string
	log  *slog.Logger
}

func (a animationLogger) WillBeginAnimation(target geom.Point) {
	if a.log == nil {
		return
	}
	a.log.Info("animation begin", "pane", a.pane, "target", target.String())
}

func (a animationLogger) DidEndAnimation(finished bool) {
	if a.log == nil {
		return
	}
	a.log.Info("animation end", "pane", a.pane, "finished", finished)
}
