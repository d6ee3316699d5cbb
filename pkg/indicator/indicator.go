package indicator

import (
	"context"
	"errors"
	"fmt"

	x "github.com/linuxdeepin/go-x11-client"
	"github.com/linuxdeepin/go-x11-client/ext/xkb"
	"go.uber.org/zap"
)

// ErrConnClosed is returned when the X server connection dies while
// waiting for events. The connection is not recoverable at that point.
var ErrConnClosed = errors.New("x connection closed")

// Indicator owns the active layout group index and keeps the docked
// window showing its icon.
type Indicator struct {
	names   []string
	icons   IconSource
	surface Surface
	active  int

	xkbEventBase uint8

	log *zap.SugaredLogger
}

// New builds an indicator over the resolved group names. An initial
// group beyond the resolved names falls back to group 0.
func New(names []string, icons IconSource, surface Surface, group int, xkbEventBase uint8, log *zap.SugaredLogger) *Indicator {
	if group < 0 || group >= len(names) {
		group = 0
	}
	return &Indicator{
		names:        names,
		icons:        icons,
		surface:      surface,
		active:       group,
		xkbEventBase: xkbEventBase,
		log:          log,
	}
}

// Redraw blits the icon for the active group. A name missing from the
// icon source is skipped: a stale cache must not take the indicator
// down.
func (ind *Indicator) Redraw() error {
	name := ind.names[ind.active]
	pixels, ok := ind.icons.Get(name)
	if !ok {
		ind.log.Debugw("no icon for layout, skipping redraw", "layout", name)
		return nil
	}

	if err := ind.surface.Blit(pixels); err != nil {
		return fmt.Errorf("blit icon: %w", err)
	}
	return nil
}

// HandleLayoutChange reacts to a group-change notification. Repeated
// notifications for the active group are no-ops, and indices beyond
// the resolved group list are ignored: the server may report groups
// this process never enumerated.
func (ind *Indicator) HandleLayoutChange(group int) error {
	if group == ind.active {
		return nil
	}
	if group < 0 || group >= len(ind.names) {
		ind.log.Warnw("layout group out of range, ignoring", "group", group, "groups", len(ind.names))
		return nil
	}

	ind.active = group
	ind.log.Debugw("layout changed", "layout", ind.names[group])
	return ind.Redraw()
}

// HandleExpose redraws on the last expose of a batch. Earlier events
// in a batch carry a non-zero count and need no paint of their own.
func (ind *Indicator) HandleExpose(count int) error {
	if count != 0 {
		return nil
	}
	return ind.Redraw()
}

// Run processes events until the context is canceled or the
// connection breaks.
func (ind *Indicator) Run(ctx context.Context, events <-chan x.GenericEvent) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return ErrConnClosed
			}
			if err := ind.handleEvent(ev); err != nil {
				return fmt.Errorf("handle event: %w", err)
			}
		}
	}
}

func (ind *Indicator) handleEvent(ev x.GenericEvent) error {
	switch ev.GetEventCode() {
	case x.ExposeEventCode:
		expose, err := x.NewExposeEvent(ev)
		if err != nil {
			return fmt.Errorf("decode expose event: %w", err)
		}
		return ind.HandleExpose(int(expose.Count))

	case ind.xkbEventBase:
		state, err := xkb.NewStateNotifyEvent(ev)
		if err != nil {
			return fmt.Errorf("decode xkb state event: %w", err)
		}
		return ind.HandleLayoutChange(int(state.Group))
	}

	// everything else (MapNotify, ReparentNotify from the embedding,
	// ...) is none of our business
	return nil
}
