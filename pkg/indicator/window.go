package indicator

import (
	"fmt"

	x "github.com/linuxdeepin/go-x11-client"

	"codeberg.org/avlasov/xkbtray/pkg/icon"
)

// Window is the icon-sized X window handed to the tray manager.
type Window struct {
	conn  *x.Conn
	id    x.Window
	depth uint8
}

// CreateWindow creates the (unmapped) tray icon window on the default
// screen.
func CreateWindow(conn *x.Conn) (*Window, error) {
	screen := conn.GetDefaultScreen()

	wid, err := conn.AllocID()
	if err != nil {
		return nil, fmt.Errorf("alloc window id: %w", err)
	}
	win := x.Window(wid)

	const mask = x.CWBackPixel | x.CWOverrideRedirect | x.CWEventMask
	values := []uint32{
		screen.WhitePixel,
		1,
		x.EventMaskExposure | x.EventMaskStructureNotify,
	}
	err = x.CreateWindowChecked(conn, x.CopyFromParent, win, screen.Root,
		0, 0, icon.Size, icon.Size, 0,
		x.WindowClassInputOutput, screen.RootVisual, mask, values).Check(conn)
	if err != nil {
		return nil, fmt.Errorf("create window: %w", err)
	}

	return &Window{conn: conn, id: win, depth: screen.RootDepth}, nil
}

// ID returns the X window identifier.
func (w *Window) ID() x.Window {
	return w.id
}

// Map makes the window visible once the tray manager has embedded it.
func (w *Window) Map() error {
	if err := x.MapWindowChecked(w.conn, w.id).Check(w.conn); err != nil {
		return fmt.Errorf("map window: %w", err)
	}
	return w.conn.Flush()
}

// Blit transfers a full icon buffer into the window. The graphics
// context lives only for this one call and is freed on every exit
// path, so redraws over a long process life cannot leak server-side
// resources.
func (w *Window) Blit(pixels []byte) error {
	gcID, err := w.conn.AllocID()
	if err != nil {
		return fmt.Errorf("alloc gc id: %w", err)
	}
	gc := x.GContext(gcID)

	if err := x.CreateGCChecked(w.conn, gc, x.Drawable(w.id), 0, nil).Check(w.conn); err != nil {
		w.conn.FreeID(gcID)
		return fmt.Errorf("create gc: %w", err)
	}
	defer func() {
		x.FreeGC(w.conn, gc)
		w.conn.FreeID(gcID)
		w.conn.Flush()
	}()

	err = x.PutImageChecked(w.conn, x.ImageFormatZPixmap, x.Drawable(w.id), gc,
		icon.Size, icon.Size, 0, 0, 0, w.depth, pixels).Check(w.conn)
	if err != nil {
		return fmt.Errorf("put image: %w", err)
	}

	return nil
}
