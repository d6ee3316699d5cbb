package tray

import (
	"errors"
	"fmt"

	x "github.com/linuxdeepin/go-x11-client"
	"github.com/linuxdeepin/go-x11-client/util/atom"
)

// ErrNoTrayManager means no process currently owns the tray selection.
var ErrNoTrayManager = errors.New("no system tray manager running")

// _NET_SYSTEM_TRAY_OPCODE message asking the manager to embed a window.
const opcodeRequestDock = 0

// Dock asks the tray manager of the given screen to embed win. It
// performs a single attempt; the retry policy belongs to the caller.
func Dock(conn *x.Conn, screen int, win x.Window) error {
	selection, err := atom.GetVal(conn, fmt.Sprintf("_NET_SYSTEM_TRAY_S%d", screen))
	if err != nil {
		return fmt.Errorf("intern tray selection atom: %w", err)
	}

	owner, err := x.GetSelectionOwner(conn, selection).Reply(conn)
	if err != nil {
		return fmt.Errorf("get tray selection owner: %w", err)
	}
	if owner.Owner == 0 {
		return ErrNoTrayManager
	}

	opcode, err := atom.GetVal(conn, "_NET_SYSTEM_TRAY_OPCODE")
	if err != nil {
		return fmt.Errorf("intern tray opcode atom: %w", err)
	}

	var data x.ClientMessageData
	data.SetData32(&[5]uint32{0, opcodeRequestDock, uint32(win), 0, 0})
	event := x.ClientMessageEvent{
		Format: 32,
		Window: owner.Owner,
		Type:   opcode,
		Data:   data,
	}

	w := x.NewWriter()
	x.WriteClientMessageEvent(w, &event)
	err = x.SendEventChecked(conn, false, owner.Owner, x.EventMaskNoEvent, w.Bytes()).Check(conn)
	if err != nil {
		return fmt.Errorf("send dock request: %w", err)
	}

	return nil
}
