package xlayout

import (
	"fmt"

	x "github.com/linuxdeepin/go-x11-client"
	"github.com/linuxdeepin/go-x11-client/ext/xkb"
)

// DefaultName is the synthetic group name used when the server reports
// no group names at all (extension misconfigured or names unset), so
// the rest of the process always has at least one group to index.
const DefaultName = "US"

// XkbGroupStateMask bit of the state-notify detail mask: effective
// group changes only.
const stateDetailGroupState = 1 << 4

// Setup enables the XKB extension on the connection and subscribes to
// group changes of the core keyboard.
func Setup(conn *x.Conn) error {
	_, err := xkb.UseExtension(conn, xkb.MajorVersion, xkb.MinorVersion).Reply(conn)
	if err != nil {
		return fmt.Errorf("use xkb extension: %w", err)
	}

	details := xkb.SelectDetail(xkb.EventTypeStateNotify, map[uint]bool{
		stateDetailGroupState: true,
	})
	err = xkb.SelectEventsChecked(conn, xkb.IDUseCoreKbd, details).Check(conn)
	if err != nil {
		return fmt.Errorf("select xkb state events: %w", err)
	}

	return nil
}

// Names returns the configured layout group names in group order. The
// group-names metadata is a zero-terminated list of atoms; each one is
// resolved to its string form.
func Names(conn *x.Conn) ([]string, error) {
	reply, err := xkb.GetNames(conn, xkb.IDUseCoreKbd, xkb.NameDetailGroupNames).Reply(conn)
	if err != nil {
		return nil, fmt.Errorf("get group names: %w", err)
	}

	var names []string
	for _, a := range reply.GroupNames {
		if a == 0 {
			break
		}
		nameReply, err := x.GetAtomName(conn, a).Reply(conn)
		if err != nil {
			return nil, fmt.Errorf("resolve group name atom %d: %w", a, err)
		}
		names = append(names, nameReply.Name)
	}

	if len(names) == 0 {
		names = []string{DefaultName}
	}

	return names, nil
}

// CurrentGroup queries the group that is active right now.
func CurrentGroup(conn *x.Conn) (int, error) {
	reply, err := xkb.GetState(conn, xkb.IDUseCoreKbd).Reply(conn)
	if err != nil {
		return 0, fmt.Errorf("get xkb state: %w", err)
	}
	return int(reply.Group), nil
}

// FirstEvent returns the event code the server delivers XKB events on.
func FirstEvent(conn *x.Conn) uint8 {
	return conn.GetExtensionData(xkb.Ext()).FirstEvent
}
