package explorer

// Event is a user interaction delivered to a session's HandleEvent pump.
// The concrete types below cover everything the terminal front end emits,
// a map front end would produce the same ones.
type Event interface {
	isEvent()
}

// PolygonDrawn asks the session to compute a series for a drawn region.
type PolygonDrawn struct {
	Label     string
	Selection *RegionSelection
}

// SelectionCleared drops every series accumulated so far.
type SelectionCleared struct{}

// SessionClosed ends the session, later events are ignored.
type SessionClosed struct{}

func (PolygonDrawn) isEvent()     {}
func (SelectionCleared) isEvent() {}
func (SessionClosed) isEvent()    {}
