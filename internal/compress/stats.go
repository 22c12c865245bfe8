package compress

// Stats counts rule firings for one pass.
type Stats struct {
	DroppedEmpty       int `msgpack:"dropped_empty"`
	DroppedDebugger    int `msgpack:"dropped_debugger"`
	JoinedDecls        int `msgpack:"joined_decls"` // declarations folded into a predecessor
	LoopsRewritten     int `msgpack:"loops_rewritten"`
	UndefinedRewritten int `msgpack:"undefined_rewritten"`
	BooleansRewritten  int `msgpack:"booleans_rewritten"`
	TypeofsRewritten   int `msgpack:"typeofs_rewritten"`
}

// Total sums every counter.
func (s Stats) Total() int {
	return s.DroppedEmpty + s.DroppedDebugger + s.JoinedDecls + s.LoopsRewritten +
		s.UndefinedRewritten + s.BooleansRewritten + s.TypeofsRewritten
}

// Add accumulates other into s.
func (s *Stats) Add(other Stats) {
	s.DroppedEmpty += other.DroppedEmpty
	s.DroppedDebugger += other.DroppedDebugger
	s.JoinedDecls += other.JoinedDecls
	s.LoopsRewritten += other.LoopsRewritten
	s.UndefinedRewritten += other.UndefinedRewritten
	s.BooleansRewritten += other.BooleansRewritten
	s.TypeofsRewritten += other.TypeofsRewritten
}
