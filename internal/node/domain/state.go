package domain

// Phase is a lifecycle phase of a node.
type Phase int

const (
	Initializing Phase = iota
	Joining
	Serving
	Repairing
	Terminated
)

func (p Phase) String() string {
	switch p {
	case Initializing:
		return "initializing"
	case Joining:
		return "joining"
	case Serving:
		return "serving"
	case Repairing:
		return "repairing"
	case Terminated:
		return "terminated"
	default:
		return "unknown"
	}
}

// State is the tuple (self_id, public_address, LeafSet, RoutingTable,
// KeyStore, lifecycle_phase) a node exclusively owns. State itself carries
// no locking — internal/node/service.Node wraps it with a single-writer/
// many-reader discipline.
type State struct {
	SelfID   ID
	PubAddr  string
	Digits   Digits
	Leaves   *LeafSet
	Table    *RoutingTable
	Store    *KeyStore
	Phase    Phase
}

// NewState builds an Initializing node state for the given identity.
func NewState(selfID ID, pubAddr string, digits Digits, leafHalf int) *State {
	return &State{
		SelfID:  selfID,
		PubAddr: pubAddr,
		Digits:  digits,
		Leaves:  NewLeafSet(selfID, leafHalf),
		Table:   NewRoutingTable(selfID, digits),
		Store:   NewKeyStore(),
		Phase:   Initializing,
	}
}

// Self returns this node's own entry.
func (s *State) Self() NodeEntry {
	return NodeEntry{ID: s.SelfID, PubAddr: s.PubAddr}
}
