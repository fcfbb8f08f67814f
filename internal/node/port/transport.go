package port

//go:generate mockgen -destination=../service/mocks/transport_mock.go -package=mocks -source=transport.go

import (
	"context"

	"github.com/pastryhash/pastry/internal/node/domain"
)

// QueryType enumerates the key-value operations carried by Query.
type QueryType int

const (
	QueryGet QueryType = iota
	QueryDelete
	QuerySet
)

// JoinRequest is the Join RPC payload, threaded recursively through the
// bootstrap chain.
type JoinRequest struct {
	JoiningID      domain.ID
	JoiningAddr    string
	Hops           int
	MatchedDigits  int
	RoutingRows    [][]domain.NodeEntry // accumulated table rows, one per hop so far
}

// JoinResponse is returned once a recursive Join reaches the node that
// terminates routing for the joining id.
type JoinResponse struct {
	ResponderID   domain.ID
	ResponderAddr string
	Hops          int
	LeafSet       []domain.NodeEntry
	RoutingRows   [][]domain.NodeEntry
}

// QueryRequest is the Get/Set/Delete RPC payload. MatchedDigits mirrors
// the source protocol's redundant field but is
// never read by a receiver — a forwarding hop sets it to the shared
// prefix length of the next hop's id and the key.
type QueryRequest struct {
	FromID        domain.ID
	MatchedDigits int
	Hops          int
	Type          QueryType
	Key           domain.ID
	Value         []byte
	HasValue      bool
}

// QueryError enumerates the query-protocol error cases.
type QueryError int

const (
	NoQueryError QueryError = iota
	ValueNotProvided
	KeyNotFound
	// ShutdownError is returned in place of NoQueryError once the node has
	// transitioned to Terminated; FromID/Hops/Key are still populated but
	// Value/HasValue are not.
	ShutdownError
)

// QueryResponse is the Get/Set/Delete RPC result.
type QueryResponse struct {
	FromID   domain.ID
	Hops     int
	Key      domain.ID
	Value    []byte
	HasValue bool
	Err      QueryError
}

// KV is a single key-value pair streamed by TransferKeys.
type KV struct {
	Key   domain.ID
	Value []byte
}

// TransferSummary is the sender's authoritative count and Merkle root
// over a single TransferKeys batch, delivered as the last item of the
// stream so the receiver can fold the same KVs independently and flag a
// disagreement — a non-authoritative integrity signal, not a durability
// or consistency mechanism.
type TransferSummary struct {
	Count int
	Root  string
}

// Transport is the outbound RPC port a node uses to talk to peers. It is
// an external collaborator: framing, connection pooling, and
// retries live behind this interface, never in the core.
type Transport interface {
	Join(ctx context.Context, target domain.NodeEntry, req JoinRequest) (JoinResponse, error)
	Query(ctx context.Context, target domain.NodeEntry, req QueryRequest) (QueryResponse, error)
	AnnounceArrival(ctx context.Context, target domain.NodeEntry, arriving domain.NodeEntry) error
	FixLeafSet(ctx context.Context, target domain.NodeEntry, sender domain.NodeEntry) error
	// TransferKeys streams every key-value pair the target considers this
	// requester to now own. onKV is invoked once per pair; onSummary is
	// invoked once, after the last pair, with the sender's authoritative
	// count and Merkle root. When the sender has no pairs to hand over it
	// sends no summary, and onSummary is not invoked. The returned error, if any, reports a
	// transport failure; a normal end-of-stream is nil.
	TransferKeys(ctx context.Context, target domain.NodeEntry, requester domain.NodeEntry, onKV func(KV) error, onSummary func(TransferSummary)) error
	// GetNodeState and GetNodeTableEntry mirror the read-only
	// informational RPCs for use by repair flows that need a peer's view.
	GetNodeState(ctx context.Context, target domain.NodeEntry) (domain.ID, []domain.NodeEntry, error)
	GetNodeTableEntry(ctx context.Context, target domain.NodeEntry, row, column int) (domain.NodeEntry, bool, error)
}
