package port

import (
	"context"

	"github.com/pastryhash/pastry/internal/node/domain"
)

// NodeService is the inbound handler surface a transport adapter (gRPC,
// HTTP debug) dispatches onto. It is implemented by
// internal/node/service.Node.
type NodeService interface {
	GetNodeState(ctx context.Context) (domain.ID, []domain.NodeEntry)
	GetNodeTableEntry(ctx context.Context, row, column int) (domain.NodeEntry, bool)

	Join(ctx context.Context, req JoinRequest) (JoinResponse, error)
	Query(ctx context.Context, req QueryRequest) QueryResponse

	AnnounceArrival(ctx context.Context, arriving domain.NodeEntry)
	FixLeafSet(ctx context.Context, sender domain.NodeEntry)

	// TransferKeys streams this node's key-value pairs owned by requester
	// to w, removing them locally only once w reports full consumption.
	TransferKeys(ctx context.Context, requester domain.NodeEntry, w KVWriter) error
}

// KVWriter is the server-streaming sink TransferKeys writes into; an
// inbound gRPC adapter implements it over the wire stream.
type KVWriter interface {
	Send(KV) error
	// SendSummary sends the sender's authoritative count and Merkle root
	// as the final stream item, after every KV has been sent.
	SendSummary(TransferSummary) error
}

// Directory is the external bootstrap-discovery collaborator: a
// non-authoritative registry of known public addresses used only to
// pick a bootstrap peer when none is supplied on the CLI.
type Directory interface {
	Register(ctx context.Context, pubAddr string) error
	PickPeer(ctx context.Context, self string) (string, bool, error)
	Close() error
}
