// Package service implements the Pastry membership and routing state
// machine plus the join/query/repair protocols operating over it. Node
// is a facade composing focused use-case services, one per protocol.
package service

import (
	"context"
	"sync"
	"time"

	"github.com/anthanhphan/gosdk/logger"

	"github.com/pastryhash/pastry/internal/node/domain"
	"github.com/pastryhash/pastry/internal/node/port"
	"github.com/pastryhash/pastry/pkg/idgen"
	"github.com/pastryhash/pastry/pkg/resilience"
)

// Node owns a single NodeState under a single-writer/many-reader
// discipline: readers take mu.RLock, writers take mu.Lock,
// and no blocking I/O happens while the write lock is held — outbound
// RPCs are issued outside the critical section and their results applied
// in a short follow-up write.
type Node struct {
	mu    sync.RWMutex
	state *domain.State

	transport port.Transport
	traceGen  *idgen.Snowflake
	pool      *resilience.WorkerPool
	cfg       Config

	join     *joinService
	query    *queryService
	arrival  *arrivalService
	transfer *transferService
	info     *infoService
}

// Ensure Node implements port.NodeService.
var _ port.NodeService = (*Node)(nil)

// Config configures the core routing/membership parameters.
type Config struct {
	B              uint
	LeafSetHalf    int
	RequestTimeout time.Duration

	// TraceClock backs the trace id generator's time source. Nil means
	// the system clock.
	TraceClock idgen.Clock
}

// DefaultConfig returns the documented defaults: k=8 (b=3),
// leaf_set_half_size=8, request_timeout=5s.
func DefaultConfig() Config {
	return Config{B: domain.DefaultB, LeafSetHalf: domain.DefaultK, RequestTimeout: 5 * time.Second}
}

// New builds a Node in the Initializing phase for the given identity.
func New(selfID domain.ID, pubAddr string, cfg Config, transport port.Transport) *Node {
	digits := domain.NewDigits(cfg.B)
	state := domain.NewState(selfID, pubAddr, digits, cfg.LeafSetHalf)

	traceGen, err := idgen.New(idgen.NodeComponent(selfID), cfg.TraceClock)
	if err != nil {
		// NodeComponent folds the id into the valid range, so this
		// indicates a programmer error in idgen itself.
		panic(&domain.InvariantViolation{Msg: "trace id generator rejected node component: " + err.Error()})
	}

	n := &Node{
		state:     state,
		transport: transport,
		traceGen:  traceGen,
		pool:      resilience.NewWorkerPool(4, 64),
		cfg:       cfg,
	}

	n.join = newJoinService(n)
	n.query = newQueryService(n)
	n.arrival = newArrivalService(n)
	n.transfer = newTransferService(n)
	n.info = newInfoService(n)

	return n
}

// TraceID mints a per-request correlation id for log lines.
func (n *Node) TraceID() int64 {
	id, err := n.traceGen.Next()
	if err != nil {
		return 0
	}
	return id
}

// view returns a read-only snapshot handle under the shared-reader lock.
// The callback must not retain leaves/table/store pointers past return,
// and must not block on I/O.
func (n *Node) view(fn func(s *domain.State)) {
	n.mu.RLock()
	defer n.mu.RUnlock()
	fn(n.state)
}

// mutate runs fn under the exclusive writer lock. fn must not perform
// blocking I/O: compute outbound RPC plans outside mutate,
// call mutate only to apply their results.
func (n *Node) mutate(fn func(s *domain.State)) {
	n.mu.Lock()
	defer n.mu.Unlock()
	fn(n.state)
}

// SelfEntry returns this node's own (id, address) entry.
func (n *Node) SelfEntry() domain.NodeEntry {
	var e domain.NodeEntry
	n.view(func(s *domain.State) { e = s.Self() })
	return e
}

// Phase returns the current lifecycle phase.
func (n *Node) Phase() domain.Phase {
	var p domain.Phase
	n.view(func(s *domain.State) { p = s.Phase })
	return p
}

// setPhase transitions the lifecycle phase under the writer lock.
func (n *Node) setPhase(p domain.Phase) {
	n.mutate(func(s *domain.State) { s.Phase = p })
}

// checkAlive reports domain.ErrShutdown once the node has transitioned to
// Terminated, so a request racing Shutdown fails fast instead of being
// served as if the node were still active.
func (n *Node) checkAlive() error {
	if n.Phase() == domain.Terminated {
		return domain.ErrShutdown
	}
	return nil
}

// Shutdown transitions to Terminated and closes the background worker
// pool. Handlers check the phase only on entry (checkAlive): requests
// arriving afterwards are refused, while a handler already past that
// check runs to completion.
func (n *Node) Shutdown(ctx context.Context) {
	n.setPhase(domain.Terminated)
	n.pool.Close()
	logger.Infow("node terminated", "id", n.SelfEntry().ID)
}

// GetNodeState implements the read-only informational endpoint.
func (n *Node) GetNodeState(ctx context.Context) (domain.ID, []domain.NodeEntry) {
	return n.info.getNodeState(ctx)
}

// GetNodeTableEntry implements the read-only informational endpoint.
func (n *Node) GetNodeTableEntry(ctx context.Context, row, column int) (domain.NodeEntry, bool) {
	return n.info.getNodeTableEntry(ctx, row, column)
}

// Join implements the recursive join-protocol handler's receiver side:
// steps performed by a node Y that receives a Join for X.
func (n *Node) Join(ctx context.Context, req port.JoinRequest) (port.JoinResponse, error) {
	if err := n.checkAlive(); err != nil {
		return port.JoinResponse{}, err
	}
	return n.join.handleJoin(ctx, req)
}

// BootstrapJoin implements the joining node X's side of the join
// protocol: issue Join to the bootstrap node, populate state from the
// response, transition to Serving, announce arrival, and transfer keys.
func (n *Node) BootstrapJoin(ctx context.Context, bootstrap domain.NodeEntry) error {
	return n.join.bootstrapJoin(ctx, bootstrap)
}

// BecomeFirstNode implements Case A bootstrap: no peer supplied, move
// straight to Serving with empty leaf set and table.
func (n *Node) BecomeFirstNode() {
	n.setPhase(domain.Serving)
}

// Query implements the key-value query protocol handler.
func (n *Node) Query(ctx context.Context, req port.QueryRequest) port.QueryResponse {
	if err := n.checkAlive(); err != nil {
		return port.QueryResponse{FromID: req.FromID, Hops: req.Hops, Key: req.Key, Err: port.ShutdownError}
	}
	return n.query.handleQuery(ctx, req)
}

// AnnounceArrival implements the fire-and-forget arrival gossip handler.
func (n *Node) AnnounceArrival(ctx context.Context, arriving domain.NodeEntry) {
	if n.checkAlive() != nil {
		return
	}
	n.arrival.announceArrival(ctx, arriving)
}

// FixLeafSet implements the repair-notification handler.
func (n *Node) FixLeafSet(ctx context.Context, sender domain.NodeEntry) {
	if n.checkAlive() != nil {
		return
	}
	n.arrival.fixLeafSet(ctx, sender)
}

// TransferKeys implements the key-handoff streaming handler.
func (n *Node) TransferKeys(ctx context.Context, requester domain.NodeEntry, w port.KVWriter) error {
	if err := n.checkAlive(); err != nil {
		return err
	}
	return n.transfer.transferKeys(ctx, requester, w)
}

// ReportPeerFailure is invoked by the join, query, and refresh handlers
// when an outbound RPC to a peer returns an error. It removes the peer from
// volatile state and triggers leaf-set repair if the peer was a member
// of the leaf set.
func (n *Node) ReportPeerFailure(ctx context.Context, peer domain.NodeEntry) {
	n.arrival.handlePeerFailure(ctx, peer)
}
