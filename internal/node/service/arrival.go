package service

import (
	"context"

	"github.com/anthanhphan/gosdk/logger"

	"github.com/pastryhash/pastry/internal/node/domain"
)

// arrivalService implements membership gossip and failure repair:
// AnnounceArrival, FixLeafSet, and the transport-level failure handler
// that triggers both.
type arrivalService struct {
	n *Node
}

func newArrivalService(n *Node) *arrivalService { return &arrivalService{n: n} }

// announceArrival applies the idempotent-insert gossip update: insert
// into the leaf set if eligible, offer to the routing table.
func (s *arrivalService) announceArrival(ctx context.Context, arriving domain.NodeEntry) {
	s.n.mutate(func(st *domain.State) {
		if arriving.ID == st.SelfID {
			return
		}
		st.Leaves.Insert(arriving)
		st.Table.MergeCandidate(arriving)
	})
}

// fixLeafSet applies the repair notification's symmetric-insert side: the
// recipient simply inserts the sender. The sender's own refill happens in
// handlePeerFailure, which is what caused this notification to be sent.
func (s *arrivalService) fixLeafSet(ctx context.Context, sender domain.NodeEntry) {
	s.n.mutate(func(st *domain.State) {
		if sender.ID == st.SelfID {
			return
		}
		st.Leaves.Insert(sender)
	})
}

// handlePeerFailure removes a failed peer from volatile state, and if
// it was a leaf-set member, repairs that side from the farthest
// surviving neighbor.
func (s *arrivalService) handlePeerFailure(ctx context.Context, peer domain.NodeEntry) {
	var (
		wasLeaf  bool
		self     domain.NodeEntry
		refillOn domain.NodeEntry
		hasRef   bool
	)

	s.n.mutate(func(st *domain.State) {
		self = st.Self()
		if st.Leaves.Contains(peer.ID) {
			wasLeaf = true
			// Same ring-direction rule the leaf set uses to place entries:
			// successor only when the clockwise distance is shorter.
			side := domain.Predecessors
			if peer.ID-st.SelfID < st.SelfID-peer.ID {
				side = domain.Successors
			}
			st.Leaves.Remove(peer.ID)
			refillOn, hasRef = st.Leaves.FarthestOnSide(side)
		}
		st.Table.ClearEntry(peer.ID)
	})

	if !wasLeaf {
		return
	}

	logger.Infow("leaf-set member failed, starting repair", "failed", peer.ID, "self", self.ID)

	if !hasRef {
		return
	}

	s.n.setPhase(domain.Repairing)
	defer s.n.setPhase(domain.Serving)

	if err := s.n.transport.FixLeafSet(ctx, refillOn, self); err != nil {
		logger.Warnw("fix leaf set notification failed", "target", refillOn.ID, "error", err.Error())
		return
	}

	_, snapshot, err := s.n.transport.GetNodeState(ctx, refillOn)
	if err != nil {
		logger.Warnw("failed to fetch refill snapshot from surviving neighbor", "target", refillOn.ID, "error", err.Error())
		return
	}

	s.n.mutate(func(st *domain.State) {
		for _, e := range snapshot {
			if e.ID == st.SelfID {
				continue
			}
			st.Leaves.Insert(e)
		}
	})
}
