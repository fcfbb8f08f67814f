package service

import (
	"context"

	"github.com/anthanhphan/gosdk/logger"

	"github.com/pastryhash/pastry/internal/node/domain"
	"github.com/pastryhash/pastry/internal/node/port"
	"github.com/pastryhash/pastry/pkg/merkle"
)

// joinService implements the receiver and initiator sides of the join
// protocol.
type joinService struct {
	n *Node
}

func newJoinService(n *Node) *joinService { return &joinService{n: n} }

// handleJoin is the receiver side: node Y processing a Join for X,
// possibly several hops from the bootstrap. It appends its own
// contribution to the accumulated routing rows, decides whether it is
// the terminal node, and either answers or forwards.
func (s *joinService) handleJoin(ctx context.Context, req port.JoinRequest) (port.JoinResponse, error) {
	var (
		rows   []domain.NodeEntry
		next   domain.HopDecision
		digits domain.Digits
	)

	s.n.view(func(st *domain.State) {
		if req.MatchedDigits >= 0 && req.MatchedDigits < st.Table.Rows() {
			rows = st.Table.RowEntries(req.MatchedDigits)
		}
		next = domain.SelectNextHop(st.SelfID, st.Leaves, st.Table, req.JoiningID, nil)
		digits = st.Digits
	})

	accumulated := append(append([][]domain.NodeEntry{}, req.RoutingRows...), rows)

	if next.Outcome != domain.Forward {
		var leafSnap []domain.NodeEntry
		var selfEntry domain.NodeEntry
		s.n.view(func(st *domain.State) {
			leafSnap = st.Leaves.Snapshot()
			selfEntry = st.Self()
		})
		return port.JoinResponse{
			ResponderID:   selfEntry.ID,
			ResponderAddr: selfEntry.PubAddr,
			Hops:          req.Hops,
			LeafSet:       append(leafSnap, selfEntry),
			RoutingRows:   accumulated,
		}, nil
	}

	target := next.Target

	forward := port.JoinRequest{
		JoiningID:     req.JoiningID,
		JoiningAddr:   req.JoiningAddr,
		Hops:          req.Hops + 1,
		MatchedDigits: digits.SharedPrefixLen(target.ID, req.JoiningID),
		RoutingRows:   accumulated,
	}

	resp, err := s.n.transport.Join(ctx, target, forward)
	if err != nil {
		s.n.ReportPeerFailure(ctx, target)
		return port.JoinResponse{}, domain.ErrJoinFailed
	}
	return resp, nil
}

// bootstrapJoin is the initiator side: X issuing Join to a bootstrap
// node, then applying the JoinResponse and completing the protocol
// (AnnounceArrival fan-out, TransferKeys request).
func (s *joinService) bootstrapJoin(ctx context.Context, bootstrap domain.NodeEntry) error {
	s.n.setPhase(domain.Joining)

	var self domain.NodeEntry
	s.n.view(func(st *domain.State) { self = st.Self() })

	req := port.JoinRequest{
		JoiningID:   self.ID,
		JoiningAddr: self.PubAddr,
		Hops:        0,
	}

	resp, err := s.n.transport.Join(ctx, bootstrap, req)
	if err != nil {
		return domain.ErrJoinFailed
	}

	s.n.mutate(func(st *domain.State) {
		for _, e := range resp.LeafSet {
			if e.ID == st.SelfID {
				continue
			}
			st.Leaves.Insert(e)
		}
		for _, row := range resp.RoutingRows {
			for _, e := range row {
				if e.ID == st.SelfID {
					continue
				}
				st.Table.MergeCandidate(e)
			}
		}
		st.Phase = domain.Serving
	})

	targets := s.n.fanOutTargets()

	for _, t := range targets {
		if err := s.n.transport.AnnounceArrival(ctx, t, self); err != nil {
			logger.Warnw("announce arrival failed", "target", t.ID, "error", err.Error())
			s.n.ReportPeerFailure(ctx, t)
		}
	}

	nearest, ok := s.n.nearestLeaf()
	if !ok {
		logger.Infow("joined with no leaf-set neighbor to transfer keys from", "id", self.ID)
		return nil
	}

	check, checkErr := merkle.New(transferCheckBuckets)
	if checkErr != nil {
		logger.Warnw("transfer integrity tree unavailable, skipping verification", "from", nearest.ID, "error", checkErr.Error())
	}
	received := 0

	err = s.n.transport.TransferKeys(ctx, nearest, self, func(kv port.KV) error {
		s.n.mutate(func(st *domain.State) { st.Store.Set(kv.Key, kv.Value) })
		received++
		if check != nil {
			bucket := merkle.BucketFor(kv.Key, transferCheckBuckets)
			if uerr := check.UpdateBucket(bucket, merkle.HashKV(kv.Key, kv.Value)); uerr != nil {
				logger.Warnw("transfer integrity tree update failed", "from", nearest.ID, "error", uerr.Error())
				check = nil
			}
		}
		return nil
	}, func(sum port.TransferSummary) {
		if sum.Count != received {
			logger.Warnw("transfer key count mismatch", "from", nearest.ID, "reported", sum.Count, "received", received)
			return
		}
		if check != nil && sum.Root != check.Root() {
			logger.Warnw("transfer merkle root mismatch", "from", nearest.ID, "reported", sum.Root, "computed", check.Root())
		}
	})
	if err != nil {
		logger.Warnw("transfer keys on join failed", "from", nearest.ID, "error", err.Error())
	}
	return nil
}

// fanOutTargets returns the deduplicated union of the final leaf set and
// routing table, the audience for AnnounceArrival after a join completes.
func (n *Node) fanOutTargets() []domain.NodeEntry {
	seen := map[domain.ID]struct{}{}
	var out []domain.NodeEntry
	n.view(func(st *domain.State) {
		for _, e := range st.Leaves.Snapshot() {
			if _, dup := seen[e.ID]; !dup {
				seen[e.ID] = struct{}{}
				out = append(out, e)
			}
		}
		for _, e := range st.Table.Snapshot() {
			if _, dup := seen[e.ID]; !dup {
				seen[e.ID] = struct{}{}
				out = append(out, e)
			}
		}
	})
	return out
}

// nearestLeaf returns the numerically nearest leaf-set neighbor to self,
// the target of a post-join TransferKeys request.
func (n *Node) nearestLeaf() (domain.NodeEntry, bool) {
	var self domain.ID
	var best domain.NodeEntry
	found := false
	var bestDist uint64

	n.view(func(st *domain.State) {
		self = st.SelfID
		for _, e := range st.Leaves.Snapshot() {
			d := domain.RingDistance(self, e.ID)
			if !found || d < bestDist {
				best, bestDist, found = e, d, true
			}
		}
	})
	return best, found
}
