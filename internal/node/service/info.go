package service

import (
	"context"

	"github.com/pastryhash/pastry/internal/node/domain"
)

// infoService implements the read-only informational endpoints, each
// consistent with a single point-in-time snapshot.
type infoService struct {
	n *Node
}

func newInfoService(n *Node) *infoService { return &infoService{n: n} }

func (s *infoService) getNodeState(ctx context.Context) (domain.ID, []domain.NodeEntry) {
	var id domain.ID
	var leaves []domain.NodeEntry
	s.n.view(func(st *domain.State) {
		id = st.SelfID
		leaves = st.Leaves.Snapshot()
	})
	return id, leaves
}

func (s *infoService) getNodeTableEntry(ctx context.Context, row, column int) (domain.NodeEntry, bool) {
	var entry domain.NodeEntry
	var ok bool
	s.n.view(func(st *domain.State) {
		entry, ok = st.Table.Get(row, column)
	})
	return entry, ok
}
