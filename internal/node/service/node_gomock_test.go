package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/pastryhash/pastry/internal/node/domain"
	"github.com/pastryhash/pastry/internal/node/port"
	"github.com/pastryhash/pastry/internal/node/service/mocks"
)

// These scenarios exercise Node against a MockTransport rather than the
// in-process fakeTransport, so expectations are about which RPCs a
// bootstrap join issues (in any order), not about what a real peer
// does with them.

func TestBootstrapJoinRemovesLeafOnAnnounceArrivalFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	transport := mocks.NewMockTransport(ctrl)

	n := New(100, "self:9000", DefaultConfig(), transport)
	bootstrap := domain.NodeEntry{ID: 1, PubAddr: "bootstrap:9000"}
	peer := domain.NodeEntry{ID: 50, PubAddr: "peer:9000"}

	transport.EXPECT().
		Join(gomock.Any(), bootstrap, gomock.Any()).
		Return(port.JoinResponse{
			ResponderID:   bootstrap.ID,
			ResponderAddr: bootstrap.PubAddr,
			LeafSet:       []domain.NodeEntry{peer},
		}, nil)

	transport.EXPECT().
		AnnounceArrival(gomock.Any(), peer, gomock.Any()).
		Return(errors.New("connection refused"))

	err := n.BootstrapJoin(context.Background(), bootstrap)
	require.NoError(t, err)
	assert.Equal(t, domain.Serving, n.Phase())

	var leafIDs []domain.ID
	n.view(func(st *domain.State) {
		for _, e := range st.Leaves.Snapshot() {
			leafIDs = append(leafIDs, e.ID)
		}
	})
	assert.NotContains(t, leafIDs, peer.ID)
}

func TestBootstrapJoinTransfersKeysFromNearestLeaf(t *testing.T) {
	ctrl := gomock.NewController(t)
	transport := mocks.NewMockTransport(ctrl)

	n := New(100, "self:9000", DefaultConfig(), transport)
	bootstrap := domain.NodeEntry{ID: 1, PubAddr: "bootstrap:9000"}
	peer := domain.NodeEntry{ID: 99, PubAddr: "peer:9000"}

	transport.EXPECT().
		Join(gomock.Any(), bootstrap, gomock.Any()).
		Return(port.JoinResponse{
			ResponderID:   bootstrap.ID,
			ResponderAddr: bootstrap.PubAddr,
			LeafSet:       []domain.NodeEntry{peer},
		}, nil)

	transport.EXPECT().
		AnnounceArrival(gomock.Any(), peer, gomock.Any()).
		Return(nil)

	transport.EXPECT().
		TransferKeys(gomock.Any(), peer, gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _ domain.NodeEntry, onKV func(port.KV) error, onSummary func(port.TransferSummary)) error {
			// Key equals self's own id, so the follow-up Get below is
			// guaranteed to resolve locally regardless of leaf-set makeup.
			require.NoError(t, onKV(port.KV{Key: n.SelfEntry().ID, Value: []byte("v7")}))
			onSummary(port.TransferSummary{Count: 1, Root: "whatever"})
			return nil
		})

	err := n.BootstrapJoin(context.Background(), bootstrap)
	require.NoError(t, err)

	resp := n.Query(context.Background(), port.QueryRequest{FromID: n.SelfEntry().ID, Type: port.QueryGet, Key: n.SelfEntry().ID})
	assert.Equal(t, port.NoQueryError, resp.Err)
	assert.Equal(t, []byte("v7"), resp.Value)
}
