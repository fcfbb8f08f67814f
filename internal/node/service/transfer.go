package service

import (
	"context"

	"github.com/anthanhphan/gosdk/logger"

	"github.com/pastryhash/pastry/internal/node/domain"
	"github.com/pastryhash/pastry/internal/node/port"
	"github.com/pastryhash/pastry/pkg/merkle"
)

// transferCheckBuckets is the leaf count of the scratch Merkle tree built
// over a single TransferKeys stream. It only needs to be large enough to
// make an accidental full-root collision across unrelated transfers
// implausible; it is not persisted or compared against anything
// authoritative.
const transferCheckBuckets = 16

// transferService implements key handoff: stream every
// key for which requester is now the closest known node, removing them
// locally only once the stream is fully consumed.
type transferService struct {
	n *Node
}

func newTransferService(n *Node) *transferService { return &transferService{n: n} }

func (s *transferService) transferKeys(ctx context.Context, requester domain.NodeEntry, w port.KVWriter) error {
	var (
		selfID domain.ID
		owned  []port.KV
	)

	s.n.view(func(st *domain.State) {
		selfID = st.SelfID
		known := append(st.Leaves.Snapshot(), st.Table.Snapshot()...)
		st.Store.Each(func(key domain.ID, value []byte) {
			if !domain.CloserTo(key, requester.ID, selfID) {
				return
			}
			for _, e := range known {
				if e.ID != requester.ID && domain.CloserTo(key, e.ID, requester.ID) {
					return
				}
			}
			owned = append(owned, port.KV{Key: key, Value: append([]byte(nil), value...)})
		})
	})

	if len(owned) == 0 {
		return nil
	}

	tree, err := merkle.New(transferCheckBuckets)
	if err != nil {
		return err
	}
	for _, kv := range owned {
		bucket := merkle.BucketFor(kv.Key, transferCheckBuckets)
		if err := tree.UpdateBucket(bucket, merkle.HashKV(kv.Key, kv.Value)); err != nil {
			return err
		}
	}

	for i, kv := range owned {
		if err := w.Send(kv); err != nil {
			logger.Warnw("transfer aborted mid-stream, retaining all keys", "requester", requester.ID, "sent", i, "error", err.Error())
			return err
		}
	}

	root := tree.Root()
	if err := w.SendSummary(port.TransferSummary{Count: len(owned), Root: root}); err != nil {
		logger.Warnw("transfer summary send failed, retaining all keys", "requester", requester.ID, "error", err.Error())
		return err
	}

	logger.Infow("key transfer complete", "requester", requester.ID, "count", len(owned), "root", root)

	s.n.mutate(func(st *domain.State) {
		for _, kv := range owned {
			st.Store.Remove(kv.Key)
		}
	})
	return nil
}
