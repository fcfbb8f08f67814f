package service

import (
	"context"
	"time"

	"github.com/anthanhphan/gosdk/logger"

	"github.com/pastryhash/pastry/internal/node/domain"
)

// StartRefreshWorker periodically re-announces this node's presence to
// its current leaf set and routing table neighbors, opportunistically
// repopulating routing-table cells left empty after a failure. It
// returns once ctx is cancelled.
func (n *Node) StartRefreshWorker(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n.refreshOnce(ctx)
		}
	}
}

func (n *Node) refreshOnce(ctx context.Context) {
	if n.Phase() != domain.Serving {
		return
	}

	self := n.SelfEntry()
	targets := n.fanOutTargets()

	for _, target := range targets {
		target := target
		err := n.pool.Submit(ctx, func() {
			if err := n.transport.AnnounceArrival(ctx, target, self); err != nil {
				logger.Warnw("refresh announce failed", "target", target.PubAddr, "error", err.Error())
				n.ReportPeerFailure(ctx, target)
			}
		})
		if err != nil {
			logger.Warnw("refresh worker pool rejected job", "target", target.PubAddr, "error", err.Error())
		}
	}
}
