// Package grpc_handler implements port.Transport over gRPC: a pooled
// connection and circuit breaker per peer address, translating domain
// types to and from wire messages.
package grpc_handler

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"

	"github.com/anthanhphan/gosdk/logger"

	"github.com/pastryhash/pastry/internal/node/domain"
	"github.com/pastryhash/pastry/internal/node/port"
	pastryv1 "github.com/pastryhash/pastry/proto/gen/pastry/v1"
	"github.com/pastryhash/pastry/pkg/resilience"
)

// ClientAdapter implements port.Transport over pooled gRPC connections.
type ClientAdapter struct {
	mu       sync.RWMutex
	conns    map[string]*grpc.ClientConn
	breakers map[string]*resilience.CircuitBreaker
	timeout  time.Duration
}

// NewClientAdapter creates a new outbound transport client. timeout is
// applied to any call whose context carries no deadline of its own.
func NewClientAdapter(timeout time.Duration) *ClientAdapter {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &ClientAdapter{
		conns:    make(map[string]*grpc.ClientConn),
		breakers: make(map[string]*resilience.CircuitBreaker),
		timeout:  timeout,
	}
}

var _ port.Transport = (*ClientAdapter)(nil)

func (c *ClientAdapter) getConn(addr string) (*grpc.ClientConn, error) {
	c.mu.RLock()
	conn, ok := c.conns[addr]
	c.mu.RUnlock()
	if ok {
		return conn, nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if conn, ok := c.conns[addr]; ok {
		return conn, nil
	}

	newConn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", addr, err)
	}
	c.conns[addr] = newConn
	return newConn, nil
}

func (c *ClientAdapter) getBreaker(addr string) *resilience.CircuitBreaker {
	c.mu.RLock()
	cb, ok := c.breakers[addr]
	c.mu.RUnlock()
	if ok {
		return cb
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if cb, ok = c.breakers[addr]; ok {
		return cb
	}
	cb = resilience.NewCircuitBreaker(resilience.CircuitBreakerConfig{
		Name:              addr,
		FailureThreshold:  3,
		SuccessThreshold:  2,
		OpenTimeout:       10 * time.Second,
		HalfOpenMaxFlight: 1,
	})
	c.breakers[addr] = cb
	return cb
}

func (c *ClientAdapter) dropConn(addr string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if conn, ok := c.conns[addr]; ok {
		_ = conn.Close()
		delete(c.conns, addr)
	}
}

// Close closes every pooled connection.
func (c *ClientAdapter) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, conn := range c.conns {
		_ = conn.Close()
	}
	return nil
}

func (c *ClientAdapter) withBreaker(ctx context.Context, addr, op string, fn func(context.Context, pastryv1.NodeServiceClient) error) error {
	breaker := c.getBreaker(addr)
	err := breaker.Execute(ctx, func(execCtx context.Context) error {
		conn, err := c.getConn(addr)
		if err != nil {
			return normalizeRPCErr(execCtx, err)
		}
		client := pastryv1.NewNodeServiceClient(conn)
		return normalizeRPCErr(execCtx, fn(execCtx, client))
	})
	if err == nil {
		return nil
	}
	if errors.Is(err, resilience.ErrCircuitOpen) {
		logger.Warnw("node RPC short-circuited", "op", op, "target", addr, "error", err.Error())
		return err
	}
	if errors.Is(err, context.Canceled) {
		return err
	}
	logger.Warnw("node RPC failed", "op", op, "target", addr, "error", err.Error())
	c.dropConn(addr)
	return err
}

func (c *ClientAdapter) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, hasDeadline := ctx.Deadline(); hasDeadline {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, c.timeout)
}

func (c *ClientAdapter) Join(ctx context.Context, target domain.NodeEntry, req port.JoinRequest) (port.JoinResponse, error) {
	callCtx, cancel := c.withTimeout(ctx)
	defer cancel()

	var resp port.JoinResponse
	err := c.withBreaker(callCtx, target.PubAddr, "Join", func(execCtx context.Context, client pastryv1.NodeServiceClient) error {
		out, err := client.Join(execCtx, &pastryv1.JoinRequest{
			JoiningId:     req.JoiningID,
			JoiningAddr:   req.JoiningAddr,
			Hops:          int32(req.Hops),
			MatchedDigits: int32(req.MatchedDigits),
			RoutingRows:   rowsToPB(req.RoutingRows),
		})
		if err != nil {
			return err
		}
		resp = port.JoinResponse{
			ResponderID:   out.ResponderId,
			ResponderAddr: out.ResponderAddr,
			Hops:          int(out.Hops),
			LeafSet:       entriesFromPB(out.LeafSet),
			RoutingRows:   rowsFromPB(out.RoutingRows),
		}
		return nil
	})
	return resp, err
}

func (c *ClientAdapter) Query(ctx context.Context, target domain.NodeEntry, req port.QueryRequest) (port.QueryResponse, error) {
	callCtx, cancel := c.withTimeout(ctx)
	defer cancel()

	var resp port.QueryResponse
	err := c.withBreaker(callCtx, target.PubAddr, "Query", func(execCtx context.Context, client pastryv1.NodeServiceClient) error {
		out, err := client.Query(execCtx, &pastryv1.QueryRequest{
			FromId:        req.FromID,
			MatchedDigits: int32(req.MatchedDigits),
			Hops:          int32(req.Hops),
			Type:          queryTypeToPB(req.Type),
			Key:           req.Key,
			Value:         req.Value,
			HasValue:      req.HasValue,
		})
		if err != nil {
			return err
		}
		resp = port.QueryResponse{
			FromID:   out.FromId,
			Hops:     int(out.Hops),
			Key:      out.Key,
			Value:    out.Value,
			HasValue: out.HasValue,
			Err:      queryErrorFromPB(out.Error),
		}
		return nil
	})
	return resp, err
}

func (c *ClientAdapter) AnnounceArrival(ctx context.Context, target domain.NodeEntry, arriving domain.NodeEntry) error {
	callCtx, cancel := c.withTimeout(ctx)
	defer cancel()
	return c.withBreaker(callCtx, target.PubAddr, "AnnounceArrival", func(execCtx context.Context, client pastryv1.NodeServiceClient) error {
		_, err := client.AnnounceArrival(execCtx, &pastryv1.AnnounceArrivalRequest{Id: arriving.ID, PubAddr: arriving.PubAddr})
		return err
	})
}

func (c *ClientAdapter) FixLeafSet(ctx context.Context, target domain.NodeEntry, sender domain.NodeEntry) error {
	callCtx, cancel := c.withTimeout(ctx)
	defer cancel()
	return c.withBreaker(callCtx, target.PubAddr, "FixLeafSet", func(execCtx context.Context, client pastryv1.NodeServiceClient) error {
		_, err := client.FixLeafSet(execCtx, &pastryv1.FixLeafSetRequest{Id: sender.ID, PubAddr: sender.PubAddr})
		return err
	})
}

func (c *ClientAdapter) TransferKeys(ctx context.Context, target domain.NodeEntry, requester domain.NodeEntry, onKV func(port.KV) error, onSummary func(port.TransferSummary)) error {
	callCtx, cancel := c.withTimeout(ctx)
	defer cancel()
	return c.withBreaker(callCtx, target.PubAddr, "TransferKeys", func(execCtx context.Context, client pastryv1.NodeServiceClient) error {
		stream, err := client.TransferKeys(execCtx, &pastryv1.TransferKeysRequest{RequesterId: requester.ID, RequesterAddr: requester.PubAddr})
		if err != nil {
			return err
		}
		for {
			msg, err := stream.Recv()
			if err == io.EOF {
				return nil
			}
			if err != nil {
				return err
			}
			if msg.IsSummary {
				if onSummary != nil {
					onSummary(port.TransferSummary{Count: int(msg.KeyCount), Root: msg.MerkleRoot})
				}
				continue
			}
			if err := onKV(port.KV{Key: msg.Key, Value: msg.Value}); err != nil {
				return err
			}
		}
	})
}

func (c *ClientAdapter) GetNodeState(ctx context.Context, target domain.NodeEntry) (domain.ID, []domain.NodeEntry, error) {
	callCtx, cancel := c.withTimeout(ctx)
	defer cancel()

	var id domain.ID
	var leaves []domain.NodeEntry
	err := c.withBreaker(callCtx, target.PubAddr, "GetNodeState", func(execCtx context.Context, client pastryv1.NodeServiceClient) error {
		out, err := client.GetNodeState(execCtx, &pastryv1.GetNodeStateRequest{})
		if err != nil {
			return err
		}
		id = out.Id
		leaves = entriesFromPB(out.LeafSet)
		return nil
	})
	return id, leaves, err
}

func (c *ClientAdapter) GetNodeTableEntry(ctx context.Context, target domain.NodeEntry, row, column int) (domain.NodeEntry, bool, error) {
	callCtx, cancel := c.withTimeout(ctx)
	defer cancel()

	var entry domain.NodeEntry
	var found bool
	err := c.withBreaker(callCtx, target.PubAddr, "GetNodeTableEntry", func(execCtx context.Context, client pastryv1.NodeServiceClient) error {
		out, err := client.GetNodeTableEntry(execCtx, &pastryv1.GetNodeTableEntryRequest{Row: int32(row), Column: int32(column)})
		if err != nil {
			return err
		}
		found = out.Found
		if found {
			entry = entryFromPB(out.Entry)
		}
		return nil
	})
	return entry, found, err
}

func entryToPB(e domain.NodeEntry) *pastryv1.NodeEntry {
	return &pastryv1.NodeEntry{Id: e.ID, PubAddr: e.PubAddr}
}

func entryFromPB(e *pastryv1.NodeEntry) domain.NodeEntry {
	if e == nil {
		return domain.NodeEntry{}
	}
	return domain.NodeEntry{ID: e.Id, PubAddr: e.PubAddr}
}

func entriesToPB(entries []domain.NodeEntry) []*pastryv1.NodeEntry {
	out := make([]*pastryv1.NodeEntry, 0, len(entries))
	for _, e := range entries {
		out = append(out, entryToPB(e))
	}
	return out
}

func entriesFromPB(entries []*pastryv1.NodeEntry) []domain.NodeEntry {
	out := make([]domain.NodeEntry, 0, len(entries))
	for _, e := range entries {
		out = append(out, entryFromPB(e))
	}
	return out
}

func rowsToPB(rows [][]domain.NodeEntry) []*pastryv1.RoutingRow {
	out := make([]*pastryv1.RoutingRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, &pastryv1.RoutingRow{Entries: entriesToPB(r)})
	}
	return out
}

func rowsFromPB(rows []*pastryv1.RoutingRow) [][]domain.NodeEntry {
	out := make([][]domain.NodeEntry, 0, len(rows))
	for _, r := range rows {
		out = append(out, entriesFromPB(r.Entries))
	}
	return out
}

func queryTypeToPB(t port.QueryType) pastryv1.QueryType {
	switch t {
	case port.QueryDelete:
		return pastryv1.QueryType_QUERY_TYPE_DELETE
	case port.QuerySet:
		return pastryv1.QueryType_QUERY_TYPE_SET
	default:
		return pastryv1.QueryType_QUERY_TYPE_GET
	}
}

func queryErrorFromPB(e pastryv1.QueryError) port.QueryError {
	switch e {
	case pastryv1.QueryError_QUERY_ERROR_VALUE_NOT_PROVIDED:
		return port.ValueNotProvided
	case pastryv1.QueryError_QUERY_ERROR_KEY_NOT_FOUND:
		return port.KeyNotFound
	case pastryv1.QueryError_QUERY_ERROR_SHUTDOWN:
		return port.ShutdownError
	default:
		return port.NoQueryError
	}
}

func normalizeRPCErr(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.Canceled) || status.Code(err) == codes.Canceled {
		return context.Canceled
	}
	if errors.Is(err, io.EOF) && ctx != nil && errors.Is(ctx.Err(), context.Canceled) {
		return context.Canceled
	}
	return err
}
