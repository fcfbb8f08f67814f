// Package grpc_handler adapts the wire-level NodeService RPCs onto
// port.NodeService, translating protobuf messages to and from the
// domain/port types. It performs no routing or state logic of its own.
package grpc_handler

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/pastryhash/pastry/internal/node/domain"
	"github.com/pastryhash/pastry/internal/node/port"
	pastryv1 "github.com/pastryhash/pastry/proto/gen/pastry/v1"
)

// Server implements the gRPC NodeService.
type Server struct {
	pastryv1.UnimplementedNodeServiceServer
	service port.NodeService
}

// NewServer creates a new gRPC server bound to service.
func NewServer(service port.NodeService) *Server {
	return &Server{service: service}
}

func (s *Server) GetNodeState(ctx context.Context, req *pastryv1.GetNodeStateRequest) (*pastryv1.GetNodeStateResponse, error) {
	id, leaves := s.service.GetNodeState(ctx)
	return &pastryv1.GetNodeStateResponse{
		Id:      id,
		LeafSet: entriesToPB(leaves),
	}, nil
}

func (s *Server) GetNodeTableEntry(ctx context.Context, req *pastryv1.GetNodeTableEntryRequest) (*pastryv1.GetNodeTableEntryResponse, error) {
	entry, ok := s.service.GetNodeTableEntry(ctx, int(req.Row), int(req.Column))
	if !ok {
		return &pastryv1.GetNodeTableEntryResponse{Found: false}, nil
	}
	return &pastryv1.GetNodeTableEntryResponse{Found: true, Entry: entryToPB(entry)}, nil
}

func (s *Server) Join(ctx context.Context, req *pastryv1.JoinRequest) (*pastryv1.JoinResponse, error) {
	resp, err := s.service.Join(ctx, port.JoinRequest{
		JoiningID:     req.JoiningId,
		JoiningAddr:   req.JoiningAddr,
		Hops:          int(req.Hops),
		MatchedDigits: int(req.MatchedDigits),
		RoutingRows:   rowsFromPB(req.RoutingRows),
	})
	if err != nil {
		return nil, status.Errorf(codes.Unavailable, "join failed: %v", err)
	}
	return &pastryv1.JoinResponse{
		ResponderId:   resp.ResponderID,
		ResponderAddr: resp.ResponderAddr,
		Hops:          int32(resp.Hops),
		LeafSet:       entriesToPB(resp.LeafSet),
		RoutingRows:   rowsToPB(resp.RoutingRows),
	}, nil
}

func (s *Server) Query(ctx context.Context, req *pastryv1.QueryRequest) (*pastryv1.QueryResponse, error) {
	resp := s.service.Query(ctx, port.QueryRequest{
		FromID:        req.FromId,
		MatchedDigits: int(req.MatchedDigits),
		Hops:          int(req.Hops),
		Type:          queryTypeFromPB(req.Type),
		Key:           req.Key,
		Value:         req.Value,
		HasValue:      req.HasValue,
	})
	return &pastryv1.QueryResponse{
		FromId:   resp.FromID,
		Hops:     int32(resp.Hops),
		Key:      resp.Key,
		Value:    resp.Value,
		HasValue: resp.HasValue,
		Error:    queryErrorToPB(resp.Err),
	}, nil
}

func (s *Server) TransferKeys(req *pastryv1.TransferKeysRequest, stream pastryv1.NodeService_TransferKeysServer) error {
	requester := domain.NodeEntry{ID: req.RequesterId, PubAddr: req.RequesterAddr}
	return s.service.TransferKeys(stream.Context(), requester, kvWriter{stream})
}

type kvWriter struct {
	stream pastryv1.NodeService_TransferKeysServer
}

func (w kvWriter) Send(kv port.KV) error {
	return w.stream.Send(&pastryv1.TransferKeysResponse{Key: kv.Key, Value: kv.Value})
}

func (w kvWriter) SendSummary(sum port.TransferSummary) error {
	return w.stream.Send(&pastryv1.TransferKeysResponse{
		IsSummary:  true,
		KeyCount:   int64(sum.Count),
		MerkleRoot: sum.Root,
	})
}

func (s *Server) AnnounceArrival(ctx context.Context, req *pastryv1.AnnounceArrivalRequest) (*pastryv1.AnnounceArrivalResponse, error) {
	s.service.AnnounceArrival(ctx, domain.NodeEntry{ID: req.Id, PubAddr: req.PubAddr})
	return &pastryv1.AnnounceArrivalResponse{}, nil
}

func (s *Server) FixLeafSet(ctx context.Context, req *pastryv1.FixLeafSetRequest) (*pastryv1.FixLeafSetResponse, error) {
	s.service.FixLeafSet(ctx, domain.NodeEntry{ID: req.Id, PubAddr: req.PubAddr})
	return &pastryv1.FixLeafSetResponse{}, nil
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

func queryTypeFromPB(t pastryv1.QueryType) port.QueryType {
	switch t {
	case pastryv1.QueryType_QUERY_TYPE_DELETE:
		return port.QueryDelete
	case pastryv1.QueryType_QUERY_TYPE_SET:
		return port.QuerySet
	default:
		return port.QueryGet
	}
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

func queryErrorToPB(e port.QueryError) pastryv1.QueryError {
	switch e {
	case port.ValueNotProvided:
		return pastryv1.QueryError_QUERY_ERROR_VALUE_NOT_PROVIDED
	case port.KeyNotFound:
		return pastryv1.QueryError_QUERY_ERROR_KEY_NOT_FOUND
	case port.ShutdownError:
		return pastryv1.QueryError_QUERY_ERROR_SHUTDOWN
	default:
		return pastryv1.QueryError_QUERY_ERROR_NONE
	}
}
