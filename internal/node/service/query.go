package service

import (
	"context"

	"github.com/anthanhphan/gosdk/logger"

	"github.com/pastryhash/pastry/internal/node/domain"
	"github.com/pastryhash/pastry/internal/node/port"
)

// queryService implements the get/set/delete query protocol, with
// at-most-one retry through a freshly computed next hop on transport
// failure.
type queryService struct {
	n *Node
}

func newQueryService(n *Node) *queryService { return &queryService{n: n} }

func (s *queryService) handleQuery(ctx context.Context, req port.QueryRequest) port.QueryResponse {
	resp, retry := s.step(ctx, req)
	if retry {
		resp, _ = s.step(ctx, req)
	}
	return resp
}

// step performs a single hop of the query protocol: decide local vs.
// forward, and on a transport failure to the chosen peer report whether
// the caller should retry with a freshly computed route.
func (s *queryService) step(ctx context.Context, req port.QueryRequest) (port.QueryResponse, bool) {
	var decision domain.HopDecision
	var selfID domain.ID
	var digits domain.Digits

	s.n.view(func(st *domain.State) {
		selfID = st.SelfID
		digits = st.Digits
		decision = domain.SelectNextHop(st.SelfID, st.Leaves, st.Table, req.Key, nil)
	})

	if decision.Outcome != domain.Forward {
		return s.executeLocal(req, selfID), false
	}

	forward := req
	forward.Hops = req.Hops + 1
	forward.MatchedDigits = digits.SharedPrefixLen(decision.Target.ID, req.Key)

	resp, err := s.n.transport.Query(ctx, decision.Target, forward)
	if err != nil {
		logger.Warnw("query forward failed", "target", decision.Target.ID, "error", err.Error())
		s.n.ReportPeerFailure(ctx, decision.Target)
		return port.QueryResponse{}, true
	}
	return resp, false
}

func (s *queryService) executeLocal(req port.QueryRequest, selfID domain.ID) port.QueryResponse {
	resp := port.QueryResponse{FromID: selfID, Hops: req.Hops, Key: req.Key}

	switch req.Type {
	case port.QueryGet:
		s.n.view(func(st *domain.State) {
			v, err := st.Store.Get(req.Key)
			if err != nil {
				resp.Err = port.KeyNotFound
				return
			}
			resp.Value, resp.HasValue = v, true
		})
	case port.QuerySet:
		if !req.HasValue {
			resp.Err = port.ValueNotProvided
			return resp
		}
		s.n.mutate(func(st *domain.State) { st.Store.Set(req.Key, req.Value) })
		resp.Value, resp.HasValue = req.Value, true
	case port.QueryDelete:
		s.n.mutate(func(st *domain.State) {
			v, err := st.Store.Delete(req.Key)
			if err != nil {
				resp.Err = port.KeyNotFound
				return
			}
			resp.Value, resp.HasValue = v, true
		})
	}
	return resp
}
