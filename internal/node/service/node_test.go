package service

import (
	"context"
	"errors"
	"testing"

	"github.com/pastryhash/pastry/internal/node/domain"
	"github.com/pastryhash/pastry/internal/node/port"
)

// fakeTransport is an in-process stand-in for the outbound gRPC adapter,
// routing calls directly to other *Node instances registered by address.
type fakeTransport struct {
	peers map[string]*Node
	fail  map[string]bool
}

func newFakeTransport() *fakeTransport {
	return &fakeTransport{peers: map[string]*Node{}, fail: map[string]bool{}}
}

func (f *fakeTransport) register(n *Node) { f.peers[n.SelfEntry().PubAddr] = n }

func (f *fakeTransport) resolve(target domain.NodeEntry) (*Node, error) {
	if f.fail[target.PubAddr] {
		return nil, errors.New("simulated transport failure")
	}
	n, ok := f.peers[target.PubAddr]
	if !ok {
		return nil, errors.New("unknown peer")
	}
	return n, nil
}

func (f *fakeTransport) Join(ctx context.Context, target domain.NodeEntry, req port.JoinRequest) (port.JoinResponse, error) {
	n, err := f.resolve(target)
	if err != nil {
		return port.JoinResponse{}, err
	}
	return n.Join(ctx, req)
}

func (f *fakeTransport) Query(ctx context.Context, target domain.NodeEntry, req port.QueryRequest) (port.QueryResponse, error) {
	n, err := f.resolve(target)
	if err != nil {
		return port.QueryResponse{}, err
	}
	return n.Query(ctx, req), nil
}

func (f *fakeTransport) AnnounceArrival(ctx context.Context, target domain.NodeEntry, arriving domain.NodeEntry) error {
	n, err := f.resolve(target)
	if err != nil {
		return err
	}
	n.AnnounceArrival(ctx, arriving)
	return nil
}

func (f *fakeTransport) FixLeafSet(ctx context.Context, target domain.NodeEntry, sender domain.NodeEntry) error {
	n, err := f.resolve(target)
	if err != nil {
		return err
	}
	n.FixLeafSet(ctx, sender)
	return nil
}

func (f *fakeTransport) TransferKeys(ctx context.Context, target domain.NodeEntry, requester domain.NodeEntry, onKV func(port.KV) error, onSummary func(port.TransferSummary)) error {
	n, err := f.resolve(target)
	if err != nil {
		return err
	}
	return n.TransferKeys(ctx, requester, writerFunc{onKV: onKV, onSummary: onSummary})
}

func (f *fakeTransport) GetNodeState(ctx context.Context, target domain.NodeEntry) (domain.ID, []domain.NodeEntry, error) {
	n, err := f.resolve(target)
	if err != nil {
		return 0, nil, err
	}
	id, leaves := n.GetNodeState(ctx)
	return id, leaves, nil
}

func (f *fakeTransport) GetNodeTableEntry(ctx context.Context, target domain.NodeEntry, row, column int) (domain.NodeEntry, bool, error) {
	n, err := f.resolve(target)
	if err != nil {
		return domain.NodeEntry{}, false, err
	}
	e, ok := n.GetNodeTableEntry(ctx, row, column)
	return e, ok, nil
}

type writerFunc struct {
	onKV      func(port.KV) error
	onSummary func(port.TransferSummary)
}

func (w writerFunc) Send(kv port.KV) error { return w.onKV(kv) }

func (w writerFunc) SendSummary(sum port.TransferSummary) error {
	if w.onSummary != nil {
		w.onSummary(sum)
	}
	return nil
}

func mustNode(t *testing.T, transport *fakeTransport, id domain.ID, addr string) *Node {
	t.Helper()
	n := New(id, addr, DefaultConfig(), transport)
	transport.register(n)
	return n
}

func TestSingleNodeSetGetDeleteLifecycle(t *testing.T) {
	transport := newFakeTransport()
	n0 := mustNode(t, transport, 0, "n0")
	n0.BecomeFirstNode()

	ctx := context.Background()
	self := n0.SelfEntry()

	setResp := n0.Query(ctx, port.QueryRequest{FromID: self.ID, Type: port.QuerySet, Key: 42, Value: []byte("hi"), HasValue: true})
	if setResp.Err != port.NoQueryError || string(setResp.Value) != "hi" {
		t.Fatalf("Set(42, hi) = %+v", setResp)
	}

	getResp := n0.Query(ctx, port.QueryRequest{FromID: self.ID, Type: port.QueryGet, Key: 42})
	if getResp.Err != port.NoQueryError || string(getResp.Value) != "hi" {
		t.Fatalf("Get(42) = %+v", getResp)
	}

	missResp := n0.Query(ctx, port.QueryRequest{FromID: self.ID, Type: port.QueryGet, Key: 99})
	if missResp.Err != port.KeyNotFound {
		t.Fatalf("Get(99) = %+v, want KeyNotFound", missResp)
	}

	delResp := n0.Query(ctx, port.QueryRequest{FromID: self.ID, Type: port.QueryDelete, Key: 42})
	if delResp.Err != port.NoQueryError || string(delResp.Value) != "hi" {
		t.Fatalf("Delete(42) = %+v", delResp)
	}

	afterDel := n0.Query(ctx, port.QueryRequest{FromID: self.ID, Type: port.QueryGet, Key: 42})
	if afterDel.Err != port.KeyNotFound {
		t.Fatalf("Get(42) after delete = %+v, want KeyNotFound", afterDel)
	}
}

func TestSetWithoutValueReportsValueNotProvided(t *testing.T) {
	transport := newFakeTransport()
	n0 := mustNode(t, transport, 0, "n0")
	n0.BecomeFirstNode()

	resp := n0.Query(context.Background(), port.QueryRequest{Type: port.QuerySet, Key: 1})
	if resp.Err != port.ValueNotProvided {
		t.Fatalf("expected ValueNotProvided, got %+v", resp)
	}
}

func TestTwoNodeJoinPopulatesLeafSets(t *testing.T) {
	transport := newFakeTransport()
	n0 := mustNode(t, transport, 0x1000000000000000, "n0")
	n0.BecomeFirstNode()

	n1 := mustNode(t, transport, 0x9000000000000000, "n1")
	ctx := context.Background()
	if err := n1.BootstrapJoin(ctx, n0.SelfEntry()); err != nil {
		t.Fatalf("BootstrapJoin: %v", err)
	}

	id0, leaves0 := n0.GetNodeState(ctx)
	id1, leaves1 := n1.GetNodeState(ctx)

	if id0 == id1 {
		t.Fatalf("expected distinct ids")
	}
	if !containsID(leaves0, id1) {
		t.Fatalf("n0's leaf set does not contain n1 after join: %+v", leaves0)
	}
	if !containsID(leaves1, id0) {
		t.Fatalf("n1's leaf set does not contain n0 after join: %+v", leaves1)
	}
}

func TestJoinTransfersOwnedKeys(t *testing.T) {
	transport := newFakeTransport()
	n0 := mustNode(t, transport, 0, "n0")
	n0.BecomeFirstNode()
	ctx := context.Background()

	n0.Query(ctx, port.QueryRequest{Type: port.QuerySet, Key: 3, Value: []byte("v3"), HasValue: true})
	n0.Query(ctx, port.QueryRequest{Type: port.QuerySet, Key: 1, Value: []byte("v1"), HasValue: true})

	// n1's id is numerically nearest to key 3 among {0, n1}.
	n1 := mustNode(t, transport, 5, "n1")
	if err := n1.BootstrapJoin(ctx, n0.SelfEntry()); err != nil {
		t.Fatalf("BootstrapJoin: %v", err)
	}

	resp := n1.Query(ctx, port.QueryRequest{Type: port.QueryGet, Key: 3})
	if resp.Err != port.NoQueryError || string(resp.Value) != "v3" {
		t.Fatalf("Get(3) on n1 after transfer = %+v, want v3", resp)
	}
}

func TestReportPeerFailureRemovesFromLeafSet(t *testing.T) {
	transport := newFakeTransport()
	n0 := mustNode(t, transport, 0x1000000000000000, "n0")
	n0.BecomeFirstNode()
	ctx := context.Background()

	n1 := mustNode(t, transport, 0x5000000000000000, "n1")
	if err := n1.BootstrapJoin(ctx, n0.SelfEntry()); err != nil {
		t.Fatalf("n1 BootstrapJoin: %v", err)
	}
	n2 := mustNode(t, transport, 0x9000000000000000, "n2")
	if err := n2.BootstrapJoin(ctx, n0.SelfEntry()); err != nil {
		t.Fatalf("n2 BootstrapJoin: %v", err)
	}

	transport.fail["n1"] = true
	n0.ReportPeerFailure(ctx, n1.SelfEntry())

	_, leaves := n0.GetNodeState(ctx)
	if containsID(leaves, n1.SelfEntry().ID) {
		t.Fatalf("n0 still lists failed n1 in its leaf set: %+v", leaves)
	}
}

func containsID(entries []domain.NodeEntry, id domain.ID) bool {
	for _, e := range entries {
		if e.ID == id {
			return true
		}
	}
	return false
}
