// Package app wires the node's adapters, service, and configuration
// together and owns its run/shutdown lifecycle.
package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"google.golang.org/grpc"

	"github.com/anthanhphan/gosdk/logger"

	inboundgrpc "github.com/pastryhash/pastry/internal/node/adapter/inbound/grpc"
	"github.com/pastryhash/pastry/internal/node/adapter/inbound/httpdebug"
	outboundgrpc "github.com/pastryhash/pastry/internal/node/adapter/outbound/grpc"
	"github.com/pastryhash/pastry/internal/node/config"
	"github.com/pastryhash/pastry/internal/node/domain"
	"github.com/pastryhash/pastry/internal/node/service"
	"github.com/pastryhash/pastry/pkg/directory"
	"github.com/pastryhash/pastry/pkg/idgen"
	pastryv1 "github.com/pastryhash/pastry/proto/gen/pastry/v1"
)

// App owns every long-lived component of a running node.
type App struct {
	cfg       *config.Config
	pubAddr   string
	port      int
	bootstrap string

	node      *service.Node
	client    *outboundgrpc.ClientAdapter
	server    *grpc.Server
	debug     *httpdebug.Server
	directory *directory.Registry

	refreshInterval time.Duration
	stopRefresh     context.CancelFunc
}

// New builds an App for host:port, optionally bootstrapping from
// bootstrapAddr. An empty bootstrapAddr means "discover via directory,
// or become the first node".
func New(configPath, host string, port int, bootstrapAddr string) (*App, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger.InitLogger(&cfg.Logger)

	pubAddr := net.JoinHostPort(host, strconv.Itoa(port))
	selfID := domain.AssignID(pubAddr)

	client := outboundgrpc.NewClientAdapter(cfg.Overlay.RequestTimeout)

	var reg *directory.Registry
	var traceClock idgen.Clock
	if cfg.Directory.Enabled {
		reg = directory.NewRegistry(cfg.Directory.Addr, cfg.Directory.Password, cfg.Directory.DB)
		// Trace ids derive their timestamp from the same Redis server
		// used for bootstrap rendezvous, so restart order across a
		// fleet never skews trace correlation relative to each other.
		traceClock = idgen.NewRedisClock(reg.Client())
	}

	nodeCfg := service.Config{
		B:              cfg.Overlay.B,
		LeafSetHalf:    cfg.Overlay.LeafSetHalfSize,
		RequestTimeout: cfg.Overlay.RequestTimeout,
		TraceClock:     traceClock,
	}
	node := service.New(selfID, pubAddr, nodeCfg, client)

	grpcServer := grpc.NewServer()
	pastryv1.RegisterNodeServiceServer(grpcServer, inboundgrpc.NewServer(node))

	var debugServer *httpdebug.Server
	if cfg.Debug.Enabled {
		debugServer = httpdebug.NewServer(fmt.Sprintf(":%d", cfg.Debug.Port), node)
	}

	bootstrap := bootstrapAddr
	if bootstrap == "" {
		bootstrap = cfg.Overlay.BootstrapAddress
	}

	return &App{
		cfg:             cfg,
		pubAddr:         pubAddr,
		port:            port,
		bootstrap:       bootstrap,
		node:            node,
		client:          client,
		server:          grpcServer,
		debug:           debugServer,
		directory:       reg,
		refreshInterval: 30 * time.Second,
	}, nil
}

// Run blocks until a shutdown signal arrives or the gRPC server fails.
func (a *App) Run() error {
	ctx := context.Background()

	listener, err := net.Listen("tcp", fmt.Sprintf(":%d", a.port))
	if err != nil {
		return fmt.Errorf("failed to listen on port %d: %w", a.port, err)
	}

	serverErrCh := make(chan error, 1)
	go func() {
		if err := a.server.Serve(listener); err != nil {
			serverErrCh <- err
		}
	}()

	if a.debug != nil {
		go func() {
			if err := a.debug.Start(); err != nil {
				logger.Warnw("debug HTTP server exited", "error", err.Error())
			}
		}()
	}

	if err := a.bootstrapOverlay(ctx); err != nil {
		return fmt.Errorf("bootstrap failed: %w", err)
	}

	refreshCtx, cancelRefresh := context.WithCancel(ctx)
	a.stopRefresh = cancelRefresh
	go a.node.StartRefreshWorker(refreshCtx, a.refreshInterval)

	logger.Infow("pastry node started", "pub_addr", a.pubAddr, "phase", a.node.Phase().String())

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(stop)

	var runErr error
	select {
	case sig := <-stop:
		logger.Infow("shutdown signal received", "signal", sig.String())
	case err := <-serverErrCh:
		if !strings.Contains(err.Error(), "use of closed network connection") && !errors.Is(err, grpc.ErrServerStopped) {
			runErr = fmt.Errorf("gRPC server failed: %w", err)
			logger.Errorw("pastry gRPC server exited unexpectedly", "error", err.Error())
		}
	}

	a.shutdown(ctx)
	return runErr
}

// bootstrapOverlay implements the two-case bootstrap: become the first
// node, or join through a known or directory-discovered peer.
func (a *App) bootstrapOverlay(ctx context.Context) error {
	if a.directory != nil {
		if err := a.directory.Register(ctx, a.pubAddr); err != nil {
			logger.Warnw("directory registration failed", "error", err.Error())
		}
	}

	bootstrapAddr := a.bootstrap
	if bootstrapAddr == "" && a.directory != nil {
		peer, ok, err := a.directory.PickPeer(ctx, a.pubAddr)
		if err != nil {
			logger.Warnw("directory lookup failed", "error", err.Error())
		} else if ok {
			bootstrapAddr = peer
		}
	}

	if bootstrapAddr == "" {
		a.node.BecomeFirstNode()
		return nil
	}

	bootstrapID := domain.AssignID(bootstrapAddr)
	entry := domain.NodeEntry{ID: bootstrapID, PubAddr: bootstrapAddr}
	return a.node.BootstrapJoin(ctx, entry)
}

func (a *App) shutdown(ctx context.Context) {
	logger.Info("shutting down pastry node")

	if a.stopRefresh != nil {
		a.stopRefresh()
	}

	a.node.Shutdown(ctx)

	if a.directory != nil {
		if err := a.directory.Deregister(ctx, a.pubAddr); err != nil {
			logger.Warnw("directory deregistration failed", "error", err.Error())
		}
		if err := a.directory.Close(); err != nil {
			logger.Warnw("directory close failed", "error", err.Error())
		}
	}

	if a.debug != nil {
		if err := a.debug.Stop(ctx); err != nil {
			logger.Warnw("debug HTTP server stop failed", "error", err.Error())
		}
	}

	a.server.GracefulStop()

	if err := a.client.Close(); err != nil {
		logger.Warnw("transport client close failed", "error", err.Error())
	}
}
