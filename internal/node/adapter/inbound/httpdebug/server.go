// Package httpdebug exposes a read-only informational surface over the
// overlay's state for human operators — never part of the routing or
// query protocol.
package httpdebug

import (
	"context"
	"strconv"

	sdklogger "github.com/anthanhphan/gosdk/logger"
	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/pastryhash/pastry/internal/node/port"
)

// Server serves /healthz, /debug/state, and /debug/table/:row/:column.
type Server struct {
	app     *fiber.App
	addr    string
	service port.NodeService
}

// NewServer builds the debug HTTP server bound to addr (":port").
func NewServer(addr string, service port.NodeService) *Server {
	app := fiber.New()
	app.Use(recover.New())
	app.Use(fiberlogger.New())

	s := &Server{app: app, addr: addr, service: service}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.app.Get("/healthz", s.handleHealthz)
	s.app.Get("/debug/state", s.handleState)
	s.app.Get("/debug/table/:row/:column", s.handleTableEntry)
}

// Start blocks serving HTTP until Stop is called or the listener fails.
func (s *Server) Start() error {
	return s.app.Listen(s.addr)
}

// Stop shuts the HTTP server down gracefully.
func (s *Server) Stop(ctx context.Context) error {
	return s.app.Shutdown()
}

func (s *Server) handleHealthz(c *fiber.Ctx) error {
	return c.SendStatus(fiber.StatusOK)
}

func (s *Server) handleState(c *fiber.Ctx) error {
	id, leaves := s.service.GetNodeState(c.Context())

	leafViews := make([]fiber.Map, 0, len(leaves))
	for _, e := range leaves {
		leafViews = append(leafViews, fiber.Map{"id": e.ID, "pub_addr": e.PubAddr})
	}

	return c.JSON(fiber.Map{
		"id":        id,
		"leaf_set":  leafViews,
	})
}

func (s *Server) handleTableEntry(c *fiber.Ctx) error {
	row, err := strconv.Atoi(c.Params("row"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid row"})
	}
	column, err := strconv.Atoi(c.Params("column"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid column"})
	}

	entry, ok := s.service.GetNodeTableEntry(c.Context(), row, column)
	if !ok {
		return c.JSON(fiber.Map{"found": false})
	}

	sdklogger.Debugw("debug table entry served", "row", row, "column", column, "entry_id", entry.ID)
	return c.JSON(fiber.Map{"found": true, "id": entry.ID, "pub_addr": entry.PubAddr})
}
