package api

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"gridbrief/config"
	"gridbrief/orchestrator"
	"gridbrief/types"
)

// Server serves the latest ranked record set and accepts refresh triggers.
type Server struct {
	cfg *config.Config

	mu          sync.RWMutex
	records     []types.Record
	collectedAt time.Time
}

func NewServer(cfg *config.Config) *Server {
	return &Server{cfg: cfg}
}

// Router constructs a Gin engine with registered routes.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	// Minimal middleware: recovery; logger optional to reduce verbosity
	r.Use(gin.Recovery())

	s.RegisterRecordRoutes(r)
	RegisterHealthRoutes(r)
	return r
}

// Refresh runs the collector and stores the result for /api/records.
func (s *Server) Refresh(ctx context.Context) {
	records, err := orchestrator.RunOnce(ctx, s.cfg)
	if err != nil {
		log.Printf("Collection run failed: %v", err)
		return
	}

	s.mu.Lock()
	s.records = records
	s.collectedAt = time.Now()
	s.mu.Unlock()
}
