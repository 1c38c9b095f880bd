// Package embeddeddb runs an in-process, in-memory MySQL-compatible server for local development.
package embeddeddb

import (
	"context"
	"fmt"
	"net"
	"time"

	sqle "github.com/dolthub/go-mysql-server"
	"github.com/dolthub/go-mysql-server/memory"
	"github.com/dolthub/go-mysql-server/server"
	"github.com/dolthub/go-mysql-server/sql"

	"tipapi/pkg/logger"
)

// Server is a running in-memory MySQL server. Data is lost on Close.
type Server struct {
	srv      *server.Server
	database string
	port     int
	cancel   context.CancelFunc
}

// Start launches a server hosting database on a free localhost port and waits until it accepts connections.
func Start(ctx context.Context, database string) (*Server, error) {
	port, err := freePort()
	if err != nil {
		return nil, fmt.Errorf("failed to get free port: %w", err)
	}

	provider := memory.NewDBProvider(memory.NewDatabase(database))
	engine := sqle.NewDefault(provider)

	cfg := server.Config{
		Protocol: "tcp",
		Address:  fmt.Sprintf("localhost:%d", port),
	}

	s, err := server.NewServer(cfg, engine, sql.NewContext, memory.NewSessionBuilder(provider), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create server: %w", err)
	}

	serverCtx, cancel := context.WithCancel(ctx)
	go func() {
		if err := s.Start(); err != nil {
			logger.Errorf("Embedded MySQL server error: %v", err)
		}
	}()
	go func() {
		<-serverCtx.Done()
		if err := s.Close(); err != nil {
			logger.Warnf("Failed to close embedded MySQL server: %v", err)
		}
	}()

	if err := waitReady(ctx, port, 5*time.Second); err != nil {
		cancel()
		return nil, err
	}

	logger.Infof("Started embedded MySQL server on port %d (database %s)", port, database)
	return &Server{srv: s, database: database, port: port, cancel: cancel}, nil
}

// Port returns the listening TCP port.
func (s *Server) Port() int {
	return s.port
}

// DSN returns a go-sql-driver DSN for the hosted database.
func (s *Server) DSN() string {
	return fmt.Sprintf("root:@tcp(localhost:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local", s.port, s.database)
}

// Close stops the server.
func (s *Server) Close() {
	s.cancel()
}

func waitReady(ctx context.Context, port int, timeout time.Duration) error {
	readyCtx, readyCancel := context.WithTimeout(ctx, timeout)
	defer readyCancel()

	ticker := time.NewTicker(50 * time.Millisecond)
	defer ticker.Stop()

	addr := fmt.Sprintf("localhost:%d", port)
	for {
		select {
		case <-readyCtx.Done():
			return fmt.Errorf("embedded server failed to start on %s: %w", addr, readyCtx.Err())
		case <-ticker.C:
			conn, err := net.DialTimeout("tcp", addr, 100*time.Millisecond)
			if err == nil {
				conn.Close()
				return nil
			}
		}
	}
}

func freePort() (int, error) {
	addr, err := net.ResolveTCPAddr("tcp", "localhost:0")
	if err != nil {
		return 0, err
	}

	l, err := net.ListenTCP("tcp", addr)
	if err != nil {
		return 0, err
	}
	defer l.Close()

	return l.Addr().(*net.TCPAddr).Port, nil
}
