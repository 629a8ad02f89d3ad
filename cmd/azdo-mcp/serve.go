package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"syscall"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/joshcarp/azdo-mcp/pkg/azdo"
)

const logFileName = "azdo-mcp.log"

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the MCP server on stdin/stdout",
	Long: `Run the MCP server. The server communicates over stdin/stdout using the
MCP protocol; logs go to stderr and ~/.azdo-mcp/azdo-mcp.log.

Examples:
  azdo-mcp serve
  azdo-mcp serve --env-file ./azdo.env --verbose`,
	RunE: runServe,
}

func debugEnabled() bool {
	return verbose || os.Getenv("DEBUG") == "true"
}

// newLogger returns a logger writing to stderr. Stdout is reserved for the
// protocol.
func newLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if debugEnabled() {
		log.SetLevel(logrus.DebugLevel)
	}
	return log
}

// setupLogging adds ~/.azdo-mcp/azdo-mcp.log as a second log destination.
func setupLogging(log *logrus.Logger) (*os.File, error) {
	dir, err := azdo.HomeDir()
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, err
	}

	logFile, err := os.OpenFile(filepath.Join(dir, logFileName), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return nil, err
	}
	log.SetOutput(io.MultiWriter(os.Stderr, logFile))
	return logFile, nil
}

func runServe(cmd *cobra.Command, args []string) error {
	log := newLogger()
	logFile, err := setupLogging(log)
	if err != nil {
		log.WithError(err).Warn("failed to set up file logging")
	} else {
		defer logFile.Close()
	}

	log.WithFields(logrus.Fields{
		"version": azdo.Version,
		"os":      runtime.GOOS,
		"arch":    runtime.GOARCH,
		"go":      runtime.Version(),
		"pid":     os.Getpid(),
	}).Info("azdo-mcp serve starting")

	server, err := injectServer(log)
	if err != nil {
		log.WithError(err).Error("failed to build server")
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	log.Info("serving MCP on stdin/stdout")
	if err := server.Run(ctx, mcp.NewIOTransport(stdinoutRWC{})); err != nil && ctx.Err() == nil {
		log.WithError(err).Error("server stopped")
		return err
	}
	log.Info("azdo-mcp serve stopped")
	return nil
}

// stdinoutRWC wraps stdin/stdout as an io.ReadWriteCloser
type stdinoutRWC struct{}

func (stdinoutRWC) Read(p []byte) (n int, err error) {
	return os.Stdin.Read(p)
}

func (stdinoutRWC) Write(p []byte) (n int, err error) {
	return os.Stdout.Write(p)
}

func (stdinoutRWC) Close() error {
	return nil
}
