package azdo

// Version is set at build time via -ldflags "-X github.com/joshcarp/azdo-mcp/pkg/azdo.Version=..."
var Version = "0.1.0-dev"
