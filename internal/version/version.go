package version

// Version is overridden at build time:
//
//	go build -ldflags "-X dmndcov/internal/version.Version=1.2.3" ./cmd/dmnd-cov-stats
var Version = "0.3.0"
