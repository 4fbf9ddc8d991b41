// cmd/dmnd-cov-stats/main.go
package main

import (
	"dmndcov/internal/app"
	"dmndcov/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
