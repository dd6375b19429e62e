package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/MKhiriev/go-mood-journal/internal/app"
	"github.com/MKhiriev/go-mood-journal/internal/service"
	"github.com/MKhiriev/go-mood-journal/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", cliMessage(err))
		stop()
		os.Exit(1)
	}
}

// cliMessage prefers the user-facing message and falls back to the error
// text, which for flag and argument errors is more useful than a generic
// line.
func cliMessage(err error) string {
	if msg := service.UserMessage(err); msg != app.MsgUnexpectedError {
		return msg
	}
	return err.Error()
}

func buildInfo() models.AppBuildInfo {
	return models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
}

func printBuildInfo(w io.Writer) {
	for _, f := range buildInfo().Fields() {
		fmt.Fprintf(w, "Build %s: %s\n", strings.ToLower(f.Label), f.Value)
	}
}
