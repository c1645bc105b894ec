package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/fwr/quizgen/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the generation HTTP API",
	Long: "Serve exposes job creation and tracking, checkpoint inspection and\n" +
		"the sector listing over HTTP. Generation jobs run one at a time in\n" +
		"the background.",
	RunE: runServe,
}

func init() {
	serveCmd.Flags().Int("port", 8080, "Port to listen on")
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := newApp(ctx, cmd)
	if err != nil {
		return err
	}
	defer app.Close()

	port, _ := cmd.Flags().GetInt("port")
	srv := server.New(app.runner, app.store.JobTracker(), app.checkpoints, app.log)

	addr := fmt.Sprintf(":%d", port)
	if err := srv.ListenAndServe(ctx, addr); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
