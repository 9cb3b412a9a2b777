package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/ShreyanshSharma123/interviewHelper/internal/analysis"
	"github.com/ShreyanshSharma123/interviewHelper/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	Run: func(_ *cobra.Command, _ []string) {
		serve()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().String("host", "", "interface to listen on (default all)")
	serveCmd.Flags().IntP("port", "p", server.DefaultPort, "port to listen on")

	viper.BindPFlag("server.host", serveCmd.Flags().Lookup("host"))
	viper.BindPFlag("server.port", serveCmd.Flags().Lookup("port"))
}

func serve() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	l, config := setup()

	l.Info("starting the interview-helper api", zap.String("version", version))

	analyzer, err := newAnalyzer(ctx, config.AI, l)
	if err != nil {
		l.Fatal("building ai analyzer", zap.Error(err))
	}

	runner := analysis.NewRunner(analysis.Deps{Analyzer: analyzer, Logger: l})
	srv := server.New(config.Server, runner, newLoader(config), l)

	if err := srv.Run(ctx); err != nil {
		l.Fatal("http server failed", zap.Error(err))
	}

	l.Info("exiting", zap.String("reason", "shutdown complete"))
}
