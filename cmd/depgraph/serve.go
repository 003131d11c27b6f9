package main

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/viant/depgraph/dynamic"
	"github.com/viant/depgraph/server"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve <spec>",
	Short: "Build once, then serve the query surface over HTTP",
	Args:  cobra.ExactArgs(1),
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8080", "HTTP listen address")
}

func runServe(cmd *cobra.Command, args []string) error {
	result, _, err := buildOnce(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	recorder := dynamic.NewManager(result.Graph)
	srv := server.New(result.Graph, recorder)

	logger.Info("serving query surface", zap.String("addr", serveAddr))
	fmt.Printf("depgraph serving %d operations on %s\n", len(result.Graph.Nodes), serveAddr)
	return http.ListenAndServe(serveAddr, srv)
}
