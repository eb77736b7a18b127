// Package client provides test commands for the content gRPC service
package client

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/rpg-content/internal/errors"
	"github.com/KirkDiggler/rpg-content/internal/handlers/content/v1alpha1"
)

var (
	// Connection flags
	serverAddr string
	timeout    time.Duration
)

// ClientCmd is the root command for all client test commands
var ClientCmd = &cobra.Command{
	Use:   "client",
	Short: "Test client commands for the content service",
	Long:  `Client commands allow you to test the content service by making real gRPC requests.`,
}

func init() {
	ClientCmd.PersistentFlags().StringVar(&serverAddr, "server", "localhost:50051", "gRPC server address")
	ClientCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Request timeout")

	// Content commands
	ClientCmd.AddCommand(listRacesCmd)
	ClientCmd.AddCommand(getRaceCmd)
	ClientCmd.AddCommand(inspectWeaponCmd)

	// Draft commands
	ClientCmd.AddCommand(createDraftCmd)
	ClientCmd.AddCommand(getDraftCmd)
	ClientCmd.AddCommand(deleteDraftCmd)
	ClientCmd.AddCommand(selectRaceCmd)
	ClientCmd.AddCommand(clearRaceCmd)
	ClientCmd.AddCommand(equipWeaponCmd)
	ClientCmd.AddCommand(unequipWeaponCmd)

	// Character commands
	ClientCmd.AddCommand(finalizeDraftCmd)
	ClientCmd.AddCommand(getCharacterCmd)
	ClientCmd.AddCommand(listCharactersCmd)
}

// createContentClient creates a content service client
func createContentClient() (v1alpha1.ContentServiceClient, func(), error) {
	conn, err := grpc.NewClient(serverAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to server: %w", err)
	}

	cleanup := func() {
		_ = conn.Close() // nolint:errcheck // safe to ignore in cleanup
	}

	return v1alpha1.NewContentServiceClient(conn), cleanup, nil
}

// call sends fields to method and returns the response struct
func call(method string, fields map[string]any) (*structpb.Struct, error) {
	client, cleanup, err := createContentClient()
	if err != nil {
		return nil, err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	req, err := structpb.NewStruct(fields)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := client.Call(ctx, method, req)
	if err != nil {
		return nil, errors.FromGRPCError(err)
	}
	return resp, nil
}
