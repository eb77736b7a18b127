// Package main provides a raw command-line client for the content service
package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/rpg-content/internal/handlers/content/v1alpha1"
)

var (
	serverAddr string
	timeout    time.Duration
)

var rootCmd = &cobra.Command{
	Use:   "rpg-content-client",
	Short: "Raw JSON client for the content service",
}

var callCmd = &cobra.Command{
	Use:   "call <method> [json]",
	Short: "Invoke a ContentService method with a JSON request body",
	Example: `  rpg-content-client call GetRace '{"race_id":"griffon"}'
  rpg-content-client call InspectWeapon '{"kind":"melee","wielder":{"melee_damage":7}}'`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(_ *cobra.Command, args []string) error {
		req := &structpb.Struct{}
		if len(args) == 2 {
			if err := protojson.Unmarshal([]byte(args[1]), req); err != nil {
				return fmt.Errorf("failed to parse request: %w", err)
			}
		}

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		conn, err := grpc.NewClient(serverAddr, grpc.WithTransportCredentials(insecure.NewCredentials()))
		if err != nil {
			return fmt.Errorf("failed to connect: %w", err)
		}
		defer func() {
			if err := conn.Close(); err != nil {
				log.Printf("Failed to close connection: %v", err)
			}
		}()

		resp, err := v1alpha1.NewContentServiceClient(conn).Call(ctx, args[0], req)
		if err != nil {
			return fmt.Errorf("failed to call %s: %w", args[0], err)
		}

		output, err := protojson.MarshalOptions{Multiline: true, Indent: "  "}.Marshal(resp)
		if err != nil {
			return fmt.Errorf("failed to marshal response: %w", err)
		}

		fmt.Println(string(output))
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&serverAddr, "server", "localhost:50051", "gRPC server address")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "request timeout")

	rootCmd.AddCommand(callCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
