// Package main is the entry point for the content gRPC server
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-content/cmd/server/client"
)

var rootCmd = &cobra.Command{
	Use:   "rpg-content",
	Short: "RPG content gRPC server",
	Long:  `RPG content serves race and weapon definitions and the character draft flow that applies them.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(client.ClientCmd)
}
