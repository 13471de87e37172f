package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "catalog",
		Short: "Catalog maintenance for the shopchat backend",
		Long: `catalog seeds the product table with demo data and shows how the chat
parser reads a message, using the same environment configuration as the server.`,
		SilenceUsage: true,
	}

	root.AddCommand(newSeedCmd())
	root.AddCommand(newParseCmd())
	return root
}
