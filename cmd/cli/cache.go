package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Manage the server's feed page cache",
}

var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Drop the cached global index page",
	Long: `Drop the cached first page of the global feed immediately.

The index page normally refreshes only when its cache window expires;
use this after bulk imports or moderation to surface changes at once.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		body, err := apiPost("/admin/cache/clear", nil)
		if err != nil {
			return err
		}
		fmt.Println(string(body))
		return nil
	},
}

func init() {
	cacheCmd.AddCommand(cacheClearCmd)
}
