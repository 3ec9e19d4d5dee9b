// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danielhkuo/quickly-elect/auth"
)

func init() {
	rootCmd.AddCommand(callerKeyCmd)
}

var callerKeyCmd = &cobra.Command{
	Use:   "caller-key <address>",
	Short: "Print the X-Caller-Key for an address",
	Long: `Print the X-Caller-Key for an address.

Voters receive their key when they are registered. The administrator uses
this command to get theirs.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		addr, err := auth.ParseAddress(args[0])
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), auth.GenerateCallerKey(addr, cfg.CallerKeySalt))
		return err
	},
}
