/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/technophile-04/create-eth-codemod/core/version"
)

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Display the version of create-eth-codemod",
	Long:  `Displays the version of create-eth-codemod.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "create-eth-codemod %s\n", version.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
