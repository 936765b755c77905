/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package main

import "github.com/technophile-04/create-eth-codemod/cmd"

func main() {
	cmd.Execute()
}
