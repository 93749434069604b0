/*
Copyright © 2024 Jonathan Taylor <jonrtaylor12@gmail.com>
*/

package cmd

import (
	"context"
	"github.com/jt05610/pnet"
	"github.com/jt05610/pnet/builder"
	"github.com/spf13/cobra"
	"log"
)

// rootCmd represents the root command
var rootCmd = &cobra.Command{
	Use:   "pnet",
	Short: "pnet reads, checks, and draws place/transition nets",
	Long:  ``,
}

var (
	inputFile string
	outputDir string
)

func failOnError(err error, msg string) {
	if err != nil {
		log.Fatalf("%s: %s", msg, err)
	}
}

func loadNet(path string) *pnet.Net {
	n, err := builder.Default().Build(context.Background(), path)
	failOnError(err, "Failed to read net")
	return n
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		panic(err)
	}
}
