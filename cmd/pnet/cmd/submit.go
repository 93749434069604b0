/*
Copyright © 2024 Jonathan Taylor <jonrtaylor12@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/

package cmd

import (
	"context"
	"fmt"
	"github.com/jt05610/pnet/amqp"
	"github.com/jt05610/pnet/amqp/client"
	"github.com/jt05610/pnet/env"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"
)

var timeout time.Duration

func contentType(path string) string {
	switch strings.TrimPrefix(filepath.Ext(path), ".") {
	case "yaml", "yml":
		return "application/x-yaml"
	}
	return "application/xml"
}

// submitCmd represents the submit command
var submitCmd = &cobra.Command{
	Use:   "submit [file]",
	Short: "Check a petri net with a remote worker",
	Long:  `Send a net document to the check worker and print the returned report.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		logger, err := zap.NewProduction()
		if err != nil {
			panic(err)
		}
		environ := env.LoadEnv(logger)
		conn, err := amqp.Dial(environ)
		failOnError(err, "Failed to connect to RabbitMQ")
		defer func() {
			_ = conn.Close()
		}()
		body, err := os.ReadFile(args[0])
		failOnError(err, "Failed to read net")
		c := client.NewController(conn.Channel, environ.Exchange)
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		c.Listen(ctx)
		res, err := c.Check(ctx, &client.Request{
			ContentType: contentType(args[0]),
			Body:        body,
		})
		failOnError(err, "Failed to check net")
		if res.Err != "" {
			log.Fatalf("Failed to read net: %s", res.Err)
		}
		fmt.Println(res.Report)
		for _, f := range res.Report.Errors {
			fmt.Printf("  %s\n", f)
		}
		for _, f := range res.Report.Warnings {
			fmt.Printf("  %s\n", f)
		}
	},
}

func init() {
	rootCmd.AddCommand(submitCmd)
	submitCmd.Flags().DurationVarP(&timeout, "timeout", "t", 10*time.Second, "time to wait for the report")
}
