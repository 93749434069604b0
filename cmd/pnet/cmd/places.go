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
	"fmt"
	"github.com/jt05610/pnet"
	"github.com/spf13/cobra"
)

var filter string

// placesCmd represents the places command
var placesCmd = &cobra.Command{
	Use:   "places",
	Short: "List the places of a petri net",
	Long: `List the places of a petri net. An expression over id, name, and
marking filters the list, e.g. --filter 'marking > 0'.`,
	Run: func(cmd *cobra.Command, args []string) {
		net := loadNet(inputFile)
		places := net.Places
		if filter != "" {
			s, err := pnet.NewSelector(filter)
			failOnError(err, "Failed to compile filter")
			places, err = net.SelectPlaces(s)
			failOnError(err, "Failed to run filter")
		}
		for _, p := range places {
			fmt.Printf("%s\t%s\t%d\n", p.ID, p.Name, p.Marking)
		}
	},
}

func init() {
	rootCmd.AddCommand(placesCmd)
	placesCmd.PersistentFlags().StringVarP(&inputFile, "input", "i", "", "input file")
	placesCmd.PersistentFlags().StringVarP(&filter, "filter", "f", "", "filter expression")
}
