// Command vmsim runs a demand-paged virtual memory simulation.
package main

import "github.com/sarchlab/vmsim/cmd/vmsim/cmd"

func main() {
	cmd.Execute()
}
