// Command reditus tracks a 90-day discipline program from the terminal.
package main

import "github.com/mesh-intelligence/reditus/internal/cli"

func main() {
	cli.Execute()
}
