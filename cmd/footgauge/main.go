package main

import "github.com/footgauge/footgauge/cmd/footgauge/cmd"

func main() {
	cmd.Execute()
}
