package main

import "github.com/rsv-series/scoring/cmd"

func main() {
	cmd.Execute()
}
