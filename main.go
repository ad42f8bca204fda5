package main

import "busstation/internal/cli"

func main() {
	cli.Execute()
}
