package main

import "puzzlebox/internal/cli"

func main() {
	cli.Execute()
}
