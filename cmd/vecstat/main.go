package main

import "github.com/pavanmanishd/vector/internal/cli"

func main() {
	cli.Execute()
}
