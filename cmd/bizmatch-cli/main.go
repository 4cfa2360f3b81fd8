package main

import "github.com/okian/bizmatch/internal/cli"

func main() {
	cli.Execute()
}
