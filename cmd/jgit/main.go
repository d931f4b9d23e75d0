package main

import "github.com/sepatel/jgit/internal/cli"

func main() {
	cli.Execute()
}
