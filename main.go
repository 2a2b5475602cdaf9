package main

import "github.com/AustinJGreen/montyhall/internal/cli"

func main() {
	cli.Execute()
}
