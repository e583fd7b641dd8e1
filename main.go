package main

import "quality-metrics/src/handler/cli"

func main() {
	cli.Run()
}
