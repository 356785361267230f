package main

import "fantasyquest/cmd/fq/root"

func main() {
	root.Execute()
}
