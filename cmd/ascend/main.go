package main

import "github.com/osse101/Ascendant_Go/cmd/ascend/root"

func main() {
	root.Execute()
}
