package main

import (
	root "github.com/AbhishekDubey013/zkastro-proof/cmd"
)

func main() {
	root.Execute()
}
