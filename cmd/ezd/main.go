package main

import "github.com/Mjlc31/EASYDAY/cmd/ezd/root"

func main() {
	root.Execute()
}
