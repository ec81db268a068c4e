package main

import "github.com/dbsmedya/dupsweep/cmd/dupsweep/cmd"

func main() {
	cmd.Execute()
}
