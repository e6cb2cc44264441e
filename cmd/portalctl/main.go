package main

import "github.com/nfrund/lateslip-portal/cmd/portalctl/cmd"

func main() {
	cmd.Execute()
}
