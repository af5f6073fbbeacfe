package main

import (
	"fmt"
	"os"

	evilclient "github.com/ulandj/evil-client"
)

func main() {
	if err := evilclient.Main(); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		os.Exit(1)
	}
}
