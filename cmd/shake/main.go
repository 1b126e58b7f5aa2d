package main

import (
	"log"

	"go.keccak.dev/shake/src/shakecmd"
)

func main() {
	if err := shakecmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
