package main

import (
	"os"
)

func main() {
	if err := NewCmdProcman().Execute(); err != nil {
		os.Exit(1)
	}
}
