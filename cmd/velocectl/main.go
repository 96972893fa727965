// velocectl is a command-line client for the Veloce panel admin API.
//
// Connection settings come from the environment:
//
//	VELOCE_URL      panel base URL (required)
//	VELOCE_API_KEY  admin API key (required)
//
// A .env file in the working directory is loaded if present.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
