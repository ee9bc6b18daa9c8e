// Command todoseed generates a synthetic authorization graph and persists
// it to a relational database and a nested entity document.
package main

import "os"

func main() {
	if err := Execute(); err != nil {
		os.Exit(1)
	}
}
