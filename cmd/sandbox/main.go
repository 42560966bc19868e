package main

import (
	"fmt"
	"os"

	_ "github.com/specterops/dispatch/workload/formula"
	_ "github.com/specterops/dispatch/workload/gates"
	_ "github.com/specterops/dispatch/workload/sets"
	_ "github.com/specterops/dispatch/workload/simplify"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
