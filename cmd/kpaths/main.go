// Command kpaths lists the k loopless shortest paths between two vertices
// of a graph read from a YAML or JSON document.
//
// Usage:
//
//	kpaths find --graph roads.yaml --from C --to H -k 3 [--weight length] [--parallel 4] [--output table|yaml]
//	kpaths demo [-k 3] [--weight length]
//
// Exit codes: 0 on success, 1 on error, 2 when the target is unreachable.
package main

import "os"

func main() {
	os.Exit(run(os.Args[1:]))
}
