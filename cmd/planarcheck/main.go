// Command planarcheck reads an edge list and reports whether the graph it
// describes is planar.
package main

func main() {
	Execute()
}
