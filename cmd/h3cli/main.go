// Command h3cli is a thin command-line front end over the h3 package:
// coordinate conversion, neighborhood traversal, compaction, and
// polygon fill, one subcommand per operation.
package main

func main() {
	Execute()
}
