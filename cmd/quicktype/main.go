// Command quicktype is a thin CLI front-end over internal/session: it
// reads one or more input files, assembles a session.Config, and writes
// the rendered source to stdout or a file. The inference core itself
// never touches a filesystem or a flag; this package is the only place in
// the module that does.
package main

func main() {
	Execute()
}
