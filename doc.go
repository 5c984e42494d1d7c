// Package fstree provides a sandboxed, tree-relative filesystem path
// algebra and a parser for tar archive file names.
//
// Every path is a structured [Path] value resolved against a declared tree
// root rather than a raw string. Paths are parsed and normalized once, then
// composed and converted with pure operations: no hidden state, no
// filesystem access.
//
// # Paths
//
// Parse and transform tree paths:
//
//	p := fstree.ParsePath("/a/b/../c")   // "/a/c"
//	r, err := p.RelativeTo(fstree.ParsePath("/a/x"))
//	if err != nil {
//	    return err
//	}
//	fmt.Println(r) // "../b/c"
//
// Relative paths retain leading ".." references they cannot cancel locally,
// exposed through ParentCount, Parents, and Remainder. Absolute paths clamp
// ".." at the root, like "cd .." in a root directory.
//
// # Archive names
//
// Parse tar file names against a compression registry:
//
//	reg := fstree.DefaultRegistry()
//	tn, err := fstree.ParseTarName("backup.tar.gz", reg)
//	if err != nil {
//	    return err
//	}
//	tn.Compression().Name() // "gz"
//
// The registry maps compression names and file extensions to descriptors.
// [DefaultRegistry] carries the schemes known to GNU tar; construct a
// [Registry] by hand to add codecs (for example xz) the default build does
// not ship.
//
// All Path and TarName operations are pure computations, safe for
// concurrent use. Registries must be fully populated before concurrent
// reads begin.
package fstree
