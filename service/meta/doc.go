// Package meta loads YAML documents and scripts through afs
package meta
