// Package fhandle opens files as [*Handle] values whose os resource is a file the caller names,
// either by path or by an already open descriptor.
//
// Handles are never built directly. A [Factory] allocates a Handle backed by a placeholder,
// usually an anonymous temporary file (see [TempFile]),
// and the placeholder is then swapped for the named file and closed.
// Callers observe the Handle the factory produced, now backed by the new resource.
//
// Descriptors are always duplicated, so the caller keeps sole ownership of the original.
// Only regular files are accepted, except for the standard streams
// and for [AdoptAny].
//
// Failures are reported as [*Error] with Op "fopen" and never leak descriptors.
package fhandle
