/*
Package symbol interns strings into small integer handles.

A Pool is the bidirectional mapping shared between the parser and
the matcher: every identifier-like token a stylesheet mentions — tag
names, ids, classes, pseudo-classes, property names — is interned once
and thereafter compared and hashed as a plain integer.

A handful of common HTML tag names are interned eagerly, at pool
construction, so that both parser and client code can refer to them by
name without performing a lookup.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package symbol
