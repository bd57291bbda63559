// Package structpages provides a way to define routing using struct tags and methods.
// Pages are plain structs: child pages are fields tagged with
// `route:"[METHOD] /path Title"`, and methods returning a [templ.Component]
// render them. Mounting a page tree registers every renderable page on a [Router].
package structpages
