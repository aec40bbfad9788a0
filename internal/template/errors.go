// Package template converts static template subtrees plus a data context
// into concrete output files. Each file in a subtree is either rendered
// (when its name carries the .tmpl marker) or copied verbatim, with output
// filenames computed by a pure classification step so the dispatch rules
// are testable independent of filesystem traversal.
package template

import "errors"

// Sentinel errors for template operations.
var (
	// ErrTemplateNotFound indicates the named template does not exist in the FS.
	ErrTemplateNotFound = errors.New("template: not found")

	// ErrTemplateSyntax indicates the template failed to parse.
	ErrTemplateSyntax = errors.New("template: syntax error")

	// ErrMissingTemplateKey indicates the template referenced a data field
	// not present in the rendering context.
	ErrMissingTemplateKey = errors.New("template: missing key in render context")

	// ErrPathTraversal indicates a template path would escape the output directory.
	ErrPathTraversal = errors.New("template: path escapes output directory")
)
