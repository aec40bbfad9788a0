package template

import (
	"path"
	"strings"
)

// RenderSuffix marks files whose content is rendered through the template
// engine; the suffix is stripped from the output filename.
const RenderSuffix = ".tmpl"

// Action is the per-file dispatch decision for a template tree entry.
type Action int

// Classification outcomes.
const (
	// ActionCopy copies the file byte-for-byte.
	ActionCopy Action = iota
	// ActionRender evaluates the file through the template engine.
	ActionRender
)

// dotfileNames are dot-prefixed convention files stored in the template
// tree without their leading dot, a workaround for packagers that silently
// exclude dotfiles. The dot is restored in the output filename.
var dotfileNames = map[string]bool{
	"gitignore":    true,
	"dockerignore": true,
	"editorconfig": true,
	"env":          true,
	"nvmrc":        true,
}

// Classify decides how a template tree entry is materialized: whether its
// content is rendered or copied, and the output-relative path it lands at.
// The render-suffix rule applies first, then the dotfile-restore rule, so
// "env.tmpl" renders to ".env" and "gitignore" copies to ".gitignore".
func Classify(relPath string) (Action, string) {
	action := ActionCopy
	out := relPath

	if strings.HasSuffix(out, RenderSuffix) {
		action = ActionRender
		out = strings.TrimSuffix(out, RenderSuffix)
	}

	dir, base := path.Split(out)
	if dotfileNames[base] {
		out = dir + "." + base
	}

	return action, out
}
