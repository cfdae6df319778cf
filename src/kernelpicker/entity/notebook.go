package entity

import (
	"path/filepath"
	"regexp"
	"strings"

	"go.lsp.dev/uri"
)

// PythonLanguage is the primary implementation language. Kernels of this
// language get the richest matching evidence (interpreter hashes, env names).
const PythonLanguage = "python"

// InteractiveExtension marks interactive-window resources, which default to
// the primary language when the profile declares none.
const InteractiveExtension = ".interactive"

// NotebookProfile is the kernel-selection metadata persisted inside a
// notebook file. Absent fields mean "no constraint", never an error.
type NotebookProfile struct {
	KernelSpec *ProfileKernelSpec
	// Language is language_info.name from the notebook metadata.
	Language string
	// InterpreterHash is the interpreter content hash cached at save time
	// for exact re-matching.
	InterpreterHash string
}

// ProfileKernelSpec is the persisted kernelspec block of a profile.
type ProfileKernelSpec struct {
	Name        string
	DisplayName string
	Language    string
}

// HasKernelSpec reports whether the profile carries a kernelspec block.
func (p *NotebookProfile) HasKernelSpec() bool {
	return p != nil && p.KernelSpec != nil
}

// TargetLanguage resolves the effective language the profile asks for.
// Declared language wins; a default-pattern kernelspec name implies its
// language; interactive resources default to Python; otherwise unconstrained.
func (p *NotebookProfile) TargetLanguage(resource uri.URI) string {
	if p != nil {
		if p.Language != "" {
			return strings.ToLower(p.Language)
		}
		if p.KernelSpec != nil {
			if p.KernelSpec.Language != "" {
				return strings.ToLower(p.KernelSpec.Language)
			}
			if lang := LanguageForSpecName(p.KernelSpec.Name); lang != "" {
				return lang
			}
		}
	}
	if IsInteractiveResource(resource) {
		return PythonLanguage
	}
	return ""
}

// IsInteractiveResource reports whether the resource is an interactive window
// rather than a notebook file.
func IsInteractiveResource(resource uri.URI) bool {
	if resource == "" {
		return false
	}
	return strings.EqualFold(filepath.Ext(resource.Filename()), InteractiveExtension)
}

var defaultSpecName = regexp.MustCompile(`^python\d*$`)

// autoGeneratedSpecName covers names this tool generates when registering a
// spec for a plain interpreter: default python prefix plus a hash-like tail.
var autoGeneratedSpecName = regexp.MustCompile(`^python\d*[0-9a-f]{8,}$`)

// IsDefaultKernelSpecName reports whether the name is a default-pattern name
// (the unqualified primary language, optionally with a bare version suffix).
// Matching such a name alone is weak evidence: it proves nothing without
// corroborating interpreter-hash or display-name equality.
func IsDefaultKernelSpecName(name string) bool {
	return defaultSpecName.MatchString(strings.ToLower(name))
}

// IsAutoGeneratedSpecName reports whether the name looks like one this tool
// generated for a registered interpreter spec.
func IsAutoGeneratedSpecName(name string) bool {
	return autoGeneratedSpecName.MatchString(strings.ToLower(name))
}

// specNameLanguages maps bare kernelspec names to the language they imply.
// Jupyter convention names the default spec of a language after the language
// itself, optionally with a version suffix.
var specNameLanguages = map[string]string{
	"python": PythonLanguage,
	"julia":  "julia",
	"java":   "java",
	"scala":  "scala",
	"r":      "r",
	"ir":     "r",
	"bash":   "bash",
	"ruby":   "ruby",
}

// LanguageForSpecName returns the language implied by a default-pattern spec
// name, or "" when the name carries no language signal.
func LanguageForSpecName(name string) string {
	trimmed := strings.TrimRight(strings.ToLower(name), "0123456789")
	return specNameLanguages[trimmed]
}
