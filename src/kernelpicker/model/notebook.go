// Package model holds the serialized forms exchanged with collaborators: the
// nbformat notebook metadata schema this service reads, and the JSON shape
// kernel connections travel in over the inbound surface.
package model

// NotebookMetadata mirrors the kernel-selection portion of the nbformat
// metadata block. All fields are optional; partial metadata is expected.
type NotebookMetadata struct {
	KernelSpec   *KernelSpec   `json:"kernelspec,omitempty"`
	LanguageInfo *LanguageInfo `json:"language_info,omitempty"`
	// Interpreter is the legacy top-level location of the cached hash.
	Interpreter *InterpreterRef `json:"interpreter,omitempty"`
	VSCode      *VSCodeMetadata `json:"vscode,omitempty"`
}

// KernelSpec is the persisted kernelspec block of a notebook.
type KernelSpec struct {
	Name        string `json:"name,omitempty"`
	DisplayName string `json:"display_name,omitempty"`
	Language    string `json:"language,omitempty"`
}

// LanguageInfo is the persisted language_info block of a notebook.
type LanguageInfo struct {
	Name string `json:"name,omitempty"`
}

// VSCodeMetadata holds the extension-specific metadata block.
type VSCodeMetadata struct {
	Interpreter *InterpreterRef `json:"interpreter,omitempty"`
}

// InterpreterRef caches an interpreter content hash at save time.
type InterpreterRef struct {
	Hash string `json:"hash,omitempty"`
}
