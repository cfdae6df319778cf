// Package mapper converts between serialized model types and domain entities.
package mapper

import (
	"encoding/json"
	"fmt"

	"github.com/notebook-lsp/kernel-picker/src/kernelpicker/entity"
	"github.com/notebook-lsp/kernel-picker/src/kernelpicker/model"
)

// ParseNotebookMetadata decodes the nbformat metadata block.
func ParseNotebookMetadata(raw []byte) (*model.NotebookMetadata, error) {
	var m model.NotebookMetadata
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("parse notebook metadata: %w", err)
	}
	return &m, nil
}

// NotebookMetadataToProfile maps persisted metadata to the domain profile.
// Absent blocks become nil/empty fields; the cached interpreter hash is read
// from the modern vscode block first, then the legacy top-level location.
func NotebookMetadataToProfile(m *model.NotebookMetadata) *entity.NotebookProfile {
	if m == nil {
		return nil
	}

	profile := &entity.NotebookProfile{}
	if m.KernelSpec != nil {
		profile.KernelSpec = &entity.ProfileKernelSpec{
			Name:        m.KernelSpec.Name,
			DisplayName: m.KernelSpec.DisplayName,
			Language:    m.KernelSpec.Language,
		}
	}
	if m.LanguageInfo != nil {
		profile.Language = m.LanguageInfo.Name
	}
	if m.VSCode != nil && m.VSCode.Interpreter != nil {
		profile.InterpreterHash = m.VSCode.Interpreter.Hash
	} else if m.Interpreter != nil {
		profile.InterpreterHash = m.Interpreter.Hash
	}
	return profile
}
