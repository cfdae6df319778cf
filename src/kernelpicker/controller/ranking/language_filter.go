package ranking

import (
	"strings"

	"github.com/notebook-lsp/kernel-picker/src/kernelpicker/entity"
)

// filterByLanguage prunes candidates whose implementation language cannot
// satisfy the target language. An empty target keeps everything. Live
// connections always survive: their language is not locally knowable.
func filterByLanguage(candidates []entity.KernelConnection, language string, profile *entity.NotebookProfile) []entity.KernelConnection {
	if language == "" {
		return candidates
	}

	kept := make([]entity.KernelConnection, 0, len(candidates))
	for _, conn := range candidates {
		if keepForLanguage(conn, language, profile) {
			kept = append(kept, conn)
		}
	}
	return kept
}

func keepForLanguage(conn entity.KernelConnection, language string, profile *entity.NotebookProfile) bool {
	if conn.Kind() == entity.KindLiveRemoteKernel {
		return true
	}

	connLang := connectionLanguage(conn)
	if connLang == language {
		return true
	}
	if language == entity.PythonLanguage {
		// The primary language has the richest evidence; anything that
		// cannot prove it is Python is out.
		return false
	}
	if connLang == "" {
		return true
	}
	// A spec named exactly what the profile asks for survives even when its
	// declared language differs; the name is explicit user intent.
	if profile.HasKernelSpec() && profile.KernelSpec.Name != "" {
		if spec := conn.GetKernelSpec(); spec != nil && spec.EffectiveName() == profile.KernelSpec.Name {
			return true
		}
	}
	return false
}

// connectionLanguage resolves the candidate's implementation language, or ""
// when it cannot be determined.
func connectionLanguage(conn entity.KernelConnection) string {
	if spec := conn.GetKernelSpec(); spec != nil && spec.Language != "" {
		return strings.ToLower(string(spec.Language))
	}
	if conn.Kind() == entity.KindPythonInterpreter {
		return entity.PythonLanguage
	}
	return ""
}
