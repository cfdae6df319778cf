package ranking

import (
	"fmt"
	"strings"

	"github.com/gofrs/uuid"
	"github.com/notebook-lsp/kernel-picker/src/kernelpicker/entity"
	"github.com/notebook-lsp/kernel-picker/src/kernelpicker/internal/identity"
	"go.lsp.dev/protocol"
)

// findConnectionMatchingInterpreter returns the interpreter-launch candidate
// whose identity matches, or nil. Candidates registered for a custom
// kernelspec are skipped: those carry explicit user intent and must not be
// silently treated as "the interpreter".
func findConnectionMatchingInterpreter(interp *entity.Interpreter, candidates []entity.KernelConnection) entity.KernelConnection {
	for _, conn := range candidates {
		if conn.Kind() != entity.KindPythonInterpreter {
			continue
		}
		if spec := conn.GetKernelSpec(); spec != nil && spec.IsCustomSelfRegistered() {
			continue
		}
		if identity.Same(interp, conn.GetInterpreter()) {
			return conn
		}
	}
	return nil
}

// synthesizeInterpreterConnection builds a one-call candidate for a preferred
// interpreter absent from the discovered pool, so it can compete in ranking
// on equal footing. The result is never persisted.
func synthesizeInterpreterConnection(interp *entity.Interpreter) entity.KernelConnection {
	id := strings.ReplaceAll(uuid.Must(uuid.NewV4()).String(), "-", "")

	name := entity.PythonLanguage
	if interp.Version != nil {
		name = fmt.Sprintf("%s%d", name, interp.Version.Major)
	}
	name += id[:12]

	displayName := interp.DisplayName
	if displayName == "" {
		displayName = "Python"
		if interp.Version != nil {
			displayName = fmt.Sprintf("Python %d.%d.%d", interp.Version.Major, interp.Version.Minor, interp.Version.Patch)
		}
		if interp.EnvName != "" {
			displayName = fmt.Sprintf("%s (%s)", displayName, interp.EnvName)
		}
	}

	return &entity.PythonKernelConnection{
		ID: "synthesized-" + id,
		KernelSpec: &entity.KernelSpec{
			Name:        name,
			DisplayName: displayName,
			Language:    protocol.LanguageIdentifier(entity.PythonLanguage),
			Executable:  interp.Path,
			Argv:        []string{interp.Path, "-m", "ipykernel_launcher", "-f", "{connection_file}"},
		},
		Interpreter: &entity.Interpreter{
			Path:        interp.Path,
			DisplayName: interp.DisplayName,
			EnvName:     interp.EnvName,
			Version:     interp.Version,
			SysPrefix:   interp.SysPrefix,
		},
	}
}
