package ranking

import (
	"github.com/notebook-lsp/kernel-picker/src/kernelpicker/entity"
	"github.com/notebook-lsp/kernel-picker/src/kernelpicker/internal/identity"
)

// isExactMatch decides whether a candidate is precisely the backend the
// profile was saved against. Evidence rules, strongest first:
//
//  1. A live connection pinned by preferredRemoteKernelID is authoritative.
//  2. No kernelspec block in the profile means nothing to match against.
//  3. A cached interpreter hash proves identity outright, even against a
//     default-named spec.
//  4. Otherwise the effective spec name must equal the profile name, and a
//     default-pattern name additionally needs display-name corroboration;
//     an environment named after the profile also qualifies.
func isExactMatch(candidate entity.KernelConnection, profile *entity.NotebookProfile, preferredRemoteKernelID string) bool {
	if candidate == nil {
		return false
	}
	if candidate.Kind() == entity.KindLiveRemoteKernel &&
		preferredRemoteKernelID != "" && candidate.ConnectionID() == preferredRemoteKernelID {
		return true
	}
	if !profile.HasKernelSpec() {
		return false
	}

	if profile.InterpreterHash != "" {
		if hash, err := identity.Hash(candidate.GetInterpreter()); err == nil && hash == profile.InterpreterHash {
			return true
		}
	}

	spec := candidate.GetKernelSpec()
	if spec != nil && profile.KernelSpec.Name != "" && spec.EffectiveName() == profile.KernelSpec.Name {
		if !entity.IsDefaultKernelSpecName(profile.KernelSpec.Name) {
			return true
		}
		if profile.KernelSpec.DisplayName != "" && spec.DisplayName == profile.KernelSpec.DisplayName {
			return true
		}
	}
	if interp := candidate.GetInterpreter(); interp != nil &&
		interp.EnvName != "" && interp.EnvName == profile.KernelSpec.Name {
		return true
	}
	return false
}
