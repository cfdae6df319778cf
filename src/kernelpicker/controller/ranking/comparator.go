package ranking

import (
	"github.com/notebook-lsp/kernel-picker/src/kernelpicker/entity"
)

// rankingContext carries everything the comparator needs, computed once per
// ranking call. It is immutable; the comparator is referentially transparent
// given a context.
type rankingContext struct {
	profile *entity.NotebookProfile
	// language is the effective target language, "" when unconstrained.
	language string
	// active is the candidate for the preferred interpreter, used only as
	// a last-resort tie-breaker. May be nil on first run.
	active entity.KernelConnection
	// hashes maps connection id to interpreter hash. Candidates whose hash
	// failed are simply absent.
	hashes            map[string]string
	preferredRemoteID string
}

// compare returns 1 when a outranks b, -1 when b outranks a, 0 on a full
// tie. Skew-symmetric: compare(a,b) == -compare(b,a). Sorting ascending with
// it places the best candidate last.
func (rc *rankingContext) compare(a, b entity.KernelConnection) int {
	// Rule 1: the pinned live kernel beats everything; unpinned live
	// connections lose to everything else.
	if r := compareBool(rc.isPinnedLive(a), rc.isPinnedLive(b)); r != 0 {
		return r
	}
	aLive := a.Kind() == entity.KindLiveRemoteKernel
	bLive := b.Kind() == entity.KindLiveRemoteKernel
	if aLive || bLive {
		return compareBool(bLive, aLive)
	}

	// Rule 2: nothing persisted to match against.
	if !rc.profile.HasKernelSpec() {
		return rc.compareWithoutProfile(a, b)
	}

	// Rule 3: non-Python notebook.
	if rc.language != "" && rc.language != entity.PythonLanguage {
		return rc.compareNonPython(a, b)
	}

	// Rule 4: an auto-generated profile name with no language set is only
	// strong evidence for a verbatim local spec match.
	if rc.profile.KernelSpec.Language == "" && entity.IsAutoGeneratedSpecName(rc.profile.KernelSpec.Name) {
		if r := compareBool(rc.isVerbatimLocalSpec(a), rc.isVerbatimLocalSpec(b)); r != 0 {
			return r
		}
	}

	// Rule 5: general Python case.
	return rc.comparePython(a, b)
}

// compareWithoutProfile ranks on language agreement, then the active
// candidate, then Python version, then plain-interpreter launches.
func (rc *rankingContext) compareWithoutProfile(a, b entity.KernelConnection) int {
	if r := compareBool(rc.matchesTargetLanguage(a), rc.matchesTargetLanguage(b)); r != 0 {
		return r
	}
	if r := compareBool(rc.isActive(a), rc.isActive(b)); r != 0 {
		return r
	}
	if r := compareVersion(a.GetInterpreter(), b.GetInterpreter()); r != 0 {
		return r
	}
	return compareBool(isPlainInterpreterLaunch(a), isPlainInterpreterLaunch(b))
}

// compareNonPython ranks purely on name and display-name equality with the
// profile. Remote matches carry the same weight as local ones here: without
// interpreter evidence the name is all there is.
func (rc *rankingContext) compareNonPython(a, b entity.KernelConnection) int {
	if r := compareBool(rc.matchesTargetLanguage(a), rc.matchesTargetLanguage(b)); r != 0 {
		return r
	}
	if r := compareInt(rc.nonPythonNameScore(a), rc.nonPythonNameScore(b)); r != 0 {
		return r
	}
	return compareBool(rc.isActive(a), rc.isActive(b))
}

// comparePython is the general case: language, then name evidence, then env
// name, then locality, then joint display-name/interpreter-hash dominance.
func (rc *rankingContext) comparePython(a, b entity.KernelConnection) int {
	if r := compareBool(rc.isPythonCandidate(a), rc.isPythonCandidate(b)); r != 0 {
		return r
	}
	if r := compareBool(rc.nameMatchesProfile(a), rc.nameMatchesProfile(b)); r != 0 {
		return r
	}
	if r := compareBool(rc.envMatchesProfile(a), rc.envMatchesProfile(b)); r != 0 {
		return r
	}
	// Remote matches are only ever name-based; any local evidence beats
	// them.
	if r := compareBool(isLocal(a), isLocal(b)); r != 0 {
		return r
	}

	dnA, dnB := rc.displayNameScore(a), rc.displayNameScore(b)
	hA, hB := rc.hashScore(a), rc.hashScore(b)
	switch {
	case dnA >= dnB && hA >= hB && (dnA > dnB || hA > hB):
		return 1
	case dnB >= dnA && hB >= hA && (dnB > dnA || hB > hA):
		return -1
	}
	// Both measures equal, or they disagree in direction; neither side
	// dominates.
	if r := compareBool(rc.isActive(a), rc.isActive(b)); r != 0 {
		return r
	}
	return compareBool(isPlainInterpreterLaunch(a), isPlainInterpreterLaunch(b))
}

func (rc *rankingContext) isPinnedLive(conn entity.KernelConnection) bool {
	return rc.preferredRemoteID != "" &&
		conn.Kind() == entity.KindLiveRemoteKernel &&
		conn.ConnectionID() == rc.preferredRemoteID
}

func (rc *rankingContext) isActive(conn entity.KernelConnection) bool {
	return rc.active != nil && conn.ConnectionID() == rc.active.ConnectionID()
}

func (rc *rankingContext) matchesTargetLanguage(conn entity.KernelConnection) bool {
	if rc.language == "" {
		return true
	}
	return connectionLanguage(conn) == rc.language
}

func (rc *rankingContext) isPythonCandidate(conn entity.KernelConnection) bool {
	lang := connectionLanguage(conn)
	return lang == "" || lang == entity.PythonLanguage
}

// nonPythonNameScore grades name evidence for non-Python profiles: exact
// name match beats exact display-name match beats neither.
func (rc *rankingContext) nonPythonNameScore(conn entity.KernelConnection) int {
	spec := conn.GetKernelSpec()
	if spec == nil {
		return 0
	}
	ks := rc.profile.KernelSpec
	if ks.Name != "" && spec.EffectiveName() == ks.Name {
		return 2
	}
	if ks.DisplayName != "" && spec.DisplayName == ks.DisplayName {
		return 1
	}
	return 0
}

// nameMatchesProfile applies the default-name weakness rule: a default
// pattern name only counts when corroborated by the cached hash or the
// display name.
func (rc *rankingContext) nameMatchesProfile(conn entity.KernelConnection) bool {
	spec := conn.GetKernelSpec()
	ks := rc.profile.KernelSpec
	if spec == nil || ks.Name == "" || spec.EffectiveName() != ks.Name {
		return false
	}
	if !entity.IsDefaultKernelSpecName(ks.Name) {
		return true
	}
	return rc.hashScore(conn) > 0 || rc.displayNameScore(conn) > 0
}

// envMatchesProfile compares the interpreter environment name against the
// profile's spec name under the same weakness rule.
func (rc *rankingContext) envMatchesProfile(conn entity.KernelConnection) bool {
	interp := conn.GetInterpreter()
	ks := rc.profile.KernelSpec
	if interp == nil || interp.EnvName == "" || interp.EnvName != ks.Name {
		return false
	}
	if !entity.IsDefaultKernelSpecName(ks.Name) {
		return true
	}
	return rc.hashScore(conn) > 0 || rc.displayNameScore(conn) > 0
}

// displayNameScore grades display-name evidence: 2 for the spec's own
// display name, 1 for the registration-time original display name.
func (rc *rankingContext) displayNameScore(conn entity.KernelConnection) int {
	spec := conn.GetKernelSpec()
	if spec == nil || rc.profile.KernelSpec.DisplayName == "" {
		return 0
	}
	want := rc.profile.KernelSpec.DisplayName
	if spec.DisplayName == want {
		return 2
	}
	if spec.Metadata != nil && spec.Metadata.OriginalDisplayName == want {
		return 1
	}
	return 0
}

// hashScore grades interpreter-hash evidence: 2 for the profile's cached
// hash, 1 for the active candidate's interpreter.
func (rc *rankingContext) hashScore(conn entity.KernelConnection) int {
	hash, ok := rc.hashes[conn.ConnectionID()]
	if !ok {
		return 0
	}
	if rc.profile != nil && rc.profile.InterpreterHash != "" && hash == rc.profile.InterpreterHash {
		return 2
	}
	if rc.active != nil && rc.active.ConnectionID() != conn.ConnectionID() {
		if activeHash, ok := rc.hashes[rc.active.ConnectionID()]; ok && activeHash == hash {
			return 1
		}
	}
	return 0
}

// isVerbatimLocalSpec reports a local kernelspec whose own name and display
// name both match the profile exactly.
func (rc *rankingContext) isVerbatimLocalSpec(conn entity.KernelConnection) bool {
	if conn.Kind() != entity.KindLocalKernelSpec {
		return false
	}
	spec := conn.GetKernelSpec()
	ks := rc.profile.KernelSpec
	return spec != nil && spec.Name == ks.Name && spec.DisplayName == ks.DisplayName
}

func isLocal(conn entity.KernelConnection) bool {
	return conn.Kind() == entity.KindPythonInterpreter || conn.Kind() == entity.KindLocalKernelSpec
}

// isPlainInterpreterLaunch reports the mildly preferred case: launching the
// interpreter directly rather than through a registered custom kernelspec.
func isPlainInterpreterLaunch(conn entity.KernelConnection) bool {
	if conn.Kind() != entity.KindPythonInterpreter {
		return false
	}
	spec := conn.GetKernelSpec()
	return spec == nil || !spec.IsCustomSelfRegistered()
}

// compareVersion prefers the presence of an interpreter, then the higher
// version.
func compareVersion(a, b *entity.Interpreter) int {
	if r := compareBool(a != nil, b != nil); r != 0 || a == nil {
		return r
	}
	if r := compareBool(a.Version != nil, b.Version != nil); r != 0 || a.Version == nil {
		return r
	}
	if r := compareInt(a.Version.Major, b.Version.Major); r != 0 {
		return r
	}
	if r := compareInt(a.Version.Minor, b.Version.Minor); r != 0 {
		return r
	}
	return compareInt(a.Version.Patch, b.Version.Patch)
}

func compareBool(a, b bool) int {
	switch {
	case a && !b:
		return 1
	case b && !a:
		return -1
	}
	return 0
}

func compareInt(a, b int) int {
	switch {
	case a > b:
		return 1
	case b > a:
		return -1
	}
	return 0
}
