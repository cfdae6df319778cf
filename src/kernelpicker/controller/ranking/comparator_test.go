package ranking

import (
	"testing"

	"github.com/notebook-lsp/kernel-picker/src/kernelpicker/entity"
	"github.com/stretchr/testify/assert"
)

func testPool() []entity.KernelConnection {
	return []entity.KernelConnection{
		&entity.PythonKernelConnection{
			ID:          "interp-base",
			KernelSpec:  &entity.KernelSpec{Name: "python3", DisplayName: "Python 3.11", Language: "python"},
			Interpreter: &entity.Interpreter{Path: "/usr/bin/python3", Version: &entity.InterpreterVersion{Major: 3, Minor: 11}},
		},
		&entity.PythonKernelConnection{
			ID:          "interp-venv",
			KernelSpec:  &entity.KernelSpec{Name: "python3", DisplayName: "Python 3 (venv)", Language: "python"},
			Interpreter: &entity.Interpreter{Path: "/opt/venv/bin/python3", EnvName: "venv", Version: &entity.InterpreterVersion{Major: 3, Minor: 12}},
		},
		&entity.LocalKernelSpecConnection{
			ID:         "local-custom",
			KernelSpec: &entity.KernelSpec{Name: "workbench", DisplayName: "Workbench", Language: "python"},
		},
		&entity.RemoteKernelSpecConnection{
			ID:         "remote-spec",
			ServerID:   "hub-1",
			KernelSpec: &entity.KernelSpec{Name: "workbench", DisplayName: "Workbench", Language: "python"},
		},
		&entity.LiveRemoteKernelConnection{ID: "live-1", ServerID: "hub-1"},
		&entity.LiveRemoteKernelConnection{ID: "live-2", ServerID: "hub-2"},
	}
}

func testContexts(pool []entity.KernelConnection) map[string]*rankingContext {
	return map[string]*rankingContext{
		"no kernelspec block": {
			profile:  &entity.NotebookProfile{},
			language: entity.PythonLanguage,
		},
		"default-named profile": {
			profile: &entity.NotebookProfile{KernelSpec: &entity.ProfileKernelSpec{Name: "python3", DisplayName: "Python 3 (venv)"}},
			active:  pool[0],
		},
		"custom-named profile with pin": {
			profile:           &entity.NotebookProfile{KernelSpec: &entity.ProfileKernelSpec{Name: "workbench", DisplayName: "Workbench"}},
			preferredRemoteID: "live-2",
		},
		"non-python profile": {
			profile:  &entity.NotebookProfile{KernelSpec: &entity.ProfileKernelSpec{Name: "julia"}},
			language: "julia",
		},
	}
}

func TestCompareSkewSymmetric(t *testing.T) {
	pool := testPool()
	for name, rc := range testContexts(pool) {
		t.Run(name, func(t *testing.T) {
			for _, a := range pool {
				for _, b := range pool {
					assert.Equal(t, rc.compare(a, b), -rc.compare(b, a),
						"compare(%s, %s)", a.ConnectionID(), b.ConnectionID())
				}
			}
		})
	}
}

func TestCompareSelfIsTie(t *testing.T) {
	pool := testPool()
	for name, rc := range testContexts(pool) {
		t.Run(name, func(t *testing.T) {
			for _, c := range pool {
				assert.Zero(t, rc.compare(c, c), c.ConnectionID())
			}
		})
	}
}

func TestComparePinnedLiveBeatsEverything(t *testing.T) {
	pool := testPool()
	rc := &rankingContext{
		profile:           &entity.NotebookProfile{KernelSpec: &entity.ProfileKernelSpec{Name: "workbench"}},
		preferredRemoteID: "live-2",
	}
	pinned := pool[5]
	for _, other := range pool[:5] {
		assert.Equal(t, 1, rc.compare(pinned, other), other.ConnectionID())
	}
}

func TestCompareUnpinnedLiveLosesToEverything(t *testing.T) {
	pool := testPool()
	rc := &rankingContext{profile: &entity.NotebookProfile{KernelSpec: &entity.ProfileKernelSpec{Name: "workbench"}}}
	live := pool[4]
	for _, other := range pool[:4] {
		assert.Equal(t, -1, rc.compare(live, other), other.ConnectionID())
	}
}

func TestCompareWithoutProfile(t *testing.T) {
	pool := testPool()
	base, venv := pool[0], pool[1]
	custom := pool[2]

	t.Run("active candidate breaks ties", func(t *testing.T) {
		rc := &rankingContext{profile: &entity.NotebookProfile{}, language: entity.PythonLanguage, active: base}
		assert.Equal(t, 1, rc.compare(base, venv))
		assert.Equal(t, -1, rc.compare(venv, base))
	})

	t.Run("higher version wins absent an active candidate", func(t *testing.T) {
		rc := &rankingContext{profile: &entity.NotebookProfile{}, language: entity.PythonLanguage}
		assert.Equal(t, 1, rc.compare(venv, base))
	})

	t.Run("interpreter presence beats a bare spec", func(t *testing.T) {
		rc := &rankingContext{profile: &entity.NotebookProfile{}, language: entity.PythonLanguage}
		assert.Equal(t, 1, rc.compare(base, custom))
	})
}

func TestCompareDefaultNameNeedsCorroboration(t *testing.T) {
	pool := testPool()
	base, venv := pool[0], pool[1]
	rc := &rankingContext{
		profile: &entity.NotebookProfile{KernelSpec: &entity.ProfileKernelSpec{Name: "python3", DisplayName: "Python 3 (venv)"}},
	}

	// Both names equal the default-pattern profile name, but only venv has
	// the corroborating display name.
	assert.Equal(t, 1, rc.compare(venv, base))
	assert.Equal(t, -1, rc.compare(base, venv))
}

func TestCompareLocalBeatsRemoteNameMatch(t *testing.T) {
	pool := testPool()
	local, remote := pool[2], pool[3]
	rc := &rankingContext{
		profile: &entity.NotebookProfile{KernelSpec: &entity.ProfileKernelSpec{Name: "workbench"}},
	}
	assert.Equal(t, 1, rc.compare(local, remote))
}

func TestCompareAutoGeneratedProfileName(t *testing.T) {
	verbatim := &entity.LocalKernelSpecConnection{
		ID:         "verbatim",
		KernelSpec: &entity.KernelSpec{Name: "python3abcdef012345", DisplayName: "My Env", Language: "python"},
	}
	interp := &entity.PythonKernelConnection{
		ID:          "interp",
		KernelSpec:  &entity.KernelSpec{Name: "python3", DisplayName: "Python 3.11", Language: "python"},
		Interpreter: &entity.Interpreter{Path: "/usr/bin/python3"},
	}
	rc := &rankingContext{
		profile: &entity.NotebookProfile{KernelSpec: &entity.ProfileKernelSpec{Name: "python3abcdef012345", DisplayName: "My Env"}},
	}
	assert.Equal(t, 1, rc.compare(verbatim, interp))
	assert.Equal(t, -1, rc.compare(interp, verbatim))
}

func TestCompareHashDominance(t *testing.T) {
	hashes := map[string]string{"interp-base": "hash-a", "interp-venv": "hash-b"}
	pool := testPool()
	base, venv := pool[0], pool[1]
	rc := &rankingContext{
		profile: &entity.NotebookProfile{
			KernelSpec:      &entity.ProfileKernelSpec{Name: "nonmatching"},
			InterpreterHash: "hash-b",
		},
		hashes: hashes,
	}

	// Neither name matches; venv wins purely on the cached-hash dominance
	// in the joint display-name/hash comparison.
	assert.Equal(t, 1, rc.compare(venv, base))
	assert.Equal(t, -1, rc.compare(base, venv))
}

func TestCompareDisagreeingEvidenceFallsBack(t *testing.T) {
	pool := testPool()
	base, venv := pool[0], pool[1]
	rc := &rankingContext{
		profile: &entity.NotebookProfile{
			// base matches on display name, venv on cached hash; the
			// measures disagree so the active candidate decides.
			KernelSpec:      &entity.ProfileKernelSpec{Name: "nonmatching", DisplayName: "Python 3.11"},
			InterpreterHash: "hash-b",
		},
		hashes: map[string]string{"interp-base": "hash-a", "interp-venv": "hash-b"},
		active: base,
	}
	assert.Equal(t, 1, rc.compare(base, venv))
	assert.Equal(t, -1, rc.compare(venv, base))
}
