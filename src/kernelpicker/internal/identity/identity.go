// Package identity computes stable content hashes for interpreter
// identities. Hashes are derived from the canonicalized absolute path so two
// references to the same interpreter compare equal regardless of how the
// path was spelled.
package identity

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/notebook-lsp/kernel-picker/src/kernelpicker/entity"
	"go.uber.org/multierr"
)

var errNoInterpreterPath = errors.New("interpreter has no path")

// Hash returns the content hash of an interpreter identity. Deterministic:
// the same interpreter always yields the same hash. It fails when the
// interpreter has no path or the path cannot be canonicalized.
func Hash(interp *entity.Interpreter) (string, error) {
	if interp == nil || interp.Path == "" {
		return "", errNoInterpreterPath
	}
	path, err := canonicalPath(interp.Path)
	if err != nil {
		return "", fmt.Errorf("canonicalizing interpreter path %q: %w", interp.Path, err)
	}
	sum := sha256.Sum256([]byte(path))
	return hex.EncodeToString(sum[:]), nil
}

// Same reports whether two interpreters refer to the same environment:
// content hashes match and the environment names match.
func Same(a, b *entity.Interpreter) bool {
	if a == nil || b == nil {
		return false
	}
	if a.EnvName != b.EnvName {
		return false
	}
	ha, errA := Hash(a)
	hb, errB := Hash(b)
	if errA != nil || errB != nil {
		return false
	}
	return ha == hb
}

// ResolveHashes computes the interpreter hash for every candidate that
// carries an interpreter, one hash per distinct path. The returned map is
// keyed by connection id; candidates whose hash could not be computed are
// absent from it and the failures come back aggregated. The error never
// blocks ranking: callers log it and rank those candidates as if no
// interpreter were attached.
func ResolveHashes(ctx context.Context, conns []entity.KernelConnection) (map[string]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	paths := make(map[string]struct{})
	for _, conn := range conns {
		if interp := conn.GetInterpreter(); interp != nil && interp.Path != "" {
			paths[interp.Path] = struct{}{}
		}
	}

	var (
		mu     sync.Mutex
		wg     sync.WaitGroup
		byPath = make(map[string]string, len(paths))
		errs   = make([]error, 0)
	)
	for path := range paths {
		wg.Add(1)
		go func(path string) {
			defer wg.Done()
			hash, err := Hash(&entity.Interpreter{Path: path})
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				errs = append(errs, fmt.Errorf("hash interpreter %q: %w", path, err))
				return
			}
			byPath[path] = hash
		}(path)
	}
	wg.Wait()

	hashes := make(map[string]string, len(conns))
	for _, conn := range conns {
		interp := conn.GetInterpreter()
		if interp == nil || interp.Path == "" {
			continue
		}
		if hash, ok := byPath[interp.Path]; ok {
			hashes[conn.ConnectionID()] = hash
		}
	}
	return hashes, multierr.Combine(errs...)
}

// canonicalPath resolves a path to one stable spelling. Paths that do not
// exist yet hash by their cleaned absolute spelling; unreadable paths fail.
func canonicalPath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	resolved, err := filepath.EvalSymlinks(abs)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		resolved = filepath.Clean(abs)
	case err != nil:
		return "", err
	}

	if runtime.GOOS == "windows" {
		resolved = strings.ToLower(filepath.ToSlash(resolved))
	}
	return resolved, nil
}
