// Package entity contains the domain types for the kernel-picker service.
package entity

import (
	"path/filepath"

	"go.lsp.dev/protocol"
)

// ConnectionKind discriminates the KernelConnection variants.
type ConnectionKind string

const (
	// KindPythonInterpreter launches a kernel directly from a local Python interpreter.
	KindPythonInterpreter ConnectionKind = "pythonInterpreter"
	// KindLocalKernelSpec launches a kernel from a kernelspec found on disk.
	KindLocalKernelSpec ConnectionKind = "localKernelSpec"
	// KindRemoteKernelSpec launches a kernel from a kernelspec hosted by a remote server.
	KindRemoteKernelSpec ConnectionKind = "remoteKernelSpec"
	// KindLiveRemoteKernel attaches to an already running kernel session on a remote server.
	KindLiveRemoteKernel ConnectionKind = "liveRemoteKernel"
)

// KernelConnection is a candidate execution backend capable of running
// notebook code. Connections are immutable inputs to ranking; discovery owns
// their construction. Exactly the four variants below implement it.
type KernelConnection interface {
	// ConnectionID is unique within a ranking call.
	ConnectionID() string
	Kind() ConnectionKind
	// GetInterpreter returns the associated interpreter, or nil.
	GetInterpreter() *Interpreter
	// GetKernelSpec returns the launch spec, or nil for live connections.
	GetKernelSpec() *KernelSpec

	isKernelConnection()
}

// PythonKernelConnection wraps a local interpreter and a spec synthesized
// from it.
type PythonKernelConnection struct {
	ID          string
	KernelSpec  *KernelSpec
	Interpreter *Interpreter
}

// LocalKernelSpecConnection wraps a kernelspec found on disk. The interpreter
// is optional and only present when the spec could be tied back to one.
type LocalKernelSpecConnection struct {
	ID          string
	KernelSpec  *KernelSpec
	Interpreter *Interpreter
}

// RemoteKernelSpecConnection wraps a kernelspec reachable only through a
// remote server.
type RemoteKernelSpecConnection struct {
	ID          string
	ServerID    string
	BaseURL     string
	KernelSpec  *KernelSpec
	Interpreter *Interpreter
}

// LiveRemoteKernelConnection represents an already running kernel session on
// a remote server, addressable by session id rather than by spec name.
type LiveRemoteKernelConnection struct {
	ID          string
	ServerID    string
	KernelModel *LiveKernelModel
}

// LiveKernelModel describes a running remote session.
type LiveKernelModel struct {
	ID                  string
	Name                string
	DisplayName         string
	NumberOfConnections int
}

func (c *PythonKernelConnection) ConnectionID() string         { return c.ID }
func (c *PythonKernelConnection) Kind() ConnectionKind         { return KindPythonInterpreter }
func (c *PythonKernelConnection) GetInterpreter() *Interpreter { return c.Interpreter }
func (c *PythonKernelConnection) GetKernelSpec() *KernelSpec   { return c.KernelSpec }
func (c *PythonKernelConnection) isKernelConnection()          {}

func (c *LocalKernelSpecConnection) ConnectionID() string         { return c.ID }
func (c *LocalKernelSpecConnection) Kind() ConnectionKind         { return KindLocalKernelSpec }
func (c *LocalKernelSpecConnection) GetInterpreter() *Interpreter { return c.Interpreter }
func (c *LocalKernelSpecConnection) GetKernelSpec() *KernelSpec   { return c.KernelSpec }
func (c *LocalKernelSpecConnection) isKernelConnection()          {}

func (c *RemoteKernelSpecConnection) ConnectionID() string         { return c.ID }
func (c *RemoteKernelSpecConnection) Kind() ConnectionKind         { return KindRemoteKernelSpec }
func (c *RemoteKernelSpecConnection) GetInterpreter() *Interpreter { return c.Interpreter }
func (c *RemoteKernelSpecConnection) GetKernelSpec() *KernelSpec   { return c.KernelSpec }
func (c *RemoteKernelSpecConnection) isKernelConnection()          {}

func (c *LiveRemoteKernelConnection) ConnectionID() string         { return c.ID }
func (c *LiveRemoteKernelConnection) Kind() ConnectionKind         { return KindLiveRemoteKernel }
func (c *LiveRemoteKernelConnection) GetInterpreter() *Interpreter { return nil }
func (c *LiveRemoteKernelConnection) GetKernelSpec() *KernelSpec   { return nil }
func (c *LiveRemoteKernelConnection) isKernelConnection()          {}

// KernelSpec is a named descriptor of how to launch an execution backend.
type KernelSpec struct {
	// Name is an opaque identifier, often auto-generated and unstable.
	Name        string
	DisplayName string
	Language    protocol.LanguageIdentifier
	Executable  string
	Argv        []string
	Metadata    *KernelSpecMetadata
}

// KernelSpecMetadata carries extension-owned bookkeeping persisted inside a
// kernelspec file.
type KernelSpecMetadata struct {
	// Interpreter is a snapshot embedded at registration time, used to
	// recover interpreter identity after serialization.
	Interpreter *Interpreter
	// OriginalSpecFile points at the spec file this spec was registered
	// from when the extension registered the spec itself.
	OriginalSpecFile    string
	OriginalDisplayName string
}

// EffectiveName normalizes self-registered specs by preferring the containing
// directory name of the original spec file over the raw (generated) name.
func (s *KernelSpec) EffectiveName() string {
	if s == nil {
		return ""
	}
	if s.Metadata != nil && s.Metadata.OriginalSpecFile != "" {
		return filepath.Base(filepath.Dir(s.Metadata.OriginalSpecFile))
	}
	return s.Name
}

// IsSelfRegistered reports whether the spec was registered by this tool.
func (s *KernelSpec) IsSelfRegistered() bool {
	return s != nil && s.Metadata != nil && s.Metadata.OriginalSpecFile != ""
}

// IsCustomSelfRegistered reports whether the spec was registered by this tool
// for a custom, non-default kernelspec. Such specs represent explicit user
// intent and must not be treated as a plain interpreter launch.
func (s *KernelSpec) IsCustomSelfRegistered() bool {
	return s.IsSelfRegistered() && !IsDefaultKernelSpecName(s.EffectiveName())
}

// Interpreter identifies an installed interpreter environment.
type Interpreter struct {
	// Path is the canonical filesystem location of the interpreter binary.
	Path        string
	DisplayName string
	// EnvName is the virtual/conda environment name, when any.
	EnvName   string
	Version   *InterpreterVersion
	SysPrefix string
}

// InterpreterVersion is a plain major/minor/patch triple.
type InterpreterVersion struct {
	Major int
	Minor int
	Patch int
}
