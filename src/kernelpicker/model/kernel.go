package model

// KernelConnection is the wire form of a candidate connection. Kind selects
// which optional blocks are populated.
type KernelConnection struct {
	Kind        string           `json:"kind"`
	ID          string           `json:"id"`
	ServerID    string           `json:"serverId,omitempty"`
	BaseURL     string           `json:"baseUrl,omitempty"`
	KernelSpec  *KernelSpecFile  `json:"kernelSpec,omitempty"`
	Interpreter *Interpreter     `json:"interpreter,omitempty"`
	KernelModel *LiveKernelModel `json:"kernelModel,omitempty"`
}

// KernelSpecFile is the wire form of a kernelspec, following the on-disk
// kernel.json field names.
type KernelSpecFile struct {
	Name        string              `json:"name"`
	DisplayName string              `json:"display_name,omitempty"`
	Language    string              `json:"language,omitempty"`
	Executable  string              `json:"executable,omitempty"`
	Argv        []string            `json:"argv,omitempty"`
	Metadata    *KernelSpecMetadata `json:"metadata,omitempty"`
}

// KernelSpecMetadata is the extension-owned metadata block of a kernelspec.
type KernelSpecMetadata struct {
	Interpreter         *Interpreter `json:"interpreter,omitempty"`
	OriginalSpecFile    string       `json:"originalSpecFile,omitempty"`
	OriginalDisplayName string       `json:"originalDisplayName,omitempty"`
}

// Interpreter is the wire form of an interpreter environment.
type Interpreter struct {
	Path        string   `json:"path"`
	DisplayName string   `json:"displayName,omitempty"`
	EnvName     string   `json:"envName,omitempty"`
	Version     *Version `json:"version,omitempty"`
	SysPrefix   string   `json:"sysPrefix,omitempty"`
}

// Version is a major/minor/patch triple.
type Version struct {
	Major int `json:"major"`
	Minor int `json:"minor"`
	Patch int `json:"patch"`
}

// LiveKernelModel is the wire form of a running remote session.
type LiveKernelModel struct {
	ID                  string `json:"id"`
	Name                string `json:"name,omitempty"`
	DisplayName         string `json:"displayName,omitempty"`
	NumberOfConnections int    `json:"numberOfConnections,omitempty"`
}
