package model

import "encoding/json"

// RankKernelsRequest asks for the full ranked candidate order for a
// notebook. Metadata is the raw nbformat metadata block; absent means an
// unconstrained profile.
type RankKernelsRequest struct {
	Resource                string              `json:"resource"`
	Metadata                json.RawMessage     `json:"metadata,omitempty"`
	Candidates              []*KernelConnection `json:"candidates"`
	PreferredInterpreter    *Interpreter        `json:"preferredInterpreter,omitempty"`
	PreferredRemoteKernelID string              `json:"preferredRemoteKernelId,omitempty"`
}

// RankKernelsResponse carries the candidates sorted ascending, best last.
type RankKernelsResponse struct {
	Kernels []*KernelConnection `json:"kernels"`
}

// ExactMatchRequest asks whether a single candidate perfectly matches the
// notebook's profile.
type ExactMatchRequest struct {
	Resource                string            `json:"resource"`
	Metadata                json.RawMessage   `json:"metadata,omitempty"`
	Candidate               *KernelConnection `json:"candidate"`
	PreferredRemoteKernelID string            `json:"preferredRemoteKernelId,omitempty"`
}

// ExactMatchResponse reports the verdict.
type ExactMatchResponse struct {
	Exact bool `json:"exact"`
}

// PreferredKernelRequest asks for the recommended kernel for a notebook,
// ranked over the current discovery snapshot.
type PreferredKernelRequest struct {
	Resource string          `json:"resource"`
	Metadata json.RawMessage `json:"metadata,omitempty"`
}

// PreferredKernelResponse carries the recommendation, nil when no candidate
// qualifies.
type PreferredKernelResponse struct {
	Kernel *KernelConnection `json:"kernel,omitempty"`
	Exact  bool              `json:"exact"`
}

// SetPreferredRemoteRequest pins (or, with an empty id, clears) the live
// remote kernel for a notebook.
type SetPreferredRemoteRequest struct {
	Resource string `json:"resource"`
	KernelID string `json:"kernelId,omitempty"`
}

// UpdateKernelsParams replaces the discovered candidate snapshot. Sent as a
// notification whenever client-side discovery finishes.
type UpdateKernelsParams struct {
	Kernels []*KernelConnection `json:"kernels"`
}

// UpdateInterpretersParams replaces the known interpreter snapshot.
type UpdateInterpretersParams struct {
	Interpreters []*Interpreter `json:"interpreters"`
}

// SpecsChangedParams notifies the client that a watched kernelspec path
// changed and discovery should be re-run.
type SpecsChangedParams struct {
	Path string `json:"path"`
}

// SetActiveInterpreterParams records the interpreter active for a resource.
// A nil interpreter clears it.
type SetActiveInterpreterParams struct {
	Resource    string       `json:"resource"`
	Interpreter *Interpreter `json:"interpreter,omitempty"`
}
