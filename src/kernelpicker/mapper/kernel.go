package mapper

import (
	"fmt"

	"github.com/notebook-lsp/kernel-picker/src/kernelpicker/entity"
	"github.com/notebook-lsp/kernel-picker/src/kernelpicker/model"
	"go.lsp.dev/protocol"
)

// ModelToKernelConnection maps a wire connection to its domain variant.
func ModelToKernelConnection(m *model.KernelConnection) (entity.KernelConnection, error) {
	if m == nil {
		return nil, fmt.Errorf("nil kernel connection")
	}

	switch entity.ConnectionKind(m.Kind) {
	case entity.KindPythonInterpreter:
		return &entity.PythonKernelConnection{
			ID:          m.ID,
			KernelSpec:  modelToKernelSpec(m.KernelSpec),
			Interpreter: modelToInterpreter(m.Interpreter),
		}, nil
	case entity.KindLocalKernelSpec:
		return &entity.LocalKernelSpecConnection{
			ID:          m.ID,
			KernelSpec:  modelToKernelSpec(m.KernelSpec),
			Interpreter: modelToInterpreter(m.Interpreter),
		}, nil
	case entity.KindRemoteKernelSpec:
		return &entity.RemoteKernelSpecConnection{
			ID:          m.ID,
			ServerID:    m.ServerID,
			BaseURL:     m.BaseURL,
			KernelSpec:  modelToKernelSpec(m.KernelSpec),
			Interpreter: modelToInterpreter(m.Interpreter),
		}, nil
	case entity.KindLiveRemoteKernel:
		return &entity.LiveRemoteKernelConnection{
			ID:          m.ID,
			ServerID:    m.ServerID,
			KernelModel: modelToLiveKernel(m.KernelModel),
		}, nil
	default:
		return nil, fmt.Errorf("unknown kernel connection kind %q", m.Kind)
	}
}

// ModelsToKernelConnections maps a slice of wire connections, failing on the
// first unknown kind.
func ModelsToKernelConnections(ms []*model.KernelConnection) ([]entity.KernelConnection, error) {
	conns := make([]entity.KernelConnection, 0, len(ms))
	for _, m := range ms {
		conn, err := ModelToKernelConnection(m)
		if err != nil {
			return nil, err
		}
		conns = append(conns, conn)
	}
	return conns, nil
}

// KernelConnectionToModel maps a domain connection back to its wire form.
func KernelConnectionToModel(conn entity.KernelConnection) *model.KernelConnection {
	if conn == nil {
		return nil
	}

	m := &model.KernelConnection{
		Kind:        string(conn.Kind()),
		ID:          conn.ConnectionID(),
		KernelSpec:  kernelSpecToModel(conn.GetKernelSpec()),
		Interpreter: interpreterToModel(conn.GetInterpreter()),
	}
	switch c := conn.(type) {
	case *entity.RemoteKernelSpecConnection:
		m.ServerID = c.ServerID
		m.BaseURL = c.BaseURL
	case *entity.LiveRemoteKernelConnection:
		m.ServerID = c.ServerID
		m.KernelModel = liveKernelToModel(c.KernelModel)
	}
	return m
}

// KernelConnectionsToModels maps a ranked slice back to wire form, preserving
// order.
func KernelConnectionsToModels(conns []entity.KernelConnection) []*model.KernelConnection {
	ms := make([]*model.KernelConnection, 0, len(conns))
	for _, conn := range conns {
		ms = append(ms, KernelConnectionToModel(conn))
	}
	return ms
}

// ModelToInterpreter maps a wire interpreter to its entity form.
func ModelToInterpreter(m *model.Interpreter) *entity.Interpreter {
	return modelToInterpreter(m)
}

func modelToKernelSpec(m *model.KernelSpecFile) *entity.KernelSpec {
	if m == nil {
		return nil
	}
	spec := &entity.KernelSpec{
		Name:        m.Name,
		DisplayName: m.DisplayName,
		Language:    protocol.LanguageIdentifier(m.Language),
		Executable:  m.Executable,
		Argv:        m.Argv,
	}
	if m.Metadata != nil {
		spec.Metadata = &entity.KernelSpecMetadata{
			Interpreter:         modelToInterpreter(m.Metadata.Interpreter),
			OriginalSpecFile:    m.Metadata.OriginalSpecFile,
			OriginalDisplayName: m.Metadata.OriginalDisplayName,
		}
	}
	return spec
}

func kernelSpecToModel(spec *entity.KernelSpec) *model.KernelSpecFile {
	if spec == nil {
		return nil
	}
	m := &model.KernelSpecFile{
		Name:        spec.Name,
		DisplayName: spec.DisplayName,
		Language:    string(spec.Language),
		Executable:  spec.Executable,
		Argv:        spec.Argv,
	}
	if spec.Metadata != nil {
		m.Metadata = &model.KernelSpecMetadata{
			Interpreter:         interpreterToModel(spec.Metadata.Interpreter),
			OriginalSpecFile:    spec.Metadata.OriginalSpecFile,
			OriginalDisplayName: spec.Metadata.OriginalDisplayName,
		}
	}
	return m
}

func modelToInterpreter(m *model.Interpreter) *entity.Interpreter {
	if m == nil {
		return nil
	}
	interp := &entity.Interpreter{
		Path:        m.Path,
		DisplayName: m.DisplayName,
		EnvName:     m.EnvName,
		SysPrefix:   m.SysPrefix,
	}
	if m.Version != nil {
		interp.Version = &entity.InterpreterVersion{
			Major: m.Version.Major,
			Minor: m.Version.Minor,
			Patch: m.Version.Patch,
		}
	}
	return interp
}

func interpreterToModel(interp *entity.Interpreter) *model.Interpreter {
	if interp == nil {
		return nil
	}
	m := &model.Interpreter{
		Path:        interp.Path,
		DisplayName: interp.DisplayName,
		EnvName:     interp.EnvName,
		SysPrefix:   interp.SysPrefix,
	}
	if interp.Version != nil {
		m.Version = &model.Version{
			Major: interp.Version.Major,
			Minor: interp.Version.Minor,
			Patch: interp.Version.Patch,
		}
	}
	return m
}

func modelToLiveKernel(m *model.LiveKernelModel) *entity.LiveKernelModel {
	if m == nil {
		return nil
	}
	return &entity.LiveKernelModel{
		ID:                  m.ID,
		Name:                m.Name,
		DisplayName:         m.DisplayName,
		NumberOfConnections: m.NumberOfConnections,
	}
}

func liveKernelToModel(lk *entity.LiveKernelModel) *model.LiveKernelModel {
	if lk == nil {
		return nil
	}
	return &model.LiveKernelModel{
		ID:                  lk.ID,
		Name:                lk.Name,
		DisplayName:         lk.DisplayName,
		NumberOfConnections: lk.NumberOfConnections,
	}
}
