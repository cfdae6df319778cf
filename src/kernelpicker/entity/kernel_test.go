package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConnectionKinds(t *testing.T) {
	tests := []struct {
		name     string
		conn     KernelConnection
		wantKind ConnectionKind
		wantSpec bool
		wantInt  bool
	}{
		{
			name: "python interpreter connection",
			conn: &PythonKernelConnection{
				ID:          "a",
				KernelSpec:  &KernelSpec{Name: "python3"},
				Interpreter: &Interpreter{Path: "/usr/bin/python3"},
			},
			wantKind: KindPythonInterpreter,
			wantSpec: true,
			wantInt:  true,
		},
		{
			name: "local kernelspec connection without interpreter",
			conn: &LocalKernelSpecConnection{
				ID:         "b",
				KernelSpec: &KernelSpec{Name: "julia-1.9"},
			},
			wantKind: KindLocalKernelSpec,
			wantSpec: true,
		},
		{
			name: "remote kernelspec connection",
			conn: &RemoteKernelSpecConnection{
				ID:         "c",
				ServerID:   "server-1",
				KernelSpec: &KernelSpec{Name: "python3"},
			},
			wantKind: KindRemoteKernelSpec,
			wantSpec: true,
		},
		{
			name: "live remote kernel connection",
			conn: &LiveRemoteKernelConnection{
				ID:          "d",
				ServerID:    "server-1",
				KernelModel: &LiveKernelModel{ID: "session-1", Name: "python3"},
			},
			wantKind: KindLiveRemoteKernel,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantKind, tt.conn.Kind())
			assert.NotEmpty(t, tt.conn.ConnectionID())
			assert.Equal(t, tt.wantSpec, tt.conn.GetKernelSpec() != nil)
			assert.Equal(t, tt.wantInt, tt.conn.GetInterpreter() != nil)
		})
	}
}

func TestEffectiveName(t *testing.T) {
	tests := []struct {
		name string
		spec *KernelSpec
		want string
	}{
		{
			name: "nil spec",
			spec: nil,
			want: "",
		},
		{
			name: "plain spec uses raw name",
			spec: &KernelSpec{Name: "python3"},
			want: "python3",
		},
		{
			name: "self-registered spec uses original directory name",
			spec: &KernelSpec{
				Name: "python38664bitenvvenv",
				Metadata: &KernelSpecMetadata{
					OriginalSpecFile: "/home/u/.local/share/jupyter/kernels/sampleEnv/kernel.json",
				},
			},
			want: "sampleEnv",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.spec.EffectiveName())
		})
	}
}

func TestIsCustomSelfRegistered(t *testing.T) {
	defaultNamed := &KernelSpec{
		Name: "python3",
		Metadata: &KernelSpecMetadata{
			OriginalSpecFile: "/kernels/python3/kernel.json",
		},
	}
	custom := &KernelSpec{
		Name: "python3",
		Metadata: &KernelSpecMetadata{
			OriginalSpecFile: "/kernels/myCustomKernel/kernel.json",
		},
	}
	plain := &KernelSpec{Name: "myCustomKernel"}

	assert.False(t, defaultNamed.IsCustomSelfRegistered())
	assert.True(t, custom.IsCustomSelfRegistered())
	assert.False(t, plain.IsCustomSelfRegistered())
	assert.True(t, custom.IsSelfRegistered())
	assert.False(t, plain.IsSelfRegistered())
}
