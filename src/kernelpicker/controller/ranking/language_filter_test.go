package ranking

import (
	"testing"

	"github.com/notebook-lsp/kernel-picker/src/kernelpicker/entity"
	"github.com/stretchr/testify/assert"
)

func TestFilterByLanguage(t *testing.T) {
	python := &entity.PythonKernelConnection{
		ID:          "python",
		KernelSpec:  &entity.KernelSpec{Name: "python3", Language: "python"},
		Interpreter: &entity.Interpreter{Path: "/usr/bin/python3"},
	}
	julia := &entity.LocalKernelSpecConnection{
		ID:         "julia",
		KernelSpec: &entity.KernelSpec{Name: "julia", Language: "julia"},
	}
	unspecified := &entity.LocalKernelSpecConnection{
		ID:         "unspecified",
		KernelSpec: &entity.KernelSpec{Name: "mystery"},
	}
	live := &entity.LiveRemoteKernelConnection{ID: "live", ServerID: "hub"}
	all := []entity.KernelConnection{python, julia, unspecified, live}

	tests := []struct {
		name     string
		language string
		profile  *entity.NotebookProfile
		want     []string
	}{
		{
			name:     "no target keeps everything",
			language: "",
			want:     []string{"python", "julia", "unspecified", "live"},
		},
		{
			name:     "python target drops everything not provably python",
			language: "python",
			want:     []string{"python", "live"},
		},
		{
			name:     "non-python target keeps unspecified languages and live sessions",
			language: "julia",
			want:     []string{"julia", "unspecified", "live"},
		},
		{
			name:     "unmatchable target keeps only weak candidates",
			language: "java",
			want:     []string{"unspecified", "live"},
		},
		{
			name:     "explicit profile name overrides a language mismatch",
			language: "java",
			profile:  &entity.NotebookProfile{KernelSpec: &entity.ProfileKernelSpec{Name: "julia"}},
			want:     []string{"julia", "unspecified", "live"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := filterByLanguage(all, tt.language, tt.profile)
			ids := make([]string, 0, len(got))
			for _, conn := range got {
				ids = append(ids, conn.ConnectionID())
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}
