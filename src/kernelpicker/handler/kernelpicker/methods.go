package kernelpicker

import (
	"context"

	"github.com/notebook-lsp/kernel-picker/src/kernelpicker/entity"
	"github.com/notebook-lsp/kernel-picker/src/kernelpicker/mapper"
	"github.com/notebook-lsp/kernel-picker/src/kernelpicker/model"
	"go.lsp.dev/jsonrpc2"
	"go.lsp.dev/uri"
)

func (r *jsonRPCRouter) RankKernels(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	params, err := mapper.RequestToRankKernelsRequest(req)
	if err != nil {
		return reply(ctx, nil, err)
	}
	candidates, err := mapper.ModelsToKernelConnections(params.Candidates)
	if err != nil {
		return reply(ctx, nil, err)
	}
	profile, err := profileFromRaw(params.Metadata)
	if err != nil {
		return reply(ctx, nil, err)
	}

	r.stats.Counter("rank").Inc(1)
	ranked, err := r.ranking.RankKernels(ctx, uri.URI(params.Resource), candidates, profile,
		mapper.ModelToInterpreter(params.PreferredInterpreter), params.PreferredRemoteKernelID)
	if err != nil {
		return reply(ctx, nil, err)
	}
	return reply(ctx, &model.RankKernelsResponse{Kernels: mapper.KernelConnectionsToModels(ranked)}, nil)
}

func (r *jsonRPCRouter) ExactMatch(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	params, err := mapper.RequestToExactMatchRequest(req)
	if err != nil {
		return reply(ctx, nil, err)
	}
	candidate, err := mapper.ModelToKernelConnection(params.Candidate)
	if err != nil {
		return reply(ctx, nil, err)
	}
	profile, err := profileFromRaw(params.Metadata)
	if err != nil {
		return reply(ctx, nil, err)
	}

	exact := r.ranking.IsExactMatch(candidate, profile, params.PreferredRemoteKernelID)
	return reply(ctx, &model.ExactMatchResponse{Exact: exact}, nil)
}

func (r *jsonRPCRouter) PreferredKernel(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	params, err := mapper.RequestToPreferredKernelRequest(req)
	if err != nil {
		return reply(ctx, nil, err)
	}

	rec, err := r.preference.PreferredKernel(ctx, uri.URI(params.Resource), params.Metadata)
	if err != nil {
		return reply(ctx, nil, err)
	}
	resp := &model.PreferredKernelResponse{Exact: rec.Exact}
	if rec.Connection != nil {
		resp.Kernel = mapper.KernelConnectionToModel(rec.Connection)
	}
	return reply(ctx, resp, nil)
}

func (r *jsonRPCRouter) SetPreferredRemote(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	params, err := mapper.RequestToSetPreferredRemoteRequest(req)
	if err != nil {
		return reply(ctx, nil, err)
	}

	err = r.preference.SetPreferredRemoteKernel(ctx, uri.URI(params.Resource), params.KernelID)
	return reply(ctx, nil, err)
}

func (r *jsonRPCRouter) UpdateKernels(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	params, err := mapper.RequestToUpdateKernelsParams(req)
	if err != nil {
		return reply(ctx, nil, err)
	}
	conns, err := mapper.ModelsToKernelConnections(params.Kernels)
	if err != nil {
		return reply(ctx, nil, err)
	}

	err = r.discovery.ReplaceKernelConnections(ctx, conns)
	return reply(ctx, nil, err)
}

func (r *jsonRPCRouter) UpdateInterpreters(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	params, err := mapper.RequestToUpdateInterpretersParams(req)
	if err != nil {
		return reply(ctx, nil, err)
	}

	interps := make([]*entity.Interpreter, 0, len(params.Interpreters))
	for _, m := range params.Interpreters {
		interps = append(interps, mapper.ModelToInterpreter(m))
	}
	err = r.interpreters.SetInterpreters(ctx, interps)
	return reply(ctx, nil, err)
}

func (r *jsonRPCRouter) SetActiveInterpreter(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	params, err := mapper.RequestToSetActiveInterpreterParams(req)
	if err != nil {
		return reply(ctx, nil, err)
	}

	err = r.interpreters.SetActiveInterpreter(ctx, uri.URI(params.Resource), mapper.ModelToInterpreter(params.Interpreter))
	return reply(ctx, nil, err)
}

// profileFromRaw parses optional raw notebook metadata into a profile. No
// metadata means an unconstrained profile, never an error.
func profileFromRaw(raw []byte) (*entity.NotebookProfile, error) {
	if len(raw) == 0 {
		return &entity.NotebookProfile{}, nil
	}
	meta, err := mapper.ParseNotebookMetadata(raw)
	if err != nil {
		return nil, err
	}
	return mapper.NotebookMetadataToProfile(meta), nil
}
