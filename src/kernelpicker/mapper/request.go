package mapper

import (
	"encoding/json"

	"github.com/notebook-lsp/kernel-picker/src/kernelpicker/model"
	"go.lsp.dev/jsonrpc2"
)

func RequestToRankKernelsRequest(req jsonrpc2.Request) (*model.RankKernelsRequest, error) {
	params := model.RankKernelsRequest{}
	if err := json.Unmarshal(req.Params(), &params); err != nil {
		return nil, err
	}
	return &params, nil
}

func RequestToExactMatchRequest(req jsonrpc2.Request) (*model.ExactMatchRequest, error) {
	params := model.ExactMatchRequest{}
	if err := json.Unmarshal(req.Params(), &params); err != nil {
		return nil, err
	}
	return &params, nil
}

func RequestToPreferredKernelRequest(req jsonrpc2.Request) (*model.PreferredKernelRequest, error) {
	params := model.PreferredKernelRequest{}
	if err := json.Unmarshal(req.Params(), &params); err != nil {
		return nil, err
	}
	return &params, nil
}

func RequestToSetPreferredRemoteRequest(req jsonrpc2.Request) (*model.SetPreferredRemoteRequest, error) {
	params := model.SetPreferredRemoteRequest{}
	if err := json.Unmarshal(req.Params(), &params); err != nil {
		return nil, err
	}
	return &params, nil
}

func RequestToUpdateKernelsParams(req jsonrpc2.Request) (*model.UpdateKernelsParams, error) {
	params := model.UpdateKernelsParams{}
	if err := json.Unmarshal(req.Params(), &params); err != nil {
		return nil, err
	}
	return &params, nil
}

func RequestToUpdateInterpretersParams(req jsonrpc2.Request) (*model.UpdateInterpretersParams, error) {
	params := model.UpdateInterpretersParams{}
	if err := json.Unmarshal(req.Params(), &params); err != nil {
		return nil, err
	}
	return &params, nil
}

func RequestToSetActiveInterpreterParams(req jsonrpc2.Request) (*model.SetActiveInterpreterParams, error) {
	params := model.SetActiveInterpreterParams{}
	if err := json.Unmarshal(req.Params(), &params); err != nil {
		return nil, err
	}
	return &params, nil
}
