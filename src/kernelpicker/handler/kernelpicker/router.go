package kernelpicker

import (
	"context"

	"github.com/gofrs/uuid"
	"github.com/notebook-lsp/kernel-picker/src/kernelpicker/controller/preference"
	"github.com/notebook-lsp/kernel-picker/src/kernelpicker/controller/ranking"
	"github.com/notebook-lsp/kernel-picker/src/kernelpicker/gateway/discovery"
	"github.com/notebook-lsp/kernel-picker/src/kernelpicker/gateway/interpreters"
	tally "github.com/uber-go/tally/v4"
	"go.lsp.dev/jsonrpc2"
	"go.uber.org/zap"
)

// Methods exposed on the kernel-picker surface. The update* methods are
// notifications the client sends to refresh the server-side snapshots.
const (
	MethodRankKernels          = "kernelPicker/rank"
	MethodExactMatch           = "kernelPicker/exactMatch"
	MethodPreferredKernel      = "kernelPicker/preferredKernel"
	MethodSetPreferredRemote   = "kernelPicker/setPreferredRemote"
	MethodUpdateKernels        = "kernelPicker/updateKernels"
	MethodUpdateInterpreters   = "kernelPicker/updateInterpreters"
	MethodSetActiveInterpreter = "kernelPicker/setActiveInterpreter"

	// MethodSpecsChanged is an outbound notification pushed to the client
	// when a watched kernelspec path changes.
	MethodSpecsChanged = "kernelPicker/specsChanged"
)

type jsonRPCRouter struct {
	logger       *zap.SugaredLogger
	stats        tally.Scope
	uuid         uuid.UUID
	ranking      ranking.Controller
	preference   preference.Controller
	discovery    discovery.Gateway
	interpreters interpreters.Gateway
}

// HandleReq handles routing for a single request.
func (r *jsonRPCRouter) HandleReq(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	switch req.Method() {
	case MethodRankKernels:
		return r.RankKernels(ctx, reply, req)

	case MethodExactMatch:
		return r.ExactMatch(ctx, reply, req)

	case MethodPreferredKernel:
		return r.PreferredKernel(ctx, reply, req)

	case MethodSetPreferredRemote:
		return r.SetPreferredRemote(ctx, reply, req)

	case MethodUpdateKernels:
		return r.UpdateKernels(ctx, reply, req)

	case MethodUpdateInterpreters:
		return r.UpdateInterpreters(ctx, reply, req)

	case MethodSetActiveInterpreter:
		return r.SetActiveInterpreter(ctx, reply, req)

	default:
		return jsonrpc2.MethodNotFoundHandler(ctx, reply, req)
	}
}

func (r *jsonRPCRouter) UUID() uuid.UUID {
	return r.uuid
}
