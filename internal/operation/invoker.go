package operation

import (
	"context"
	"fmt"
	"time"

	"github.com/goccy/go-json"

	"github.com/vk/formbridge/internal/ctxlog"
	"github.com/vk/formbridge/internal/params"
	"github.com/vk/formbridge/internal/wiretype"
)

// boundParameterName is the fixed name of the synthetic parameter carrying
// the record an operation is invoked on.
const boundParameterName = "entity"

// Endpoint submits an assembled request to the platform and returns its
// response. Implementations must not retry; the invoker's callers own all
// failure policy.
type Endpoint interface {
	Execute(ctx context.Context, req *Request) (*Response, error)
}

// Invoker builds, validates and submits operation requests.
type Invoker struct {
	endpoint  Endpoint
	validator *params.Validator
}

// NewInvoker returns an invoker submitting through endpoint and validating
// against registry.
func NewInvoker(endpoint Endpoint, registry *wiretype.Registry) *Invoker {
	return &Invoker{
		endpoint:  endpoint,
		validator: params.NewValidator(registry),
	}
}

// ExecuteAction invokes the named action. A non-nil bound reference makes
// the call bound: it is appended as a synthetic "entity" parameter.
func (inv *Invoker) ExecuteAction(ctx context.Context, name string, ps []params.Parameter, bound *params.EntityRef) (any, error) {
	return inv.invoke(ctx, KindAction, name, ps, bound)
}

// ExecuteFunction invokes the named function, with the same binding rules
// as ExecuteAction.
func (inv *Invoker) ExecuteFunction(ctx context.Context, name string, ps []params.Parameter, bound *params.EntityRef) (any, error) {
	return inv.invoke(ctx, KindFunction, name, ps, bound)
}

func (inv *Invoker) invoke(ctx context.Context, kind Kind, name string, ps []params.Parameter, bound *params.EntityRef) (any, error) {
	logger := ctxlog.FromContext(ctx)

	req := &Request{
		Kind:           kind,
		Name:           name,
		ParameterTypes: make(map[string]ParameterType, len(ps)+1),
		Parameters:     make(map[string]any, len(ps)+1),
	}

	if bound != nil {
		for _, p := range ps {
			if p.Name == boundParameterName {
				return nil, fmt.Errorf("%s %q: parameter %q collides with the bound entity parameter", kind, name, boundParameterName)
			}
		}
		ps = append(ps, params.Parameter{
			Name:  boundParameterName,
			Kind:  wiretype.KindEntityReference,
			Value: *bound,
		})
		req.BoundParameter = boundParameterName
	}

	for _, p := range ps {
		desc, err := inv.validator.Validate(p)
		if err != nil {
			return nil, fmt.Errorf("%s %q: %w", kind, name, err)
		}
		req.ParameterTypes[p.Name] = ParameterType{
			TypeName:           desc.WireName,
			StructuralProperty: int(desc.Struct),
		}
		req.Parameters[p.Name] = wireValue(p.Value)
	}

	logger.Debug("Submitting operation request.", "kind", kind.String(), "operation", name, "parameters", len(req.Parameters))

	resp, err := inv.endpoint.Execute(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("%s %q: %w", kind, name, err)
	}
	if !resp.OK() {
		return nil, fmt.Errorf("%s %q: endpoint returned status %d", kind, name, resp.Status)
	}

	logger.Debug("Operation request succeeded.", "operation", name, "status", resp.Status)
	return parseBody(resp), nil
}

// wireValue converts a validated parameter value into its wire form. Dates
// travel as RFC 3339 strings; everything else is already wire-shaped.
func wireValue(v any) any {
	switch val := v.(type) {
	case time.Time:
		return val.Format(time.RFC3339)
	case *params.EntityRef:
		return *val
	default:
		return v
	}
}

// parseBody decodes the response body as JSON, falling back to the raw
// bytes when the body is not valid JSON. An empty body yields nil.
func parseBody(resp *Response) any {
	if len(resp.Body) == 0 {
		return nil
	}
	var parsed any
	if err := json.Unmarshal(resp.Body, &parsed); err != nil {
		return resp.Body
	}
	return parsed
}
