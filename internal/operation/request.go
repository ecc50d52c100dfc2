package operation

// Kind tags a request as an action or a function.
type Kind int

const (
	// KindAction marks an operation with side effects.
	KindAction Kind = iota
	// KindFunction marks a side-effect-free operation.
	KindFunction
)

// String returns the wire spelling of the kind.
func (k Kind) String() string {
	if k == KindFunction {
		return "function"
	}
	return "action"
}

// MarshalJSON writes the kind as its wire spelling.
func (k Kind) MarshalJSON() ([]byte, error) {
	return []byte(`"` + k.String() + `"`), nil
}

// ParameterType is the per-parameter wire metadata the endpoint needs to
// deserialize a value.
type ParameterType struct {
	TypeName           string `json:"typeName"`
	StructuralProperty int    `json:"structuralProperty"`
}

// Request is one operation call, ready for submission. BoundParameter is
// empty for unbound calls and "entity" when the call is bound to a record.
type Request struct {
	BoundParameter string                   `json:"boundParameter,omitempty"`
	Kind           Kind                     `json:"operationType"`
	Name           string                   `json:"operationName"`
	ParameterTypes map[string]ParameterType `json:"parameterTypes"`
	Parameters     map[string]any           `json:"parameters"`
}

// Response is what the endpoint returned: the HTTP-style status code and
// the raw body bytes.
type Response struct {
	Status int
	Body   []byte
}

// OK reports whether the response carries a success status.
func (r *Response) OK() bool {
	return r.Status >= 200 && r.Status < 300
}
