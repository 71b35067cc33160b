package core

import "log/slog"

// ParamType enumerates supported parameter value kinds.
type ParamType string

const (
	// ParamTypeInt denotes integer-valued parameters.
	ParamTypeInt ParamType = "int"
	// ParamTypeString denotes free-form text parameters.
	ParamTypeString ParamType = "string"
)

// Parameter describes a single tunable value of a run.
type Parameter struct {
	Key   string
	Label string
	Type  ParamType
	Value string
}

// ParameterGroup clusters related parameters for presentation purposes.
type ParameterGroup struct {
	Name   string
	Params []Parameter
}

// ParameterSnapshot captures the effective settings of a run.
type ParameterSnapshot struct {
	Groups []ParameterGroup
}

// LogValue renders the snapshot as nested slog groups keyed by parameter key.
func (s ParameterSnapshot) LogValue() slog.Value {
	groups := make([]slog.Attr, 0, len(s.Groups))
	for _, g := range s.Groups {
		attrs := make([]any, 0, len(g.Params))
		for _, p := range g.Params {
			attrs = append(attrs, slog.String(p.Key, p.Value))
		}
		groups = append(groups, slog.Group(g.Name, attrs...))
	}
	return slog.GroupValue(groups...)
}
