package config

import (
	"strconv"

	"lifegrid/internal/core"
)

// Parameters describes the effective settings for logging and inspection.
func (c Config) Parameters() core.ParameterSnapshot {
	addr := c.MetricsAddr
	if addr == "" {
		addr = "off"
	}
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "markers",
			Params: []core.Parameter{
				stringParam("alive", "Alive marker", c.Alive),
				stringParam("dead", "Dead marker", c.Dead),
			},
		},
		{
			Name: "runtime",
			Params: []core.Parameter{
				intParam("workers", "Workers", c.Workers),
				stringParam("log_level", "Log level", c.LogLevel),
				stringParam("metrics_addr", "Metrics address", addr),
			},
		},
	}}
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func stringParam(key, label, value string) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeString,
		Value: value,
	}
}
