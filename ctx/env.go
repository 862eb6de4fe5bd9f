package ctx

import (
	dispCfg "github.com/sofmon/dispatch/cfg"
)

type Environment string

const (
	EnvironmentProduction Environment = "production"
)

func getEnv() Environment {
	envStr, err := dispCfg.String(dispCfg.ConfigKeyEnvironment)
	if err != nil {
		// no environment configured, assuming 'production'
		return EnvironmentProduction
	}
	return Environment(envStr)
}

func (ctx Context) Environment() Environment {
	obj := ctx.Value(contextKeyEnv)
	if obj == nil {
		return EnvironmentProduction
	}
	return obj.(Environment)
}

func (ctx Context) IsProdEnv() bool {
	return ctx.Environment() == EnvironmentProduction
}
