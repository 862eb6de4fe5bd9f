package auth

type Claims map[string]any

const (
	claimAgent    = "agent"
	claimIsSystem = "system"
)

// NewSystemClaims describes a service calling on its own behalf rather than
// on behalf of a user.
func NewSystemClaims(agent string) Claims {
	return Claims{
		claimAgent:    agent,
		claimIsSystem: true,
	}
}

func (c Claims) Agent() string {
	agentAny, ok := c[claimAgent]
	if !ok {
		return ""
	}

	agent, ok := agentAny.(string)
	if !ok {
		return ""
	}

	return agent
}

func (c Claims) IsSystem() bool {
	systemAny, ok := c[claimIsSystem]
	if !ok {
		return false
	}

	system, ok := systemAny.(bool)
	if !ok {
		return false
	}

	return system
}
