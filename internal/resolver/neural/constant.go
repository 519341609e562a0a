package neural

const (
	LogPrefixNew     = "internal.resolver.neural.New"
	LogPrefixRespond = "internal.resolver.neural.Respond"
)
