package resolver

const (
	LogPrefixBuild   = "internal.resolver.Build"
	LogPrefixResolve = "internal.resolver.Resolve"
)
