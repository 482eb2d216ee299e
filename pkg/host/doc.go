// Package host owns the process-wide module collection of an
// application and hands out providers built from it.
//
// Modules are registered directly or through factories. Singleton
// factories run once, when the first provider is requested. Scoped
// factories run for every Scope call, against a fork of the singleton
// provider, so modules created for one scope never leak into another.
//
//	h := host.New()
//	h.Configure(func(c *registry.Collection) { documents.AddBinary(c, yamlcodec.New(2)) })
//	h.AddScopedFactory(func(ctx context.Context) (types.Module, error) { ... })
//
//	p, err := h.Scope(ctx)
//	ctx = host.WithProvider(ctx, p)
//
// Once the singleton provider is built the host is sealed and further
// registrations fail.
package host
