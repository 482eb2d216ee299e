package registry

// Null is the process-wide empty provider, used wherever no provider was
// registered for the calling context. It is built once and never changes.
var Null = newModuleProvider(nil, NewTypeSet())
