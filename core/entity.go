package core

// Entity is an opaque identity that components attach to
type Entity uint64

// NoEntity is never issued by the world; used as the empty weak reference
const NoEntity Entity = 0
