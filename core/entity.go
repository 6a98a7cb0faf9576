package core

// Entity is a stable identifier for a record in the world arena
// IDs are allocated monotonically and never reused within a world generation, 0 means "none"
type Entity uint64
