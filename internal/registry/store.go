package registry

// Store is the durable mapping from group name to its ordered commands.
// Implementations serialize their own reads and writes.
type Store interface {
	// Has reports whether group exists, even when its list is empty.
	Has(group string) (bool, error)
	// Get returns the commands of group; ok is false when the group is absent.
	Get(group string) (entries []CommandEntry, ok bool, err error)
	// Set overwrites the commands of group, creating it when needed.
	Set(group string, entries []CommandEntry) error
	// All returns every group in creation order.
	All() ([]Group, error)
}
