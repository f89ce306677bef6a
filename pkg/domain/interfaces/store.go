package interfaces

// FlagStore is a small key-value store for client-scoped flags
type FlagStore interface {
	Get(key string) (string, bool)
	Set(key, value string)
}
