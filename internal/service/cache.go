package service

// Cache persists API results between runs. Entries are never invalidated; delete the
// cache file to refresh them.
type Cache interface {
	Get(bucket, key string, v any) (bool, error)
	Put(bucket, key string, v any) error
	Keys(bucket string) ([]string, error)
}
