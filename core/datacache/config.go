package datacache

// Config holds tuning for document loading.
type Config struct {
	// PageConcurrency bounds how many pages LoadPages normalizes at once.
	PageConcurrency int `mapstructure:"page_concurrency" default:"4"`
}
