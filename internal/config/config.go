package config

type Configuration struct {
	// Port the HTTP server binds to.
	Port uint16
	// DbUrl is the path to the database file. Perhaps change this?
	DbUrl string
	// MigrationsFolder holds the golang-migrate SQL files applied on setup.
	MigrationsFolder string
	// SessionKey is the secret used by the cookie session manager.
	SessionKey string
	// TrendingSize is the default number of approved jokes returned by the
	// trending endpoint when the caller does not ask for a specific limit.
	TrendingSize int64
	// SuggestionLimit is the default size of the follow suggestion list.
	SuggestionLimit int64
	// QueueWorkers is the number of goroutines draining the task queue.
	QueueWorkers int
	// Debug, if true, will make the application log all HTTP requests and other events.
	Debug bool
}
