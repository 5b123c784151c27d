package config

// CronSchedules maps job names to cron specs. Jobs register themselves in cron/jobs.
var CronSchedules = map[string]string{
	"searchreindex": GetEnv("SEARCH_REINDEX_SCHEDULE", "@hourly"),
}
