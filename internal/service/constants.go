package service

const (
	// Trailing windows for recovery factor gathering
	RecoveryWindowDays   = 7
	RestAdviceWindowDays = 14

	// Chart windows
	ScoreHistoryDays = 14
	ChartWeeks       = 12

	// Pagination limits
	RecentWorkoutsLimit = 10

	// Wearable history window when the config doesn't say
	DefaultHistoryDays = 30
)
