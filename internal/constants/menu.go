package constants

// Shell menu choices, in display order.
const (
	MenuLog     = "Log your Mood"
	MenuAnalyze = "Analyze (This Month)"
	MenuTrends  = "Trends (Weekly)"
	MenuClear   = "Clear Data"
	MenuExit    = "Exit"
)

var MenuChoices = []string{MenuLog, MenuAnalyze, MenuTrends, MenuClear, MenuExit}
