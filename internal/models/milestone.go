package models

type Milestone struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	DurationMs  int64  `json:"durationMs"`
}

type MilestoneStatus struct {
	Milestone
	Unlocked        bool  `json:"unlocked"`
	DaysUntilUnlock int64 `json:"daysUntilUnlock"`
}

var HealthMilestones = []Milestone{
	{ID: "1", Title: "Start of Protocol", Description: "The decision is made.", DurationMs: 0},
	{ID: "2", Title: "Normalization", Description: "Heart rate & BP drop to normal levels.", DurationMs: 20 * MsPerMinute},
	{ID: "3", Title: "Oxygenation", Description: "CO levels drop, oxygen levels normalize.", DurationMs: 8 * MsPerHour},
	{ID: "4", Title: "Cardiac Safety", Description: "Heart attack risk begins to decrease.", DurationMs: 24 * MsPerHour},
	{ID: "5", Title: "Neuro-Repair", Description: "Nerve endings regrow. Taste & smell improve.", DurationMs: 48 * MsPerHour},
	{ID: "6", Title: "Bronchial Relax", Description: "Breathing becomes easier. Energy boosts.", DurationMs: 72 * MsPerHour},
	{ID: "7", Title: "Craving Reduction", Description: "Daily cravings begin to decrease significantly.", DurationMs: 5 * MsPerDay},
	{ID: "8", Title: "Circulation Boost", Description: "Lung function increases up to 30%.", DurationMs: 14 * MsPerDay},
	{ID: "9", Title: "Receptor Reset", Description: "Brain nicotine receptors normalize.", DurationMs: 30 * MsPerDay},
	{ID: "10", Title: "Fertility Boost", Description: "Reproductive health improves.", DurationMs: 90 * MsPerDay},
	{ID: "11", Title: "Stress Defense", Description: "Ability to handle stress without nicotine.", DurationMs: 180 * MsPerDay},
	{ID: "12", Title: "Cilia Recovery", Description: "Lungs clear mucus significantly better.", DurationMs: 270 * MsPerDay},
	{ID: "13", Title: "Coronary Health", Description: "Heart disease risk cut in half.", DurationMs: 365 * MsPerDay},
}

// EvaluateMilestones marks each milestone unlocked once elapsed reaches its
// duration. Locked milestones report whole days left, rounded up.
func EvaluateMilestones(elapsedMs int64) []MilestoneStatus {
	if elapsedMs < 0 {
		elapsedMs = 0
	}
	out := make([]MilestoneStatus, 0, len(HealthMilestones))
	for _, m := range HealthMilestones {
		st := MilestoneStatus{Milestone: m, Unlocked: elapsedMs >= m.DurationMs}
		if !st.Unlocked {
			remaining := m.DurationMs - elapsedMs
			st.DaysUntilUnlock = (remaining + MsPerDay - 1) / MsPerDay
		}
		out = append(out, st)
	}
	return out
}
