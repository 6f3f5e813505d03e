package services

type LevelThreshold struct {
	Level       int
	XP          int
	Name        string
	Color       string
	Description string
}

// levelThresholds is a strictly increasing cumulative-XP ladder starting at
// (1, 0). Values above the top threshold map to the top level.
var levelThresholds = []LevelThreshold{
	{Level: 1, XP: 0, Name: "Bronze", Color: "#CD7F32", Description: "Just starting out."},
	{Level: 2, XP: 100, Name: "Silver", Color: "#C0C0C0", Description: "Making good progress."},
	{Level: 3, XP: 250, Name: "Gold", Color: "#FFD700", Description: "Showing real dedication."},
	{Level: 4, XP: 500, Name: "Platinum", Color: "#E5E4E2", Description: "A consistent achiever."},
	{Level: 5, XP: 1000, Name: "Diamond", Color: "#B9F2FF", Description: "Master of your goals."},
	{Level: 6, XP: 2000, Name: "Master", Color: "#9F7AEA", Description: "Truly unstoppable."},
}

type LevelDetail struct {
	Level       int    `json:"level"`
	Name        string `json:"name"`
	Color       string `json:"color"`
	Description string `json:"description"`
	XPFloor     int    `json:"xpFloor"`
	XPCeiling   int    `json:"xpCeiling"`
}

// LevelTable lists every level with its XP band, lowest first.
func LevelTable() []LevelDetail {
	table := make([]LevelDetail, 0, len(levelThresholds))
	for _, threshold := range levelThresholds {
		table = append(table, LevelFor(threshold.XP))
	}
	return table
}

// LevelFor returns the highest level whose threshold is at or below xp.
// Negative xp is treated as zero. At the maximum level the ceiling equals
// the floor, which reads as a maxed-out progress bar.
func LevelFor(xp int) LevelDetail {
	if xp < 0 {
		xp = 0
	}

	current := levelThresholds[0]
	for index := len(levelThresholds) - 1; index >= 0; index-- {
		if xp >= levelThresholds[index].XP {
			current = levelThresholds[index]
			break
		}
	}

	ceiling := current.XP
	if current.Level < len(levelThresholds) {
		ceiling = levelThresholds[current.Level].XP
	}

	return LevelDetail{
		Level:       current.Level,
		Name:        current.Name,
		Color:       current.Color,
		Description: current.Description,
		XPFloor:     current.XP,
		XPCeiling:   ceiling,
	}
}
