package analytics

import (
	"fmt"
	"strings"
)

type BadgeID string

const (
	BadgeSharpshooter BadgeID = "sharpshooter"
	BadgeSpeedDemon   BadgeID = "speed_demon"
	BadgeTriggerHappy BadgeID = "trigger_happy"
	BadgeHalfCentury  BadgeID = "half_century"
)

type Badge struct {
	ID          BadgeID
	Name        string
	Description string
}

var AllBadges = map[BadgeID]Badge{
	BadgeSharpshooter: {ID: BadgeSharpshooter, Name: "Sharpshooter", Description: "90%+ accuracy with 10+ hits"},
	BadgeSpeedDemon:   {ID: BadgeSpeedDemon, Name: "Speed Demon", Description: "Average reaction under 400ms over 5+ hits"},
	BadgeTriggerHappy: {ID: BadgeTriggerHappy, Name: "Trigger Happy", Description: "2+ hits per second"},
	BadgeHalfCentury:  {ID: BadgeHalfCentury, Name: "Half Century", Description: "50+ hits in a round"},
}

// badgeOrder keeps summaries stable.
var badgeOrder = []BadgeID{BadgeSharpshooter, BadgeSpeedDemon, BadgeTriggerHappy, BadgeHalfCentury}

// EvaluateBadges checks which badges a round earned.
func EvaluateBadges(stats Stats) []Badge {
	var earned []Badge
	for _, id := range badgeOrder {
		if earnedBadge(id, stats) {
			earned = append(earned, AllBadges[id])
		}
	}
	return earned
}

func earnedBadge(id BadgeID, stats Stats) bool {
	switch id {
	case BadgeSharpshooter:
		return stats.Hits >= 10 && stats.Accuracy >= 90.0
	case BadgeSpeedDemon:
		return stats.Hits >= 5 && stats.AvgReaction > 0 && stats.AvgReaction < 400
	case BadgeTriggerHappy:
		return stats.HitsPerSec >= 2.0
	case BadgeHalfCentury:
		return stats.Hits >= 50
	}
	return false
}

// Summary renders a one-line description of a finished round.
func Summary(score int, stats Stats) string {
	line := fmt.Sprintf("score %d | accuracy %.0f%% | avg %.0fms", score, stats.Accuracy, stats.AvgReaction)
	badges := EvaluateBadges(stats)
	if len(badges) == 0 {
		return line
	}
	names := make([]string, len(badges))
	for i, b := range badges {
		names[i] = b.Name
	}
	return line + " | " + strings.Join(names, ", ")
}
