package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

const DefaultQuestTimerSeconds = 3600

var questTypes = map[string]bool{
	"daily":   true,
	"weekly":  true,
	"monthly": true,
	"repeat":  true,
}

// NormalizeQuestType lowercases and trims the stored quest type and defaults
// blank values to "repeat". Unknown values pass through unchanged so legacy
// rows stay readable.
func NormalizeQuestType(s string) string {
	t := strings.ToLower(strings.TrimSpace(s))
	if t == "" {
		return "repeat"
	}
	return t
}

func ValidQuestType(s string) bool {
	return questTypes[NormalizeQuestType(s)]
}

var objectiveTypes = map[string]bool{
	"zombie_kill":     true,
	"item_collection": true,
	"craft":           true,
	"playtime":        true,
	"fishing":         true,
	"manual":          true,
	"harvest":         true,
	"animal_kill":     true,
}

type Objective struct {
	Id          string `json:"Id"`
	Type        string `json:"Type"`
	Parameter   string `json:"Parameter,omitempty"`
	Parameter2  string `json:"Parameter2,omitempty"`
	Parameter3  string `json:"Parameter3,omitempty"`
	TargetValue int    `json:"TargetValue"`
}

func (o *Objective) Validate() error {
	if o.Id == "" {
		return errors.New("objective id cannot be empty")
	}
	if o.Type != "" && !objectiveTypes[strings.ToLower(o.Type)] {
		return fmt.Errorf("unknown objective type %q", o.Type)
	}
	if o.TargetValue < 0 {
		return errors.New("objective target value cannot be negative")
	}
	return nil
}

var rewardTypes = map[string]bool{
	"xp":             true,
	"item":           true,
	"command":        true,
	"faction_points": true,
	"faction_xp":     true,
}

type Reward struct {
	Type    string `json:"Type"`
	Amount  int    `json:"Amount,omitempty"`
	ItemId  int    `json:"ItemId,omitempty"`
	Command string `json:"Command,omitempty"`
}

func (r *Reward) Validate() error {
	if r.Type == "" {
		return errors.New("reward type cannot be empty")
	}
	if !rewardTypes[strings.ToLower(r.Type)] {
		return fmt.Errorf("unknown reward type %q", r.Type)
	}
	if strings.ToLower(r.Type) == "command" && r.Command == "" {
		return errors.New("command reward requires a command string")
	}
	return nil
}

// ObjectiveProgress mirrors the JSON blob persisted in quest_progress.
// Field casing matches the game plugin's serializer and must not change.
type ObjectiveProgress struct {
	ObjectiveId    string `json:"ObjectiveId"`
	CurrentValue   int    `json:"CurrentValue"`
	Completed      bool   `json:"Completed"`
	LastUpdatedUtc string `json:"LastUpdatedUtc"`
}

// SeedObjectiveProgress builds the zero-valued progress list a fresh
// assignment starts from, one entry per objective.
func SeedObjectiveProgress(objectives []Objective, now time.Time) []ObjectiveProgress {
	progress := make([]ObjectiveProgress, 0, len(objectives))
	for _, obj := range objectives {
		progress = append(progress, ObjectiveProgress{
			ObjectiveId:    obj.Id,
			CurrentValue:   0,
			Completed:      false,
			LastUpdatedUtc: now.UTC().Format(time.RFC3339),
		})
	}
	return progress
}

// ParseObjectives decodes the quest_definitions.objectives JSON column.
// A blank column is an empty list, not an error.
func ParseObjectives(raw string) ([]Objective, error) {
	if strings.TrimSpace(raw) == "" {
		return []Objective{}, nil
	}
	var objectives []Objective
	if err := json.Unmarshal([]byte(raw), &objectives); err != nil {
		return nil, err
	}
	return objectives, nil
}

func ParseRewards(raw string) ([]Reward, error) {
	if strings.TrimSpace(raw) == "" {
		return []Reward{}, nil
	}
	var rewards []Reward
	if err := json.Unmarshal([]byte(raw), &rewards); err != nil {
		return nil, err
	}
	return rewards, nil
}

func ParseObjectiveProgress(raw string) ([]ObjectiveProgress, error) {
	if strings.TrimSpace(raw) == "" {
		return []ObjectiveProgress{}, nil
	}
	var progress []ObjectiveProgress
	if err := json.Unmarshal([]byte(raw), &progress); err != nil {
		return nil, err
	}
	return progress, nil
}

// SplitTags turns the comma-separated tags column into a clean slice.
func SplitTags(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return []string{}
	}
	var tags []string
	for _, t := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(t); trimmed != "" {
			tags = append(tags, trimmed)
		}
	}
	if tags == nil {
		return []string{}
	}
	return tags
}
