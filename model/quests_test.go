package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeQuestType(t *testing.T) {
	assert.Equal(t, "repeat", NormalizeQuestType(""))
	assert.Equal(t, "repeat", NormalizeQuestType("   "))
	assert.Equal(t, "daily", NormalizeQuestType("Daily"))
	assert.Equal(t, "weekly", NormalizeQuestType(" WEEKLY "))
	// Unknown legacy values pass through so old rows stay readable.
	assert.Equal(t, "seasonal", NormalizeQuestType("Seasonal"))

	assert.True(t, ValidQuestType("monthly"))
	assert.True(t, ValidQuestType(""))
	assert.False(t, ValidQuestType("seasonal"))
}

func TestSeedObjectiveProgress(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	objectives := []Objective{
		{Id: "obj1", Type: "zombie_kill", TargetValue: 25},
		{Id: "obj2", Type: "item_collection", Parameter: "363", TargetValue: 5},
	}

	seeded := SeedObjectiveProgress(objectives, now)
	assert.Len(t, seeded, 2)
	for i, entry := range seeded {
		assert.Equal(t, objectives[i].Id, entry.ObjectiveId)
		assert.Equal(t, 0, entry.CurrentValue)
		assert.False(t, entry.Completed)
		assert.Equal(t, "2026-09-01T12:00:00Z", entry.LastUpdatedUtc)
	}

	// The persisted JSON must keep the game plugin's field casing.
	raw, err := json.Marshal(seeded)
	assert.NoError(t, err)
	assert.Contains(t, string(raw), `"ObjectiveId":"obj1"`)
	assert.Contains(t, string(raw), `"CurrentValue":0`)
	assert.Contains(t, string(raw), `"Completed":false`)
	assert.Contains(t, string(raw), `"LastUpdatedUtc"`)

	parsed, err := ParseObjectiveProgress(string(raw))
	assert.NoError(t, err)
	assert.Equal(t, seeded, parsed)

	assert.Empty(t, SeedObjectiveProgress(nil, now))
}

func TestParseObjectives(t *testing.T) {
	objectives, err := ParseObjectives(`[{"Id":"obj1","Type":"craft","TargetValue":3}]`)
	assert.NoError(t, err)
	assert.Len(t, objectives, 1)
	assert.Equal(t, "obj1", objectives[0].Id)
	assert.Equal(t, 3, objectives[0].TargetValue)

	// Blank columns are an empty list, not an error.
	objectives, err = ParseObjectives("")
	assert.NoError(t, err)
	assert.Empty(t, objectives)

	_, err = ParseObjectives("{broken")
	assert.Error(t, err)
}

func TestObjectiveValidate(t *testing.T) {
	valid := Objective{Id: "obj1", Type: "harvest", TargetValue: 10}
	assert.NoError(t, valid.Validate())

	noId := Objective{Type: "harvest", TargetValue: 10}
	assert.Error(t, noId.Validate())

	badType := Objective{Id: "obj1", Type: "teleport", TargetValue: 1}
	assert.Error(t, badType.Validate())

	negative := Objective{Id: "obj1", Type: "manual", TargetValue: -5}
	assert.Error(t, negative.Validate())

	// An untyped objective is allowed; the game treats it as manual.
	untyped := Objective{Id: "obj1", TargetValue: 1}
	assert.NoError(t, untyped.Validate())
}

func TestRewardValidate(t *testing.T) {
	assert.NoError(t, (&Reward{Type: "xp", Amount: 500}).Validate())
	assert.NoError(t, (&Reward{Type: "item", ItemId: 363, Amount: 2}).Validate())
	assert.NoError(t, (&Reward{Type: "command", Command: "give {steamid} 363"}).Validate())

	assert.Error(t, (&Reward{}).Validate())
	assert.Error(t, (&Reward{Type: "lootbox"}).Validate())
	assert.Error(t, (&Reward{Type: "command"}).Validate())
}

func TestSplitTags(t *testing.T) {
	assert.Equal(t, []string{"pve", "combat"}, SplitTags("pve, combat"))
	assert.Equal(t, []string{"solo"}, SplitTags(" solo ,, "))
	assert.Empty(t, SplitTags(""))
	assert.Empty(t, SplitTags("  ,  "))
}
