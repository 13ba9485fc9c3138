package service

import (
	"kawe_webmanager/model"
	"kawe_webmanager/repository"
)

// PlayerService reads the PlayerStatsNew table maintained by a separate
// stats plugin. The table may be absent on fresh installs, which is not an
// error; the listing is just empty.
type PlayerService struct {
	Repo *repository.Repository
}

func NewPlayerService(repo *repository.Repository) *PlayerService {
	return &PlayerService{Repo: repo}
}

func (s *PlayerService) Dashboard() (*model.DashboardStatsAPI, error) {
	stats, err := s.Repo.FetchDashboardStats()
	if err != nil {
		return nil, err
	}
	return &model.DashboardStatsAPI{
		TotalFactions: stats.TotalFactions,
		TotalQuests:   stats.TotalQuests,
		TotalPlayers:  stats.TotalPlayers,
		ActiveQuests:  stats.ActiveQuests,
	}, nil
}

func statsFromDB(row *repository.PlayerStatsDB) model.PlayerStatsAPI {
	stats := model.PlayerStatsAPI{
		SteamId:     row.SteamId,
		Name:        row.Name,
		Kills:       row.Kills,
		Headshots:   row.Headshots,
		PVPDeaths:   row.PVPDeaths,
		PVEDeaths:   row.PVEDeaths,
		Zombies:     row.Zombies,
		MegaZombies: row.MegaZombies,
		Animals:     row.Animals,
		Resources:   row.Resources,
		Harvests:    row.Harvests,
		Fish:        row.Fish,
		Structures:  row.Structures,
		Barricades:  row.Barricades,
		Playtime:    row.Playtime,
		UIDisabled:  row.UIDisabled,
	}
	if row.LastUpdated.Valid {
		t := row.LastUpdated.Time
		stats.LastUpdated = &t
	}
	return stats
}

func (s *PlayerService) List() ([]model.PlayerStatsAPI, error) {
	exists, err := s.Repo.PlayerStatsTableExists()
	if err != nil {
		return nil, err
	}
	if !exists {
		return []model.PlayerStatsAPI{}, nil
	}

	rows, err := s.Repo.FetchPlayers()
	if err != nil {
		return nil, err
	}

	players := make([]model.PlayerStatsAPI, 0, len(rows))
	for i := range rows {
		players = append(players, statsFromDB(&rows[i]))
	}
	return players, nil
}

func (s *PlayerService) Stats(steamId string) (*model.PlayerStatsAPI, error) {
	exists, err := s.Repo.PlayerStatsTableExists()
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, nil
	}

	row, err := s.Repo.FetchPlayerStats(steamId)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, nil
	}

	stats := statsFromDB(row)
	return &stats, nil
}

// Detail is the admin drill-down: quest progress joined with definitions,
// plus the player's faction membership if any.
func (s *PlayerService) Detail(steamId string) (*model.PlayerDetailAPI, error) {
	rows, err := s.Repo.FetchPlayerQuests(steamId)
	if err != nil {
		return nil, err
	}

	detail := &model.PlayerDetailAPI{
		PlayerId: steamId,
		Quests:   []model.PlayerQuestRowAPI{},
	}

	for _, row := range rows {
		progress, parseErr := model.ParseObjectiveProgress(row.ObjectiveProgress)
		if parseErr != nil {
			progress = []model.ObjectiveProgress{}
		}
		quest := model.PlayerQuestRowAPI{
			PlayerId:          row.PlayerId,
			QuestId:           row.QuestId,
			DisplayName:       row.DisplayName,
			Description:       row.Description,
			IsFactionQuest:    row.IsFactionQuest,
			IsActive:          row.IsActive,
			IsReadyToComplete: row.IsReadyToComplete,
			ObjectiveProgress: progress,
		}
		if row.StartedAt.Valid {
			t := row.StartedAt.Time
			quest.StartedAt = &t
		}
		if row.LastCompletedAt.Valid {
			t := row.LastCompletedAt.Time
			quest.LastCompletedAt = &t
		}
		detail.Quests = append(detail.Quests, quest)
	}

	membership, err := s.Repo.FetchPlayerMembership(steamId)
	if err != nil {
		return nil, err
	}
	if membership != nil {
		detail.Faction = &model.PlayerFactionAPI{
			FactionId:   membership.FactionId,
			PlayerId:    membership.PlayerId,
			JoinedAt:    membership.JoinedAt,
			FactionName: membership.FactionName,
			FactionTag:  membership.FactionTag,
		}
	}

	return detail, nil
}
