package service

import (
	"encoding/json"
	"errors"
	"strings"
	"time"

	"kawe_webmanager/model"
	"kawe_webmanager/repository"
)

type QuestService struct {
	Repo QuestRepository
}

func NewQuestService(repo QuestRepository) *QuestService {
	return &QuestService{Repo: repo}
}

// questFromDB decodes the JSON columns of a definition row. Rows with
// malformed blobs still render, just with empty lists, so one bad legacy row
// cannot break the whole listing.
func questFromDB(row *repository.QuestDB) model.QuestAPI {
	objectives, err := model.ParseObjectives(row.Objectives)
	if err != nil {
		objectives = []model.Objective{}
	}
	rewards, err := model.ParseRewards(row.Rewards)
	if err != nil {
		rewards = []model.Reward{}
	}

	return model.QuestAPI{
		Id:             row.Id,
		DisplayName:    row.DisplayName,
		Description:    row.Description,
		Enabled:        row.Enabled,
		IsFactionQuest: row.IsFactionQuest,
		QuestType:      model.NormalizeQuestType(row.QuestType),
		Tier:           row.Tier,
		TimerSeconds:   row.TimerSeconds,
		Tags:           model.SplitTags(row.Tags),
		Objectives:     objectives,
		Rewards:        rewards,
	}
}

func (s *QuestService) List() ([]model.QuestAPI, error) {
	rows, err := s.Repo.FetchQuests()
	if err != nil {
		return nil, err
	}

	quests := make([]model.QuestAPI, 0, len(rows))
	for i := range rows {
		quests = append(quests, questFromDB(&rows[i]))
	}
	return quests, nil
}

func (s *QuestService) Get(id string) (*model.QuestDetailAPI, error) {
	row, err := s.Repo.FetchQuest(id)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, nil
	}

	progressRows, err := s.Repo.FetchQuestProgress(id)
	if err != nil {
		return nil, err
	}

	detail := &model.QuestDetailAPI{
		QuestAPI: questFromDB(row),
		Progress: []model.QuestProgressAPI{},
	}

	for _, p := range progressRows {
		entries, parseErr := model.ParseObjectiveProgress(p.ObjectiveProgress)
		if parseErr != nil {
			entries = []model.ObjectiveProgress{}
		}
		progress := model.QuestProgressAPI{
			PlayerId:          p.PlayerId,
			IsActive:          p.IsActive,
			IsReadyToComplete: p.IsReadyToComplete,
			ObjectiveProgress: entries,
		}
		if p.StartedAt.Valid {
			t := p.StartedAt.Time
			progress.StartedAt = &t
		}
		if p.LastCompletedAt.Valid {
			t := p.LastCompletedAt.Time
			progress.LastCompletedAt = &t
		}
		detail.Progress = append(detail.Progress, progress)
	}

	return detail, nil
}

func (s *QuestService) NextId() (string, error) {
	return s.Repo.NextQuestId()
}

func (s *QuestService) Save(data *model.QuestAPI) error {
	objectives, err := json.Marshal(data.Objectives)
	if err != nil {
		return err
	}
	rewards, err := json.Marshal(data.Rewards)
	if err != nil {
		return err
	}

	displayName := data.DisplayName
	if displayName == "" {
		displayName = data.Id
	}
	tier := data.Tier
	if tier <= 0 {
		tier = 1
	}
	timer := data.TimerSeconds
	if timer < 0 {
		timer = 0
	}

	return s.Repo.UpsertQuest(&repository.QuestDB{
		Id:             data.Id,
		DisplayName:    displayName,
		Description:    data.Description,
		Enabled:        data.Enabled,
		IsFactionQuest: data.IsFactionQuest,
		QuestType:      model.NormalizeQuestType(data.QuestType),
		Tier:           tier,
		TimerSeconds:   timer,
		Tags:           strings.Join(data.Tags, ","),
		Objectives:     string(objectives),
		Rewards:        string(rewards),
	})
}

// PlayerQuests merges each progress row's counters into the quest's objective
// list so the SPA renders one combined state per objective.
func (s *QuestService) PlayerQuests(steamId string) (*model.PlayerQuestsAPI, error) {
	rows, err := s.Repo.FetchPlayerQuests(steamId)
	if err != nil {
		return nil, err
	}

	out := &model.PlayerQuestsAPI{SteamId: steamId, Quests: []model.PlayerQuestAPI{}}
	for _, row := range rows {
		objectives, parseErr := model.ParseObjectives(row.Objectives)
		if parseErr != nil {
			objectives = []model.Objective{}
		}
		rewards, parseErr := model.ParseRewards(row.Rewards)
		if parseErr != nil {
			rewards = []model.Reward{}
		}
		progress, parseErr := model.ParseObjectiveProgress(row.ObjectiveProgress)
		if parseErr != nil {
			progress = []model.ObjectiveProgress{}
		}

		byObjective := make(map[string]model.ObjectiveProgress, len(progress))
		for _, entry := range progress {
			byObjective[entry.ObjectiveId] = entry
		}

		states := make([]model.ObjectiveStateAPI, 0, len(objectives))
		for _, obj := range objectives {
			state := model.ObjectiveStateAPI{Objective: obj}
			if entry, ok := byObjective[obj.Id]; ok {
				state.CurrentValue = entry.CurrentValue
				state.Completed = entry.Completed
			}
			states = append(states, state)
		}

		quest := model.PlayerQuestAPI{
			QuestId:           row.QuestId,
			DisplayName:       row.DisplayName,
			Description:       row.Description,
			IsActive:          row.IsActive,
			IsReadyToComplete: row.IsReadyToComplete,
			IsFactionQuest:    row.IsFactionQuest,
			Objectives:        states,
			Rewards:           rewards,
		}
		if row.StartedAt.Valid {
			t := row.StartedAt.Time
			quest.StartedAt = &t
		}
		if row.LastCompletedAt.Valid {
			t := row.LastCompletedAt.Time
			quest.LastCompletedAt = &t
		}
		out.Quests = append(out.Quests, quest)
	}

	return out, nil
}

// AvailableQuests lists what the player could start. Faction quests only show
// for faction members and only up to the faction's tier.
func (s *QuestService) AvailableQuests(steamId string) (*model.AvailableQuestsAPI, error) {
	m, err := s.Repo.FetchMembership(steamId)
	if err != nil {
		return nil, err
	}

	rows, err := s.Repo.FetchEnabledQuests(m != nil)
	if err != nil {
		return nil, err
	}

	activeIds, err := s.Repo.FetchActiveQuestIds(steamId)
	if err != nil {
		return nil, err
	}
	active := make(map[string]bool, len(activeIds))
	for _, id := range activeIds {
		active[id] = true
	}

	out := &model.AvailableQuestsAPI{SteamId: steamId, Quests: []model.AvailableQuestAPI{}}
	if m != nil {
		out.PlayerFactionId = &m.FactionId
	}

	for i := range rows {
		row := &rows[i]
		if row.IsFactionQuest && (m == nil || row.Tier > m.Tier) {
			continue
		}
		out.Quests = append(out.Quests, model.AvailableQuestAPI{
			QuestAPI: questFromDB(row),
			IsTaken:  active[row.Id],
		})
	}

	return out, nil
}

// Assign starts a quest for the player themselves.
func (s *QuestService) Assign(steamId, questId string) error {
	quest, err := s.Repo.FetchQuest(questId)
	if err != nil {
		return err
	}
	if quest == nil || !quest.Enabled {
		return errors.New(model.ErrQuestNotFound)
	}

	if quest.IsFactionQuest {
		m, err := s.Repo.FetchMembership(steamId)
		if err != nil {
			return err
		}
		if m == nil {
			return errors.New(model.ErrNotInFaction)
		}
		if quest.Tier > m.Tier {
			return errors.New(model.ErrQuestTierTooHigh)
		}
	}

	taken, err := s.Repo.HasActiveProgress(steamId, questId)
	if err != nil {
		return err
	}
	if taken {
		return errors.New(model.ErrQuestAlreadyActive)
	}

	objectives, err := model.ParseObjectives(quest.Objectives)
	if err != nil {
		return err
	}
	seeded, err := json.Marshal(model.SeedObjectiveProgress(objectives, time.Now()))
	if err != nil {
		return err
	}

	return s.Repo.UpsertProgress(steamId, questId, string(seeded))
}

// TurnIn enqueues a completed quest for the game server to pay out. Rewards
// are never granted here; the plugin drains the queue in-game so item and
// command rewards land while the player is online.
func (s *QuestService) TurnIn(steamId, questId string) (*model.TurnInResultAPI, error) {
	check, err := s.Repo.FetchTurnInCheck(steamId, questId)
	if err != nil {
		return nil, err
	}
	if check == nil {
		return nil, errors.New(model.ErrQuestNotFound)
	}
	if !check.IsActive {
		return nil, errors.New(model.ErrQuestNotActive)
	}
	if !check.IsReadyToComplete {
		return nil, errors.New(model.ErrQuestNotReady)
	}

	// Faction quests pay out to the whole faction, so only its leadership may
	// hand them in.
	if check.IsFactionQuest {
		m, err := s.Repo.FetchMembership(steamId)
		if err != nil {
			return nil, err
		}
		if m == nil {
			return nil, errors.New(model.ErrNotInFaction)
		}
		if effectiveRole(m, steamId) < model.RoleViceLeader {
			return nil, errors.New(model.ErrInsufficientPermissions)
		}
	}

	queueId, err := s.Repo.EnqueueTurnIn(steamId, questId)
	if err != nil {
		return nil, err
	}

	return &model.TurnInResultAPI{
		Success:  true,
		Message:  "Turn-in queued",
		QuestId:  questId,
		PlayerId: steamId,
		QueueId:  queueId,
		Note:     "Rewards are granted in-game the next time the server processes the queue.",
	}, nil
}
