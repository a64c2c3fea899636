package maiden

import (
	"context"
	"sort"

	"github.com/KirkDiggler/maiden/internal/common/clock"
	"github.com/KirkDiggler/maiden/internal/common/uuid"
	"github.com/KirkDiggler/maiden/internal/dice"
	"github.com/KirkDiggler/maiden/internal/models"
	maidenRepo "github.com/KirkDiggler/maiden/internal/repositories/maiden"
	namesRepo "github.com/KirkDiggler/maiden/internal/repositories/names"
	rolllogRepo "github.com/KirkDiggler/maiden/internal/repositories/rolllog"
)

// service implements the Service interface
type service struct {
	config        *Config
	gameRepo      maidenRepo.Repository
	namesRepo     namesRepo.Repository
	rollLogRepo   rolllogRepo.Repository
	diceRoller    dice.Roller
	clock         clock.Clock
	uuidGenerator uuid.UUID
}

// New creates a new maiden service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.GameRepo == nil {
		return nil, ErrNilGameRepo
	}

	if cfg.NamesRepo == nil {
		return nil, ErrNilNamesRepo
	}

	if cfg.RollLogRepo == nil {
		return nil, ErrNilRollLogRepo
	}

	if cfg.DiceRoller == nil {
		return nil, ErrNilDiceRoller
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	// Apply defaults for unset tunables
	if cfg.DiceSides < 1 {
		cfg.DiceSides = DefaultDiceSides
	}
	if cfg.SpeedWindow <= 0 {
		cfg.SpeedWindow = DefaultSpeedWindow
	}
	if cfg.DailyRecordTTL <= 0 {
		cfg.DailyRecordTTL = DefaultDailyRecordTTL
	}
	if cfg.FastEmoji == "" {
		cfg.FastEmoji = DefaultFastEmoji
	}

	return &service{
		config:        cfg,
		gameRepo:      cfg.GameRepo,
		namesRepo:     cfg.NamesRepo,
		rollLogRepo:   cfg.RollLogRepo,
		diceRoller:    cfg.DiceRoller,
		clock:         cfg.Clock,
		uuidGenerator: cfg.UUIDGenerator,
	}, nil
}

// Roll resolves one turn for one player in one arena
func (s *service) Roll(ctx context.Context, input *RollInput) (*RollOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if input.Arena == "" || input.PlayerID == "" {
		return nil, ErrInvalidInput
	}

	name := input.DisplayName
	if name == "" {
		name = UnknownName
	}

	// Eligibility. Nothing below may run, and nothing may be written,
	// until this check passes.
	prevRoller, err := s.gameRepo.GetPreviousRoller(ctx, &maidenRepo.GetPreviousRollerInput{
		Arena: input.Arena,
	})
	if err != nil {
		return nil, err
	}
	if prevRoller != "" && prevRoller == input.PlayerID {
		return nil, ErrConsecutiveTurn
	}

	// Load the game state
	diceCount, err := s.gameRepo.GetDiceCount(ctx, &maidenRepo.GetDiceCountInput{
		Arena: input.Arena,
	})
	if err != nil {
		return nil, err
	}

	hundo, err := s.gameRepo.GetStreak(ctx, &maidenRepo.GetStreakInput{
		Arena: input.Arena,
		Kind:  models.StreakHundo,
	})
	if err != nil {
		return nil, err
	}

	pooper, err := s.gameRepo.GetStreak(ctx, &maidenRepo.GetStreakInput{
		Arena: input.Arena,
		Kind:  models.StreakPooper,
	})
	if err != nil {
		return nil, err
	}

	doubler, err := s.gameRepo.GetStreak(ctx, &maidenRepo.GetStreakInput{
		Arena: input.Arena,
		Kind:  models.StreakDoubler,
	})
	if err != nil {
		return nil, err
	}

	// Roll xd100. Every 100 extends the hundo streak and every 1 extends
	// the pooper streak, once per qualifying die.
	rolls := make([]int, 0, diceCount)
	sum := 0
	isMaxRoll := true

	for i := 0; i < diceCount; i++ {
		face := s.diceRoller.RollDie(s.config.DiceSides)

		if face < s.config.DiceSides {
			isMaxRoll = false
		} else {
			advanced, err := s.gameRepo.AdvanceStreak(ctx, &maidenRepo.AdvanceStreakInput{
				Arena:      input.Arena,
				Kind:       models.StreakHundo,
				HolderName: name,
			})
			if err != nil {
				return nil, err
			}
			hundo = &models.StreakHolder{Name: name, Length: advanced.Length}
		}

		if face == 1 {
			advanced, err := s.gameRepo.AdvanceStreak(ctx, &maidenRepo.AdvanceStreakInput{
				Arena:      input.Arena,
				Kind:       models.StreakPooper,
				HolderName: name,
			})
			if err != nil {
				return nil, err
			}
			pooper = &models.StreakHolder{Name: name, Length: advanced.Length}
		}

		rolls = append(rolls, face)
		sum += face
	}

	// Only handle 2d100 doubles for now
	if !isMaxRoll && diceCount == 2 && rolls[0] == rolls[1] {
		token := doubler.Token
		if name != doubler.Name {
			// a fresh doubles streak draws a fresh token
			token = s.diceRoller.ChooseOne(doublerTokens)
		}

		advanced, err := s.gameRepo.AdvanceStreak(ctx, &maidenRepo.AdvanceStreakInput{
			Arena:      input.Arena,
			Kind:       models.StreakDoubler,
			HolderName: name,
			Token:      token,
		})
		if err != nil {
			return nil, err
		}
		doubler = &models.StreakHolder{Name: name, Length: advanced.Length, Token: advanced.Token}
	}

	now := s.clock.Now()

	// Update daily records
	daily, err := s.gameRepo.UpdateDailyRecord(ctx, &maidenRepo.UpdateDailyRecordInput{
		Arena:      input.Arena,
		Day:        now,
		Sum:        sum,
		HolderName: name,
		TTL:        s.config.DailyRecordTTL,
	})
	if err != nil {
		return nil, err
	}

	// Crown yesterday's high roller, brick yesterday's low roller
	yesterday, err := s.gameRepo.GetDailyRecord(ctx, &maidenRepo.GetDailyRecordInput{
		Arena: input.Arena,
		Day:   now.AddDate(0, 0, -1),
	})
	if err != nil {
		return nil, err
	}

	// Track speedy rolling with an expiring counter
	speedRolling, err := s.gameRepo.BumpSpeedCounter(ctx, &maidenRepo.BumpSpeedCounterInput{
		Arena: input.Arena,
		TTL:   s.config.SpeedWindow,
	})
	if err != nil {
		return nil, err
	}

	kind := RollKindNormal
	if isMaxRoll {
		kind = RollKindMax

		// Escalate the target number of dice
		if err := s.gameRepo.IncrementDiceCount(ctx, &maidenRepo.IncrementDiceCountInput{
			Arena: input.Arena,
		}); err != nil {
			return nil, err
		}

		// A max roll breaks the anti-consecutive lock
		if err := s.gameRepo.ClearPreviousRoller(ctx, &maidenRepo.ClearPreviousRollerInput{
			Arena: input.Arena,
		}); err != nil {
			return nil, err
		}
	} else {
		// Arm the lock against a back-to-back turn
		if err := s.gameRepo.SetPreviousRoller(ctx, &maidenRepo.SetPreviousRollerInput{
			Arena:    input.Arena,
			PlayerID: input.PlayerID,
		}); err != nil {
			return nil, err
		}
	}

	decorated := Decorate(name, &BadgeContext{
		Champ:    orNobody(yesterday.HighName),
		Brick:    orNobody(yesterday.LowName),
		Hundo:    hundo,
		Pooper:   pooper,
		Doubler:  doubler,
		Seasonal: seasonalToken(now),
	})

	var flavorText, trendTag, speedTag string
	if !isMaxRoll {
		if diceCount == 2 {
			flavorText = s.pairFlavor(rolls[0], rolls[1], sum)
		}
		trendTag = trendMarker(daily.Trend)
		if speedRolling > 0 {
			speedTag = multiplyBadge(s.config.FastEmoji, speedRolling)
		}
	}

	// Statistics. Best effort ordering: earlier writes stay applied if a
	// later one fails.
	if err := s.gameRepo.UpdateAllTimeRecord(ctx, &maidenRepo.UpdateAllTimeRecordInput{
		Arena:      input.Arena,
		Sum:        sum,
		HolderName: name,
	}); err != nil {
		return nil, err
	}

	if err := s.gameRepo.IncrementRollCount(ctx, &maidenRepo.IncrementRollCountInput{
		Arena:    input.Arena,
		PlayerID: input.PlayerID,
	}); err != nil {
		return nil, err
	}

	turnID := s.uuidGenerator.NewUUID()

	if err := s.rollLogRepo.AppendRoll(ctx, &rolllogRepo.AppendRollInput{
		Record: &models.RollRecord{
			TurnID:     turnID,
			Arena:      input.Arena,
			DiceCount:  diceCount,
			Dice:       rolls,
			PlayerName: name,
			RolledAt:   now,
		},
	}); err != nil {
		return nil, err
	}

	return &RollOutput{
		TurnID:        turnID,
		Kind:          kind,
		Dice:          rolls,
		Sum:           sum,
		DecoratedName: decorated,
		TrendMarker:   trendTag,
		SpeedMarker:   speedTag,
		FlavorText:    flavorText,
	}, nil
}

// GetHighScore returns the arena's record board
func (s *service) GetHighScore(ctx context.Context, input *GetHighScoreInput) (*GetHighScoreOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if input.Arena == "" {
		return nil, ErrInvalidInput
	}

	allTime, err := s.gameRepo.GetAllTimeRecord(ctx, &maidenRepo.GetAllTimeRecordInput{
		Arena: input.Arena,
	})
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()

	today, err := s.gameRepo.GetDailyRecord(ctx, &maidenRepo.GetDailyRecordInput{
		Arena: input.Arena,
		Day:   now,
	})
	if err != nil {
		return nil, err
	}

	yesterday, err := s.gameRepo.GetDailyRecord(ctx, &maidenRepo.GetDailyRecordInput{
		Arena: input.Arena,
		Day:   now.AddDate(0, 0, -1),
	})
	if err != nil {
		return nil, err
	}

	pooper, err := s.gameRepo.GetStreak(ctx, &maidenRepo.GetStreakInput{
		Arena: input.Arena,
		Kind:  models.StreakPooper,
	})
	if err != nil {
		return nil, err
	}

	counts, err := s.gameRepo.GetRollCounts(ctx, &maidenRepo.GetRollCountsInput{
		Arena: input.Arena,
	})
	if err != nil {
		return nil, err
	}

	playerNames, err := s.namesRepo.GetAllNames(ctx, &namesRepo.GetAllNamesInput{
		Arena: input.Arena,
	})
	if err != nil {
		return nil, err
	}

	entries := make([]*models.LeaderboardEntry, 0, len(counts))
	total := 0
	for playerID, count := range counts {
		playerName := playerNames[playerID]
		if playerName == "" {
			playerName = UnknownName
		}

		entries = append(entries, &models.LeaderboardEntry{
			PlayerID:   playerID,
			PlayerName: playerName,
			RollCount:  count,
		})
		total += count
	}

	// Ascending by count, names break ties so output is stable
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].RollCount != entries[j].RollCount {
			return entries[i].RollCount < entries[j].RollCount
		}
		return entries[i].PlayerName < entries[j].PlayerName
	})

	return &GetHighScoreOutput{
		AllTime:       allTime,
		Today:         today,
		Yesterday:     yesterday,
		CurrentPooper: pooper.Name,
		Leaderboard:   entries,
		TotalRolls:    total,
	}, nil
}

// orNobody substitutes the sentinel holder name for missing record fields
func orNobody(name string) string {
	if name == "" {
		return models.Nobody
	}
	return name
}
