package maiden

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/KirkDiggler/maiden/internal/models"
	"github.com/redis/go-redis/v9"
)

// defaultDoublerToken is rendered for doubler streaks that predate token
// assignment
const defaultDoublerToken = "✌️"

// Config holds configuration for the Redis maiden repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// advanceStreakScript resets the streak to a new holder or increments the
// current holder's run as a single atomic operation. KEYS: holder, length,
// token. ARGV: holder name, token to assign on reset. Returns
// {reset, length, token}.
var advanceStreakScript = redis.NewScript(`
local holder = redis.call("GET", KEYS[1])
if holder == ARGV[1] then
	local length = redis.call("INCR", KEYS[2])
	local token = redis.call("GET", KEYS[3])
	if not token then
		token = ""
	end
	return {0, length, token}
end
redis.call("SET", KEYS[1], ARGV[1])
redis.call("SET", KEYS[2], "1")
if ARGV[2] ~= "" then
	redis.call("SET", KEYS[3], ARGV[2])
end
local token = redis.call("GET", KEYS[3])
if not token then
	token = ""
end
return {1, 1, token}
`)

// updateDailyRecordScript conditionally raises the daily high and lowers the
// daily low in one atomic operation, refreshing TTLs on every write. KEYS:
// high score, high name, low score, low name. ARGV: sum, holder name, TTL
// seconds. Returns the trend tag, with higher/new-day taking priority over
// lower when both fire.
var updateDailyRecordScript = redis.NewScript(`
local sum = tonumber(ARGV[1])
local ttl = tonumber(ARGV[3])
local trend = ""
local high = tonumber(redis.call("GET", KEYS[1]))
if (not high) or high < sum then
	redis.call("SETEX", KEYS[1], ttl, ARGV[1])
	redis.call("SETEX", KEYS[2], ttl, ARGV[2])
	if high then
		trend = "higher"
	else
		trend = "new day"
	end
end
local low = tonumber(redis.call("GET", KEYS[3]))
if (not low) or low > sum then
	redis.call("SETEX", KEYS[3], ttl, ARGV[1])
	redis.call("SETEX", KEYS[4], ttl, ARGV[2])
	if trend == "" then
		trend = "lower"
	end
end
return trend
`)

// updateAllTimeRecordScript raises the all-time high when beaten. KEYS:
// score, name. ARGV: sum, holder name.
var updateAllTimeRecordScript = redis.NewScript(`
local best = tonumber(redis.call("GET", KEYS[1]))
if (not best) or best < tonumber(ARGV[1]) then
	redis.call("SET", KEYS[1], ARGV[1])
	redis.call("SET", KEYS[2], ARGV[2])
	return 1
end
return 0
`)

// NewRedis creates a new Redis-backed maiden repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	// Validate config
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

// GetPreviousRoller returns the player id holding the anti-consecutive lock
func (r *redisRepository) GetPreviousRoller(ctx context.Context, input *GetPreviousRollerInput) (string, error) {
	if input == nil || input.Arena == "" {
		return "", errors.New("input and arena cannot be empty")
	}

	playerID, err := r.client.Get(ctx, previousRollerKey(input.Arena)).Result()
	if err != nil {
		if err == redis.Nil {
			return "", nil
		}
		return "", fmt.Errorf("failed to get previous roller: %w", err)
	}

	return playerID, nil
}

// SetPreviousRoller arms the anti-consecutive lock
func (r *redisRepository) SetPreviousRoller(ctx context.Context, input *SetPreviousRollerInput) error {
	if input == nil || input.Arena == "" || input.PlayerID == "" {
		return errors.New("input, arena, and player ID cannot be empty")
	}

	if err := r.client.Set(ctx, previousRollerKey(input.Arena), input.PlayerID, 0).Err(); err != nil {
		return fmt.Errorf("failed to set previous roller: %w", err)
	}

	return nil
}

// ClearPreviousRoller clears the anti-consecutive lock
func (r *redisRepository) ClearPreviousRoller(ctx context.Context, input *ClearPreviousRollerInput) error {
	if input == nil || input.Arena == "" {
		return errors.New("input and arena cannot be empty")
	}

	if err := r.client.Del(ctx, previousRollerKey(input.Arena)).Err(); err != nil {
		return fmt.Errorf("failed to clear previous roller: %w", err)
	}

	return nil
}

// GetDiceCount returns the arena's dice count, self-healing to 1 when the
// key is absent or holds something below 1
func (r *redisRepository) GetDiceCount(ctx context.Context, input *GetDiceCountInput) (int, error) {
	if input == nil || input.Arena == "" {
		return 0, errors.New("input and arena cannot be empty")
	}

	key := diceCountKey(input.Arena)

	raw, err := r.client.Get(ctx, key).Result()
	if err != nil && err != redis.Nil {
		return 0, fmt.Errorf("failed to get dice count: %w", err)
	}

	count, _ := strconv.Atoi(raw)
	if count < 1 {
		if err := r.client.Set(ctx, key, "1", 0).Err(); err != nil {
			return 0, fmt.Errorf("failed to initialize dice count: %w", err)
		}
		return 1, nil
	}

	return count, nil
}

// IncrementDiceCount escalates the arena's dice count after a max roll
func (r *redisRepository) IncrementDiceCount(ctx context.Context, input *IncrementDiceCountInput) error {
	if input == nil || input.Arena == "" {
		return errors.New("input and arena cannot be empty")
	}

	if err := r.client.Incr(ctx, diceCountKey(input.Arena)).Err(); err != nil {
		return fmt.Errorf("failed to increment dice count: %w", err)
	}

	return nil
}

// GetStreak returns the current holder of a streak record
func (r *redisRepository) GetStreak(ctx context.Context, input *GetStreakInput) (*models.StreakHolder, error) {
	if input == nil || input.Arena == "" || input.Kind == "" {
		return nil, errors.New("input, arena, and kind cannot be empty")
	}

	pipe := r.client.Pipeline()
	holderCmd := pipe.Get(ctx, streakHolderKey(input.Arena, input.Kind))
	lengthCmd := pipe.Get(ctx, streakLengthKey(input.Arena, input.Kind))
	tokenCmd := pipe.Get(ctx, streakTokenKey(input.Arena, input.Kind))

	if _, err := pipe.Exec(ctx); err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to get %s streak: %w", input.Kind, err)
	}

	holder := &models.StreakHolder{Name: models.Nobody}

	if name, err := holderCmd.Result(); err == nil {
		holder.Name = name
	}
	if raw, err := lengthCmd.Result(); err == nil {
		holder.Length, _ = strconv.Atoi(raw)
	}
	if token, err := tokenCmd.Result(); err == nil {
		holder.Token = token
	} else if input.Kind == models.StreakDoubler {
		holder.Token = defaultDoublerToken
	}

	return holder, nil
}

// AdvanceStreak atomically resets or extends a streak record
func (r *redisRepository) AdvanceStreak(ctx context.Context, input *AdvanceStreakInput) (*AdvanceStreakOutput, error) {
	if input == nil || input.Arena == "" || input.Kind == "" || input.HolderName == "" {
		return nil, errors.New("input, arena, kind, and holder name cannot be empty")
	}

	keys := []string{
		streakHolderKey(input.Arena, input.Kind),
		streakLengthKey(input.Arena, input.Kind),
		streakTokenKey(input.Arena, input.Kind),
	}

	result, err := advanceStreakScript.Run(ctx, r.client, keys, input.HolderName, input.Token).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to advance %s streak: %w", input.Kind, err)
	}

	reply, ok := result.([]interface{})
	if !ok || len(reply) != 3 {
		return nil, fmt.Errorf("unexpected advance streak reply: %v", result)
	}

	output := &AdvanceStreakOutput{}
	if reset, ok := reply[0].(int64); ok {
		output.Reset = reset == 1
	}
	if length, ok := reply[1].(int64); ok {
		output.Length = int(length)
	}
	if token, ok := reply[2].(string); ok {
		output.Token = token
	}
	if output.Token == "" && input.Kind == models.StreakDoubler {
		output.Token = defaultDoublerToken
	}

	return output, nil
}

// GetDailyRecord returns one calendar day's high/low records. Missing
// fields come back as zero values.
func (r *redisRepository) GetDailyRecord(ctx context.Context, input *GetDailyRecordInput) (*models.DailyRecord, error) {
	if input == nil || input.Arena == "" {
		return nil, errors.New("input and arena cannot be empty")
	}

	pipe := r.client.Pipeline()
	highScoreCmd := pipe.Get(ctx, dailyHighScoreKey(input.Arena, input.Day))
	highNameCmd := pipe.Get(ctx, dailyHighNameKey(input.Arena, input.Day))
	lowScoreCmd := pipe.Get(ctx, dailyLowScoreKey(input.Arena, input.Day))
	lowNameCmd := pipe.Get(ctx, dailyLowNameKey(input.Arena, input.Day))

	if _, err := pipe.Exec(ctx); err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to get daily record: %w", err)
	}

	record := &models.DailyRecord{}

	if raw, err := highScoreCmd.Result(); err == nil {
		record.HighScore, _ = strconv.Atoi(raw)
	}
	if name, err := highNameCmd.Result(); err == nil {
		record.HighName = name
	}
	if raw, err := lowScoreCmd.Result(); err == nil {
		record.LowScore, _ = strconv.Atoi(raw)
	}
	if name, err := lowNameCmd.Result(); err == nil {
		record.LowName = name
	}

	return record, nil
}

// UpdateDailyRecord atomically applies a roll to the day's high/low records
// and reports the resulting trend
func (r *redisRepository) UpdateDailyRecord(ctx context.Context, input *UpdateDailyRecordInput) (*UpdateDailyRecordOutput, error) {
	if input == nil || input.Arena == "" || input.HolderName == "" {
		return nil, errors.New("input, arena, and holder name cannot be empty")
	}

	if input.TTL <= 0 {
		return nil, errors.New("TTL must be positive")
	}

	keys := []string{
		dailyHighScoreKey(input.Arena, input.Day),
		dailyHighNameKey(input.Arena, input.Day),
		dailyLowScoreKey(input.Arena, input.Day),
		dailyLowNameKey(input.Arena, input.Day),
	}

	ttlSeconds := int(input.TTL.Seconds())

	trend, err := updateDailyRecordScript.Run(ctx, r.client, keys, input.Sum, input.HolderName, ttlSeconds).Text()
	if err != nil {
		return nil, fmt.Errorf("failed to update daily record: %w", err)
	}

	return &UpdateDailyRecordOutput{
		Trend: models.Trend(trend),
	}, nil
}

// BumpSpeedCounter increments the self-expiring rapid-roll counter and
// returns how many rolls landed inside the window before this one
func (r *redisRepository) BumpSpeedCounter(ctx context.Context, input *BumpSpeedCounterInput) (int, error) {
	if input == nil || input.Arena == "" {
		return 0, errors.New("input and arena cannot be empty")
	}

	if input.TTL <= 0 {
		return 0, errors.New("TTL must be positive")
	}

	key := speedKey(input.Arena)

	raw, err := r.client.Get(ctx, key).Result()
	if err != nil && err != redis.Nil {
		return 0, fmt.Errorf("failed to get speed counter: %w", err)
	}
	before, _ := strconv.Atoi(raw)

	pipe := r.client.TxPipeline()
	pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, input.TTL)

	if _, err := pipe.Exec(ctx); err != nil {
		return 0, fmt.Errorf("failed to bump speed counter: %w", err)
	}

	return before, nil
}

// GetAllTimeRecord returns the arena's all-time high score. A zero-value
// record means nothing has been recorded yet.
func (r *redisRepository) GetAllTimeRecord(ctx context.Context, input *GetAllTimeRecordInput) (*models.AllTimeRecord, error) {
	if input == nil || input.Arena == "" {
		return nil, errors.New("input and arena cannot be empty")
	}

	pipe := r.client.Pipeline()
	scoreCmd := pipe.Get(ctx, highScoreKey(input.Arena))
	nameCmd := pipe.Get(ctx, highNameKey(input.Arena))

	if _, err := pipe.Exec(ctx); err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to get all-time record: %w", err)
	}

	record := &models.AllTimeRecord{}

	if raw, err := scoreCmd.Result(); err == nil {
		record.Score, _ = strconv.Atoi(raw)
	}
	if name, err := nameCmd.Result(); err == nil {
		record.Name = name
	}

	return record, nil
}

// UpdateAllTimeRecord raises the all-time high score when beaten
func (r *redisRepository) UpdateAllTimeRecord(ctx context.Context, input *UpdateAllTimeRecordInput) error {
	if input == nil || input.Arena == "" || input.HolderName == "" {
		return errors.New("input, arena, and holder name cannot be empty")
	}

	keys := []string{
		highScoreKey(input.Arena),
		highNameKey(input.Arena),
	}

	if err := updateAllTimeRecordScript.Run(ctx, r.client, keys, input.Sum, input.HolderName).Err(); err != nil {
		return fmt.Errorf("failed to update all-time record: %w", err)
	}

	return nil
}

// IncrementRollCount bumps a player's cumulative roll count
func (r *redisRepository) IncrementRollCount(ctx context.Context, input *IncrementRollCountInput) error {
	if input == nil || input.Arena == "" || input.PlayerID == "" {
		return errors.New("input, arena, and player ID cannot be empty")
	}

	if err := r.client.HIncrBy(ctx, rollCountsKey(input.Arena), input.PlayerID, 1).Err(); err != nil {
		return fmt.Errorf("failed to increment roll count: %w", err)
	}

	return nil
}

// GetRollCounts returns every player's cumulative roll count
func (r *redisRepository) GetRollCounts(ctx context.Context, input *GetRollCountsInput) (map[string]int, error) {
	if input == nil || input.Arena == "" {
		return nil, errors.New("input and arena cannot be empty")
	}

	raw, err := r.client.HGetAll(ctx, rollCountsKey(input.Arena)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get roll counts: %w", err)
	}

	counts := make(map[string]int, len(raw))
	for playerID, value := range raw {
		count, _ := strconv.Atoi(value)
		counts[playerID] = count
	}

	return counts, nil
}
