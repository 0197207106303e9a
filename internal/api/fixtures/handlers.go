// internal/api/fixtures/handlers.go
package fixtures

import (
	"context"
	"fmt"
	"math/rand/v2"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/codr1/Matchday/internal/api"
	"github.com/codr1/Matchday/internal/api/apiutil"
	"github.com/codr1/Matchday/internal/config"
	appdb "github.com/codr1/Matchday/internal/db"
	fixturegen "github.com/codr1/Matchday/internal/fixtures"
	"github.com/codr1/Matchday/internal/leagues"
)

const (
	generateTimeout = 10 * time.Second

	policyInterval = "interval"
	policyExplicit = "explicit"
)

type Settings struct {
	Location               *time.Location
	MinRosterSize          int
	RoundCadenceDays       int
	DefaultIntervalMinutes int
}

var (
	store    *appdb.DB
	settings = Settings{Location: time.UTC}
)

type generateRequest struct {
	Mode            string   `json:"mode"`
	Name            string   `json:"name"`
	TeamIDs         []int64  `json:"teamIds"`
	StartDate       string   `json:"startDate"`
	Time            string   `json:"time"`
	MatchesPerDay   int      `json:"matchesPerDay"`
	TimePolicy      string   `json:"timePolicy"`
	IntervalMinutes int      `json:"intervalMinutes"`
	Times           []string `json:"times"`
	Test            bool     `json:"test"`
	Seed            *uint64  `json:"seed"`
}

// InitHandlers must be called during server startup before handling requests.
func InitHandlers(database *appdb.DB, cfg *config.Config) {
	if database == nil {
		return
	}
	store = database
	if cfg != nil {
		settings = SettingsFromConfig(cfg)
	}
}

func SettingsFromConfig(cfg *config.Config) Settings {
	return Settings{
		Location:               cfg.Location(),
		MinRosterSize:          cfg.Fixtures.MinRosterSize,
		RoundCadenceDays:       cfg.Fixtures.RoundCadenceDays,
		DefaultIntervalMinutes: cfg.Fixtures.DefaultIntervalMinutes,
	}
}

// POST /api/v1/fixtures/generate
func HandleGenerateFixtures(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	database := loadDB()
	if database == nil {
		logger.Error().Msg("Database not initialized")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	var req generateRequest
	if err := apiutil.DecodeJSON(r, &req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	key, err := apiutil.IdempotencyKey(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	input, err := parseGenerateRequest(req, settings)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	input.IdempotencyKey = key

	ctx, cancel := context.WithTimeout(r.Context(), generateTimeout)
	defer cancel()

	schedule, err := leagues.CreateSchedule(ctx, database, input)
	if err != nil {
		api.WriteError(w, r, err, "Failed to generate fixtures")
		return
	}

	status := http.StatusCreated
	if schedule.Replayed {
		status = http.StatusOK
		logger.Info().Int64("competition_id", schedule.Competition.ID).Msg("Fixture generation replayed")
	}
	if err := apiutil.WriteJSON(w, status, api.NewScheduleResponse(schedule, settings.Location)); err != nil {
		logger.Error().Err(err).Int64("competition_id", schedule.Competition.ID).Msg("Failed to write fixtures response")
	}
}

func parseGenerateRequest(req generateRequest, s Settings) (leagues.ScheduleInput, error) {
	mode := strings.ToUpper(strings.TrimSpace(req.Mode))
	if mode == "" {
		mode = fixturegen.ModeClassic
	}
	if mode != fixturegen.ModeClassic && mode != fixturegen.ModeMiniLeague {
		return leagues.ScheduleInput{}, fmt.Errorf("mode must be %s or %s", fixturegen.ModeClassic, fixturegen.ModeMiniLeague)
	}
	if len(req.TeamIDs) == 0 {
		return leagues.ScheduleInput{}, fmt.Errorf("teamIds is required")
	}
	for _, id := range req.TeamIDs {
		if id <= 0 {
			return leagues.ScheduleInput{}, fmt.Errorf("teamIds must be positive")
		}
	}

	startDate, err := apiutil.ParseDate(req.StartDate, "startDate", s.Location)
	if err != nil {
		return leagues.ScheduleInput{}, err
	}
	policy, err := ParsePolicy(req.TimePolicy, req.Time, req.IntervalMinutes, req.Times, s.DefaultIntervalMinutes)
	if err != nil {
		return leagues.ScheduleInput{}, err
	}

	input := leagues.ScheduleInput{
		Name:             req.Name,
		Mode:             mode,
		TeamIDs:          req.TeamIDs,
		StartDate:        startDate,
		MatchesPerDay:    req.MatchesPerDay,
		Policy:           policy,
		IsTest:           req.Test,
		MinRosterSize:    s.MinRosterSize,
		RoundCadenceDays: s.RoundCadenceDays,
		Location:         s.Location,
	}
	if req.Seed != nil {
		input.Rand = rand.New(rand.NewPCG(*req.Seed, *req.Seed))
	}
	return input, nil
}

// ParsePolicy builds a kickoff policy. An empty policy name means explicit
// when times are given and interval otherwise.
func ParsePolicy(name, start string, intervalMinutes int, times []string, defaultInterval int) (fixturegen.TimePolicy, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		name = policyInterval
		if len(times) > 0 {
			name = policyExplicit
		}
	}

	switch name {
	case policyInterval:
		clock, err := fixturegen.ParseClock(start)
		if err != nil {
			return nil, err
		}
		if intervalMinutes == 0 {
			intervalMinutes = defaultInterval
		}
		policy := fixturegen.IntervalPolicy{Start: clock, IntervalMinutes: intervalMinutes}
		return policy, policy.Validate()
	case policyExplicit:
		clocks := make([]fixturegen.Clock, 0, len(times))
		for _, raw := range times {
			clock, err := fixturegen.ParseClock(raw)
			if err != nil {
				return nil, err
			}
			clocks = append(clocks, clock)
		}
		policy := fixturegen.ExplicitTimesPolicy{Times: clocks}
		return policy, policy.Validate()
	default:
		return nil, fmt.Errorf("timePolicy must be %s or %s", policyInterval, policyExplicit)
	}
}

func loadDB() *appdb.DB {
	return store
}
