package parallel

import (
	"errors"
	"fmt"
	"sync"

	"github.com/born-ml/localcopy/internal/view"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// maxAutoTeamSize caps the team size chosen when TeamPolicy.TeamSize is AUTO.
const maxAutoTeamSize = 8

// TeamPolicy describes a league of teams.
type TeamPolicy struct {
	LeagueSize   int // Number of teams.
	TeamSize     int // Lanes per team; <= 0 selects a size automatically.
	ScratchBytes int // Scratch region per team, in bytes.
}

// ResolvedTeamSize returns the number of lanes each team runs with under cfg.
func (p TeamPolicy) ResolvedTeamSize(cfg Config) int {
	if p.TeamSize > 0 {
		return p.TeamSize
	}
	return min(max(cfg.NumWorkers, 1), maxAutoTeamSize)
}

// Member is one lane of one team in a Teams dispatch.
type Member struct {
	leagueRank int
	leagueSize int
	teamRank   int
	teamSize   int
	barrier    *Barrier
	scratch    *view.Arena
}

// LeagueRank returns the index of the member's team.
func (m *Member) LeagueRank() int { return m.leagueRank }

// LeagueSize returns the number of teams in the dispatch.
func (m *Member) LeagueSize() int { return m.leagueSize }

// TeamRank returns the member's lane index within its team.
func (m *Member) TeamRank() int { return m.teamRank }

// TeamSize returns the number of lanes in the member's team.
func (m *Member) TeamSize() int { return m.teamSize }

// TeamBarrier blocks until every lane of the team reaches it.
func (m *Member) TeamBarrier() { m.barrier.Wait() }

// TeamScratch returns the member's cursor into the team scratch region.
func (m *Member) TeamScratch() *view.Arena { return m.scratch }

// Thread returns a thread-scoped handle for this lane.
func (m *Member) Thread() Thread { return Thread{m: m} }

// TeamThreadRange executes f(i) for the share of [0, n) owned by m's lane.
// There is no barrier at the end; callers that need the other lanes' results
// must call TeamBarrier.
func TeamThreadRange(m *Member, n int, f func(i int)) {
	lo, hi := Chunk(n, m.teamRank, m.teamSize)
	for i := lo; i < hi; i++ {
		f(i)
	}
}

// Teams runs f once per lane of every team in the league.
//
// All lanes of a team run concurrently so that TeamBarrier can complete;
// at most cfg.NumWorkers teams run at a time. Each team gets a fresh zeroed
// scratch region of policy.ScratchBytes shared by its lanes.
//
// If any lane panics, the team's barrier is broken so its peers cannot
// deadlock, and Teams re-panics with the first panic value once every lane
// of the league has exited.
func Teams(policy TeamPolicy, f func(m *Member), cfg Config) {
	if policy.LeagueSize < 0 || policy.ScratchBytes < 0 {
		panic(fmt.Sprintf("teams: invalid policy %+v", policy))
	}

	logger := cfg.logger()
	teamSize := policy.ResolvedTeamSize(cfg)
	logger.Debug("team dispatch",
		zap.Int("league_size", policy.LeagueSize),
		zap.Int("team_size", teamSize),
		zap.Int("scratch_bytes", policy.ScratchBytes))

	var (
		mu         sync.Mutex
		firstPanic any
	)
	record := func(leagueRank, teamRank int, r any) {
		mu.Lock()
		defer mu.Unlock()
		if err, ok := r.(error); ok && errors.Is(err, ErrBrokenBarrier) {
			logger.Debug("lane released from broken barrier",
				zap.Int("league_rank", leagueRank), zap.Int("team_rank", teamRank))
		} else {
			logger.Error("lane panicked",
				zap.Int("league_rank", leagueRank), zap.Int("team_rank", teamRank), zap.Any("panic", r))
		}
		if firstPanic == nil {
			firstPanic = r
		}
	}

	var g errgroup.Group
	g.SetLimit(cfg.workers())
	for league := 0; league < policy.LeagueSize; league++ {
		g.Go(func() error {
			runTeam(league, policy.LeagueSize, teamSize, policy.ScratchBytes, f, record)
			return nil
		})
	}
	_ = g.Wait()

	if firstPanic != nil {
		panic(firstPanic)
	}
}

func runTeam(leagueRank, leagueSize, teamSize, scratchBytes int, f func(m *Member), record func(int, int, any)) {
	barrier := NewBarrier(teamSize)
	region := view.NewRegion(scratchBytes)

	var wg sync.WaitGroup
	for rank := 0; rank < teamSize; rank++ {
		m := &Member{
			leagueRank: leagueRank,
			leagueSize: leagueSize,
			teamRank:   rank,
			teamSize:   teamSize,
			barrier:    barrier,
			scratch:    view.NewArena(region),
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					record(leagueRank, rank, r)
					barrier.Break()
				}
			}()
			f(m)
		}()
	}
	wg.Wait()
}
