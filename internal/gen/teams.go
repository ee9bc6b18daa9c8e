package gen

import "todoseed/pkg/domain"

// Fixed default-team names. The hierarchy is shallow by construction:
// interns is a child of temp, and nothing else declares a parent.
const (
	TeamTemp    = "temp"
	TeamAdmin   = "admin"
	TeamInterns = "interns"
)

// defaultTeams holds the three default teams in serialization order:
// temp, admin, interns.
type defaultTeams struct {
	temp    *domain.Team
	admin   *domain.Team
	interns *domain.Team
}

// newDefaultTeams builds the fixed hierarchy. Not randomized.
func newDefaultTeams() defaultTeams {
	temp := &domain.Team{Name: TeamTemp}
	admin := &domain.Team{Name: TeamAdmin}
	interns := &domain.Team{Name: TeamInterns, Parents: []*domain.Team{temp}}
	return defaultTeams{temp: temp, admin: admin, interns: interns}
}

func (d defaultTeams) all() []*domain.Team {
	return []*domain.Team{d.temp, d.admin, d.interns}
}

// bundles are the three fixed default-team membership starting sets a user
// is assigned before extra teams are appended.
func (d defaultTeams) bundles() [][]*domain.Team {
	return [][]*domain.Team{
		{d.temp},
		{d.admin},
		{d.interns, d.temp},
	}
}

// randomTeamOrExisting mints a brand-new uniquely named extra team with
// probability 1-p and appends it to the shared pool; otherwise it returns a
// uniformly chosen default team. Called independently for a list's readers
// and editors, so the two choices are uncorrelated.
func (g *generator) randomTeamOrExisting() *domain.Team {
	if g.src.Float64() > g.cfg.DefaultTeamProbability {
		team := &domain.Team{Name: g.src.NextID()}
		g.pool = append(g.pool, team)
		return team
	}
	defaults := g.defaults.all()
	return defaults[g.src.Intn(len(defaults))]
}

// sampleExtraTeams draws up to limit extra teams from the pool without
// replacement, preserving draw order. An empty pool degenerately samples
// zero. The sampled teams carry no edges to each other or to any bundle.
func (g *generator) sampleExtraTeams(limit int) []*domain.Team {
	if len(g.pool) < limit {
		limit = len(g.pool)
	}
	k := g.src.Intn(limit + 1)
	if k == 0 {
		return nil
	}
	idx := make([]int, len(g.pool))
	for i := range idx {
		idx[i] = i
	}
	picked := make([]*domain.Team, 0, k)
	for i := 0; i < k; i++ {
		j := i + g.src.Intn(len(idx)-i)
		idx[i], idx[j] = idx[j], idx[i]
		picked = append(picked, g.pool[idx[i]])
	}
	return picked
}
