package domain

// Graph is the fully assembled entity graph produced by one generation run.
// The population driver owns it exclusively while building; afterwards it is
// immutable and each sink projects it independently.
type Graph struct {
	Users        []*User
	DefaultTeams []*Team
	ExtraTeams   []*Team
	Lists        []*TaskList
}

// Teams returns all teams in serialization order: default teams first, then
// extra teams in minting order.
func (g *Graph) Teams() []*Team {
	teams := make([]*Team, 0, len(g.DefaultTeams)+len(g.ExtraTeams))
	teams = append(teams, g.DefaultTeams...)
	teams = append(teams, g.ExtraTeams...)
	return teams
}
