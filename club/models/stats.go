package models

type Stats struct {
	TotalPlayers        int64            `json:"totalPlayers"`
	TotalTeams          int64            `json:"totalTeams"`
	TotalTournaments    int64            `json:"totalTournaments"`
	TournamentsByStatus map[string]int64 `json:"tournamentsByStatus"`
}
