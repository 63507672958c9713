package postgres

type favouriteTeamModel struct {
	UserID   int64  `db:"user_id"`
	TeamName string `db:"team_name"`
}
