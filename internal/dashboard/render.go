package dashboard

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"
)

type Mode string

const (
	// ModePanel shows events next to both full lineups.
	ModePanel Mode = "panel"
	// ModeModal is the compact view: header, events and formations.
	ModeModal Mode = "modal"
)

func ParseMode(v string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(v))) {
	case ModePanel, "":
		return ModePanel, nil
	case ModeModal:
		return ModeModal, nil
	default:
		return "", fmt.Errorf("invalid mode %q: valid values are %s, %s", v, ModePanel, ModeModal)
	}
}

const (
	favouriteMark    = "*"
	notFavouriteMark = " "
	missingValue     = "-"
)

// Renderer writes dashboard views as plain text.
type Renderer struct {
	Mode     Mode
	Location *time.Location
}

func NewRenderer(mode Mode, loc *time.Location) Renderer {
	if mode == "" {
		mode = ModePanel
	}
	if loc == nil {
		loc = time.Local
	}
	return Renderer{Mode: mode, Location: loc}
}

// RenderFixtures writes one row per fixture. The star marks a favourite
// home team, which is also the team the toggle acts on.
func (r Renderer) RenderFixtures(w io.Writer, fixtures []Fixture, isFavourite func(team string) bool) error {
	if len(fixtures) == 0 {
		_, err := fmt.Fprintln(w, "No fixtures found for current filters.")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "\tID\tKICKOFF\tSTATUS\tLEAGUE\tHOME\tSCORE\tAWAY")
	for _, f := range fixtures {
		mark := notFavouriteMark
		if isFavourite != nil && isFavourite(f.Home.Name) {
			mark = favouriteMark
		}
		fmt.Fprintf(tw, "%s\t%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
			mark, f.ID, r.kickoff(f), FormatStatus(f), leagueLabel(f.League), f.Home.Name, score(f), f.Away.Name)
	}
	return tw.Flush()
}

func (r Renderer) RenderLeagues(w io.Writer, leagues []League) error {
	if len(leagues) == 0 {
		_, err := fmt.Fprintln(w, "No leagues today.")
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tLEAGUE\tCOUNTRY")
	for _, l := range leagues {
		fmt.Fprintf(tw, "%d\t%s\t%s\n", l.ID, l.Name, l.Country)
	}
	return tw.Flush()
}

// RenderDetails writes the match detail view in the renderer's mode.
func (r Renderer) RenderDetails(w io.Writer, d MatchDetails) error {
	var b strings.Builder
	switch r.Mode {
	case ModeModal:
		r.writeModalHeader(&b, d.Fixture)
		writeEvents(&b, "Events", d)
		writeFormations(&b, d)
	default:
		r.writePanelHeader(&b, d.Fixture)
		writeEvents(&b, "Match Events", d)
		if err := writeLineups(&b, d); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func (r Renderer) writePanelHeader(b *strings.Builder, f Fixture) {
	fmt.Fprintf(b, "%s | %s\n", leagueLabel(f.League), r.kickoff(f))
	fmt.Fprintf(b, "%s  %s  %s\n", f.Home.Name, score(f), f.Away.Name)
	if f.StatusLong != "" {
		fmt.Fprintln(b, f.StatusLong)
	}
	b.WriteString("\n")
}

func (r Renderer) writeModalHeader(b *strings.Builder, f Fixture) {
	fmt.Fprintf(b, "%s vs %s (%s)\n", f.Home.Name, f.Away.Name, FormatStatus(f))
	fmt.Fprintln(b, leagueLabel(f.League))
	b.WriteString("\n")
}

func writeEvents(b *strings.Builder, title string, d MatchDetails) {
	fmt.Fprintln(b, title)
	switch {
	case d.EventsErr != nil:
		fmt.Fprintf(b, "  Events unavailable: %v\n", d.EventsErr)
	case len(d.Events) == 0:
		fmt.Fprintln(b, "  No events available yet.")
	default:
		for _, ev := range d.Events {
			fmt.Fprintf(b, "  %s' %s - %s%s\n", minute(ev.Elapsed), orDefault(ev.Team, "Unknown team"), orDefault(ev.Player, "N/A"), eventKind(ev))
		}
	}
	b.WriteString("\n")
}

func writeFormations(b *strings.Builder, d MatchDetails) {
	fmt.Fprintln(b, "Formations")
	if d.LineupsErr != nil {
		fmt.Fprintf(b, "  Lineups unavailable: %v\n", d.LineupsErr)
		return
	}
	home, away := d.TeamLineups()
	if home == nil && away == nil {
		fmt.Fprintln(b, "  Lineups not available for this match.")
		return
	}
	fmt.Fprintf(b, "  %s: %s\n", lineupTeam(home, d.Fixture.Home.Name), lineupFormation(home))
	fmt.Fprintf(b, "  %s: %s\n", lineupTeam(away, d.Fixture.Away.Name), lineupFormation(away))
}

func writeLineups(b *strings.Builder, d MatchDetails) error {
	fmt.Fprintln(b, "Lineups")
	if d.LineupsErr != nil {
		fmt.Fprintf(b, "  Lineups unavailable: %v\n", d.LineupsErr)
		return nil
	}
	home, away := d.TeamLineups()
	if home == nil && away == nil {
		fmt.Fprintln(b, "  Lineups not available for this match.")
		return nil
	}

	tw := tabwriter.NewWriter(b, 0, 0, 4, ' ', 0)
	fmt.Fprintf(tw, "  %s\t%s\n", lineupTeam(home, d.Fixture.Home.Name), lineupTeam(away, d.Fixture.Away.Name))
	fmt.Fprintf(tw, "  Formation: %s\tFormation: %s\n", lineupFormation(home), lineupFormation(away))
	fmt.Fprintln(tw, "  Starting XI:\tStarting XI:")
	writePlayerColumns(tw, lineupPlayers(home, false), lineupPlayers(away, false))
	fmt.Fprintln(tw, "  Bench:\tBench:")
	writePlayerColumns(tw, lineupPlayers(home, true), lineupPlayers(away, true))
	return tw.Flush()
}

func writePlayerColumns(w io.Writer, home, away []LineupPlayer) {
	if len(home) == 0 && len(away) == 0 {
		fmt.Fprintln(w, "  No data\tNo data")
		return
	}
	rows := max(len(home), len(away))
	for i := 0; i < rows; i++ {
		fmt.Fprintf(w, "  %s\t%s\n", playerAt(home, i), playerAt(away, i))
	}
}

func playerAt(players []LineupPlayer, i int) string {
	if i >= len(players) {
		return ""
	}
	p := players[i]
	number := missingValue
	if p.Number != nil {
		number = itoa(*p.Number)
	}
	if p.Pos == "" {
		return fmt.Sprintf("#%s %s", number, p.Name)
	}
	return fmt.Sprintf("#%s %s (%s)", number, p.Name, p.Pos)
}

func lineupPlayers(l *Lineup, bench bool) []LineupPlayer {
	if l == nil {
		return nil
	}
	if bench {
		return l.Substitutes
	}
	return l.StartXI
}

func lineupTeam(l *Lineup, fallback string) string {
	if l == nil || l.Team == "" {
		return fallback
	}
	return l.Team
}

func lineupFormation(l *Lineup) string {
	if l == nil || l.Formation == "" {
		return missingValue
	}
	return l.Formation
}

func (r Renderer) kickoff(f Fixture) string {
	if f.Date.IsZero() {
		return missingValue
	}
	loc := r.Location
	if loc == nil {
		loc = time.Local
	}
	return f.Date.In(loc).Format("15:04")
}

func leagueLabel(l League) string {
	if l.Country == "" {
		return l.Name
	}
	return l.Name + " (" + l.Country + ")"
}

func score(f Fixture) string {
	return goals(f.HomeGoals) + " : " + goals(f.AwayGoals)
}

func goals(v *int) string {
	if v == nil {
		return missingValue
	}
	return itoa(*v)
}

func minute(v *int) string {
	if v == nil {
		return missingValue
	}
	return itoa(*v)
}

func eventKind(ev Event) string {
	if ev.Type == "" {
		return ""
	}
	if ev.Detail == "" {
		return " (" + ev.Type + ")"
	}
	return " (" + ev.Type + " - " + ev.Detail + ")"
}

func orDefault(v, fallback string) string {
	if strings.TrimSpace(v) == "" {
		return fallback
	}
	return v
}
