package email

import (
	"fmt"
	"strings"
	"time"
)

type Message struct {
	Subject string
	Body    string
}

type FixtureLine struct {
	Round     int
	HomeTeam  string
	AwayTeam  string
	KickoffAt time.Time
}

type FixturesDetails struct {
	CompetitionName string
	TeamName        string
	Stage           string
	Fixtures        []FixtureLine
}

type ResultDetails struct {
	CompetitionName string
	HomeTeam        string
	AwayTeam        string
	HomeScore       int
	AwayScore       int
	HomePenalties   *int
	AwayPenalties   *int
	KickoffAt       time.Time
}

func FormatKickoff(t time.Time) string {
	return t.Format("Mon, Jan 2, 2006 3:04 PM MST")
}

// BuildFixturesPublished lists the fixtures of one team.
func BuildFixturesPublished(details FixturesDetails) Message {
	competition := orDefault(details.CompetitionName, "your competition")
	stage := orDefault(details.Stage, "Fixtures")

	lines := []string{
		fmt.Sprintf("%s for %s have been published.", stage, competition),
		"",
	}
	if team := strings.TrimSpace(details.TeamName); team != "" {
		lines = append(lines, fmt.Sprintf("Team: %s", team), "")
	}
	if len(details.Fixtures) == 0 {
		lines = append(lines, "No matches are scheduled for your team.")
	}
	for _, f := range details.Fixtures {
		lines = append(lines, fmt.Sprintf("Round %d: %s vs %s - %s", f.Round, f.HomeTeam, f.AwayTeam, FormatKickoff(f.KickoffAt)))
	}

	return Message{
		Subject: fmt.Sprintf("%s Published - %s", stage, competition),
		Body:    strings.Join(lines, "\n"),
	}
}

func BuildResultPosted(details ResultDetails) Message {
	competition := orDefault(details.CompetitionName, "your competition")
	home := orDefault(details.HomeTeam, "Home")
	away := orDefault(details.AwayTeam, "Away")

	score := fmt.Sprintf("%s %d - %d %s", home, details.HomeScore, details.AwayScore, away)
	lines := []string{
		"A result has been posted.",
		"",
		fmt.Sprintf("Competition: %s", competition),
		fmt.Sprintf("Result: %s", score),
	}
	if details.HomePenalties != nil && details.AwayPenalties != nil {
		lines = append(lines, fmt.Sprintf("Penalties: %d - %d", *details.HomePenalties, *details.AwayPenalties))
	}
	if !details.KickoffAt.IsZero() {
		lines = append(lines, fmt.Sprintf("Played: %s", FormatKickoff(details.KickoffAt)))
	}

	return Message{
		Subject: fmt.Sprintf("Result: %s", score),
		Body:    strings.Join(lines, "\n"),
	}
}

func orDefault(value, fallback string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return fallback
	}
	return value
}
