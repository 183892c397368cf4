package mason

import "net/url"

// Canonical resource URLs. Handlers and controls always go through these
// so that clients never have to assemble a path themselves.

const APIRoot = "/api/"

// LinkRelationsURL documents the meaning of the namespace's control names.
const LinkRelationsURL = "/sportbet/link-relations/"

// Profile document URLs.
const (
	ErrorProfile     = "/profiles/error-profile/"
	EventProfile     = "/profiles/event-profile/"
	MemberProfile    = "/profiles/member-profile/"
	GameProfile      = "/profiles/game-profile/"
	BetProfile       = "/profiles/bet-profile/"
	BetStatusProfile = "/profiles/betstatus-profile/"
)

func segment(s string) string {
	return url.PathEscape(s)
}

func EventsURL() string {
	return APIRoot + "events/"
}

func EventURL(eventName string) string {
	return APIRoot + "events/" + segment(eventName) + "/"
}

func EventEmblemURL(eventName string) string {
	return APIRoot + "events/" + segment(eventName) + "/emblem"
}

func MembersURL(eventName string) string {
	return APIRoot + segment(eventName) + "/members/"
}

func MemberURL(eventName, nickname string) string {
	return APIRoot + segment(eventName) + "/members/" + segment(nickname) + "/"
}

func GamesURL(eventName string) string {
	return APIRoot + segment(eventName) + "/games/"
}

func GameURL(eventName, gameNbr string) string {
	return APIRoot + segment(eventName) + "/games/" + segment(gameNbr) + "/"
}

func BetsURL(eventName string) string {
	return APIRoot + segment(eventName) + "/bets/"
}

func GameBetsURL(eventName, gameNbr string) string {
	return APIRoot + segment(eventName) + "/bets/game/" + segment(gameNbr) + "/"
}

func MemberBetsURL(eventName, nickname string) string {
	return APIRoot + segment(eventName) + "/bets/" + segment(nickname) + "/"
}

func BetStatusURL(eventName string) string {
	return APIRoot + segment(eventName) + "/betstatus/"
}

func MemberBetStatusURL(eventName, nickname string) string {
	return APIRoot + segment(eventName) + "/betstatus/" + segment(nickname) + "/"
}
