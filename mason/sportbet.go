package mason

import (
	"github.com/sportbet/sportbet-api/models"
)

// Namespace prefixes every custom link relation of this API.
const Namespace = "sportbet"

// SportbetBuilder wraps a generic document with the API's own control
// vocabulary. Resource handlers use it to advertise which actions a client
// can take next, so clients never hard-code the URL layout.
type SportbetBuilder struct {
	Document Document
}

// NewBuilder returns a builder over a document seeded with the given
// data fields.
func NewBuilder(initial map[string]any) *SportbetBuilder {
	return &SportbetBuilder{Document: New(initial)}
}

// AddSelf attaches the document's own self link.
func (b *SportbetBuilder) AddSelf(href, title string) {
	b.Document.AddControl("self", Control{Href: href, Title: title})
}

// AddProfile attaches the profile control describing the resource type.
func (b *SportbetBuilder) AddProfile(href, title string) {
	b.Document.AddControl("profile", Control{Href: href, Title: title})
}

// AddNamespace registers the sportbet namespace with its link-relations URI.
func (b *SportbetBuilder) AddNamespace() {
	b.Document.AddNamespace(Namespace, LinkRelationsURL)
}

// AddItem appends a sub-builder's document to the collection.
func (b *SportbetBuilder) AddItem(item *SportbetBuilder) {
	b.Document.AddItem(item.Document)
}

// GET controls to show items.

func (b *SportbetBuilder) AddControlAllEvents() {
	b.Document.AddControl(Namespace+":events-all", Control{
		Href:  EventsURL(),
		Title: "All events",
	})
}

func (b *SportbetBuilder) AddControlSingleEvent(event *models.Event) {
	b.Document.AddControl(Namespace+":event-"+event.Name, Control{
		Href:  EventURL(event.Name),
		Title: "Event " + event.Name,
	})
}

func (b *SportbetBuilder) AddControlAllGames(event *models.Event) {
	b.Document.AddControl(Namespace+":games-all", Control{
		Href:  GamesURL(event.Name),
		Title: "Games in " + event.Name,
	})
}

func (b *SportbetBuilder) AddControlSingleGame(event *models.Event, game *models.Game) {
	b.Document.AddControl(Namespace+":game-"+game.GameNbr, Control{
		Href:  GameURL(event.Name, game.GameNbr),
		Title: "Game #" + game.GameNbr,
	})
}

func (b *SportbetBuilder) AddControlAllBets(event *models.Event) {
	b.Document.AddControl(Namespace+":bets-all", Control{
		Href:  BetsURL(event.Name),
		Title: "Bets in " + event.Name,
	})
}

func (b *SportbetBuilder) AddControlMemberBets(event *models.Event, member *models.Member) {
	b.Document.AddControl(Namespace+":bets", Control{
		Href:  MemberBetsURL(event.Name, member.Nickname),
		Title: member.Nickname + " bets in " + event.Name,
	})
}

// AddControlGameBets links the bet listing, narrowed to one game when a
// game is given.
func (b *SportbetBuilder) AddControlGameBets(event *models.Event, game *models.Game) {
	name := Namespace + ":bets-all"
	href := BetsURL(event.Name)
	title := "Bets in " + event.Name
	if game != nil {
		name = Namespace + ":bets-game-" + game.GameNbr
		href = GameBetsURL(event.Name, game.GameNbr)
		title = "Bets for game-" + game.GameNbr + " " + game.HomeTeam + " - " + game.GuestTeam
	}
	b.Document.AddControl(name, Control{Href: href, Title: title})
}

func (b *SportbetBuilder) AddControlAllMembers(event *models.Event) {
	b.Document.AddControl(Namespace+":members-all", Control{
		Href:  MembersURL(event.Name),
		Title: "Members in " + event.Name,
	})
}

func (b *SportbetBuilder) AddControlSingleMember(event *models.Event, member *models.Member) {
	b.Document.AddControl(Namespace+":member-"+member.Nickname, Control{
		Href:  MemberURL(event.Name, member.Nickname),
		Title: "Member " + member.Nickname,
	})
}

// AddControlBettingStatus links the leaderboard, or one member's detailed
// points when a member is given.
func (b *SportbetBuilder) AddControlBettingStatus(event *models.Event, member *models.Member) {
	name := Namespace + ":status-all"
	href := BetStatusURL(event.Name)
	title := "Betting status " + event.Name
	if member != nil {
		name = Namespace + ":status-" + member.Nickname
		href = MemberBetStatusURL(event.Name, member.Nickname)
		title = member.Nickname + " bet status " + event.Name
	}
	b.Document.AddControl(name, Control{Href: href, Title: title})
}

// DELETE controls.

func (b *SportbetBuilder) AddControlDeleteEvent(event *models.Event) {
	b.Document.AddControlDelete(Namespace, "Delete event", EventURL(event.Name))
}

func (b *SportbetBuilder) AddControlDeleteGame(event *models.Event, game *models.Game) {
	b.Document.AddControlDelete(Namespace, "Delete game", GameURL(event.Name, game.GameNbr))
}

func (b *SportbetBuilder) AddControlDeleteMember(event *models.Event, member *models.Member) {
	b.Document.AddControlDelete(Namespace, "Delete member", MemberURL(event.Name, member.Nickname))
}

// POST controls to add items.

func (b *SportbetBuilder) AddControlAddEvent() {
	b.Document.AddControlPost(
		Namespace+":add-event",
		"Add event",
		EventsURL(),
		models.EventSchema(),
	)
}

func (b *SportbetBuilder) AddControlAddMember(event *models.Event) {
	b.Document.AddControlPost(
		Namespace+":add-member",
		"Add member to "+event.Name,
		MembersURL(event.Name),
		models.MemberSchema(),
	)
}

func (b *SportbetBuilder) AddControlAddGame(event *models.Event) {
	b.Document.AddControlPost(
		Namespace+":add-game",
		"Add game to "+event.Name,
		GamesURL(event.Name),
		models.GameSchema(false),
	)
}

func (b *SportbetBuilder) AddControlAddBet(event *models.Event, member *models.Member) {
	b.Document.AddControlPost(
		Namespace+":add-bet",
		"Add bet for "+member.Nickname,
		MemberBetsURL(event.Name, member.Nickname),
		models.BetSchema(false),
	)
}

// PUT controls for editing items.

func (b *SportbetBuilder) AddControlEditResult(event *models.Event, game *models.Game) {
	b.Document.AddControlPut(
		Namespace,
		"Edit game",
		GameURL(event.Name, game.GameNbr),
		models.GameSchema(true),
	)
}

func (b *SportbetBuilder) AddControlEditBet(event *models.Event, member *models.Member) {
	b.Document.AddControlPut(
		Namespace,
		"Edit bet",
		MemberBetsURL(event.Name, member.Nickname),
		models.BetSchema(false),
	)
}

// ErrorBody builds the uniform error document carried by every failure
// response: the @error element plus a profile control pointing at the
// error documentation. Nothing else is ever added to it.
func ErrorBody(title string, details ...string) Document {
	d := New(nil)
	d.AddError(title, details...)
	d.AddControl("profile", Control{Href: ErrorProfile})
	return d
}
