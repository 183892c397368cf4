package routes

import (
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/sportbet/sportbet-api/handlers"
	"github.com/sportbet/sportbet-api/middleware"
	"github.com/sportbet/sportbet-api/services"
)

type Handlers struct {
	Event     *handlers.EventHandler
	Member    *handlers.MemberHandler
	Game      *handlers.GameHandler
	Bet       *handlers.BetHandler
	BetStatus *handlers.BetStatusHandler
	WebSocket *handlers.WebSocketHandler
	Static    *handlers.StaticHandler
}

// SetupRoutes wires the resource surface. All /api resources demand the
// user API key; event management and emblem upload demand the admin key.
func SetupRoutes(router *chi.Mux, auth services.AuthService, resolver *middleware.Resolver, h Handlers) {
	router.Use(chiMiddleware.Logger)
	router.Use(chiMiddleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", middleware.APIKeyHeader},
	}))

	requireKey := middleware.RequireAPIKey(auth, false)
	requireAdminKey := middleware.RequireAPIKey(auth, true)

	// Documentation endpoints stay open, the controls point at them.
	router.Get("/profiles/{profile}/", h.Static.SendProfile)
	router.Get("/sportbet/link-relations/", h.Static.SendLinkRelations)
	router.Get("/apidocs/openapi.json", h.Static.SendOpenAPI)
	router.Get("/apidocs/*", httpSwagger.Handler(httpSwagger.URL("/apidocs/openapi.json")))

	// Live leaderboard subscriptions, one room per event.
	router.Get("/ws/{event}", h.WebSocket.ServeWs)

	router.Route("/api", func(r chi.Router) {
		r.Get("/", h.Event.APIEntry)

		r.With(requireKey).Get("/events/", h.Event.GetAllEvents)
		r.With(requireAdminKey).Post("/events/", h.Event.CreateEvent)

		r.Route("/events/{event}", func(r chi.Router) {
			// The resolver runs before the key check, so an unknown
			// event is 404 even without a key.
			r.Use(resolver.EventCtx)
			r.With(requireKey).Get("/", h.Event.GetEvent)
			r.With(requireAdminKey).Delete("/", h.Event.DeleteEvent)
			r.With(requireAdminKey).Post("/emblem", h.Event.UploadEmblem)
		})

		r.Route("/{event}", func(r chi.Router) {
			r.Use(requireKey)
			r.Use(resolver.EventCtx)

			r.Get("/members/", h.Member.ListMembers)
			r.Post("/members/", h.Member.AddMember)
			r.Route("/members/{member}", func(r chi.Router) {
				r.Use(resolver.MemberCtx)
				r.Get("/", h.Member.GetMember)
				r.Delete("/", h.Member.DeleteMember)
			})

			r.Get("/games/", h.Game.ListGames)
			r.Post("/games/", h.Game.AddGame)
			r.Route("/games/{game}", func(r chi.Router) {
				r.Use(resolver.GameCtx)
				r.Get("/", h.Game.GetGame)
				r.Put("/", h.Game.UpdateResult)
				r.Delete("/", h.Game.DeleteGame)
			})

			r.Get("/bets/", h.Bet.ListBets)
			r.Route("/bets/game/{game}", func(r chi.Router) {
				r.Use(resolver.GameCtx)
				r.Get("/", h.Bet.ListBets)
			})
			r.Route("/bets/{member}", func(r chi.Router) {
				r.Use(resolver.MemberCtx)
				r.Get("/", h.Bet.ListMemberBets)
				r.Post("/", h.Bet.AddBet)
				r.Put("/", h.Bet.UpdateBet)
			})

			r.Get("/betstatus/", h.BetStatus.GetLeaderboard)
			r.Route("/betstatus/{member}", func(r chi.Router) {
				r.Use(resolver.MemberCtx)
				r.Get("/", h.BetStatus.GetMemberStatus)
			})
		})
	})
}
