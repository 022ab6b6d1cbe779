package internal

import (
	"net/http"
	"respire/internal/controllers"
	"respire/internal/providers"
)

func InitRoutes(ledger *controllers.LedgerController, panicCtl *controllers.PanicController) providers.RouterProviderInterface {
	routers := providers.NewRouterProvider()

	routers.Get("/quit", http.HandlerFunc(ledger.GetQuit))
	routers.Post("/quit/start", http.HandlerFunc(ledger.StartQuit))
	routers.Post("/quit/reset", http.HandlerFunc(ledger.ResetQuit))
	routers.Post("/quit/relapse", http.HandlerFunc(ledger.Relapse))

	routers.Get("/settings", http.HandlerFunc(ledger.GetSettings))
	routers.Post("/settings", http.HandlerFunc(ledger.SaveSettings))

	routers.Get("/stats", http.HandlerFunc(ledger.GetStats))
	routers.Get("/stats/stream", http.HandlerFunc(ledger.StreamStats))
	routers.Get("/milestones", http.HandlerFunc(ledger.GetMilestones))

	routers.Get("/bounties", http.HandlerFunc(ledger.GetBounties))
	routers.Post("/bounties", http.HandlerFunc(ledger.AddBounty))
	routers.Post("/bounties/redeem", http.HandlerFunc(ledger.RedeemBounty))
	routers.Post("/bounties/delete", http.HandlerFunc(ledger.DeleteBounty))

	routers.Get("/logs", http.HandlerFunc(ledger.GetLogs))
	routers.Post("/logs", http.HandlerFunc(ledger.AppendLog))

	routers.Post("/reset", http.HandlerFunc(ledger.FactoryReset))

	routers.Get("/panic", http.HandlerFunc(panicCtl.Current))
	routers.Post("/panic/open", http.HandlerFunc(panicCtl.Open))
	routers.Post("/panic/event", http.HandlerFunc(panicCtl.Event))
	return routers
}
