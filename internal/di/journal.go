package di

import (
	"respire/internal/coping"
	"respire/internal/services"
)

// provideJournal lets the panic protocol archive into the trigger log.
func provideJournal(log services.TriggerLogServiceInterface) coping.Journal {
	return log
}
