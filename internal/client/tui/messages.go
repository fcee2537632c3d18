package tui

import (
	"github.com/edenai/tutorchat/internal/models"
)

// Messages produced by background commands. Each command performs exactly
// one network interaction and reports back here; the update loop is the
// only place state is mutated.

type sessionRestoredMsg struct {
	session *models.Session
	err     error
}

// authDoneMsg ends a login/registration flow. session is nil on failure;
// err carries the user-facing message.
type authDoneMsg struct {
	session   *models.Session
	loginType models.LoginType
	err       error
}

type askDoneMsg struct {
	answer string
	err    error
}

type passwordChangedMsg struct {
	err error
}

type statusLoadedMsg struct {
	status *models.SystemStatus
	err    error
}

type usersLoadedMsg struct {
	users []models.AdminUser
	err   error
}

type userUpdatedMsg struct {
	user *models.AdminUser
	err  error
}

type docsLoadedMsg struct {
	docs []models.KnowledgeDoc
	err  error
}

type docUploadedMsg struct {
	name string
	err  error
}

type docDeletedMsg struct {
	err error
}

// reloadDoneMsg reports the best-effort index rebuild. On error the prior
// document listing is left untouched.
type reloadDoneMsg struct {
	err error
}
