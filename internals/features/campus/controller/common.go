package controller

import (
	"github.com/google/uuid"

	helperAuth "sekolahku_backend/internals/helpers/auth"
)

// campusFor: actor ber-scope selalu menulis ke campus-nya sendiri;
// owner global wajib menyebut campus tujuan di payload.
func campusFor(actor *helperAuth.Actor, req *uuid.UUID) uuid.UUID {
	if actor != nil && actor.Scoped() {
		return actor.CampusID
	}
	if req != nil {
		return *req
	}
	return uuid.Nil
}
