// Package repomanager wires the concrete repositories to a shared database
// handle and owns schema migrations.
package repomanager

import (
	"database/sql"

	"github.com/anmol0706/GPC-Itarsi-sub002/internal/dbx"
	"github.com/anmol0706/GPC-Itarsi-sub002/internal/server/repositories/admissions"
	"github.com/anmol0706/GPC-Itarsi-sub002/internal/server/repositories/attendance"
	"github.com/anmol0706/GPC-Itarsi-sub002/internal/server/repositories/materials"
	"github.com/anmol0706/GPC-Itarsi-sub002/internal/server/repositories/notices"
	"github.com/anmol0706/GPC-Itarsi-sub002/internal/server/repositories/profiles"
	"github.com/anmol0706/GPC-Itarsi-sub002/internal/server/repositories/users"
)

// RepositoryManager builds per-aggregate repositories bound to the given
// handle, which is either the shared *sql.DB or a transaction from
// dbx.WithTx. Conn exposes the raw connection for transactional work.
type RepositoryManager interface {
	Conn() *sql.DB
	Users(db dbx.DBTX) users.Repository
	Profiles(db dbx.DBTX) profiles.Repository
	Attendance(db dbx.DBTX) attendance.Repository
	Notices(db dbx.DBTX) notices.Repository
	Materials(db dbx.DBTX) materials.Repository
	Admissions(db dbx.DBTX) admissions.Repository
	Close() error
}
