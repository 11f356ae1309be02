package service

import "callistonft/domain/market"

// StaticRoles is the default AccessController: fixed allowlists loaded
// from config at boot. Real role storage is the catalog collaborator's
// problem; the core only asks yes/no questions.
type StaticRoles struct {
	minters map[market.Account]bool
	admins  map[market.Account]bool
}

func NewStaticRoles(minters, admins []uint64) *StaticRoles {
	r := &StaticRoles{
		minters: make(map[market.Account]bool, len(minters)),
		admins:  make(map[market.Account]bool, len(admins)),
	}
	for _, a := range minters {
		r.minters[market.Account(a)] = true
	}
	for _, a := range admins {
		r.admins[market.Account(a)] = true
	}
	return r
}

func (r *StaticRoles) IsAuthorizedMinter(a market.Account) bool { return r.minters[a] }
func (r *StaticRoles) IsAuthorizedAdmin(a market.Account) bool  { return r.admins[a] }
