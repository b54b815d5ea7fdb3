package model

import (
	"time"

	"salesdesk/shared/constant"
	gModel "salesdesk/shared/model"
)

const (
	TableName  = "users"
	EntityName = "user"
)

type User struct {
	ID        string     `db:"id"`
	Email     string     `db:"email"`
	Password  string     `db:"password"`
	FullName  *string    `db:"full_name"`
	Role      string     `db:"role"`
	Tier      string     `db:"tier"`
	LastLogin *time.Time `db:"last_login"`
	Active    bool       `db:"active"`
	gModel.Metadata
}

// CanInquire reports whether the user's subscription covers the assistant
// pipeline. The free tier is read-only on purpose.
func (u User) CanInquire() bool {
	return u.Active && u.Tier != constant.TierFree
}
