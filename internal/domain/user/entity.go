package user

import "time"

// AppUser is one document in the users collection. PasswordHash is a bcrypt
// hash and never leaves the service layer.
type AppUser struct {
	ID           string    `bson:"_id" json:"id"`
	DisplayName  string    `bson:"displayName" json:"displayName"`
	Email        string    `bson:"email" json:"email"`
	PasswordHash string    `bson:"password" json:"-"`
	Phone        string    `bson:"phone,omitempty" json:"phone,omitempty"`
	RoleID       string    `bson:"roleId,omitempty" json:"roleId,omitempty"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
}
