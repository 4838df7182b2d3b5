package model

import (
	"database/sql"

	"kanpai/shared/model"
)

const (
	TableName  = "users"
	EntityName = "user"

	FieldID        = "id"
	FieldEmail     = "email"
	FieldPassword  = "password"
	FieldFirstName = "first_name"
	FieldLastName  = "last_name"
	FieldRole      = "role"
	FieldActive    = "active"
	FieldLastLogin = "last_login"
)

type User struct {
	ID        string       `db:"id"`
	Email     string       `db:"email"`
	Password  string       `db:"password"`
	FirstName string       `db:"first_name"`
	LastName  string       `db:"last_name"`
	Role      string       `db:"role"`
	Active    bool         `db:"active"`
	LastLogin sql.NullTime `db:"last_login"`
	model.Metadata
}
