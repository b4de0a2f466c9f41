package entity

import "time"

type User struct {
	ID               string    `db:"id"`
	Email            string    `db:"email"`
	FullName         string    `db:"full_name"`
	Password         string    `db:"password"`
	EmailConfirmedAt time.Time `db:"email_confirmed_at"`
	CreatedAt        time.Time `db:"created_at"`
	UpdatedAt        time.Time `db:"updated_at"`
}

type UserLoginData struct {
	ID       string
	Username string
	Email    string
}
