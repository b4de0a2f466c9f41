package authRepository

const (
	queryCreateUser = `
INSERT INTO users (id, email, full_name, password, created_at)
VALUES (:id, :email, :full_name, :password, :created_at)`

	queryGetById = `
SELECT id, email, full_name, password, email_confirmed_at, created_at, updated_at
FROM users
    WHERE id = :id`

	queryGetByEmail = `
SELECT id, email, full_name, password, email_confirmed_at, created_at, updated_at
FROM users
    WHERE email = :email`

	queryUpdateProfile = `
UPDATE users
SET full_name = :full_name,
    updated_at = :updated_at
WHERE id = :id`

	queryUpdateUserPassword = `
UPDATE users
SET password = :password,
    updated_at = :updated_at
WHERE email = :email`

	queryConfirmEmail = `
UPDATE users
SET email_confirmed_at = :email_confirmed_at,
    updated_at = :updated_at
WHERE id = :id`

	queryDeleteUser = `
DELETE FROM users
WHERE id = :id`
)
