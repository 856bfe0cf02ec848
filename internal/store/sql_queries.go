package store

// Raw queries for the users and profiles tables. Entry queries are built
// with squirrel in repository_entry.go.
const (
	createUser = `INSERT INTO users (login, password_hash, name)
		VALUES ($1, $2, $3)
		RETURNING user_id, login, password_hash, name, created_at`

	findUserByLogin = `SELECT user_id, login, password_hash, name, created_at
		FROM users
		WHERE login = $1`

	getMasterSecret = `SELECT salt, verification_hash
		FROM profiles
		WHERE user_id = $1`

	insertMasterSecretOnce = `INSERT INTO profiles (user_id, salt, verification_hash)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id) DO NOTHING`
)
