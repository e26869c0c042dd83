package postgres

const listTodosSQL = `
SELECT id, title, completed
FROM todos
ORDER BY id ASC
LIMIT $1 OFFSET $2
`

const getTodoSQL = `
SELECT id, title, completed
FROM todos WHERE id = $1
`

const insertTodoSQL = `
INSERT INTO todos (title, completed)
VALUES ($1, $2)
RETURNING id
`

const updateTodoSQL = `
UPDATE todos SET
  title=$2, completed=$3
WHERE id=$1
`

const deleteTodoSQL = `DELETE FROM todos WHERE id = $1`

const listUsersSQL = `
SELECT id, name, email, is_active, role
FROM users
ORDER BY id ASC
LIMIT $1 OFFSET $2
`

const getUserSQL = `
SELECT id, name, email, is_active, role
FROM users WHERE id = $1
`

const insertUserSQL = `
INSERT INTO users (name, email, is_active, role)
VALUES ($1, $2, $3, $4)
RETURNING id
`

const updateUserSQL = `
UPDATE users SET
  name=$2, email=$3, is_active=$4, role=$5
WHERE id=$1
`

const deleteUserSQL = `DELETE FROM users WHERE id = $1`

const userEmailExistsSQL = `SELECT EXISTS (SELECT 1 FROM users WHERE email = $1)`
