// One-off: go run scripts/seed.go (needs PG_DSN, inserts demo users and tasks)
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jackc/pgx/v5"
)

func main() {
	dsn := os.Getenv("PG_DSN")
	if dsn == "" {
		fmt.Fprintln(os.Stderr, "PG_DSN is required")
		os.Exit(1)
	}

	ctx := context.Background()
	conn, err := pgx.Connect(ctx, dsn)
	if err != nil {
		panic(err)
	}
	defer conn.Close(ctx)

	users := []struct{ username, email string }{
		{"Teste", "teste@gmail.com"},
		{"Maria", "maria@example.com"},
	}
	for _, u := range users {
		var id int64
		err := conn.QueryRow(ctx,
			`INSERT INTO users (username, email) VALUES ($1, $2)
			 ON CONFLICT (username) DO UPDATE SET email = users.email
			 RETURNING id`,
			u.username, u.email,
		).Scan(&id)
		if err != nil {
			panic(err)
		}
		_, err = conn.Exec(ctx,
			`INSERT INTO tasks (title, description, status, user_id)
			 VALUES ($1, $2, 'PENDING', $3)`,
			"Ler livro", "Continuar leitura", id,
		)
		if err != nil {
			panic(err)
		}
		fmt.Printf("seeded user %d (%s)\n", id, u.username)
	}
}
