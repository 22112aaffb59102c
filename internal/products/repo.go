package products

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Repo is the Postgres-backed Repository used by the store server.
type Repo struct{ DB *pgxpool.Pool }

func (r *Repo) List(ctx context.Context) ([]Product, error) {
	rows, err := r.DB.Query(ctx, `SELECT id, name, price, category, quantity, status, rating
                                FROM products ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Product
	for rows.Next() {
		var p Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Price, &p.Category, &p.Quantity, &p.Status, &p.Rating); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *Repo) Create(ctx context.Context, p Product) (int64, error) {
	var id int64
	err := r.DB.QueryRow(ctx, `
		INSERT INTO products(name, price, category, quantity, status, rating)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`, p.Name, p.Price, p.Category, p.Quantity, p.Status, p.Rating).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (r *Repo) Update(ctx context.Context, id int64, p Product) error {
	tag, err := r.DB.Exec(ctx, `
		UPDATE products
		SET name=$2, price=$3, category=$4, quantity=$5, status=$6, rating=$7
		WHERE id=$1
	`, id, p.Name, p.Price, p.Category, p.Quantity, p.Status, p.Rating)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *Repo) Delete(ctx context.Context, id int64) error {
	tag, err := r.DB.Exec(ctx, `DELETE FROM products WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *Repo) DeleteMany(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}
	_, err := r.DB.Exec(ctx, `DELETE FROM products WHERE id = ANY($1)`, ids)
	return err
}
