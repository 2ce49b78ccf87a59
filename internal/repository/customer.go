package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v4"
	"github.com/umalmyha/customers/internal/model"
	"github.com/umalmyha/customers/pkg/db/transactor"
)

// CustomerRepository is customers data source, FindByID returns nil customer if nothing found
// and mutating methods report whether any entry was affected
type CustomerRepository interface {
	FindByID(context.Context, int64) (*model.Customer, error)
	FindAll(context.Context) ([]*model.Customer, error)
	Create(context.Context, *model.Customer) (bool, error)
	Update(context.Context, *model.Customer) (bool, error)
	DeleteByID(context.Context, int64) (bool, error)
}

type postgresCustomerRepository struct {
	trx transactor.PgxWithinTransactionExecutor
}

// NewPostgresCustomerRepository builds postgres customer repository
func NewPostgresCustomerRepository(trx transactor.PgxWithinTransactionExecutor) CustomerRepository {
	return &postgresCustomerRepository{trx: trx}
}

func (r *postgresCustomerRepository) FindByID(ctx context.Context, id int64) (*model.Customer, error) {
	q := "SELECT id, name, email, phone FROM customers WHERE id = $1 LIMIT 1"

	var c model.Customer
	row := r.trx.Executor(ctx).QueryRow(ctx, q, id)
	if err := row.Scan(&c.ID, &c.Name, &c.Email, &c.Phone); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (r *postgresCustomerRepository) FindAll(ctx context.Context) ([]*model.Customer, error) {
	q := "SELECT id, name, email, phone FROM customers"

	rows, err := r.trx.Executor(ctx).Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	customers := make([]*model.Customer, 0)
	for rows.Next() {
		var c model.Customer
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Phone); err != nil {
			return nil, err
		}
		customers = append(customers, &c)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return customers, nil
}

func (r *postgresCustomerRepository) Create(ctx context.Context, c *model.Customer) (bool, error) {
	q := "INSERT INTO customers(name, email, phone) VALUES($1, $2, $3) RETURNING id"

	var id int64
	if err := r.trx.Executor(ctx).QueryRow(ctx, q, c.Name, c.Email, c.Phone).Scan(&id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, err
	}

	c.ID = id
	return true, nil
}

func (r *postgresCustomerRepository) Update(ctx context.Context, c *model.Customer) (bool, error) {
	q := "UPDATE customers SET name = $1, email = $2, phone = $3 WHERE id = $4"
	comm, err := r.trx.Executor(ctx).Exec(ctx, q, c.Name, c.Email, c.Phone, c.ID)
	if err != nil {
		return false, err
	}
	return comm.RowsAffected() > 0, nil
}

func (r *postgresCustomerRepository) DeleteByID(ctx context.Context, id int64) (bool, error) {
	q := "DELETE FROM customers WHERE id = $1"
	comm, err := r.trx.Executor(ctx).Exec(ctx, q, id)
	if err != nil {
		return false, err
	}
	return comm.RowsAffected() > 0, nil
}
