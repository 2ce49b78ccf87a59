package repository

import (
	"context"
	"database/sql"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/umalmyha/customers/internal/model"
)

const customersTable = "customers"

type mysqlCustomerRepository struct {
	db *sql.DB
}

// NewMysqlCustomerRepository builds mysql customer repository
func NewMysqlCustomerRepository(db *sql.DB) CustomerRepository {
	return &mysqlCustomerRepository{db: db}
}

func (r *mysqlCustomerRepository) FindByID(ctx context.Context, id int64) (*model.Customer, error) {
	q, args, err := sq.Select("id", "name", "email", "phone").
		From(customersTable).
		Where(sq.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, err
	}

	var c model.Customer
	if err := r.db.QueryRowContext(ctx, q, args...).Scan(&c.ID, &c.Name, &c.Email, &c.Phone); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (r *mysqlCustomerRepository) FindAll(ctx context.Context) ([]*model.Customer, error) {
	q, args, err := sq.Select("id", "name", "email", "phone").From(customersTable).ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, q, args...)
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

func (r *mysqlCustomerRepository) Create(ctx context.Context, c *model.Customer) (bool, error) {
	q, args, err := sq.Insert(customersTable).
		Columns("name", "email", "phone").
		Values(c.Name, c.Email, c.Phone).
		ToSql()
	if err != nil {
		return false, err
	}

	res, err := r.db.ExecContext(ctx, q, args...)
	if err != nil {
		return false, err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}

	if affected == 0 {
		return false, nil
	}

	id, err := res.LastInsertId()
	if err != nil {
		return false, err
	}

	c.ID = id
	return true, nil
}

// Update relies on clientFoundRows so unchanged values still count as affected row
func (r *mysqlCustomerRepository) Update(ctx context.Context, c *model.Customer) (bool, error) {
	q, args, err := sq.Update(customersTable).
		Set("name", c.Name).
		Set("email", c.Email).
		Set("phone", c.Phone).
		Where(sq.Eq{"id": c.ID}).
		ToSql()
	if err != nil {
		return false, err
	}
	return r.exec(ctx, q, args)
}

func (r *mysqlCustomerRepository) DeleteByID(ctx context.Context, id int64) (bool, error) {
	q, args, err := sq.Delete(customersTable).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return false, err
	}
	return r.exec(ctx, q, args)
}

func (r *mysqlCustomerRepository) exec(ctx context.Context, q string, args []any) (bool, error) {
	res, err := r.db.ExecContext(ctx, q, args...)
	if err != nil {
		return false, err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}
