package catalog

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	gormmysql "gorm.io/driver/mysql"
)

func newMockRepo(t *testing.T) (*Repo, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	db, err := gorm.Open(gormmysql.New(gormmysql.Config{
		Conn:                      conn,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{})
	require.NoError(t, err)

	return NewRepo(db), mock
}

func TestListProducts_ScopedToWebsiteNewestFirst(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery("SELECT \\* FROM `products` WHERE website_id = \\? ORDER BY id DESC").
		WithArgs("w1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "website_id", "name", "stock"}).
			AddRow(5, "w1", "Kettle", 7).
			AddRow(4, "w1", "Dripper", 0))

	got, err := repo.ListProducts(context.Background(), "w1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, int64(5), got[0].ID)
	assert.Equal(t, "Dripper", got[1].Name)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetProduct_ByIDAndWebsite(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery("SELECT \\* FROM `products` WHERE id = \\? AND website_id = \\?").
		WillReturnRows(sqlmock.NewRows([]string{"id", "website_id", "name", "stock"}).
			AddRow(5, "w1", "Kettle", 7))

	p, err := repo.GetProduct(context.Background(), "w1", 5)
	require.NoError(t, err)
	assert.Equal(t, "Kettle", p.Name)
	assert.Equal(t, 7, p.Stock)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetProduct_NotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery("SELECT \\* FROM `products`").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.GetProduct(context.Background(), "w1", 999)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestUpdateStock(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `products` SET").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.UpdateStock(context.Background(), "w1", 5, 4))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIsDuplicateKey(t *testing.T) {
	dup := &mysql.MySQLError{Number: 1062, Message: "Duplicate entry"}

	assert.True(t, IsDuplicateKey(dup))
	assert.True(t, IsDuplicateKey(fmt.Errorf("create website: %w", dup)))
	assert.False(t, IsDuplicateKey(&mysql.MySQLError{Number: 1451}))
	assert.False(t, IsDuplicateKey(errors.New("duplicate entry")))
	assert.False(t, IsDuplicateKey(nil))
}
